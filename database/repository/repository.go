package repository

import (
	agencyRepo "reservas/database/repository/agency"
	serviceRepo "reservas/database/repository/service"
)

// Re-export the AgencyRepository interface and constructor.
type AgencyRepository = agencyRepo.AgencyRepository

var NewMongoAgencyRepo = agencyRepo.NewMongoAgencyRepo

// Re-export the AgencyServiceRepository interface and constructor.
type AgencyServiceRepository = serviceRepo.AgencyServiceRepository

var NewMongoAgencyServiceRepo = serviceRepo.NewMongoAgencyServiceRepo
