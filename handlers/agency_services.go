package handlers

import (
	"errors"
	"net/http"
	"time"

	agencyRepo "reservas/database/repository/agency"
	serviceRepo "reservas/database/repository/service"
	"reservas/models"
	"reservas/services/availability"
	"reservas/services/schedule"
	"reservas/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AgencyServiceHandler serves the admin flow for publishing and
// maintaining an agency's bookable service.
type AgencyServiceHandler struct {
	Validator   schedule.Validator
	ServiceRepo serviceRepo.AgencyServiceRepository
	AgencyRepo  agencyRepo.AgencyRepository
	Catalog     availability.Catalog
	Logger      *zap.Logger
}

// NewAgencyServiceHandler creates an AgencyServiceHandler.
func NewAgencyServiceHandler(
	validator schedule.Validator,
	svcRepo serviceRepo.AgencyServiceRepository,
	agRepo agencyRepo.AgencyRepository,
	catalog availability.Catalog,
	logger *zap.Logger,
) *AgencyServiceHandler {
	return &AgencyServiceHandler{
		Validator:   validator,
		ServiceRepo: svcRepo,
		AgencyRepo:  agRepo,
		Catalog:     catalog,
		Logger:      logger,
	}
}

// SaveAgencyService handles PUT /api/admin/agency-services/:agencyID.
// The submission is validated as a whole and persisted as a whole
// document per agency.
func (h *AgencyServiceHandler) SaveAgencyService(c *gin.Context) {
	session := schedule.EditSession{
		AgencyID: c.Param("agencyID"),
		Actor:    c.GetString("adminSubject"),
	}

	var sub models.ServiceSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		h.Logger.Error("SaveAgencyService: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	exists, err := h.AgencyRepo.Exists(session.AgencyID)
	if err != nil {
		h.Logger.Error("SaveAgencyService: agency check failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to verify agency"})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "agency not found"})
		return
	}

	sched, err := h.Validator.Validate(sub)
	if err != nil {
		var ve *schedule.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   ve.Code,
				"message": ve.Message,
			})
			return
		}
		h.Logger.Error("SaveAgencyService: validation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "validation failed"})
		return
	}

	if !sub.Active {
		h.deactivate(c, session)
		return
	}

	now := time.Now().UTC()
	svc := models.AgencyService{
		ID:              uuid.NewString(),
		AgencyID:        session.AgencyID,
		Active:          true,
		PriceAdult:      sub.PriceAdult,
		PriceChild:      sub.PriceChild,
		PriceChildMinor: sub.PriceChildMinor,
		Title:           sub.Title,
		Description:     sub.Description,
		PriorityOrder:   sub.PriorityOrder,
		LogoURL:         sub.LogoURL,
		CoverURL:        sub.CoverURL,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if svc.PriorityOrder == 0 {
		svc.PriorityOrder = models.DefaultPriorityOrder
	}
	// Replacing an existing record keeps its identity and creation
	// time; CreatedAt is the ranking tie-breaker.
	if existing, err := h.ServiceRepo.GetByAgency(session.AgencyID); err == nil {
		svc.ID = existing.ID
		svc.CreatedAt = existing.CreatedAt
	} else {
		var notFound *utils.NotFoundError
		if !errors.As(err, &notFound) {
			h.Logger.Error("SaveAgencyService: lookup failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load existing service"})
			return
		}
	}
	svc.Hours, svc.ExcludedDates = sched.Encode()

	if err := h.ServiceRepo.Upsert(&svc); err != nil {
		h.Logger.Error("SaveAgencyService: upsert failed",
			zap.String("agencyId", session.AgencyID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save service"})
		return
	}
	h.Catalog.Invalidate()

	h.Logger.Info("agency service saved",
		zap.String("agencyId", session.AgencyID),
		zap.String("actor", session.Actor),
		zap.Int("offeredWeekdays", len(sched)),
	)
	c.JSON(http.StatusOK, svc)
}

// deactivate flips the active flag while preserving the stored record.
// An agency that never published a service gets an inactive shell so
// the edit form has a row to work with.
func (h *AgencyServiceHandler) deactivate(c *gin.Context, session schedule.EditSession) {
	err := h.ServiceRepo.SetActive(session.AgencyID, false)
	if err != nil {
		var notFound *utils.NotFoundError
		if errors.As(err, &notFound) {
			shell := defaultServiceShell(session.AgencyID)
			if err := h.ServiceRepo.Upsert(&shell); err != nil {
				h.Logger.Error("SaveAgencyService: shell upsert failed", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save service"})
				return
			}
		} else {
			h.Logger.Error("SaveAgencyService: deactivation failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save service"})
			return
		}
	}
	h.Catalog.Invalidate()
	h.Logger.Info("agency service deactivated",
		zap.String("agencyId", session.AgencyID),
		zap.String("actor", session.Actor),
	)
	c.JSON(http.StatusOK, gin.H{"status": "deactivated"})
}

// GetAgencyService handles GET /api/admin/agency-services/:agencyID.
// A known agency with no stored service yet gets a default inactive
// shell for the edit form rather than a 404.
func (h *AgencyServiceHandler) GetAgencyService(c *gin.Context) {
	agencyID := c.Param("agencyID")

	svc, err := h.ServiceRepo.GetByAgency(agencyID)
	if err == nil {
		c.JSON(http.StatusOK, svc)
		return
	}
	var notFound *utils.NotFoundError
	if !errors.As(err, &notFound) {
		h.Logger.Error("GetAgencyService: lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load service"})
		return
	}

	exists, err := h.AgencyRepo.Exists(agencyID)
	if err != nil {
		h.Logger.Error("GetAgencyService: agency check failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to verify agency"})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "agency not found"})
		return
	}
	shell := defaultServiceShell(agencyID)
	c.JSON(http.StatusOK, shell)
}

// DeactivateAgencyService handles POST /api/admin/agency-services/:agencyID/deactivate.
func (h *AgencyServiceHandler) DeactivateAgencyService(c *gin.Context) {
	session := schedule.EditSession{
		AgencyID: c.Param("agencyID"),
		Actor:    c.GetString("adminSubject"),
	}
	if err := h.ServiceRepo.SetActive(session.AgencyID, false); err != nil {
		var notFound *utils.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "agency service not found"})
			return
		}
		h.Logger.Error("DeactivateAgencyService: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to deactivate service"})
		return
	}
	h.Catalog.Invalidate()
	h.Logger.Info("agency service deactivated",
		zap.String("agencyId", session.AgencyID),
		zap.String("actor", session.Actor),
	)
	c.JSON(http.StatusOK, gin.H{"status": "deactivated"})
}

// ListAgencyServices handles GET /api/admin/agency-services. It backs
// the admin list view: every agency with its service summary, if any.
func (h *AgencyServiceHandler) ListAgencyServices(c *gin.Context) {
	agencies, err := h.AgencyRepo.GetAll()
	if err != nil {
		h.Logger.Error("ListAgencyServices: failed to list agencies", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list agencies"})
		return
	}

	type entry struct {
		Agency  models.Agency         `json:"agency"`
		Service *models.AgencyService `json:"service,omitempty"`
	}
	out := make([]entry, 0, len(agencies))
	for _, a := range agencies {
		e := entry{Agency: a}
		svc, err := h.ServiceRepo.GetByAgency(a.ID)
		if err == nil {
			e.Service = svc
		} else {
			var notFound *utils.NotFoundError
			if !errors.As(err, &notFound) {
				h.Logger.Error("ListAgencyServices: service lookup failed",
					zap.String("agencyId", a.ID), zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list services"})
				return
			}
		}
		out = append(out, e)
	}
	c.JSON(http.StatusOK, out)
}

func defaultServiceShell(agencyID string) models.AgencyService {
	now := time.Now().UTC()
	return models.AgencyService{
		ID:            uuid.NewString(),
		AgencyID:      agencyID,
		Active:        false,
		PriorityOrder: models.DefaultPriorityOrder,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
