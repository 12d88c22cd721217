package serviceRepo

import (
	"context"
	"errors"
	"time"

	"reservas/database"
	"reservas/models"
	"reservas/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAgencyServiceRepo implements AgencyServiceRepository using MongoDB.
type MongoAgencyServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoAgencyServiceRepo creates a new AgencyServiceRepository
// backed by the "agency_services" collection.
func NewMongoAgencyServiceRepo() AgencyServiceRepository {
	coll := database.Database().Collection("agency_services")
	return &MongoAgencyServiceRepo{coll: coll}
}

func (r *MongoAgencyServiceRepo) GetByAgency(agencyID string) (*models.AgencyService, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var svc models.AgencyService
	filter := bson.M{"agencyId": agencyID}
	if err := r.coll.FindOne(ctx, filter).Decode(&svc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("agency service", agencyID)
		}
		return nil, utils.NewPersistenceError("agency service lookup", err)
	}
	return &svc, nil
}

// Upsert replaces the whole service document keyed by agency id. A
// single ReplaceOne keeps the slot blobs and the excluded-date blob in
// step; readers never see one without the other.
func (r *MongoAgencyServiceRepo) Upsert(svc *models.AgencyService) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"agencyId": svc.AgencyID}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, filter, svc, opts); err != nil {
		return utils.NewPersistenceError("agency service upsert", err)
	}
	return nil
}

func (r *MongoAgencyServiceRepo) SetActive(agencyID string, active bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"agencyId": agencyID}
	update := bson.M{"$set": bson.M{
		"active":    active,
		"updatedAt": time.Now().UTC(),
	}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return utils.NewPersistenceError("agency service activation", err)
	}
	if res.MatchedCount == 0 {
		return utils.NewNotFoundError("agency service", agencyID)
	}
	return nil
}

func (r *MongoAgencyServiceRepo) Delete(agencyID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	res, err := r.coll.DeleteOne(ctx, bson.M{"agencyId": agencyID})
	if err != nil {
		return utils.NewPersistenceError("agency service delete", err)
	}
	if res.DeletedCount == 0 {
		return utils.NewNotFoundError("agency service", agencyID)
	}
	return nil
}

// ListActiveWithAgency joins each active service to its agency and
// keeps only those whose agency is active, attaching the agency name
// for the booking response.
func (r *MongoAgencyServiceRepo) ListActiveWithAgency() ([]models.AgencyService, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"active": true}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "agencies",
			"localField":   "agencyId",
			"foreignField": "id",
			"as":           "agency",
		}}},
		bson.D{{Key: "$unwind", Value: "$agency"}},
		bson.D{{Key: "$match", Value: bson.M{"agency.status": models.AgencyStatusActive}}},
		bson.D{{Key: "$addFields", Value: bson.M{"agencyName": "$agency.agencyName"}}},
		bson.D{{Key: "$project", Value: bson.M{"agency": 0}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, utils.NewPersistenceError("active service listing", err)
	}
	defer cursor.Close(ctx)

	var services []models.AgencyService
	for cursor.Next(ctx) {
		var svc models.AgencyService
		if err := cursor.Decode(&svc); err != nil {
			return nil, utils.NewPersistenceError("active service decode", err)
		}
		services = append(services, svc)
	}
	if err := cursor.Err(); err != nil {
		return nil, utils.NewPersistenceError("active service listing", err)
	}
	return services, nil
}
