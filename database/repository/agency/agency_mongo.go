package agencyRepo

import (
	"context"
	"errors"
	"time"

	"reservas/database"
	"reservas/models"
	"reservas/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoAgencyRepo implements AgencyRepository using MongoDB.
type MongoAgencyRepo struct {
	coll *mongo.Collection
}

// NewMongoAgencyRepo creates a new AgencyRepository backed by the
// "agencies" collection.
func NewMongoAgencyRepo() AgencyRepository {
	coll := database.Database().Collection("agencies")
	return &MongoAgencyRepo{coll: coll}
}

func (r *MongoAgencyRepo) GetByID(id string) (*models.Agency, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var agency models.Agency
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&agency); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("agency", id)
		}
		return nil, utils.NewPersistenceError("agency lookup", err)
	}
	return &agency, nil
}

func (r *MongoAgencyRepo) GetAll() ([]models.Agency, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, utils.NewPersistenceError("agency listing", err)
	}
	defer cursor.Close(ctx)
	var agencies []models.Agency
	for cursor.Next(ctx) {
		var a models.Agency
		if err := cursor.Decode(&a); err != nil {
			return nil, utils.NewPersistenceError("agency decode", err)
		}
		agencies = append(agencies, a)
	}
	if err := cursor.Err(); err != nil {
		return nil, utils.NewPersistenceError("agency listing", err)
	}
	return agencies, nil
}

func (r *MongoAgencyRepo) Exists(id string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	count, err := r.coll.CountDocuments(ctx, bson.M{"id": id})
	if err != nil {
		return false, utils.NewPersistenceError("agency existence check", err)
	}
	return count > 0, nil
}
