// File: database/repository/coach/interface.go
package coachRepo

import (
	"context"

	"courtside/config"
	"courtside/database"
	"courtside/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type CoachRepository interface {
	Create(ctx context.Context, coach *models.Coach) error
	GetByID(ctx context.Context, coachID string) (*models.Coach, error)
	GetByEmail(ctx context.Context, email string) (*models.Coach, error)
	ListIDs(ctx context.Context) ([]string, error)
	Update(ctx context.Context, coach *models.Coach) error
	Delete(ctx context.Context, coachID string) error
	AddService(ctx context.Context, coachID string, svc models.Service) error
	RemoveService(ctx context.Context, coachID, serviceName string) error
	EnsureIndexes() error
}

type mongoCoachRepo struct {
	coll *mongo.Collection
}

// NewMongoCoachRepo constructs a new MongoDB CoachRepository.
func NewMongoCoachRepo() CoachRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoCoachRepo{
		coll: db.Collection("coaches"),
	}
}
