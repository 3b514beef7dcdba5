// File: database/repository/rule/interface.go
package ruleRepo

import (
	"context"

	"courtside/config"
	"courtside/database"
	"courtside/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type RuleRepository interface {
	Create(ctx context.Context, rule *models.AvailabilityRule) error
	GetByID(ctx context.Context, ruleID string) (*models.AvailabilityRule, error)
	GetByCoach(ctx context.Context, coachID string) ([]models.AvailabilityRule, error)
	Update(ctx context.Context, rule *models.AvailabilityRule) error
	DeleteByID(ctx context.Context, coachID, ruleID string) error
	EnsureIndexes() error
}

type mongoRuleRepo struct {
	coll *mongo.Collection
}

// NewMongoRuleRepo constructs a new MongoDB RuleRepository.
func NewMongoRuleRepo() RuleRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoRuleRepo{
		coll: db.Collection("availability_rules"),
	}
}
