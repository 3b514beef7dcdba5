// File: database/repository/coach/crud.go
package coachRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"courtside/models"
)

func (r *mongoCoachRepo) Create(ctx context.Context, coach *models.Coach) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if coach.ID == "" {
		coach.ID = uuid.New().String()
	}
	now := time.Now()
	coach.CreatedAt = now
	coach.UpdatedAt = now
	if coach.Services == nil {
		coach.Services = []models.Service{}
	}

	_, err := r.coll.InsertOne(ctx, coach)
	return err
}

func (r *mongoCoachRepo) GetByID(ctx context.Context, coachID string) (*models.Coach, error) {
	return r.findOne(ctx, bson.M{"id": coachID})
}

func (r *mongoCoachRepo) GetByEmail(ctx context.Context, email string) (*models.Coach, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoCoachRepo) findOne(ctx context.Context, filter bson.M) (*models.Coach, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var coach models.Coach
	err := r.coll.FindOne(ctx, filter).Decode(&coach)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &coach, nil
}

// ListIDs returns every coach ID. Used by the nightly cache rewarm.
func (r *mongoCoachRepo) ListIDs(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	raw, err := r.coll.Distinct(ctx, "id", bson.M{})
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		if id, ok := v.(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *mongoCoachRepo) Update(ctx context.Context, coach *models.Coach) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	coach.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": coach.ID}, coach)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoCoachRepo) Delete(ctx context.Context, coachID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": coachID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// AddService appends a catalogue entry. The filter keeps service names unique
// per coach: the push only matches when no entry with the name exists.
func (r *mongoCoachRepo) AddService(ctx context.Context, coachID string, svc models.Service) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": coachID, "services.name": bson.M{"$ne": svc.Name}}
	update := bson.M{
		"$push": bson.M{"services": svc},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoCoachRepo) RemoveService(ctx context.Context, coachID, serviceName string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$pull": bson.M{"services": bson.M{"name": serviceName}},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": coachID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
