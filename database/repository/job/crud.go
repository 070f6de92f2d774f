package jobRepo

import (
	"fmt"
	"time"

	"fixwork/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new job document.
func (r *MongoJobRepo) Create(job *models.Job) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, job)
	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

// GetByID retrieves a job by its unique ID.
func (r *MongoJobRepo) GetByID(id string) (*models.Job, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var job models.Job
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&job); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch job with id %s: %w", id, err)
	}
	return &job, nil
}

// MarkStarted transitions a pending job to started. The status is part of the
// filter so the transition is atomic at the document level; a concurrent
// start or completion makes the update match nothing.
func (r *MongoJobRepo) MarkStarted(id string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": models.JobPending}
	update := bson.M{"$set": bson.M{
		"status":    models.JobStarted,
		"updatedAt": time.Now(),
	}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to start job with id %s: %w", id, err)
	}
	return result.MatchedCount > 0, nil
}

// MarkCompleted records a successful payment on a job not already completed.
func (r *MongoJobRepo) MarkCompleted(id string, amount float64, paymentType string, completedAt time.Time) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": bson.M{"$ne": models.JobCompleted}}
	update := bson.M{"$set": bson.M{
		"status":      models.JobCompleted,
		"payment":     models.PaymentSuccess,
		"totalAmount": amount,
		"paymentType": paymentType,
		"completedAt": completedAt,
		"updatedAt":   time.Now(),
	}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to record payment for job with id %s: %w", id, err)
	}
	return result.MatchedCount > 0, nil
}
