package jobRepo

import (
	"fmt"
	"time"

	"fixwork/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// findNewestFirst runs a filtered find sorted by creation time, descending.
func (r *MongoJobRepo) findNewestFirst(filter bson.M) ([]models.Job, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve jobs: %w", err)
	}
	defer cursor.Close(ctx)

	var jobs []models.Job
	for cursor.Next(ctx) {
		var j models.Job
		if err := cursor.Decode(&j); err != nil {
			return nil, fmt.Errorf("failed to decode job: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}

// GetByExpertID retrieves an expert's jobs, newest first.
func (r *MongoJobRepo) GetByExpertID(expertID string) ([]models.Job, error) {
	return r.findNewestFirst(bson.M{"expertId": expertID})
}

// GetByUserID retrieves a user's jobs, newest first.
func (r *MongoJobRepo) GetByUserID(userID string) ([]models.Job, error) {
	return r.findNewestFirst(bson.M{"userId": userID})
}

// GetAll retrieves all jobs, newest first.
func (r *MongoJobRepo) GetAll() ([]models.Job, error) {
	return r.findNewestFirst(bson.M{})
}

// CountCompleted returns the total number of completed jobs.
func (r *MongoJobRepo) CountCompleted() (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"status": models.JobCompleted})
	if err != nil {
		return 0, fmt.Errorf("failed to count completed jobs: %w", err)
	}
	return count, nil
}

// CountCompletedBetween counts jobs completed in [from, to).
func (r *MongoJobRepo) CountCompletedBetween(from, to time.Time) (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"status":      models.JobCompleted,
		"completedAt": bson.M{"$gte": from, "$lt": to},
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count jobs completed between %s and %s: %w", from, to, err)
	}
	return count, nil
}
