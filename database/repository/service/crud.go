package serviceRepo

import (
	"fmt"
	"time"

	"fixwork/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new service document.
func (r *MongoServiceRepo) Create(svc *models.Service) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	svc.CreatedAt = now
	svc.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, svc)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

// Update overwrites the given fields on a service document.
func (r *MongoServiceRepo) Update(id string, fields bson.M) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	filter := bson.M{"id": id}
	update := bson.M{"$set": fields}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to update service with id %s: %w", id, err)
	}
	return result.MatchedCount > 0, nil
}

// Delete removes a service document by its ID.
func (r *MongoServiceRepo) Delete(id string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to delete service with id %s: %w", id, err)
	}
	return result.DeletedCount > 0, nil
}

// CountAll returns the total number of service documents.
func (r *MongoServiceRepo) CountAll() (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count services: %w", err)
	}
	return count, nil
}

// CountCreatedBetween counts services created in [from, to).
func (r *MongoServiceRepo) CountCreatedBetween(from, to time.Time) (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"createdAt": bson.M{"$gte": from, "$lt": to}}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count services created between %s and %s: %w", from, to, err)
	}
	return count, nil
}
