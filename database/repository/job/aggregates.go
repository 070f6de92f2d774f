package jobRepo

import (
	"fmt"
	"time"

	"fixwork/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// completedEarnings sums totalAmount over completed jobs with the platform
// commission already deducted; other jobs contribute 0.
func completedEarnings() bson.M {
	return bson.M{
		"$sum": bson.M{
			"$cond": bson.A{
				bson.M{"$eq": bson.A{"$status", models.JobCompleted}},
				bson.M{"$multiply": bson.A{"$totalAmount", models.ExpertEarningsFactor}},
				0,
			},
		},
	}
}

// periodGroup is the $group stage shared by every dashboard time window.
func periodGroup() bson.D {
	return bson.D{{Key: "$group", Value: bson.M{
		"_id":           nil,
		"totalEarnings": completedEarnings(),
		"totalJobs":     bson.M{"$sum": 1},
		"totalCompletedJobs": bson.M{
			"$sum": bson.M{
				"$cond": bson.A{
					bson.M{"$eq": bson.A{"$status", models.JobCompleted}},
					1,
					0,
				},
			},
		},
		"totalDistance": bson.M{"$sum": "$distance"},
	}}}
}

// ExpertDashboardData runs a single $facet aggregation producing the
// all-time, current-month and previous-month summaries plus the per-day
// earnings of the current month.
func (r *MongoJobRepo) ExpertDashboardData(expertID string, currentStart, nextStart, previousStart time.Time) (*DashboardData, error) {
	ctx, cancel := newContext(15 * time.Second)
	defer cancel()

	allTimeMatch := bson.M{"expertId": expertID}
	currentMatch := bson.M{
		"expertId":  expertID,
		"createdAt": bson.M{"$gte": currentStart, "$lt": nextStart},
	}
	previousMatch := bson.M{
		"expertId":  expertID,
		"createdAt": bson.M{"$gte": previousStart, "$lt": currentStart},
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$facet", Value: bson.M{
			"allTimeData": bson.A{
				bson.D{{Key: "$match", Value: allTimeMatch}},
				periodGroup(),
			},
			"currentMonthData": bson.A{
				bson.D{{Key: "$match", Value: currentMatch}},
				periodGroup(),
			},
			"previousMonthData": bson.A{
				bson.D{{Key: "$match", Value: previousMatch}},
				periodGroup(),
			},
			"dailyEarningsCurrentMonth": bson.A{
				bson.D{{Key: "$match", Value: currentMatch}},
				bson.D{{Key: "$group", Value: bson.M{
					"_id":           bson.M{"$dayOfMonth": "$createdAt"},
					"dailyEarnings": completedEarnings(),
				}}},
				// Days whose completed-job earnings are zero are dropped from
				// the breakdown.
				bson.D{{Key: "$match", Value: bson.M{"dailyEarnings": bson.M{"$gt": 0}}}},
				bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
				bson.D{{Key: "$project", Value: bson.M{
					"_id":           0,
					"date":          bson.M{"$toString": "$_id"},
					"dailyEarnings": 1,
				}}},
			},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("dashboard aggregation failed for expert %s: %w", expertID, err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		AllTimeData               []models.PeriodSummary `bson:"allTimeData"`
		CurrentMonthData          []models.PeriodSummary `bson:"currentMonthData"`
		PreviousMonthData         []models.PeriodSummary `bson:"previousMonthData"`
		DailyEarningsCurrentMonth []models.DailyEarning  `bson:"dailyEarningsCurrentMonth"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode dashboard aggregation: %w", err)
	}
	if len(results) == 0 {
		return &DashboardData{}, nil
	}

	data := &DashboardData{DailyEarnings: results[0].DailyEarningsCurrentMonth}
	if len(results[0].AllTimeData) > 0 {
		data.AllTime = results[0].AllTimeData[0]
	}
	if len(results[0].CurrentMonthData) > 0 {
		data.CurrentMonth = results[0].CurrentMonthData[0]
	}
	if len(results[0].PreviousMonthData) > 0 {
		data.PreviousMonth = results[0].PreviousMonthData[0]
	}
	return data, nil
}

// TopBookedServices groups completed jobs by service, ranks by booking count
// and joins the current service name from the services collection.
func (r *MongoJobRepo) TopBookedServices(limit int64) ([]models.BookedService, error) {
	ctx, cancel := newContext(15 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"status": models.JobCompleted}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":          "$serviceId",
			"bookingCount": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "bookingCount", Value: -1}}}},
		bson.D{{Key: "$limit", Value: limit}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "services",
			"localField":   "_id",
			"foreignField": "id",
			"as":           "serviceDetails",
		}}},
		bson.D{{Key: "$unwind", Value: "$serviceDetails"}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":          0,
			"serviceId":    "$_id",
			"bookingCount": 1,
			"name":         "$serviceDetails.name",
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("top booked services aggregation failed: %w", err)
	}
	defer cursor.Close(ctx)

	var ranked []models.BookedService
	if err := cursor.All(ctx, &ranked); err != nil {
		return nil, fmt.Errorf("failed to decode top booked services: %w", err)
	}
	return ranked, nil
}
