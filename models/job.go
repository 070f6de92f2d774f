package models

import "time"

// JobStatus is the lifecycle state of a job.
type JobStatus string

const (
	JobPending   JobStatus = "pending"
	JobStarted   JobStatus = "started"
	JobCompleted JobStatus = "completed"
)

// PaymentStatus is the payment outcome of a job, independent of JobStatus.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentSuccess PaymentStatus = "success"
	PaymentFailed  PaymentStatus = "failed"
)

// ExpertEarningsFactor is the share of a completed job's amount paid out to
// the expert after the fixed 10% platform commission.
const ExpertEarningsFactor = 0.9

// UserGeo is the user's geolocation as submitted by the client app.
type UserGeo struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// ExpertGeo is the expert's geolocation. The field names differ from UserGeo
// to match the payload the expert app sends.
type ExpertGeo struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// Job is a single booking instance linking a user, an expert and a service.
type Job struct {
	ID             string        `bson:"id" json:"id"`
	ServiceID      string        `bson:"serviceId" json:"serviceId"`
	ExpertID       string        `bson:"expertId" json:"expertId"`
	UserID         string        `bson:"userId" json:"userId"`
	UserLocation   UserGeo       `bson:"userLocation" json:"userLocation"`
	ExpertLocation ExpertGeo     `bson:"expertLocation" json:"expertLocation"`
	Notes          string        `bson:"notes" json:"notes"`
	Distance       float64       `bson:"distance" json:"distance"`
	TotalAmount    float64       `bson:"totalAmount" json:"totalAmount"`
	RatePerHour    float64       `bson:"ratePerHour" json:"ratePerHour"`
	Status         JobStatus     `bson:"status" json:"status"`
	Pin            int           `bson:"pin" json:"pin"`
	Payment        PaymentStatus `bson:"payment" json:"payment"`
	PaymentType    string        `bson:"paymentType,omitempty" json:"paymentType,omitempty"`
	CompletedAt    *time.Time    `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	CreatedAt      time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time     `bson:"updatedAt" json:"updatedAt"`
}
