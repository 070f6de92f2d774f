package models

import "time"

// Service is a catalog entry describing an offerable task.
type Service struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Description  string    `bson:"description" json:"description"`
	Price        float64   `bson:"price" json:"price"`
	ServiceImage string    `bson:"serviceImage,omitempty" json:"serviceImage,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt,omitempty"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt,omitempty"`
}
