// Package models - Quota và Holiday thuộc domain Quota: giới hạn chỗ theo ngày cho calendar planner.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Quota giới hạn số chỗ của một ngày (YYYY-MM-DD), duy nhất per ngày
type Quota struct {
	ID    primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Date  string             `json:"date" bson:"date" index:"unique"`
	Limit int                `json:"limit" bson:"limit"`
	Note  string             `json:"note,omitempty" bson:"note,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// Holiday ngày nghỉ lễ (YYYY-MM-DD)
type Holiday struct {
	ID   primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Date string             `json:"date" bson:"date" index:"unique"`
	Name string             `json:"name" bson:"name"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
