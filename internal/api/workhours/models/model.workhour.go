// Package models - WorkHour thuộc domain WorkHours: giờ làm việc per nhân viên per ngày.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkHour giờ làm việc của một nhân viên trong một ngày.
// Cặp (employeeName, date) là duy nhất: ghi lại cùng cặp là upsert, không nhân bản.
type WorkHour struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	EmployeeName string             `json:"employeeName" bson:"employeeName" index:"compound:work_hour_employee_date_unique"`
	Date         string             `json:"date" bson:"date" index:"compound:work_hour_employee_date_unique"`
	Hours        float64            `json:"hours" bson:"hours"`
	Note         string             `json:"note,omitempty" bson:"note,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
