// Package models - FormSubmission thuộc domain Submission: dữ liệu người dùng nhập theo FormSchema.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FormSubmission một bản ghi dữ liệu của form động.
// FormData có shape per-key phụ thuộc vào field type của FormSchema sở hữu:
// string, float64, chuỗi ngày ISO, []string (multipleSelect), hoặc foreign ref {_id, display}.
type FormSubmission struct {
	ID       primitive.ObjectID     `json:"id,omitempty" bson:"_id,omitempty"`
	FormID   primitive.ObjectID     `json:"formId" bson:"formId" index:"single"`
	FormName string                 `json:"formName" bson:"formName" index:"single"`
	FormData map[string]interface{} `json:"formData" bson:"formData"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
