package submissionsvc

import (
	"context"

	"hr_admin/internal/api/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CalculateMetrics tính các metric khai báo trong FormSchema.Metrics trên toàn bộ
// submissions của form. Field path của metric tính tương đối trên formData.
// Không có submission nào → mỗi metric trả về 0.
func (s *FormSubmissionService) CalculateMetrics(ctx context.Context, formID primitive.ObjectID) ([]metrics.CalculatedMetric, error) {
	schema, err := s.schemaService.FindOneById(ctx, formID)
	if err != nil {
		return nil, err
	}

	submissions, err := s.Find(ctx, bson.M{"formId": formID}, nil)
	if err != nil {
		return nil, err
	}

	records := make([]map[string]interface{}, 0, len(submissions))
	for _, sub := range submissions {
		records = append(records, sub.FormData)
	}

	return metrics.Calculate(records, schema.Metrics), nil
}
