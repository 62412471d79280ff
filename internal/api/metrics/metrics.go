// Package metrics tính toán các chỉ số tổng hợp (metric) trên tập dữ liệu submission.
// Package thuần túy, không phụ thuộc DB — nhận dữ liệu đã fetch và cấu hình metric từ FormSchema.
package metrics

import (
	"strconv"
	"strings"
)

// Các loại metric được hỗ trợ
const (
	KindTotal      = "total"      // Đếm tất cả record
	KindFiltered   = "filtered"   // Đếm record thỏa điều kiện field-operator-value
	KindAggregated = "aggregated" // Tổng giá trị số của một field
)

// Các operator cho metric filtered
const (
	OpEqual          = "="
	OpNotEqual       = "!="
	OpGreater        = ">"
	OpLess           = "<"
	OpGreaterOrEqual = ">="
	OpLessOrEqual    = "<="
	OpIncludes       = "includes"
	OpExcludes       = "excludes"
)

// MetricConfig cấu hình một metric, khai báo trong FormSchema.Metrics
type MetricConfig struct {
	Name           string      `json:"name" bson:"name"`
	Label          string      `json:"label" bson:"label"`
	Kind           string      `json:"kind" bson:"kind" validate:"omitempty,oneof=total filtered aggregated"`
	Field          string      `json:"field,omitempty" bson:"field,omitempty"`                   // Dot path, dùng cho filtered
	Operator       string      `json:"operator,omitempty" bson:"operator,omitempty"`             // Dùng cho filtered
	Value          interface{} `json:"value,omitempty" bson:"value,omitempty"`                   // Dùng cho filtered
	AggregateField string      `json:"aggregateField,omitempty" bson:"aggregateField,omitempty"` // Dot path, dùng cho aggregated
}

// CalculatedMetric kết quả tính toán của một metric
type CalculatedMetric struct {
	Name  string  `json:"name"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Calculate tính tất cả metric trên tập dữ liệu.
// Dữ liệu rỗng hoặc nil → mỗi metric trả về giá trị 0, không bao giờ bị bỏ qua.
func Calculate(data []map[string]interface{}, configs []MetricConfig) []CalculatedMetric {
	results := make([]CalculatedMetric, 0, len(configs))
	for _, cfg := range configs {
		results = append(results, CalculatedMetric{
			Name:  cfg.Name,
			Label: cfg.Label,
			Value: calculateOne(data, cfg),
		})
	}
	return results
}

func calculateOne(data []map[string]interface{}, cfg MetricConfig) float64 {
	switch cfg.Kind {
	case KindTotal:
		return float64(len(data))

	case KindFiltered:
		count := 0
		for _, record := range data {
			if matchCondition(GetNestedValue(record, cfg.Field), cfg.Operator, cfg.Value) {
				count++
			}
		}
		return float64(count)

	case KindAggregated:
		sum := 0.0
		for _, record := range data {
			// Giá trị thiếu hoặc không phải số được tính là 0
			if num, ok := toFloat(GetNestedValue(record, cfg.AggregateField)); ok {
				sum += num
			}
		}
		return sum
	}

	return 0
}

// matchCondition so sánh giá trị record với giá trị cấu hình theo operator
func matchCondition(actual interface{}, operator string, expected interface{}) bool {
	switch operator {
	case OpEqual:
		return equalValues(actual, expected)
	case OpNotEqual:
		return !equalValues(actual, expected)
	case OpGreater, OpLess, OpGreaterOrEqual, OpLessOrEqual:
		a, okA := toFloat(actual)
		b, okB := toFloat(expected)
		if !okA || !okB {
			return false
		}
		switch operator {
		case OpGreater:
			return a > b
		case OpLess:
			return a < b
		case OpGreaterOrEqual:
			return a >= b
		case OpLessOrEqual:
			return a <= b
		}
	case OpIncludes:
		return strings.Contains(strings.ToLower(toString(actual)), strings.ToLower(toString(expected)))
	case OpExcludes:
		return !strings.Contains(strings.ToLower(toString(actual)), strings.ToLower(toString(expected)))
	}
	return false
}

// equalValues so sánh bằng: ưu tiên so sánh số (1 == "1" == 1.0), fallback so sánh chuỗi
func equalValues(a, b interface{}) bool {
	numA, okA := toFloat(a)
	numB, okB := toFloat(b)
	if okA && okB {
		return numA == numB
	}
	return toString(a) == toString(b)
}

// GetNestedValue lấy giá trị theo dot path (vd: "formData.status").
// Trả về nil ngay khi gặp node trung gian thiếu hoặc không phải map.
func GetNestedValue(record map[string]interface{}, path string) interface{} {
	if record == nil || path == "" {
		return nil
	}

	parts := strings.Split(path, ".")
	var current interface{} = record
	for _, part := range parts {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil
		}
		current, ok = m[part]
		if !ok {
			return nil
		}
	}
	return current
}

func toFloat(v interface{}) (float64, bool) {
	switch value := v.(type) {
	case float64:
		return value, true
	case float32:
		return float64(value), true
	case int:
		return float64(value), true
	case int32:
		return float64(value), true
	case int64:
		return float64(value), true
	case string:
		num, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return 0, false
		}
		return num, true
	case bool:
		if value {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func toString(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case bool:
		return strconv.FormatBool(value)
	}
	return ""
}
