// Package metrics - Test tính toán metric trên tập dữ liệu in-memory.
package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleData() []map[string]interface{} {
	return []map[string]interface{}{
		{"status": "present", "hours": 8.0, "profile": map[string]interface{}{"team": "Backend"}},
		{"status": "present", "hours": 4.0, "profile": map[string]interface{}{"team": "Frontend"}},
		{"status": "leave", "hours": 0.0},
		{"status": "remote", "hours": "6"},
	}
}

func TestCalculate_Total(t *testing.T) {
	results := Calculate(sampleData(), []MetricConfig{
		{Name: "total", Label: "Tổng", Kind: KindTotal},
	})
	assert.Len(t, results, 1)
	assert.Equal(t, "total", results[0].Name)
	assert.Equal(t, float64(4), results[0].Value)
}

func TestCalculate_EmptyData(t *testing.T) {
	configs := []MetricConfig{
		{Name: "total", Kind: KindTotal},
		{Name: "present", Kind: KindFiltered, Field: "status", Operator: OpEqual, Value: "present"},
		{Name: "sum", Kind: KindAggregated, AggregateField: "hours"},
	}

	for _, data := range [][]map[string]interface{}{nil, {}} {
		results := Calculate(data, configs)
		assert.Len(t, results, 3, "mỗi metric phải có kết quả kể cả khi không có dữ liệu")
		for _, r := range results {
			assert.Equal(t, float64(0), r.Value, "metric %s phải trả về 0 khi không có dữ liệu", r.Name)
		}
	}
}

func TestCalculate_Filtered(t *testing.T) {
	data := sampleData()

	tests := []struct {
		name     string
		operator string
		value    interface{}
		want     float64
	}{
		{"equal", OpEqual, "present", 2},
		{"not_equal", OpNotEqual, "present", 2},
		{"includes", OpIncludes, "PRES", 2},
		{"excludes", OpExcludes, "pres", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := Calculate(data, []MetricConfig{
				{Name: tt.name, Kind: KindFiltered, Field: "status", Operator: tt.operator, Value: tt.value},
			})
			assert.Equal(t, tt.want, results[0].Value)
		})
	}
}

func TestCalculate_Filtered_NumericCoercion(t *testing.T) {
	data := sampleData()

	// "6" (chuỗi) và 6 (số) phải so sánh bằng nhau
	results := Calculate(data, []MetricConfig{
		{Name: "six", Kind: KindFiltered, Field: "hours", Operator: OpEqual, Value: 6},
		{Name: "gte4", Kind: KindFiltered, Field: "hours", Operator: OpGreaterOrEqual, Value: 4},
		{Name: "lt4", Kind: KindFiltered, Field: "hours", Operator: OpLess, Value: "4"},
	})
	assert.Equal(t, float64(1), results[0].Value, "so sánh số phải áp dụng cho cả giá trị dạng chuỗi")
	assert.Equal(t, float64(3), results[1].Value)
	assert.Equal(t, float64(1), results[2].Value)
}

func TestCalculate_Filtered_NestedPath(t *testing.T) {
	results := Calculate(sampleData(), []MetricConfig{
		{Name: "backend", Kind: KindFiltered, Field: "profile.team", Operator: OpEqual, Value: "Backend"},
	})
	assert.Equal(t, float64(1), results[0].Value)
}

func TestCalculate_Aggregated(t *testing.T) {
	results := Calculate(sampleData(), []MetricConfig{
		{Name: "hours", Kind: KindAggregated, AggregateField: "hours"},
	})
	// 8 + 4 + 0 + "6" (chuỗi số vẫn được cộng)
	assert.Equal(t, float64(18), results[0].Value)
}

func TestCalculate_Aggregated_MissingField(t *testing.T) {
	data := []map[string]interface{}{
		{"hours": 8.0},
		{},               // Thiếu field → tính là 0
		{"hours": "abc"}, // Không phải số → tính là 0
	}
	results := Calculate(data, []MetricConfig{
		{Name: "hours", Kind: KindAggregated, AggregateField: "hours"},
	})
	assert.Equal(t, float64(8), results[0].Value)
}

func TestGetNestedValue(t *testing.T) {
	record := map[string]interface{}{
		"a": map[string]interface{}{
			"b": map[string]interface{}{"c": 42},
		},
		"flat": "x",
	}

	assert.Equal(t, 42, GetNestedValue(record, "a.b.c"))
	assert.Equal(t, "x", GetNestedValue(record, "flat"))
	assert.Nil(t, GetNestedValue(record, "a.missing.c"), "node trung gian thiếu phải trả về nil")
	assert.Nil(t, GetNestedValue(record, "flat.c"), "node trung gian không phải map phải trả về nil")
	assert.Nil(t, GetNestedValue(nil, "a"))
	assert.Nil(t, GetNestedValue(record, ""))
}

func TestCalculate_UnknownKind(t *testing.T) {
	results := Calculate(sampleData(), []MetricConfig{
		{Name: "x", Kind: "unknown"},
	})
	assert.Equal(t, float64(0), results[0].Value)
}
