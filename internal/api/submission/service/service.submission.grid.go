package submissionsvc

import (
	"context"
	"strings"

	formmodels "hr_admin/internal/api/form/models"
	submissionmodels "hr_admin/internal/api/submission/models"
	"hr_admin/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Giới hạn của facet scan: tối đa số raw value được quét và số suggestion trả về
const (
	facetScanCap   = 5000
	facetReturnCap = 50
)

// allowedPageSizes các page size hợp lệ của grid; giá trị khác bị chuẩn về mặc định
var allowedPageSizes = map[int64]bool{10: true, 20: true, 50: true, 100: true}

const defaultPageSize = 10

// GridRequest yêu cầu query dạng bảng
type GridRequest struct {
	FormID  primitive.ObjectID
	Filters map[string]string // column → chuỗi filter (substring, không phân biệt hoa thường)
	Columns []string          // Rỗng → derive từ schema
	Page    int64
	Limit   int64
}

// GridResult kết quả query dạng bảng. Empty=true khi không có item nào khớp (không phải lỗi).
type GridResult struct {
	Items     []submissionmodels.FormSubmission `json:"items"`
	Columns   []string                          `json:"columns"`
	Page      int64                             `json:"page"`
	Limit     int64                             `json:"limit"`
	Total     int64                             `json:"total"`
	TotalPage int64                             `json:"totalPage"`
	Empty     bool                              `json:"empty"`
}

// QueryGrid query submissions của một form theo kiểu bảng:
// filter substring per-column (khớp raw value hoặc label của option đã resolve),
// phân trang với page size chuẩn hóa 10/20/50/100.
func (s *FormSubmissionService) QueryGrid(ctx context.Context, req GridRequest) (*GridResult, error) {
	schema, err := s.resolveService.ResolveSchema(ctx, req.FormID)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	submissions, err := s.Find(ctx, bson.M{"formId": req.FormID}, opts)
	if err != nil {
		return nil, err
	}

	columns := req.Columns
	if len(columns) == 0 {
		columns = make([]string, 0, len(schema.Fields))
		for _, f := range schema.Fields {
			columns = append(columns, f.Name)
		}
	}

	// Map value → label per field, để filter khớp cả label hiển thị
	labelByField := buildLabelLookup(schema)

	filtered := submissions
	if len(req.Filters) > 0 {
		filtered = make([]submissionmodels.FormSubmission, 0, len(submissions))
		for _, sub := range submissions {
			if matchesFilters(sub, req.Filters, labelByField) {
				filtered = append(filtered, sub)
			}
		}
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if !allowedPageSizes[limit] {
		limit = defaultPageSize
	}

	total := int64(len(filtered))
	totalPage := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	items := filtered[start:end]
	if items == nil {
		items = []submissionmodels.FormSubmission{}
	}

	return &GridResult{
		Items:     items,
		Columns:   columns,
		Page:      page,
		Limit:     limit,
		Total:     total,
		TotalPage: totalPage,
		Empty:     total == 0,
	}, nil
}

// Facets trả về danh sách giá trị gợi ý (distinct) của một cột cho filter dropdown.
// Quét tối đa facetScanCap raw value, trả về tối đa facetReturnCap giá trị.
func (s *FormSubmissionService) Facets(ctx context.Context, formID primitive.ObjectID, column string) ([]string, error) {
	opts := options.Find().SetLimit(facetScanCap).SetProjection(bson.M{"formData." + column: 1})
	submissions, err := s.Find(ctx, bson.M{"formId": formID}, opts)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	values := make([]string, 0)
	for _, sub := range submissions {
		raw := formDataString(sub, column)
		if raw == "" || seen[raw] {
			continue
		}
		seen[raw] = true
		values = append(values, raw)
		if len(values) >= facetReturnCap {
			break
		}
	}

	return values, nil
}

// buildLabelLookup build map field → (value → label) từ options đã resolve của schema
func buildLabelLookup(schema formmodels.FormSchema) map[string]map[string]string {
	lookup := make(map[string]map[string]string)
	for _, field := range schema.Fields {
		if len(field.Options) == 0 {
			continue
		}
		byValue := make(map[string]string, len(field.Options))
		for _, opt := range field.Options {
			byValue[opt.Value] = opt.Label
		}
		lookup[field.Name] = byValue
	}
	return lookup
}

// matchesFilters kiểm tra submission khớp tất cả filter per-column (AND):
// substring không phân biệt hoa thường trên raw value hoặc label của option.
func matchesFilters(sub submissionmodels.FormSubmission, filters map[string]string, labelByField map[string]map[string]string) bool {
	for column, needle := range filters {
		if needle == "" {
			continue // Filter rỗng = không lọc cột này
		}
		needleLower := strings.ToLower(needle)

		raw := formDataString(sub, column)
		if strings.Contains(strings.ToLower(raw), needleLower) {
			continue
		}

		// Thử khớp trên label đã resolve (select/foreign ref lưu value, hiển thị label)
		if byValue, ok := labelByField[column]; ok {
			if label, ok := byValue[raw]; ok && strings.Contains(strings.ToLower(label), needleLower) {
				continue
			}
		}

		return false
	}
	return true
}

// formDataString lấy giá trị một cột của submission dưới dạng chuỗi.
// Foreign ref {_id, display} trả về display; mảng nối bằng ", ".
func formDataString(sub submissionmodels.FormSubmission, column string) string {
	value, ok := sub.FormData[column]
	if !ok || value == nil {
		return ""
	}

	switch v := value.(type) {
	case map[string]interface{}:
		if display, ok := v["display"].(string); ok {
			return display
		}
		if id, ok := v["_id"].(string); ok {
			return id
		}
		return ""
	case []string:
		return strings.Join(v, ", ")
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, coerceString(item))
		}
		return strings.Join(parts, ", ")
	case primitive.ObjectID:
		return utility.ObjectID2String(v)
	}

	return coerceString(value)
}
