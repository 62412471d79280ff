package submissionsvc

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	basesvc "hr_admin/internal/api/base/service"
	formmodels "hr_admin/internal/api/form/models"
	formsvc "hr_admin/internal/api/form/service"
	submissionmodels "hr_admin/internal/api/submission/models"
	"hr_admin/internal/common"
	"hr_admin/internal/global"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FormSubmissionService là cấu trúc chứa các phương thức liên quan đến Form Submission.
// Ở boundary ghi, FormData được coerce theo FormSchema sở hữu để shape per-key luôn khớp field type.
type FormSubmissionService struct {
	*basesvc.BaseServiceMongoImpl[submissionmodels.FormSubmission]
	schemaService  *formsvc.FormSchemaService
	resolveService *formsvc.FormResolveService
}

// NewFormSubmissionService tạo mới FormSubmissionService
func NewFormSubmissionService() (*FormSubmissionService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.FormSubmissions)
	if !exist {
		return nil, fmt.Errorf("failed to get form_submissions collection: %v", common.ErrNotFound)
	}

	schemaService, err := formsvc.NewFormSchemaService()
	if err != nil {
		return nil, err
	}

	resolveService, err := formsvc.NewFormResolveService()
	if err != nil {
		return nil, err
	}

	return &FormSubmissionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[submissionmodels.FormSubmission](collection),
		schemaService:        schemaService,
		resolveService:       resolveService,
	}, nil
}

// InsertOne override: điền FormName từ schema và coerce FormData trước khi insert
func (s *FormSubmissionService) InsertOne(ctx context.Context, data submissionmodels.FormSubmission) (submissionmodels.FormSubmission, error) {
	if data.FormID.IsZero() {
		return data, common.NewError(
			common.ErrCodeValidationInput,
			"formId là bắt buộc khi tạo submission",
			common.StatusBadRequest,
			nil,
		)
	}

	schema, err := s.schemaService.FindOneById(ctx, data.FormID)
	if err != nil {
		if err == common.ErrNotFound {
			return data, common.NewError(
				common.ErrCodeBusinessOperation,
				fmt.Sprintf("Form schema '%s' không tồn tại", data.FormID.Hex()),
				common.StatusBadRequest,
				nil,
			)
		}
		return data, err
	}

	data.FormName = schema.FormName
	data.FormData = CoerceFormData(schema, data.FormData)

	return s.BaseServiceMongoImpl.InsertOne(ctx, data)
}

// InsertMany override: coerce từng submission theo schema sở hữu, giống InsertOne
func (s *FormSubmissionService) InsertMany(ctx context.Context, data []submissionmodels.FormSubmission) ([]submissionmodels.FormSubmission, error) {
	for i := range data {
		if data[i].FormID.IsZero() {
			return nil, common.NewError(
				common.ErrCodeValidationInput,
				"formId là bắt buộc khi tạo submission",
				common.StatusBadRequest,
				nil,
			)
		}
		schema, err := s.schemaService.FindOneById(ctx, data[i].FormID)
		if err != nil {
			return nil, err
		}
		data[i].FormName = schema.FormName
		data[i].FormData = CoerceFormData(schema, data[i].FormData)
	}
	return s.BaseServiceMongoImpl.InsertMany(ctx, data)
}

// coerceUpdatePayload coerce formData trong update payload theo schema của submission.
// formId đổi trong cùng update → coerce theo schema mới và đồng bộ lại formName.
// Trả về *UpdateData đã coerce để delegate xuống base (payload gốc có thể là map/struct).
func (s *FormSubmissionService) coerceUpdatePayload(ctx context.Context, existingFormID primitive.ObjectID, data interface{}) (*basesvc.UpdateData, error) {
	update, err := basesvc.ToUpdateData(data)
	if err != nil {
		return nil, common.ErrInvalidFormat
	}

	formID := existingFormID
	if v, ok := update.Set["formId"].(primitive.ObjectID); ok && !v.IsZero() {
		formID = v
	}
	if formID.IsZero() {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			"formId là bắt buộc khi tạo submission",
			common.StatusBadRequest,
			nil,
		)
	}

	formData, hasFormData := update.Set["formData"].(map[string]interface{})
	_, formIDChanged := update.Set["formId"]
	if !hasFormData && !formIDChanged {
		return update, nil
	}

	schema, err := s.schemaService.FindOneById(ctx, formID)
	if err != nil {
		if err == common.ErrNotFound {
			return nil, common.NewError(
				common.ErrCodeBusinessOperation,
				fmt.Sprintf("Form schema '%s' không tồn tại", formID.Hex()),
				common.StatusBadRequest,
				nil,
			)
		}
		return nil, err
	}

	if hasFormData {
		update.Set["formData"] = CoerceFormData(schema, formData)
	}
	if formIDChanged {
		update.Set["formName"] = schema.FormName
	}
	return update, nil
}

// UpdateById override: coerce formData trong payload trước khi update
func (s *FormSubmissionService) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (submissionmodels.FormSubmission, error) {
	var zero submissionmodels.FormSubmission

	existing, err := s.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}
	update, err := s.coerceUpdatePayload(ctx, existing.FormID, data)
	if err != nil {
		return zero, err
	}
	return s.BaseServiceMongoImpl.UpdateById(ctx, id, update)
}

// UpdateOne override: coerce formData trong payload trước khi update
func (s *FormSubmissionService) UpdateOne(ctx context.Context, filter interface{}, updateData interface{}, opts *options.UpdateOptions) (submissionmodels.FormSubmission, error) {
	var zero submissionmodels.FormSubmission

	existing, err := s.FindOne(ctx, filter, nil)
	if err != nil {
		return zero, err
	}
	update, err := s.coerceUpdatePayload(ctx, existing.FormID, updateData)
	if err != nil {
		return zero, err
	}
	return s.BaseServiceMongoImpl.UpdateOne(ctx, filter, update, opts)
}

// UpdateMany override: một payload chung áp lên nhiều submission chỉ coerce được
// khi toàn bộ document match cùng một form; nhiều form khác nhau bị chặn.
func (s *FormSubmissionService) UpdateMany(ctx context.Context, filter interface{}, updateData interface{}, opts *options.UpdateOptions) (int64, error) {
	upd, err := basesvc.ToUpdateData(updateData)
	if err != nil {
		return 0, common.ErrInvalidFormat
	}
	if _, hasFormData := upd.Set["formData"]; !hasFormData {
		return s.BaseServiceMongoImpl.UpdateMany(ctx, filter, updateData, opts)
	}

	formIDs, err := s.Distinct(ctx, "formId", filter)
	if err != nil {
		return 0, err
	}
	if len(formIDs) > 1 {
		return 0, common.NewError(
			common.ErrCodeBusinessOperation,
			"Không thể update formData hàng loạt cho submission thuộc nhiều form khác nhau",
			common.StatusBadRequest,
			nil,
		)
	}

	existingFormID := primitive.NilObjectID
	if len(formIDs) == 1 {
		if id, ok := formIDs[0].(primitive.ObjectID); ok {
			existingFormID = id
		}
	}
	update, err := s.coerceUpdatePayload(ctx, existingFormID, upd)
	if err != nil {
		return 0, err
	}
	return s.BaseServiceMongoImpl.UpdateMany(ctx, filter, update, opts)
}

// FindOneAndUpdate override: coerce formData trong payload trước khi update
func (s *FormSubmissionService) FindOneAndUpdate(ctx context.Context, filter interface{}, updateData interface{}, opts *options.FindOneAndUpdateOptions) (submissionmodels.FormSubmission, error) {
	var zero submissionmodels.FormSubmission

	existing, err := s.FindOne(ctx, filter, nil)
	if err != nil {
		return zero, err
	}
	update, err := s.coerceUpdatePayload(ctx, existing.FormID, updateData)
	if err != nil {
		return zero, err
	}
	return s.BaseServiceMongoImpl.FindOneAndUpdate(ctx, filter, update, opts)
}

// Upsert override: update path coerce theo schema của document hiện có,
// insert path bắt buộc có formId trong payload như InsertOne
func (s *FormSubmissionService) Upsert(ctx context.Context, filter interface{}, data interface{}) (submissionmodels.FormSubmission, error) {
	var zero submissionmodels.FormSubmission

	existing, err := s.FindOne(ctx, filter, nil)
	if err != nil && err != common.ErrNotFound {
		return zero, err
	}
	update, err := s.coerceUpdatePayload(ctx, existing.FormID, data)
	if err != nil {
		return zero, err
	}
	return s.BaseServiceMongoImpl.Upsert(ctx, filter, update)
}

// UpsertMany override: coerce từng submission theo schema sở hữu như InsertMany
func (s *FormSubmissionService) UpsertMany(ctx context.Context, filter interface{}, data []submissionmodels.FormSubmission) ([]submissionmodels.FormSubmission, error) {
	for i := range data {
		if data[i].FormID.IsZero() {
			continue // Upsert theo filter có thể không đổi formId, base giữ nguyên document
		}
		schema, err := s.schemaService.FindOneById(ctx, data[i].FormID)
		if err != nil {
			return nil, err
		}
		data[i].FormName = schema.FormName
		data[i].FormData = CoerceFormData(schema, data[i].FormData)
	}
	return s.BaseServiceMongoImpl.UpsertMany(ctx, filter, data)
}

// CoerceFormData chuẩn hóa shape per-key của formData theo field type của schema:
// number → float64, switch → bool, multipleSelect → []string, date → chuỗi YYYY-MM-DD,
// các type text-like → string. Key không có trong schema được giữ nguyên.
func CoerceFormData(schema formmodels.FormSchema, formData map[string]interface{}) map[string]interface{} {
	if formData == nil {
		return map[string]interface{}{}
	}

	fieldByName := make(map[string]formmodels.FieldSchema, len(schema.Fields))
	for _, f := range schema.Fields {
		fieldByName[f.Name] = f
	}

	out := make(map[string]interface{}, len(formData))
	for key, value := range formData {
		field, ok := fieldByName[key]
		if !ok {
			out[key] = value
			continue
		}
		out[key] = coerceValue(field, value)
	}
	return out
}

func coerceValue(field formmodels.FieldSchema, value interface{}) interface{} {
	if value == nil {
		return nil
	}

	switch field.Type {
	case formmodels.FieldTypeNumber:
		if num, ok := coerceFloat(value); ok {
			return num
		}
		return value

	case formmodels.FieldTypeSwitch:
		switch v := value.(type) {
		case bool:
			return v
		case string:
			return v == "true" || v == "1"
		case float64:
			return v != 0
		}
		return false

	case formmodels.FieldTypeMultipleSelect:
		// Lưu dạng []string các value đã chọn
		switch v := value.(type) {
		case []string:
			return v
		case []interface{}:
			out := make([]string, 0, len(v))
			for _, item := range v {
				out = append(out, coerceString(item))
			}
			return out
		case string:
			if v == "" {
				return []string{}
			}
			return []string{v}
		}
		return []string{}

	case formmodels.FieldTypeDate:
		// Chuẩn về YYYY-MM-DD nếu parse được, giữ nguyên nếu không
		if str, ok := value.(string); ok {
			for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"} {
				if t, err := time.Parse(layout, str); err == nil {
					return t.Format("2006-01-02")
				}
			}
		}
		return value

	case formmodels.FieldTypeText, formmodels.FieldTypeEmail, formmodels.FieldTypePassword,
		formmodels.FieldTypeTel, formmodels.FieldTypeURL, formmodels.FieldTypeTextarea,
		formmodels.FieldTypeSelect, formmodels.FieldTypeRadio,
		formmodels.FieldTypeSelectAutocomplete, formmodels.FieldTypeFile:
		// Foreign ref dạng {_id, display} được giữ nguyên, còn lại chuẩn về string
		if _, isMap := value.(map[string]interface{}); isMap {
			return value
		}
		return coerceString(value)
	}

	return value
}

func coerceFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		num, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return num, true
	}
	return 0, false
}

func coerceString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	}
	return fmt.Sprintf("%v", value)
}
