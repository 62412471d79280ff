package formsvc

import (
	"context"
	"fmt"

	basesvc "hr_admin/internal/api/base/service"
	formmodels "hr_admin/internal/api/form/models"
	"hr_admin/internal/common"
	"hr_admin/internal/global"
	"hr_admin/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FormSchemaService là cấu trúc chứa các phương thức liên quan đến Form Schema
type FormSchemaService struct {
	*basesvc.BaseServiceMongoImpl[formmodels.FormSchema]
}

// NewFormSchemaService tạo mới FormSchemaService
func NewFormSchemaService() (*FormSchemaService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.FormFields)
	if !exist {
		return nil, fmt.Errorf("failed to get form_fields collection: %v", common.ErrNotFound)
	}

	return &FormSchemaService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[formmodels.FormSchema](collection),
	}, nil
}

// ValidateSchema validate business logic của một form schema:
// tên field không trùng trong schema, choice type phải có nguồn options,
// foreign reference phải đủ cặp ForeignFormID + ForeignField.
func (s *FormSchemaService) ValidateSchema(schema formmodels.FormSchema) error {
	seen := make(map[string]bool, len(schema.Fields))
	for _, field := range schema.Fields {
		if seen[field.Name] {
			return common.NewError(
				common.ErrCodeBusinessOperation,
				fmt.Sprintf("Tên field '%s' bị trùng trong schema '%s'. Mỗi field phải có tên duy nhất trong một form", field.Name, schema.FormName),
				common.StatusBadRequest,
				nil,
			)
		}
		seen[field.Name] = true

		// Foreign reference phải đủ cặp: có một nửa → reject khi ghi
		if (field.ForeignFormID != "") != (field.ForeignField != "") {
			return common.NewError(
				common.ErrCodeBusinessOperation,
				fmt.Sprintf("Field '%s' có cấu hình foreign reference không đầy đủ: foreignFormId và foreignField phải cùng có hoặc cùng vắng", field.Name),
				common.StatusBadRequest,
				nil,
			)
		}

		if field.IsChoiceType() && len(field.Options) == 0 && len(field.Items) == 0 && !field.HasForeignRef() {
			return common.NewError(
				common.ErrCodeBusinessOperation,
				fmt.Sprintf("Field '%s' (type %s) phải có options, items hoặc foreign reference làm nguồn lựa chọn", field.Name, field.Type),
				common.StatusBadRequest,
				nil,
			)
		}
	}
	return nil
}

// ValidateUniqueness kiểm tra formName chưa tồn tại (ngoài chính document đang sửa)
func (s *FormSchemaService) ValidateUniqueness(ctx context.Context, schema formmodels.FormSchema) error {
	if schema.FormName == "" {
		return nil
	}

	filter := bson.M{"formName": schema.FormName}
	if !schema.ID.IsZero() {
		filter["_id"] = bson.M{"$ne": schema.ID}
	}

	_, err := s.FindOne(ctx, filter, nil)
	if err == nil {
		return common.NewError(
			common.ErrCodeBusinessOperation,
			fmt.Sprintf("Đã tồn tại form schema với tên '%s'. Tên form phải duy nhất trong hệ thống", schema.FormName),
			common.StatusConflict,
			nil,
		)
	}
	if err != common.ErrNotFound {
		return fmt.Errorf("lỗi khi kiểm tra uniqueness formName: %v", err)
	}
	return nil
}

// validateWrite chạy đủ bộ validation trước mọi thao tác ghi (insert, update, upsert)
func (s *FormSchemaService) validateWrite(ctx context.Context, schema formmodels.FormSchema) error {
	if err := s.ValidateSchema(schema); err != nil {
		return err
	}
	return s.ValidateUniqueness(ctx, schema)
}

// MergeUpdateIntoSchema áp update data ($set/$unset) lên schema hiện có,
// trả về trạng thái schema sau khi ghi để validate trước khi thực sự update.
// Partial update chỉ đụng một phần field vẫn phải giữ schema tổng thể hợp lệ.
func MergeUpdateIntoSchema(existing formmodels.FormSchema, data interface{}) (formmodels.FormSchema, error) {
	update, err := basesvc.ToUpdateData(data)
	if err != nil {
		return existing, common.ErrInvalidFormat
	}

	merged, err := utility.ToMap(existing)
	if err != nil {
		return existing, fmt.Errorf("lỗi convert schema hiện có sang map: %v", err)
	}
	for k, v := range update.Set {
		merged[k] = v
	}
	for k := range update.Unset {
		delete(merged, k)
	}

	raw, err := bson.Marshal(merged)
	if err != nil {
		return existing, fmt.Errorf("lỗi marshal schema sau merge: %v", err)
	}
	var result formmodels.FormSchema
	if err := bson.Unmarshal(raw, &result); err != nil {
		return existing, fmt.Errorf("lỗi unmarshal schema sau merge: %v", err)
	}
	result.ID = existing.ID
	return result, nil
}

// InsertOne override để thêm business logic validation trước khi insert
func (s *FormSchemaService) InsertOne(ctx context.Context, data formmodels.FormSchema) (formmodels.FormSchema, error) {
	if err := s.validateWrite(ctx, data); err != nil {
		return data, err
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, data)
}

// InsertMany override: validate từng schema và tên form không trùng trong batch
func (s *FormSchemaService) InsertMany(ctx context.Context, data []formmodels.FormSchema) ([]formmodels.FormSchema, error) {
	seen := make(map[string]bool, len(data))
	for _, item := range data {
		if item.FormName != "" && seen[item.FormName] {
			return nil, common.NewError(
				common.ErrCodeBusinessOperation,
				fmt.Sprintf("Tên form '%s' bị trùng trong danh sách insert", item.FormName),
				common.StatusBadRequest,
				nil,
			)
		}
		seen[item.FormName] = true
		if err := s.validateWrite(ctx, item); err != nil {
			return nil, err
		}
	}
	return s.BaseServiceMongoImpl.InsertMany(ctx, data)
}

// UpdateById override: validate trạng thái schema sau merge trước khi update
func (s *FormSchemaService) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (formmodels.FormSchema, error) {
	var zero formmodels.FormSchema

	existing, err := s.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}
	merged, err := MergeUpdateIntoSchema(existing, data)
	if err != nil {
		return zero, err
	}
	if err := s.validateWrite(ctx, merged); err != nil {
		return zero, err
	}
	return s.BaseServiceMongoImpl.UpdateById(ctx, id, data)
}

// UpdateOne override: validate trạng thái schema sau merge trước khi update
func (s *FormSchemaService) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (formmodels.FormSchema, error) {
	var zero formmodels.FormSchema

	existing, err := s.FindOne(ctx, filter, nil)
	if err != nil {
		return zero, err
	}
	merged, err := MergeUpdateIntoSchema(existing, update)
	if err != nil {
		return zero, err
	}
	if err := s.validateWrite(ctx, merged); err != nil {
		return zero, err
	}
	return s.BaseServiceMongoImpl.UpdateOne(ctx, filter, update, opts)
}

// UpdateMany override: validate trạng thái sau merge của từng document match filter.
// Set formName chung cho nhiều document chắc chắn sinh tên trùng nên bị chặn sớm.
func (s *FormSchemaService) UpdateMany(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (int64, error) {
	existingDocs, err := s.Find(ctx, filter, nil)
	if err != nil {
		return 0, err
	}

	if upd, convErr := basesvc.ToUpdateData(update); convErr == nil {
		if _, hasName := upd.Set["formName"]; hasName && len(existingDocs) > 1 {
			return 0, common.NewError(
				common.ErrCodeBusinessOperation,
				"Không thể set cùng một formName cho nhiều schema: tên form phải duy nhất",
				common.StatusBadRequest,
				nil,
			)
		}
	}

	for _, existing := range existingDocs {
		merged, err := MergeUpdateIntoSchema(existing, update)
		if err != nil {
			return 0, err
		}
		if err := s.validateWrite(ctx, merged); err != nil {
			return 0, err
		}
	}
	return s.BaseServiceMongoImpl.UpdateMany(ctx, filter, update, opts)
}

// FindOneAndUpdate override: validate trạng thái schema sau merge trước khi update
func (s *FormSchemaService) FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts *options.FindOneAndUpdateOptions) (formmodels.FormSchema, error) {
	var zero formmodels.FormSchema

	existing, err := s.FindOne(ctx, filter, nil)
	if err != nil {
		return zero, err
	}
	merged, err := MergeUpdateIntoSchema(existing, update)
	if err != nil {
		return zero, err
	}
	if err := s.validateWrite(ctx, merged); err != nil {
		return zero, err
	}
	return s.BaseServiceMongoImpl.FindOneAndUpdate(ctx, filter, update, opts)
}

// Upsert override: update path validate trạng thái sau merge, insert path validate data mới
func (s *FormSchemaService) Upsert(ctx context.Context, filter interface{}, data interface{}) (formmodels.FormSchema, error) {
	var zero formmodels.FormSchema

	existing, err := s.FindOne(ctx, filter, nil)
	if err != nil && err != common.ErrNotFound {
		return zero, err
	}
	// Khi chưa tồn tại, existing là zero value → merge cho ra schema sẽ được insert
	merged, err := MergeUpdateIntoSchema(existing, data)
	if err != nil {
		return zero, err
	}
	if err := s.validateWrite(ctx, merged); err != nil {
		return zero, err
	}
	return s.BaseServiceMongoImpl.Upsert(ctx, filter, data)
}

// UpsertMany override: validate từng schema như InsertMany
func (s *FormSchemaService) UpsertMany(ctx context.Context, filter interface{}, data []formmodels.FormSchema) ([]formmodels.FormSchema, error) {
	for _, item := range data {
		if err := s.validateWrite(ctx, item); err != nil {
			return nil, err
		}
	}
	return s.BaseServiceMongoImpl.UpsertMany(ctx, filter, data)
}

// FindPartialData lấy danh sách rút gọn id + formName của tất cả schema (cho danh sách chọn form)
func (s *FormSchemaService) FindPartialData(ctx context.Context) ([]formmodels.FormSchemaPartial, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 1, "formName": 1}).
		SetSort(bson.M{"formName": 1})

	cursor, err := s.Collection().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	results := make([]formmodels.FormSchemaPartial, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	return results, nil
}
