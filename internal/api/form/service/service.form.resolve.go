package formsvc

import (
	"context"
	"fmt"
	"sync"
	"time"

	basesvc "hr_admin/internal/api/base/service"
	"hr_admin/internal/api/events"
	formmodels "hr_admin/internal/api/form/models"
	submissionmodels "hr_admin/internal/api/submission/models"
	"hr_admin/internal/common"
	"hr_admin/internal/global"
	"hr_admin/internal/logger"
	"hr_admin/internal/utility"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// resolvedCacheTTL thời gian sống của một resolved schema trong cache
const resolvedCacheTTL = 5 * time.Minute

// cachedSchema một entry trong cache resolved schema
type cachedSchema struct {
	schema    formmodels.FormSchema
	expiresAt time.Time
}

// FormResolveService resolve schema: thay options tĩnh của các field có foreign reference
// bằng options động từ submissions của form ngoại.
// Kết quả được cache theo schema id với TTL, invalidate qua data-change event bus
// khi form_fields hoặc form_submissions thay đổi.
type FormResolveService struct {
	schemaService     *FormSchemaService
	submissionService *basesvc.BaseServiceMongoImpl[submissionmodels.FormSubmission]

	mu    sync.RWMutex
	cache map[string]cachedSchema
}

// NewFormResolveService tạo mới FormResolveService và đăng ký invalidation handler lên event bus
func NewFormResolveService() (*FormResolveService, error) {
	schemaService, err := NewFormSchemaService()
	if err != nil {
		return nil, err
	}

	collection, exist := global.RegistryCollections.Get(global.ColNames.FormSubmissions)
	if !exist {
		return nil, fmt.Errorf("failed to get form_submissions collection: %v", common.ErrNotFound)
	}

	s := &FormResolveService{
		schemaService:     schemaService,
		submissionService: basesvc.NewBaseServiceMongo[submissionmodels.FormSubmission](collection),
		cache:             make(map[string]cachedSchema),
	}

	events.OnDataChanged(s.handleDataChange)

	return s, nil
}

// handleDataChange invalidate cache khi submission hoặc schema thay đổi:
// resolved options có thể đã stale. Signature phải khớp events.DataChangeHandler.
func (s *FormResolveService) handleDataChange(_ context.Context, event events.DataChangeEvent) {
	if event.CollectionName == global.ColNames.FormSubmissions ||
		event.CollectionName == global.ColNames.FormFields {
		s.InvalidateAll()
	}
}

// InvalidateAll xóa toàn bộ cache resolved schema
func (s *FormResolveService) InvalidateAll() {
	s.mu.Lock()
	s.cache = make(map[string]cachedSchema)
	s.mu.Unlock()
}

// ResolveSchema trả về schema với options đã resolve cho các field có foreign reference.
// Schema id không tồn tại → ErrNotFound. Foreign reference hỏng (id sai format,
// foreignField không có trong formData) → giữ options tĩnh và log Warn, không lỗi.
func (s *FormResolveService) ResolveSchema(ctx context.Context, id primitive.ObjectID) (formmodels.FormSchema, error) {
	key := id.Hex()

	s.mu.RLock()
	if entry, ok := s.cache[key]; ok && time.Now().Before(entry.expiresAt) {
		s.mu.RUnlock()
		return entry.schema, nil
	}
	s.mu.RUnlock()

	schema, err := s.schemaService.FindOneById(ctx, id)
	if err != nil {
		return schema, err
	}

	for i := range schema.Fields {
		field := &schema.Fields[i]
		if !field.IsChoiceType() || !field.HasForeignRef() {
			continue
		}

		resolved, ok := s.resolveForeignOptions(ctx, field)
		if ok && len(resolved) > 0 {
			field.Options = resolved
		}
		// 0 submissions hoặc reference hỏng → giữ options tĩnh (fallback có chủ đích)
	}

	s.mu.Lock()
	s.cache[key] = cachedSchema{schema: schema, expiresAt: time.Now().Add(resolvedCacheTTL)}
	s.mu.Unlock()

	return schema, nil
}

// resolveForeignOptions build danh sách options từ submissions của form ngoại:
// mỗi submission → một option {value: submissionId, label: formData[foreignField]}.
// Trả về ok=false khi reference hỏng (đã log Warn).
func (s *FormResolveService) resolveForeignOptions(ctx context.Context, field *formmodels.FieldSchema) ([]formmodels.FieldOption, bool) {
	log := logger.GetAppLogger()

	foreignID := utility.String2ObjectID(field.ForeignFormID)
	if foreignID.IsZero() {
		log.WithFields(logrus.Fields{
			"field":         field.Name,
			"foreignFormId": field.ForeignFormID,
		}).Warn("Foreign reference hỏng: foreignFormId không phải ObjectID hợp lệ, giữ options tĩnh")
		return nil, false
	}

	submissions, err := s.submissionService.Find(ctx, bson.M{"formId": foreignID}, nil)
	if err != nil {
		log.WithFields(logrus.Fields{
			"field":         field.Name,
			"foreignFormId": field.ForeignFormID,
			"error":         err,
		}).Warn("Không query được submissions của form ngoại, giữ options tĩnh")
		return nil, false
	}

	options := make([]formmodels.FieldOption, 0, len(submissions))
	for _, sub := range submissions {
		label, ok := sub.FormData[field.ForeignField].(string)
		if !ok {
			// foreignField thiếu hoặc không phải string trong submission này → bỏ qua option đó
			log.WithFields(logrus.Fields{
				"field":        field.Name,
				"foreignField": field.ForeignField,
				"submissionId": sub.ID.Hex(),
			}).Warn("foreignField thiếu hoặc sai kiểu trong submission, bỏ qua option")
			continue
		}
		options = append(options, formmodels.FieldOption{
			Value: sub.ID.Hex(),
			Label: label,
		})
	}

	return options, true
}
