// Package formsvc - Test invalidation handler của resolved-schema cache (không cần DB).
package formsvc

import (
	"context"
	"testing"
	"time"

	"hr_admin/internal/api/events"
	formmodels "hr_admin/internal/api/form/models"
	"hr_admin/internal/global"

	"github.com/stretchr/testify/assert"
)

// Signature phải khớp events.DataChangeHandler để đăng ký được lên event bus
var _ events.DataChangeHandler = (*FormResolveService)(nil).handleDataChange

func newResolveServiceWithCache() *FormResolveService {
	return &FormResolveService{
		cache: map[string]cachedSchema{
			"abc": {
				schema:    formmodels.FormSchema{FormName: "attendance"},
				expiresAt: time.Now().Add(time.Minute),
			},
		},
	}
}

func TestHandleDataChange_InvalidatesOnSubmissionChange(t *testing.T) {
	global.ColNames.FormFields = "form_fields"
	global.ColNames.FormSubmissions = "form_submissions"

	s := newResolveServiceWithCache()
	s.handleDataChange(context.Background(), events.DataChangeEvent{
		CollectionName: "form_submissions",
		Operation:      events.OpInsert,
	})
	assert.Empty(t, s.cache, "submission thay đổi phải invalidate toàn bộ resolved cache")
}

func TestHandleDataChange_InvalidatesOnSchemaChange(t *testing.T) {
	global.ColNames.FormFields = "form_fields"
	global.ColNames.FormSubmissions = "form_submissions"

	s := newResolveServiceWithCache()
	s.handleDataChange(context.Background(), events.DataChangeEvent{
		CollectionName: "form_fields",
		Operation:      events.OpUpdate,
	})
	assert.Empty(t, s.cache, "schema thay đổi phải invalidate toàn bộ resolved cache")
}

func TestHandleDataChange_IgnoresOtherCollections(t *testing.T) {
	global.ColNames.FormFields = "form_fields"
	global.ColNames.FormSubmissions = "form_submissions"

	s := newResolveServiceWithCache()
	s.handleDataChange(context.Background(), events.DataChangeEvent{
		CollectionName: "quotas",
		Operation:      events.OpInsert,
	})
	assert.Len(t, s.cache, 1, "collection không liên quan không được đụng vào cache")
}
