// Package basehdl - Test normalize và validate filter của base handler.
package basehdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type testModel struct {
	Name string `json:"name" bson:"name"`
}

func newTestHandler() *BaseHandler[testModel, testModel, testModel] {
	return NewBaseHandler[testModel, testModel, testModel](nil)
}

func TestNormalizeFilter_IDFieldString(t *testing.T) {
	h := newTestHandler()
	oid := primitive.NewObjectID()

	filter := h.normalizeFilter(map[string]interface{}{
		"formId": oid.Hex(),
		"name":   oid.Hex(), // Không phải field Id → giữ nguyên string
	})

	assert.Equal(t, oid, filter["formId"], "string ObjectId ở field *Id phải được chuyển thành ObjectID")
	assert.Equal(t, oid.Hex(), filter["name"])
}

func TestNormalizeFilter_ExtendedJSON(t *testing.T) {
	h := newTestHandler()
	oid := primitive.NewObjectID()

	filter := h.normalizeFilter(map[string]interface{}{
		"ref": map[string]interface{}{"$oid": oid.Hex()},
	})
	assert.Equal(t, oid, filter["ref"], `{"$oid": ...} phải được chuyển thành ObjectID bất kể tên field`)
}

func TestNormalizeFilter_NestedOperators(t *testing.T) {
	h := newTestHandler()
	oid1 := primitive.NewObjectID()
	oid2 := primitive.NewObjectID()

	filter := h.normalizeFilter(map[string]interface{}{
		"formId": map[string]interface{}{
			"$in": []interface{}{oid1.Hex(), oid2.Hex()},
		},
	})

	inner, ok := filter["formId"].(map[string]interface{})
	require.True(t, ok)
	arr, ok := inner["$in"].([]interface{})
	require.True(t, ok)
	assert.Equal(t, oid1, arr[0])
	assert.Equal(t, oid2, arr[1])
}

func TestNormalizeFilter_InvalidObjectIDKeptAsString(t *testing.T) {
	h := newTestHandler()
	filter := h.normalizeFilter(map[string]interface{}{"formId": "not-an-oid"})
	assert.Equal(t, "not-an-oid", filter["formId"])
}

func TestValidateFilter_DeniedField(t *testing.T) {
	h := newTestHandler()
	err := h.validateFilter(map[string]interface{}{"password": "x"})
	assert.Error(t, err, "field bị cấm phải bị từ chối")
}

func TestValidateFilter_DisallowedOperator(t *testing.T) {
	h := newTestHandler()

	err := h.validateFilter(map[string]interface{}{
		"name": map[string]interface{}{"$where": "1 == 1"},
	})
	assert.Error(t, err, "operator ngoài whitelist phải bị từ chối")

	err = h.validateFilter(map[string]interface{}{
		"name": map[string]interface{}{"$regex": "^a", "$options": "i"},
	})
	assert.NoError(t, err)
}

func TestValidateFilter_MaxFields(t *testing.T) {
	h := newTestHandler()

	filter := map[string]interface{}{}
	for i := 0; i < 11; i++ {
		filter[string(rune('a'+i))] = i
	}
	assert.Error(t, h.validateFilter(filter), "quá 10 trường phải bị từ chối")

	delete(filter, "a")
	assert.NoError(t, h.validateFilter(filter))
}

func TestSetFilterOptions(t *testing.T) {
	h := newTestHandler()
	h.SetFilterOptions(FilterOptions{
		DeniedFields:     []string{"internalNote"},
		AllowedOperators: []string{"$eq"},
		MaxFields:        2,
	})

	assert.Error(t, h.validateFilter(map[string]interface{}{"internalNote": "x"}))
	assert.Error(t, h.validateFilter(map[string]interface{}{
		"name": map[string]interface{}{"$gt": 1},
	}))
	assert.NoError(t, h.validateFilter(map[string]interface{}{"password": "x"}), "cấu hình mới thay thế hoàn toàn cấu hình mặc định")
}
