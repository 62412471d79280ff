// Package quotasvc - Test state machine chọn khoảng ngày trên calendar.
package quotasvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangeSelection_CtrlThenShift(t *testing.T) {
	r := NewRangeSelection()
	assert.Equal(t, SelectionIdle, r.State())

	r.CtrlClick("2026-03-10")
	assert.Equal(t, SelectionRangeStart, r.State())
	_, _, ok := r.Range()
	assert.False(t, ok, "chưa chốt khoảng thì Range phải trả về ok=false")

	r.ShiftClick("2026-03-20")
	assert.Equal(t, SelectionRangeComplete, r.State())
	start, end, ok := r.Range()
	assert.True(t, ok)
	assert.Equal(t, "2026-03-10", start)
	assert.Equal(t, "2026-03-20", end)
}

func TestRangeSelection_NormalizesChronologically(t *testing.T) {
	// Shift-click vào ngày trước điểm bắt đầu: khoảng vẫn phải start ≤ end
	r := NewRangeSelection()
	r.CtrlClick("2026-03-20")
	r.ShiftClick("2026-03-10")

	start, end, ok := r.Range()
	assert.True(t, ok)
	assert.Equal(t, "2026-03-10", start)
	assert.Equal(t, "2026-03-20", end)
}

func TestRangeSelection_ShiftFromIdle(t *testing.T) {
	// Shift-click khi chưa có điểm bắt đầu hành xử như ctrl-click
	r := NewRangeSelection()
	r.ShiftClick("2026-03-15")
	assert.Equal(t, SelectionRangeStart, r.State())
}

func TestRangeSelection_ShiftAfterComplete_ExtendsFromStart(t *testing.T) {
	r := NewRangeSelection()
	r.CtrlClick("2026-03-10")
	r.ShiftClick("2026-03-15")
	r.ShiftClick("2026-03-25")

	start, end, ok := r.Range()
	assert.True(t, ok)
	assert.Equal(t, "2026-03-10", start)
	assert.Equal(t, "2026-03-25", end)
}

func TestRangeSelection_PlainClickCancels(t *testing.T) {
	r := NewRangeSelection()
	r.CtrlClick("2026-03-10")
	r.ShiftClick("2026-03-20")

	selected := r.Click("2026-03-05")
	assert.Equal(t, "2026-03-05", selected, "plain click phải chọn đúng ngày vừa click")
	assert.Equal(t, SelectionIdle, r.State())
	_, _, ok := r.Range()
	assert.False(t, ok)
}

func TestRangeSelection_Clear(t *testing.T) {
	r := NewRangeSelection()
	r.CtrlClick("2026-03-10")
	r.Clear()
	assert.Equal(t, SelectionIdle, r.State())
}
