package quotasvc

// Các trạng thái của RangeSelection
const (
	SelectionIdle          = "idle"
	SelectionRangeStart    = "rangeStart"
	SelectionRangeComplete = "rangeComplete"
)

// RangeSelection là state machine chọn khoảng ngày trên calendar:
//
//	Idle --ctrl-click--> RangeStart{start} --shift-click--> RangeComplete{min,max}
//
// Khoảng luôn được chuẩn hóa theo thứ tự thời gian bất kể thứ tự click.
// Plain click ở trạng thái khác Idle hủy về Idle và chọn đúng ngày vừa click.
// Ngày dạng YYYY-MM-DD nên so sánh chuỗi trùng với so sánh thời gian.
type RangeSelection struct {
	state string
	start string
	end   string
}

// NewRangeSelection tạo state machine ở trạng thái Idle
func NewRangeSelection() *RangeSelection {
	return &RangeSelection{state: SelectionIdle}
}

// State trả về trạng thái hiện tại
func (r *RangeSelection) State() string {
	return r.state
}

// CtrlClick bắt đầu chọn khoảng từ một ngày
func (r *RangeSelection) CtrlClick(date string) {
	r.state = SelectionRangeStart
	r.start = date
	r.end = ""
}

// ShiftClick chốt đầu kia của khoảng. Chỉ có hiệu lực khi đã có điểm bắt đầu;
// ở Idle, shift-click hành xử như ctrl-click (bắt đầu khoảng mới).
func (r *RangeSelection) ShiftClick(date string) {
	switch r.state {
	case SelectionIdle:
		r.CtrlClick(date)
	case SelectionRangeStart, SelectionRangeComplete:
		start, end := r.start, date
		if end < start {
			start, end = end, start
		}
		r.state = SelectionRangeComplete
		r.start = start
		r.end = end
	}
}

// Click plain click: ở Idle chọn đúng một ngày; ở trạng thái khác hủy khoảng
// đang chọn về Idle và chọn ngày vừa click.
// Trả về ngày được chọn đơn lẻ.
func (r *RangeSelection) Click(date string) string {
	r.state = SelectionIdle
	r.start = ""
	r.end = ""
	return date
}

// Clear đưa state machine về Idle
func (r *RangeSelection) Clear() {
	r.state = SelectionIdle
	r.start = ""
	r.end = ""
}

// Range trả về khoảng đã chốt (start ≤ end). ok=false khi chưa ở RangeComplete.
func (r *RangeSelection) Range() (start, end string, ok bool) {
	if r.state != SelectionRangeComplete {
		return "", "", false
	}
	return r.start, r.end, true
}
