package workhourdto

// WorkHourCreateInput dùng cho ghi giờ làm việc (tầng transport).
// Ghi cùng cặp (employeeName, date) là upsert: giá trị mới thay giá trị cũ.
type WorkHourCreateInput struct {
	EmployeeName string  `json:"employeeName" validate:"required"`
	Date         string  `json:"date" validate:"required,date_ymd"`
	Hours        float64 `json:"hours" validate:"min=0,max=24"`
	Note         string  `json:"note,omitempty"`
}

// WorkHourUpdateInput dùng cho cập nhật giờ làm việc (tầng transport)
type WorkHourUpdateInput struct {
	Hours float64 `json:"hours,omitempty" validate:"omitempty,min=0,max=24"`
	Note  string  `json:"note,omitempty"`
}
