package quotadto

// QuotaCreateInput dùng cho tạo quota theo ngày (tầng transport)
type QuotaCreateInput struct {
	Date  string `json:"date" validate:"required,date_ymd"`
	Limit int    `json:"limit" validate:"min=0"`
	Note  string `json:"note,omitempty"`
}

// QuotaUpdateInput dùng cho cập nhật quota (tầng transport)
type QuotaUpdateInput struct {
	Limit int    `json:"limit,omitempty" validate:"omitempty,min=0"`
	Note  string `json:"note,omitempty"`
}

// QuotaRangeInput gán cùng một limit cho mọi ngày trong khoảng [start, end]
type QuotaRangeInput struct {
	Start string `json:"start" validate:"required,date_ymd"`
	End   string `json:"end" validate:"required,date_ymd"`
	Limit int    `json:"limit" validate:"min=0"`
	Note  string `json:"note,omitempty"`
}

// HolidayCreateInput dùng cho tạo ngày nghỉ lễ (tầng transport)
type HolidayCreateInput struct {
	Date string `json:"date" validate:"required,date_ymd"`
	Name string `json:"name" validate:"required"`
}

// HolidayUpdateInput dùng cho cập nhật ngày nghỉ lễ (tầng transport)
type HolidayUpdateInput struct {
	Name string `json:"name,omitempty"`
}
