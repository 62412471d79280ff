package submissiondto

// FormSubmissionCreateInput dùng cho tạo submission (tầng transport).
// FormID string hex được transform sang ObjectID; FormName được service tự điền từ schema.
type FormSubmissionCreateInput struct {
	FormID   string                 `json:"formId" validate:"required" transform:"str_objectid,required"`
	FormData map[string]interface{} `json:"formData" validate:"required"`
}

// FormSubmissionUpdateInput dùng cho cập nhật submission (tầng transport)
type FormSubmissionUpdateInput struct {
	FormData map[string]interface{} `json:"formData,omitempty"`
}

// GridQueryInput yêu cầu query dạng bảng: filter per-column + phân trang
type GridQueryInput struct {
	FormID  string            `json:"formId" validate:"required"`
	Filters map[string]string `json:"filters,omitempty"` // column → chuỗi filter substring
	Columns []string          `json:"columns,omitempty"` // Danh sách cột hiển thị, rỗng → lấy từ schema
	Page    int64             `json:"page,omitempty"`
	Limit   int64             `json:"limit,omitempty"`
}
