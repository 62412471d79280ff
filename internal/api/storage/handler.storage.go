package storage

import (
	"fmt"

	basehdl "hr_admin/internal/api/base/handler"
	"hr_admin/internal/common"

	"github.com/gofiber/fiber/v3"
)

// FileHandler xử lý upload file multipart
type FileHandler struct {
	fileService *FileService
}

// NewFileHandler tạo mới FileHandler
func NewFileHandler() (*FileHandler, error) {
	fileService, err := NewFileService()
	if err != nil {
		return nil, err
	}
	return &FileHandler{fileService: fileService}, nil
}

// HandleUpload nhận file multipart (field "file"), upload lên MinIO và trả về URL.
// Client ghi URL này vào formData của field type "file".
// @Router /files/upload [post]
func (h *FileHandler) HandleUpload(c fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		basehdl.HandleResponseFunc(c, nil, common.NewError(
			common.ErrCodeValidationInput,
			"Request phải là multipart form với field 'file'",
			common.StatusBadRequest,
			err,
		))
		return nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		basehdl.HandleResponseFunc(c, nil, common.NewError(
			common.ErrCodeStorage,
			fmt.Sprintf("Không đọc được file upload: %v", err),
			common.StatusInternalServerError,
			err,
		))
		return nil
	}
	defer file.Close()

	url, err := h.fileService.Upload(
		c.Context(),
		file,
		fileHeader.Filename,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		basehdl.HandleResponseFunc(c, nil, err)
		return nil
	}

	basehdl.HandleResponseFunc(c, fiber.Map{
		"url":      url,
		"fileName": fileHeader.Filename,
		"size":     fileHeader.Size,
	}, nil)
	return nil
}

// Register đăng ký route upload lên v1. MinIO không cấu hình → bỏ qua, không lỗi.
func Register(v1 fiber.Router) error {
	handler, err := NewFileHandler()
	if err != nil {
		// Không có storage → các tính năng khác vẫn chạy bình thường
		return nil
	}

	v1.Post("/files/upload", handler.HandleUpload)
	return nil
}
