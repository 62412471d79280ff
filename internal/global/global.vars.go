package global

import (
	"hr_admin/config"
	"hr_admin/internal/registry"

	"github.com/go-playground/validator/v10"
	"github.com/minio/minio-go/v7"
	"go.mongodb.org/mongo-driver/mongo"
)

// CollectionNames chứa tên các collection trong MongoDB
type CollectionNames struct {
	FormFields      string // Tên collection cho định nghĩa form/field schema
	FormSubmissions string // Tên collection cho dữ liệu submission
	Quotas          string // Tên collection cho quota theo ngày
	Holidays        string // Tên collection cho ngày nghỉ lễ
	WorkHours       string // Tên collection cho giờ làm việc (employee + date)
}

// Các biến toàn cục
var Validate *validator.Validate              // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client             // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration        // Cấu hình của server
var ColNames CollectionNames                  // Tên các collection
var MinioClient *minio.Client                 // Client kết nối MinIO (file upload), nil nếu không cấu hình

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
