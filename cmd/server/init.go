package main

import (
	"context"

	"hr_admin/config"
	formmodels "hr_admin/internal/api/form/models"
	quotamodels "hr_admin/internal/api/quota/models"
	"hr_admin/internal/api/storage"
	submissionmodels "hr_admin/internal/api/submission/models"
	workhourmodels "hr_admin/internal/api/workhours/models"
	"hr_admin/internal/database"
	"hr_admin/internal/global"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
	initMinio()            // Khởi tạo MinIO client (file upload)
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.ColNames.FormFields = "form_fields"
	global.ColNames.FormSubmissions = "form_submissions"
	global.ColNames.Quotas = "quotas"
	global.ColNames.Holidays = "holidays"
	global.ColNames.WorkHours = "work_hours"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: field_type, date_ymd)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các db và collections nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khơi tạo các index cho các collection
	dbName := global.ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.FormFields), formmodels.FormSchema{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.FormSubmissions), submissionmodels.FormSubmission{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Quotas), quotamodels.Quota{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Holidays), quotamodels.Holiday{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.WorkHours), workhourmodels.WorkHour{})
}

// initMinio khởi tạo MinIO client để lưu file upload.
// Không cấu hình MinIO không phải là lỗi: hệ thống vẫn chạy, chỉ tắt route upload.
func initMinio() {
	client, err := storage.InitMinioClient(context.TODO(), global.ServerConfig)
	if err != nil {
		logrus.Errorf("Failed to initialize MinIO client: %v", err)
		// Không fatal, chỉ log để hệ thống vẫn chạy được
		return
	}
	if client == nil {
		logrus.Warn("MinIO không được cấu hình, bỏ qua khởi tạo file storage")
		return
	}

	global.MinioClient = client
	logrus.Info("MinIO client initialized successfully")
}
