package main

import (
	"context"

	basesvc "hr_admin/internal/api/base/service"
	formmodels "hr_admin/internal/api/form/models"
	formsvc "hr_admin/internal/api/form/service"
	"hr_admin/internal/api/metrics"
	"hr_admin/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
)

// InitDefaultData khởi tạo dữ liệu mặc định cho hệ thống.
// Hiện tại chỉ seed form schema "attendance" (IsSystem) nếu chưa có.
func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("Starting InitDefaultData...")

	if err := initAttendanceSchema(); err != nil {
		log.Fatalf("Failed to initialize default attendance schema: %v", err)
	}

	log.Info("InitDefaultData completed successfully")
}

// initAttendanceSchema seed schema "attendance": form chấm công mặc định,
// là nguồn dữ liệu occupancy cho calendar planner.
func initAttendanceSchema() error {
	log := logger.GetAppLogger()

	schemaService, err := formsvc.NewFormSchemaService()
	if err != nil {
		return err
	}

	ctx := context.TODO()

	exists, err := schemaService.DocumentExists(ctx, bson.M{"formName": "attendance"})
	if err != nil {
		return err
	}
	if exists {
		log.Info("Default attendance schema already exists, skipping seed")
		return nil
	}

	schema := formmodels.FormSchema{
		FormName:    "attendance",
		Description: "Chấm công theo ngày",
		IsSystem:    true,
		Fields: []formmodels.FieldSchema{
			{
				Name:     "employeeName",
				Type:     formmodels.FieldTypeText,
				Label:    "Nhân viên",
				Required: true,
			},
			{
				Name:     "date",
				Type:     formmodels.FieldTypeDate,
				Label:    "Ngày",
				Required: true,
			},
			{
				Name:     "status",
				Type:     formmodels.FieldTypeSelect,
				Label:    "Trạng thái",
				Required: true,
				Options: []formmodels.FieldOption{
					{Value: "present", Label: "Có mặt"},
					{Value: "remote", Label: "Làm từ xa"},
					{Value: "leave", Label: "Nghỉ phép"},
				},
				DefaultValue: "present",
			},
			{
				Name:  "note",
				Type:  formmodels.FieldTypeTextarea,
				Label: "Ghi chú",
			},
		},
		Metrics: []metrics.MetricConfig{
			{
				Name:  "total",
				Label: "Tổng lượt chấm công",
				Kind:  metrics.KindTotal,
			},
			{
				Name:     "present",
				Label:    "Có mặt",
				Kind:     metrics.KindFiltered,
				Field:    "status",
				Operator: metrics.OpEqual,
				Value:    "present",
			},
			{
				Name:     "leave",
				Label:    "Nghỉ phép",
				Kind:     metrics.KindFiltered,
				Field:    "status",
				Operator: metrics.OpEqual,
				Value:    "leave",
			},
		},
	}

	// Seed chạy với context cho phép insert system data
	seedCtx := basesvc.WithSystemDataInsertAllowed(ctx)
	created, err := schemaService.InsertOne(seedCtx, schema)
	if err != nil {
		return err
	}

	log.Infof("Default attendance schema seeded (ID: %s)", created.ID.Hex())
	return nil
}
