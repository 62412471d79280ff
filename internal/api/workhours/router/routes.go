// Package router đăng ký các route thuộc domain WorkHours: upsert theo ngày, lưới tuần.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "hr_admin/internal/api/router"
	workhourhdl "hr_admin/internal/api/workhours/handler"
)

// Register đăng ký tất cả route work-hours lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	workHourHandler, err := workhourhdl.NewWorkHourHandler()
	if err != nil {
		return fmt.Errorf("create work hour handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/work-hours", workHourHandler, apirouter.UpsertOnlyConfig)

	v1.Post("/work-hours", workHourHandler.HandleUpsertDay)
	v1.Get("/work-hours/week", workHourHandler.HandleWeek)
	return nil
}
