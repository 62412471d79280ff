// Package router đăng ký các route thuộc domain Quota: quota theo ngày, month grid, range, holiday.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	quotahdl "hr_admin/internal/api/quota/handler"
	apirouter "hr_admin/internal/api/router"
)

// Register đăng ký tất cả route quota lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	quotaHandler, err := quotahdl.NewQuotaHandler()
	if err != nil {
		return fmt.Errorf("create quota handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/quotas", quotaHandler, apirouter.ReadWriteConfig)

	v1.Get("/quotas/month", quotaHandler.HandleMonth)
	v1.Get("/quotas/date/:date", quotaHandler.HandleByDate)
	v1.Post("/quotas/range", quotaHandler.HandleRange)

	holidayHandler, err := quotahdl.NewHolidayHandler()
	if err != nil {
		return fmt.Errorf("create holiday handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/holidays", holidayHandler, apirouter.ReadWriteConfig)
	return nil
}
