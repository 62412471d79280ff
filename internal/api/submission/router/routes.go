// Package router đăng ký các route thuộc domain Submission: CRUD, grid, facets, metrics, export.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "hr_admin/internal/api/router"
	submissionhdl "hr_admin/internal/api/submission/handler"
)

// Register đăng ký tất cả route submission lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	submissionHandler, err := submissionhdl.NewFormSubmissionHandler()
	if err != nil {
		return fmt.Errorf("create form submission handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/form-submissions", submissionHandler, apirouter.ReadWriteConfig)

	v1.Post("/form-submissions/grid", submissionHandler.HandleGrid)
	v1.Get("/form-submissions/facets", submissionHandler.HandleFacets)
	v1.Get("/form-submissions/metrics", submissionHandler.HandleMetrics)
	v1.Get("/form-submissions/export", submissionHandler.HandleExport)
	return nil
}
