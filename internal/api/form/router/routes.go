// Package router đăng ký các route thuộc domain Form: schema CRUD, partial data, resolve, render.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	formhdl "hr_admin/internal/api/form/handler"
	apirouter "hr_admin/internal/api/router"
)

// Register đăng ký tất cả route form lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	schemaHandler, err := formhdl.NewFormSchemaHandler()
	if err != nil {
		return fmt.Errorf("create form schema handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/form-fields", schemaHandler, apirouter.ReadWriteConfig)

	v1.Get("/form-fields/partial-data", schemaHandler.HandlePartialData)
	v1.Get("/form-fields/resolved/:id", schemaHandler.HandleResolved)
	v1.Post("/forms/:id/render", schemaHandler.HandleRender)
	return nil
}
