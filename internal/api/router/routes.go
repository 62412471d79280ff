package router

import (
	"github.com/gofiber/fiber/v3"
)

// CONFIGS

// CRUDHandler định nghĩa interface cho các handler CRUD
type CRUDHandler interface {
	// Create
	InsertOne(c fiber.Ctx) error
	InsertMany(c fiber.Ctx) error

	// Read
	Find(c fiber.Ctx) error
	FindOne(c fiber.Ctx) error
	FindOneById(c fiber.Ctx) error
	FindManyByIds(c fiber.Ctx) error
	FindWithPagination(c fiber.Ctx) error

	// Update
	UpdateOne(c fiber.Ctx) error
	UpdateMany(c fiber.Ctx) error
	UpdateById(c fiber.Ctx) error
	FindOneAndUpdate(c fiber.Ctx) error

	// Delete
	DeleteOne(c fiber.Ctx) error
	DeleteMany(c fiber.Ctx) error
	DeleteById(c fiber.Ctx) error
	FindOneAndDelete(c fiber.Ctx) error

	// Other
	CountDocuments(c fiber.Ctx) error
	Distinct(c fiber.Ctx) error
	Upsert(c fiber.Ctx) error
	UpsertMany(c fiber.Ctx) error
	DocumentExists(c fiber.Ctx) error
}

// Router quản lý việc định tuyến cho API
type Router struct {
	app *fiber.App
}

// CRUDConfig cấu hình các operation được phép cho mỗi collection
type CRUDConfig struct {
	// Create
	InsOne  bool // Insert One
	InsMany bool // Insert Many

	// Read
	Find     bool // Find All
	FindOne  bool // Find One
	FindById bool // Find By Id
	FindIds  bool // Find Many By Ids
	Paginate bool // Find With Pagination

	// Update
	UpdOne  bool // Update One
	UpdMany bool // Update Many
	UpdById bool // Update By Id
	FindUpd bool // Find One And Update

	// Delete
	DelOne  bool // Delete One
	DelMany bool // Delete Many
	DelById bool // Delete By Id
	FindDel bool // Find One And Delete

	// Other
	Count    bool // Count Documents
	Distinct bool // Distinct
	Upsert   bool // Upsert One
	UpsMany  bool // Upsert Many
	Exists   bool // Document Exists
}

// Config cho từng collection. Các domain dùng chung: ReadOnlyConfig, ReadWriteConfig, UpsertOnlyConfig.
var (
	// ReadOnlyConfig chỉ cho phép đọc (find, find-one, count, distinct, exists).
	ReadOnlyConfig = CRUDConfig{
		InsOne: false, InsMany: false,
		Find: true, FindOne: true, FindById: true,
		FindIds: true, Paginate: true,
		UpdOne: false, UpdMany: false, UpdById: false,
		FindUpd: false,
		DelOne:  false, DelMany: false, DelById: false,
		FindDel: false,
		Count:   true, Distinct: true,
		Upsert: false, UpsMany: false, Exists: true,
	}

	// ReadWriteConfig cho phép đầy đủ CRUD.
	ReadWriteConfig = CRUDConfig{
		InsOne: true, InsMany: true,
		Find: true, FindOne: true, FindById: true,
		FindIds: true, Paginate: true,
		UpdOne: true, UpdMany: true, UpdById: true,
		FindUpd: true,
		DelOne:  true, DelMany: true, DelById: true,
		FindDel: true,
		Count:   true, Distinct: true,
		Upsert: true, UpsMany: true, Exists: true,
	}

	// UpsertOnlyConfig cho các collection 1 document per key (vd: chấm công theo ngày):
	// đọc + upsert, không insert/delete trực tiếp.
	UpsertOnlyConfig = CRUDConfig{
		InsOne: false, InsMany: false,
		Find: true, FindOne: true, FindById: true,
		FindIds: false, Paginate: true,
		UpdOne: false, UpdMany: false, UpdById: true,
		FindUpd: false,
		DelOne:  false, DelMany: false, DelById: true,
		FindDel: false,
		Count:   true, Distinct: true,
		Upsert: true, UpsMany: true, Exists: true,
	}
)

// RoutePrefix chứa các prefix cơ bản cho API
type RoutePrefix struct {
	Base string // Prefix cơ bản (/api)
	V1   string // Prefix cho API version 1 (/api/v1)
}

// NewRoutePrefix tạo mới một instance của RoutePrefix với các giá trị mặc định
func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

// NewRouter tạo mới một instance của Router
func NewRouter(app *fiber.App) *Router {
	return &Router{
		app: app,
	}
}

// RegisterRouteWithMiddleware đăng ký route với middleware sử dụng .Use() method.
// Fiber v3 không gọi middleware khi truyền trực tiếp vào router.Get(path, middleware, handler);
// phải tạo group và đăng ký middleware qua .Use().
//
// Ví dụ sử dụng:
//
//	RegisterRouteWithMiddleware(router, "/forms", "GET", "/find", []fiber.Handler{mw}, handler)
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	// Tạo group với prefix, middleware sẽ chỉ áp dụng cho routes trong group này
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw)
	}

	// Đăng ký route với path tương đối (không có prefix vì đã có trong group)
	switch method {
	case "GET":
		routeGroup.Get(path, handler)
	case "POST":
		routeGroup.Post(path, handler)
	case "PUT":
		routeGroup.Put(path, handler)
	case "DELETE":
		routeGroup.Delete(path, handler)
	}
}

// RegisterCRUDRoutes đăng ký các route CRUD cho một collection. Dùng từ domain router.
func (r *Router) RegisterCRUDRoutes(router fiber.Router, prefix string, h CRUDHandler, config CRUDConfig) {
	group := router.Group(prefix)

	// Create operations
	if config.InsOne {
		group.Post("/insert-one", h.InsertOne)
	}
	if config.InsMany {
		group.Post("/insert-many", h.InsertMany)
	}

	// Read operations
	if config.Find {
		group.Get("/find", h.Find)
	}
	if config.FindOne {
		group.Get("/find-one", h.FindOne)
	}
	if config.FindById {
		group.Get("/find-by-id/:id", h.FindOneById)
	}
	if config.FindIds {
		group.Post("/find-by-ids", h.FindManyByIds)
	}
	if config.Paginate {
		group.Get("/find-with-pagination", h.FindWithPagination)
	}

	// Update operations
	if config.UpdOne {
		group.Put("/update-one", h.UpdateOne)
	}
	if config.UpdMany {
		group.Put("/update-many", h.UpdateMany)
	}
	if config.UpdById {
		group.Put("/update-by-id/:id", h.UpdateById)
	}
	if config.FindUpd {
		group.Put("/find-one-and-update", h.FindOneAndUpdate)
	}

	// Delete operations
	if config.DelOne {
		group.Delete("/delete-one", h.DeleteOne)
	}
	if config.DelMany {
		group.Delete("/delete-many", h.DeleteMany)
	}
	if config.DelById {
		group.Delete("/delete-by-id/:id", h.DeleteById)
	}
	if config.FindDel {
		group.Delete("/find-one-and-delete", h.FindOneAndDelete)
	}

	// Other operations
	if config.Count {
		group.Get("/count", h.CountDocuments)
	}
	if config.Distinct {
		group.Get("/distinct/:field", h.Distinct)
	}
	if config.Upsert {
		group.Post("/upsert-one", h.Upsert)
	}
	if config.UpsMany {
		group.Post("/upsert-many", h.UpsertMany)
	}
	if config.Exists {
		group.Get("/exists", h.DocumentExists)
	}
}

// Các hàm đăng ký route theo domain nằm trong: internal/api/<domain>/router

// RegisterFunc là hàm đăng ký route của một domain (do domain/router export).
type RegisterFunc func(v1 fiber.Router, r *Router) error

// SetupRoutes thiết lập tất cả các route cho ứng dụng. Caller truyền lần lượt Register của từng domain để tránh import cycle.
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	prefix := NewRoutePrefix()
	v1 := app.Group(prefix.V1)
	r := NewRouter(app)
	for _, reg := range regs {
		if err := reg(v1, r); err != nil {
			return err
		}
	}
	return nil
}
