package http

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/tejarat-tech/catalog-backend/docs" // Импорт сгенерированных файлов
	"github.com/tejarat-tech/catalog-backend/internal/usecase"
	"github.com/tejarat-tech/catalog-backend/pkg/logger"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(hierarchyUC usecase.HierarchyUC, attrTypeUC usecase.AttributeTypeUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		classHandler := NewClassHandler(hierarchyUC, r.logger)
		registerClassRoutes(v1, classHandler)

		attrTypeHandler := NewAttributeTypeHandler(attrTypeUC, r.logger)
		registerAttributeTypeRoutes(v1, attrTypeHandler)
	})
}

func registerClassRoutes(router chi.Router, h *ClassHandler) {
	router.Route("/classes", func(cl chi.Router) {
		cl.Post("/", h.createClass)

		cl.Route("/{id}", func(one chi.Router) {
			one.Delete("/", h.deleteClass)
			one.Patch("/move", h.moveClass)
			one.Put("/price", h.setPrice)
			one.Put("/status", h.setStatus)
			one.Get("/profile", h.getProfile)
			one.Get("/children", h.getChildren)
			one.Get("/ancestors", h.getAncestors)
			one.Get("/descendants", h.getDescendants)
			one.Get("/can-bind", h.canBind)
			one.Post("/media", h.uploadMedia)

			one.Post("/attributes", h.addAttribute)
			one.Put("/attributes/{typeId}", h.updateAttribute)
			one.Delete("/attributes/{typeId}", h.removeAttribute)
		})
	})

	router.Route("/products", func(pr chi.Router) {
		pr.Post("/{productId}/binding", h.bindProduct)
		pr.Delete("/{productId}/binding", h.unbindProduct)
	})
}

func registerAttributeTypeRoutes(router chi.Router, h *AttributeTypeHandler) {
	router.Route("/attribute-types", func(at chi.Router) {
		at.Post("/", h.createAttributeType)
		at.Get("/", h.listAttributeTypes)
		at.Get("/{id}", h.getAttributeType)
		at.Put("/{id}", h.updateAttributeType)
		at.Post("/{id}/choices", h.addChoiceValue)
	})
}
