package handlers

import (
	"fmt"
	"log"

	"lumeno/internal/models"
	"lumeno/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CatalogHandler handles HTTP requests for product, service, and category
// listings.
type CatalogHandler struct {
	catalogService *services.CatalogService
	validate       *validator.Validate
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the public catalog routes with the Fiber app.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/products", h.HandleListProducts)
	router.Get("/products/:id", h.HandleGetProduct)
	router.Post("/products/:id/view", h.HandleProductView)
	router.Get("/services", h.HandleListServices)
	router.Get("/categories", h.HandleListCategories)
}

// RegisterProtectedRoutes registers the listing-creation routes.
func (h *CatalogHandler) RegisterProtectedRoutes(router fiber.Router) {
	router.Post("/products", h.HandleCreateProduct)
	router.Post("/services", h.HandleCreateService)
}

// HandleListProducts retrieves active products newest-first. The organic
// query flag narrows the listing to organic produce; the seller flag to one
// storefront.
func (h *CatalogHandler) HandleListProducts(c *fiber.Ctx) error {
	organicOnly := c.QueryBool("organic")
	sellerID := c.Query("seller")

	products, err := h.catalogService.BrowseProducts(organicOnly, sellerID)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}
	return c.JSON(products)
}

// HandleGetProduct retrieves a single product by its ID.
func (h *CatalogHandler) HandleGetProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	product, err := h.catalogService.GetProduct(productID)
	if err != nil {
		log.Printf("Error getting product by ID %s: %v", productID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not retrieve product",
			"error":   err.Error(),
		})
	}
	return c.JSON(product)
}

// HandleProductView counts a product view. Always answers 202: the counter
// is telemetry and never blocks the caller.
func (h *CatalogHandler) HandleProductView(c *fiber.Ctx) error {
	h.catalogService.IncrementProductView(c.Params("id"))
	return c.SendStatus(fiber.StatusAccepted)
}

// HandleCreateProduct creates a product listing for the authenticated seller.
func (h *CatalogHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(product); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	if err := h.catalogService.CreateProduct(currentUserID(c), &product); err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not create product",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleListServices retrieves available services newest-first. The
// provider query flag narrows the listing to one storefront.
func (h *CatalogHandler) HandleListServices(c *fiber.Ctx) error {
	services, err := h.catalogService.BrowseServices(c.Query("provider"))
	if err != nil {
		log.Printf("Error listing services: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve services",
			"error":   err.Error(),
		})
	}
	return c.JSON(services)
}

// HandleCreateService creates a service listing for the authenticated
// provider.
func (h *CatalogHandler) HandleCreateService(c *fiber.Ctx) error {
	var service models.Service
	if err := c.BodyParser(&service); err != nil {
		log.Printf("Error parsing service request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(service); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	if err := h.catalogService.CreateService(currentUserID(c), &service); err != nil {
		log.Printf("Error creating service: %v", err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not create service",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(service)
}

// HandleListCategories retrieves browsing categories, optionally by type.
func (h *CatalogHandler) HandleListCategories(c *fiber.Ctx) error {
	categories, err := h.catalogService.ListCategories(c.Query("type"))
	if err != nil {
		log.Printf("Error listing categories: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve categories",
			"error":   err.Error(),
		})
	}
	return c.JSON(categories)
}
