package handlers

import (
	"log"

	"lumeno/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SellerHandler handles HTTP requests for seller storefronts, discovery,
// and the seller dashboard.
type SellerHandler struct {
	identityService *services.IdentityService
	catalogService  *services.CatalogService
	commerceService *services.CommerceService
	socialService   *services.SocialService
}

// NewSellerHandler creates a new SellerHandler.
func NewSellerHandler(identityService *services.IdentityService, catalogService *services.CatalogService, commerceService *services.CommerceService, socialService *services.SocialService) *SellerHandler {
	return &SellerHandler{
		identityService: identityService,
		catalogService:  catalogService,
		commerceService: commerceService,
		socialService:   socialService,
	}
}

// RegisterRoutes registers the public seller routes with the Fiber app.
func (h *SellerHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/discover", h.HandleDiscover)
	router.Get("/sellers/near", h.HandleNearbySellers)
	router.Get("/sellers/:id", h.HandleSellerProfile)
}

// RegisterProtectedRoutes registers the dashboard routes.
func (h *SellerHandler) RegisterProtectedRoutes(router fiber.Router) {
	router.Get("/seller/dashboard", h.HandleDashboard)
	router.Patch("/seller/settings", h.HandleUpdateSettings)
}

// HandleDiscover composes the discovery page: top-rated sellers, the
// most-viewed products, and the highest-rated services. The three fetches
// are independent; any failure surfaces as a whole-page error.
func (h *SellerHandler) HandleDiscover(c *fiber.Ctx) error {
	sellers, err := h.identityService.TopSellers(6)
	if err != nil {
		log.Printf("Error fetching top sellers: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve discovery data",
			"error":   err.Error(),
		})
	}

	products, err := h.catalogService.TrendingProducts(8)
	if err != nil {
		log.Printf("Error fetching trending products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve discovery data",
			"error":   err.Error(),
		})
	}

	popular, err := h.catalogService.PopularServices(6)
	if err != nil {
		log.Printf("Error fetching popular services: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve discovery data",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"top_sellers":       sellers,
		"trending_products": products,
		"popular_services":  popular,
	})
}

// HandleNearbySellers answers the near-me view. The client resolves its
// own coordinates; they are accepted here but distance ranking is not in
// scope, so sellers come back newest-first.
func (h *SellerHandler) HandleNearbySellers(c *fiber.Ctx) error {
	lat := c.Query("lat")
	lng := c.Query("lng")
	if lat == "" || lng == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "lat and lng query parameters are required",
		})
	}

	sellers, err := h.identityService.NearbySellers(20)
	if err != nil {
		log.Printf("Error fetching nearby sellers: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve nearby sellers",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"location": lat + ", " + lng,
		"sellers":  sellers,
	})
}

// HandleSellerProfile composes the public storefront page for one seller:
// the profile, its active products, its available services, and reviews.
func (h *SellerHandler) HandleSellerProfile(c *fiber.Ctx) error {
	sellerID := c.Params("id")

	seller, err := h.identityService.GetProfile(sellerID)
	if err != nil {
		log.Printf("Error fetching seller %s: %v", sellerID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not retrieve seller",
			"error":   err.Error(),
		})
	}

	products, err := h.catalogService.BrowseProducts(false, sellerID)
	if err != nil {
		log.Printf("Error fetching products for seller %s: %v", sellerID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve seller products",
			"error":   err.Error(),
		})
	}

	sellerServices, err := h.catalogService.BrowseServices(sellerID)
	if err != nil {
		log.Printf("Error fetching services for seller %s: %v", sellerID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve seller services",
			"error":   err.Error(),
		})
	}

	reviews, err := h.socialService.ListReviews(sellerID)
	if err != nil {
		log.Printf("Error fetching reviews for seller %s: %v", sellerID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve seller reviews",
			"error":   err.Error(),
		})
	}

	// Follow state is only meaningful for signed-in visitors.
	following, err := h.socialService.IsFollowing(currentUserID(c), sellerID)
	if err != nil {
		log.Printf("Error checking follow state for seller %s: %v", sellerID, err)
		following = false
	}

	return c.JSON(fiber.Map{
		"seller":    seller,
		"products":  products,
		"services":  sellerServices,
		"reviews":   reviews,
		"following": following,
	})
}

// HandleDashboard composes the seller dashboard for the authenticated
// user: their profile, listings, orders, and bookings. The first visit
// promotes the profile to a seller.
func (h *SellerHandler) HandleDashboard(c *fiber.Ctx) error {
	userID := currentUserID(c)

	if err := h.identityService.EnsureSellerFlag(userID); err != nil {
		log.Printf("Error ensuring seller flag for %s: %v", userID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not open seller dashboard",
			"error":   err.Error(),
		})
	}

	profile, err := h.identityService.GetProfile(userID)
	if err != nil {
		log.Printf("Error fetching profile %s: %v", userID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not retrieve profile",
			"error":   err.Error(),
		})
	}

	products, err := h.catalogService.ListProductsBySeller(userID)
	if err != nil {
		log.Printf("Error fetching dashboard products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}

	sellerServices, err := h.catalogService.ListServicesByProvider(userID)
	if err != nil {
		log.Printf("Error fetching dashboard services: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve services",
			"error":   err.Error(),
		})
	}

	orders, err := h.commerceService.ListOrdersForSeller(userID)
	if err != nil {
		log.Printf("Error fetching dashboard orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}

	bookings, err := h.commerceService.ListBookingsForProvider(userID)
	if err != nil {
		log.Printf("Error fetching dashboard bookings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve bookings",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"profile":  profile,
		"products": products,
		"services": sellerServices,
		"orders":   orders,
		"bookings": bookings,
	})
}

// HandleUpdateSettings updates the authenticated seller's store settings.
func (h *SellerHandler) HandleUpdateSettings(c *fiber.Ctx) error {
	var settings services.StoreSettings
	if err := c.BodyParser(&settings); err != nil {
		log.Printf("Error parsing settings request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.identityService.UpdateStoreSettings(currentUserID(c), settings); err != nil {
		log.Printf("Error updating store settings: %v", err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not update store settings",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Store settings updated",
	})
}
