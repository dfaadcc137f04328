package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"lumeno/internal/handlers"
	"lumeno/internal/middleware"
	"lumeno/internal/models"
	"lumeno/internal/repositories"
	"lumeno/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupApp sets up a Fiber app for testing with in-memory SQLite and all
// handlers/services. The shared-cache DSN means all tests in this package
// see one database, so each test uses its own email addresses.
func setupApp() (*fiber.App, *gorm.DB, error) {
	// Configure Viper for testing
	viper.SetDefault("JWT_SECRET", "test_jwt_secret")
	viper.AutomaticEnv()
	jwtSecret := viper.GetString("JWT_SECRET")

	// Initialize in-memory SQLite database
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to in-memory database: %w", err)
	}

	// Auto-migrate models
	err = db.AutoMigrate(
		&models.Profile{},
		&models.Product{},
		&models.Service{},
		&models.Order{},
		&models.Booking{},
		&models.Review{},
		&models.CartItem{},
		&models.SellerFollow{},
		&models.Category{},
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	// Initialize Repositories
	profileRepo := repositories.NewGORMProfileRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	serviceRepo := repositories.NewGORMServiceRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	bookingRepo := repositories.NewGORMBookingRepository(db)
	reviewRepo := repositories.NewGORMReviewRepository(db)
	cartRepo := repositories.NewGORMCartRepository(db)
	followRepo := repositories.NewGORMFollowRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)

	// Initialize Services (nil RabbitMQ client: events are best-effort)
	identityService := services.NewIdentityService(profileRepo, jwtSecret)
	catalogService := services.NewCatalogService(productRepo, serviceRepo, categoryRepo)
	commerceService := services.NewCommerceService(cartRepo, orderRepo, bookingRepo, productRepo, serviceRepo, nil)
	socialService := services.NewSocialService(followRepo, reviewRepo)

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(identityService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	commerceHandler := handlers.NewCommerceHandler(commerceService)
	socialHandler := handlers.NewSocialHandler(socialService)
	sellerHandler := handlers.NewSellerHandler(identityService, catalogService, commerceService, socialService)

	app := fiber.New()

	// API Routes
	apiV1 := app.Group("/api/v1")

	// Public routes
	authHandler.RegisterRoutes(apiV1)
	catalogHandler.RegisterRoutes(apiV1)
	sellerHandler.RegisterRoutes(apiV1)
	socialHandler.RegisterRoutes(apiV1)

	// Protected routes (require JWT authentication)
	protectedRoutes := apiV1.Group("", middleware.AuthRequired(identityService))
	authHandler.RegisterProtectedRoutes(protectedRoutes)
	catalogHandler.RegisterProtectedRoutes(protectedRoutes)
	commerceHandler.RegisterProtectedRoutes(protectedRoutes)
	socialHandler.RegisterProtectedRoutes(protectedRoutes)
	sellerHandler.RegisterProtectedRoutes(protectedRoutes)

	return app, db, nil
}

// TestMain runs setup and teardown for all tests
func TestMain(m *testing.M) {
	// Suppress logging during tests for cleaner output
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// doJSON sends a JSON request through the in-process app. Pass an empty
// token for anonymous calls.
func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}, token string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	resp.Body.Close()
}

// registerAndLogin creates a profile, logs it in, and returns the JWT token
// together with the new profile's ID.
func registerAndLogin(t *testing.T, app *fiber.App, fullName, email string) (string, string) {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"full_name": fullName,
		"email":     email,
		"password":  "password123",
	}, "")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var registerResp struct {
		Profile models.Profile `json:"profile"`
	}
	decodeBody(t, resp, &registerResp)
	assert.NotEmpty(t, registerResp.Profile.ID)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    email,
		"password": "password123",
	}, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var loginResp map[string]string
	decodeBody(t, resp, &loginResp)
	assert.NotEmpty(t, loginResp["token"])

	return loginResp["token"], registerResp.Profile.ID
}

func TestAuthRegisterAndLogin(t *testing.T) {
	app, _, err := setupApp()
	assert.NoError(t, err)

	token, userID := registerAndLogin(t, app, "Ana Flores", "ana.auth@example.com")

	// Duplicate registration must be rejected.
	resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"full_name": "Ana Again",
		"email":     "ana.auth@example.com",
		"password":  "password123",
	}, "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Wrong password must not issue a token.
	resp = doJSON(t, app, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "ana.auth@example.com",
		"password": "wrong_password",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// The token resolves the current profile.
	resp = doJSON(t, app, http.MethodGet, "/api/v1/auth/me", nil, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var me models.Profile
	decodeBody(t, resp, &me)
	assert.Equal(t, userID, me.ID)
	assert.Equal(t, "ana.auth@example.com", me.Email)
	assert.False(t, me.IsSeller)

	// No token, no profile.
	resp = doJSON(t, app, http.MethodGet, "/api/v1/auth/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestProductBrowseWithOrganicFilter(t *testing.T) {
	app, _, err := setupApp()
	assert.NoError(t, err)

	token, sellerID := registerAndLogin(t, app, "Ben Ortiz", "ben.catalog@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/v1/products", map[string]interface{}{
		"title":       "Organic Honey",
		"description": "Raw honey from local hives",
		"price":       12.5,
		"stock":       10,
		"is_organic":  true,
	}, token)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var organic models.Product
	decodeBody(t, resp, &organic)
	assert.NotEmpty(t, organic.ID)
	assert.Equal(t, sellerID, organic.SellerID)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/products", map[string]interface{}{
		"title": "Clay Mug",
		"price": 18.0,
		"stock": 4,
	}, token)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Anonymous browse scoped to this seller sees both listings.
	resp = doJSON(t, app, http.MethodGet, "/api/v1/products?seller="+sellerID, nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var listings []models.ProductWithSeller
	decodeBody(t, resp, &listings)
	assert.Len(t, listings, 2)
	assert.Equal(t, "Ben Ortiz", listings[0].SellerName)

	// The organic flag narrows to organic produce only.
	resp = doJSON(t, app, http.MethodGet, "/api/v1/products?seller="+sellerID+"&organic=true", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var organicListings []models.ProductWithSeller
	decodeBody(t, resp, &organicListings)
	assert.Len(t, organicListings, 1)
	assert.Equal(t, "Organic Honey", organicListings[0].Title)

	// Creating a listing requires a session.
	resp = doJSON(t, app, http.MethodPost, "/api/v1/products", map[string]interface{}{
		"title": "Anonymous Listing",
		"price": 1.0,
	}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestProductViewCounter(t *testing.T) {
	app, db, err := setupApp()
	assert.NoError(t, err)

	token, _ := registerAndLogin(t, app, "Cara Ives", "cara.views@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/v1/products", map[string]interface{}{
		"title": "Woven Basket",
		"price": 30.0,
		"stock": 2,
	}, token)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var product models.Product
	decodeBody(t, resp, &product)

	for i := 0; i < 3; i++ {
		resp = doJSON(t, app, http.MethodPost, "/api/v1/products/"+product.ID+"/view", nil, "")
		assert.Equal(t, http.StatusAccepted, resp.StatusCode)
		resp.Body.Close()
	}

	var stored models.Product
	assert.NoError(t, db.First(&stored, "id = ?", product.ID).Error)
	assert.EqualValues(t, 3, stored.Views)

	// A view against an unknown product still answers 202.
	resp = doJSON(t, app, http.MethodPost, "/api/v1/products/no-such-product/view", nil, "")
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	resp.Body.Close()
}

func TestCartAccumulatesQuantity(t *testing.T) {
	app, _, err := setupApp()
	assert.NoError(t, err)

	sellerToken, _ := registerAndLogin(t, app, "Dan Reyes", "dan.cart.seller@example.com")
	buyerToken, _ := registerAndLogin(t, app, "Eva Lin", "eva.cart.buyer@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/v1/products", map[string]interface{}{
		"title": "Goat Cheese",
		"price": 9.5,
		"stock": 20,
	}, sellerToken)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var product models.Product
	decodeBody(t, resp, &product)

	// Adding the same product twice lands on one row with the summed quantity.
	for i := 0; i < 2; i++ {
		resp = doJSON(t, app, http.MethodPost, "/api/v1/cart", map[string]interface{}{
			"product_id": product.ID,
			"quantity":   1,
		}, buyerToken)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp = doJSON(t, app, http.MethodGet, "/api/v1/cart", nil, buyerToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var items []models.CartItemWithProduct
	decodeBody(t, resp, &items)
	assert.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "Goat Cheese", items[0].ProductTitle)
	assert.Equal(t, 9.5, items[0].ProductPrice)

	// Unknown products cannot be carted.
	resp = doJSON(t, app, http.MethodPost, "/api/v1/cart", map[string]interface{}{
		"product_id": "no-such-product",
	}, buyerToken)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// The cart is session-scoped.
	resp = doJSON(t, app, http.MethodPost, "/api/v1/cart", map[string]interface{}{
		"product_id": product.ID,
	}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestOrderStatusLifecycle(t *testing.T) {
	app, db, err := setupApp()
	assert.NoError(t, err)

	sellerToken, sellerID := registerAndLogin(t, app, "Finn Cole", "finn.orders@example.com")
	_, buyerID := registerAndLogin(t, app, "Gia Park", "gia.orders@example.com")

	orderRepo := repositories.NewGORMOrderRepository(db)
	order := models.Order{
		BuyerID:     buyerID,
		SellerID:    sellerID,
		Quantity:    1,
		TotalAmount: 25.0,
		Status:      models.OrderPending,
	}
	assert.NoError(t, orderRepo.Create(&order))

	patchStatus := func(status string) *http.Response {
		return doJSON(t, app, http.MethodPatch, "/api/v1/orders/"+order.ID+"/status", map[string]string{
			"status": status,
		}, sellerToken)
	}

	// Skipping the confirmation step is rejected.
	resp := patchStatus("shipped")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	for _, status := range []string{"confirmed", "shipped", "delivered"} {
		resp = patchStatus(status)
		assert.Equal(t, http.StatusOK, resp.StatusCode, "transition to %s", status)
		resp.Body.Close()
	}

	// Delivered is terminal.
	resp = patchStatus("confirmed")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Unknown labels are rejected, not stored.
	resp = patchStatus("processing")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	var stored models.Order
	assert.NoError(t, db.First(&stored, "id = ?", order.ID).Error)
	assert.Equal(t, models.OrderDelivered, stored.Status)
	assert.Equal(t, string(models.OrderDelivered), stored.TrackingStatus)
	assert.NotNil(t, stored.DeliveredAt)

	// The seller's order list resolves the buyer's display name.
	resp = doJSON(t, app, http.MethodGet, "/api/v1/seller/dashboard", nil, sellerToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var dashboard struct {
		Orders []models.OrderWithBuyer `json:"orders"`
	}
	decodeBody(t, resp, &dashboard)
	assert.Len(t, dashboard.Orders, 1)
	assert.Equal(t, "Gia Park", dashboard.Orders[0].BuyerName)
}

func TestFollowToggle(t *testing.T) {
	app, _, err := setupApp()
	assert.NoError(t, err)

	_, sellerID := registerAndLogin(t, app, "Hana Sato", "hana.follow@example.com")
	followerToken, _ := registerAndLogin(t, app, "Ivan Cruz", "ivan.follow@example.com")

	toggle := func() bool {
		resp := doJSON(t, app, http.MethodPost, "/api/v1/sellers/"+sellerID+"/follow", nil, followerToken)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]bool
		decodeBody(t, resp, &body)
		return body["following"]
	}

	assert.True(t, toggle())
	assert.False(t, toggle())
	assert.True(t, toggle())

	// Anonymous visitors cannot follow.
	resp := doJSON(t, app, http.MethodPost, "/api/v1/sellers/"+sellerID+"/follow", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestSellerDashboardPromotesProfile(t *testing.T) {
	app, _, err := setupApp()
	assert.NoError(t, err)

	token, userID := registerAndLogin(t, app, "Jade Kim", "jade.dashboard@example.com")

	// Opening the dashboard flips the seller flag.
	resp := doJSON(t, app, http.MethodGet, "/api/v1/seller/dashboard", nil, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var dashboard struct {
		Profile models.Profile `json:"profile"`
	}
	decodeBody(t, resp, &dashboard)
	assert.Equal(t, userID, dashboard.Profile.ID)
	assert.True(t, dashboard.Profile.IsSeller)

	// The flag sticks for later reads.
	resp = doJSON(t, app, http.MethodGet, "/api/v1/auth/me", nil, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var me models.Profile
	decodeBody(t, resp, &me)
	assert.True(t, me.IsSeller)
}

func TestSellerStorefrontAndReviews(t *testing.T) {
	app, _, err := setupApp()
	assert.NoError(t, err)

	sellerToken, sellerID := registerAndLogin(t, app, "Kai Moss", "kai.store@example.com")
	reviewerToken, _ := registerAndLogin(t, app, "Lena Voss", "lena.store@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/v1/products", map[string]interface{}{
		"title": "Sourdough Loaf",
		"price": 7.0,
		"stock": 6,
	}, sellerToken)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/v1/reviews", map[string]interface{}{
		"seller_id": sellerID,
		"rating":    5,
		"comment":   "Best bread in town",
	}, reviewerToken)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Out-of-range ratings are rejected.
	resp = doJSON(t, app, http.MethodPost, "/api/v1/reviews", map[string]interface{}{
		"seller_id": sellerID,
		"rating":    6,
	}, reviewerToken)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// The public storefront composes profile, listings, and reviews.
	resp = doJSON(t, app, http.MethodGet, "/api/v1/sellers/"+sellerID, nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var storefront struct {
		Seller    models.Profile             `json:"seller"`
		Products  []models.ProductWithSeller `json:"products"`
		Reviews   []models.ReviewWithAuthor  `json:"reviews"`
		Following bool                       `json:"following"`
	}
	decodeBody(t, resp, &storefront)
	assert.Equal(t, sellerID, storefront.Seller.ID)
	assert.Len(t, storefront.Products, 1)
	assert.Len(t, storefront.Reviews, 1)
	assert.Equal(t, "Lena Voss", storefront.Reviews[0].AuthorName)
	assert.False(t, storefront.Following)

	// An unknown seller is a 404.
	resp = doJSON(t, app, http.MethodGet, "/api/v1/sellers/no-such-seller", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestBookingCreation(t *testing.T) {
	app, _, err := setupApp()
	assert.NoError(t, err)

	providerToken, providerID := registerAndLogin(t, app, "Mia Torres", "mia.booking@example.com")
	clientToken, clientID := registerAndLogin(t, app, "Noah Webb", "noah.booking@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/v1/services", map[string]interface{}{
		"title":          "Garden Design",
		"pricing_type":   "hourly",
		"price_per_hour": 25.0,
	}, providerToken)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var service models.Service
	decodeBody(t, resp, &service)
	assert.Equal(t, providerID, service.ProviderID)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/bookings", map[string]interface{}{
		"service_id":     service.ID,
		"booking_date":   "2026-09-15T10:00:00Z",
		"duration_hours": 2,
		"notes":          "Back yard only",
	}, clientToken)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var booking models.Booking
	decodeBody(t, resp, &booking)
	assert.Equal(t, clientID, booking.UserID)
	assert.Equal(t, providerID, booking.ProviderID)
	assert.Equal(t, 50.0, booking.TotalAmount)

	// The provider sees the booking with the client's name on the dashboard.
	resp = doJSON(t, app, http.MethodGet, "/api/v1/seller/dashboard", nil, providerToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var dashboard struct {
		Bookings []models.BookingWithDetails `json:"bookings"`
	}
	decodeBody(t, resp, &dashboard)
	assert.Len(t, dashboard.Bookings, 1)
	assert.Equal(t, "Noah Webb", dashboard.Bookings[0].ClientName)
	assert.Equal(t, "Garden Design", dashboard.Bookings[0].ServiceTitle)
}

func TestDiscoverAndNearby(t *testing.T) {
	app, _, err := setupApp()
	assert.NoError(t, err)

	token, _ := registerAndLogin(t, app, "Omar Diaz", "omar.discover@example.com")

	// Visiting the dashboard makes the profile a seller so discovery has
	// something to show.
	resp := doJSON(t, app, http.MethodGet, "/api/v1/seller/dashboard", nil, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/v1/discover", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var discover struct {
		TopSellers       []models.Profile             `json:"top_sellers"`
		TrendingProducts []models.ProductWithSeller   `json:"trending_products"`
		PopularServices  []models.ServiceWithProvider `json:"popular_services"`
	}
	decodeBody(t, resp, &discover)
	assert.NotEmpty(t, discover.TopSellers)

	// Nearby requires client coordinates.
	resp = doJSON(t, app, http.MethodGet, "/api/v1/sellers/near", nil, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/v1/sellers/near?lat=40.4&lng=-3.7", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var nearby struct {
		Sellers []models.Profile `json:"sellers"`
	}
	decodeBody(t, resp, &nearby)
	assert.NotEmpty(t, nearby.Sellers)
}
