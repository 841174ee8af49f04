package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"foodhub-api/db"
	"foodhub-api/handlers"
	"foodhub-api/middleware"
	"foodhub-api/models"
)

type routeKey struct {
	Method string
	Path   string
}

// requiredRoles is the authoritative classification of every authenticated
// endpoint to the roles allowed to call it. Registration goes through this
// table, and SetupRoutes verifies at startup that the table and the router
// agree, so no endpoint's role requirement is ever inferred from its path
// at request time.
var requiredRoles = map[routeKey][]models.Role{
	{"GET", "/api/profile"}: {models.RoleCustomer, models.RoleRestaurant},

	// Customer
	{"POST", "/api/orders"}:                    {models.RoleCustomer},
	{"GET", "/api/orders"}:                     {models.RoleCustomer},
	{"GET", "/api/orders/:id"}:                 {models.RoleCustomer},
	{"POST", "/api/restaurants/:id/reviews"}:   {models.RoleCustomer},
	{"PUT", "/api/reviews/:id"}:                {models.RoleCustomer},
	{"DELETE", "/api/reviews/:id"}:             {models.RoleCustomer},
	{"GET", "/api/addresses"}:                  {models.RoleCustomer},
	{"POST", "/api/addresses"}:                 {models.RoleCustomer},
	{"PUT", "/api/addresses/:id"}:              {models.RoleCustomer},
	{"DELETE", "/api/addresses/:id"}:           {models.RoleCustomer},
	{"POST", "/api/messages"}:                  {models.RoleCustomer},
	{"GET", "/api/customers/messages"}:         {models.RoleCustomer},
	{"DELETE", "/api/messages/:id"}:            {models.RoleCustomer},
	{"GET", "/api/customers/lookup/:username"}: {models.RoleCustomer},

	// Restaurant owner
	{"GET", "/api/my/restaurants"}:                     {models.RoleRestaurant},
	{"POST", "/api/restaurants"}:                       {models.RoleRestaurant},
	{"PUT", "/api/restaurants/:id"}:                    {models.RoleRestaurant},
	{"DELETE", "/api/restaurants/:id"}:                 {models.RoleRestaurant},
	{"POST", "/api/restaurants/:id/foods"}:             {models.RoleRestaurant},
	{"PUT", "/api/foods/:id"}:                          {models.RoleRestaurant},
	{"DELETE", "/api/foods/:id"}:                       {models.RoleRestaurant},
	{"POST", "/api/restaurants/:id/photos"}:            {models.RoleRestaurant},
	{"DELETE", "/api/restaurants/:id/photos/:photoId"}: {models.RoleRestaurant},

	// Admin
	{"GET", "/api/admin/orders"}:      {models.RoleAdmin},
	{"GET", "/api/admin/customers"}:   {models.RoleAdmin},
	{"GET", "/api/admin/restaurants"}: {models.RoleAdmin},
}

// publicRoutes lists every endpoint reachable without a token.
var publicRoutes = map[routeKey]bool{
	{"GET", "/health"}:                      true,
	{"POST", "/api/auth/signup"}:            true,
	{"POST", "/api/auth/login"}:             true,
	{"GET", "/api/restaurants"}:             true,
	{"GET", "/api/restaurants/:id"}:         true,
	{"GET", "/api/restaurants/:id/foods"}:   true,
	{"GET", "/api/restaurants/:id/photos"}:  true,
	{"GET", "/api/restaurants/:id/reviews"}: true,
}

// RolesFor returns the classified roles for an authenticated route.
func RolesFor(method, path string) ([]models.Role, bool) {
	roles, ok := requiredRoles[routeKey{method, path}]
	return roles, ok
}

// SetupRoutes wires the session router, registers all endpoints and then
// verifies the classification table is complete. Panics on a missing or
// stale entry so misclassification is caught at startup, not in production
// traffic.
func SetupRoutes(r *gin.Engine, sessions *db.Sessions) {
	r.Use(middleware.SessionRouter(sessions))

	// Public
	r.POST("/api/auth/signup", middleware.RateLimit(time.Minute, 10), handlers.Signup)
	r.POST("/api/auth/login", middleware.RateLimit(time.Minute, 10), handlers.Login)
	r.GET("/api/restaurants", handlers.ListRestaurants)
	r.GET("/api/restaurants/:id", handlers.GetRestaurant)
	r.GET("/api/restaurants/:id/foods", handlers.GetFoods)
	r.GET("/api/restaurants/:id/photos", handlers.GetPhotos)
	r.GET("/api/restaurants/:id/reviews", handlers.GetReviews)

	// Authenticated
	protected(r, "GET", "/api/profile", handlers.GetProfile)

	protected(r, "POST", "/api/orders", handlers.PlaceOrder)
	protected(r, "GET", "/api/orders", handlers.GetMyOrders)
	protected(r, "GET", "/api/orders/:id", handlers.GetOrderDetail)
	protected(r, "POST", "/api/restaurants/:id/reviews", handlers.CreateReview)
	protected(r, "PUT", "/api/reviews/:id", handlers.UpdateReview)
	protected(r, "DELETE", "/api/reviews/:id", handlers.DeleteReview)
	protected(r, "GET", "/api/addresses", handlers.ListAddresses)
	protected(r, "POST", "/api/addresses", handlers.CreateAddress)
	protected(r, "PUT", "/api/addresses/:id", handlers.UpdateAddress)
	protected(r, "DELETE", "/api/addresses/:id", handlers.DeleteAddress)
	protected(r, "POST", "/api/messages", handlers.SendMessage)
	protected(r, "GET", "/api/customers/messages", handlers.GetMyMessages)
	protected(r, "DELETE", "/api/messages/:id", handlers.DeleteMessage)
	protected(r, "GET", "/api/customers/lookup/:username", handlers.LookupCustomer)

	protected(r, "GET", "/api/my/restaurants", handlers.GetMyRestaurants)
	protected(r, "POST", "/api/restaurants", handlers.CreateRestaurant)
	protected(r, "PUT", "/api/restaurants/:id", handlers.UpdateRestaurant)
	protected(r, "DELETE", "/api/restaurants/:id", handlers.DeleteRestaurant)
	protected(r, "POST", "/api/restaurants/:id/foods", handlers.AddFood)
	protected(r, "PUT", "/api/foods/:id", handlers.UpdateFood)
	protected(r, "DELETE", "/api/foods/:id", handlers.DeleteFood)
	protected(r, "POST", "/api/restaurants/:id/photos", handlers.UploadPhoto)
	protected(r, "DELETE", "/api/restaurants/:id/photos/:photoId", handlers.DeletePhoto)

	protected(r, "GET", "/api/admin/orders", handlers.AdminGetAllOrders)
	protected(r, "GET", "/api/admin/customers", handlers.AdminGetAllCustomers)
	protected(r, "GET", "/api/admin/restaurants", handlers.AdminGetAllRestaurants)

	verifyClassification(r)
}

// protected registers an authenticated route with the guard chain derived
// from the classification table.
func protected(r *gin.Engine, method, path string, handler gin.HandlerFunc) {
	roles, ok := RolesFor(method, path)
	if !ok {
		panic("route not classified: " + method + " " + path)
	}
	r.Handle(method, path, middleware.AuthRequired(), middleware.RoleRequired(roles...), handler)
}

// verifyClassification checks both directions: every registered route is
// either public or classified, and every classified route was registered.
func verifyClassification(r *gin.Engine) {
	registered := map[routeKey]bool{}
	for _, route := range r.Routes() {
		key := routeKey{route.Method, route.Path}
		registered[key] = true
		if !publicRoutes[key] {
			if _, ok := requiredRoles[key]; !ok {
				panic("unclassified route: " + route.Method + " " + route.Path)
			}
		}
	}
	for key := range requiredRoles {
		if !registered[key] {
			panic("classified route never registered: " + key.Method + " " + key.Path)
		}
	}
}
