package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vishalpatil-45/Adventour/middleware"
)

// Handlers groups the controllers mounted by RegisterRoutes
type Handlers struct {
	Packages *PackageController
	Bookings *BookingController
	Users    *UserController
	Wishlist *WishlistController
	Contact  *ContactController
	Health   *HealthController
	Static   *StaticController
}

// RegisterRoutes mounts every endpoint on r
func RegisterRoutes(r *gin.Engine, h Handlers, auth middleware.Authenticator) {
	r.GET("/health", h.Health.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/packages", h.Packages.ListPackages)
		api.GET("/packages/:id", h.Packages.GetPackage)
		api.GET("/search", h.Packages.Search)
		api.GET("/locations", h.Packages.ListLocations)
		api.GET("/locations/:slug/packages", h.Packages.LocationPackages)

		api.POST("/booking", middleware.OptionalAuthMiddleware(auth), h.Bookings.CreateBooking)
		api.POST("/booking/quote", h.Bookings.Quote)

		api.POST("/newsletter", h.Contact.Newsletter)
		api.POST("/contact", h.Contact.Contact)

		api.POST("/auth/signup", h.Users.Signup)
		api.POST("/auth/login", h.Users.Login)
		api.POST("/auth/logout", middleware.AuthMiddleware(auth), h.Users.Logout)
	}

	account := api.Group("/account", middleware.AuthMiddleware(auth))
	{
		account.GET("", h.Users.GetAccount)
		account.PUT("", h.Users.UpdateAccount)
		account.PUT("/avatar", h.Users.UpdateAvatar)

		account.GET("/bookings", h.Users.ListBookings)
		account.GET("/bookings/export", h.Users.ExportBookings)
		account.POST("/bookings/:id/cancel", h.Users.CancelBooking)

		account.GET("/wishlist", h.Wishlist.List)
		account.POST("/wishlist", h.Wishlist.Add)
		account.DELETE("/wishlist/:packageId", h.Wishlist.Remove)
		account.POST("/wishlist/:packageId/toggle", h.Wishlist.Toggle)
	}

	r.NoRoute(h.Static.Serve)
}
