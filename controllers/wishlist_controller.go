package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vishalpatil-45/Adventour/dto"
	"github.com/vishalpatil-45/Adventour/middleware"
	"github.com/vishalpatil-45/Adventour/services"
)

// WishlistController serves /api/account/wishlist
type WishlistController struct {
	service services.WishlistService
}

// NewWishlistController creates a WishlistController
func NewWishlistController(service services.WishlistService) *WishlistController {
	return &WishlistController{service: service}
}

// List handles GET /api/account/wishlist
func (ctrl *WishlistController) List(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	items, err := ctrl.service.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to load wishlist")
		return
	}
	c.JSON(http.StatusOK, items)
}

// Add handles POST /api/account/wishlist
func (ctrl *WishlistController) Add(c *gin.Context) {
	var req dto.AddWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid package ID")
		return
	}

	userID, _ := middleware.UserID(c)
	items, err := ctrl.service.Add(c.Request.Context(), userID, req.PackageID.Int())
	if err != nil {
		respondError(c, err, "Failed to update wishlist")
		return
	}
	c.JSON(http.StatusOK, items)
}

// Remove handles DELETE /api/account/wishlist/:packageId
func (ctrl *WishlistController) Remove(c *gin.Context) {
	packageID, ok := packageIDParam(c)
	if !ok {
		return
	}

	userID, _ := middleware.UserID(c)
	items, err := ctrl.service.Remove(c.Request.Context(), userID, packageID)
	if err != nil {
		respondError(c, err, "Failed to update wishlist")
		return
	}
	c.JSON(http.StatusOK, items)
}

// Toggle handles POST /api/account/wishlist/:packageId/toggle
func (ctrl *WishlistController) Toggle(c *gin.Context) {
	packageID, ok := packageIDParam(c)
	if !ok {
		return
	}

	userID, _ := middleware.UserID(c)
	in, err := ctrl.service.Toggle(c.Request.Context(), userID, packageID)
	if err != nil {
		respondError(c, err, "Failed to update wishlist")
		return
	}
	c.JSON(http.StatusOK, gin.H{"inWishlist": in})
}

func packageIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("packageId"))
	if err != nil {
		badRequest(c, "Invalid package ID")
		return 0, false
	}
	return id, true
}
