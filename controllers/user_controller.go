package controllers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vishalpatil-45/Adventour/dto"
	"github.com/vishalpatil-45/Adventour/middleware"
	"github.com/vishalpatil-45/Adventour/services"
	"github.com/vishalpatil-45/Adventour/storage"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// UserController serves sign-up, log-in and the account page
type UserController struct {
	users    services.UserService
	bookings services.BookingService
	export   services.ExportService
}

// NewUserController creates a UserController
func NewUserController(users services.UserService, bookings services.BookingService, export services.ExportService) *UserController {
	return &UserController{users: users, bookings: bookings, export: export}
}

// Signup handles POST /api/auth/signup
func (ctrl *UserController) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := ctrl.users.Signup(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create account")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /api/auth/login
func (ctrl *UserController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Please fill in all fields")
		return
	}

	resp, err := ctrl.users.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to log in")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Logout handles POST /api/auth/logout
func (ctrl *UserController) Logout(c *gin.Context) {
	if err := ctrl.users.Logout(c.Request.Context(), middleware.Claims(c)); err != nil {
		respondError(c, err, "Failed to log out")
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Logged out"})
}

// GetAccount handles GET /api/account
func (ctrl *UserController) GetAccount(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	user, err := ctrl.users.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to load account")
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateAccount handles PUT /api/account
func (ctrl *UserController) UpdateAccount(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	userID, _ := middleware.UserID(c)
	user, err := ctrl.users.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to update profile")
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Profile updated successfully!", Data: user})
}

// UpdateAvatar handles PUT /api/account/avatar with a multipart "avatar" file
func (ctrl *UserController) UpdateAvatar(c *gin.Context) {
	header, err := c.FormFile("avatar")
	if err != nil {
		badRequest(c, "Please choose an image")
		return
	}
	if header.Size > storage.MaxAvatarSize {
		badRequest(c, "Image must be smaller than 2 MB")
		return
	}

	file, err := header.Open()
	if err != nil {
		respondError(c, fmt.Errorf("open upload: %w", err), "Failed to update avatar")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, storage.MaxAvatarSize+1))
	if err != nil {
		respondError(c, fmt.Errorf("read upload: %w", err), "Failed to update avatar")
		return
	}

	userID, _ := middleware.UserID(c)
	user, err := ctrl.users.UpdateAvatar(c.Request.Context(), userID, data)
	if err != nil {
		respondError(c, err, "Failed to update avatar")
		return
	}
	c.JSON(http.StatusOK, user)
}

// ListBookings handles GET /api/account/bookings
func (ctrl *UserController) ListBookings(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	bookings, err := ctrl.bookings.ListUserBookings(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to load bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CancelBooking handles POST /api/account/bookings/:id/cancel
func (ctrl *UserController) CancelBooking(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	booking, err := ctrl.bookings.CancelBooking(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to cancel booking")
		return
	}
	c.JSON(http.StatusOK, booking)
}

// ExportBookings handles GET /api/account/bookings/export
func (ctrl *UserController) ExportBookings(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	buf, err := ctrl.export.ExportBookings(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to export bookings")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="adventour-bookings.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
