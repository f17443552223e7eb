package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/vishalpatil-45/Adventour/dto"
	"github.com/vishalpatil-45/Adventour/services"
	"github.com/vishalpatil-45/Adventour/utils"
)

// respondError maps a service error to a status code and body. Unexpected
// errors are logged and answered with fallback.
func respondError(c *gin.Context, err error, fallback string) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		badRequest(c, verr.Message)
	case errors.Is(err, services.ErrPackageNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Package not found"})
	case errors.Is(err, services.ErrLocationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Location not found"})
	case errors.Is(err, services.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Booking not found"})
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "User not found"})
	case errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "An account with this email already exists"})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid email or password"})
	case errors.Is(err, services.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid or expired session"})
	default:
		_ = c.Error(err)
		log.WithError(err).WithField("path", c.Request.URL.Path).Error(fallback)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: fallback})
	}
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: message})
}

// bindError answers a failed ShouldBind with the first validation message
func bindError(c *gin.Context, err error) {
	badRequest(c, utils.ValidationMessage(err))
}
