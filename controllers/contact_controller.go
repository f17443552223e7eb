package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vishalpatil-45/Adventour/dto"
	"github.com/vishalpatil-45/Adventour/services"
)

// ContactController serves the newsletter and contact forms
type ContactController struct {
	service services.InboxService
}

// NewContactController creates a ContactController
func NewContactController(service services.InboxService) *ContactController {
	return &ContactController{service: service}
}

// Newsletter handles POST /api/newsletter
func (ctrl *ContactController) Newsletter(c *gin.Context) {
	var req dto.NewsletterRequest
	if err := c.ShouldBind(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, "Email is required")
		return
	}

	if err := ctrl.service.Subscribe(c.Request.Context(), req); err != nil {
		respondError(c, err, "Failed to subscribe to newsletter")
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Successfully subscribed to newsletter"})
}

// Contact handles POST /api/contact
func (ctrl *ContactController) Contact(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBind(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, "All fields are required")
		return
	}

	if err := ctrl.service.Contact(c.Request.Context(), req); err != nil {
		respondError(c, err, "Failed to send message")
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Message sent successfully"})
}
