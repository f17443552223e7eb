package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/vishalpatil-45/Adventour/dto"
	"github.com/vishalpatil-45/Adventour/middleware"
	"github.com/vishalpatil-45/Adventour/services"
)

const maxFormMemory = 1 << 20

// BookingController serves the booking form endpoints
type BookingController struct {
	service services.BookingService
}

// NewBookingController creates a BookingController
func NewBookingController(service services.BookingService) *BookingController {
	return &BookingController{service: service}
}

// CreateBooking handles POST /api/booking. The body is decoded without
// validation so missing fields are reported in form order by the service.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := decodeBooking(c, &req); err != nil {
		badRequest(c, "Invalid booking data")
		return
	}

	var userID *uint
	if id, ok := middleware.UserID(c); ok {
		userID = &id
	}

	resp, err := ctrl.service.CreateBooking(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to process booking")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// decodeBooking reads a JSON or form-encoded body into req. An empty body
// leaves req empty.
func decodeBooking(c *gin.Context, req *dto.CreateBookingRequest) error {
	switch c.ContentType() {
	case "", binding.MIMEJSON:
		if err := json.NewDecoder(c.Request.Body).Decode(req); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	case binding.MIMEMultipartPOSTForm:
		if err := c.Request.ParseMultipartForm(maxFormMemory); err != nil {
			return err
		}
	default:
		if err := c.Request.ParseForm(); err != nil {
			return err
		}
	}
	return binding.MapFormWithTag(req, c.Request.PostForm, "form")
}

// Quote handles POST /api/booking/quote
func (ctrl *BookingController) Quote(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	quote, err := ctrl.service.Quote(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to calculate price")
		return
	}
	c.JSON(http.StatusOK, quote)
}
