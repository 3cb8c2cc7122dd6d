package controllers

import (
	"github.com/mikosha12/Hulu-beand-mern-b/dto"
	"github.com/mikosha12/Hulu-beand-mern-b/response"
	"github.com/mikosha12/Hulu-beand-mern-b/services"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{bookings: bookings}
}

// CreatePaymentIntent godoc
// @Summary  Open a payment for a stay
// @Tags     bookings
// @Param    id path string true "Hotel id"
// @Param    body body dto.PaymentIntentInput true "Nights"
// @Success  200 {object} response.Response{data=dto.PaymentIntentResponse}
// @Failure  404 {object} response.Response
// @Router   /api/hotels/{id}/bookings/payment-intent [post]
func (ctrl *BookingController) CreatePaymentIntent(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	var input dto.PaymentIntentInput
	if !bindJSON(c, &input) {
		return
	}

	res, err := ctrl.bookings.CreatePaymentIntent(c.Request.Context(), session, c.Param("id"), input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, res)
}

func (ctrl *BookingController) Confirm(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	var input dto.BookingInput
	if !bindJSON(c, &input) {
		return
	}

	booking, err := ctrl.bookings.ConfirmBooking(c.Request.Context(), session, c.Param("id"), input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, booking)
}

func (ctrl *BookingController) MyBookings(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	hotels, err := ctrl.bookings.ListMyBookings(c.Request.Context(), session.UserID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, hotels)
}
