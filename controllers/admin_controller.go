package controllers

import (
	"github.com/mikosha12/Hulu-beand-mern-b/response"
	"github.com/mikosha12/Hulu-beand-mern-b/services"
	"github.com/mikosha12/Hulu-beand-mern-b/validator"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	hotels       *services.HotelService
	transactions *services.TransactionService
}

func NewAdminController(hotels *services.HotelService, transactions *services.TransactionService) *AdminController {
	return &AdminController{hotels: hotels, transactions: transactions}
}

// Approve godoc
// @Summary  Approve a pending hotel
// @Tags     admin
// @Param    hotelId path string true "Hotel id"
// @Success  200 {object} response.Response{data=models.Hotel}
// @Failure  404 {object} response.Response
// @Router   /api/admin/approve/{hotelId} [put]
func (ctrl *AdminController) Approve(c *gin.Context) {
	hotel, err := ctrl.hotels.Approve(c.Request.Context(), c.Param("hotelId"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, hotel)
}

// Reject godoc
// @Summary  Reject a pending hotel
// @Tags     admin
// @Param    hotelId path string true "Hotel id"
// @Success  200 {object} response.Response{data=models.Hotel}
// @Failure  404 {object} response.Response
// @Router   /api/admin/reject/{hotelId} [put]
func (ctrl *AdminController) Reject(c *gin.Context) {
	hotel, err := ctrl.hotels.Reject(c.Request.Context(), c.Param("hotelId"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, hotel)
}

func (ctrl *AdminController) ListPending(c *gin.Context) {
	hotels, err := ctrl.hotels.ListPending(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, hotels)
}

// Revenue totals transactions between two YYYY-MM-DD dates, both inclusive
func (ctrl *AdminController) Revenue(c *gin.Context) {
	from, to, err := validator.ValidateDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	summary, err := ctrl.transactions.Revenue(c.Request.Context(), from, to)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, summary)
}
