package controllers

import (
	"github.com/mikosha12/Hulu-beand-mern-b/dto"
	"github.com/mikosha12/Hulu-beand-mern-b/response"
	"github.com/mikosha12/Hulu-beand-mern-b/services"

	"github.com/gin-gonic/gin"
)

type HotelController struct {
	hotels *services.HotelService
}

func NewHotelController(hotels *services.HotelService) *HotelController {
	return &HotelController{hotels: hotels}
}

// Submit godoc
// @Summary  Submit a hotel listing
// @Tags     my-hotels
// @Accept   multipart/form-data
// @Produce  json
// @Success  201 {object} response.Response{data=models.Hotel}
// @Failure  400 {object} response.Response
// @Router   /api/my-hotels [post]
func (ctrl *HotelController) Submit(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	var input dto.HotelInput
	images, ok := bindListing(c, &input)
	if !ok {
		return
	}

	hotel, err := ctrl.hotels.Submit(c.Request.Context(), session, input, images)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, hotel)
}

func (ctrl *HotelController) ListMine(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	hotels, err := ctrl.hotels.ListMine(c.Request.Context(), session.UserID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, hotels)
}

func (ctrl *HotelController) GetMine(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	hotel, err := ctrl.hotels.GetMine(c.Request.Context(), c.Param("hotelId"), session.UserID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, hotel)
}

func (ctrl *HotelController) update(c *gin.Context, ownerID string) {
	var patch dto.HotelPatch
	images, ok := bindListing(c, &patch)
	if !ok {
		return
	}

	hotel, err := ctrl.hotels.Update(c.Request.Context(), c.Param("hotelId"), ownerID, patch, images)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, hotel)
}

// UpdateMine godoc
// @Summary  Edit one of the caller's hotels
// @Tags     my-hotels
// @Param    hotelId path string true "Hotel id"
// @Success  200 {object} response.Response{data=models.Hotel}
// @Failure  404 {object} response.Response
// @Router   /api/my-hotels/{hotelId} [put]
func (ctrl *HotelController) UpdateMine(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	ctrl.update(c, session.UserID)
}

// AdminUpdate edits any hotel
func (ctrl *HotelController) AdminUpdate(c *gin.Context) {
	ctrl.update(c, "")
}

func (ctrl *HotelController) DeleteMine(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	if err := ctrl.hotels.Delete(c.Request.Context(), c.Param("hotelId"), session.UserID); err != nil {
		response.FromError(c, err)
		return
	}
	response.Message(c, "Hotel deleted")
}

func (ctrl *HotelController) AdminDelete(c *gin.Context) {
	if err := ctrl.hotels.Delete(c.Request.Context(), c.Param("id"), ""); err != nil {
		response.FromError(c, err)
		return
	}
	response.Message(c, "Hotel deleted")
}

func (ctrl *HotelController) ListAll(c *gin.Context) {
	hotels, err := ctrl.hotels.ListAll(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, hotels)
}

func (ctrl *HotelController) Count(c *gin.Context) {
	n, err := ctrl.hotels.Count(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dto.CountResponse{Count: n})
}

func (ctrl *HotelController) Get(c *gin.Context) {
	hotel, err := ctrl.hotels.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, hotel)
}
