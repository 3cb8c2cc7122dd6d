package controllers

import (
	"github.com/mikosha12/Hulu-beand-mern-b/dto"
	"github.com/mikosha12/Hulu-beand-mern-b/errors"
	"github.com/mikosha12/Hulu-beand-mern-b/middleware"
	"github.com/mikosha12/Hulu-beand-mern-b/response"
	"github.com/mikosha12/Hulu-beand-mern-b/services"

	"github.com/gin-gonic/gin"
)

type SearchController struct {
	search *services.SearchService
}

func NewSearchController(search *services.SearchService) *SearchController {
	return &SearchController{search: search}
}

// Search godoc
// @Summary  Search hotels
// @Tags     hotels
// @Produce  json
// @Param    destination query string false "City or country, case-insensitive"
// @Param    adultCount  query int    false "Minimum adults"
// @Param    childCount  query int    false "Minimum children"
// @Param    facilities  query []string false "Required facilities"
// @Param    types       query []string false "Accepted types"
// @Param    stars       query []int  false "Accepted star ratings"
// @Param    maxPrice    query number false "Highest price per night"
// @Param    sortOption  query string false "starRating, pricePerNightAsc or pricePerNightDesc"
// @Param    page        query int    false "Page, from 1"
// @Success  200 {object} response.Response{data=[]models.Hotel}
// @Failure  400 {object} response.Response
// @Router   /api/hotels/search [get]
func (ctrl *SearchController) Search(c *gin.Context) {
	filter, err := dto.ParseSearchFilter(c.Request.URL.Query())
	if err != nil {
		response.FromError(c, err)
		return
	}

	page, err := ctrl.search.Search(c.Request.Context(), filter)
	if err != nil {
		response.FromError(c, err)
		return
	}
	ctrl.search.RememberFilter(c.Request.Context(), middleware.SessionID(c), filter)
	response.SuccessWithPagination(c, page.Data, page.Pagination)
}

func (ctrl *SearchController) Suggest(c *gin.Context) {
	suggestions, err := ctrl.search.Suggest(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, suggestions)
}

// LastFilter returns the filter this browser session searched with last
func (ctrl *SearchController) LastFilter(c *gin.Context) {
	filter, err := ctrl.search.LastFilter(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	if filter == nil {
		response.FromError(c, errors.NotFound("No saved search"))
		return
	}
	response.Success(c, filter)
}
