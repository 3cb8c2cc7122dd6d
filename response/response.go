package response

import (
	"net/http"

	apperrors "github.com/mikosha12/Hulu-beand-mern-b/errors"

	"github.com/gin-gonic/gin"
)

// Response is the JSON envelope of every endpoint
type Response struct {
	Code       int               `json:"code"`
	Message    string            `json:"message"`
	Data       interface{}       `json:"data,omitempty"`
	Errors     map[string]string `json:"errors,omitempty"`
	Pagination *Pagination       `json:"pagination,omitempty"`
}

// Pagination describes one page of a paged listing
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
}

// NewPagination derives the page count from total and page size
func NewPagination(total int64, page, pageSize int) Pagination {
	pages := 0
	if pageSize > 0 {
		pages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return Pagination{Total: total, Page: page, Pages: pages}
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    1,
		Message: "Success",
		Data:    data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    1,
		Message: "Created",
		Data:    data,
	})
}

// Message answers 200 with a message and no payload
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{
		Code:    1,
		Message: message,
	})
}

func SuccessWithPagination(c *gin.Context, data interface{}, p Pagination) {
	c.JSON(http.StatusOK, Response{
		Code:       1,
		Message:    "Success",
		Data:       data,
		Pagination: &p,
	})
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Response{
		Code:    0,
		Message: message,
	})
}

func ServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Something went wrong")
}

func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "Unauthorized")
}

func Forbidden(c *gin.Context) {
	Error(c, http.StatusForbidden, "Forbidden")
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func ValidationError(c *gin.Context, message string, fields map[string]string) {
	c.JSON(http.StatusBadRequest, Response{
		Code:    0,
		Message: message,
		Errors:  fields,
	})
}

// FromError writes err with the status of its AppError code.
// Server-side failures never leak their cause to the client.
func FromError(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		ServerError(c)
		return
	}

	status := apperrors.HTTPStatus(appErr.Code)
	if status >= http.StatusInternalServerError {
		ServerError(c)
		return
	}
	c.JSON(status, Response{
		Code:    0,
		Message: appErr.Message,
		Errors:  appErr.Fields,
	})
}
