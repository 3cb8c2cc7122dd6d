package controllers

import (
	"strings"

	"github.com/mikosha12/Hulu-beand-mern-b/errors"
	"github.com/mikosha12/Hulu-beand-mern-b/middleware"
	"github.com/mikosha12/Hulu-beand-mern-b/models"
	"github.com/mikosha12/Hulu-beand-mern-b/response"
	"github.com/mikosha12/Hulu-beand-mern-b/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const (
	imageFilesField     = "imageFiles"
	profilePictureField = "profilePicture"
)

func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.FromError(c, errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid request body", err))
		return false
	}
	return true
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), binding.MIMEMultipartPOSTForm)
}

// bindListing reads a listing body sent either as JSON or as a multipart
// form carrying image files
func bindListing(c *gin.Context, dst interface{}) ([]services.ImageFile, bool) {
	if !isMultipart(c) {
		return nil, bindJSON(c, dst)
	}

	if err := c.ShouldBindWith(dst, binding.FormMultipart); err != nil {
		response.FromError(c, errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid form data", err))
		return nil, false
	}
	form, err := c.MultipartForm()
	if err != nil {
		response.FromError(c, errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid form data", err))
		return nil, false
	}
	return services.FromFileHeaders(form.File[imageFilesField]), true
}

// bindProfile reads a profile body sent as JSON or as a multipart form with
// an optional single picture
func bindProfile(c *gin.Context, dst interface{}) (*services.ImageFile, bool) {
	if !isMultipart(c) {
		return nil, bindJSON(c, dst)
	}

	if err := c.ShouldBindWith(dst, binding.FormMultipart); err != nil {
		response.FromError(c, errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid form data", err))
		return nil, false
	}
	form, err := c.MultipartForm()
	if err != nil {
		response.FromError(c, errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid form data", err))
		return nil, false
	}
	files := services.FromFileHeaders(form.File[profilePictureField])
	if len(files) == 0 {
		return nil, true
	}
	return &files[0], true
}

// currentSession returns the caller; routes using it sit behind AuthMiddleware
func currentSession(c *gin.Context) (models.Session, bool) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		response.Unauthorized(c)
	}
	return session, ok
}
