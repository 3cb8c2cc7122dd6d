package controllers

import (
	"net/http"
	"time"

	"github.com/mikosha12/Hulu-beand-mern-b/constants"
	"github.com/mikosha12/Hulu-beand-mern-b/dto"
	"github.com/mikosha12/Hulu-beand-mern-b/response"
	"github.com/mikosha12/Hulu-beand-mern-b/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth         *services.AuthService
	tokenTTL     time.Duration
	secureCookie bool
}

func NewAuthController(auth *services.AuthService, tokenTTL time.Duration, secureCookie bool) *AuthController {
	return &AuthController{auth: auth, tokenTTL: tokenTTL, secureCookie: secureCookie}
}

func (ctrl *AuthController) setAuthCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constants.AuthCookieName, token, maxAge, "/", "", ctrl.secureCookie, true)
}

func (ctrl *AuthController) signedIn(c *gin.Context, res *dto.AuthResponse, err error, created bool) {
	if err != nil {
		response.FromError(c, err)
		return
	}
	ctrl.setAuthCookie(c, res.Token, int(ctrl.tokenTTL.Seconds()))
	if created {
		response.Created(c, res)
		return
	}
	response.Success(c, res)
}

// Register godoc
// @Summary  Create an account and sign in
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body dto.RegisterInput true "Account"
// @Success  201 {object} response.Response{data=dto.AuthResponse}
// @Failure  400 {object} response.Response
// @Router   /api/auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var input dto.RegisterInput
	if !bindJSON(c, &input) {
		return
	}
	res, err := ctrl.auth.Register(c.Request.Context(), input)
	ctrl.signedIn(c, res, err, true)
}

// Login godoc
// @Summary  Sign in with email and password
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body dto.LoginInput true "Credentials"
// @Success  200 {object} response.Response{data=dto.AuthResponse}
// @Failure  400 {object} response.Response
// @Failure  403 {object} response.Response
// @Router   /api/auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var input dto.LoginInput
	if !bindJSON(c, &input) {
		return
	}
	res, err := ctrl.auth.Login(c.Request.Context(), input)
	ctrl.signedIn(c, res, err, false)
}

func (ctrl *AuthController) GoogleLogin(c *gin.Context) {
	var input dto.GoogleLoginInput
	if !bindJSON(c, &input) {
		return
	}
	res, err := ctrl.auth.GoogleLogin(c.Request.Context(), input)
	ctrl.signedIn(c, res, err, false)
}

func (ctrl *AuthController) Logout(c *gin.Context) {
	ctrl.setAuthCookie(c, "", -1)
	response.Message(c, "Signed out")
}
