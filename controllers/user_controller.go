package controllers

import (
	"github.com/mikosha12/Hulu-beand-mern-b/dto"
	"github.com/mikosha12/Hulu-beand-mern-b/response"
	"github.com/mikosha12/Hulu-beand-mern-b/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	users *services.UserService
	auth  *services.AuthService
}

func NewUserController(users *services.UserService, auth *services.AuthService) *UserController {
	return &UserController{users: users, auth: auth}
}

func (ctrl *UserController) Me(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	user, err := ctrl.users.Me(c.Request.Context(), session.UserID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, user)
}

// UpdateMe godoc
// @Summary  Update the caller's details and profile picture
// @Tags     users
// @Accept   multipart/form-data
// @Produce  json
// @Success  200 {object} response.Response{data=models.User}
// @Failure  400 {object} response.Response
// @Router   /api/users/me [put]
func (ctrl *UserController) UpdateMe(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	var patch dto.ProfilePatch
	picture, ok := bindProfile(c, &patch)
	if !ok {
		return
	}

	user, err := ctrl.users.UpdateProfile(c.Request.Context(), session, patch, picture)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, user)
}

func (ctrl *UserController) UpdateByEmail(c *gin.Context) {
	var patch dto.AdminUserPatch
	if !bindJSON(c, &patch) {
		return
	}

	user, err := ctrl.users.UpdateByEmail(c.Request.Context(), c.Param("email"), patch)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, user)
}

func (ctrl *UserController) Deactivate(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	if err := ctrl.users.Deactivate(c.Request.Context(), session.UserID); err != nil {
		response.FromError(c, err)
		return
	}
	response.Message(c, "Account deactivated")
}

func (ctrl *UserController) List(c *gin.Context) {
	users, err := ctrl.users.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, users)
}

func (ctrl *UserController) Get(c *gin.Context) {
	user, err := ctrl.users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, user)
}

func (ctrl *UserController) Delete(c *gin.Context) {
	if err := ctrl.users.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Message(c, "User deleted")
}

func (ctrl *UserController) RegisterAdmin(c *gin.Context) {
	var input dto.RegisterInput
	if !bindJSON(c, &input) {
		return
	}

	admin, err := ctrl.auth.RegisterAdmin(c.Request.Context(), input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, admin)
}
