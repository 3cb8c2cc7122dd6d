package controllers

import (
	"github.com/mikosha12/Hulu-beand-mern-b/dto"
	"github.com/mikosha12/Hulu-beand-mern-b/response"
	"github.com/mikosha12/Hulu-beand-mern-b/services"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	notifications *services.NotificationService
}

func NewNotificationController(notifications *services.NotificationService) *NotificationController {
	return &NotificationController{notifications: notifications}
}

func (ctrl *NotificationController) List(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	list, err := ctrl.notifications.ListForAdmin(c.Request.Context(), session.UserID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, list)
}

func (ctrl *NotificationController) UnreadCount(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	n, err := ctrl.notifications.CountUnread(c.Request.Context(), session.UserID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dto.CountResponse{Count: n})
}

// MarkRead godoc
// @Summary  Mark a notification as read
// @Tags     notifications
// @Param    id path string true "Notification id"
// @Success  200 {object} response.Response{data=models.Notification}
// @Failure  403 {object} response.Response
// @Failure  404 {object} response.Response
// @Router   /api/notifications/{id}/read [post]
func (ctrl *NotificationController) MarkRead(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	n, err := ctrl.notifications.MarkRead(c.Request.Context(), c.Param("id"), session.UserID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, n)
}
