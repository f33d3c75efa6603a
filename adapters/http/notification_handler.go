package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	notificationUC "github.com/savconnect/savconnect-api/internal/application/usecase/notification"
)

type NotificationHandler struct {
	listNotificationsUseCase *notificationUC.ListNotificationsUseCase
	markReadUseCase          *notificationUC.MarkReadUseCase
}

func NewNotificationHandler(listUC *notificationUC.ListNotificationsUseCase, markReadUC *notificationUC.MarkReadUseCase) *NotificationHandler {
	return &NotificationHandler{
		listNotificationsUseCase: listUC,
		markReadUseCase:          markReadUC,
	}
}

func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user information not found"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	output, err := h.listNotificationsUseCase.Execute(c.Request.Context(), notificationUC.ListNotificationsInput{
		UserID: userID,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]NotificationDTO, len(output.Notifications))
	for i, n := range output.Notifications {
		dtos[i] = ToNotificationDTO(n)
	}
	c.JSON(http.StatusOK, gin.H{"notifications": dtos})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user information not found"})
		return
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'id' is not a valid UUID"})
		return
	}

	if err := h.markReadUseCase.Execute(c.Request.Context(), notificationUC.MarkReadInput{
		NotificationID: notificationID,
		UserID:         userID,
	}); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "notification marked as read"})
}
