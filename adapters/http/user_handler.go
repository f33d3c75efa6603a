package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userUC "github.com/savconnect/savconnect-api/internal/application/usecase/user"
)

type UserHandler struct {
	updateAvatarUseCase *userUC.UpdateAvatarUseCase
}

func NewUserHandler(updateAvatarUC *userUC.UpdateAvatarUseCase) *UserHandler {
	return &UserHandler{
		updateAvatarUseCase: updateAvatarUC,
	}
}

func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user information not found"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'file' is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "file cannot open"})
		return
	}
	defer file.Close()

	output, err := h.updateAvatarUseCase.Execute(c.Request.Context(), userUC.UpdateAvatarInput{
		UserID: userID,
		File:   file,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_url": output.AvatarURL})
}
