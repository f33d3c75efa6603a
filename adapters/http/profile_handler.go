package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	profileUC "github.com/savconnect/savconnect-api/internal/application/usecase/profile"
	"github.com/savconnect/savconnect-api/internal/domain/profile"
)

type ProfileHandler struct {
	profileUseCase *profileUC.ProfileUseCase
}

func NewProfileHandler(uc *profileUC.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: uc,
	}
}

func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user information not found"})
		return
	}

	output, err := h.profileUseCase.ExecuteGetProfile(c.Request.Context(), profileUC.GetProfileInput{OwnerID: userID})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

func (h *ProfileHandler) GetProfileByUserID(c *gin.Context) {
	ownerID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'user_id' is not a valid UUID"})
		return
	}

	output, err := h.profileUseCase.ExecuteGetProfile(c.Request.Context(), profileUC.GetProfileInput{OwnerID: ownerID})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	output, err := h.profileUseCase.ExecuteListProfiles(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]ProfileDTO, len(output.Profiles))
	for i, p := range output.Profiles {
		dtos[i] = ToProfileDTO(p)
	}
	c.JSON(http.StatusOK, gin.H{"profiles": dtos})
}

func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user information not found"})
		return
	}

	var req UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	output, err := h.profileUseCase.ExecuteUpsertProfile(c.Request.Context(), profileUC.UpsertProfileInput{
		OwnerID:  userID,
		Company:  req.Company,
		Status:   req.Status,
		Location: req.Location,
		Bio:      req.Bio,
		Skills:   req.Skills,
		LinkedIn: req.LinkedIn,
		Youtube:  req.Youtube,
	})
	if err != nil {
		c.Error(err)
		return
	}

	status := http.StatusOK
	if output.Created {
		status = http.StatusCreated
	}
	c.JSON(status, ToProfileDTO(output.Profile))
}

func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user information not found"})
		return
	}

	if err := h.profileUseCase.ExecuteDeleteProfile(c.Request.Context(), profileUC.DeleteProfileInput{OwnerID: userID}); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile and user removed"})
}

func (h *ProfileHandler) AddExperience(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user information not found"})
		return
	}

	var req AddExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	output, err := h.profileUseCase.ExecuteAddExperience(c.Request.Context(), profileUC.AddExperienceInput{
		OwnerID: userID,
		Entry: profile.Experience{
			Title:       req.Title,
			Company:     req.Company,
			Location:    req.Location,
			From:        req.From,
			To:          req.To,
			Current:     req.Current,
			Description: req.Description,
		},
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

func (h *ProfileHandler) RemoveExperience(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user information not found"})
		return
	}

	entryID, err := uuid.Parse(c.Param("exp_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'exp_id' is not a valid UUID"})
		return
	}

	output, err := h.profileUseCase.ExecuteRemoveExperience(c.Request.Context(), profileUC.RemoveExperienceInput{
		OwnerID: userID,
		EntryID: entryID,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

func (h *ProfileHandler) AddEducation(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user information not found"})
		return
	}

	var req AddEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	output, err := h.profileUseCase.ExecuteAddEducation(c.Request.Context(), profileUC.AddEducationInput{
		OwnerID: userID,
		Entry: profile.Education{
			University:   req.University,
			Degree:       req.Degree,
			FieldOfStudy: req.FieldOfStudy,
			Location:     req.Location,
			From:         req.From,
			To:           req.To,
			Description:  req.Description,
		},
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

func (h *ProfileHandler) RemoveEducation(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user information not found"})
		return
	}

	entryID, err := uuid.Parse(c.Param("edu_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'edu_id' is not a valid UUID"})
		return
	}

	output, err := h.profileUseCase.ExecuteRemoveEducation(c.Request.Context(), profileUC.RemoveEducationInput{
		OwnerID: userID,
		EntryID: entryID,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}
