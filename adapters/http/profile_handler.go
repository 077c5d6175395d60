package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	profileUC "github.com/devconnect/api/internal/application/usecase/profile"
	"github.com/devconnect/api/pkg/apperror"
)

type ProfileHandler struct {
	profileUseCase *profileUC.ProfileUseCase
}

func NewProfileHandler(uc *profileUC.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{profileUseCase: uc}
}

// GetMe answers GET /api/profile/me.
func (h *ProfileHandler) GetMe(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("user id not found in context"))
		return
	}

	p, err := h.profileUseCase.GetMe(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Upsert answers POST /api/profile, creating or updating the caller's profile.
func (h *ProfileHandler) Upsert(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("user id not found in context"))
		return
	}

	var req upsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("status and skills are required", err))
		return
	}

	p, err := h.profileUseCase.Upsert(c.Request.Context(), req.toInput(userID))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// List answers GET /api/profile, public.
func (h *ProfileHandler) List(c *gin.Context) {
	profiles, err := h.profileUseCase.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// GetByUserID answers GET /api/profile/user/:user_id, public.
func (h *ProfileHandler) GetByUserID(c *gin.Context) {
	p, err := h.profileUseCase.GetByUserID(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeleteAccount answers DELETE /api/profile, removing profile and user.
// The caller's posts stay behind.
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("user id not found in context"))
		return
	}

	if err := h.profileUseCase.DeleteAccount(c.Request.Context(), userID); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Profile deleted!"})
}

// AddExperience answers PUT /api/profile/experience.
func (h *ProfileHandler) AddExperience(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("user id not found in context"))
		return
	}

	var req experienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("title, company, location and from are required", err))
		return
	}

	p, err := h.profileUseCase.AddExperience(c.Request.Context(), req.toInput(userID))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// RemoveExperience answers DELETE /api/profile/experience/:exp_id.
func (h *ProfileHandler) RemoveExperience(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("user id not found in context"))
		return
	}

	p, err := h.profileUseCase.RemoveExperience(c.Request.Context(), userID, c.Param("exp_id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// AddEducation answers PUT /api/profile/education.
func (h *ProfileHandler) AddEducation(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("user id not found in context"))
		return
	}

	var req educationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("school, degree, fieldofstudy and from are required", err))
		return
	}

	p, err := h.profileUseCase.AddEducation(c.Request.Context(), req.toInput(userID))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// RemoveEducation answers DELETE /api/profile/education/:edu_id.
func (h *ProfileHandler) RemoveEducation(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("user id not found in context"))
		return
	}

	p, err := h.profileUseCase.RemoveEducation(c.Request.Context(), userID, c.Param("edu_id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// GithubRepos answers GET /api/profile/github/:username, public. The
// upstream body is passed through verbatim.
func (h *ProfileHandler) GithubRepos(c *gin.Context) {
	body, err := h.profileUseCase.GetGithubRepos(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.Error(err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
