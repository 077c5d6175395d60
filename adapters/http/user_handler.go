package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userUC "github.com/devconnect/api/internal/application/usecase/user"
	"github.com/devconnect/api/pkg/apperror"
)

type UserHandler struct {
	registerUseCase *userUC.RegisterUseCase
}

func NewUserHandler(registerUC *userUC.RegisterUseCase) *UserHandler {
	return &UserHandler{registerUseCase: registerUC}
}

// Register answers POST /api/users with a session token for the new account.
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("name, a valid email and a password of at least 6 characters are required", err))
		return
	}

	output, err := h.registerUseCase.Execute(c.Request.Context(), userUC.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{Token: output.Token})
}
