package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/dlevina/prediction-billing/internal/domain/error"
	coreport "github.com/dlevina/prediction-billing/internal/domain/port/core"
	"github.com/dlevina/prediction-billing/internal/domain/port/usecase"
	"github.com/dlevina/prediction-billing/internal/infrastructure/adapter/api/dto"
)

// UserHandler handles account-related HTTP requests
type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	userUseCase usecase.UserUseCase,
	logger coreport.Logger,
) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// Register handles POST /api/users/register
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrValidation),
			Message: "Invalid request body",
		})
		return
	}

	user, err := h.userUseCase.Register(c.Request.Context(), usecase.RegisterRequest{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, h.logger, err, "")
		return
	}

	c.JSON(http.StatusCreated, dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		IsAdmin:   user.IsAdmin,
		CreatedAt: dto.FormatTime(user.CreatedAt),
	})
}

// Login handles POST /api/users/login
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrValidation),
			Message: "Invalid request body",
		})
		return
	}

	auth, err := h.userUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err, "Invalid credentials")
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Token:    auth.Token,
		UserID:   auth.UserID,
		Username: auth.Username,
	})
}

// List handles GET /api/users (admin only)
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userUseCase.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "")
		return
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, dto.UserResponse{
			ID:        user.ID,
			Email:     user.Email,
			Username:  user.Username,
			IsAdmin:   user.IsAdmin,
			CreatedAt: dto.FormatTime(user.CreatedAt),
		})
	}

	c.JSON(http.StatusOK, responses)
}
