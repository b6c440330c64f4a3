package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/hotel-booking-backend/internal/auth"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/response"
	"github.com/nekogravitycat/hotel-booking-backend/internal/user"
)

type Handler struct {
	userService user.Service
	jwtManager  *auth.JWTManager
	revocations auth.RevocationStore
	tokenTTL    time.Duration
}

func NewHandler(
	userService user.Service,
	jwtManager *auth.JWTManager,
	revocations auth.RevocationStore,
	tokenTTL time.Duration,
) *Handler {
	return &Handler{
		userService: userService,
		jwtManager:  jwtManager,
		revocations: revocations,
		tokenTTL:    tokenTTL,
	}
}

//
// POST /api/auth/register
//

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	u, err := h.userService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": NewUserResponse(u)})
}

//
// POST /api/auth/login
//

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	u, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	token, err := h.jwtManager.GenerateAccessToken(u.ID, u.Role)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(h.tokenTTL.Seconds()),
		User:        NewUserResponse(u),
	})
}

//
// POST /api/auth/logout
//

func (h *Handler) Logout(c *gin.Context) {
	tokenID := auth.GetTokenID(c)
	if tokenID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	expiresAt := auth.GetTokenExpiry(c)
	if expiresAt.IsZero() {
		expiresAt = time.Now().Add(h.tokenTTL)
	}

	if err := h.revocations.Revoke(c.Request.Context(), tokenID, expiresAt); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "logged out successfully"})
}

//
// GET /api/auth/me
//

func (h *Handler) Me(c *gin.Context) {
	u, err := h.userService.GetByID(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": NewUserResponse(u)})
}
