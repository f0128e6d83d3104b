package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/auth-service/internal/auth"
	"github.com/mrlokans/auth-service/internal/config"
)

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "jwt"

// AuthController handles authentication-related HTTP endpoints.
type AuthController struct {
	service *auth.Service
	config  config.Auth
}

// NewAuthController creates a new authentication controller.
func NewAuthController(service *auth.Service, cfg config.Auth) *AuthController {
	return &AuthController{
		service: service,
		config:  cfg,
	}
}

// RegisterRoutes registers authentication routes on the router.
func (ac *AuthController) RegisterRoutes(router *gin.Engine) {
	group := router.Group("/auth")
	group.POST("/register", ac.Register)
	group.POST("/login", ac.Login)
	group.GET("/user", ac.User)
	group.POST("/logout", ac.Logout)
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /auth/register.
func (ac *AuthController) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, auth.ErrInvalidInput, "register")
		return
	}

	user, err := ac.service.Register(req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, err, "register")
		return
	}

	respondSuccess(c, http.StatusCreated, "User registered successfully", user)
}

// Login handles POST /auth/login. On success the session token is
// delivered as an HTTP-only cookie.
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, auth.ErrInvalidInput, "login")
		return
	}

	user, token, err := ac.service.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err, "login")
		return
	}

	// No Secure/SameSite attributes: the cookie must work on plain-HTTP
	// deployments, with TLS termination expected in front.
	maxAge := int(ac.config.TokenTTL / time.Second)
	c.SetCookie(SessionCookie, token, maxAge, "/", "", false, true)

	respondSuccess(c, http.StatusOK, "Login successful", user)
}

// User handles GET /auth/user, resolving the session cookie to the
// authenticated user.
func (ac *AuthController) User(c *gin.Context) {
	token, _ := c.Cookie(SessionCookie) // an absent cookie verifies as empty
	user, err := ac.service.CurrentUser(token)
	if err != nil {
		respondError(c, err, "user")
		return
	}

	respondSuccess(c, http.StatusOK, "User retrieved successfully", user)
}

// Logout handles POST /auth/logout by clearing the session cookie.
// Tokens are stateless, so nothing is invalidated server-side and
// logout always succeeds.
func (ac *AuthController) Logout(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	respondSuccess(c, http.StatusOK, "Logout successful", nil)
}
