package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"linkup/api/v1/request"
	"linkup/internal/metrics"
	"linkup/middleware"
	"linkup/service"
)

// UserAPI exposes HTTP handlers for the signup/login/profile flows.
type UserAPI struct {
	service *service.UserService
}

func NewUserAPI(s *service.UserService) *UserAPI {
	return &UserAPI{service: s}
}

// Signup handles new account creation and returns a token plus the user.
func (u *UserAPI) Signup(c *gin.Context) {
	var req request.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncSignup("bad_request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "please provide all required fields: name, email and a password of at least 6 characters"})
		return
	}
	user, token, err := u.service.Signup(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			metrics.IncSignup("duplicate")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		metrics.IncSignup("internal_error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error during signup"})
		return
	}
	metrics.IncSignup("success")
	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
}

// Login validates credentials and returns a fresh token. Unknown email and
// wrong password share one message.
func (u *UserAPI) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncLogin("bad_request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "please provide email and password"})
		return
	}
	user, token, err := u.service.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			metrics.IncLogin("unauthorized")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		metrics.IncLogin("internal_error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error during login"})
		return
	}
	metrics.IncLogin("success")
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// Me returns the authenticated user's record.
func (u *UserAPI) Me(c *gin.Context) {
	user, err := u.service.GetByID(middleware.UserID(c))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile changes the caller's name and/or bio.
func (u *UserAPI) UpdateProfile(c *gin.Context) {
	var req request.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	user, err := u.service.UpdateProfile(middleware.UserID(c), req.Name, req.Bio)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// Logout blacklists the presented bearer token until it would have expired
// on its own.
func (u *UserAPI) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if err := u.service.Logout(c.Request.Context(), token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "logout failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
