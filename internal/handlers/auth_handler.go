package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quizapp-service/internal/auth"
	"quizapp-service/internal/repository"
	"quizapp-service/internal/service"
)

type AuthHandler struct {
	Service *service.UserService
}

func NewAuthHandler(s *service.UserService) *AuthHandler {
	return &AuthHandler{Service: s}
}

// GoogleLogin redirects the browser to Google's consent screen.
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	url, err := h.Service.BeginGoogleSignIn(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// GoogleCallback finishes the sign-in and returns the session token.
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	state := c.Query("state")
	code := c.Query("code")
	if state == "" || code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing state or code"})
		return
	}
	result, err := h.Service.CompleteGoogleSignIn(c.Request.Context(), state, code)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Me returns the hydrated session profile.
func (h *AuthHandler) Me(c *gin.Context) {
	session, ok := c.Get(auth.ContextSession)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no session"})
		return
	}
	c.JSON(http.StatusOK, session.(*repository.Session))
}

// Logout deletes the session; the token stops working immediately.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.Service.SignOut(c.Request.Context(), c.GetString(auth.ContextSessionID)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}
