package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxaizer/job-board/internal/services"
)

// SessionCookie names the cookie carrying the opaque session token.
const SessionCookie = "session_id"

type AuthHandler struct {
	sessions *services.Sessions
}

func NewAuthHandler(sessions *services.Sessions) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login accepts any non-empty credential pair. There is no user database:
// the session is the only thing a login creates.
func (h *AuthHandler) Login(c *gin.Context) {

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		writeError(c, http.StatusBadRequest, "username and password are required")
		return
	}

	token, user := h.sessions.Login(req.Username)
	c.SetCookie(SessionCookie, token, 0, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AuthHandler) Logout(c *gin.Context) {

	if token, err := c.Cookie(SessionCookie); err == nil {
		h.sessions.Logout(token)
	}

	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *AuthHandler) Me(c *gin.Context) {

	user, ok := currentUser(c)
	if !ok {
		writeError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
