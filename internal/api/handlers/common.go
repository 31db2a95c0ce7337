package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/maxaizer/job-board/internal/domain/models"
	"github.com/maxaizer/job-board/internal/logger"
	log "github.com/sirupsen/logrus"
)

// UserContextKey is where the session middleware stores the logged-in user.
const UserContextKey = "user"

type apiError struct {
	Message string `json:"message"`
}

func writeError(c *gin.Context, status int, message string) {
	c.JSON(status, apiError{Message: message})
}

// writeInternalError hides the cause from the caller and keeps it in the log.
func writeInternalError(c *gin.Context, err error, message string) {
	log.WithField(logger.ErrorTypeField, logger.ErrorTypeHttp).
		Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	writeError(c, http.StatusInternalServerError, message)
}

func currentUser(c *gin.Context) (models.User, bool) {
	if v, ok := c.Get(UserContextKey); ok {
		if user, ok := v.(models.User); ok {
			return user, true
		}
	}
	return models.User{}, false
}

// intQuery parses an optional numeric query parameter. A present but
// non-numeric value is a caller error, not a silent default.
func intQuery(c *gin.Context, name string, fallback int) (int, bool) {

	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return value, true
}
