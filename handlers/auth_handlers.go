package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"goldencrust/api/metrics"
	"goldencrust/api/models"
	"goldencrust/api/utils"
)

type AuthHandlers struct {
	checker *utils.PasswordChecker
}

func NewAuthHandlers(checker *utils.PasswordChecker) *AuthHandlers {
	return &AuthHandlers{checker: checker}
}

// Login checks the dashboard password and reports success as a bare boolean.
// No token or cookie is issued: the dashboard holds its own logged-in flag and
// the stats routes perform no authorization check. That gap is inherited from
// the original design and documented in DESIGN.md rather than papered over.
func (h *AuthHandlers) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ok := h.checker.Verify(req.Password)
	metrics.RecordLoginAttempt(ok)
	if !ok {
		log.Println("Dashboard login failed: password mismatch")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
