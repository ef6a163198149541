package handlers

import (
	"net/http"

	"core_api/pkg/aiservice"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db       *gorm.DB
	aiClient aiservice.HealthChecker
}

func NewHealthHandler(db *gorm.DB, aiClient aiservice.HealthChecker) *HealthHandler {
	return &HealthHandler{db: db, aiClient: aiClient}
}

// Health is the liveness probe; it checks nothing.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DBHealth runs one trivial query against the store.
func (h *HealthHandler) DBHealth(c *gin.Context) {
	var one int
	if err := h.db.Raw("SELECT 1").Scan(&one).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "db ok"})
}

// AIHealth proxies the external AI service health check.
func (h *HealthHandler) AIHealth(c *gin.Context) {
	payload, err := h.aiClient.CheckHealth(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":  "ai service unreachable",
			"detail": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, payload)
}
