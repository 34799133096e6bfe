package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const auditPageLimit = 200

func (h *Handler) ListAuditLogs(c *gin.Context) {
	limit := auditPageLimit
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v < auditPageLimit {
		limit = v
	}

	logs, err := h.Audit.List(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load audit log"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}
