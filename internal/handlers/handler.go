package handlers

import (
	"net/http"
	"strconv"

	"staff-portal/internal/database"
	"staff-portal/internal/middleware"
	"staff-portal/internal/models"
	"staff-portal/internal/nav"
	"staff-portal/internal/session"
	"staff-portal/internal/store"

	"github.com/gin-gonic/gin"
)

// Handler — тонкий слой представления поверх store, session и nav.
// Никакой логики данных здесь нет.
type Handler struct {
	Store   *store.Store
	Session *session.Session
	Router  *nav.Router
	Audit   *database.Audit
}

func New(st *store.Store, sess *session.Session, router *nav.Router, audit *database.Audit) *Handler {
	return &Handler{Store: st, Session: sess, Router: router, Audit: audit}
}

func (h *Handler) audit(c *gin.Context, entity, entityID, action, details string) {
	actor, _ := middleware.CurrentUser(c)
	h.Audit.Record(actor, entity, entityID, action, details)
}

func (h *Handler) actor(c *gin.Context) (models.Identity, bool) {
	if id, ok := middleware.CurrentUser(c); ok {
		return id, true
	}
	return h.Session.Current()
}

func int64Param(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	return true
}
