package handlers

import (
	"net/http"

	"staff-portal/internal/models"

	"github.com/gin-gonic/gin"
)

type requestForm struct {
	Type  string        `json:"type"`
	Items []models.Item `json:"items"`
}

// ListMyRequests — только заявки текущего пользователя, новые сверху.
func (h *Handler) ListMyRequests(c *gin.Context) {
	me, _ := h.actor(c)
	c.JSON(http.StatusOK, gin.H{"requests": h.Store.RequestsFor(me.Email)})
}

func (h *Handler) CreateRequest(c *gin.Context) {
	me, _ := h.actor(c)
	var form requestForm
	if !bind(c, &form) {
		return
	}
	r, err := h.Store.CreateRequest(me.Email, form.Type, form.Items)
	if err != nil {
		fail(c, err)
		return
	}
	h.audit(c, "request", r.ID, "create", r.Type)
	c.JSON(http.StatusCreated, gin.H{"request": r})
}

func (h *Handler) CanCancelRequest(c *gin.Context) bool {
	me, _ := h.actor(c)
	return h.precheck(c, h.Store.CheckCancelRequest(c.Param("id"), me.Email))
}

func (h *Handler) CancelRequest(c *gin.Context) {
	me, _ := h.actor(c)
	id := c.Param("id")
	if err := h.Store.CancelRequest(id, me.Email); err != nil {
		fail(c, err)
		return
	}
	h.audit(c, "request", id, "cancel", "")
	c.Status(http.StatusNoContent)
}

//
// АДМИН: все заявки и решения по ним
//

func (h *Handler) ListAllRequests(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"requests": h.Store.Requests()})
}

func (h *Handler) ApproveRequest(c *gin.Context) {
	h.decide(c, models.StatusApproved)
}

func (h *Handler) RejectRequest(c *gin.Context) {
	h.decide(c, models.StatusRejected)
}

func (h *Handler) decide(c *gin.Context, status models.RequestStatus) {
	r, err := h.Store.SetRequestStatus(c.Param("id"), status)
	if err != nil {
		fail(c, err)
		return
	}
	h.audit(c, "request", r.ID, "status_change", string(status))
	c.JSON(http.StatusOK, gin.H{"request": r})
}
