package handlers

import (
	"net/http"

	"staff-portal/internal/store"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListEmployees(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"employees": h.Store.EmployeeRows()})
}

func (h *Handler) CreateEmployee(c *gin.Context) {
	var in store.EmployeeInput
	if !bind(c, &in) {
		return
	}
	e, err := h.Store.CreateEmployee(in)
	if err != nil {
		fail(c, err)
		return
	}
	h.audit(c, "employee", e.ID, "create", e.EmployeeID)
	c.JSON(http.StatusCreated, gin.H{"employee": e})
}

func (h *Handler) UpdateEmployee(c *gin.Context) {
	var in store.EmployeeInput
	if !bind(c, &in) {
		return
	}
	e, err := h.Store.UpdateEmployee(c.Param("id"), in)
	if err != nil {
		fail(c, err)
		return
	}
	h.audit(c, "employee", e.ID, "update", e.EmployeeID)
	c.JSON(http.StatusOK, gin.H{"employee": e})
}

func (h *Handler) CanDeleteEmployee(c *gin.Context) bool {
	return h.precheck(c, h.Store.CheckDeleteEmployee(c.Param("id")))
}

func (h *Handler) DeleteEmployee(c *gin.Context) {
	id := c.Param("id")
	if err := h.Store.DeleteEmployee(id); err != nil {
		fail(c, err)
		return
	}
	h.audit(c, "employee", id, "delete", "")
	c.Status(http.StatusNoContent)
}
