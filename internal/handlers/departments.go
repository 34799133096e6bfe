package handlers

import (
	"net/http"

	"staff-portal/internal/store"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListDepartments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"departments": h.Store.Departments()})
}

func (h *Handler) CreateDepartment(c *gin.Context) {
	var in store.DepartmentInput
	if !bind(c, &in) {
		return
	}
	d, err := h.Store.CreateDepartment(in)
	if err != nil {
		fail(c, err)
		return
	}
	h.audit(c, "department", idString(d.ID), "create", d.Name)
	c.JSON(http.StatusCreated, gin.H{"department": d})
}

func (h *Handler) UpdateDepartment(c *gin.Context) {
	id, ok := int64Param(c)
	if !ok {
		return
	}
	var in store.DepartmentInput
	if !bind(c, &in) {
		return
	}
	d, err := h.Store.UpdateDepartment(id, in)
	if err != nil {
		fail(c, err)
		return
	}
	h.audit(c, "department", idString(d.ID), "update", d.Name)
	c.JSON(http.StatusOK, gin.H{"department": d})
}

func (h *Handler) CanDeleteDepartment(c *gin.Context) bool {
	id, ok := int64Param(c)
	if !ok {
		return false
	}
	return h.precheck(c, h.Store.CheckDeleteDepartment(id))
}

func (h *Handler) DeleteDepartment(c *gin.Context) {
	id, ok := int64Param(c)
	if !ok {
		return
	}
	if err := h.Store.DeleteDepartment(id); err != nil {
		fail(c, err)
		return
	}
	h.audit(c, "department", idString(id), "delete", "")
	c.Status(http.StatusNoContent)
}
