package handlers

import (
	"errors"
	"net/http"

	"staff-portal/internal/session"
	"staff-portal/internal/store"

	"github.com/gin-gonic/gin"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, session.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrDuplicateEmail),
		errors.Is(err, store.ErrInUse),
		errors.Is(err, store.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, store.ErrSelfDeletion),
		errors.Is(err, session.ErrNotVerified):
		return http.StatusForbidden
	case errors.Is(err, session.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, store.ErrEmptyItems),
		errors.Is(err, store.ErrMissingField),
		errors.Is(err, store.ErrInvalidRole),
		errors.Is(err, store.ErrPasswordTooShort):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) precheck(c *gin.Context, err error) bool {
	if err != nil {
		fail(c, err)
		return false
	}
	return true
}

// fail отдаёт ошибку пользователю как есть — это сообщения для UI.
func fail(c *gin.Context, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	c.JSON(status, gin.H{"error": msg})
}
