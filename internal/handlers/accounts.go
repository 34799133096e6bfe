package handlers

import (
	"net/http"
	"strconv"

	"staff-portal/internal/models"
	"staff-portal/internal/store"

	"github.com/gin-gonic/gin"
)

// AccountView — аккаунт без пароля для таблиц
type AccountView struct {
	ID        int64           `json:"id"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Email     string          `json:"email"`
	Verified  bool            `json:"verified"`
	Role      models.UserRole `json:"role"`
}

func accountView(a models.Account) AccountView {
	return AccountView{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Email:     a.Email,
		Verified:  a.Verified,
		Role:      a.Role,
	}
}

func accountViews(list []models.Account) []AccountView {
	out := make([]AccountView, 0, len(list))
	for _, a := range list {
		out = append(out, accountView(a))
	}
	return out
}

func idString(id int64) string {
	return strconv.FormatInt(id, 10)
}

func (h *Handler) ListAccounts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"accounts": accountViews(h.Store.Accounts())})
}

func (h *Handler) CreateAccount(c *gin.Context) {
	var in store.AccountInput
	if !bind(c, &in) {
		return
	}
	acc, err := h.Store.CreateAccountAsAdmin(in)
	if err != nil {
		fail(c, err)
		return
	}
	h.audit(c, "account", idString(acc.ID), "create", acc.Email)
	c.JSON(http.StatusCreated, gin.H{"account": accountView(acc)})
}

func (h *Handler) UpdateAccount(c *gin.Context) {
	id, ok := int64Param(c)
	if !ok {
		return
	}
	var in store.AccountInput
	if !bind(c, &in) {
		return
	}
	acc, err := h.Store.UpdateAccount(id, in)
	if err != nil {
		fail(c, err)
		return
	}
	h.audit(c, "account", idString(acc.ID), "update", acc.Email)
	c.JSON(http.StatusOK, gin.H{"account": accountView(acc)})
}

type resetPasswordForm struct {
	Password string `json:"password"`
}

func (h *Handler) ResetPassword(c *gin.Context) {
	id, ok := int64Param(c)
	if !ok {
		return
	}
	var form resetPasswordForm
	if !bind(c, &form) {
		return
	}
	acc, err := h.Store.ResetPassword(id, form.Password)
	if err != nil {
		fail(c, err)
		return
	}
	h.audit(c, "account", idString(acc.ID), "reset_password", acc.Email)
	c.JSON(http.StatusOK, gin.H{"message": "Password for " + acc.Email + " has been reset."})
}

// CanDeleteAccount — проверка до подтверждения: себя удалить нельзя.
func (h *Handler) CanDeleteAccount(c *gin.Context) bool {
	id, ok := int64Param(c)
	if !ok {
		return false
	}
	actor, _ := h.actor(c)
	return h.precheck(c, h.Store.CheckDeleteAccount(id, actor.ID))
}

func (h *Handler) DeleteAccount(c *gin.Context) {
	id, ok := int64Param(c)
	if !ok {
		return
	}
	actor, _ := h.actor(c)
	if err := h.Store.DeleteAccount(id, actor.ID); err != nil {
		fail(c, err)
		return
	}
	h.audit(c, "account", idString(id), "delete", "")
	c.Status(http.StatusNoContent)
}
