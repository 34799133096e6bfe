package handlers

import (
	"net/http"
	"strings"

	"staff-portal/internal/nav"
	"staff-portal/internal/store"

	"github.com/gin-gonic/gin"
)

type registerForm struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// Register — самостоятельная регистрация: аккаунт user, не подтверждён.
func (h *Handler) Register(c *gin.Context) {
	var form registerForm
	if !bind(c, &form) {
		return
	}

	acc, err := h.Store.CreateAccount(store.AccountInput{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Password:  form.Password,
	})
	if err != nil {
		fail(c, err)
		return
	}
	h.Session.SetPendingEmail(acc.Email)
	h.audit(c, "account", idString(acc.ID), "register", acc.Email)

	d := h.Router.Navigate(nav.RouteFor(nav.Verify))
	c.JSON(http.StatusCreated, gin.H{
		"account":  accountView(acc),
		"decision": d,
	})
}

type verifyForm struct {
	Email string `json:"email"`
}

// Verify имитирует подтверждение email. Без тела подтверждается
// email, оставшийся после регистрации.
func (h *Handler) Verify(c *gin.Context) {
	var form verifyForm
	_ = c.ShouldBindJSON(&form)
	email := strings.TrimSpace(form.Email)
	if email == "" {
		email = h.Session.PendingEmail()
	}

	acc, err := h.Store.VerifyAccount(email)
	if err != nil {
		fail(c, err)
		return
	}

	d := h.Router.Navigate(nav.RouteFor(nav.Login))
	c.JSON(http.StatusOK, gin.H{
		"email":    acc.Email,
		"decision": d,
	})
}

type loginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var form loginForm
	if !bind(c, &form) {
		return
	}

	id, err := h.Session.Login(form.Email, form.Password)
	if err != nil {
		fail(c, err)
		return
	}

	d := h.Router.Navigate(nav.RouteFor(nav.Profile))
	c.JSON(http.StatusOK, gin.H{
		"user":     id,
		"isAdmin":  h.Session.IsAdmin(),
		"decision": d,
		"menu":     nav.Menu(h.Session),
	})
}

func (h *Handler) Logout(c *gin.Context) {
	h.Session.Logout()
	d := h.Router.Navigate(nav.RouteFor(nav.Home))
	c.JSON(http.StatusOK, gin.H{
		"decision": d,
		"menu":     nav.Menu(h.Session),
	})
}
