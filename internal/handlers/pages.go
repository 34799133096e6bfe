package handlers

import (
	"net/http"

	"staff-portal/internal/nav"

	"github.com/gin-gonic/gin"
)

// Index — состояние приложения: активный экран и меню.
func (h *Handler) Index(c *gin.Context) {
	render(c, http.StatusOK, h.Session, gin.H{
		"view":  h.Router.Active(),
		"route": h.Router.Route(),
	})
}

type navigateForm struct {
	Route string `json:"route" form:"route"`
}

// Navigate — аналог hashchange: маршрут проходит через guard, активируется
// ровно один экран, в ответе — решение и данные этого экрана.
func (h *Handler) Navigate(c *gin.Context) {
	var form navigateForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid route"})
		return
	}

	d := h.Router.Navigate(form.Route)
	render(c, http.StatusOK, h.Session, gin.H{
		"decision": d,
		"data":     h.viewData(d.View),
	})
}

func (h *Handler) viewData(v nav.View) any {
	switch v {
	case nav.Profile, nav.Dashboard:
		if id, ok := h.Session.Current(); ok {
			return id
		}
	case nav.Accounts:
		return accountViews(h.Store.Accounts())
	case nav.Departments:
		return h.Store.Departments()
	case nav.Employees:
		return gin.H{
			"employees":   h.Store.EmployeeRows(),
			"departments": h.Store.Departments(),
		}
	case nav.Requests:
		if id, ok := h.Session.Current(); ok {
			return h.Store.RequestsFor(id.Email)
		}
	case nav.Verify:
		return gin.H{"pendingEmail": h.Session.PendingEmail()}
	}
	return nil
}

func (h *Handler) Profile(c *gin.Context) {
	id, ok := h.actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "please log in first"})
		return
	}
	render(c, http.StatusOK, h.Session, gin.H{"profile": id})
}
