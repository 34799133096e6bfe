package middleware

import (
	"net/http"

	"staff-portal/internal/nav"

	"github.com/gin-gonic/gin"
)

// RequireView пускает запрос, только если guard роутера разрешает экран view.
// HTTP и навигация проверяются одной и той же функцией.
func RequireView(r *nav.Router, view nav.View) gin.HandlerFunc {
	return func(c *gin.Context) {
		d := r.Resolve(view)
		if !d.Redirected {
			c.Next()
			return
		}

		status := http.StatusForbidden
		msg := "access denied"
		if d.Reason == nav.ReasonUnauthenticated {
			status = http.StatusUnauthorized
			msg = "please log in first"
		}
		c.AbortWithStatusJSON(status, gin.H{
			"error":    msg,
			"redirect": d.Route,
		})
	}
}

// RequireAdmin — для эндпоинтов, у которых нет своего экрана (аудит, решения по заявкам).
func RequireAdmin(g nav.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !g.IsAuthenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":    "please log in first",
				"redirect": nav.RouteFor(nav.Login),
			})
			return
		}
		if !g.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":    "access denied",
				"redirect": nav.RouteFor(nav.DefaultView),
			})
			return
		}
		c.Next()
	}
}
