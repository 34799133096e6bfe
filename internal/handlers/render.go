package handlers

import (
	"staff-portal/internal/middleware"
	"staff-portal/internal/nav"

	"github.com/gin-gonic/gin"
)

// render — обёртка над c.JSON, которая во все ответы-страницы прокидывает
// текущего пользователя и меню.
func render(c *gin.Context, status int, g nav.Guard, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if u, ok := middleware.CurrentUser(c); ok {
		data["currentUser"] = u
		data["currentUserName"] = u.FullName()
		data["isAdmin"] = g.IsAdmin()
	}
	data["isAuthed"] = g.IsAuthenticated()
	data["menu"] = nav.Menu(g)

	c.JSON(status, data)
}
