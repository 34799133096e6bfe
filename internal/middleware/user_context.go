package middleware

import (
	"staff-portal/internal/models"

	"github.com/gin-gonic/gin"
)

const CurrentUserKey = "CurrentUser"

// Identity — то, что отдаёт сессия.
type Identity interface {
	Current() (models.Identity, bool)
}

func InjectUser(s Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, ok := s.Current(); ok {
			c.Set(CurrentUserKey, id)
		}
		c.Next()
	}
}

func CurrentUser(c *gin.Context) (models.Identity, bool) {
	v, ok := c.Get(CurrentUserKey)
	if !ok {
		return models.Identity{}, false
	}
	id, ok := v.(models.Identity)
	return id, ok
}
