package middleware

import (
	"sync"

	"github.com/gin-gonic/gin"
)

// Serialize выполняет запросы строго по одному: store и session рассчитаны
// на одного писателя, и каждое действие должно завершиться до следующего.
func Serialize() gin.HandlerFunc {
	var mu sync.Mutex
	return func(c *gin.Context) {
		mu.Lock()
		defer mu.Unlock()
		c.Next()
	}
}
