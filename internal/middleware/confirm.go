package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ConfirmHeader = "X-Confirm-Token"

// Precheck проверяет, что действие вообще возможно. При false ответ уже
// записан, и до подтверждения дело не доходит.
type Precheck func(c *gin.Context) bool

// RequireConfirmation — двухшаговое подтверждение разрушительных действий.
// Первый вызов отвечает 428 и одноразовым токеном (он же кладётся в cookie-сессию),
// повтор с заголовком X-Confirm-Token выполняет действие.
func RequireConfirmation(action string, check Precheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		if check != nil && !check(c) {
			c.Abort()
			return
		}

		sess := sessions.Default(c)
		key := "confirm:" + action + ":" + c.Param("id")

		if tok := c.GetHeader(ConfirmHeader); tok != "" {
			want, _ := sess.Get(key).(string)
			if want != "" && want == tok {
				sess.Delete(key)
				_ = sess.Save()
				c.Next()
				return
			}
		}

		tok := uuid.NewString()
		sess.Set(key, tok)
		_ = sess.Save()
		c.AbortWithStatusJSON(http.StatusPreconditionRequired, gin.H{
			"error":   "confirmation required",
			"action":  action,
			"confirm": tok,
		})
	}
}
