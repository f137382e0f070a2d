package middlewares

import (
	"gin-ratings/constants"
	"gin-ratings/models"
	"gin-ratings/services"
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// RequireSession はセッションに保存されたユーザーを読み込むミドルウェア
// ユーザーが存在しない場合はセッションを破棄して401を返す
func RequireSession(authService services.IAuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		session := sessions.Default(ctx)
		userID, ok := SessionUserID(session)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": constants.ErrLoginRequired})
			return
		}

		user, err := authService.GetPrincipal(userID)
		if err != nil {
			session.Clear()
			if err := session.Save(); err != nil {
				log.Printf("Session save error: %v", err)
			}
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": constants.ErrLoginRequired})
			return
		}

		ctx.Set(constants.ContextUserKey, user)
		ctx.Next()
	}
}

// SessionUserID はセッションからユーザーIDを取り出す
func SessionUserID(session sessions.Session) (uint, bool) {
	switch v := session.Get(constants.SessionKeyUserID).(type) {
	case uint:
		return v, v != 0
	case int:
		return uint(v), v > 0
	case int64:
		return uint(v), v > 0
	case float64:
		return uint(v), v > 0
	default:
		return 0, false
	}
}

// CurrentUser は RequireSession が設定したユーザーを返す
func CurrentUser(ctx *gin.Context) (*models.User, bool) {
	value, exists := ctx.Get(constants.ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
