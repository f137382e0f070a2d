package middlewares

import (
	"gin-ratings/constants"
	"gin-ratings/services"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// BearerToken は Authorization ヘッダーからトークンを取り出す
func BearerToken(ctx *gin.Context) (string, bool) {
	header := ctx.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	return token, token != ""
}

// RequireToken はアクセストークンの署名と有効期限を検証するミドルウェア
func RequireToken(authService services.IAuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, ok := BearerToken(ctx)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": constants.ErrTokenMissing})
			return
		}

		claims, err := authService.GetClaimsFromToken(tokenString)
		if err != nil {
			message := constants.ErrTokenInvalid
			if services.IsExpired(err) {
				message = constants.ErrTokenExpired
			}
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": message})
			return
		}

		ctx.Set(constants.ContextClaimsKey, claims)
		ctx.Next()
	}
}

// CurrentClaims は RequireToken が設定したクレームを返す
func CurrentClaims(ctx *gin.Context) (*services.Claims, bool) {
	value, exists := ctx.Get(constants.ContextClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*services.Claims)
	return claims, ok
}
