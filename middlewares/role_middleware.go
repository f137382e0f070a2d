package middlewares

import (
	"gin-ratings/constants"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RoleBasedAccessControl 指定されたロールのみアクセスを許可するミドルウェア
// RequireTokenの後に使用することを想定（トークンのroleクレームで判定する）
func RoleBasedAccessControl(allowedRoles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, ok := CurrentClaims(ctx)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": constants.ErrTokenMissing})
			return
		}

		// ロール名は完全一致で比較する（"admin" は "Admin" とは別のロール）
		for _, allowedRole := range allowedRoles {
			if claims.Role != "" && claims.Role == allowedRole {
				ctx.Next()
				return
			}
		}

		log.Printf("RoleBasedAccessControl: Access denied. User ID=%d, role=%q, required roles=%v",
			claims.UserID, claims.Role, allowedRoles)
		ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": constants.ErrAdminsOnly})
	}
}
