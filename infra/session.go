package infra

import (
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	gormsessions "github.com/gin-contrib/sessions/gorm"
)

const devSessionSecret = "dev-session-secret"

// NewSessionStore は SESSION_STORE に応じたセッションストアを返す
// "db" の場合はセッション用SQLiteにサーバーサイドで保存する
func NewSessionStore(cfg *Config) sessions.Store {
	secret := []byte(cfg.SessionSecret)
	if len(secret) == 0 {
		log.Println("SESSION_SECRET is not set; using development secret")
		secret = []byte(devSessionSecret)
	}

	var store sessions.Store
	switch cfg.SessionStore {
	case SessionStoreCookie:
		store = cookie.NewStore(secret)
	default:
		store = gormsessions.NewStore(SetupSessionDB(cfg), true, secret)
	}

	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.SessionMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   cfg.IsRelease(),
		SameSite: http.SameSiteLaxMode,
	})
	return store
}
