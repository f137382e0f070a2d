package constants

// ユーザーロール
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// コンテキストキー
const (
	ContextUserKey   = "user"
	ContextClaimsKey = "claims"
)

// セッション
const (
	SessionCookieName = "ratings_session"
	SessionKeyUserID  = "user_id"
)

// エラーメッセージ
const (
	ErrUserNotFound       = "User not found"
	ErrRoleNotFound       = "Role not found"
	ErrReviewNotFound     = "Review not found"
	ErrUserExists         = "User already exists"
	ErrRoleExists         = "Role already exists"
	ErrUserHasReviews     = "User still has reviews"
	ErrInvalidCredentials = "Invalid credentials"
	ErrLoginRequired      = "Login required"
	ErrTokenMissing       = "Token is missing!"
	ErrTokenInvalid       = "Token is invalid"
	ErrTokenExpired       = "Token has expired"
	ErrAdminsOnly         = "Admins only!"
	ErrUnexpected         = "Unexpected error"
	ErrInvalidID          = "Invalid id"
	ErrInvalidInput       = "Invalid input"
	ErrMissingFields      = "Missing required fields"
)
