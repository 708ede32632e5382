package user

// Principal identifies an authenticated caller on admin routes.
type Principal struct {
	UserID string
	Email  string
}
