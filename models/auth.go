package models

// LoginRequest carries the dashboard password. Deliberately no binding tag on
// Password: an empty password must come back as a 401 mismatch, not a 400.
type LoginRequest struct {
	Password string `json:"password"`
}
