package dto

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// LoginRequest carries the login identifier in the email field; it is
// matched against both the email and phone columns.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
