package dto

type AuthResponse struct {
	Message string  `json:"message"`
	Token   string  `json:"token"`
	User    UserDTO `json:"user"`
}

type UserDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
