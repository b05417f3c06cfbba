package dto

type CreateUserRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type CreateUserResponse struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}
