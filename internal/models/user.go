package models

// Business is the merchant profile attached to an account: contact details
// plus the official registration number. The backend assumes one business
// per user.
type Business struct {
	ID                int    `json:"id,omitempty"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Address           string `json:"address"`
	BusinessRegNumber string `json:"business_reg_number"`
}

// User is the identity record the backend returns on login and register.
type User struct {
	ID       int      `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Business Business `json:"business"`
}

// AuthResponse is the body of a successful login or register call.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// RegisterRequest is the registration payload: flat account fields with the
// business profile nested under its own key.
type RegisterRequest struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Business Business `json:"business"`
}
