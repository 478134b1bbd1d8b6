package credentialsapimodels

type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Response is the whole body of every credential service reply.
type Response struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

// Record is what the key-value store keeps per email.
type Record struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"` // bcrypt hash
}
