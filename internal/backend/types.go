package backend

// TokenResponse is the body of a successful POST /auth/token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// RegisterRequest is the body of POST /auth/register
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	Age       int    `json:"age"`
}

// SubmitResponse is the backend's classification of a submitted result
type SubmitResponse struct {
	RiskLevel string `json:"risk_level"`
}

// InterventionModule is the learner's current module from
// GET /api/intervention/current
type InterventionModule struct {
	CurrentModule string `json:"current_module"`
	Status        string `json:"status"`
}

// errorBody is the FastAPI-style error envelope
type errorBody struct {
	Detail string `json:"detail"`
}
