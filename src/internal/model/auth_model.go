package model

type LoginRequest struct {
	TradingID string `json:"trading_id" validate:"required,max=100"`
}

type LoginResponse struct {
	Name      string `json:"name"`
	TradingID string `json:"trading_id"`
	Message   string `json:"message"`
}

type SessionResponse struct {
	Authenticated bool `json:"authenticated"`
}

type UpdateProfileRequest struct {
	Name          string `json:"name" validate:"required,max=100"`
	Country       string `json:"country" validate:"max=100"`
	Mobile        string `json:"mobile" validate:"max=30"`
	Email         string `json:"email" validate:"omitempty,email,max=100"`
	ProfileImage  string `json:"profile_image,omitempty"`
	AccountType   string `json:"account_type" validate:"max=100"`
	AccountName   string `json:"account_name" validate:"max=100"`
	AccountNumber string `json:"account_number" validate:"max=50"`
}
