package model

type CreditRequest struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description" validate:"max=500"`
}

type DebitRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type ResetRequest struct {
	Confirm bool `json:"confirm" validate:"required"`
}

type UpdateTransactionRequest struct {
	ID          string `json:"-" validate:"required"`
	Status      string `json:"status" validate:"omitempty,max=30"`
	Description string `json:"description" validate:"max=500"`
}

type WithdrawalDefaultsRequest struct {
	Status       string `json:"status" validate:"required,max=30"`
	Instructions string `json:"instructions" validate:"max=500"`
}

type UpdateTradingIDRequest struct {
	TradingID string `json:"trading_id" validate:"required,max=100"`
}
