package model

// WithdrawRequest requires only a positive amount; the ₱100 minimum is a
// delivery-layer rule applied before the use case is called.
type WithdrawRequest struct {
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Bank          string  `json:"bank" validate:"required,max=100"`
	AccountName   string  `json:"account_name" validate:"required,max=100"`
	AccountNumber string  `json:"account_number" validate:"required,max=50"`
}

type TransactionResponse struct {
	ID              string  `json:"id"`
	Type            string  `json:"type"`
	Amount          float64 `json:"amount"`
	Status          string  `json:"status"`
	Date            string  `json:"date"`
	AccountName     string  `json:"account_name,omitempty"`
	AccountNumber   string  `json:"account_number,omitempty"`
	ReferenceNumber string  `json:"reference_number,omitempty"`
	Description     string  `json:"description,omitempty"`
	DutyCharge      float64 `json:"duty_charge,omitempty"`
	Method          string  `json:"method,omitempty"`
}

type WalletResponse struct {
	Balance      float64               `json:"balance"`
	Transactions []TransactionResponse `json:"transactions"`
	LastUpdated  string                `json:"last_updated"`
}
