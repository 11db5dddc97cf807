package entity

type TransactionType string

const (
	TypeDeposit    TransactionType = "deposit"
	TypeWithdrawal TransactionType = "withdrawal"
)

type TransactionStatus string

const (
	StatusPending    TransactionStatus = "pending"
	StatusProcessing TransactionStatus = "processing"
	StatusOnHold     TransactionStatus = "on hold"
	StatusOngoing    TransactionStatus = "ongoing"
	StatusDeclined   TransactionStatus = "declined"
	StatusCompleted  TransactionStatus = "completed"
	StatusFailed     TransactionStatus = "failed"
)

// ValidStatus reports whether s belongs to the closed status set. The
// storage layer never persists a status outside this set.
func ValidStatus(s TransactionStatus) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusOnHold, StatusOngoing,
		StatusDeclined, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

type Transaction struct {
	ID              string            `json:"id"`
	Type            TransactionType   `json:"type"`
	Amount          float64           `json:"amount"`
	Status          TransactionStatus `json:"status"`
	Date            string            `json:"date"`
	AccountName     string            `json:"accountName,omitempty"`
	AccountNumber   string            `json:"accountNumber,omitempty"`
	ReferenceNumber string            `json:"referenceNumber,omitempty"`
	Description     string            `json:"description,omitempty"`
	DutyCharge      float64           `json:"dutyCharge,omitempty"`
	Method          string            `json:"method,omitempty"`
}

// WalletData is the whole persisted wallet record. Transactions are kept
// newest first; every mutation rewrites the record wholesale.
type WalletData struct {
	Balance      float64       `json:"balance"`
	Transactions []Transaction `json:"transactions"`
	LastUpdated  string        `json:"lastUpdated"`
}

// WithdrawalDefaults supplies the status and description applied to newly
// created withdrawals. It lives in its own storage slot, managed from the
// admin surface.
type WithdrawalDefaults struct {
	Status       TransactionStatus `json:"status"`
	Instructions string            `json:"instructions"`
}
