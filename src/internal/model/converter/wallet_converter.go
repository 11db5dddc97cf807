package converter

import (
	"wallet-service/src/internal/entity"
	"wallet-service/src/internal/model"
)

func TransactionToResponse(txn *entity.Transaction) *model.TransactionResponse {
	return &model.TransactionResponse{
		ID:              txn.ID,
		Type:            string(txn.Type),
		Amount:          txn.Amount,
		Status:          string(txn.Status),
		Date:            txn.Date,
		AccountName:     txn.AccountName,
		AccountNumber:   txn.AccountNumber,
		ReferenceNumber: txn.ReferenceNumber,
		Description:     txn.Description,
		DutyCharge:      txn.DutyCharge,
		Method:          txn.Method,
	}
}

func WalletToResponse(wallet *entity.WalletData) *model.WalletResponse {
	transactions := make([]model.TransactionResponse, 0, len(wallet.Transactions))
	for i := range wallet.Transactions {
		transactions = append(transactions, *TransactionToResponse(&wallet.Transactions[i]))
	}
	return &model.WalletResponse{
		Balance:      wallet.Balance,
		Transactions: transactions,
		LastUpdated:  wallet.LastUpdated,
	}
}

func NotificationToResponse(n *entity.NotificationData) *model.NotificationResponse {
	return &model.NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      string(n.Type),
		Category:  string(n.Category),
		Priority:  n.Priority,
		Timestamp: n.Timestamp,
		Read:      n.Read,
	}
}
