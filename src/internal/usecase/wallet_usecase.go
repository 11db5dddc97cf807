package usecase

import (
	"fmt"
	"time"

	"wallet-service/src/internal/entity"
	"wallet-service/src/internal/model"
	"wallet-service/src/internal/model/converter"
	"wallet-service/src/internal/repository"
	httpError "wallet-service/src/pkg/http-error"
	"wallet-service/src/pkg/log"
	"wallet-service/src/pkg/metrics"
	"wallet-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
)

type WalletUseCase struct {
	Log           log.Log
	Validate      *validator.Validate
	Wallets       *repository.WalletRepository
	Settings      *repository.SettingsRepository
	Notifications *NotificationUseCase
	Metrics       *metrics.Collector
}

func NewWalletUseCase(
	logger log.Log,
	validate *validator.Validate,
	walletRepository *repository.WalletRepository,
	settingsRepository *repository.SettingsRepository,
	notifications *NotificationUseCase,
	collector *metrics.Collector,
) *WalletUseCase {
	return &WalletUseCase{
		Log:           logger,
		Validate:      validate,
		Wallets:       walletRepository,
		Settings:      settingsRepository,
		Notifications: notifications,
		Metrics:       collector,
	}
}

func (c *WalletUseCase) GetWallet() utils.Result {
	var result utils.Result

	wallet, err := c.Wallets.GetWallet()
	if err != nil {
		c.Log.Error("WalletUseCase.GetWallet", err.Error(), "storage", "")
		result.Error = storageError(err)
		return result
	}
	result.Data = converter.WalletToResponse(wallet)
	return result
}

// Credit adds funds and records a completed deposit transaction in history.
func (c *WalletUseCase) Credit(request *model.CreditRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err)
		result.Error = errObj
		c.Metrics.RecordOperation("credit", false)
		return result
	}

	wallet, err := c.Wallets.GetWallet()
	if err != nil {
		result.Error = storageError(err)
		c.Metrics.RecordOperation("credit", false)
		return result
	}

	description := request.Description
	if description == "" {
		description = "Credited by company"
	}

	now := time.Now()
	txn := entity.Transaction{
		ID:              fmt.Sprintf("credit_%d", now.UnixMilli()),
		Type:            entity.TypeDeposit,
		Amount:          request.Amount,
		Status:          entity.StatusCompleted,
		Date:            now.Format(time.RFC3339),
		Description:     description,
		ReferenceNumber: fmt.Sprintf("CR%d", now.UnixMilli()),
	}

	wallet.Balance += request.Amount
	wallet.Transactions = append([]entity.Transaction{txn}, wallet.Transactions...)

	if err := c.Wallets.SetWallet(wallet); err != nil {
		result.Error = storageError(err)
		c.Metrics.RecordOperation("credit", false)
		return result
	}

	c.notify("Balance Credited",
		fmt.Sprintf("%s has been credited to the account", utils.FormatPeso(request.Amount)),
		entity.NotifySuccess, entity.CategoryTransaction)

	c.Metrics.RecordOperation("credit", true)
	c.Metrics.SetBalance(wallet.Balance)
	c.Log.Info("WalletUseCase.Credit", "balance credited", "amount", utils.ConvertString(request.Amount))
	result.Data = converter.WalletToResponse(wallet)
	return result
}

// Debit lowers the balance without writing a history entry. This asymmetry
// with Credit is intentional: debits are silent balance corrections surfaced
// only through a warning notification, so they never appear alongside real
// deposits and withdrawals in the transaction list.
func (c *WalletUseCase) Debit(request *model.DebitRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err)
		result.Error = errObj
		c.Metrics.RecordOperation("debit", false)
		return result
	}

	wallet, err := c.Wallets.GetWallet()
	if err != nil {
		result.Error = storageError(err)
		c.Metrics.RecordOperation("debit", false)
		return result
	}

	if request.Amount > wallet.Balance {
		errObj := httpError.NewBadRequest()
		errObj.Message = "insufficient balance for debit"
		result.Error = errObj
		c.Metrics.RecordOperation("debit", false)
		return result
	}

	wallet.Balance -= request.Amount

	if err := c.Wallets.SetWallet(wallet); err != nil {
		result.Error = storageError(err)
		c.Metrics.RecordOperation("debit", false)
		return result
	}

	c.notify("Balance Debited",
		fmt.Sprintf("%s has been debited from the account", utils.FormatPeso(request.Amount)),
		entity.NotifyWarning, entity.CategoryTransaction)

	c.Metrics.RecordOperation("debit", true)
	c.Metrics.SetBalance(wallet.Balance)
	result.Data = converter.WalletToResponse(wallet)
	return result
}

// Withdraw reserves the amount immediately and files a withdrawal with the
// admin-configured default status and instructions. The created transaction
// is returned so the caller can render a receipt.
func (c *WalletUseCase) Withdraw(request *model.WithdrawRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err)
		result.Error = errObj
		c.Metrics.RecordOperation("withdraw", false)
		return result
	}

	wallet, err := c.Wallets.GetWallet()
	if err != nil {
		result.Error = storageError(err)
		c.Metrics.RecordOperation("withdraw", false)
		return result
	}

	if request.Amount > wallet.Balance {
		errObj := httpError.NewBadRequest()
		errObj.Message = "insufficient balance"
		result.Error = errObj
		c.Metrics.RecordOperation("withdraw", false)
		return result
	}

	defaults, err := c.Settings.GetWithdrawalDefaults()
	if err != nil {
		result.Error = storageError(err)
		c.Metrics.RecordOperation("withdraw", false)
		return result
	}

	now := time.Now()
	txn := entity.Transaction{
		ID:              fmt.Sprintf("WD%d", now.UnixMilli()),
		Type:            entity.TypeWithdrawal,
		Amount:          request.Amount,
		Status:          defaults.Status,
		Date:            now.Format(time.RFC3339),
		Method:          request.Bank,
		AccountName:     request.AccountName,
		AccountNumber:   request.AccountNumber,
		ReferenceNumber: fmt.Sprintf("REF%d", now.UnixMilli()),
		Description:     defaults.Instructions,
	}

	wallet.Balance -= request.Amount
	wallet.Transactions = append([]entity.Transaction{txn}, wallet.Transactions...)

	if err := c.Wallets.SetWallet(wallet); err != nil {
		result.Error = storageError(err)
		c.Metrics.RecordOperation("withdraw", false)
		return result
	}

	c.notify("Withdrawal Submitted",
		fmt.Sprintf("Your withdrawal request for %s has been submitted and is %s.",
			utils.FormatPeso(request.Amount), defaults.Status),
		entity.NotifySuccess, entity.CategoryTransaction)

	c.Metrics.RecordOperation("withdraw", true)
	c.Metrics.SetBalance(wallet.Balance)
	c.Log.Info("WalletUseCase.Withdraw", "withdrawal created", "transaction", utils.ConvertString(txn))
	result.Data = converter.TransactionToResponse(&txn)
	return result
}

// Reset zeroes the wallet and wipes history and notifications. The caller
// supplies the confirmation; nothing happens without it.
func (c *WalletUseCase) Reset(request *model.ResetRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil || !request.Confirm {
		errObj := httpError.NewBadRequest()
		errObj.Message = "account reset requires confirmation"
		result.Error = errObj
		return result
	}

	wallet := &entity.WalletData{
		Balance:      0,
		Transactions: []entity.Transaction{},
	}
	if err := c.Wallets.SetWallet(wallet); err != nil {
		result.Error = storageError(err)
		return result
	}

	if clearResult := c.Notifications.ClearAll(); clearResult.Error != nil {
		result.Error = clearResult.Error
		return result
	}

	c.notify("Account Reset",
		"Account has been reset to zero balance with cleared transaction history",
		entity.NotifyInfo, entity.CategoryAccount)

	c.Metrics.RecordOperation("reset", true)
	c.Metrics.SetBalance(0)
	c.Log.Info("WalletUseCase.Reset", "account reset", "wallet", "")
	result.Data = converter.WalletToResponse(wallet)
	return result
}

// ReverseLastWithdrawal removes the first withdrawal in list order and
// refunds its amount. List order is insertion order, so this is usually but
// not necessarily the most recent by date. Deliberately emits no
// notification, unlike the other mutations.
func (c *WalletUseCase) ReverseLastWithdrawal() utils.Result {
	var result utils.Result

	wallet, err := c.Wallets.GetWallet()
	if err != nil {
		result.Error = storageError(err)
		return result
	}

	index := -1
	for i := range wallet.Transactions {
		if wallet.Transactions[i].Type == entity.TypeWithdrawal {
			index = i
			break
		}
	}
	if index == -1 {
		errObj := httpError.NewNotFound()
		errObj.Message = "no withdrawal transaction to reverse"
		result.Error = errObj
		c.Metrics.RecordOperation("reverse_withdrawal", false)
		return result
	}

	reversed := wallet.Transactions[index]
	wallet.Transactions = append(wallet.Transactions[:index], wallet.Transactions[index+1:]...)
	wallet.Balance += reversed.Amount

	if err := c.Wallets.SetWallet(wallet); err != nil {
		result.Error = storageError(err)
		c.Metrics.RecordOperation("reverse_withdrawal", false)
		return result
	}

	c.Metrics.RecordOperation("reverse_withdrawal", true)
	c.Metrics.SetBalance(wallet.Balance)
	c.Log.Info("WalletUseCase.ReverseLastWithdrawal", "withdrawal reversed", "transaction", utils.ConvertString(reversed))
	result.Data = converter.TransactionToResponse(&reversed)
	return result
}

// UpdateTransactionStatus enforces the closed status set before mutating.
func (c *WalletUseCase) UpdateTransactionStatus(id string, status entity.TransactionStatus) utils.Result {
	var result utils.Result

	if !entity.ValidStatus(status) {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("invalid transaction status %q", status)
		result.Error = errObj
		return result
	}

	wallet, err := c.Wallets.GetWallet()
	if err != nil {
		result.Error = storageError(err)
		return result
	}

	txn := findTransaction(wallet, id)
	if txn == nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("transaction %s not found", id)
		result.Error = errObj
		return result
	}

	txn.Status = status
	if err := c.Wallets.SetWallet(wallet); err != nil {
		result.Error = storageError(err)
		return result
	}

	c.notify("Transaction Updated",
		fmt.Sprintf("Transaction %s status changed to %s", id, status),
		entity.NotifySuccess, entity.CategoryTransaction)

	result.Data = converter.TransactionToResponse(txn)
	return result
}

func (c *WalletUseCase) UpdateTransactionDescription(id, description string) utils.Result {
	var result utils.Result

	wallet, err := c.Wallets.GetWallet()
	if err != nil {
		result.Error = storageError(err)
		return result
	}

	txn := findTransaction(wallet, id)
	if txn == nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("transaction %s not found", id)
		result.Error = errObj
		return result
	}

	txn.Description = description
	if err := c.Wallets.SetWallet(wallet); err != nil {
		result.Error = storageError(err)
		return result
	}

	result.Data = converter.TransactionToResponse(txn)
	return result
}

// GetTransactions is a pure read of the full history, newest first.
func (c *WalletUseCase) GetTransactions() utils.Result {
	var result utils.Result

	wallet, err := c.Wallets.GetWallet()
	if err != nil {
		result.Error = storageError(err)
		return result
	}

	transactions := make([]model.TransactionResponse, 0, len(wallet.Transactions))
	for i := range wallet.Transactions {
		transactions = append(transactions, *converter.TransactionToResponse(&wallet.Transactions[i]))
	}
	result.Data = transactions
	return result
}

// GetPendingWithdrawals is a pure read.
func (c *WalletUseCase) GetPendingWithdrawals() utils.Result {
	var result utils.Result

	wallet, err := c.Wallets.GetWallet()
	if err != nil {
		result.Error = storageError(err)
		return result
	}

	pending := make([]model.TransactionResponse, 0)
	for i := range wallet.Transactions {
		txn := &wallet.Transactions[i]
		if txn.Type == entity.TypeWithdrawal && txn.Status == entity.StatusPending {
			pending = append(pending, *converter.TransactionToResponse(txn))
		}
	}
	result.Data = pending
	return result
}

func findTransaction(wallet *entity.WalletData, id string) *entity.Transaction {
	for i := range wallet.Transactions {
		if wallet.Transactions[i].ID == id {
			return &wallet.Transactions[i]
		}
	}
	return nil
}

// notify records the side-effect notification; a failure there must not roll
// back the already persisted wallet, so it is logged and swallowed.
func (c *WalletUseCase) notify(title, message string, ntype entity.NotificationType, category entity.NotificationCategory) {
	if err := c.Notifications.Add(title, message, ntype, category); err != nil {
		c.Log.Error("WalletUseCase.notify", err.Error(), "notification", title)
	}
}
