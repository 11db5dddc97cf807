package usecase

import (
	"fmt"
	"strings"

	"wallet-service/src/internal/entity"
	"wallet-service/src/internal/model"
	"wallet-service/src/internal/model/converter"
	"wallet-service/src/internal/repository"
	httpError "wallet-service/src/pkg/http-error"
	"wallet-service/src/pkg/log"
	"wallet-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
)

type AdminUseCase struct {
	Log           log.Log
	Validate      *validator.Validate
	Store         *repository.Store
	Users         *repository.UserRepository
	Wallets       *repository.WalletRepository
	Settings      *repository.SettingsRepository
	Notifications *NotificationUseCase
}

func NewAdminUseCase(
	logger log.Log,
	validate *validator.Validate,
	store *repository.Store,
	userRepository *repository.UserRepository,
	walletRepository *repository.WalletRepository,
	settingsRepository *repository.SettingsRepository,
	notifications *NotificationUseCase,
) *AdminUseCase {
	return &AdminUseCase{
		Log:           logger,
		Validate:      validate,
		Store:         store,
		Users:         userRepository,
		Wallets:       walletRepository,
		Settings:      settingsRepository,
		Notifications: notifications,
	}
}

// SaveWithdrawalDefaults stores the status and instruction text applied to
// every new withdrawal.
func (c *AdminUseCase) SaveWithdrawalDefaults(request *model.WithdrawalDefaultsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err)
		result.Error = errObj
		return result
	}

	status := entity.TransactionStatus(request.Status)
	if !entity.ValidStatus(status) {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("invalid transaction status %q", request.Status)
		result.Error = errObj
		return result
	}

	defaults := &entity.WithdrawalDefaults{
		Status:       status,
		Instructions: request.Instructions,
	}
	if err := c.Settings.SetWithdrawalDefaults(defaults); err != nil {
		result.Error = storageError(err)
		return result
	}

	c.Log.Info("AdminUseCase.SaveWithdrawalDefaults", "defaults saved", "settings", utils.ConvertString(defaults))
	result.Data = defaults
	return result
}

// UpdateTradingID replaces the login credential. The whole user record is
// rewritten, matching the storage layer's whole-record write discipline.
func (c *AdminUseCase) UpdateTradingID(request *model.UpdateTradingIDRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = "please enter a valid Trading ID"
		result.Error = errObj
		return result
	}

	newID := strings.ToUpper(strings.TrimSpace(request.TradingID))
	if newID == "" {
		errObj := httpError.NewBadRequest()
		errObj.Message = "please enter a valid Trading ID"
		result.Error = errObj
		return result
	}

	user, err := c.Users.GetUser()
	if err != nil {
		result.Error = storageError(err)
		return result
	}
	if user == nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "unable to update Trading ID: user data not found"
		result.Error = errObj
		return result
	}

	oldID := user.TradingID
	user.TradingID = newID
	if err := c.Users.SetUser(user); err != nil {
		result.Error = storageError(err)
		return result
	}

	if err := c.Notifications.Add(
		"Access Code Updated",
		fmt.Sprintf("Trading ID changed from %s to %s", oldID, newID),
		entity.NotifySuccess, entity.CategorySecurity,
	); err != nil {
		c.Log.Error("AdminUseCase.UpdateTradingID", err.Error(), "notification", "")
	}

	c.Log.Info("AdminUseCase.UpdateTradingID", "trading id updated", "user", newID)
	result.Data = user
	return result
}

// UpdateProfile overwrites the stored user profile wholesale.
func (c *AdminUseCase) UpdateProfile(request *model.UpdateProfileRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err)
		result.Error = errObj
		return result
	}

	user, err := c.Users.GetUser()
	if err != nil {
		result.Error = storageError(err)
		return result
	}
	if user == nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "user data not found"
		result.Error = errObj
		return result
	}

	user.Name = request.Name
	user.Country = request.Country
	user.Mobile = request.Mobile
	user.Email = request.Email
	if request.ProfileImage != "" {
		user.ProfileImage = request.ProfileImage
	}
	user.LinkedAccount = entity.LinkedAccount{
		Type:          request.AccountType,
		AccountName:   request.AccountName,
		AccountNumber: request.AccountNumber,
	}

	if err := c.Users.SetUser(user); err != nil {
		result.Error = storageError(err)
		return result
	}

	c.Log.Info("AdminUseCase.UpdateProfile", "profile updated", "user", user.Name)
	result.Data = user
	return result
}

// ExportData snapshots every record for backup.
func (c *AdminUseCase) ExportData() utils.Result {
	var result utils.Result

	user, err := c.Users.GetUser()
	if err != nil {
		result.Error = storageError(err)
		return result
	}
	wallet, err := c.Wallets.GetWallet()
	if err != nil {
		result.Error = storageError(err)
		return result
	}
	listResult := c.Notifications.List()
	if listResult.Error != nil {
		result.Error = listResult.Error
		return result
	}

	result.Data = map[string]interface{}{
		"user":          user,
		"wallet":        converter.WalletToResponse(wallet),
		"notifications": listResult.Data,
	}
	return result
}

// ClearAllData wipes every storage slot, auth flag included.
func (c *AdminUseCase) ClearAllData() utils.Result {
	var result utils.Result

	if err := c.Store.ClearAll(); err != nil {
		result.Error = storageError(err)
		return result
	}
	c.Log.Info("AdminUseCase.ClearAllData", "all data cleared", "storage", "")
	return result
}
