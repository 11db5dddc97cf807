package http

import (
	"wallet-service/src/internal/entity"
	"wallet-service/src/internal/model"
	"wallet-service/src/internal/usecase"
	httpError "wallet-service/src/pkg/http-error"
	"wallet-service/src/pkg/log"
	"wallet-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type AdminController struct {
	Log           log.Log
	AdminUseCase  *usecase.AdminUseCase
	WalletUseCase *usecase.WalletUseCase
}

func NewAdminController(adminUseCase *usecase.AdminUseCase, walletUseCase *usecase.WalletUseCase, logger log.Log) *AdminController {
	return &AdminController{
		Log:           logger,
		AdminUseCase:  adminUseCase,
		WalletUseCase: walletUseCase,
	}
}

func (c *AdminController) Credit(ctx *fiber.Ctx) error {
	request := new(model.CreditRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("AdminController.Credit", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.WalletUseCase.Credit(request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Balance Credited", fiber.StatusOK, ctx)
}

func (c *AdminController) Debit(ctx *fiber.Ctx) error {
	request := new(model.DebitRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("AdminController.Debit", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.WalletUseCase.Debit(request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Balance Debited", fiber.StatusOK, ctx)
}

func (c *AdminController) Reset(ctx *fiber.Ctx) error {
	request := new(model.ResetRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("AdminController.Reset", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.WalletUseCase.Reset(request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Account Reset", fiber.StatusOK, ctx)
}

func (c *AdminController) ReverseLastWithdrawal(ctx *fiber.Ctx) error {
	result := c.WalletUseCase.ReverseLastWithdrawal()
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Withdrawal Reversed", fiber.StatusOK, ctx)
}

// UpdateTransaction applies the status and description edits the admin
// panel makes on a selected withdrawal.
func (c *AdminController) UpdateTransaction(ctx *fiber.Ctx) error {
	request := new(model.UpdateTransactionRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("AdminController.UpdateTransaction", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.ID = ctx.Params("id")
	if request.Status == "" && request.Description == "" {
		errObj := httpError.NewBadRequest()
		errObj.Message = "either status or description must be provided"
		return utils.ResponseError(errObj, ctx)
	}

	var result utils.Result
	if request.Status != "" {
		result = c.WalletUseCase.UpdateTransactionStatus(request.ID, entity.TransactionStatus(request.Status))
		if result.Error != nil {
			return utils.ResponseError(result.Error, ctx)
		}
	}
	if request.Description != "" {
		result = c.WalletUseCase.UpdateTransactionDescription(request.ID, request.Description)
		if result.Error != nil {
			return utils.ResponseError(result.Error, ctx)
		}
	}
	return utils.Response(result.Data, "Transaction Updated", fiber.StatusOK, ctx)
}

func (c *AdminController) SaveWithdrawalDefaults(ctx *fiber.Ctx) error {
	request := new(model.WithdrawalDefaultsRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("AdminController.SaveWithdrawalDefaults", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.AdminUseCase.SaveWithdrawalDefaults(request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Withdrawal Defaults Saved", fiber.StatusOK, ctx)
}

func (c *AdminController) UpdateTradingID(ctx *fiber.Ctx) error {
	request := new(model.UpdateTradingIDRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("AdminController.UpdateTradingID", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.AdminUseCase.UpdateTradingID(request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Trading ID Updated", fiber.StatusOK, ctx)
}

func (c *AdminController) UpdateProfile(ctx *fiber.Ctx) error {
	request := new(model.UpdateProfileRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("AdminController.UpdateProfile", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.AdminUseCase.UpdateProfile(request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Profile Updated", fiber.StatusOK, ctx)
}

func (c *AdminController) ExportData(ctx *fiber.Ctx) error {
	result := c.AdminUseCase.ExportData()
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Export", fiber.StatusOK, ctx)
}

func (c *AdminController) ClearAllData(ctx *fiber.Ctx) error {
	result := c.AdminUseCase.ClearAllData()
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(nil, "All Data Cleared", fiber.StatusOK, ctx)
}
