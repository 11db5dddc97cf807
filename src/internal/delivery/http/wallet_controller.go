package http

import (
	"wallet-service/src/internal/model"
	"wallet-service/src/internal/usecase"
	httpError "wallet-service/src/pkg/http-error"
	"wallet-service/src/pkg/log"
	"wallet-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

// MinWithdrawAmount is the smallest withdrawal the wallet form accepts. The
// floor lives here, not in the use case, which takes any positive amount
// covered by the balance.
const MinWithdrawAmount = 100

type WalletController struct {
	Log     log.Log
	UseCase *usecase.WalletUseCase
}

func NewWalletController(useCase *usecase.WalletUseCase, logger log.Log) *WalletController {
	return &WalletController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *WalletController) GetWallet(ctx *fiber.Ctx) error {
	result := c.UseCase.GetWallet()
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "GetWallet", fiber.StatusOK, ctx)
}

func (c *WalletController) Withdraw(ctx *fiber.Ctx) error {
	request := new(model.WithdrawRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("WalletController.Withdraw", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	if request.Amount < MinWithdrawAmount {
		errObj := httpError.NewBadRequest()
		errObj.Message = "minimum withdrawal amount is " + utils.FormatPeso(MinWithdrawAmount)
		return utils.ResponseError(errObj, ctx)
	}
	result := c.UseCase.Withdraw(request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Withdrawal Submitted", fiber.StatusCreated, ctx)
}

func (c *WalletController) GetTransactions(ctx *fiber.Ctx) error {
	result := c.UseCase.GetTransactions()
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Transactions", fiber.StatusOK, ctx)
}

func (c *WalletController) GetPendingWithdrawals(ctx *fiber.Ctx) error {
	result := c.UseCase.GetPendingWithdrawals()
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Pending Withdrawals", fiber.StatusOK, ctx)
}
