package http

import (
	"wallet-service/src/internal/model"
	"wallet-service/src/internal/usecase"
	"wallet-service/src/pkg/log"
	"wallet-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	Log     log.Log
	UseCase *usecase.AuthUseCase
}

func NewAuthController(useCase *usecase.AuthUseCase, logger log.Log) *AuthController {
	return &AuthController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *AuthController) Login(ctx *fiber.Ctx) error {
	request := new(model.LoginRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("AuthController.Login", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.Login(request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Login", fiber.StatusOK, ctx)
}

func (c *AuthController) Logout(ctx *fiber.Ctx) error {
	result := c.UseCase.Logout()
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(nil, "Logout", fiber.StatusOK, ctx)
}

func (c *AuthController) Session(ctx *fiber.Ctx) error {
	result := c.UseCase.Session()
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Session", fiber.StatusOK, ctx)
}
