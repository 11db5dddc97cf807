package http

import (
	"wallet-service/src/internal/usecase"
	"wallet-service/src/pkg/log"
	"wallet-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type NotificationController struct {
	Log     log.Log
	UseCase *usecase.NotificationUseCase
}

func NewNotificationController(useCase *usecase.NotificationUseCase, logger log.Log) *NotificationController {
	return &NotificationController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *NotificationController) List(ctx *fiber.Ctx) error {
	result := c.UseCase.List()
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Notifications", fiber.StatusOK, ctx)
}

func (c *NotificationController) MarkRead(ctx *fiber.Ctx) error {
	result := c.UseCase.MarkRead(ctx.Params("id"))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(nil, "Notification Marked Read", fiber.StatusOK, ctx)
}

func (c *NotificationController) MarkAllRead(ctx *fiber.Ctx) error {
	result := c.UseCase.MarkAllRead()
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(nil, "All Notifications Marked Read", fiber.StatusOK, ctx)
}

func (c *NotificationController) Delete(ctx *fiber.Ctx) error {
	result := c.UseCase.Delete(ctx.Params("id"))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(nil, "Notification Deleted", fiber.StatusOK, ctx)
}

func (c *NotificationController) ClearAll(ctx *fiber.Ctx) error {
	result := c.UseCase.ClearAll()
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(nil, "Notifications Cleared", fiber.StatusOK, ctx)
}
