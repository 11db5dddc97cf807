package utils

import (
	"encoding/json"
	"errors"

	httpError "wallet-service/src/pkg/http-error"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Result carries a use case outcome to the delivery layer.
type Result struct {
	Data  interface{}
	Error error
}

type responseEnvelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Response(data interface{}, msg string, code int, ctx *fiber.Ctx) error {
	return ctx.Status(code).JSON(responseEnvelope{
		Success: true,
		Message: msg,
		Data:    data,
	})
}

func ResponseError(err error, ctx *fiber.Ctx) error {
	var commonErr *httpError.CommonError
	if errors.As(err, &commonErr) {
		return ctx.Status(commonErr.Code).JSON(responseEnvelope{
			Success: false,
			Message: commonErr.Message,
		})
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(responseEnvelope{
		Success: false,
		Message: err.Error(),
	})
}

// ConvertString renders any value as JSON for log metadata.
func ConvertString(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}

var pesoPrinter = message.NewPrinter(language.English)

// FormatPeso renders an amount the way the wallet UI shows money,
// e.g. ₱98,880.00.
func FormatPeso(amount float64) string {
	return pesoPrinter.Sprintf("₱%.2f", amount)
}
