package middleware

import (
	"wallet-service/src/internal/repository"
	httpError "wallet-service/src/pkg/http-error"
	"wallet-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

// VerifyAuth gates routes behind the persisted authenticated flag. There is
// no token or session id; the wallet serves a single local user.
func VerifyAuth(sessions *repository.SessionRepository) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authenticated, err := sessions.GetAuth()
		if err != nil {
			return utils.ResponseError(err, ctx)
		}
		if !authenticated {
			errObj := httpError.NewUnauthorized()
			errObj.Message = "please log in with your Trading ID"
			return utils.ResponseError(errObj, ctx)
		}
		return ctx.Next()
	}
}
