package usecase

import (
	"fmt"
	"strings"
	"time"

	"wallet-service/src/internal/entity"
	"wallet-service/src/internal/model"
	"wallet-service/src/internal/repository"
	httpError "wallet-service/src/pkg/http-error"
	"wallet-service/src/pkg/log"
	"wallet-service/src/pkg/metrics"
	"wallet-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
)

type AuthUseCase struct {
	Log           log.Log
	Validate      *validator.Validate
	Sessions      *repository.SessionRepository
	Users         *repository.UserRepository
	Seed          *SeedUseCase
	Notifications *NotificationUseCase
	Metrics       *metrics.Collector
}

func NewAuthUseCase(
	logger log.Log,
	validate *validator.Validate,
	sessionRepository *repository.SessionRepository,
	userRepository *repository.UserRepository,
	seed *SeedUseCase,
	notifications *NotificationUseCase,
	collector *metrics.Collector,
) *AuthUseCase {
	return &AuthUseCase{
		Log:           logger,
		Validate:      validate,
		Sessions:      sessionRepository,
		Users:         userRepository,
		Seed:          seed,
		Notifications: notifications,
		Metrics:       collector,
	}
}

// Login compares the entered code case-insensitively against the stored
// user's trading ID, falling back to the installation default when no user
// record exists yet. Attempts are unlimited; a mismatch mutates nothing
// except the security notification recorded when a user already exists.
func (c *AuthUseCase) Login(request *model.LoginRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = "please enter your Trading ID"
		result.Error = errObj
		return result
	}

	entered := strings.TrimSpace(request.TradingID)
	if entered == "" {
		errObj := httpError.NewBadRequest()
		errObj.Message = "please enter your Trading ID"
		result.Error = errObj
		return result
	}

	existingUser, err := c.Users.GetUser()
	if err != nil {
		result.Error = storageError(err)
		return result
	}

	validTradingID := FallbackTradingID
	if existingUser != nil && existingUser.TradingID != "" {
		validTradingID = existingUser.TradingID
	}

	if !strings.EqualFold(entered, validTradingID) {
		c.Metrics.RecordLogin(false)
		c.Log.Warn("AuthUseCase.Login", "login failed", "trading_id", entered)

		if existingUser != nil {
			if err := c.Notifications.Add(
				"Failed Login Attempt",
				fmt.Sprintf("Someone tried to access your account with incorrect credentials at %s.",
					time.Now().Format(time.RFC1123)),
				entity.NotifyWarning, entity.CategorySecurity,
			); err != nil {
				c.Log.Error("AuthUseCase.Login", err.Error(), "notification", "")
			}
		}

		errObj := httpError.NewUnauthorized()
		errObj.Message = "invalid Trading ID, please check your credentials and try again"
		result.Error = errObj
		return result
	}

	user := existingUser
	if user == nil {
		user = DefaultUser()
	}
	user.TradingID = validTradingID

	if err := c.Users.SetUser(user); err != nil {
		result.Error = storageError(err)
		return result
	}
	if err := c.Sessions.SetAuth(true); err != nil {
		result.Error = storageError(err)
		return result
	}
	if err := c.Seed.InitializeIfAbsent(); err != nil {
		result.Error = storageError(err)
		return result
	}

	if err := c.Notifications.Add(
		"Successful Login",
		fmt.Sprintf("Welcome back! You logged in successfully at %s.", time.Now().Format(time.RFC1123)),
		entity.NotifySuccess, entity.CategorySecurity,
	); err != nil {
		c.Log.Error("AuthUseCase.Login", err.Error(), "notification", "")
	}

	c.Metrics.RecordLogin(true)
	c.Log.Info("AuthUseCase.Login", "login successful", "trading_id", validTradingID)
	result.Data = &model.LoginResponse{
		Name:      user.Name,
		TradingID: user.TradingID,
		Message:   fmt.Sprintf("Welcome back, %s! Your trading wallet is ready.", user.Name),
	}
	return result
}

// Logout clears the authenticated flag and nothing else.
func (c *AuthUseCase) Logout() utils.Result {
	var result utils.Result

	if err := c.Sessions.SetAuth(false); err != nil {
		result.Error = storageError(err)
		return result
	}
	c.Log.Info("AuthUseCase.Logout", "session cleared", "auth", "")
	return result
}

func (c *AuthUseCase) IsAuthenticated() (bool, error) {
	return c.Sessions.GetAuth()
}

func (c *AuthUseCase) Session() utils.Result {
	var result utils.Result

	authenticated, err := c.Sessions.GetAuth()
	if err != nil {
		result.Error = storageError(err)
		return result
	}
	result.Data = &model.SessionResponse{Authenticated: authenticated}
	return result
}
