package auth_usecases

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	apperrors "facegate.io/application/appErrors"
	"facegate.io/application/controller/dto"
	"facegate.io/application/repository"
	"facegate.io/entities"
	"facegate.io/infrastructure/auth"
	"facegate.io/infrastructure/cryptography"
	"facegate.io/infrastructure/database/repository/cache"
	"facegate.io/infrastructure/logger"
)

const (
	sessionTTL = 24 * time.Hour

	maxFailedLogins   = 10
	failedLoginWindow = 15 * time.Minute
)

// LoginUserUseCase authenticates with email and password. Lookup misses and
// wrong passwords produce the same response on purpose.
func LoginUserUseCase(ctx any, payload *dto.LoginDTO, deviceID string, userAgent string) (*string, *entities.User, error) {
	payload.Email = strings.ToLower(payload.Email)
	throttleKey := fmt.Sprintf("login-attempts-%s", payload.Email)
	if attempts := cache.Cache.FindOne(throttleKey); attempts != nil {
		count, _ := strconv.ParseInt(*attempts, 10, 64)
		if count >= maxFailedLogins {
			apperrors.AuthenticationError(ctx, "too many failed login attempts. wait a while and try again", deviceID)
			return nil, nil, errors.New("login throttled")
		}
	}

	userRepo := repository.UserRepo()
	user, err := userRepo.FindOneByField(map[string]any{
		"email": payload.Email,
	})
	if err != nil {
		apperrors.UnknownError(ctx, err, nil, deviceID)
		return nil, nil, err
	}
	if user == nil || user.Deactivated {
		recordFailedLogin(throttleKey)
		apperrors.AuthenticationError(ctx, "invalid email or password", deviceID)
		return nil, nil, errors.New("invalid email or password")
	}

	if !cryptography.CryptoHasher.VerifyHashData(user.Password, payload.Password) {
		recordFailedLogin(throttleKey)
		apperrors.AuthenticationError(ctx, "invalid email or password", deviceID)
		return nil, nil, errors.New("invalid email or password")
	}
	cache.Cache.DeleteOne(throttleKey)

	token, err := IssueSession(user, deviceID, userAgent, "password")
	if err != nil {
		apperrors.FatalServerError(ctx, err, deviceID)
		return nil, nil, err
	}
	return token, user, nil
}

func recordFailedLogin(key string) {
	if cache.Cache.IncrementField(key, 1) == 1 {
		cache.Cache.SetTTL(key, failedLoginWindow)
	}
}

// IssueSession mints a JWT for the user and registers its hash in the cache
// so the session can be revoked before the token expires.
func IssueSession(user *entities.User, deviceID string, userAgent string, authMethod string) (*string, error) {
	now := time.Now()
	token, err := auth.GenerateAuthToken(auth.ClaimsData{
		UserID:     user.ID,
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		IssuedAt:   now.Unix(),
		ExpiresAt:  now.Add(sessionTTL).Unix(),
		DeviceID:   deviceID,
		UserAgent:  userAgent,
		AuthMethod: authMethod,
	})
	if err != nil {
		return nil, err
	}

	hashedToken, err := cryptography.CryptoHasher.HashString(*token, nil)
	if err != nil {
		return nil, err
	}
	deviceIDHash, err := cryptography.CryptoHasher.HashString(deviceID, []byte(os.Getenv("HASH_FIXED_SALT")))
	if err != nil {
		return nil, err
	}
	saved := cache.Cache.CreateEntry(fmt.Sprintf("%s-access", string(deviceIDHash)), string(hashedToken), sessionTTL)
	if !saved {
		logger.Error("failed to register session in cache", logger.LoggerOptions{
			Key:  "userID",
			Data: user.ID,
		})
		return nil, errors.New("could not register session")
	}
	return token, nil
}
