package auth_usecases

import (
	"fmt"
	"os"

	"github.com/golang-jwt/jwt"

	"facegate.io/infrastructure/auth"
	"facegate.io/infrastructure/cryptography"
	"facegate.io/infrastructure/database/repository/cache"
	"facegate.io/infrastructure/logger"
)

// UserAuthResult represents the result of user authentication
type UserAuthResult struct {
	IsAuthenticated bool
	UserID          string
	Email           string
	UserAgent       string
	DeviceID        string
	ErrorMessage    string
}

// IsUserSignedIn validates if a user is properly authenticated
func IsUserSignedIn(authToken string, deviceID string) UserAuthResult {
	result := UserAuthResult{
		IsAuthenticated: false,
	}

	if authToken == "" {
		result.ErrorMessage = "missing auth token"
		return result
	}

	validAccessToken, err := auth.DecodeAuthToken(authToken)
	if err != nil {
		result.ErrorMessage = "this session has expired"
		return result
	}

	authTokenClaims := validAccessToken.Claims.(jwt.MapClaims)

	if authTokenClaims["iss"] != os.Getenv("JWT_ISSUER") {
		logger.Warning("attempt to access account with tampered jwt", logger.LoggerOptions{
			Key:  "token claims",
			Data: validAccessToken,
		})
		result.ErrorMessage = "unauthorised access"
		return result
	}

	if authTokenClaims["deviceID"] != deviceID {
		logger.Warning("client made request using device id different from that in access token", logger.LoggerOptions{
			Key:  "token device id",
			Data: authTokenClaims["deviceID"],
		}, logger.LoggerOptions{
			Key:  "request device id",
			Data: deviceID,
		})
		result.ErrorMessage = "unauthorised access"
		return result
	}

	deviceIDHash, _ := cryptography.CryptoHasher.HashString(deviceID, []byte(os.Getenv("HASH_FIXED_SALT")))
	validToken := cache.Cache.FindOne(fmt.Sprintf("%s-access", string(deviceIDHash)))
	if validToken == nil {
		result.ErrorMessage = "this session has expired"
		return result
	}
	if !cryptography.CryptoHasher.VerifyHashData(*validToken, authToken) {
		result.ErrorMessage = "this session has expired"
		return result
	}

	result.IsAuthenticated = true
	result.UserID = authTokenClaims["userID"].(string)
	result.Email = authTokenClaims["email"].(string)
	result.UserAgent = authTokenClaims["userAgent"].(string)
	result.DeviceID = authTokenClaims["deviceID"].(string)

	return result
}
