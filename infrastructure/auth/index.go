package auth

import (
	"errors"
	"fmt"
	"os"

	"github.com/golang-jwt/jwt"

	"facegate.io/infrastructure/cryptography"
	"facegate.io/infrastructure/database/repository/cache"
	"facegate.io/infrastructure/logger"
)

func GenerateAuthToken(claimsData ClaimsData) (*string, error) {
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss":        os.Getenv("JWT_ISSUER"),
		"userID":     claimsData.UserID,
		"exp":        claimsData.ExpiresAt,
		"email":      claimsData.Email,
		"firstName":  claimsData.FirstName,
		"lastName":   claimsData.LastName,
		"iat":        claimsData.IssuedAt,
		"deviceID":   claimsData.DeviceID,
		"userAgent":  claimsData.UserAgent,
		"authMethod": claimsData.AuthMethod,
	}).SignedString([]byte(os.Getenv("JWT_SIGNING_KEY")))
	if err != nil {
		return nil, err
	}
	return &tokenString, nil
}

func DecodeAuthToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SIGNING_KEY")), nil
	})
	if err != nil {
		if err == jwt.ErrSignatureInvalid {
			err = errors.New("invalid token signature used")
			return nil, err
		}
		logger.Error("error decoding jwt", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, err
	}
	if !token.Valid {
		err := errors.New("invalid token used")
		logger.Error(err.Error())
		return nil, err
	}
	return token, nil
}

// SignOutUser revokes the session registered for the device. Sessions are
// keyed by the salted hash of the device id, the same derivation used when
// the session was issued.
func SignOutUser(deviceID string, reason string) {
	logger.Info("system user signout initiated", logger.LoggerOptions{
		Key:  "reason",
		Data: reason,
	})
	deviceIDHash, err := cryptography.CryptoHasher.HashString(deviceID, []byte(os.Getenv("HASH_FIXED_SALT")))
	if err != nil {
		logger.Error("failed to derive session key during signout", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return
	}
	deleted := cache.Cache.DeleteOne(fmt.Sprintf("%s-access", string(deviceIDHash)))
	if !deleted {
		logger.Error("failed to sign out user", logger.LoggerOptions{
			Key:  "deviceID",
			Data: deviceID,
		})
	}
}
