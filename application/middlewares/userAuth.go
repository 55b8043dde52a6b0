package middlewares

import (
	"strings"

	apperrors "facegate.io/application/appErrors"
	"facegate.io/application/interfaces"
	auth_usecases "facegate.io/application/usecases/auth"
)

func UserAuthenticationMiddleware(ctx *interfaces.ApplicationContext[any]) (*interfaces.ApplicationContext[any], bool) {
	deviceID := ctx.GetHeader("X-Device-Id")
	authToken := strings.TrimPrefix(ctx.GetHeader("Authorization"), "Bearer ")

	authResult := auth_usecases.IsUserSignedIn(authToken, deviceID)
	if !authResult.IsAuthenticated {
		apperrors.AuthenticationError(ctx.Ctx, authResult.ErrorMessage, deviceID)
		return nil, false
	}

	ctx.SetContextData("UserID", authResult.UserID)
	ctx.SetContextData("Email", authResult.Email)
	ctx.SetContextData("UserAgent", authResult.UserAgent)
	ctx.SetContextData("DeviceID", authResult.DeviceID)
	ctx.DeviceID = authResult.DeviceID

	return ctx, true
}
