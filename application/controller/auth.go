package controller

import (
	"net/http"

	apperrors "facegate.io/application/appErrors"
	"facegate.io/application/controller/dto"
	"facegate.io/application/interfaces"
	auth_usecases "facegate.io/application/usecases/auth"
	"facegate.io/infrastructure/auth"
	server_response "facegate.io/infrastructure/serverResponse"
	"facegate.io/infrastructure/validator"
)

func Login(ctx *interfaces.ApplicationContext[dto.LoginDTO]) {
	if validationErr := validator.ValidatorInstance.ValidateStruct(*ctx.Body); validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr, ctx.DeviceID)
		return
	}

	token, user, err := auth_usecases.LoginUserUseCase(ctx.Ctx, ctx.Body, ctx.DeviceID, ctx.UserAgent)
	if err != nil {
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "login successful", map[string]any{
		"token": token,
		"user":  user,
	}, nil, nil, &ctx.DeviceID)
}

// FaceLogin authenticates from a selfie instead of a password. The usecase
// collapses every face failure into one generic rejection before it gets here.
func FaceLogin(ctx *interfaces.ApplicationContext[dto.FaceLoginDTO]) {
	if validationErr := validator.ValidatorInstance.ValidateStruct(*ctx.Body); validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr, ctx.DeviceID)
		return
	}

	token, user, err := auth_usecases.AuthenticateWithFaceUseCase(ctx.Ctx, ctx.Body, ctx.DeviceID, ctx.UserAgent, ctx.GetStringContextData("IPAddress"))
	if err != nil {
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "login successful", map[string]any{
		"token": token,
		"user":  user,
	}, nil, nil, &ctx.DeviceID)
}

func Logout(ctx *interfaces.ApplicationContext[any]) {
	auth.SignOutUser(ctx.DeviceID, "user requested logout")
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "logged out", nil, nil, nil, &ctx.DeviceID)
}
