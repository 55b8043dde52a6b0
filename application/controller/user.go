package controller

import (
	"net/http"
	"time"

	apperrors "facegate.io/application/appErrors"
	"facegate.io/application/controller/dto"
	"facegate.io/application/interfaces"
	"facegate.io/application/repository"
	user_usecases "facegate.io/application/usecases/user"
	"facegate.io/infrastructure/auth"
	db_mongo "facegate.io/infrastructure/database/repository/mongo"
	server_response "facegate.io/infrastructure/serverResponse"
	"facegate.io/infrastructure/validator"
)

func CreateUser(ctx *interfaces.ApplicationContext[dto.CreateUserDTO]) {
	if validationErr := validator.ValidatorInstance.ValidateStruct(*ctx.Body); validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr, ctx.DeviceID)
		return
	}

	user, err := user_usecases.CreateUserUseCase(ctx.Ctx, ctx.Body, ctx.DeviceID, ctx.UserAgent)
	if err != nil {
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusCreated, "account created", user, nil, nil, &ctx.DeviceID)
}

func FetchProfile(ctx *interfaces.ApplicationContext[any]) {
	userRepo := repository.UserRepo()
	projection := interface{}(map[string]any{
		"password":     0,
		"faceTemplate": 0,
	})
	user, err := userRepo.FindByID(ctx.GetStringContextData("UserID"), db_mongo.FindOptions{
		Projection: &projection,
	})
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err, nil, ctx.DeviceID)
		return
	}
	if user == nil {
		apperrors.NotFoundError(ctx.Ctx, "account not found", &ctx.DeviceID)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "profile fetched", user, nil, nil, &ctx.DeviceID)
}

func DeactivateAccount(ctx *interfaces.ApplicationContext[any]) {
	userRepo := repository.UserRepo()
	userID := ctx.GetStringContextData("UserID")
	_, err := userRepo.UpdatePartialByID(nil, userID, map[string]any{
		"deactivated": true,
		"deletedAt":   time.Now(),
	})
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err, nil, ctx.DeviceID)
		return
	}
	auth.SignOutUser(ctx.DeviceID, "account deactivated by owner")
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "account deactivated", nil, nil, nil, &ctx.DeviceID)
}
