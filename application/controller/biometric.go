package controller

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "facegate.io/application/appErrors"
	"facegate.io/application/controller/dto"
	"facegate.io/application/interfaces"
	user_usecases "facegate.io/application/usecases/user"
	"facegate.io/infrastructure/biometric"
	server_response "facegate.io/infrastructure/serverResponse"
	"facegate.io/infrastructure/validator"
)

// EnrollFace registers the caller's face template. The photo arrives either
// inline as base64 or as a multipart upload under the "image" field.
func EnrollFace(ctx *interfaces.ApplicationContext[dto.EnrollFaceDTO]) {
	if validationErr := validator.ValidatorInstance.ValidateStruct(*ctx.Body); validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr, ctx.DeviceID)
		return
	}

	input, hasFile, err := resolveImageInput(ctx.Ctx, ctx.Body.Image)
	if err != nil {
		apperrors.ErrorProcessingPayload(ctx.Ctx, &ctx.DeviceID)
		return
	}
	if validationErr := ctx.Body.Validate(hasFile); validationErr != nil {
		apperrors.ClientError(ctx.Ctx, validationErr.Error(), nil, nil, ctx.DeviceID)
		return
	}

	result, err := user_usecases.EnrollFaceUseCase(ctx.Ctx, ctx.GetStringContextData("UserID"), input, ctx.Body.MinQualityTier(), ctx.DeviceID, ctx.UserAgent, ctx.GetStringContextData("IPAddress"))
	if err != nil {
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusCreated, "face enrolled", map[string]any{
		"enrollmentID":        result.EnrollmentID,
		"qualityScore":        result.QualityScore,
		"detectionConfidence": result.DetectionConfidence,
		"liveness":            result.Liveness,
	}, nil, nil, &ctx.DeviceID)
}

// VerifyFace compares a fresh photo against the caller's enrolled template.
// An unverified outcome is a successful request, not an error.
func VerifyFace(ctx *interfaces.ApplicationContext[dto.VerifyFaceDTO]) {
	if validationErr := validator.ValidatorInstance.ValidateStruct(*ctx.Body); validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr, ctx.DeviceID)
		return
	}

	result, err := user_usecases.VerifyFaceUseCase(ctx.Ctx, ctx.GetStringContextData("UserID"), biometric.Base64Input(ctx.Body.Image), ctx.Body.Level(), ctx.DeviceID, ctx.UserAgent, ctx.GetStringContextData("IPAddress"))
	if err != nil {
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "face verification complete", result, nil, nil, &ctx.DeviceID)
}

func RemoveFaceEnrollment(ctx *interfaces.ApplicationContext[any]) {
	err := user_usecases.RemoveEnrollmentUseCase(ctx.Ctx, ctx.GetStringContextData("UserID"), ctx.DeviceID, ctx.UserAgent, ctx.GetStringContextData("IPAddress"))
	if err != nil {
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "face enrollment removed", nil, nil, nil, &ctx.DeviceID)
}

// resolveImageInput prefers a multipart "image" upload and falls back to the
// inline base64 payload.
func resolveImageInput(rawCtx any, inline string) (biometric.ImageInput, bool, error) {
	ginCtx, ok := rawCtx.(*gin.Context)
	if ok {
		file, err := ginCtx.FormFile("image")
		if err == nil && file != nil {
			opened, err := file.Open()
			if err != nil {
				return biometric.ImageInput{}, true, err
			}
			defer opened.Close()
			data, err := io.ReadAll(opened)
			if err != nil {
				return biometric.ImageInput{}, true, err
			}
			return biometric.BytesInput(data), true, nil
		}
	}
	return biometric.Base64Input(inline), false, nil
}
