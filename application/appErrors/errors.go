package apperrors

import (
	"fmt"
	"net/http"

	"facegate.io/application/constants"
	"facegate.io/infrastructure/biometric"
	"facegate.io/infrastructure/logger"
	server_response "facegate.io/infrastructure/serverResponse"
)

func NotFoundError(ctx interface{}, message string, deviceID *string) {
	server_response.Responder.Respond(ctx, http.StatusNotFound, message, nil, nil, nil, deviceID)
}

func ValidationFailedError(ctx interface{}, errMessages *[]error, deviceID string) {
	server_response.Responder.Respond(ctx, http.StatusUnprocessableEntity, "Payload validation failed 🙄", nil, *errMessages, nil, &deviceID)
}

func EntityAlreadyExistsError(ctx interface{}, message string, deviceID string) {
	server_response.Responder.Respond(ctx, http.StatusConflict, message, nil, nil, nil, &deviceID)
}

func AuthenticationError(ctx interface{}, message string, deviceID string) {
	server_response.Responder.Respond(ctx, http.StatusUnauthorized, message, nil, nil, nil, &deviceID)
}

func ErrorProcessingPayload(ctx interface{}, deviceID *string) {
	server_response.Responder.Respond(ctx, http.StatusBadRequest, "Abnormal payload passed 🤨", nil, nil, nil, deviceID)
}

func FatalServerError(ctx interface{}, err error, deviceID string) {
	logger.Error("fatal server error", logger.LoggerOptions{
		Key:  "error",
		Data: err,
	})
	server_response.Responder.Respond(ctx, http.StatusInternalServerError,
		"Omo! Our service is temporarily down 😢. Our team is working to fix it. Please check back later.", nil, nil, nil, &deviceID)
}

func UnknownError(ctx interface{}, err error, responseCode *uint, deviceID string) {
	logger.Error("unknown error", logger.LoggerOptions{
		Key:  "error",
		Data: err,
	})
	server_response.Responder.Respond(ctx, http.StatusBadRequest,
		"Omo! Something went wrong somewhere 😭. Please check back later.", nil, nil, responseCode, &deviceID)
}

func CustomError(ctx interface{}, msg string, responseCode *uint, deviceID string) {
	server_response.Responder.Respond(ctx, http.StatusBadRequest, msg, nil, nil, responseCode, &deviceID)
}

func UnsupportedUserAgent(ctx interface{}, deviceID string) {
	server_response.Responder.Respond(ctx, http.StatusBadRequest,
		"unsupported user agent 👮🏻‍♂️", nil, nil, nil, &deviceID)
}

func MalformedHeader(ctx interface{}, deviceID *string) {
	server_response.Responder.Respond(ctx, http.StatusBadRequest,
		"malformed header information 👮🏻‍♂️", nil, nil, nil, deviceID)
}

func ClientError(ctx interface{}, msg string, errs []error, responseCode *uint, deviceID string) {
	server_response.Responder.Respond(ctx, http.StatusBadRequest, msg, nil, errs, responseCode, &deviceID)
}

// FaceProcessingError maps each face pipeline failure kind to a distinct
// status and response code so the client can guide the user to a fix.
func FaceProcessingError(ctx interface{}, err error, deviceID string) {
	kind, _ := biometric.KindOf(err)
	switch kind {
	case biometric.KindDecode:
		CustomError(ctx, "We could not read that image. Upload a valid JPEG or PNG photo. 📷", &constants.FACE_IMAGE_REJECTED, deviceID)
	case biometric.KindLowQuality:
		CustomError(ctx, "That photo is too dark, blurry or small. Retake it in better light. 💡", &constants.FACE_IMAGE_REJECTED, deviceID)
	case biometric.KindNoFace:
		CustomError(ctx, "We could not find a face in that photo. Make sure your face is fully visible. 🙂", &constants.FACE_NOT_FOUND_IN_IMAGE, deviceID)
	case biometric.KindMultipleFaces:
		CustomError(ctx, "More than one face was found. Retake the photo alone. 👥", &constants.MULTIPLE_FACES_IN_IMAGE, deviceID)
	case biometric.KindSpoofing:
		server_response.Responder.Respond(ctx, http.StatusForbidden,
			"This photo did not pass our liveness check. Take a fresh photo of yourself. 🤳", nil, nil, &constants.FACE_SPOOF_SUSPECTED, &deviceID)
	case biometric.KindDimensionMismatch:
		FatalServerError(ctx, err, deviceID)
	case biometric.KindConfiguration:
		logger.Error("biometric service misconfigured", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		server_response.Responder.Respond(ctx, http.StatusServiceUnavailable,
			fmt.Sprintf("Face verification is temporarily unavailable. Contact %s if this persists.", constants.SUPPORT_EMAIL), nil, nil, &constants.BIOMETRIC_SERVICE_UNAVAILABLE, &deviceID)
	default:
		FatalServerError(ctx, err, deviceID)
	}
}
