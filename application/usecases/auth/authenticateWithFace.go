package auth_usecases

import (
	"errors"
	"strings"

	apperrors "facegate.io/application/appErrors"
	"facegate.io/application/controller/dto"
	"facegate.io/application/repository"
	audit_usecases "facegate.io/application/usecases/audit"
	user_usecases "facegate.io/application/usecases/user"
	"facegate.io/application/utils"
	"facegate.io/entities"
	"facegate.io/infrastructure/biometric"
	"facegate.io/infrastructure/biometric/types"
)

var errFaceAuthFailed = errors.New("face authentication failed")

// AuthenticateWithFaceUseCase signs a user in from a selfie. Every
// face-pipeline failure collapses into the same generic response so an
// unauthenticated caller cannot probe which stage rejected them.
func AuthenticateWithFaceUseCase(ctx any, payload *dto.FaceLoginDTO, deviceID string, userAgent string, ipAddress string) (*string, *entities.User, error) {
	payload.Email = strings.ToLower(payload.Email)
	userRepo := repository.UserRepo()
	user, err := userRepo.FindOneByField(map[string]any{
		"email": payload.Email,
	})
	if err != nil {
		apperrors.UnknownError(ctx, err, nil, deviceID)
		return nil, nil, err
	}
	if user == nil || user.Deactivated {
		apperrors.AuthenticationError(ctx, "face authentication failed", deviceID)
		return nil, nil, errFaceAuthFailed
	}

	result, err := user_usecases.VerifyStoredTemplate(user, biometric.Base64Input(payload.Image), types.SecurityLevelVeryHigh)
	if err != nil {
		audit_usecases.RecordBiometricEvent(entities.BiometricAuditLog{
			UserID:        user.ID,
			Operation:     "face_login",
			Success:       false,
			FailureReason: utils.GetStringPointer(err.Error()),
			IPAddress:     ipAddress,
			UserAgent:     &userAgent,
		})
		if IsFaceAuthFailure(err) {
			apperrors.AuthenticationError(ctx, "face authentication failed", deviceID)
			return nil, nil, errFaceAuthFailed
		}
		apperrors.FatalServerError(ctx, err, deviceID)
		return nil, nil, err
	}

	audit_usecases.RecordBiometricEvent(entities.BiometricAuditLog{
		UserID:        user.ID,
		Operation:     "face_login",
		Success:       result.Verified,
		QualityScore:  utils.GetIntPointer(result.QualityScore),
		Confidence:    utils.GetFloat64Pointer(result.Confidence),
		SecurityLevel: utils.GetStringPointer(string(result.SecurityLevel)),
		IPAddress:     ipAddress,
		UserAgent:     &userAgent,
	})

	if !result.Verified {
		apperrors.AuthenticationError(ctx, "face authentication failed", deviceID)
		return nil, nil, errFaceAuthFailed
	}

	token, err := IssueSession(user, deviceID, userAgent, "face")
	if err != nil {
		apperrors.FatalServerError(ctx, err, deviceID)
		return nil, nil, err
	}
	return token, user, nil
}

// IsFaceAuthFailure reports whether the error is one of the face pipeline
// kinds that must never leak to an unauthenticated caller.
func IsFaceAuthFailure(err error) bool {
	if errors.Is(err, user_usecases.ErrNoEnrolledFace) {
		return true
	}
	_, isFaceErr := biometric.KindOf(err)
	return isFaceErr
}
