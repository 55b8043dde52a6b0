package user_usecases

import (
	"errors"

	apperrors "facegate.io/application/appErrors"
	"facegate.io/application/constants"
	"facegate.io/application/repository"
	audit_usecases "facegate.io/application/usecases/audit"
	"facegate.io/application/utils"
	"facegate.io/entities"
	"facegate.io/infrastructure/biometric"
	"facegate.io/infrastructure/biometric/types"
	"facegate.io/infrastructure/cryptography"
)

var ErrNoEnrolledFace = errors.New("no enrolled face template")

// VerifyFaceUseCase matches a fresh capture against the user's stored
// template. A clean run with verified=false is a valid outcome, not an
// error.
func VerifyFaceUseCase(ctx any, userID string, input biometric.ImageInput, level types.SecurityLevel, deviceID string, userAgent string, ipAddress string) (*types.VerificationResult, error) {
	userRepo := repository.UserRepo()
	user, err := userRepo.FindByID(userID)
	if err != nil {
		apperrors.UnknownError(ctx, err, nil, deviceID)
		return nil, err
	}
	if user == nil {
		apperrors.NotFoundError(ctx, "account not found", &deviceID)
		return nil, errors.New("account not found")
	}

	result, err := VerifyStoredTemplate(user, input, level)
	if err != nil {
		if errors.Is(err, ErrNoEnrolledFace) {
			apperrors.ClientError(ctx, "No face is enrolled on this account. Enroll a face first.", nil, &constants.FACE_NOT_ENROLLED, deviceID)
			return nil, err
		}
		audit_usecases.RecordBiometricEvent(entities.BiometricAuditLog{
			UserID:        userID,
			Operation:     "verify",
			Success:       false,
			FailureReason: utils.GetStringPointer(err.Error()),
			SecurityLevel: utils.GetStringPointer(string(level)),
			IPAddress:     ipAddress,
			UserAgent:     &userAgent,
		})
		apperrors.FaceProcessingError(ctx, err, deviceID)
		return nil, err
	}

	audit_usecases.RecordBiometricEvent(entities.BiometricAuditLog{
		UserID:        userID,
		Operation:     "verify",
		Success:       result.Verified,
		QualityScore:  utils.GetIntPointer(result.QualityScore),
		Confidence:    utils.GetFloat64Pointer(result.Confidence),
		SecurityLevel: utils.GetStringPointer(string(result.SecurityLevel)),
		IPAddress:     ipAddress,
		UserAgent:     &userAgent,
	})

	return result, nil
}

// VerifyStoredTemplate decrypts the user's template and runs the
// verification pipeline against it. Face login composes this with its own
// error collapsing.
func VerifyStoredTemplate(user *entities.User, input biometric.ImageInput, level types.SecurityLevel) (*types.VerificationResult, error) {
	if !user.HasUsableFaceTemplate() {
		return nil, ErrNoEnrolledFace
	}

	stored, err := cryptography.DecryptEmbedding(*user.FaceTemplate)
	if err != nil {
		return nil, err
	}

	return biometric.Pipeline.Verify(input, stored, biometric.VerifyOptions{
		SecurityLevel: level,
	})
}
