package user_usecases

import (
	"context"
	"errors"

	apperrors "facegate.io/application/appErrors"
	"facegate.io/application/constants"
	"facegate.io/application/repository"
	audit_usecases "facegate.io/application/usecases/audit"
	"facegate.io/entities"
)

// RemoveEnrollmentUseCase clears the whole biometric unit in one update so
// no stale template survives behind a lowered flag.
func RemoveEnrollmentUseCase(ctx any, userID string, deviceID string, userAgent string, ipAddress string) error {
	userRepo := repository.UserRepo()
	user, err := userRepo.FindByID(userID)
	if err != nil {
		apperrors.UnknownError(ctx, err, nil, deviceID)
		return err
	}
	if user == nil {
		apperrors.NotFoundError(ctx, "account not found", &deviceID)
		return errors.New("account not found")
	}
	if !user.FaceEnrolled {
		apperrors.ClientError(ctx, "No face is enrolled on this account.", nil, &constants.FACE_NOT_ENROLLED, deviceID)
		return errors.New("no enrolled face to remove")
	}

	_, err = userRepo.UpdatePartialByID(context.TODO(), userID, map[string]any{
		"faceEnrolled":          false,
		"faceTemplate":          nil,
		"faceEnrollmentID":      nil,
		"faceEnrollmentQuality": nil,
		"faceEnrolledAt":        nil,
	})
	if err != nil {
		apperrors.FatalServerError(ctx, err, deviceID)
		return err
	}

	audit_usecases.RecordBiometricEvent(entities.BiometricAuditLog{
		UserID:    userID,
		Operation: "unenroll",
		Success:   true,
		IPAddress: ipAddress,
		UserAgent: &userAgent,
	})
	return nil
}
