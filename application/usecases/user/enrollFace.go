package user_usecases

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	apperrors "facegate.io/application/appErrors"
	"facegate.io/application/repository"
	audit_usecases "facegate.io/application/usecases/audit"
	"facegate.io/application/utils"
	"facegate.io/entities"
	"facegate.io/infrastructure/biometric"
	"facegate.io/infrastructure/biometric/types"
	"facegate.io/infrastructure/cryptography"
	"facegate.io/infrastructure/logger"
	messagequeue "facegate.io/infrastructure/message_queue"
	queue_tasks "facegate.io/infrastructure/message_queue/tasks"
	mq_types "facegate.io/infrastructure/message_queue/types"
)

// EnrollFaceUseCase captures and stores a face template for the user. The
// enrolled flag, encrypted template, enrollment id and quality are written in
// a single update so a reader never sees a half-written biometric unit.
func EnrollFaceUseCase(ctx any, userID string, input biometric.ImageInput, minQuality types.FaceQuality, deviceID string, userAgent string, ipAddress string) (*types.EnrollmentResult, error) {
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

	result, err := biometric.Pipeline.Enroll(input, minQuality)
	if err != nil {
		audit_usecases.RecordBiometricEvent(entities.BiometricAuditLog{
			UserID:        userID,
			Operation:     "enroll",
			Success:       false,
			FailureReason: utils.GetStringPointer(err.Error()),
			IPAddress:     ipAddress,
			UserAgent:     &userAgent,
		})
		apperrors.FaceProcessingError(ctx, err, deviceID)
		return nil, err
	}

	encryptedTemplate, err := cryptography.EncryptEmbedding(result.Embedding)
	if err != nil {
		logger.Error("failed to encrypt face template", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		apperrors.FatalServerError(ctx, err, deviceID)
		return nil, err
	}

	_, err = userRepo.UpdatePartialByID(context.TODO(), userID, map[string]any{
		"faceEnrolled":          true,
		"faceTemplate":          *encryptedTemplate,
		"faceEnrollmentID":      result.EnrollmentID,
		"faceEnrollmentQuality": result.QualityScore,
		"faceEnrolledAt":        time.Now(),
	})
	if err != nil {
		apperrors.FatalServerError(ctx, err, deviceID)
		return nil, err
	}

	audit_usecases.RecordBiometricEvent(entities.BiometricAuditLog{
		UserID:       userID,
		Operation:    "enroll",
		Success:      true,
		QualityScore: utils.GetIntPointer(result.QualityScore),
		IPAddress:    ipAddress,
		UserAgent:    &userAgent,
	})

	emailPayload, _ := json.Marshal(queue_tasks.EmailPayload{
		To:       user.Email,
		Subject:  "Face login was enabled on your account",
		Template: "face_enrolled",
		Opts:     map[string]any{"FirstName": user.FirstName},
	})
	messagequeue.TaskQueue.Enqueue(mq_types.QueueTask{
		Name:     queue_tasks.HandleEmailDeliveryTaskName,
		Payload:  emailPayload,
		Priority: mq_types.Medium,
	})

	return result, nil
}
