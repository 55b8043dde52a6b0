package queue_tasks

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"

	"facegate.io/application/repository"
	"facegate.io/entities"
	"facegate.io/infrastructure/logger"
	mq_types "facegate.io/infrastructure/message_queue/types"
)

var HandleBiometricAuditTaskName mq_types.Queues = "record_biometric_audit"

func HandleBiometricAuditTask(ctx context.Context, t *asynq.Task) error {
	var payload entities.BiometricAuditLog
	err := json.Unmarshal(t.Payload(), &payload)
	if err != nil {
		logger.Error("an error occured while unmarshalling biometric audit payload", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return err
	}

	_, err = repository.BiometricAuditRepo().CreateOne(ctx, payload)
	if err != nil {
		logger.Error("failed to record biometric audit log", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "userID",
			Data: payload.UserID,
		})
		return err
	}
	return nil
}
