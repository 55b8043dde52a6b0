package audit_usecases

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"facegate.io/entities"
	"facegate.io/infrastructure/logger"
	messagequeue "facegate.io/infrastructure/message_queue"
	queue_tasks "facegate.io/infrastructure/message_queue/tasks"
	mq_types "facegate.io/infrastructure/message_queue/types"
)

// RecordBiometricEvent queues an audit entry for asynchronous persistence so
// the request path never waits on the audit write.
func RecordBiometricEvent(log entities.BiometricAuditLog) {
	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now()
	}
	if log.CorrelationID == "" {
		log.CorrelationID = uuid.NewString()
	}
	payload, err := json.Marshal(log)
	if err != nil {
		logger.Error("failed to serialise biometric audit event", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return
	}
	messagequeue.TaskQueue.Enqueue(mq_types.QueueTask{
		Name:     queue_tasks.HandleBiometricAuditTaskName,
		Payload:  payload,
		Priority: mq_types.Low,
	})
}
