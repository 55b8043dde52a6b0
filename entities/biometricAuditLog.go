package entities

import (
	"time"

	"facegate.io/application/utils"
)

// BiometricAuditLog records the outcome of every enrollment and verification
// attempt. No image data or embeddings are ever stored here.
type BiometricAuditLog struct {
	ID            string    `bson:"_id" json:"id"`
	CorrelationID string    `bson:"correlationID" json:"correlationID"`
	UserID        string    `bson:"userID" json:"userID"`
	Operation     string    `bson:"operation" json:"operation"` // enroll | verify | face_login | unenroll
	Success       bool      `bson:"success" json:"success"`
	FailureReason *string   `bson:"failureReason" json:"failureReason"`
	QualityScore  *int      `bson:"qualityScore" json:"qualityScore"`
	Confidence    *float64  `bson:"confidence" json:"confidence"`
	SecurityLevel *string   `bson:"securityLevel" json:"securityLevel"`
	IPAddress     string    `bson:"ipAddress" json:"ipAddress"`
	UserAgent     *string   `bson:"userAgent" json:"userAgent"`
	Timestamp     time.Time `bson:"timestamp" json:"timestamp"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (model BiometricAuditLog) ParseModel() any {
	if model.ID == "" {
		model.ID = utils.GenerateULIDString()
	}
	now := time.Now()
	if model.CreatedAt.IsZero() {
		model.CreatedAt = now
	}
	model.UpdatedAt = now
	if model.Timestamp.IsZero() {
		model.Timestamp = now
	}
	return &model
}
