package entities

import (
	"time"

	"facegate.io/application/utils"
)

type Device struct {
	LastLogin time.Time `bson:"lastLogin" json:"lastLogin"`
	Name      string    `bson:"name" json:"name"`
	ID        string    `bson:"id" json:"id"`
}

// This represents a user signed up to facegate
type User struct {
	FirstName   string   `bson:"firstName" json:"firstName"`
	LastName    string   `bson:"lastName" json:"lastName"`
	Email       string   `bson:"email" json:"email"`
	Password    string   `bson:"password" json:"-"`
	UserAgent   string   `bson:"userAgent" json:"userAgent"`
	Deactivated bool     `bson:"deactivated" json:"deactivated"`
	Devices     []Device `bson:"devices" json:"devices"`

	// The face template fields are written and cleared together. A template
	// is usable only when FaceEnrolled is set and FaceTemplate is non-empty.
	FaceEnrolled          bool       `bson:"faceEnrolled" json:"faceEnrolled"`
	FaceTemplate          *string    `bson:"faceTemplate" json:"-"`
	FaceEnrollmentID      *string    `bson:"faceEnrollmentID" json:"faceEnrollmentID,omitempty"`
	FaceEnrollmentQuality *int       `bson:"faceEnrollmentQuality" json:"faceEnrollmentQuality,omitempty"`
	FaceEnrolledAt        *time.Time `bson:"faceEnrolledAt" json:"faceEnrolledAt,omitempty"`

	ID        string     `bson:"_id" json:"id"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updatedAt" json:"updatedAt"`
	DeletedAt *time.Time `bson:"deletedAt" json:"deletedAt"`
}

func (model User) ParseModel() any {
	now := time.Now()
	if model.CreatedAt.IsZero() {
		model.CreatedAt = now
		if model.ID == "" {
			model.ID = utils.GenerateULIDString()
		}
	}
	model.UpdatedAt = now
	return &model
}

// HasUsableFaceTemplate reports whether the stored biometric unit is
// complete enough to verify against.
func (model *User) HasUsableFaceTemplate() bool {
	return model.FaceEnrolled && model.FaceTemplate != nil && *model.FaceTemplate != ""
}
