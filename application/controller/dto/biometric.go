package dto

import (
	"errors"

	"facegate.io/infrastructure/biometric/types"
)

// EnrollFaceDTO carries the enrollment image. The photo arrives either as an
// inline base64 string or as an uploaded file on the same request, never
// both and never neither.
type EnrollFaceDTO struct {
	Image      string `json:"image,omitempty"` // base64 encoded photo, with or without a data uri prefix
	MinQuality string `json:"minQuality,omitempty" validate:"omitempty,oneof=POOR ACCEPTABLE GOOD EXCELLENT"`
}

// Validate enforces the inline-or-upload exclusivity. hasFile reports
// whether a multipart file was attached to the request.
func (d *EnrollFaceDTO) Validate(hasFile bool) error {
	if d == nil {
		return errors.New("request cannot be nil")
	}
	if d.Image == "" && !hasFile {
		return errors.New("supply the photo inline as image or as an uploaded file")
	}
	if d.Image != "" && hasFile {
		return errors.New("supply either an inline image or an uploaded file, not both")
	}
	return nil
}

// MinQualityTier maps the requested tier name to its score floor.
func (d *EnrollFaceDTO) MinQualityTier() types.FaceQuality {
	switch d.MinQuality {
	case "POOR":
		return types.FaceQualityPoor
	case "GOOD":
		return types.FaceQualityGood
	case "EXCELLENT":
		return types.FaceQualityExcellent
	default:
		return types.FaceQualityAcceptable
	}
}

type VerifyFaceDTO struct {
	Image         string `json:"image" validate:"required"`
	SecurityLevel string `json:"securityLevel,omitempty" validate:"omitempty,oneof=VERY_HIGH HIGH MEDIUM LOW"`
}

// Level returns the requested security level, defaulting to HIGH for
// standalone verification calls.
func (d *VerifyFaceDTO) Level() types.SecurityLevel {
	switch d.SecurityLevel {
	case "VERY_HIGH":
		return types.SecurityLevelVeryHigh
	case "MEDIUM":
		return types.SecurityLevelMedium
	case "LOW":
		return types.SecurityLevelLow
	default:
		return types.SecurityLevelHigh
	}
}
