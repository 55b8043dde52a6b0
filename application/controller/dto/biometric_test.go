package dto

import (
	"testing"

	"facegate.io/infrastructure/biometric/types"
)

func TestEnrollFaceDTOValidate(t *testing.T) {
	tests := []struct {
		name    string
		dto     *EnrollFaceDTO
		hasFile bool
		wantErr bool
	}{
		{
			name:    "nil request",
			dto:     nil,
			wantErr: true,
		},
		{
			name:    "neither inline image nor file",
			dto:     &EnrollFaceDTO{},
			wantErr: true,
		},
		{
			name:    "both inline image and file",
			dto:     &EnrollFaceDTO{Image: "aGVsbG8="},
			hasFile: true,
			wantErr: true,
		},
		{
			name: "inline image only",
			dto:  &EnrollFaceDTO{Image: "aGVsbG8="},
		},
		{
			name:    "uploaded file only",
			dto:     &EnrollFaceDTO{},
			hasFile: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.dto.Validate(tt.hasFile)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEnrollFaceDTOMinQualityTier(t *testing.T) {
	tests := []struct {
		requested string
		want      types.FaceQuality
	}{
		{"POOR", types.FaceQualityPoor},
		{"ACCEPTABLE", types.FaceQualityAcceptable},
		{"GOOD", types.FaceQualityGood},
		{"EXCELLENT", types.FaceQualityExcellent},
		{"", types.FaceQualityAcceptable},
	}

	for _, tt := range tests {
		dto := &EnrollFaceDTO{MinQuality: tt.requested}
		if got := dto.MinQualityTier(); got != tt.want {
			t.Errorf("MinQualityTier(%q) = %v, want %v", tt.requested, got, tt.want)
		}
	}
}

func TestVerifyFaceDTOLevel(t *testing.T) {
	tests := []struct {
		requested string
		want      types.SecurityLevel
	}{
		{"VERY_HIGH", types.SecurityLevelVeryHigh},
		{"HIGH", types.SecurityLevelHigh},
		{"MEDIUM", types.SecurityLevelMedium},
		{"LOW", types.SecurityLevelLow},
		{"", types.SecurityLevelHigh},
	}

	for _, tt := range tests {
		dto := &VerifyFaceDTO{SecurityLevel: tt.requested}
		if got := dto.Level(); got != tt.want {
			t.Errorf("Level(%q) = %v, want %v", tt.requested, got, tt.want)
		}
	}
}
