package auth_usecases

import (
	"errors"
	"fmt"
	"testing"

	user_usecases "facegate.io/application/usecases/user"
	"facegate.io/infrastructure/biometric"
)

func TestIsFaceAuthFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"decode error", &biometric.Error{Kind: biometric.KindDecode}, true},
		{"low quality", &biometric.Error{Kind: biometric.KindLowQuality}, true},
		{"no face", &biometric.Error{Kind: biometric.KindNoFace}, true},
		{"multiple faces", &biometric.Error{Kind: biometric.KindMultipleFaces}, true},
		{"spoofing", &biometric.Error{Kind: biometric.KindSpoofing}, true},
		{"dimension mismatch", &biometric.Error{Kind: biometric.KindDimensionMismatch}, true},
		{"no enrolled face", user_usecases.ErrNoEnrolledFace, true},
		{"wrapped pipeline error", fmt.Errorf("verify: %w", &biometric.Error{Kind: biometric.KindNoFace}), true},
		{"plain internal error", errors.New("mongo timed out"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFaceAuthFailure(tt.err); got != tt.want {
				t.Errorf("IsFaceAuthFailure(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
