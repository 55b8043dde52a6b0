package biometric

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed set of face verification failure kinds. Every
// pipeline failure carries exactly one kind so the boundary layer can map
// each to a distinct user-facing status without string matching.
type ErrorKind uint8

const (
	// KindDecode - unparsable or empty image.
	KindDecode ErrorKind = iota + 1
	// KindLowQuality - image or face quality below the requested tier.
	KindLowQuality
	// KindNoFace - zero faces found.
	KindNoFace
	// KindMultipleFaces - more than one face found when a single face is required.
	KindMultipleFaces
	// KindSpoofing - liveness heuristic flagged high risk.
	KindSpoofing
	// KindDimensionMismatch - comparator given embeddings of unequal length.
	KindDimensionMismatch
	// KindConfiguration - service invoked without required collaborators wired.
	KindConfiguration
)

func (k ErrorKind) String() string {
	switch k {
	case KindDecode:
		return "decode_error"
	case KindLowQuality:
		return "low_quality_face"
	case KindNoFace:
		return "no_face_detected"
	case KindMultipleFaces:
		return "multiple_faces"
	case KindSpoofing:
		return "spoofing_detected"
	case KindDimensionMismatch:
		return "dimension_mismatch"
	case KindConfiguration:
		return "configuration_error"
	}
	return "unknown"
}

// Error is a terminal, non-retryable face verification failure.
type Error struct {
	Kind   ErrorKind
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is a face verification error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var faceErr *Error
	if errors.As(err, &faceErr) {
		return faceErr.Kind == kind
	}
	return false
}

// KindOf extracts the failure kind from err, if it carries one.
func KindOf(err error) (ErrorKind, bool) {
	var faceErr *Error
	if errors.As(err, &faceErr) {
		return faceErr.Kind, true
	}
	return 0, false
}
