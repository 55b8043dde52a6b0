package biometric

import (
	"math"

	"facegate.io/infrastructure/biometric/types"
)

// ScoreFaceQuality collapses the detection, image-gate and liveness signals
// into a single 0-100 deduction score. It is deliberately a pure function so
// policy changes stay reviewable in one place.
func ScoreFaceQuality(face types.DetectedFace, imageQuality types.ImageQualityReport, liveness types.LivenessReport) int {
	score := 100.0

	switch {
	case face.Confidence < 0.90:
		score -= 10
	case face.Confidence < 0.95:
		score -= 5
	}

	if !imageQuality.ResolutionOK {
		score -= 20
	}
	if !imageQuality.BrightnessOK {
		score -= 15
	}
	if !imageQuality.ContrastOK {
		score -= 10
	}
	if !imageQuality.SharpnessOK {
		score -= 15
	}

	if liveness.Checked && !liveness.IsLive {
		score -= 20
	}

	if face.Pose != nil {
		if math.Abs(face.Pose.Yaw) > 30 || math.Abs(face.Pose.Pitch) > 30 || math.Abs(face.Pose.Roll) > 30 {
			score -= 10
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return int(score)
}
