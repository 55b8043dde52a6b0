package biometric

import (
	"testing"

	"facegate.io/infrastructure/biometric/types"
)

func goodImageQuality() types.ImageQualityReport {
	return types.ImageQualityReport{
		Width:          640,
		Height:         480,
		MeanBrightness: 120,
		Contrast:       45,
		BlurScore:      150,
		ResolutionOK:   true,
		BrightnessOK:   true,
		ContrastOK:     true,
		SharpnessOK:    true,
		OverallOK:      true,
	}
}

func liveReport() types.LivenessReport {
	return types.LivenessReport{
		Checked:      true,
		IsLive:       true,
		ColorVariety: 25,
		EdgeDensity:  0.12,
		RiskLevel:    types.RiskLevelLow,
	}
}

func TestScoreFaceQualityDeductions(t *testing.T) {
	frontal := &types.Pose{Pitch: 2, Yaw: -4, Roll: 1}

	tests := []struct {
		name     string
		face     types.DetectedFace
		quality  types.ImageQualityReport
		liveness types.LivenessReport
		want     int
	}{
		{
			name:     "perfect capture",
			face:     types.DetectedFace{Confidence: 0.99, Pose: frontal},
			quality:  goodImageQuality(),
			liveness: liveReport(),
			want:     100,
		},
		{
			name:     "confidence just under excellent",
			face:     types.DetectedFace{Confidence: 0.93, Pose: frontal},
			quality:  goodImageQuality(),
			liveness: liveReport(),
			want:     95,
		},
		{
			name:     "low detection confidence",
			face:     types.DetectedFace{Confidence: 0.85, Pose: frontal},
			quality:  goodImageQuality(),
			liveness: liveReport(),
			want:     90,
		},
		{
			name: "resolution failure",
			face: types.DetectedFace{Confidence: 0.99, Pose: frontal},
			quality: func() types.ImageQualityReport {
				q := goodImageQuality()
				q.ResolutionOK = false
				return q
			}(),
			liveness: liveReport(),
			want:     80,
		},
		{
			name: "brightness failure",
			face: types.DetectedFace{Confidence: 0.99, Pose: frontal},
			quality: func() types.ImageQualityReport {
				q := goodImageQuality()
				q.BrightnessOK = false
				return q
			}(),
			liveness: liveReport(),
			want:     85,
		},
		{
			name: "contrast failure",
			face: types.DetectedFace{Confidence: 0.99, Pose: frontal},
			quality: func() types.ImageQualityReport {
				q := goodImageQuality()
				q.ContrastOK = false
				return q
			}(),
			liveness: liveReport(),
			want:     90,
		},
		{
			name: "sharpness failure",
			face: types.DetectedFace{Confidence: 0.99, Pose: frontal},
			quality: func() types.ImageQualityReport {
				q := goodImageQuality()
				q.SharpnessOK = false
				return q
			}(),
			liveness: liveReport(),
			want:     85,
		},
		{
			name:    "liveness failed",
			face:    types.DetectedFace{Confidence: 0.99, Pose: frontal},
			quality: goodImageQuality(),
			liveness: types.LivenessReport{
				Checked:   true,
				IsLive:    false,
				RiskLevel: types.RiskLevelMedium,
			},
			want: 80,
		},
		{
			name:     "liveness not checked carries no penalty",
			face:     types.DetectedFace{Confidence: 0.99, Pose: frontal},
			quality:  goodImageQuality(),
			liveness: types.LivenessReport{Checked: false, RiskLevel: types.RiskLevelUnknown},
			want:     100,
		},
		{
			name:     "extreme yaw",
			face:     types.DetectedFace{Confidence: 0.99, Pose: &types.Pose{Yaw: 42}},
			quality:  goodImageQuality(),
			liveness: liveReport(),
			want:     90,
		},
		{
			name:     "missing pose carries no penalty",
			face:     types.DetectedFace{Confidence: 0.99},
			quality:  goodImageQuality(),
			liveness: liveReport(),
			want:     100,
		},
		{
			name: "everything wrong clamps at zero",
			face: types.DetectedFace{Confidence: 0.5, Pose: &types.Pose{Pitch: 60, Yaw: 60, Roll: 60}},
			quality: types.ImageQualityReport{
				ResolutionOK: false,
				BrightnessOK: false,
				ContrastOK:   false,
				SharpnessOK:  false,
			},
			liveness: types.LivenessReport{Checked: true, IsLive: false},
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreFaceQuality(tt.face, tt.quality, tt.liveness)
			if got != tt.want {
				t.Errorf("ScoreFaceQuality() = %d, want %d", got, tt.want)
			}
		})
	}
}

// Adding a defect must never raise the score.
func TestScoreFaceQualityMonotonic(t *testing.T) {
	face := types.DetectedFace{Confidence: 0.99}
	baseline := ScoreFaceQuality(face, goodImageQuality(), liveReport())

	degraded := goodImageQuality()
	degraded.SharpnessOK = false
	if got := ScoreFaceQuality(face, degraded, liveReport()); got > baseline {
		t.Errorf("degraded sharpness raised score: %d > %d", got, baseline)
	}

	degraded.BrightnessOK = false
	worse := ScoreFaceQuality(face, degraded, liveReport())
	if worse > baseline {
		t.Errorf("two defects raised score: %d > %d", worse, baseline)
	}
}
