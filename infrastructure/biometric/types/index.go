package types

import "image"

// FaceQuality is the minimum acceptable quality tier for a captured face.
// The numeric value is the quality-score floor the tier demands.
type FaceQuality int

const (
	FaceQualityPoor       FaceQuality = 50
	FaceQualityAcceptable FaceQuality = 65
	FaceQualityGood       FaceQuality = 80
	FaceQualityExcellent  FaceQuality = 95
)

// SecurityLevel is a named threshold preset controlling how strict an
// embedding match must be. Smaller threshold = stricter match requirement.
type SecurityLevel string

const (
	SecurityLevelVeryHigh SecurityLevel = "VERY_HIGH"
	SecurityLevelHigh     SecurityLevel = "HIGH"
	SecurityLevelMedium   SecurityLevel = "MEDIUM"
	SecurityLevelLow      SecurityLevel = "LOW"
)

// securityLevelThresholds keeps the level → threshold mapping as data so the
// presets stay auditable in one place.
var securityLevelThresholds = map[SecurityLevel]float64{
	SecurityLevelVeryHigh: 0.25,
	SecurityLevelHigh:     0.35,
	SecurityLevelMedium:   0.45,
	SecurityLevelLow:      0.55,
}

// Threshold returns the distance-like matching threshold for the level.
// Unknown levels fall back to MEDIUM.
func (sl SecurityLevel) Threshold() float64 {
	if t, ok := securityLevelThresholds[sl]; ok {
		return t
	}
	return securityLevelThresholds[SecurityLevelMedium]
}

type RiskLevel string

const (
	RiskLevelLow     RiskLevel = "low"
	RiskLevelMedium  RiskLevel = "medium"
	RiskLevelHigh    RiskLevel = "high"
	RiskLevelUnknown RiskLevel = "unknown"
)

// Pose holds head rotation angles in degrees.
type Pose struct {
	Pitch float64 `json:"pitch"`
	Yaw   float64 `json:"yaw"`
	Roll  float64 `json:"roll"`
}

// DetectedFace is one face located by the detector. Embeddings are
// L2-normalised by the detector before the face is returned.
type DetectedFace struct {
	BBox       image.Rectangle `json:"bbox"`
	Confidence float64         `json:"detection_confidence"`
	Embedding  []float32       `json:"-"`
	Landmarks  []image.Point   `json:"landmarks,omitempty"`
	Pose       *Pose           `json:"pose,omitempty"`
	Age        *int            `json:"age,omitempty"`
	Gender     *string         `json:"gender,omitempty"`
}

// ImageQualityReport holds the pre-detection image gate metrics.
type ImageQualityReport struct {
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	MeanBrightness float64 `json:"mean_brightness"`
	Contrast       float64 `json:"contrast"`
	BlurScore      float64 `json:"blur_score"`
	ResolutionOK   bool    `json:"resolution_ok"`
	BrightnessOK   bool    `json:"brightness_ok"`
	ContrastOK     bool    `json:"contrast_ok"`
	SharpnessOK    bool    `json:"sharpness_ok"`
	OverallOK      bool    `json:"overall_ok"`
}

// LivenessReport is a best-effort anti-spoof assessment, not a security
// guarantee.
type LivenessReport struct {
	Checked      bool      `json:"liveness_check"`
	IsLive       bool      `json:"is_live"`
	ColorVariety float64   `json:"color_variety"`
	EdgeDensity  float64   `json:"edge_density"`
	RiskLevel    RiskLevel `json:"risk_level"`
}

// Comparison is the outcome of matching two embeddings at a security level.
type Comparison struct {
	IsMatch       bool          `json:"is_match"`
	Similarity    float64       `json:"similarity"`
	Distance      float64       `json:"euclidean_distance"`
	Threshold     float64       `json:"threshold"`
	Confidence    float64       `json:"confidence"`
	SecurityLevel SecurityLevel `json:"security_level"`
}

// RankedMatch is one entry of a batch comparison result.
type RankedMatch struct {
	ID string `json:"id"`
	Comparison
}

// DetectionResult is the aggregate of one pipeline pass over an image.
type DetectionResult struct {
	Face         DetectedFace       `json:"face"`
	FaceCount    int                `json:"face_count"`
	QualityScore int                `json:"quality_score"`
	ImageQuality ImageQualityReport `json:"image_quality"`
	Liveness     LivenessReport     `json:"liveness"`
}

// EnrollmentResult is handed off to the storage collaborator; the embedding
// itself never leaves the service boundary unencrypted.
type EnrollmentResult struct {
	EnrollmentID        string             `json:"enrollment_id"`
	Embedding           []float32          `json:"-"`
	QualityScore        int                `json:"quality_score"`
	DetectionConfidence float64            `json:"detection_confidence"`
	ImageQuality        ImageQualityReport `json:"image_quality"`
	Liveness            LivenessReport     `json:"liveness"`
}

// VerificationResult is transient and never persisted.
type VerificationResult struct {
	Verified            bool               `json:"verified"`
	QualityScore        int                `json:"quality_score"`
	Similarity          float64            `json:"similarity"`
	Distance            float64            `json:"euclidean_distance"`
	Confidence          float64            `json:"confidence"`
	DetectionConfidence float64            `json:"detection_confidence"`
	SecurityLevel       SecurityLevel      `json:"security_level"`
	ImageQuality        ImageQualityReport `json:"image_quality"`
	Liveness            LivenessReport     `json:"liveness"`
}
