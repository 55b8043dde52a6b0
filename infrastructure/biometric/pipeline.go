package biometric

import (
	"facegate.io/application/utils"
	"facegate.io/infrastructure/biometric/types"
	"facegate.io/infrastructure/logger"
)

// DetectOptions controls a single pipeline pass.
type DetectOptions struct {
	MinQuality         types.FaceQuality
	CheckLiveness      bool
	AllowMultipleFaces bool
}

// VerifyOptions controls a verification pass. Zero values select the
// login-grade defaults: VERY_HIGH security, ACCEPTABLE quality, liveness on
// and a confidence floor of 80.
type VerifyOptions struct {
	SecurityLevel types.SecurityLevel
	MinQuality    types.FaceQuality
	MinConfidence float64
	SkipLiveness  bool
}

// FaceVerificationService chains the pipeline stages. Every stage failure is
// terminal; nothing is persisted by this service on any path.
type FaceVerificationService struct {
	Normalizer Normalizer
	Gate       QualityGate
	Detector   FaceDetector
	Liveness   LivenessChecker
}

// NewFaceVerificationService wires the default stages around a detector.
func NewFaceVerificationService(detector FaceDetector) *FaceVerificationService {
	return &FaceVerificationService{
		Normalizer: NewNormalizer(),
		Gate:       NewQualityGate(),
		Detector:   detector,
		Liveness:   NewLivenessChecker(),
	}
}

// DetectFace runs normalisation, the image gate, detection, liveness and
// scoring over one image. The image gate runs before any detector work so a
// bad capture never spends model time.
func (s *FaceVerificationService) DetectFace(input ImageInput, opts DetectOptions) (*types.DetectionResult, error) {
	if err := s.checkWiring(); err != nil {
		return nil, err
	}
	if opts.MinQuality == 0 {
		opts.MinQuality = types.FaceQualityAcceptable
	}

	img, err := s.Normalizer.Normalize(input)
	if err != nil {
		return nil, err
	}
	defer img.Close()

	imageQuality := s.Gate.Assess(img)
	if !imageQuality.OverallOK {
		return nil, newError(KindLowQuality, "image failed pre-detection quality gate")
	}

	faces, err := s.Detector.DetectFaces(img)
	if err != nil {
		return nil, err
	}
	if len(faces) == 0 {
		return nil, newError(KindNoFace, "no face detected in image")
	}
	if len(faces) > 1 && !opts.AllowMultipleFaces {
		return nil, newError(KindMultipleFaces, "expected a single face, found %d", len(faces))
	}
	face := faces[0]

	liveness := types.LivenessReport{RiskLevel: types.RiskLevelUnknown}
	if opts.CheckLiveness {
		liveness = s.Liveness.Check(img, face.BBox)
		if liveness.RiskLevel == types.RiskLevelHigh {
			return nil, newError(KindSpoofing, "liveness check flagged high spoofing risk")
		}
	}

	score := ScoreFaceQuality(face, imageQuality, liveness)
	if score < int(opts.MinQuality) {
		return nil, newError(KindLowQuality, "face quality %d below required %d", score, int(opts.MinQuality))
	}

	return &types.DetectionResult{
		Face:         face,
		FaceCount:    len(faces),
		QualityScore: score,
		ImageQuality: imageQuality,
		Liveness:     liveness,
	}, nil
}

// Enroll captures a face template. No comparison happens here; the caller is
// responsible for encrypting and persisting the embedding together with the
// returned enrollment id.
func (s *FaceVerificationService) Enroll(input ImageInput, minQuality types.FaceQuality) (*types.EnrollmentResult, error) {
	if minQuality == 0 {
		minQuality = types.FaceQualityAcceptable
	}

	detection, err := s.DetectFace(input, DetectOptions{
		MinQuality:    minQuality,
		CheckLiveness: true,
	})
	if err != nil {
		return nil, err
	}

	result := &types.EnrollmentResult{
		EnrollmentID:        utils.GenerateULIDString(),
		Embedding:           detection.Face.Embedding,
		QualityScore:        detection.QualityScore,
		DetectionConfidence: detection.Face.Confidence,
		ImageQuality:        detection.ImageQuality,
		Liveness:            detection.Liveness,
	}
	logger.Info("face enrollment captured", logger.LoggerOptions{
		Key: "enrollment",
		Data: map[string]interface{}{
			"enrollment_id": result.EnrollmentID,
			"quality_score": result.QualityScore,
		},
	})
	return result, nil
}

// Verify matches a fresh capture against a stored embedding. The result is
// verified only when the comparator matches AND the confidence clears the
// caller's floor. The double gate is intentional.
func (s *FaceVerificationService) Verify(input ImageInput, stored []float32, opts VerifyOptions) (*types.VerificationResult, error) {
	if opts.SecurityLevel == "" {
		opts.SecurityLevel = types.SecurityLevelVeryHigh
	}
	if opts.MinQuality == 0 {
		opts.MinQuality = types.FaceQualityAcceptable
	}
	if opts.MinConfidence == 0 {
		opts.MinConfidence = 80
	}

	detection, err := s.DetectFace(input, DetectOptions{
		MinQuality:    opts.MinQuality,
		CheckLiveness: !opts.SkipLiveness,
	})
	if err != nil {
		return nil, err
	}

	comparison, err := CompareEmbeddings(detection.Face.Embedding, stored, opts.SecurityLevel)
	if err != nil {
		return nil, err
	}

	return &types.VerificationResult{
		Verified:            comparison.IsMatch && comparison.Confidence >= opts.MinConfidence,
		QualityScore:        detection.QualityScore,
		Similarity:          comparison.Similarity,
		Distance:            comparison.Distance,
		Confidence:          comparison.Confidence,
		DetectionConfidence: detection.Face.Confidence,
		SecurityLevel:       comparison.SecurityLevel,
		ImageQuality:        detection.ImageQuality,
		Liveness:            detection.Liveness,
	}, nil
}

// ExtractEmbedding returns just the embedding for a single good face. Used
// where a caller manages templates itself; the quality bar sits at GOOD
// because there is no second gate downstream.
func (s *FaceVerificationService) ExtractEmbedding(input ImageInput) ([]float32, error) {
	detection, err := s.DetectFace(input, DetectOptions{
		MinQuality:    types.FaceQualityGood,
		CheckLiveness: true,
	})
	if err != nil {
		return nil, err
	}
	return detection.Face.Embedding, nil
}

func (s *FaceVerificationService) checkWiring() error {
	if s.Normalizer == nil || s.Gate == nil || s.Detector == nil || s.Liveness == nil {
		return newError(KindConfiguration, "face verification service is missing a pipeline stage")
	}
	return nil
}
