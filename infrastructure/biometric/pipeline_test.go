package biometric

import (
	"image"
	"testing"

	"gocv.io/x/gocv"

	"facegate.io/infrastructure/biometric/types"
)

type stubNormalizer struct {
	err error
}

func (s stubNormalizer) Normalize(input ImageInput) (gocv.Mat, error) {
	if s.err != nil {
		return gocv.Mat{}, s.err
	}
	return gocv.NewMat(), nil
}

type stubGate struct {
	report types.ImageQualityReport
}

func (s stubGate) Assess(img gocv.Mat) types.ImageQualityReport {
	return s.report
}

type stubDetector struct {
	faces []types.DetectedFace
	err   error
	calls int
}

func (s *stubDetector) DetectFaces(img gocv.Mat) ([]types.DetectedFace, error) {
	s.calls++
	return s.faces, s.err
}

func (s *stubDetector) Close() error { return nil }

type stubLiveness struct {
	report types.LivenessReport
	calls  int
}

func (s *stubLiveness) Check(img gocv.Mat, faceBBox image.Rectangle) types.LivenessReport {
	s.calls++
	return s.report
}

func goodFace() types.DetectedFace {
	return types.DetectedFace{
		BBox:       image.Rect(100, 100, 300, 300),
		Confidence: 0.98,
		Embedding:  unitVector(512, 0),
	}
}

func newTestService(detector *stubDetector, liveness *stubLiveness) *FaceVerificationService {
	return &FaceVerificationService{
		Normalizer: stubNormalizer{},
		Gate:       stubGate{report: goodImageQuality()},
		Detector:   detector,
		Liveness:   liveness,
	}
}

func TestDetectFaceLowQualityImageSkipsDetector(t *testing.T) {
	detector := &stubDetector{faces: []types.DetectedFace{goodFace()}}
	service := newTestService(detector, &stubLiveness{report: liveReport()})
	service.Gate = stubGate{report: types.ImageQualityReport{OverallOK: false}}

	_, err := service.DetectFace(BytesInput([]byte("img")), DetectOptions{CheckLiveness: true})
	if !IsKind(err, KindLowQuality) {
		t.Fatalf("expected low quality error, got %v", err)
	}
	if detector.calls != 0 {
		t.Errorf("detector called %d times on gated image, want 0", detector.calls)
	}
}

func TestDetectFaceNoFace(t *testing.T) {
	detector := &stubDetector{}
	service := newTestService(detector, &stubLiveness{report: liveReport()})

	_, err := service.DetectFace(BytesInput([]byte("img")), DetectOptions{})
	if !IsKind(err, KindNoFace) {
		t.Fatalf("expected no face error, got %v", err)
	}
}

func TestDetectFaceMultipleFaces(t *testing.T) {
	detector := &stubDetector{faces: []types.DetectedFace{goodFace(), goodFace()}}
	service := newTestService(detector, &stubLiveness{report: liveReport()})

	_, err := service.DetectFace(BytesInput([]byte("img")), DetectOptions{})
	if !IsKind(err, KindMultipleFaces) {
		t.Fatalf("expected multiple faces error, got %v", err)
	}

	result, err := service.DetectFace(BytesInput([]byte("img")), DetectOptions{AllowMultipleFaces: true})
	if err != nil {
		t.Fatalf("unexpected error with AllowMultipleFaces: %v", err)
	}
	if result.FaceCount != 2 {
		t.Errorf("face count = %d, want 2", result.FaceCount)
	}
}

func TestDetectFaceHighRiskLiveness(t *testing.T) {
	detector := &stubDetector{faces: []types.DetectedFace{goodFace()}}
	liveness := &stubLiveness{report: types.LivenessReport{
		Checked:   true,
		IsLive:    false,
		RiskLevel: types.RiskLevelHigh,
	}}
	service := newTestService(detector, liveness)

	_, err := service.DetectFace(BytesInput([]byte("img")), DetectOptions{CheckLiveness: true})
	if !IsKind(err, KindSpoofing) {
		t.Fatalf("expected spoofing error, got %v", err)
	}
}

// Medium liveness risk lowers the score but is not a hard failure.
func TestDetectFaceMediumRiskIsPenaltyOnly(t *testing.T) {
	detector := &stubDetector{faces: []types.DetectedFace{goodFace()}}
	liveness := &stubLiveness{report: types.LivenessReport{
		Checked:   true,
		IsLive:    false,
		RiskLevel: types.RiskLevelMedium,
	}}
	service := newTestService(detector, liveness)

	result, err := service.DetectFace(BytesInput([]byte("img")), DetectOptions{
		MinQuality:    types.FaceQualityPoor,
		CheckLiveness: true,
	})
	if err != nil {
		t.Fatalf("medium risk should not fail detection: %v", err)
	}
	if result.QualityScore != 80 {
		t.Errorf("quality score = %d, want 80 after liveness penalty", result.QualityScore)
	}
}

func TestDetectFaceSkipsLivenessWhenDisabled(t *testing.T) {
	detector := &stubDetector{faces: []types.DetectedFace{goodFace()}}
	liveness := &stubLiveness{report: liveReport()}
	service := newTestService(detector, liveness)

	result, err := service.DetectFace(BytesInput([]byte("img")), DetectOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if liveness.calls != 0 {
		t.Errorf("liveness called %d times with check disabled, want 0", liveness.calls)
	}
	if result.Liveness.Checked {
		t.Error("liveness report marked checked without a check")
	}
}

func TestDetectFaceBelowMinimumQuality(t *testing.T) {
	face := goodFace()
	face.Confidence = 0.85
	detector := &stubDetector{faces: []types.DetectedFace{face}}
	service := newTestService(detector, &stubLiveness{report: liveReport()})

	// Confidence penalty leaves the score at 90, below EXCELLENT.
	_, err := service.DetectFace(BytesInput([]byte("img")), DetectOptions{
		MinQuality:    types.FaceQualityExcellent,
		CheckLiveness: true,
	})
	if !IsKind(err, KindLowQuality) {
		t.Fatalf("expected low quality error, got %v", err)
	}
}

func TestEnrollProducesDistinctIDs(t *testing.T) {
	detector := &stubDetector{faces: []types.DetectedFace{goodFace()}}
	service := newTestService(detector, &stubLiveness{report: liveReport()})

	first, err := service.Enroll(BytesInput([]byte("img")), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := service.Enroll(BytesInput([]byte("img")), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.EnrollmentID == "" || second.EnrollmentID == "" {
		t.Fatal("enrollment ids must not be empty")
	}
	if first.EnrollmentID == second.EnrollmentID {
		t.Error("enrollment ids must be unique per enrollment")
	}
	if len(first.Embedding) != 512 {
		t.Errorf("embedding has %d dimensions, want 512", len(first.Embedding))
	}
}

func TestVerifyMatch(t *testing.T) {
	detector := &stubDetector{faces: []types.DetectedFace{goodFace()}}
	service := newTestService(detector, &stubLiveness{report: liveReport()})

	result, err := service.Verify(BytesInput([]byte("img")), unitVector(512, 0), VerifyOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Verified {
		t.Error("identical embeddings should verify")
	}
	if result.SecurityLevel != types.SecurityLevelVeryHigh {
		t.Errorf("default security level = %s, want VERY_HIGH", result.SecurityLevel)
	}
	if result.Confidence != 100 {
		t.Errorf("confidence = %v, want 100", result.Confidence)
	}
}

func TestVerifyRejectsDifferentFace(t *testing.T) {
	detector := &stubDetector{faces: []types.DetectedFace{goodFace()}}
	service := newTestService(detector, &stubLiveness{report: liveReport()})

	result, err := service.Verify(BytesInput([]byte("img")), unitVector(512, 1), VerifyOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Verified {
		t.Error("orthogonal embeddings must not verify")
	}
}

// A comparator match alone is not enough when confidence sits under the
// floor.
func TestVerifyConfidenceFloor(t *testing.T) {
	// Similarity ~0.81: matches at LOW (threshold 0.55 ⇒ needs > 0.45) but
	// confidence is ~72.9, under the default floor of 80.
	probe := goodFace()
	probe.Embedding = normalizeEmbedding([]float32{0.81, 0.586, 0})
	detector := &stubDetector{faces: []types.DetectedFace{probe}}
	service := newTestService(detector, &stubLiveness{report: liveReport()})

	stored := normalizeEmbedding([]float32{1, 0, 0})
	result, err := service.Verify(BytesInput([]byte("img")), stored, VerifyOptions{
		SecurityLevel: types.SecurityLevelLow,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Similarity <= 0.45 {
		t.Fatalf("test setup broken, similarity %v should match at LOW", result.Similarity)
	}
	if result.Confidence >= 80 {
		t.Fatalf("test setup broken, confidence %v should sit under the floor", result.Confidence)
	}
	if result.Verified {
		t.Error("match under the confidence floor must not verify")
	}
}

func TestVerifyDimensionMismatch(t *testing.T) {
	detector := &stubDetector{faces: []types.DetectedFace{goodFace()}}
	service := newTestService(detector, &stubLiveness{report: liveReport()})

	_, err := service.Verify(BytesInput([]byte("img")), unitVector(128, 0), VerifyOptions{})
	if !IsKind(err, KindDimensionMismatch) {
		t.Fatalf("expected dimension mismatch error, got %v", err)
	}
}

func TestServiceWiringGuard(t *testing.T) {
	service := &FaceVerificationService{}
	_, err := service.DetectFace(BytesInput([]byte("img")), DetectOptions{})
	if !IsKind(err, KindConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}
