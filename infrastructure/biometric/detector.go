package biometric

import (
	"image"
	"math"
	"os"
	"sort"
	"sync"

	"gocv.io/x/gocv"

	"facegate.io/infrastructure/biometric/types"
	"facegate.io/infrastructure/logger"
)

const embeddingDimensions = 512

// FaceDetector locates faces and extracts an embedding per face.
// Implementations must return faces ordered by descending detection
// confidence, each with an L2-normalised embedding attached.
type FaceDetector interface {
	DetectFaces(img gocv.Mat) ([]types.DetectedFace, error)
	Close() error
}

// DetectorConfig holds the model files and tuning knobs for the default
// YuNet + ArcFace detector.
type DetectorConfig struct {
	DetectorModelPath   string
	RecognizerModelPath string
	ConfidenceThreshold float32
	NMSThreshold        float32
	TopK                int
}

// DetectorConfigFromEnv builds a config from FACE_DETECTOR_MODEL_PATH and
// FACE_RECOGNIZER_MODEL_PATH, falling back to the bundled model locations.
func DetectorConfigFromEnv() DetectorConfig {
	config := DetectorConfig{
		DetectorModelPath:   "./models/yunet/face_detection_yunet_2023mar.onnx",
		RecognizerModelPath: "./models/arcface/arcface.onnx",
		ConfidenceThreshold: 0.6,
		NMSThreshold:        0.3,
		TopK:                5000,
	}
	if path := os.Getenv("FACE_DETECTOR_MODEL_PATH"); path != "" {
		config.DetectorModelPath = path
	}
	if path := os.Getenv("FACE_RECOGNIZER_MODEL_PATH"); path != "" {
		config.RecognizerModelPath = path
	}
	return config
}

// yuNetArcFaceDetector runs YuNet for localisation and ArcFace for
// embeddings. OpenCV nets are not safe for concurrent Forward calls, so all
// model access is serialised behind the mutex.
type yuNetArcFaceDetector struct {
	detector   gocv.FaceDetectorYN
	recognizer gocv.Net
	inputSize  image.Point
	mutex      sync.Mutex
}

// NewFaceDetector loads both models or fails. A missing model file is a
// configuration error, not a runtime detection failure.
func NewFaceDetector(config DetectorConfig) (FaceDetector, error) {
	if _, err := os.Stat(config.DetectorModelPath); os.IsNotExist(err) {
		return nil, newError(KindConfiguration, "face detector model not found: %s", config.DetectorModelPath)
	}
	if _, err := os.Stat(config.RecognizerModelPath); os.IsNotExist(err) {
		return nil, newError(KindConfiguration, "face recognizer model not found: %s", config.RecognizerModelPath)
	}

	detector := gocv.NewFaceDetectorYN(config.DetectorModelPath, "", image.Pt(320, 320))
	detector.SetScoreThreshold(config.ConfidenceThreshold)
	detector.SetNMSThreshold(config.NMSThreshold)
	detector.SetTopK(config.TopK)

	recognizer := gocv.ReadNet(config.RecognizerModelPath, "")
	if recognizer.Empty() {
		detector.Close()
		return nil, newError(KindConfiguration, "failed to load face recognizer model: %s", config.RecognizerModelPath)
	}

	logger.Info("face detector initialised", logger.LoggerOptions{
		Key: "models",
		Data: map[string]interface{}{
			"detector":   config.DetectorModelPath,
			"recognizer": config.RecognizerModelPath,
		},
	})

	return &yuNetArcFaceDetector{
		detector:   detector,
		recognizer: recognizer,
		inputSize:  image.Pt(112, 112),
	}, nil
}

func (d *yuNetArcFaceDetector) DetectFaces(img gocv.Mat) ([]types.DetectedFace, error) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.detector.SetInputSize(image.Pt(img.Cols(), img.Rows()))

	facesMat := gocv.NewMat()
	defer facesMat.Close()
	d.detector.Detect(img, &facesMat)

	faces := d.parseDetections(facesMat, img)
	for i := range faces {
		embedding, err := d.extractEmbedding(img, faces[i].BBox)
		if err != nil {
			return nil, err
		}
		faces[i].Embedding = embedding
	}

	sort.SliceStable(faces, func(i, j int) bool {
		return faces[i].Confidence > faces[j].Confidence
	})
	return faces, nil
}

// parseDetections reads the YuNet output rows. Each row carries
// [x, y, w, h, 5 landmark x/y pairs, score] for a total of 15 floats.
func (d *yuNetArcFaceDetector) parseDetections(facesMat gocv.Mat, img gocv.Mat) []types.DetectedFace {
	var faces []types.DetectedFace
	if facesMat.Empty() || facesMat.Rows() == 0 {
		return faces
	}

	for i := 0; i < facesMat.Rows(); i++ {
		x := int(facesMat.GetFloatAt(i, 0))
		y := int(facesMat.GetFloatAt(i, 1))
		w := int(facesMat.GetFloatAt(i, 2))
		h := int(facesMat.GetFloatAt(i, 3))
		if w <= 0 || h <= 0 {
			continue
		}

		bbox := image.Rect(x, y, x+w, y+h).Intersect(image.Rect(0, 0, img.Cols(), img.Rows()))
		if bbox.Empty() {
			continue
		}

		landmarks := []image.Point{
			{X: int(facesMat.GetFloatAt(i, 4)), Y: int(facesMat.GetFloatAt(i, 5))},
			{X: int(facesMat.GetFloatAt(i, 6)), Y: int(facesMat.GetFloatAt(i, 7))},
			{X: int(facesMat.GetFloatAt(i, 8)), Y: int(facesMat.GetFloatAt(i, 9))},
			{X: int(facesMat.GetFloatAt(i, 10)), Y: int(facesMat.GetFloatAt(i, 11))},
			{X: int(facesMat.GetFloatAt(i, 12)), Y: int(facesMat.GetFloatAt(i, 13))},
		}

		faces = append(faces, types.DetectedFace{
			BBox:       bbox,
			Confidence: float64(facesMat.GetFloatAt(i, 14)),
			Landmarks:  landmarks,
			Pose:       estimatePose(landmarks, bbox),
		})
	}
	return faces
}

// extractEmbedding crops the face, resizes to 112x112 and runs the ArcFace
// forward pass. The returned vector is L2-normalised so downstream cosine
// similarity stays well behaved.
func (d *yuNetArcFaceDetector) extractEmbedding(img gocv.Mat, bbox image.Rectangle) ([]float32, error) {
	region := img.Region(bbox)
	defer region.Close()

	resized := gocv.NewMat()
	defer resized.Close()
	gocv.Resize(region, &resized, d.inputSize, 0, 0, gocv.InterpolationLinear)

	blob := gocv.BlobFromImage(
		resized,
		1.0/127.5,
		d.inputSize,
		gocv.NewScalar(127.5, 127.5, 127.5, 0),
		true,
		false,
	)
	defer blob.Close()

	d.recognizer.SetInput(blob, "")
	output := d.recognizer.Forward("")
	defer output.Close()

	if output.Empty() || output.Cols() < embeddingDimensions {
		return nil, newError(KindConfiguration, "recognizer produced %d values, expected %d", output.Cols(), embeddingDimensions)
	}

	embedding := make([]float32, embeddingDimensions)
	for i := 0; i < embeddingDimensions; i++ {
		embedding[i] = output.GetFloatAt(0, i)
	}
	return normalizeEmbedding(embedding), nil
}

func (d *yuNetArcFaceDetector) Close() error {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.detector.Close()
	return d.recognizer.Close()
}

// estimatePose derives a coarse head pose from the 5 YuNet landmarks
// (right eye, left eye, nose tip, mouth corners). It is only precise enough
// to flag strongly off-axis captures.
func estimatePose(landmarks []image.Point, bbox image.Rectangle) *types.Pose {
	if len(landmarks) < 5 || bbox.Dx() <= 0 || bbox.Dy() <= 0 {
		return nil
	}

	rightEye, leftEye, nose := landmarks[0], landmarks[1], landmarks[2]

	// Roll from the eye line angle.
	roll := math.Atan2(float64(leftEye.Y-rightEye.Y), float64(leftEye.X-rightEye.X)) * 180 / math.Pi

	// Yaw from how far the nose sits off the eye midpoint, relative to face width.
	eyeMidX := float64(rightEye.X+leftEye.X) / 2
	yaw := (float64(nose.X) - eyeMidX) / float64(bbox.Dx()) * 90

	// Pitch from the vertical nose position between the eyes and box bottom.
	eyeMidY := float64(rightEye.Y+leftEye.Y) / 2
	expectedNoseY := eyeMidY + float64(bbox.Dy())*0.25
	pitch := (float64(nose.Y) - expectedNoseY) / float64(bbox.Dy()) * 90

	return &types.Pose{Pitch: pitch, Yaw: yaw, Roll: roll}
}

func normalizeEmbedding(embedding []float32) []float32 {
	norm := 0.0
	for _, val := range embedding {
		norm += float64(val * val)
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		return embedding
	}

	normalized := make([]float32, len(embedding))
	for i, val := range embedding {
		normalized[i] = float32(float64(val) / norm)
	}
	return normalized
}
