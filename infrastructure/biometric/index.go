package biometric

import (
	"facegate.io/infrastructure/logger"
)

// Pipeline is the process-wide verification service. The detector models are
// expensive to load, so they are created once at start up and shared by all
// in-flight requests.
var Pipeline *FaceVerificationService

// InitialiseBiometricService loads the detection models and wires the shared
// pipeline. It must be called before any request handler touches Pipeline.
func InitialiseBiometricService() error {
	detector, err := NewFaceDetector(DetectorConfigFromEnv())
	if err != nil {
		logger.Error("failed to initialise face detector", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return err
	}
	Pipeline = NewFaceVerificationService(detector)
	logger.Info("biometric service initialised")
	return nil
}
