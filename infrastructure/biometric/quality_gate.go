package biometric

import (
	"gocv.io/x/gocv"

	"facegate.io/infrastructure/biometric/types"
)

const (
	minImageDimension = 200
	minMeanBrightness = 30.0
	maxMeanBrightness = 225.0
	minContrastStdDev = 20.0
	minBlurVariance   = 10.0
)

// QualityGate screens an image before any face detection work is spent on it.
type QualityGate interface {
	Assess(img gocv.Mat) types.ImageQualityReport
}

type imageQualityGate struct{}

// NewQualityGate returns the default brightness/contrast/sharpness gate.
func NewQualityGate() QualityGate {
	return imageQualityGate{}
}

func (imageQualityGate) Assess(img gocv.Mat) types.ImageQualityReport {
	report := types.ImageQualityReport{
		Width:  img.Cols(),
		Height: img.Rows(),
	}
	report.ResolutionOK = report.Width >= minImageDimension && report.Height >= minImageDimension

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(img, &gray, gocv.ColorBGRToGray)

	mean, stdDev := gray.MeanStdDev()
	report.MeanBrightness = mean.Val1
	report.Contrast = stdDev.Val1
	report.BrightnessOK = report.MeanBrightness > minMeanBrightness && report.MeanBrightness < maxMeanBrightness
	report.ContrastOK = report.Contrast > minContrastStdDev

	report.BlurScore = laplacianVariance(gray)
	report.SharpnessOK = report.BlurScore > minBlurVariance

	report.OverallOK = report.ResolutionOK && report.BrightnessOK && report.ContrastOK && report.SharpnessOK
	return report
}

// laplacianVariance measures sharpness as the variance of the Laplacian
// response. Flat, blurry images produce values near zero.
func laplacianVariance(gray gocv.Mat) float64 {
	laplacian := gocv.NewMat()
	defer laplacian.Close()
	gocv.Laplacian(gray, &laplacian, gocv.MatTypeCV64F, 1, 1, 0, gocv.BorderDefault)

	_, stdDev := laplacian.MeanStdDev()
	return stdDev.Val1 * stdDev.Val1
}
