package biometric

import (
	"image"

	"gocv.io/x/gocv"

	"facegate.io/infrastructure/biometric/types"
)

const (
	minColorVariety    = 15.0
	minEdgeFraction    = 0.05
	cannyLowThreshold  = 50
	cannyHighThreshold = 150
)

// LivenessChecker runs presentation-attack heuristics over a detected face
// region. It is a screening signal, not a guarantee.
type LivenessChecker interface {
	Check(img gocv.Mat, faceBBox image.Rectangle) types.LivenessReport
}

type heuristicLivenessChecker struct{}

// NewLivenessChecker returns the default colour-variety and edge-density
// checker.
func NewLivenessChecker() LivenessChecker {
	return heuristicLivenessChecker{}
}

func (heuristicLivenessChecker) Check(img gocv.Mat, faceBBox image.Rectangle) types.LivenessReport {
	report := types.LivenessReport{Checked: true, RiskLevel: types.RiskLevelHigh}

	bounds := image.Rect(0, 0, img.Cols(), img.Rows())
	crop := faceBBox.Intersect(bounds)
	if crop.Empty() {
		// A face box with no pixels behind it is treated as hostile input.
		return report
	}

	face := img.Region(crop)
	defer face.Close()

	report.ColorVariety = colorVariety(face)
	report.EdgeDensity = edgeDensity(face)
	report.IsLive = report.ColorVariety > minColorVariety && report.EdgeDensity > minEdgeFraction
	if report.IsLive {
		report.RiskLevel = types.RiskLevelLow
	} else {
		report.RiskLevel = types.RiskLevelMedium
	}
	return report
}

// colorVariety is the mean of the per-channel standard deviations in HSV
// space. Printed photos and screens flatten colour distribution, real skin
// under real light does not.
func colorVariety(face gocv.Mat) float64 {
	hsv := gocv.NewMat()
	defer hsv.Close()
	gocv.CvtColor(face, &hsv, gocv.ColorBGRToHSV)

	channels := gocv.Split(hsv)
	defer func() {
		for _, ch := range channels {
			ch.Close()
		}
	}()

	var total float64
	for _, ch := range channels {
		_, stdDev := ch.MeanStdDev()
		total += stdDev.Val1
	}
	if len(channels) == 0 {
		return 0
	}
	return total / float64(len(channels))
}

// edgeDensity is the fraction of Canny edge pixels in the face region.
// Natural faces carry fine texture that flat reproductions lose.
func edgeDensity(face gocv.Mat) float64 {
	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(face, &gray, gocv.ColorBGRToGray)

	edges := gocv.NewMat()
	defer edges.Close()
	gocv.Canny(gray, &edges, cannyLowThreshold, cannyHighThreshold)

	totalPixels := edges.Rows() * edges.Cols()
	if totalPixels == 0 {
		return 0
	}
	return float64(gocv.CountNonZero(edges)) / float64(totalPixels)
}
