package biometric

import (
	"facegate.io/application/utils"
	"gocv.io/x/gocv"
)

// ImageInput carries one image in any of the supported encodings. Exactly
// one field should be populated.
type ImageInput struct {
	Pixels *gocv.Mat
	Bytes  []byte
	Base64 string
}

func PixelInput(mat gocv.Mat) ImageInput {
	return ImageInput{Pixels: &mat}
}

func BytesInput(data []byte) ImageInput {
	return ImageInput{Bytes: data}
}

func Base64Input(payload string) ImageInput {
	return ImageInput{Base64: payload}
}

// Normalizer converts heterogeneous image inputs into a canonical 3-channel
// BGR pixel buffer. The caller owns the returned Mat.
type Normalizer interface {
	Normalize(input ImageInput) (gocv.Mat, error)
}

type imageNormalizer struct{}

func NewNormalizer() Normalizer {
	return imageNormalizer{}
}

func (n imageNormalizer) Normalize(input ImageInput) (gocv.Mat, error) {
	switch {
	case input.Pixels != nil:
		return toThreeChannel(*input.Pixels, false)
	case input.Bytes != nil:
		return n.decodeBytes(input.Bytes)
	case input.Base64 != "":
		decoded, err := utils.DecodeBase64Image(input.Base64)
		if err != nil {
			return gocv.Mat{}, newError(KindDecode, "failed to decode base64 image: %v", err)
		}
		return n.decodeBytes(decoded)
	}
	return gocv.Mat{}, newError(KindDecode, "no image supplied")
}

func (n imageNormalizer) decodeBytes(data []byte) (gocv.Mat, error) {
	if len(data) == 0 {
		return gocv.Mat{}, newError(KindDecode, "empty image payload")
	}
	mat, err := gocv.IMDecode(data, gocv.IMReadUnchanged)
	if err != nil {
		return gocv.Mat{}, newError(KindDecode, "unsupported image container: %v", err)
	}
	return toThreeChannel(mat, true)
}

// toThreeChannel expands grayscale to 3 channels and drops an alpha channel.
// When owned is true the source Mat is released once converted.
func toThreeChannel(src gocv.Mat, owned bool) (gocv.Mat, error) {
	if src.Empty() || src.Rows() == 0 || src.Cols() == 0 {
		if owned {
			src.Close()
		}
		return gocv.Mat{}, newError(KindDecode, "decoded image buffer is empty")
	}

	switch src.Channels() {
	case 1:
		dst := gocv.NewMat()
		gocv.CvtColor(src, &dst, gocv.ColorGrayToBGR)
		if owned {
			src.Close()
		}
		return dst, nil
	case 3:
		if owned {
			return src, nil
		}
		return src.Clone(), nil
	case 4:
		dst := gocv.NewMat()
		gocv.CvtColor(src, &dst, gocv.ColorBGRAToBGR)
		if owned {
			src.Close()
		}
		return dst, nil
	}

	channels := src.Channels()
	if owned {
		src.Close()
	}
	return gocv.Mat{}, newError(KindDecode, "unsupported channel count: %d", channels)
}
