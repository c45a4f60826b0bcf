package imaging

import (
	"Recipe-Share/domain"
	"bytes"
	"encoding/base64"
	"fmt"
	"github.com/disintegration/imaging"
	"image"
	"strings"
)

const (
	// MaxDimension is the longest side kept after normalisation.
	MaxDimension = 1080
	// MaxUploadBytes bounds a decoded upload before normalisation.
	MaxUploadBytes = 10 << 20
	// MaxPixels bounds the decoded frame; small files can declare huge sizes.
	MaxPixels = 40_000_000

	jpegQuality = 80
	ContentType = "image/jpeg"
)

// Normalize decodes an image in any supported format, applies its EXIF
// orientation, shrinks it to fit MaxDimension and re-encodes it as JPEG.
func Normalize(data []byte) ([]byte, error) {
	if len(data) > MaxUploadBytes {
		return nil, domain.ErrImageTooLarge
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidImageFormat, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return nil, domain.ErrImageTooLarge
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidImageFormat, err)
	}

	b := img.Bounds()
	if b.Dx() > MaxDimension || b.Dy() > MaxDimension {
		img = imaging.Fit(img, MaxDimension, MaxDimension, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, fmt.Errorf("imaging: encoding jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// ParseDataURL decodes a base64 image data URL such as
// data:image/png;base64,iVBOR....
func ParseDataURL(dataURL string) (string, []byte, error) {
	contents, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return "", nil, domain.ErrInvalidImageFormat
	}
	ct, b64, ok := strings.Cut(contents, ";base64,")
	if !ok || !strings.HasPrefix(ct, "image/") {
		return "", nil, domain.ErrInvalidImageFormat
	}
	if base64.StdEncoding.DecodedLen(len(b64)) > MaxUploadBytes {
		return "", nil, domain.ErrImageTooLarge
	}
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", domain.ErrInvalidImageFormat, err)
	}
	return ct, data, nil
}

// ToDataURL wraps JPEG bytes in a data URL.
func ToDataURL(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	return "data:" + ContentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
