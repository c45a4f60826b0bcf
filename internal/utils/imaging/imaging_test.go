package imaging

import (
	"Recipe-Share/domain"
	"bytes"
	"encoding/binary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestNormalize(t *testing.T) {
	t.Run("shrinks large images to fit", func(t *testing.T) {
		out, err := Normalize(pngBytes(t, 2160, 1080))
		require.NoError(t, err)

		cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, "jpeg", format)
		assert.Equal(t, 1080, cfg.Width)
		assert.Equal(t, 540, cfg.Height)
	})

	t.Run("keeps small images at their size", func(t *testing.T) {
		out, err := Normalize(pngBytes(t, 40, 30))
		require.NoError(t, err)

		cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, "jpeg", format)
		assert.Equal(t, 40, cfg.Width)
		assert.Equal(t, 30, cfg.Height)
	})

	t.Run("rejects huge declared dimensions before decoding", func(t *testing.T) {
		data := pngBytes(t, 4, 4)
		// Rewrite the IHDR width and height, then its checksum.
		binary.BigEndian.PutUint32(data[16:20], 40000)
		binary.BigEndian.PutUint32(data[20:24], 40000)
		binary.BigEndian.PutUint32(data[29:33], crc32.ChecksumIEEE(data[12:29]))

		_, err := Normalize(data)
		assert.ErrorIs(t, err, domain.ErrImageTooLarge)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := Normalize([]byte("not an image"))
		assert.ErrorIs(t, err, domain.ErrInvalidImageFormat)
	})
}

func TestDataURL(t *testing.T) {
	data := pngBytes(t, 4, 4)

	ct, decoded, err := ParseDataURL(ToDataURL(data))
	require.NoError(t, err)
	assert.Equal(t, ContentType, ct)
	assert.Equal(t, data, decoded)

	for _, bad := range []string{
		"",
		"image/png;base64,AAAA",
		"data:text/plain;base64,AAAA",
		"data:image/png,AAAA",
		"data:image/png;base64,***",
	} {
		_, _, err := ParseDataURL(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidImageFormat, bad)
	}

	assert.Empty(t, ToDataURL(nil))
}
