// util/image_codec.go

package util

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"

	ed_errors "github.com/dev-mohitbeniwal/eventdesk/errors"
)

const defaultQrSize = 300

// ImageCodec turns uploaded QR images into square PNG thumbnails.
type ImageCodec struct {
	size int
}

func NewImageCodec(size int) *ImageCodec {
	if size <= 0 {
		size = defaultQrSize
	}
	return &ImageCodec{size: size}
}

// Encode decodes any supported raster format, resizes it to size x size and
// re-encodes it as PNG. It returns the PNG bytes and their length.
func (c *ImageCodec) Encode(data []byte) ([]byte, int, error) {
	if len(data) == 0 {
		return nil, 0, fmt.Errorf("%w: empty upload", ed_errors.ErrInvalidImage)
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ed_errors.ErrInvalidImage, err)
	}

	// Nearest neighbour keeps QR module edges sharp.
	thumb := imaging.Resize(img, c.size, c.size, imaging.NearestNeighbor)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.PNG); err != nil {
		return nil, 0, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), buf.Len(), nil
}
