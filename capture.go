package colorcube

import (
	"fmt"
	"image"
)

// ImageFromFramebuffer converts tightly packed RGBA pixels read back from
// OpenGL into an image. GL rows start at the bottom, so rows are flipped.
func ImageFromFramebuffer(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidFramebuffer, width, height)
	}
	rowLen := width * 4
	if len(pixels) != rowLen*height {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidFramebuffer, len(pixels), rowLen*height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowLen
		copy(img.Pix[y*img.Stride:y*img.Stride+rowLen], pixels[src:src+rowLen])
	}
	return img, nil
}
