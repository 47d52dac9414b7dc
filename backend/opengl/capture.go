package opengl

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/colorcube"
)

// ReadFramebuffer reads the current framebuffer into an image.
func ReadFramebuffer(width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return colorcube.ImageFromFramebuffer(nil, width, height)
	}
	pixels := make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return colorcube.ImageFromFramebuffer(pixels, width, height)
}
