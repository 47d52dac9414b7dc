package colorcube

import "errors"

var (
	// ErrMisalignedMesh is returned when a mesh's color array does not line
	// up with its position array.
	ErrMisalignedMesh = errors.New("colorcube: misaligned mesh")

	// ErrNotUploaded is returned by Viewer.Draw before Viewer.Init succeeded.
	ErrNotUploaded = errors.New("colorcube: mesh not uploaded")

	// ErrAlreadyUploaded is returned when Viewer.Init is called twice.
	ErrAlreadyUploaded = errors.New("colorcube: mesh already uploaded")

	// ErrInvalidFramebuffer is returned when pixel data does not match the
	// requested framebuffer size.
	ErrInvalidFramebuffer = errors.New("colorcube: invalid framebuffer")
)
