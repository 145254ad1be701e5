// Package hash maps image files to perceptual hashes. The hash math itself
// lives in goimagehash (phash/dhash/ahash) and duplo's haar package (whash);
// this package only decodes files and dispatches on the configured method.
package hash

import (
	"fmt"
	"image"
	"os"

	"github.com/corona10/goimagehash"

	"github.com/aziksh-ospanov/kip-dataset-scripts/internal/config"

	// Decoders for the extension allow-list. jpeg/png are stdlib; bmp, tiff
	// and webp come from golang.org/x/image.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Encoder computes one perceptual hash per image file. All hashes produced
// by a single Encoder share the same goimagehash kind, so Distance never
// fails across them.
type Encoder struct {
	method config.HashMethod
	hashFn func(image.Image) (*goimagehash.ImageHash, error)
}

// NewEncoder returns an Encoder for the given method.
func NewEncoder(method config.HashMethod) (*Encoder, error) {
	var fn func(image.Image) (*goimagehash.ImageHash, error)
	switch method {
	case config.MethodPHash:
		fn = goimagehash.PerceptionHash
	case config.MethodDHash:
		fn = goimagehash.DifferenceHash
	case config.MethodAHash:
		fn = goimagehash.AverageHash
	case config.MethodWHash:
		fn = waveletHash
	default:
		return nil, fmt.Errorf("unknown hash method %q", method)
	}
	return &Encoder{method: method, hashFn: fn}, nil
}

// Method returns the configured hash method.
func (e *Encoder) Method() config.HashMethod {
	return e.method
}

// Encode opens and decodes the image at path and returns its perceptual
// hash. Failures (unreadable file, undecodable image) are returned to the
// caller, which decides whether to skip the file.
func (e *Encoder) Encode(path string) (*goimagehash.ImageHash, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return e.hashFn(img)
}
