package hash

import (
	"image"
	"sort"

	"github.com/corona10/goimagehash"
	"github.com/nfnt/resize"
	"github.com/rivo/duplo/haar"
)

// whashSize is the downscale edge length; 8x8 yields a 64-bit hash, the
// same width as the goimagehash families, so thresholds are comparable.
const whashSize = 8

// waveletHash computes a Haar wavelet hash: downscale to 8x8, run duplo's
// Haar transform, and set one bit per luma coefficient above the median.
// goimagehash has no wavelet variant of its own, so the transform is
// delegated to duplo and only the thresholding happens here.
func waveletHash(img image.Image) (*goimagehash.ImageHash, error) {
	scaled := resize.Resize(whashSize, whashSize, img, resize.Bilinear)
	matrix := haar.Transform(scaled)

	coefs := make([]float64, len(matrix.Coefs))
	for i, c := range matrix.Coefs {
		coefs[i] = c[0]
	}

	med := median(coefs)
	var bits uint64
	for i, v := range coefs {
		if i >= 64 {
			break
		}
		if v > med {
			bits |= 1 << uint(i)
		}
	}
	return goimagehash.NewImageHash(bits, goimagehash.WHash), nil
}

// median returns the middle value of xs (mean of the two middle values for
// even lengths). xs is not modified.
func median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
