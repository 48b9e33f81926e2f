// Package phash computes difference-hash (dHash) fingerprints for images and
// Hamming distances between them.
//
// dHash is robust to minor resizing and recompression differences between a
// numbered export of a combo image and a later descriptively renamed copy of
// the same artwork, which exact byte-hash comparison would miss. Decode
// failures produce the invalid fingerprint instead of an error: a corrupt
// image simply has no perceptual identity and never registers as a match.
package phash

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math/bits"
	"os"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	// DefaultHashSize is the grid dimension of the fingerprint; the packed
	// hash is DefaultHashSize*DefaultHashSize bits.
	DefaultHashSize = 8
	// MaxDistance is returned for any comparison involving an invalid
	// fingerprint, guaranteeing such pairs never register as matches.
	MaxDistance = 64
	// DefaultThreshold is the largest Hamming distance still accepted as a
	// perceptual match.
	DefaultThreshold = 10
	// DefaultHighDistance is the largest Hamming distance classified as a
	// high-confidence match.
	DefaultHighDistance = 5
)

// Fingerprint is a packed 64-bit perceptual hash. The zero value is invalid.
type Fingerprint struct {
	bits  uint64
	valid bool
}

// Invalid is the fingerprint of an undecodable image.
var Invalid = Fingerprint{}

// New wraps raw hash bits into a valid Fingerprint.
func New(bits uint64) Fingerprint {
	return Fingerprint{bits: bits, valid: true}
}

// Valid reports whether the fingerprint carries perceptual identity.
func (f Fingerprint) Valid() bool { return f.valid }

// Bits returns the packed hash bits. Only meaningful when Valid.
func (f Fingerprint) Bits() uint64 { return f.bits }

// Distance returns the Hamming distance between two fingerprints, in [0, 64].
// Either side being invalid yields MaxDistance.
func Distance(a, b Fingerprint) int {
	if !a.valid || !b.valid {
		return MaxDistance
	}
	return bits.OnesCount64(a.bits ^ b.bits)
}

// Hasher computes dHash fingerprints over a fixed grid size.
type Hasher struct {
	hashSize int
}

// NewHasher constructs a Hasher. Sizes outside 1..8 (the packed hash must fit
// 64 bits) fall back to DefaultHashSize.
func NewHasher(hashSize int) *Hasher {
	if hashSize <= 0 || hashSize*hashSize > 64 {
		hashSize = DefaultHashSize
	}
	return &Hasher{hashSize: hashSize}
}

// FromImage fingerprints a decoded image: grayscale, resize to
// (hashSize+1) x hashSize with Catmull-Rom resampling, then one bit per
// left > right neighbor comparison, packed row-major.
func (h *Hasher) FromImage(img image.Image) Fingerprint {
	if img == nil {
		return Invalid
	}
	size := h.hashSize
	gray := image.NewGray(image.Rect(0, 0, size+1, size))
	draw.CatmullRom.Scale(gray, gray.Bounds(), img, img.Bounds(), draw.Src, nil)

	var packed uint64
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			packed <<= 1
			if gray.GrayAt(col, row).Y > gray.GrayAt(col+1, row).Y {
				packed |= 1
			}
		}
	}
	return Fingerprint{bits: packed, valid: true}
}

// FromReader decodes an image stream and fingerprints it. Undecodable input
// yields Invalid.
func (h *Hasher) FromReader(r io.Reader) Fingerprint {
	img, _, err := image.Decode(r)
	if err != nil {
		return Invalid
	}
	return h.FromImage(img)
}

// FromFile fingerprints an image file. Unreadable or undecodable files yield
// Invalid.
func (h *Hasher) FromFile(path string) Fingerprint {
	f, err := os.Open(path)
	if err != nil {
		return Invalid
	}
	defer f.Close()
	return h.FromReader(f)
}
