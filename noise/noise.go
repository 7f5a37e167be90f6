// SPDX-License-Identifier: MIT

package noise

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/mrfgrid/gridgraph"
)

// Sentinel errors.
var (
	ErrUnknownKind        = errors.New("noise: unknown kind")
	ErrInvalidScale       = errors.New("noise: scale must be positive and finite")
	ErrInvalidLoc         = errors.New("noise: loc must be finite")
	ErrInvalidProbability = errors.New("noise: probability must be in [0, 0.5]")
	ErrNilImage           = errors.New("noise: nil image")
)

// Kind names a noise model.
type Kind string

const (
	None       Kind = "none"
	Laplace    Kind = "laplacian"
	Gauss      Kind = "gaussian"
	SaltPepper Kind = "salt-and-pepper"
)

// ParseKind accepts the long names and the short forms L, G and SP.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return None, nil
	case "l", "laplacian", "laplace":
		return Laplace, nil
	case "g", "gaussian", "normal":
		return Gauss, nil
	case "sp", "salt-and-pepper", "salt_and_pepper":
		return SaltPepper, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Params selects a model and its parameters. Loc and Scale are used by the
// additive models, Probability by salt and pepper.
type Params struct {
	Kind        Kind
	Loc         float64
	Scale       float64
	Probability float64
}

// NewSource returns a PCG source seeded with seed.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

// Validate checks the parameters used by p.Kind.
func (p Params) Validate() error {
	switch p.Kind {
	case None, "":
		return nil
	case Laplace, Gauss:
		return checkAdditive(p.Loc, p.Scale)
	case SaltPepper:
		return checkProbability(p.Probability)
	}
	return fmt.Errorf("%w: %q", ErrUnknownKind, p.Kind)
}

// Apply corrupts im according to p. Kind None returns im unchanged.
func Apply(im *gridgraph.Image, p Params, src rand.Source) (*gridgraph.Image, error) {
	switch p.Kind {
	case None, "":
		if im == nil {
			return nil, ErrNilImage
		}
		return im, nil
	case Laplace:
		return Laplacian(im, p.Loc, p.Scale, src)
	case Gauss:
		return Gaussian(im, p.Loc, p.Scale, src)
	case SaltPepper:
		return SaltAndPepper(im, p.Probability, src)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, p.Kind)
}

// Laplacian adds Laplace(loc, scale) noise to every pixel.
func Laplacian(im *gridgraph.Image, loc, scale float64, src rand.Source) (*gridgraph.Image, error) {
	if err := checkAdditive(loc, scale); err != nil {
		return nil, err
	}
	return additive(im, distuv.Laplace{Mu: loc, Scale: scale, Src: orRandom(src)})
}

// Gaussian adds Normal(loc, scale) noise to every pixel.
func Gaussian(im *gridgraph.Image, loc, scale float64, src rand.Source) (*gridgraph.Image, error) {
	if err := checkAdditive(loc, scale); err != nil {
		return nil, err
	}
	return additive(im, distuv.Normal{Mu: loc, Sigma: scale, Src: orRandom(src)})
}

// SaltAndPepper draws u ~ U[0,1) per pixel: u < p gives 0, u > 1−p gives 255.
func SaltAndPepper(im *gridgraph.Image, probability float64, src rand.Source) (*gridgraph.Image, error) {
	if im == nil {
		return nil, ErrNilImage
	}
	if err := checkProbability(probability); err != nil {
		return nil, err
	}
	r := rand.New(orRandom(src))
	rows := im.Rows()
	for _, row := range rows {
		for x := range row {
			u := r.Float64()
			switch {
			case u < probability:
				row[x] = 0
			case u > 1-probability:
				row[x] = gridgraph.Levels - 1
			}
		}
	}
	return gridgraph.NewImage(rows)
}

type sampler interface {
	Rand() float64
}

func additive(im *gridgraph.Image, d sampler) (*gridgraph.Image, error) {
	if im == nil {
		return nil, ErrNilImage
	}
	rows := im.Rows()
	for _, row := range rows {
		for x, v := range row {
			row[x] = clip(float64(v) + d.Rand())
		}
	}
	return gridgraph.NewImage(rows)
}

func clip(v float64) int {
	return int(math.Round(math.Min(math.Max(v, 0), gridgraph.Levels-1)))
}

func checkAdditive(loc, scale float64) error {
	if math.IsNaN(loc) || math.IsInf(loc, 0) {
		return fmt.Errorf("%w: got %g", ErrInvalidLoc, loc)
	}
	return checkScale(scale)
}

func checkScale(s float64) error {
	if !(s > 0) || math.IsInf(s, 0) {
		return fmt.Errorf("%w: got %g", ErrInvalidScale, s)
	}
	return nil
}

func checkProbability(p float64) error {
	if math.IsNaN(p) || p < 0 || p > 0.5 {
		return fmt.Errorf("%w: got %g", ErrInvalidProbability, p)
	}
	return nil
}

// orRandom substitutes a randomly seeded source for nil.
func orRandom(src rand.Source) rand.Source {
	if src == nil {
		return NewSource(rand.Uint64())
	}
	return src
}
