// Package random provides the seeded distribution sampler shared by node
// placement and bandwidth assignment.
package random

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Kind selects a distribution family.
type Kind int

const (
	// Constant always yields Params.Min.
	Constant Kind = iota + 1
	// Uniform yields values in [Params.Min, Params.Max).
	Uniform
	// Exponential yields values with rate Params.Rate (mean 1/Rate).
	Exponential
	// HeavyTailed yields Pareto values with scale Params.Scale and shape Params.Shape.
	HeavyTailed
)

// ErrUnknownKind is matched by every *KindError.
var ErrUnknownKind = errors.New("random: unknown distribution kind")

// KindError reports a distribution selector outside the known families.
type KindError struct {
	Kind Kind
}

func (e *KindError) Error() string {
	return fmt.Sprintf("random: unknown distribution kind (%d)", int(e.Kind))
}

func (e *KindError) Is(target error) bool { return target == ErrUnknownKind }

var kindNames = map[Kind]string{
	Constant:    "constant",
	Uniform:     "uniform",
	Exponential: "exponential",
	HeavyTailed: "heavy-tailed",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind maps a configuration name ("constant", "uniform", "exponential",
// "heavy-tailed") to its Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w %q; valid: constant, uniform, exponential, heavy-tailed", ErrUnknownKind, name)
}

// Params holds the numeric parameters of every family. Each Kind reads only
// the fields it needs.
type Params struct {
	Min   float64
	Max   float64
	Rate  float64
	Scale float64
	Shape float64
}

// Sampler draws values from one pseudo-random stream.
//
// Thread-safety: NOT thread-safe. Every draw mutates the stream; concurrent
// generation runs must each own a Sampler.
type Sampler struct {
	src rand.Source
}

// New wraps an existing source.
func New(src rand.Source) *Sampler {
	return &Sampler{src: src}
}

// NewSeeded creates a Sampler over a PCG stream derived from seed.
func NewSeeded(seed uint64) *Sampler {
	return New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Sample draws one value of the given kind.
func (s *Sampler) Sample(kind Kind, p Params) (float64, error) {
	switch kind {
	case Constant:
		return s.Constant(p.Min), nil
	case Uniform:
		return s.Uniform(p.Min, p.Max), nil
	case Exponential:
		return s.Exponential(p.Rate), nil
	case HeavyTailed:
		return s.Pareto(p.Scale, p.Shape), nil
	default:
		return 0, &KindError{Kind: kind}
	}
}

// Constant returns min without consuming the stream.
func (s *Sampler) Constant(min float64) float64 {
	return min
}

// Uniform returns a value in [min, max). When min == max it returns min.
func (s *Sampler) Uniform(min, max float64) float64 {
	v := distuv.Uniform{Min: min, Max: max, Src: s.src}.Rand()
	// rnd*(max-min)+min can round up onto max.
	if max > min && v >= max {
		v = math.Nextafter(max, min)
	}
	return v
}

// UniformMax returns a value in [0, max).
func (s *Sampler) UniformMax(max float64) float64 {
	return s.Uniform(0, max)
}

// Exponential returns a sample with the given rate (mean 1/rate).
func (s *Sampler) Exponential(rate float64) float64 {
	return distuv.Exponential{Rate: rate, Src: s.src}.Rand()
}

// Pareto returns a sample no smaller than scale, with tail index shape.
func (s *Sampler) Pareto(scale, shape float64) float64 {
	return distuv.Pareto{Xm: scale, Alpha: shape, Src: s.src}.Rand()
}
