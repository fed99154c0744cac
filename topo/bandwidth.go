package topo

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/netsim-lab/brite-as/topo/random"
)

// bwParetoShape is the fixed shape of heavy-tailed bandwidth.
const bwParetoShape = 1.2

// BandwidthParams configures bandwidth assignment.
type BandwidthParams struct {
	Dist random.Kind
	Min  float64
	Max  float64
}

// samplerParams derives the sampler parameters for p.Dist:
//   - constant:     Min
//   - uniform:      [Min, Max)
//   - exponential:  rate 1/Min, so the mean is Min
//   - heavy-tailed: Pareto with scale Max and shape 1.2
func (p BandwidthParams) samplerParams() (random.Params, error) {
	if err := p.validate(); err != nil {
		return random.Params{}, err
	}
	switch p.Dist {
	case random.Constant:
		return random.Params{Min: p.Min}, nil
	case random.Uniform:
		return random.Params{Min: p.Min, Max: p.Max}, nil
	case random.Exponential:
		return random.Params{Rate: 1.0 / p.Min}, nil
	case random.HeavyTailed:
		return random.Params{Scale: p.Max, Shape: bwParetoShape}, nil
	default:
		return random.Params{}, &SelectorError{
			Selector: "bandwidth distribution",
			Value:    p.Dist.String(),
			Err:      &random.KindError{Kind: p.Dist},
		}
	}
}

// validate rejects parameters that would produce negative, zero-rate or
// non-finite bandwidth for p.Dist. The selector itself is checked by
// samplerParams.
func (p BandwidthParams) validate() error {
	if err := validateFinite("bandwidth.min", p.Min); err != nil {
		return err
	}
	if err := validateFinite("bandwidth.max", p.Max); err != nil {
		return err
	}
	switch p.Dist {
	case random.Constant:
		if p.Min < 0 {
			return fmt.Errorf("bandwidth.min must not be negative, got %g", p.Min)
		}
	case random.Uniform:
		if p.Min < 0 {
			return fmt.Errorf("bandwidth.min must not be negative, got %g", p.Min)
		}
		if p.Max < p.Min {
			return fmt.Errorf("bandwidth.max (%g) must not be below bandwidth.min (%g)", p.Max, p.Min)
		}
	case random.Exponential:
		if p.Min <= 0 {
			return fmt.Errorf("bandwidth.min must be positive for exponential bandwidth, got %g", p.Min)
		}
	case random.HeavyTailed:
		if p.Max <= 0 {
			return fmt.Errorf("bandwidth.max must be positive for heavy-tailed bandwidth, got %g", p.Max)
		}
	}
	return nil
}

// AssignBandwidth samples a bandwidth for every edge of g, in edge order, and
// stores it unmodified.
//
// Parameters that would yield negative bandwidth are rejected before any edge
// is read. Every edge must be AS-level. The whole edge set is checked before any value
// is written, so a mixed-level graph is rejected untouched with an
// *EdgeLevelError.
func AssignBandwidth(g *Graph, p BandwidthParams, s *random.Sampler, m *Metrics) error {
	params, err := p.samplerParams()
	if err != nil {
		return err
	}
	for _, e := range g.Edges() {
		if e.Conf == nil || e.Conf.Type != EdgeAS {
			t := EdgeType(0)
			if e.Conf != nil {
				t = e.Conf.Type
			}
			return &EdgeLevelError{EdgeID: e.ID, Type: t}
		}
	}

	dist := p.Dist.String()
	for _, e := range g.Edges() {
		bw, err := s.Sample(p.Dist, params)
		if err != nil {
			return err
		}
		e.Conf.SetBW(bw)
		m.edgeAssigned(dist, bw)
	}
	logrus.Infof("assigned %s bandwidth to %d edges", dist, g.NumEdges())
	return nil
}
