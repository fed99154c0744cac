package topo

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/netsim-lab/brite-as/topo/random"
)

// ModelConfig is the YAML form of an AS model. Loaded via LoadModelConfig(path).
type ModelConfig struct {
	Seed        int64           `yaml:"seed"`
	N           int             `yaml:"n" validate:"gte=0"`
	Scale1      int             `yaml:"scale1" validate:"min=1"`
	Scale2      int             `yaml:"scale2" validate:"gte=0"`
	Placement   string          `yaml:"placement" validate:"required"`
	MaxAttempts int             `yaml:"max_attempts,omitempty" validate:"gte=0"` // 0 = default budget
	Bandwidth   BandwidthConfig `yaml:"bandwidth"`
	// Edges is supplied by the external connectivity builder; the model
	// only assigns their bandwidth.
	Edges []EdgeSpec `yaml:"edges,omitempty" validate:"dive"`
}

// BandwidthConfig holds the bandwidth distribution settings.
type BandwidthConfig struct {
	Distribution string  `yaml:"distribution" validate:"required"`
	Min          float64 `yaml:"min" validate:"gte=0"`
	Max          float64 `yaml:"max" validate:"gte=0"`
}

// EdgeSpec is one AS-level edge between node ids.
type EdgeSpec struct {
	From int `yaml:"from" validate:"gte=0"`
	To   int `yaml:"to" validate:"gte=0"`
}

// DefaultModelConfig returns the settings used when no file is given.
func DefaultModelConfig() ModelConfig {
	return ModelConfig{
		Seed:      42,
		N:         1000,
		Scale1:    1000,
		Scale2:    100,
		Placement: PlaceRandom.String(),
		Bandwidth: BandwidthConfig{
			Distribution: random.Constant.String(),
			Min:          10,
			Max:          1024,
		},
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report YAML keys rather than Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// LoadModelConfig reads and parses a YAML model file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadModelConfig(path string) (*ModelConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model config: %w", err)
	}
	return ParseModelConfig(data)
}

// ParseModelConfig decodes YAML on top of DefaultModelConfig.
func ParseModelConfig(data []byte) (*ModelConfig, error) {
	cfg := DefaultModelConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing model config: %w", err)
	}
	return &cfg, nil
}

// Validate checks field ranges, selectors and cross-field constraints.
// Selector problems are reported as *SelectorError and over-dense planes as
// *RegionTooSmallError.
func (c *ModelConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	place, bw, err := c.Params()
	if err != nil {
		return err
	}

	if place.Strategy == PlaceHeavyTailed && (c.Scale2 < 1 || c.Scale2 > c.Scale1) {
		return fmt.Errorf("scale2 must be in [1, %d] for heavy-tailed placement, got %d", c.Scale1, c.Scale2)
	}
	if capacity := place.Capacity(); c.N > capacity {
		return &RegionTooSmallError{Requested: c.N, Capacity: capacity}
	}
	return bw.validate()
}

// Params converts the string selectors into typed placement and bandwidth
// parameters.
func (c *ModelConfig) Params() (PlacementParams, BandwidthParams, error) {
	strategy, err := ParsePlacement(c.Placement)
	if err != nil {
		return PlacementParams{}, BandwidthParams{}, err
	}
	kind, err := random.ParseKind(c.Bandwidth.Distribution)
	if err != nil {
		return PlacementParams{}, BandwidthParams{}, &SelectorError{
			Selector: "bandwidth distribution",
			Value:    c.Bandwidth.Distribution,
			Err:      err,
		}
	}
	place := PlacementParams{
		Strategy:    strategy,
		N:           c.N,
		Scale1:      c.Scale1,
		Scale2:      c.Scale2,
		MaxAttempts: c.MaxAttempts,
	}
	bw := BandwidthParams{
		Dist: kind,
		Min:  c.Bandwidth.Min,
		Max:  c.Bandwidth.Max,
	}
	return place, bw, nil
}

func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}
	// Report the first failure.
	for _, e := range validationErrs {
		field := strings.TrimPrefix(e.Namespace(), "ModelConfig.")
		switch e.Tag() {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min", "gte":
			return fmt.Errorf("%s: must be at least %s, got %v", field, e.Param(), e.Value())
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
		}
	}
	return err
}

func validateFinite(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return fmt.Errorf("%s must be a finite number, got %f", name, val)
	}
	return nil
}
