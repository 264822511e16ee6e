package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/trabecula/graphbuilder"
	"github.com/katalvlaran/trabecula/volume"
)

var validate = validator.New()

// Config is the validated set of inputs a pipeline run needs before
// volume.Pad is ever called.
type Config struct {
	NX              int     `validate:"gt=0"`
	NY              int     `validate:"gt=0"`
	NZ              int     `validate:"gt=0"`
	VoxelPitch      float64 `validate:"gt=0"`
	BranchThreshold float64 `validate:"gte=0"`
	EdgeThreshold   float64 `validate:"gte=0"`
}

// Load builds a Config from its constituent parts.
func Load(nx, ny, nz int, pitch, branchThreshold, edgeThreshold float64) Config {
	return Config{
		NX:              nx,
		NY:              ny,
		NZ:              nz,
		VoxelPitch:      pitch,
		BranchThreshold: branchThreshold,
		EdgeThreshold:   edgeThreshold,
	}
}

// Extents returns the volume.Extents this config describes.
func (c Config) Extents() volume.Extents {
	return volume.Extents{NX: c.NX, NY: c.NY, NZ: c.NZ}
}

// Validate checks every field's validator tag; if any fail, it returns
// the validator's error (listing every failing field) wrapped together
// with ErrInvalidThreshold.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w: %w", err, ErrInvalidThreshold)
	}

	return nil
}

// BuildConfig adapts the validated thresholds into the graphbuilder's
// own config type, keeping graphbuilder free of a validator
// dependency it has no other use for.
func (c Config) BuildConfig() graphbuilder.BuildConfig {
	return graphbuilder.BuildConfig{BranchThreshold: c.BranchThreshold, EdgeThreshold: c.EdgeThreshold}
}
