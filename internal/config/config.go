// Package config defines process configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load(ctx) layers defaults, an optional YAML file, and env vars.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// MetricsAddr configures the Prometheus listen address, e.g. ":9090".
	MetricsAddr string `koanf:"metrics_addr" validate:"required"`

	// FieldLength and FieldWidth are the pitch dimensions in meters.
	FieldLength float64 `koanf:"field_length" validate:"gt=0"`
	FieldWidth  float64 `koanf:"field_width" validate:"gt=0"`

	// GridCellsX is the surface resolution along x; the y resolution
	// follows the pitch aspect ratio.
	GridCellsX int `koanf:"grid_cells_x" validate:"gt=0"`

	// LocationTrials and VelocityTrials budget the two optimizer phases.
	LocationTrials int `koanf:"location_trials" validate:"gte=0"`
	VelocityTrials int `koanf:"velocity_trials" validate:"gte=0"`

	// SizeOfGrid is the side length in meters of the displacement search square.
	SizeOfGrid float64 `koanf:"size_of_grid" validate:"gt=0"`

	// MaxSpeed caps the velocity search in m/s.
	MaxSpeed float64 `koanf:"max_speed" validate:"gte=0"`

	// SamplerSeed seeds the stochastic search so runs are reproducible.
	SamplerSeed int64 `koanf:"sampler_seed"`

	// Parallelism bounds concurrent trial evaluation.
	Parallelism int `koanf:"parallelism" validate:"gte=1"`

	// ModelParams is the opaque parameter set forwarded to the surface model.
	ModelParams map[string]float64 `koanf:"model_params"`

	// ValueWeighted biases the built-in surface model toward the attacked goal.
	ValueWeighted bool `koanf:"value_weighted"`
}

// New creates a Config with defaults. Trial budgets follow the usual
// analysis run: 125 location trials, 30 velocity trials, a 20m search
// square and a 5 m/s speed cap.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		MetricsAddr:    ":9090",
		FieldLength:    106.0,
		FieldWidth:     68.0,
		GridCellsX:     50,
		LocationTrials: 125,
		VelocityTrials: 30,
		SizeOfGrid:     20,
		MaxSpeed:       5,
		SamplerSeed:    42,
		Parallelism:    1,
	}
}
