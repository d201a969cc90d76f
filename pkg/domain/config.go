package domain

import "fmt"

// Default parameter values applied by Normalized.
const (
	DefaultK                    = 15
	DefaultNDiffusionComponents = 2
	DefaultNPCAComponents       = 15
	DefaultNumWaypoints         = 250
	DefaultEpsilon              = 1.0
)

// RunConfig is the configuration bundle for one pipeline run.
// The json tags fix the key names of the params.json document the external
// pipeline reads; the yaml/mapstructure tags let the same struct be populated
// from a pipeline config file's defaults block.
type RunConfig struct {
	StartCell            string   `json:"start_cell" yaml:"start_cell" mapstructure:"start_cell"`
	K                    int      `json:"k" yaml:"k" mapstructure:"k"`
	NDiffusionComponents int      `json:"n_diffusion_components" yaml:"n_diffusion_components" mapstructure:"n_diffusion_components"`
	NPCAComponents       int      `json:"n_pca_components" yaml:"n_pca_components" mapstructure:"n_pca_components"`
	Markers              []string `json:"markers" yaml:"markers" mapstructure:"markers"`
	Branch               bool     `json:"branch" yaml:"branch" mapstructure:"branch"`
	NumWaypoints         int      `json:"num_waypoints" yaml:"num_waypoints" mapstructure:"num_waypoints"`
	Normalize            bool     `json:"normalize" yaml:"normalize" mapstructure:"normalize"`
	Epsilon              float64  `json:"epsilon" yaml:"epsilon" mapstructure:"epsilon"`
	Verbose              bool     `json:"verbose" yaml:"verbose" mapstructure:"verbose"`
	// NumCores, when set, caps the thread count of the pipeline's numeric
	// backends. Besides the params.json key it is exported to the child
	// process as MKL/NUMEXPR/OMP thread-count environment variables.
	NumCores *int `json:"num_cores" yaml:"num_cores,omitempty" mapstructure:"num_cores"`
}

// Normalized returns a copy of the config with zero-valued numeric fields
// replaced by the pipeline defaults. The boolean flags are left as given.
func (c RunConfig) Normalized() RunConfig {
	if c.K == 0 {
		c.K = DefaultK
	}
	if c.NDiffusionComponents == 0 {
		c.NDiffusionComponents = DefaultNDiffusionComponents
	}
	if c.NPCAComponents == 0 {
		c.NPCAComponents = DefaultNPCAComponents
	}
	if c.NumWaypoints == 0 {
		c.NumWaypoints = DefaultNumWaypoints
	}
	if c.Epsilon == 0 {
		c.Epsilon = DefaultEpsilon
	}
	return c
}

// Validate rejects configs the external pipeline cannot run.
func (c RunConfig) Validate() error {
	if c.StartCell == "" {
		return fmt.Errorf("run config: start cell is required")
	}
	if c.K < 1 {
		return fmt.Errorf("run config: k must be positive, got %d", c.K)
	}
	if c.NDiffusionComponents < 1 {
		return fmt.Errorf("run config: n_diffusion_components must be positive, got %d", c.NDiffusionComponents)
	}
	if c.NPCAComponents < 1 {
		return fmt.Errorf("run config: n_pca_components must be positive, got %d", c.NPCAComponents)
	}
	if c.NumWaypoints < 1 {
		return fmt.Errorf("run config: num_waypoints must be positive, got %d", c.NumWaypoints)
	}
	if c.NumCores != nil && *c.NumCores < 1 {
		return fmt.Errorf("run config: num_cores must be positive, got %d", *c.NumCores)
	}
	return nil
}

// ComponentsList derives the zero-based diffusion component index sequence
// [0, 1, ..., n_diffusion_components-1] serialized into params.json.
func (c RunConfig) ComponentsList() []int {
	list := make([]int, c.NDiffusionComponents)
	for i := range list {
		list[i] = i
	}
	return list
}
