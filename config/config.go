// SPDX-License-Identifier: MIT

// Package config reads the YAML run file of mrfrestore.
//
// The sections follow the layout of the classic lab configuration:
//
//	noise:                  {kind: laplacian | gaussian | salt-and-pepper | none, seed: 0}
//	laplacian_noise:        {loc: 0, scale: 10}
//	gaussian_noise:         {loc: 0, scale: 10}
//	salt_and_pepper_noise:  {probability: 0.05}
//	edge_weight:            {l: 10, s: 5}
//	algorithm:              {number_of_iterations: 1, seed: 0, stop_when_stable: false,
//	                         policy: truncate, max_flow: dinic}
//	log:                    {level: info, console: true}
//
// A seed of 0 means "seed from the clock".
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mrfgrid/energy"
	"github.com/katalvlaran/mrfgrid/expansion"
	"github.com/katalvlaran/mrfgrid/flow"
	"github.com/katalvlaran/mrfgrid/noise"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete run configuration.
type Config struct {
	Noise         Noise         `yaml:"noise"`
	Laplacian     Additive      `yaml:"laplacian_noise"`
	Gaussian      Additive      `yaml:"gaussian_noise"`
	SaltAndPepper SaltAndPepper `yaml:"salt_and_pepper_noise"`
	EdgeWeight    energy.Params `yaml:"edge_weight"`
	Algorithm     Algorithm     `yaml:"algorithm"`
	Log           Log           `yaml:"log"`
}

// Noise selects the corruption applied before restoration.
type Noise struct {
	Kind string `yaml:"kind"`
	Seed uint64 `yaml:"seed"`
}

// Additive parameterises Laplacian and Gaussian noise.
type Additive struct {
	Loc   float64 `yaml:"loc"`
	Scale float64 `yaml:"scale"`
}

// SaltAndPepper parameterises impulse noise.
type SaltAndPepper struct {
	Probability float64 `yaml:"probability"`
}

// Algorithm configures the expansion solver.
type Algorithm struct {
	Iterations     int    `yaml:"number_of_iterations"`
	Seed           int64  `yaml:"seed"`
	StopWhenStable bool   `yaml:"stop_when_stable"`
	Policy         string `yaml:"policy"`
	MaxFlow        string `yaml:"max_flow"`
}

// Log configures the CLI logger.
type Log struct {
	Level   string `yaml:"level"`
	Console bool   `yaml:"console"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Noise:         Noise{Kind: string(noise.None)},
		Laplacian:     Additive{Loc: 0, Scale: 10},
		Gaussian:      Additive{Loc: 0, Scale: 10},
		SaltAndPepper: SaltAndPepper{Probability: 0.05},
		EdgeWeight:    energy.Params{L: 10, S: 5},
		Algorithm: Algorithm{
			Iterations: 1,
			Policy:     expansion.PolicyTruncate.String(),
			MaxFlow:    flow.AlgorithmDinic.String(),
		},
		Log: Log{Level: zerolog.InfoLevel.String(), Console: true},
	}
}

// Load reads path over Default and validates the result. Keys missing from
// the file keep their default values.
func Load(path string) (Config, error) {
	c := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return c, c.Validate()
}

// Validate checks every section.
func (c Config) Validate() error {
	np, err := c.NoiseParams()
	if err == nil {
		err = np.Validate()
	}
	if err != nil {
		return fmt.Errorf("%w: noise: %w", ErrInvalidConfig, err)
	}
	if err := c.EdgeWeight.Validate(); err != nil {
		return fmt.Errorf("%w: edge_weight: %w", ErrInvalidConfig, err)
	}
	if c.Algorithm.Iterations <= 0 {
		return fmt.Errorf("%w: algorithm.number_of_iterations must be positive, got %d",
			ErrInvalidConfig, c.Algorithm.Iterations)
	}
	if _, err := expansion.ParsePolicy(c.Algorithm.Policy); err != nil {
		return fmt.Errorf("%w: algorithm.policy: %w", ErrInvalidConfig, err)
	}
	if _, err := flow.ParseAlgorithm(c.Algorithm.MaxFlow); err != nil {
		return fmt.Errorf("%w: algorithm.max_flow: %w", ErrInvalidConfig, err)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}
	return nil
}

// NoiseParams resolves the selected noise section.
func (c Config) NoiseParams() (noise.Params, error) {
	k, err := noise.ParseKind(c.Noise.Kind)
	if err != nil {
		return noise.Params{}, err
	}
	p := noise.Params{Kind: k}
	switch k {
	case noise.Laplace:
		p.Loc, p.Scale = c.Laplacian.Loc, c.Laplacian.Scale
	case noise.Gauss:
		p.Loc, p.Scale = c.Gaussian.Loc, c.Gaussian.Scale
	case noise.SaltPepper:
		p.Probability = c.SaltAndPepper.Probability
	}
	return p, nil
}

// SolverOptions translates the algorithm section into expansion options.
func (c Config) SolverOptions() ([]expansion.Option, error) {
	pol, err := expansion.ParsePolicy(c.Algorithm.Policy)
	if err != nil {
		return nil, err
	}
	algo, err := flow.ParseAlgorithm(c.Algorithm.MaxFlow)
	if err != nil {
		return nil, err
	}
	fo := flow.DefaultOptions()
	fo.Algorithm = algo

	opts := []expansion.Option{
		expansion.WithPasses(c.Algorithm.Iterations),
		expansion.WithStopWhenStable(c.Algorithm.StopWhenStable),
		expansion.WithPolicy(pol),
		expansion.WithFlowOptions(fo),
	}
	if c.Algorithm.Seed != 0 {
		opts = append(opts, expansion.WithSeed(c.Algorithm.Seed))
	}
	return opts, nil
}
