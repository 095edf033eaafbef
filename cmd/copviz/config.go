package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the recognized YAML options. Flags that were set
// explicitly on the command line win over file values.
//
//	hot_targets: [35, 65]
//	ambient_range: {min: -35, max: 15, points: 100}
//	synthetic_count: 1200
//	seed: 42
type fileConfig struct {
	HotTargets   []float64 `yaml:"hot_targets"`
	AmbientRange struct {
		Min    float64 `yaml:"min"`
		Max    float64 `yaml:"max"`
		Points int     `yaml:"points"`
	} `yaml:"ambient_range"`
	SyntheticCount int `yaml:"synthetic_count"`
	// pointer so an absent key is distinguishable from seed 0
	Seed *int64 `yaml:"seed"`
}

func loadConfig(path string) (*fileConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &fc, nil
}
