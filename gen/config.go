package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// FeatureConfig switches the generated artifacts per entity. Every
// option is a named boolean; disabled features contribute no output
// files. The zero value disables everything.
type FeatureConfig struct {
	Controller         bool `yaml:"controller"`
	Service            bool `yaml:"service"`
	Repository         bool `yaml:"repository"`
	DTO                bool `yaml:"dto"`
	Mapper             bool `yaml:"mapper"`
	Tests              bool `yaml:"tests"`
	Swagger            bool `yaml:"swagger"`
	OpenAPI            bool `yaml:"openapi"`
	Security           bool `yaml:"security"`
	GraphQL            bool `yaml:"graphql"`
	CustomQueryMethods bool `yaml:"customQueryMethods"`
}

// ParseFeatureConfig decodes a yaml feature configuration. Unknown keys
// are rejected rather than ignored, so a misspelled feature name fails
// loudly instead of silently disabling the feature.
func ParseFeatureConfig(data []byte) (FeatureConfig, error) {
	var cfg FeatureConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return FeatureConfig{}, nil
		}
		return FeatureConfig{}, fmt.Errorf("strata: parsing feature config: %w", err)
	}
	return cfg, nil
}

// Enabled returns the enabled switchable features in rendering order.
func (c FeatureConfig) Enabled() []Feature {
	flags := map[string]bool{
		FeatureController.Name:         c.Controller,
		FeatureService.Name:            c.Service,
		FeatureRepository.Name:         c.Repository,
		FeatureDTO.Name:                c.DTO,
		FeatureMapper.Name:             c.Mapper,
		FeatureTests.Name:              c.Tests,
		FeatureSwagger.Name:            c.Swagger,
		FeatureOpenAPI.Name:            c.OpenAPI,
		FeatureSecurity.Name:           c.Security,
		FeatureGraphQL.Name:            c.GraphQL,
		FeatureCustomQueryMethods.Name: c.CustomQueryMethods,
	}
	var enabled []Feature
	for _, f := range AllFeatures {
		if flags[f.Name] {
			enabled = append(enabled, f)
		}
	}
	return enabled
}
