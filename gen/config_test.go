package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFeatureConfig(t *testing.T) {
	cfg, err := ParseFeatureConfig([]byte(`
controller: true
service: true
repository: true
customQueryMethods: true
`))
	require.NoError(t, err)
	assert.True(t, cfg.Controller)
	assert.True(t, cfg.Service)
	assert.True(t, cfg.Repository)
	assert.True(t, cfg.CustomQueryMethods)
	assert.False(t, cfg.DTO)
	assert.False(t, cfg.GraphQL)
}

func TestParseFeatureConfigRejectsUnknownKeys(t *testing.T) {
	_, err := ParseFeatureConfig([]byte("controler: true\n"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "controler")
}

func TestParseFeatureConfigEmpty(t *testing.T) {
	cfg, err := ParseFeatureConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, FeatureConfig{}, cfg)
}

func TestEnabledOrder(t *testing.T) {
	cfg := FeatureConfig{Repository: true, Controller: true, GraphQL: true}
	enabled := cfg.Enabled()
	require.Len(t, enabled, 3)
	assert.Equal(t, FeatureController.Name, enabled[0].Name)
	assert.Equal(t, FeatureRepository.Name, enabled[1].Name)
	assert.Equal(t, FeatureGraphQL.Name, enabled[2].Name)
}

func TestEnabledEmpty(t *testing.T) {
	assert.Empty(t, FeatureConfig{}.Enabled())
}
