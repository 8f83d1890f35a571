package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *CabinetConfiguration {
	return &CabinetConfiguration{
		ID:       "cfg-1",
		WidthMM:  600,
		HeightMM: 720,
		DepthMM:  560,
	}
}

func TestConfigurationValidate_OK(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestConfigurationValidate_MissingDimensions(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CabinetConfiguration)
		field  string
	}{
		{"zero width", func(c *CabinetConfiguration) { c.WidthMM = 0 }, "width"},
		{"negative height", func(c *CabinetConfiguration) { c.HeightMM = -10 }, "height"},
		{"zero depth", func(c *CabinetConfiguration) { c.DepthMM = 0 }, "depth"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := validConfig()
			tc.mutate(c)
			err := c.Validate()
			require.Error(t, err)
			assert.True(t, IsValidation(err))
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestMaterialConfig_ThicknessDefaults(t *testing.T) {
	var mc MaterialConfig
	assert.Equal(t, 18.0, mc.BodyThickness())
	assert.Equal(t, 18.0, mc.DoorThickness())
	assert.Equal(t, 18.0, mc.ShelfThickness())

	override := 22.0
	mc.DoorThicknessMM = &override
	assert.Equal(t, 22.0, mc.DoorThickness())
	assert.Equal(t, 18.0, mc.BodyThickness())
}
