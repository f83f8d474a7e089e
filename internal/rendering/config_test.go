package rendering

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "A4", cfg.PageSize)
	assert.Equal(t, 12.7, cfg.SideMargin)
	assert.Equal(t, 28.0, cfg.TopMargin)
	assert.Equal(t, 15.0, cfg.BottomMargin)
	assert.Equal(t, 240.0, cfg.PageBreakY)
	assert.Equal(t, 6.0, cfg.InnerPad)
	assert.Equal(t, 6.0, cfg.LineHeight)
	assert.Equal(t, 4.0, cfg.BulletWidth)
	assert.Equal(t, [3]float64{0.4, 0.4, 0.2}, cfg.ColumnSplit)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_ContentWidth(t *testing.T) {
	cfg := DefaultConfig()
	assert.InDelta(t, 210-2*12.7, cfg.ContentWidth(), 1e-9)
}

func TestConfig_AcademicColumnsFillContentWidth(t *testing.T) {
	for size := range pageSizes {
		t.Run(size, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.PageSize = size

			cols := cfg.AcademicColumns()
			assert.InDelta(t, cfg.ContentWidth(), cols[0]+cols[1]+cols[2], 1e-9)
			assert.InDelta(t, cfg.ContentWidth()*0.4, cols[0], 1e-9)
			assert.InDelta(t, cfg.ContentWidth()*0.4, cols[1], 1e-9)
			assert.InDelta(t, cfg.ContentWidth()*0.2, cols[2], 1e-9)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"unknown page size", func(c *Config) { c.PageSize = "B5" }, "invalid field"},
		{"negative margin", func(c *Config) { c.SideMargin = -1 }, "invalid field"},
		{"zero line height", func(c *Config) { c.LineHeight = 0 }, "invalid field"},
		{"split not summing to one", func(c *Config) { c.ColumnSplit = [3]float64{0.5, 0.4, 0.2} }, "column split"},
		{"margins wider than page", func(c *Config) { c.SideMargin = 110 }, "no content width"},
		{"threshold below bottom margin", func(c *Config) { c.PageBreakY = 290 }, "page break threshold"},
		{"threshold above top margin", func(c *Config) { c.PageBreakY = 10 }, "page break threshold"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)

			var cfgErr *ConfigError
			assert.True(t, errors.As(err, &cfgErr))
		})
	}
}

func TestConfig_ValidateSupportedPageSizes(t *testing.T) {
	for size := range pageSizes {
		t.Run(size, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.PageSize = size
			require.NoError(t, cfg.Validate())

			_, h := cfg.PageDimensions()
			assert.Less(t, cfg.PageBreakY, h-cfg.BottomMargin)
		})
	}
}

func TestConfig_RejectsA5(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PageSize = "A5"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid field")
}

func TestConfig_WithIntroDoesNotModifyOriginal(t *testing.T) {
	cfg := DefaultConfig()
	other := cfg.WithIntro(cfg.Intro)
	other.Intro.Header = "Other"

	assert.NotEqual(t, "Other", cfg.Intro.Header)
}
