// Package config resolves runtime tuning from DATAPLOT_* environment variables.
package config

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"dataplot/internal/logger"
)

const EnvPrefix = "DATAPLOT"

const (
	keyLogLevel    = "log_level"
	keyJSONLogs    = "json_logs"
	keyPreviewRows = "preview_rows"
	keyChartWidth  = "chart_width"
	keyChartHeight = "chart_height"
	keySheet       = "sheet"
)

type Config struct {
	LogLevel    zerolog.Level
	JSONLogs    bool
	PreviewRows int
	// Chart raster size in inches.
	ChartWidth  float64
	ChartHeight float64
	// Sheet selects the xlsx worksheet; empty means the first one.
	Sheet string
}

func Default() Config {
	return Config{
		LogLevel:    zerolog.InfoLevel,
		PreviewRows: 5,
		ChartWidth:  6,
		ChartHeight: 4,
	}
}

func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	def := Default()
	v.SetDefault(keyLogLevel, def.LogLevel.String())
	v.SetDefault(keyJSONLogs, def.JSONLogs)
	v.SetDefault(keyPreviewRows, def.PreviewRows)
	v.SetDefault(keyChartWidth, def.ChartWidth)
	v.SetDefault(keyChartHeight, def.ChartHeight)
	v.SetDefault(keySheet, def.Sheet)

	level, err := logger.ParseLevel(v.GetString(keyLogLevel))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		LogLevel:    level,
		JSONLogs:    v.GetBool(keyJSONLogs),
		PreviewRows: v.GetInt(keyPreviewRows),
		ChartWidth:  v.GetFloat64(keyChartWidth),
		ChartHeight: v.GetFloat64(keyChartHeight),
		Sheet:       v.GetString(keySheet),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.PreviewRows <= 0 {
		return fmt.Errorf("preview rows must be positive, got %d", c.PreviewRows)
	}
	if c.ChartWidth <= 0 || c.ChartHeight <= 0 {
		return fmt.Errorf("chart size must be positive, got %gx%g", c.ChartWidth, c.ChartHeight)
	}
	return nil
}
