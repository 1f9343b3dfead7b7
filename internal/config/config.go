package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Env        string
	Output     OutputConfig
	Grid       GridConfig
	Privacy    PrivacyConfig
	Map        MapConfig
	Server     ServerConfig
	Monitoring MonitoringConfig
}

type OutputConfig struct {
	HTMLPath    string
	GeoJSONPath string
}

type GridConfig struct {
	SizeMeters       int
	Capacity         int
	GeohashPrecision int
}

type PrivacyConfig struct {
	JitterDegrees float64
	Seed          int64
}

type MapConfig struct {
	MinZoom     int
	MaxZoom     int
	Colormap    string
	ColormapMax float64
	FitBounds   bool
}

type ServerConfig struct {
	Host string
	Port string
}

type MonitoringConfig struct {
	LogLevel string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := &Config{
		Env: getEnv("ENV", "development"),
		Output: OutputConfig{
			HTMLPath:    getEnv("HEATMAP_OUTPUT", "heatmap.html"),
			GeoJSONPath: getEnv("HEATMAP_GEOJSON", ""),
		},
		Grid: GridConfig{
			SizeMeters:       getEnvAsInt("HEATMAP_GRID_SIZE_METERS", 500),
			Capacity:         getEnvAsInt("HEATMAP_GRID_CAPACITY", 10),
			GeohashPrecision: getEnvAsInt("HEATMAP_GEOHASH_PRECISION", 0),
		},
		Privacy: PrivacyConfig{
			JitterDegrees: getEnvAsFloat("HEATMAP_JITTER_DEGREES", 0.001),
			Seed:          int64(getEnvAsInt("HEATMAP_SEED", 0)),
		},
		Map: MapConfig{
			MinZoom:     getEnvAsInt("HEATMAP_MIN_ZOOM", 3),
			MaxZoom:     getEnvAsInt("HEATMAP_MAX_ZOOM", 12),
			Colormap:    getEnv("HEATMAP_COLORMAP", "gist_ncar"),
			ColormapMax: getEnvAsFloat("HEATMAP_COLORMAP_MAX", 1.0),
			FitBounds:   getEnvAsBool("HEATMAP_FIT_BOUNDS", false),
		},
		Server: ServerConfig{
			Host: getEnv("HOST", "127.0.0.1"),
			Port: getEnv("PORT", "8080"),
		},
		Monitoring: MonitoringConfig{
			LogLevel: getEnv("LOG_LEVEL", "info"),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func (c *Config) ServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
