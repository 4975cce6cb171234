// Package config assembles runtime settings from a .env file, an
// optional YAML config file, and environment variables. Environment
// variables win, then the YAML file, then built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAddr     = ":8080"
	DefaultModel    = "gemini-2.5-flash"
	DefaultTTSModel = "gemini-2.5-flash-preview-tts"

	DefaultMaxTableColumns = 10
	DefaultMaxUploadMB     = 10
)

// Settings is the resolved runtime configuration.
type Settings struct {
	APIKey          string
	Addr            string
	Model           string
	TTSModel        string
	MaxTableColumns int
	MaxUploadBytes  int64
	DebugLevel      int
}

// fileSettings mirrors the YAML config file layout. All fields are
// optional.
type fileSettings struct {
	APIKey          string `yaml:"apiKey"`
	Addr            string `yaml:"addr"`
	Model           string `yaml:"model"`
	TTSModel        string `yaml:"ttsModel"`
	MaxTableColumns int    `yaml:"maxTableColumns"`
	MaxUploadMB     int    `yaml:"maxUploadMB"`
	DebugLevel      int    `yaml:"debugLevel"`
}

// Path returns the YAML config file location under the user config dir.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "teachkit", "config.yaml"), nil
}

// Load resolves settings. A missing .env or config.yaml is not an
// error; a config.yaml that exists but does not parse is.
func Load() (*Settings, error) {
	_ = godotenv.Load()

	settings := &Settings{
		Addr:            DefaultAddr,
		Model:           DefaultModel,
		TTSModel:        DefaultTTSModel,
		MaxTableColumns: DefaultMaxTableColumns,
		MaxUploadBytes:  DefaultMaxUploadMB << 20,
	}

	if path, err := Path(); err == nil {
		if err := applyFile(settings, path); err != nil {
			return nil, err
		}
	}
	applyEnv(settings)
	return settings, nil
}

func applyFile(settings *Settings, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}

	var file fileSettings
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	if file.APIKey != "" {
		settings.APIKey = file.APIKey
	}
	if file.Addr != "" {
		settings.Addr = file.Addr
	}
	if file.Model != "" {
		settings.Model = file.Model
	}
	if file.TTSModel != "" {
		settings.TTSModel = file.TTSModel
	}
	if file.MaxTableColumns > 0 {
		settings.MaxTableColumns = file.MaxTableColumns
	}
	if file.MaxUploadMB > 0 {
		settings.MaxUploadBytes = int64(file.MaxUploadMB) << 20
	}
	if file.DebugLevel > 0 {
		settings.DebugLevel = file.DebugLevel
	}
	return nil
}

func applyEnv(settings *Settings) {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		settings.APIKey = v
	}
	if v := os.Getenv("TEACHKIT_ADDR"); v != "" {
		settings.Addr = v
	}
	if v := os.Getenv("TEACHKIT_MODEL"); v != "" {
		settings.Model = v
	}
	if v := os.Getenv("TEACHKIT_TTS_MODEL"); v != "" {
		settings.TTSModel = v
	}
	if n, ok := envInt("MAX_TABLE_COLUMNS"); ok && n > 0 {
		settings.MaxTableColumns = n
	}
	if n, ok := envInt("MAX_UPLOAD_MB"); ok && n > 0 {
		settings.MaxUploadBytes = int64(n) << 20
	}
	if n, ok := envInt("TEACHKIT_DEBUG"); ok {
		settings.DebugLevel = n
	}
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
