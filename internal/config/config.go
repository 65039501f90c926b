package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks when no explicit path is given.
const DefaultPath = "armbridge.yaml"

type Config struct {
	ListenAddr string `yaml:"listen_addr"`

	Database struct {
		DSN string `yaml:"dsn"`
	} `yaml:"database"`

	Robot struct {
		Enabled bool   `yaml:"enabled"`
		Host    string `yaml:"host"`
		Port    int    `yaml:"port"`
	} `yaml:"robot"`

	Camera struct {
		FramePath string `yaml:"frame_path"`
	} `yaml:"camera"`

	OpenAI struct {
		APIKey  string `yaml:"api_key"`
		BaseURL string `yaml:"base_url"`
		Model   string `yaml:"model"`
	} `yaml:"openai"`

	Validation bool `yaml:"validation"`
}

func defaults() Config {
	var cfg Config
	cfg.ListenAddr = ":8080"
	cfg.Robot.Enabled = true
	cfg.Robot.Host = "127.0.0.1"
	cfg.Robot.Port = 9760
	cfg.Validation = true
	return cfg
}

// Load reads the YAML file at path, falling back to defaults when the file
// is absent, then applies environment overrides. A missing file is not an
// error so the server can start from env alone.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.ListenAddr, "ARMBRIDGE_LISTEN_ADDR")
	setString(&cfg.Database.DSN, "ARMBRIDGE_DB_DSN")
	setBool(&cfg.Robot.Enabled, "ARMBRIDGE_ROBOT_ENABLED")
	setString(&cfg.Robot.Host, "ARMBRIDGE_ROBOT_HOST")
	setInt(&cfg.Robot.Port, "ARMBRIDGE_ROBOT_PORT")
	setString(&cfg.Camera.FramePath, "ARMBRIDGE_FRAME_PATH")
	setString(&cfg.OpenAI.APIKey, "OPENAI_API_KEY")
	setString(&cfg.OpenAI.BaseURL, "ARMBRIDGE_OPENAI_BASE_URL")
	setString(&cfg.OpenAI.Model, "ARMBRIDGE_OPENAI_MODEL")
	setBool(&cfg.Validation, "ARMBRIDGE_VALIDATION")
}

func setString(target *string, key string) {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		*target = strings.TrimSpace(v)
	}
}

func setInt(target *int, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			*target = n
		}
	}
}

func setBool(target *bool, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			*target = b
		}
	}
}
