package relay

import (
	"context"
	"fmt"
	"time"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Config is the optional YAML configuration file.
type Config struct {
	Endpoint string        `yaml:"endpoint"`
	UserID   string        `yaml:"userId"`
	Timeout  time.Duration `yaml:"timeout"`
	LogLevel string        `yaml:"logLevel"`
}

// LoadConfig reads and decodes a YAML config from any location afs supports.
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to decode config %v: %w", URL, err)
	}
	return config, nil
}
