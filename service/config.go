package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/scy/cred/secret"
	"gopkg.in/yaml.v3"

	"github.com/dugjason/split-csv/splitter"
)

// Config defines a split job plus server settings for batch and serve use.
type Config struct {
	Source          string          `yaml:"source"`
	Dest            string          `yaml:"dest"`
	BaseName        string          `yaml:"baseName"`
	MaxLinesPerFile int             `yaml:"maxLinesPerFile"`
	IncludeHeader   bool            `yaml:"includeHeader"`
	Secret          string          `yaml:"secret,omitempty"`
	MCPServer       MCPServerConfig `yaml:"mcpServer"`
}

// MCPServerConfig defines MCP server settings.
type MCPServerConfig struct {
	Addr string `yaml:"addr"`
	Port int    `yaml:"port"`
}

// Options maps the config onto split options.
func (c *Config) Options() splitter.Options {
	return splitter.Options{
		MaxLinesPerFile: c.MaxLinesPerFile,
		IncludeHeader:   c.IncludeHeader,
	}
}

// LoadConfig reads a yaml config, expanding ~ paths and, when a secret
// reference is present, credential placeholders in the destination URL.
func LoadConfig(path string) (*Config, error) {
	path, err := expandUserPath(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}
	if cfg.Source, err = expandUserPath(cfg.Source); err != nil {
		return nil, err
	}
	if cfg.Dest, err = expandUserPath(cfg.Dest); err != nil {
		return nil, err
	}
	if cfg.Secret != "" {
		if cfg.Dest, err = ExpandURLWithSecret(context.Background(), cfg.Dest, cfg.Secret); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

// ExpandURLWithSecret loads a secret and expands placeholders in the URL.
func ExpandURLWithSecret(ctx context.Context, URL, secretRef string) (string, error) {
	secretRef = strings.TrimSpace(secretRef)
	if secretRef == "" {
		return URL, nil
	}
	if strings.TrimSpace(URL) == "" {
		return "", fmt.Errorf("secret %q provided but url is empty", secretRef)
	}
	svc := secret.New()
	sec, err := svc.Lookup(ctx, secret.Resource(secretRef))
	if err != nil {
		return "", err
	}
	return sec.Expand(URL), nil
}

func expandUserPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" || trimmed[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if trimmed == "~" {
		return home, nil
	}
	if !strings.HasPrefix(trimmed, "~/") {
		return "", fmt.Errorf("config: unsupported ~user path: %s", path)
	}
	return filepath.Join(home, trimmed[2:]), nil
}
