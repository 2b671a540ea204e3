package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/S3b4sB0t3r0/evg-server/internal/infra/consts"
)

type Loader struct {
	env        string
	configPath string
	bizConfig  any // project-supplied pointer filled from the biz_config subtree
}

func NewLoader(env string, configPath string) *Loader {
	if env == "" {
		env = consts.ENV_DEVELOPMENT
	}
	if configPath == "" {
		configPath = consts.DEFAULT_CONFIG_PATH
	}
	return &Loader{env: env, configPath: configPath}
}

// SetBizConfig injects the project's own config struct pointer
// (e.g. &MyBizConfig{}). Must be called before LoadConfig.
func (l *Loader) SetBizConfig(b any) {
	if b == nil {
		return
	}
	if reflect.TypeOf(b).Kind() != reflect.Ptr {
		panic("SetBizConfig expects a pointer, e.g. &MyBizConfig{}")
	}
	l.bizConfig = b
}

// LoadConfig parses the whole AppConfig, then re-decodes the biz_config
// subtree into the project pointer so its defaults survive partial files.
func (l *Loader) LoadConfig() (*AppConfig, error) {
	data, err := os.ReadFile(l.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	ext := strings.ToLower(filepath.Ext(l.configPath))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", ext)
	}

	if l.bizConfig != nil && cfg.BizConfig != nil {
		if err := l.decodeBizSection(ext, cfg.BizConfig, l.bizConfig); err != nil {
			return nil, fmt.Errorf("decode biz_config failed: %w", err)
		}
		cfg.BizConfig = l.bizConfig
	} else if l.bizConfig != nil {
		// no biz_config in the file; keep project defaults
		cfg.BizConfig = l.bizConfig
	}
	return &cfg, nil
}

// decodeBizSection round-trips the already-parsed subtree into the project
// pointer. yaml.v3 would otherwise replace the pointer with a map.
func (l *Loader) decodeBizSection(ext string, raw any, target any) error {
	var (
		b   []byte
		err error
	)
	switch ext {
	case ".yaml", ".yml":
		b, err = yaml.Marshal(raw)
	case ".json":
		b, err = json.Marshal(raw)
	default:
		return fmt.Errorf("unsupported format: %s", ext)
	}
	if err != nil {
		return fmt.Errorf("re-marshal biz_config failed: %w", err)
	}
	switch ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, target)
	case ".json":
		err = json.Unmarshal(b, target)
	}
	if err != nil {
		return fmt.Errorf("unmarshal biz_config into target failed: %w", err)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
