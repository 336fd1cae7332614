package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

//go:embed appconfig/appconfig.yaml
var defaultConfig []byte

// ErrConfigNotFound 显式指定的配置文件不存在
var ErrConfigNotFound = errors.New("configuration file not found")

// ParseConfig 解析配置内容. yaml是json的超集, 所以json格式的配置也能直接解析
func ParseConfig(byteConfig []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(byteConfig, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default 返回内置的默认配置
func Default() *Config {
	cfg, err := ParseConfig(defaultConfig)
	if err != nil {
		panic(fmt.Sprintf("内置配置解析失败: %v", err))
	}
	return cfg
}

// Load 在默认配置之上依次叠加 <name>.<ext> 和 <name>.local.<ext>.
// 文件中未出现的键保留原值, path为空时只返回默认配置
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败 %s: %w", path, err)
	}

	localPath := localVariant(path)
	local, err := os.ReadFile(localPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(local, cfg); err != nil {
			return nil, fmt.Errorf("解析配置文件失败 %s: %w", localPath, err)
		}
	case !os.IsNotExist(err):
		return nil, err
	}
	return cfg, nil
}

// Override 用命令行参数覆盖配置, 零值字段视为未设置
func (c *Config) Override(flags *Config) error {
	return mergo.Merge(c, flags, mergo.WithOverride)
}

// ResolvePaths 将相对路径转换为绝对路径
func (c *Config) ResolvePaths() error {
	if c.Log.File == "" {
		return nil
	}
	absPath, err := filepath.Abs(c.Log.File)
	if err != nil {
		return err
	}
	c.Log.File = absPath
	return nil
}

// localVariant appconfig.yaml -> appconfig.local.yaml
func localVariant(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".local" + ext
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("无效的时间间隔 %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}
