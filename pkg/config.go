package pkg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultOutput 是翻译结果的默认输出文件
const DefaultOutput = "res_output.toml"

// RunConfig 对应 --config 指定的 YAML 文件，字段名与命令行参数一致
type RunConfig struct {
	Input     string `yaml:"input"`
	Output    string `yaml:"output"`
	Sentinel  string `yaml:"sentinel"`
	Legacy    bool   `yaml:"legacy"`
	Verify    bool   `yaml:"verify"`
	Stdout    bool   `yaml:"stdout"`
	LogLevel  string `yaml:"log-level"`
	LogFormat string `yaml:"log-format"`
}

// LoadRunConfig 读取并解析 YAML 配置文件
func LoadRunConfig(filePath string) (*RunConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := &RunConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", filePath, err)
	}
	return cfg, nil
}
