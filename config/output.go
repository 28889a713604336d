package config

import "fmt"

// 输出格式
const (
	OutputText = "text"
	OutputJSON = "json"
)

// OutputConfig 命令输出配置
type OutputConfig struct {
	// Format 输出格式: "text" 或 "json"
	Format string `json:"format"`
}

// DefaultOutputConfig 返回默认输出配置
func DefaultOutputConfig() OutputConfig {
	return OutputConfig{
		Format: OutputText,
	}
}

// Validate 验证输出配置
func (c OutputConfig) Validate() error {
	switch c.Format {
	case OutputText, OutputJSON:
		return nil
	default:
		return fmt.Errorf("output.format: must be %q or %q, got %q", OutputText, OutputJSON, c.Format)
	}
}

// JSON 报告是否输出 JSON
func (c OutputConfig) JSON() bool {
	return c.Format == OutputJSON
}

// WithFormat 设置输出格式
func (c OutputConfig) WithFormat(format string) OutputConfig {
	c.Format = format
	return c
}
