package config

import (
	"fmt"

	"github.com/dep2p/go-iroha-crypto/internal/util/logger"
)

// LogConfig 日志配置
type LogConfig struct {
	// Level 日志级别，语法同 IROHA_CRYPTO_LOG_LEVEL
	// 示例: "warn", "crypto=debug,info"
	// 为空时沿用环境变量
	Level string `json:"level,omitempty"`

	// Format 日志格式: "text" 或 "json"
	Format string `json:"format"`
}

// DefaultLogConfig 返回默认日志配置
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:  "",
		Format: "text",
	}
}

// Validate 验证日志配置
func (c LogConfig) Validate() error {
	if err := logger.ValidateLevelSpec(c.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if _, err := logger.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("log.format: %w", err)
	}
	return nil
}

// Apply 将配置应用到日志系统
func (c LogConfig) Apply() error {
	return logger.Apply(c.Level, c.Format)
}

// WithLevel 设置日志级别
func (c LogConfig) WithLevel(level string) LogConfig {
	c.Level = level
	return c
}

// WithFormat 设置日志格式
func (c LogConfig) WithFormat(format string) LogConfig {
	c.Format = format
	return c
}
