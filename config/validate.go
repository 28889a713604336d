package config

import "errors"

// ValidateAll 验证整个配置的有效性
//
// 这是 Config.Validate() 的别名，额外处理 nil。
func ValidateAll(c *Config) error {
	if c == nil {
		return errors.New("config is nil")
	}
	return c.Validate()
}

// ValidateAndFix 验证配置并修复可修复的问题
//
// 空的格式字段恢复为默认值，其余问题原样报告。
func ValidateAndFix(c *Config) (*Config, error) {
	if c == nil {
		return NewConfig(), nil
	}

	if c.Crypto.Algorithm == "" {
		c.Crypto.Algorithm = DefaultCryptoConfig().Algorithm
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogConfig().Format
	}
	if c.Output.Format == "" {
		c.Output.Format = DefaultOutputConfig().Format
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
