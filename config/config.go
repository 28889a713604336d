// Package config 提供统一的配置管理
//
// 本包采用混合配置模式：
//   - 主 Config 结构体嵌入所有子配置
//   - 每个子配置在独立文件中定义
//   - 支持从 JSON 加载和保存配置
//   - 支持预设配置（verbose/quiet/machine）
//
// 使用示例：
//
//	// 创建默认配置
//	cfg := config.NewConfig()
//	cfg.Crypto.Algorithm = "secp256k1"
//
//	// 从文件加载
//	cfg, err := config.LoadFile("irohacrypto.json")
//
//	// 应用预设到现有配置
//	config.ApplyPreset(cfg, "machine")
package config

import "go.uber.org/multierr"

// Config 是 irohacrypto 的完整配置结构
//
// 配置按照功能模块组织：
//   - Crypto: 默认算法
//   - Log: 日志级别与格式
//   - Output: 命令输出格式
type Config struct {
	// Crypto 密码学配置
	Crypto CryptoConfig `json:"crypto"`

	// Log 日志配置
	Log LogConfig `json:"log"`

	// Output 输出配置
	Output OutputConfig `json:"output"`
}

// NewConfig 创建默认配置
//
// 返回的配置使用所有组件的默认值，适用于大多数场景。
func NewConfig() *Config {
	return &Config{
		Crypto: DefaultCryptoConfig(),
		Log:    DefaultLogConfig(),
		Output: DefaultOutputConfig(),
	}
}

// Validate 验证配置的有效性
//
// 检查所有子配置，返回的错误合并了每个无效子配置的错误。
func (c *Config) Validate() error {
	return multierr.Combine(
		c.Crypto.Validate(),
		c.Log.Validate(),
		c.Output.Validate(),
	)
}
