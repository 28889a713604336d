package logger

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// 环境变量名称
//
// IROHA_CRYPTO_LOG_LEVEL 格式: 子系统=级别,子系统=级别,默认级别
const (
	EnvLogLevel     = "IROHA_CRYPTO_LOG_LEVEL"
	EnvLogFormat    = "IROHA_CRYPTO_LOG_FORMAT"
	EnvLogAddSource = "IROHA_CRYPTO_LOG_ADD_SOURCE"
)

// ErrInvalidLevel 无法识别的日志级别
var ErrInvalidLevel = errors.New("invalid log level")

// ErrInvalidFormat 无法识别的日志格式
var ErrInvalidFormat = errors.New("invalid log format")

// LogFormat 日志输出格式
type LogFormat int

const (
	// FormatText 文本格式（默认）
	FormatText LogFormat = iota
	// FormatJSON JSON 格式
	FormatJSON
)

// String 返回格式名称
func (f LogFormat) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "text"
}

// ParseFormat 解析格式名称，空字符串视为 text
func ParseFormat(name string) (LogFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("%w: %q", ErrInvalidFormat, name)
	}
}

// Config 日志配置
type Config struct {
	// DefaultLevel 默认日志级别
	DefaultLevel slog.Level

	// SubsystemLevels 各子系统的日志级别
	SubsystemLevels map[string]slog.Level

	// Format 输出格式
	Format LogFormat

	// AddSource 是否添加源码位置
	AddSource bool
}

// LevelForSubsystem 获取指定子系统的日志级别
func (c *Config) LevelForSubsystem(subsystem string) slog.Level {
	if level, ok := c.SubsystemLevels[subsystem]; ok {
		return level
	}
	return c.DefaultLevel
}

// configCache 当前生效的配置
var (
	configCache *Config
	configMu    sync.Mutex
)

// ConfigFromEnv 返回当前配置
//
// 首次调用时从环境变量解析；之后返回缓存，Apply 可以覆盖。
func ConfigFromEnv() *Config {
	configMu.Lock()
	defer configMu.Unlock()
	if configCache == nil {
		configCache = parseConfig()
		setFormat(configCache.Format)
	}
	return configCache
}

// parseConfig 解析环境变量配置
func parseConfig() *Config {
	cfg := defaultConfig()

	// 环境变量中的非法值忽略，保持默认
	if levelStr := os.Getenv(EnvLogLevel); levelStr != "" {
		_ = parseLevelConfig(cfg, levelStr)
	}
	if format, err := ParseFormat(os.Getenv(EnvLogFormat)); err == nil {
		cfg.Format = format
	}
	if addSourceStr := os.Getenv(EnvLogAddSource); addSourceStr != "" {
		cfg.AddSource = addSourceStr != "false" && addSourceStr != "0"
	}

	return cfg
}

// defaultConfig 默认 warn 级别，密码学库只在显式开启时输出调试日志
func defaultConfig() *Config {
	return &Config{
		DefaultLevel:    slog.LevelWarn,
		SubsystemLevels: make(map[string]slog.Level),
		Format:          FormatText,
	}
}

// parseLevelConfig 解析日志级别配置字符串
// 格式: subsystem=level,subsystem=level,defaultLevel
// 示例: crypto=debug,warn
func parseLevelConfig(cfg *Config, levelStr string) error {
	for _, part := range strings.Split(levelStr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if subsystem, levelName, ok := strings.Cut(part, "="); ok {
			level, err := ParseLevel(levelName)
			if err != nil {
				return err
			}
			cfg.SubsystemLevels[strings.TrimSpace(subsystem)] = level
			continue
		}

		level, err := ParseLevel(part)
		if err != nil {
			return err
		}
		cfg.DefaultLevel = level
	}
	return nil
}

// ParseLevel 解析日志级别名称
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLevel, name)
	}
}

// Apply 在运行时替换级别与格式配置
//
// levelSpec 使用与 IROHA_CRYPTO_LOG_LEVEL 相同的语法，空字符串保持当前级别。
// 已创建的 Logger 立即生效。
func Apply(levelSpec, format string) error {
	f, err := ParseFormat(format)
	if err != nil {
		return err
	}

	current := ConfigFromEnv()
	cfg := &Config{
		DefaultLevel:    current.DefaultLevel,
		SubsystemLevels: make(map[string]slog.Level, len(current.SubsystemLevels)),
		Format:          f,
		AddSource:       current.AddSource,
	}
	for k, v := range current.SubsystemLevels {
		cfg.SubsystemLevels[k] = v
	}
	if err := parseLevelConfig(cfg, levelSpec); err != nil {
		return err
	}

	configMu.Lock()
	configCache = cfg
	configMu.Unlock()

	setFormat(cfg.Format)
	subsystems.each(func(name string, h *levelHandler) {
		h.level.Set(cfg.LevelForSubsystem(name))
	})
	return nil
}

// ResetConfig 重置配置缓存（仅用于测试）
func ResetConfig() {
	configMu.Lock()
	configCache = nil
	configMu.Unlock()
}

// ValidateLevelSpec 检查级别配置字符串的语法
func ValidateLevelSpec(spec string) error {
	return parseLevelConfig(defaultConfig(), spec)
}
