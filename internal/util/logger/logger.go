// Package logger 提供 go-iroha-crypto 的统一日志系统
//
// 基于标准库 log/slog，支持：
//   - 按子系统配置日志级别
//   - 环境变量配置（IROHA_CRYPTO_LOG_LEVEL, IROHA_CRYPTO_LOG_FORMAT）
//   - 运行时切换级别与格式（Apply）
//
// 使用示例:
//
//	var log = logger.Logger("crypto")
//
//	log.Debug("从种子派生密钥对", "algorithm", alg)
//
// 环境变量配置:
//
//	# 所有子系统为 warn，crypto 为 debug
//	IROHA_CRYPTO_LOG_LEVEL=crypto=debug,warn
//
//	# 使用 JSON 格式输出
//	IROHA_CRYPTO_LOG_FORMAT=json
package logger

import (
	"io"
	"log/slog"
	"sync"
)

// entry 单个子系统的 Logger 与其 Handler
type entry struct {
	logger  *slog.Logger
	handler *levelHandler
}

// registry 子系统 → entry
//
// 包级变量中的 Logger 在配置加载前就已创建，Apply 通过 registry 回溯调整它们的级别。
type registry struct {
	mu      sync.Mutex
	entries map[string]*entry
}

var subsystems = &registry{entries: make(map[string]*entry)}

// get 返回子系统的 entry，不存在时按当前配置创建
func (r *registry) get(subsystem string) *entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.entries[subsystem]; ok {
		return e
	}

	cfg := ConfigFromEnv()
	h := newLevelHandler(subsystem, cfg.LevelForSubsystem(subsystem), cfg.AddSource)
	e := &entry{logger: slog.New(h), handler: h}
	r.entries[subsystem] = e
	return e
}

// each 对每个已创建的子系统执行 fn
func (r *registry) each(fn func(subsystem string, h *levelHandler)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for name, e := range r.entries {
		fn(name, e.handler)
	}
}

// Logger 获取指定子系统的 Logger
//
// 同一子系统多次调用返回相同的实例。
func Logger(subsystem string) *slog.Logger {
	return subsystems.get(subsystem).logger
}

// SetLevel 动态设置子系统的日志级别
func SetLevel(subsystem string, level slog.Level) {
	subsystems.get(subsystem).handler.level.Set(level)
}

// SetOutput 设置日志输出目标
//
// 已创建的 Logger 同样重定向到新的 writer。nil 恢复为 stderr。
func SetOutput(w io.Writer) {
	output.set(w)
}
