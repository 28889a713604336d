package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

// ============================================================================
//                              输出目标
// ============================================================================

// switchWriter 可在运行时替换目标的 io.Writer
type switchWriter struct {
	target atomic.Pointer[io.Writer]
}

var output = newSwitchWriter(os.Stderr)

func newSwitchWriter(w io.Writer) *switchWriter {
	s := &switchWriter{}
	s.set(w)
	return s
}

func (s *switchWriter) set(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	s.target.Store(&w)
}

func (s *switchWriter) Write(p []byte) (int, error) {
	return (*s.target.Load()).Write(p)
}

// ============================================================================
//                              输出格式
// ============================================================================

// activeFormat 当前输出格式，所有 Handler 共享
var activeFormat atomic.Int32

func setFormat(f LogFormat) {
	activeFormat.Store(int32(f))
}

func currentFormat() LogFormat {
	return LogFormat(activeFormat.Load())
}

// ============================================================================
//                              levelHandler
// ============================================================================

// levelHandler 带子系统级别的 slog.Handler
//
// 每种格式各持有一个编码器，按 currentFormat 选择，
// 因此提前创建的 Logger 也能跟随 Apply 切换格式。
type levelHandler struct {
	level    *slog.LevelVar
	encoders [2]slog.Handler // 按 LogFormat 索引
}

func newLevelHandler(subsystem string, level slog.Level, addSource bool) *levelHandler {
	lv := new(slog.LevelVar)
	lv.Set(level)

	opts := &slog.HandlerOptions{
		// 级别由 Enabled 控制
		Level:       slog.LevelDebug,
		AddSource:   addSource,
		ReplaceAttr: shortenAttr,
	}
	sub := []slog.Attr{slog.String("subsystem", subsystem)}

	return &levelHandler{
		level: lv,
		encoders: [2]slog.Handler{
			FormatText: slog.NewTextHandler(output, opts).WithAttrs(sub),
			FormatJSON: slog.NewJSONHandler(output, opts).WithAttrs(sub),
		},
	}
}

// shortenAttr time → ts，级别名称小写
func shortenAttr(_ []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.TimeKey:
		a.Key = "ts"
	case slog.LevelKey:
		if lvl, ok := a.Value.Any().(slog.Level); ok {
			a.Value = slog.StringValue(strings.ToLower(lvl.String()))
		}
	}
	return a
}

// derive 对每个编码器应用 fn，共享级别变量
func (h *levelHandler) derive(fn func(slog.Handler) slog.Handler) *levelHandler {
	return &levelHandler{
		level:    h.level,
		encoders: [2]slog.Handler{fn(h.encoders[FormatText]), fn(h.encoders[FormatJSON])},
	}
}

// Enabled 实现 slog.Handler
func (h *levelHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle 实现 slog.Handler
func (h *levelHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.encoders[currentFormat()].Handle(ctx, r)
}

// WithAttrs 实现 slog.Handler
func (h *levelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.derive(func(e slog.Handler) slog.Handler { return e.WithAttrs(attrs) })
}

// WithGroup 实现 slog.Handler
func (h *levelHandler) WithGroup(name string) slog.Handler {
	return h.derive(func(e slog.Handler) slog.Handler { return e.WithGroup(name) })
}
