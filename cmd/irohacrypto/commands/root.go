package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dep2p/go-iroha-crypto/config"
	"github.com/dep2p/go-iroha-crypto/internal/util/logger"
	"github.com/dep2p/go-iroha-crypto/pkg/lib/crypto"
)

var log = logger.Logger("cmd")

// globalFlags 根命令的持久参数
type globalFlags struct {
	configFile string
	preset     string
	algorithm  string
	output     string
	logLevel   string
}

// app 子命令共享的运行时状态
type app struct {
	flags globalFlags
	cfg   *config.Config
}

// Execute 构建并运行根命令
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand 创建根命令
//
// 每次调用返回独立的命令树，便于测试。
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "irohacrypto",
		Short:         "Key, signature and hash tool using Iroha encodings",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configFile, "config", "", "JSON config file")
	pf.StringVar(&a.flags.preset, "preset", "", "config preset (verbose/quiet/machine)")
	pf.StringVarP(&a.flags.algorithm, "algorithm", "a", "", "algorithm (ed25519/secp256k1/bls_normal/bls_small)")
	pf.StringVarP(&a.flags.output, "output", "o", "", "output format (text/json)")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level spec, e.g. crypto=debug,warn")

	root.AddCommand(
		algorithmsCmd(a),
		keygenCmd(a),
		pubkeyCmd(a),
		signCmd(a),
		verifyCmd(a),
		hashCmd(a),
		versionCmd(a),
	)
	return root
}

// loadConfig 按 默认值 → 配置文件 → 预设 → 命令行 的顺序合并配置
func (a *app) loadConfig(cmd *cobra.Command) error {
	cfg := config.NewConfig()
	if a.flags.configFile != "" {
		loaded, err := config.LoadFile(a.flags.configFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if err := config.ApplyPreset(cfg, a.flags.preset); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("algorithm") {
		cfg.Crypto = cfg.Crypto.WithAlgorithm(a.flags.algorithm)
	}
	if flags.Changed("output") {
		cfg.Output = cfg.Output.WithFormat(a.flags.output)
	}
	if flags.Changed("log-level") {
		cfg.Log = cfg.Log.WithLevel(a.flags.logLevel)
	}

	if err := config.ValidateAll(cfg); err != nil {
		return err
	}
	if err := cfg.Log.Apply(); err != nil {
		return err
	}
	logger.SetOutput(cmd.ErrOrStderr())

	a.cfg = cfg
	log.Debug("配置已加载", "algorithm", cfg.Crypto.Algorithm, "output", cfg.Output.Format)
	return nil
}

// algorithm 返回配置中的默认算法
func (a *app) algorithm() crypto.Algorithm {
	// 配置已通过验证
	alg, _ := a.cfg.Crypto.ParsedAlgorithm()
	return alg
}

// print 按输出格式写出结果
//
// JSON 模式输出 v 的 JSON 编码；文本模式输出 text。
func (a *app) print(w io.Writer, v any, text string) error {
	if a.cfg.Output.JSON() {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(w, text)
	return err
}
