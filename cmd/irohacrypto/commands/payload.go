package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dep2p/go-iroha-crypto/pkg/lib/crypto"
)

// payloadFlags 负载输入参数
type payloadFlags struct {
	hex   string
	text  string
	bytes string
}

// register 在命令上注册三选一的负载参数
func (p *payloadFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.hex, "hex", "", "payload as hex")
	cmd.Flags().StringVar(&p.text, "text", "", "payload as UTF-8 text")
	cmd.Flags().StringVar(&p.bytes, "bytes", "", `payload as structured JSON, e.g. {"t":"array","array":[1,2]}`)
	cmd.MarkFlagsMutuallyExclusive("hex", "text", "bytes")
	cmd.MarkFlagsOneRequired("hex", "text", "bytes")
}

// resolve 将给出的参数解析为原始字节
func (p *payloadFlags) resolve(cmd *cobra.Command) ([]byte, error) {
	flags := cmd.Flags()
	switch {
	case flags.Changed("hex"):
		return crypto.BytesFromHex(p.hex).Resolve()
	case flags.Changed("text"):
		return crypto.BytesFromArray([]byte(p.text)).Resolve()
	case flags.Changed("bytes"):
		var b crypto.Bytes
		if err := json.Unmarshal([]byte(p.bytes), &b); err != nil {
			return nil, err
		}
		return b.Resolve()
	default:
		return nil, fmt.Errorf("one of --hex, --text or --bytes is required")
	}
}
