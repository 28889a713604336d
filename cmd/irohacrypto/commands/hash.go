package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dep2p/go-iroha-crypto/pkg/lib/crypto"
)

// hash: 计算负载的 Iroha 哈希
func hashCmd(a *app) *cobra.Command {
	var (
		prehashed bool
		payload   payloadFlags
	)

	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Compute the Iroha hash of a payload",
		Long: `Compute the 32-byte Blake2b-256 hash of a payload with the lowest bit
of the last byte set.

With --prehashed the payload is taken as an existing 32-byte digest; only
the low bit is applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := payload.resolve(cmd)
			if err != nil {
				return err
			}

			var h crypto.Hash
			if prehashed {
				if len(data) != crypto.HashSize {
					return fmt.Errorf("prehashed digest must be %d bytes, got %d", crypto.HashSize, len(data))
				}
				h = crypto.PrehashedHash([crypto.HashSize]byte(data))
			} else {
				h = crypto.NewHash(data)
			}

			out := struct {
				Hash crypto.Hash `json:"hash"`
			}{h}
			return a.print(cmd.OutOrStdout(), out, h.Hex())
		},
	}

	cmd.Flags().BoolVar(&prehashed, "prehashed", false, "treat payload as an existing 32-byte digest")
	payload.register(cmd)
	return cmd
}
