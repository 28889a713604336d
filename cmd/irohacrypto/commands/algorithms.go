package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/dep2p/go-iroha-crypto/pkg/lib/crypto"
)

func algorithmsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List supported algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			algs := crypto.Algorithms()
			names := make([]string, 0, len(algs))
			for _, alg := range algs {
				names = append(names, alg.String())
			}
			return a.print(cmd.OutOrStdout(), names, strings.Join(names, "\n"))
		},
	}
}
