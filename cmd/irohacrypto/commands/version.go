package commands

import (
	"github.com/spf13/cobra"

	irohacrypto "github.com/dep2p/go-iroha-crypto"
)

// version: 显示版本信息
func versionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := struct {
				Version   string `json:"version"`
				GitCommit string `json:"gitCommit,omitempty"`
				BuildDate string `json:"buildDate,omitempty"`
			}{irohacrypto.Version, irohacrypto.GitCommit, irohacrypto.BuildDate}
			return a.print(cmd.OutOrStdout(), out, irohacrypto.VersionInfo())
		},
	}
}
