package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dep2p/go-iroha-crypto/pkg/lib/crypto"
)

// keygen: 随机生成、从种子派生或从私钥重建密钥对
func keygenCmd(a *app) *cobra.Command {
	var (
		seed       string
		seedHex    string
		privateKey string
	)

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate or derive a key pair",
		Long: `Generate a key pair.

Without flags a random key pair is generated. --seed and --seed-hex derive
a deterministic key pair; --private-key rebuilds the pair from an existing
private key multihash. The output contains the private key.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			alg := a.algorithm()
			flags := cmd.Flags()

			var (
				kp  *crypto.KeyPair
				err error
			)
			switch {
			case flags.Changed("seed"):
				kp, err = crypto.DeriveKeyPairFromSeed([]byte(seed), alg)
			case flags.Changed("seed-hex"):
				kp, err = crypto.DeriveKeyPairFromSeedHex(seedHex, alg)
			case flags.Changed("private-key"):
				var priv *crypto.PrivateKey
				priv, err = crypto.PrivateKeyFromMultihash(privateKey)
				if err == nil {
					kp = crypto.DeriveKeyPairFromPrivateKey(priv)
				}
			default:
				kp, err = crypto.RandomKeyPair(alg)
			}
			if err != nil {
				return err
			}

			exposed := kp.Expose()
			text := fmt.Sprintf("algorithm:   %s\npublic key:  %s\nprivate key: %s",
				kp.Algorithm(), kp.PublicKey().Multihash(), kp.PrivateKey().Expose().Multihash())
			return a.print(cmd.OutOrStdout(), exposed, text)
		},
	}

	cmd.Flags().StringVar(&seed, "seed", "", "derive from UTF-8 seed")
	cmd.Flags().StringVar(&seedHex, "seed-hex", "", "derive from hex seed")
	cmd.Flags().StringVar(&privateKey, "private-key", "", "rebuild from private key multihash")
	cmd.MarkFlagsMutuallyExclusive("seed", "seed-hex", "private-key")
	return cmd
}

// pubkey: 从私钥 multihash 推导公钥
func pubkeyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pubkey <private-key-multihash>",
		Short: "Derive the public key of a private key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			priv, err := crypto.PrivateKeyFromMultihash(args[0])
			if err != nil {
				return err
			}
			pub := crypto.PublicKeyFromPrivateKey(priv)

			out := struct {
				Algorithm crypto.Algorithm `json:"algorithm"`
				PublicKey *crypto.PublicKey `json:"publicKey"`
				Payload   string           `json:"payload"`
			}{pub.Algorithm(), pub, pub.PayloadHex()}
			return a.print(cmd.OutOrStdout(), out, pub.Multihash())
		},
	}
}
