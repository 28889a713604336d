package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/dep2p/go-iroha-crypto/pkg/lib/crypto"
)

// errVerifyFailed 验证未通过时的退出错误
var errVerifyFailed = errors.New("signature rejected")

// sign: 用私钥对负载签名
func signCmd(a *app) *cobra.Command {
	var (
		privateKey string
		payload    payloadFlags
	)

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a payload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			priv, err := crypto.PrivateKeyFromMultihash(privateKey)
			if err != nil {
				return err
			}
			data, err := payload.resolve(cmd)
			if err != nil {
				return err
			}

			sig := crypto.Sign(priv, data)
			out := struct {
				Algorithm crypto.Algorithm `json:"algorithm"`
				Signature *crypto.Signature `json:"signature"`
			}{priv.Algorithm(), sig}
			return a.print(cmd.OutOrStdout(), out, sig.Hex())
		},
	}

	cmd.Flags().StringVar(&privateKey, "private-key", "", "private key multihash")
	_ = cmd.MarkFlagRequired("private-key")
	payload.register(cmd)
	return cmd
}

// verify: 用公钥验证签名
func verifyCmd(a *app) *cobra.Command {
	var (
		publicKey string
		signature string
		payload   payloadFlags
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, err := crypto.PublicKeyFromMultihash(publicKey)
			if err != nil {
				return err
			}
			sig, err := crypto.SignatureFromRawHex(signature)
			if err != nil {
				return err
			}
			data, err := payload.resolve(cmd)
			if err != nil {
				return err
			}

			result := crypto.NewVerifyResult(sig.Verify(pub, data))
			text := "ok"
			if !result.OK() {
				text = "error: " + result.Error
			}
			if err := a.print(cmd.OutOrStdout(), result, text); err != nil {
				return err
			}
			if !result.OK() {
				cmd.SilenceErrors = true
				return errVerifyFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&publicKey, "public-key", "", "public key multihash")
	cmd.Flags().StringVar(&signature, "signature", "", "signature hex")
	_ = cmd.MarkFlagRequired("public-key")
	_ = cmd.MarkFlagRequired("signature")
	payload.register(cmd)
	return cmd
}
