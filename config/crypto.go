package config

import (
	"fmt"

	"github.com/dep2p/go-iroha-crypto/pkg/lib/crypto"
)

// CryptoConfig 密码学配置
type CryptoConfig struct {
	// Algorithm 生成和派生密钥时使用的默认算法
	// 可选值: "ed25519", "secp256k1", "bls_normal", "bls_small"
	Algorithm string `json:"algorithm"`
}

// DefaultCryptoConfig 返回默认密码学配置
func DefaultCryptoConfig() CryptoConfig {
	return CryptoConfig{
		Algorithm: crypto.DefaultAlgorithm().String(),
	}
}

// Validate 验证密码学配置
func (c CryptoConfig) Validate() error {
	if _, err := crypto.ParseAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("crypto.algorithm: %w", err)
	}
	return nil
}

// ParsedAlgorithm 返回解析后的算法
func (c CryptoConfig) ParsedAlgorithm() (crypto.Algorithm, error) {
	return crypto.ParseAlgorithm(c.Algorithm)
}

// WithAlgorithm 设置默认算法
func (c CryptoConfig) WithAlgorithm(alg string) CryptoConfig {
	c.Algorithm = alg
	return c
}
