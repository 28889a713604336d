package crypto

import (
	"crypto/ed25519"
	"crypto/subtle"
	"fmt"
	"io"

	"filippo.io/edwards25519"
)

// Ed25519 密钥常量
const (
	// Ed25519PrivateKeySize Ed25519 私钥负载大小（32 字节种子）
	Ed25519PrivateKeySize = ed25519.SeedSize
	// Ed25519PublicKeySize Ed25519 公钥大小（32 字节）
	Ed25519PublicKeySize = ed25519.PublicKeySize
	// Ed25519SignatureSize Ed25519 签名大小（64 字节）
	Ed25519SignatureSize = ed25519.SignatureSize
)

// ============================================================================
//                              ed25519PublicKey
// ============================================================================

type ed25519PublicKey struct {
	k ed25519.PublicKey
}

// Raw 返回原始公钥字节
func (k *ed25519PublicKey) Raw() []byte {
	buf := make([]byte, len(k.k))
	copy(buf, k.k)
	return buf
}

// Verify 验证签名
func (k *ed25519PublicKey) Verify(data, sig []byte) bool {
	return ed25519.Verify(k.k, data, sig)
}

// ============================================================================
//                              ed25519PrivateKey
// ============================================================================

type ed25519PrivateKey struct {
	k ed25519.PrivateKey
}

// Raw 返回 32 字节私钥种子
//
// Go 内部的 64 字节形式（种子 + 公钥）不对外暴露，负载与 Iroha 一致。
func (k *ed25519PrivateKey) Raw() []byte {
	return k.k.Seed()
}

// Public 派生公钥
func (k *ed25519PrivateKey) Public() publicKeyImpl {
	pub := make([]byte, Ed25519PublicKeySize)
	copy(pub, k.k[ed25519.SeedSize:])
	return &ed25519PublicKey{k: pub}
}

// Sign 签名数据
func (k *ed25519PrivateKey) Sign(data []byte) []byte {
	return ed25519.Sign(k.k, data)
}

// Zero 清除私钥
func (k *ed25519PrivateKey) Zero() {
	wipe(k.k)
}

// ============================================================================
//                              ed25519Provider
// ============================================================================

type ed25519Provider struct{}

// UnmarshalPublic 解析 Ed25519 公钥
//
// 除长度外还要求能解码为曲线上的点。
func (ed25519Provider) UnmarshalPublic(data []byte) (publicKeyImpl, error) {
	if len(data) != Ed25519PublicKeySize {
		return nil, fmt.Errorf("%w: ed25519 public key: expected %d bytes, got %d",
			ErrInvalidKeyPayload, Ed25519PublicKeySize, len(data))
	}
	if _, err := new(edwards25519.Point).SetBytes(data); err != nil {
		return nil, fmt.Errorf("%w: ed25519 public key: %v", ErrInvalidKeyPayload, err)
	}

	k := make([]byte, Ed25519PublicKeySize)
	copy(k, data)
	return &ed25519PublicKey{k: k}, nil
}

// UnmarshalPrivate 解析 Ed25519 私钥
//
// 支持两种格式：
//   - 32 字节：私钥种子（规范形式）
//   - 64 字节：种子 + 公钥，公钥必须与种子派生结果一致
func (ed25519Provider) UnmarshalPrivate(data []byte) (privateKeyImpl, error) {
	switch len(data) {
	case ed25519.SeedSize:
		return &ed25519PrivateKey{k: ed25519.NewKeyFromSeed(data)}, nil

	case ed25519.PrivateKeySize:
		k := ed25519.NewKeyFromSeed(data[:ed25519.SeedSize])
		if subtle.ConstantTimeCompare(k[ed25519.SeedSize:], data[ed25519.SeedSize:]) == 0 {
			wipe(k)
			return nil, fmt.Errorf("%w: ed25519 private key: embedded public key mismatch", ErrInvalidKeyPayload)
		}
		return &ed25519PrivateKey{k: k}, nil

	default:
		return nil, fmt.Errorf("%w: ed25519 private key: expected %d or %d bytes, got %d",
			ErrInvalidKeyPayload, ed25519.SeedSize, ed25519.PrivateKeySize, len(data))
	}
}

// Generate 从随机源读取 32 字节种子生成私钥
func (ed25519Provider) Generate(src io.Reader) (privateKeyImpl, error) {
	_, priv, err := ed25519.GenerateKey(src)
	if err != nil {
		return nil, err
	}
	return &ed25519PrivateKey{k: priv}, nil
}

// SignatureSize 签名长度
func (ed25519Provider) SignatureSize() int {
	return Ed25519SignatureSize
}
