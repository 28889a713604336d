package crypto

import (
	"fmt"
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	sha256 "github.com/minio/sha256-simd"
)

// Secp256k1 密钥常量
const (
	// Secp256k1PrivateKeySize Secp256k1 私钥大小（32 字节）
	Secp256k1PrivateKeySize = secp256k1.PrivKeyBytesLen
	// Secp256k1PublicKeySize Secp256k1 压缩公钥大小（33 字节）
	Secp256k1PublicKeySize = secp256k1.PubKeyBytesLenCompressed
	// Secp256k1UncompressedPublicKeySize Secp256k1 未压缩公钥大小（65 字节）
	Secp256k1UncompressedPublicKeySize = secp256k1.PubKeyBytesLenUncompressed
	// Secp256k1SignatureSize Secp256k1 签名大小（64 字节，R || S）
	Secp256k1SignatureSize = 64
)

// ============================================================================
//                              secp256k1PublicKey
// ============================================================================

type secp256k1PublicKey struct {
	k *secp256k1.PublicKey
}

// Raw 返回压缩格式的公钥字节（33 字节）
func (k *secp256k1PublicKey) Raw() []byte {
	return k.k.SerializeCompressed()
}

// Verify 验证 R || S 格式的签名
//
// 消息先做 SHA-256，拒绝超出范围的 R、S 以及高 S 值签名。
func (k *secp256k1PublicKey) Verify(data, sig []byte) bool {
	if len(sig) != Secp256k1SignatureSize {
		return false
	}

	var r, s secp256k1.ModNScalar
	if overflow := r.SetByteSlice(sig[:32]); overflow || r.IsZero() {
		return false
	}
	if overflow := s.SetByteSlice(sig[32:]); overflow || s.IsZero() {
		return false
	}
	if s.IsOverHalfOrder() {
		return false
	}

	hash := sha256.Sum256(data)
	return ecdsa.NewSignature(&r, &s).Verify(hash[:], k.k)
}

// ============================================================================
//                              secp256k1PrivateKey
// ============================================================================

type secp256k1PrivateKey struct {
	k *secp256k1.PrivateKey
}

// Raw 返回原始私钥字节（32 字节）
func (k *secp256k1PrivateKey) Raw() []byte {
	return k.k.Serialize()
}

// Public 派生公钥
func (k *secp256k1PrivateKey) Public() publicKeyImpl {
	return &secp256k1PublicKey{k: k.k.PubKey()}
}

// Sign 签名数据
//
// RFC 6979 确定性 nonce，S 规范化为低值，返回 64 字节 R || S。
func (k *secp256k1PrivateKey) Sign(data []byte) []byte {
	hash := sha256.Sum256(data)
	// 紧凑格式首字节为恢复标识
	compact := ecdsa.SignCompact(k.k, hash[:], true)
	sig := make([]byte, Secp256k1SignatureSize)
	copy(sig, compact[1:])
	return sig
}

// Zero 清除私钥
func (k *secp256k1PrivateKey) Zero() {
	k.k.Zero()
}

// ============================================================================
//                              secp256k1Provider
// ============================================================================

type secp256k1Provider struct{}

// UnmarshalPublic 解析 Secp256k1 公钥
//
// 支持压缩格式（33 字节）和未压缩格式（65 字节），点必须在曲线上。
func (secp256k1Provider) UnmarshalPublic(data []byte) (publicKeyImpl, error) {
	switch len(data) {
	case Secp256k1PublicKeySize, Secp256k1UncompressedPublicKeySize:
	default:
		return nil, fmt.Errorf("%w: secp256k1 public key: expected %d or %d bytes, got %d",
			ErrInvalidKeyPayload, Secp256k1PublicKeySize, Secp256k1UncompressedPublicKeySize, len(data))
	}

	pub, err := secp256k1.ParsePubKey(data)
	if err != nil {
		return nil, fmt.Errorf("%w: secp256k1 public key: %v", ErrInvalidKeyPayload, err)
	}
	return &secp256k1PublicKey{k: pub}, nil
}

// UnmarshalPrivate 解析 Secp256k1 私钥
//
// 标量必须落在 [1, n-1]。
func (secp256k1Provider) UnmarshalPrivate(data []byte) (privateKeyImpl, error) {
	if len(data) != Secp256k1PrivateKeySize {
		return nil, fmt.Errorf("%w: secp256k1 private key: expected %d bytes, got %d",
			ErrInvalidKeyPayload, Secp256k1PrivateKeySize, len(data))
	}

	var d secp256k1.ModNScalar
	if overflow := d.SetByteSlice(data); overflow || d.IsZero() {
		d.Zero()
		return nil, fmt.Errorf("%w: secp256k1 private key: scalar out of range", ErrInvalidKeyPayload)
	}
	return &secp256k1PrivateKey{k: secp256k1.NewPrivateKey(&d)}, nil
}

// Generate 从随机源拒绝采样生成私钥
//
// 每次读取 32 字节，直到得到 [1, n-1] 范围内的标量。
func (secp256k1Provider) Generate(src io.Reader) (privateKeyImpl, error) {
	buf := make([]byte, Secp256k1PrivateKeySize)
	defer wipe(buf)

	for {
		if _, err := io.ReadFull(src, buf); err != nil {
			return nil, err
		}

		var d secp256k1.ModNScalar
		if overflow := d.SetByteSlice(buf); overflow || d.IsZero() {
			continue
		}
		return &secp256k1PrivateKey{k: secp256k1.NewPrivateKey(&d)}, nil
	}
}

// SignatureSize 签名长度
func (secp256k1Provider) SignatureSize() int {
	return Secp256k1SignatureSize
}
