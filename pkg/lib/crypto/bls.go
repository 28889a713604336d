package crypto

import (
	"fmt"
	"io"

	"github.com/cloudflare/circl/sign/bls"
)

// BLS12-381 密钥常量
const (
	// BlsPrivateKeySize BLS 私钥大小（32 字节标量）
	BlsPrivateKeySize = 32
	// BlsNormalPublicKeySize BlsNormal 公钥大小（G1 压缩点，48 字节）
	BlsNormalPublicKeySize = 48
	// BlsNormalSignatureSize BlsNormal 签名大小（G2 压缩点，96 字节）
	BlsNormalSignatureSize = 96
	// BlsSmallPublicKeySize BlsSmall 公钥大小（G2 压缩点，96 字节）
	BlsSmallPublicKeySize = 96
	// BlsSmallSignatureSize BlsSmall 签名大小（G1 压缩点，48 字节）
	BlsSmallSignatureSize = 48

	// blsIKMSize KeyGen 输入密钥材料长度
	blsIKMSize = 32

	// blsInfinityFlag 压缩点编码首字节中的无穷远点标志
	blsInfinityFlag = 0x40
)

// 公钥所在的群
type (
	blsG1 = bls.KeyG1SigG2
	blsG2 = bls.KeyG2SigG1
)

// ============================================================================
//                              blsPublicKey
// ============================================================================

type blsPublicKey[K bls.KeyGroup] struct {
	k *bls.PublicKey[K]
}

// Raw 返回压缩点编码
func (k *blsPublicKey[K]) Raw() []byte {
	b, err := k.k.MarshalBinary()
	if err != nil {
		// 已校验的点编码不会失败
		panic(fmt.Sprintf("crypto: bls public key encoding: %v", err))
	}
	return b
}

// Verify 验证签名
func (k *blsPublicKey[K]) Verify(data, sig []byte) bool {
	return bls.Verify(k.k, data, sig)
}

// ============================================================================
//                              blsPrivateKey
// ============================================================================

type blsPrivateKey[K bls.KeyGroup] struct {
	k *bls.PrivateKey[K]
}

// Raw 返回 32 字节标量
func (k *blsPrivateKey[K]) Raw() []byte {
	b, err := k.k.MarshalBinary()
	if err != nil {
		panic(fmt.Sprintf("crypto: bls private key encoding: %v", err))
	}
	return b
}

// Public 派生公钥
func (k *blsPrivateKey[K]) Public() publicKeyImpl {
	return &blsPublicKey[K]{k: k.k.PublicKey()}
}

// Sign 签名数据
func (k *blsPrivateKey[K]) Sign(data []byte) []byte {
	return bls.Sign(k.k, data)
}

// Zero 释放标量引用
//
// circl 不提供原地清零接口，只能丢弃引用。
func (k *blsPrivateKey[K]) Zero() {
	k.k = nil
}

// ============================================================================
//                              blsProvider
// ============================================================================

type blsProvider[K bls.KeyGroup] struct {
	publicKeySize int
	signatureSize int
}

// UnmarshalPublic 解析压缩点，要求点在子群中且不是单位元
func (p blsProvider[K]) UnmarshalPublic(data []byte) (publicKeyImpl, error) {
	if len(data) != p.publicKeySize {
		return nil, fmt.Errorf("%w: bls public key: expected %d bytes, got %d",
			ErrInvalidKeyPayload, p.publicKeySize, len(data))
	}
	if data[0]&blsInfinityFlag != 0 {
		return nil, fmt.Errorf("%w: bls public key: identity point", ErrInvalidKeyPayload)
	}

	pub := new(bls.PublicKey[K])
	if err := pub.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("%w: bls public key: %v", ErrInvalidKeyPayload, err)
	}
	if !pub.Validate() {
		return nil, fmt.Errorf("%w: bls public key: point not in subgroup", ErrInvalidKeyPayload)
	}
	return &blsPublicKey[K]{k: pub}, nil
}

// UnmarshalPrivate 解析 32 字节标量，要求非零且小于群阶
func (p blsProvider[K]) UnmarshalPrivate(data []byte) (privateKeyImpl, error) {
	if len(data) != BlsPrivateKeySize {
		return nil, fmt.Errorf("%w: bls private key: expected %d bytes, got %d",
			ErrInvalidKeyPayload, BlsPrivateKeySize, len(data))
	}

	priv := new(bls.PrivateKey[K])
	if err := priv.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("%w: bls private key: %v", ErrInvalidKeyPayload, err)
	}
	if !priv.Validate() {
		return nil, fmt.Errorf("%w: bls private key: scalar out of range", ErrInvalidKeyPayload)
	}
	return &blsPrivateKey[K]{k: priv}, nil
}

// Generate 读取 32 字节作为 IKM，执行 IETF KeyGen
func (p blsProvider[K]) Generate(src io.Reader) (privateKeyImpl, error) {
	ikm := make([]byte, blsIKMSize)
	defer wipe(ikm)

	if _, err := io.ReadFull(src, ikm); err != nil {
		return nil, err
	}
	priv, err := bls.KeyGen[K](ikm, nil, nil)
	if err != nil {
		return nil, err
	}
	return &blsPrivateKey[K]{k: priv}, nil
}

// SignatureSize 签名长度
func (p blsProvider[K]) SignatureSize() int {
	return p.signatureSize
}
