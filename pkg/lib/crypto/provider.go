package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"
)

// ============================================================================
//                              原语接口定义
// ============================================================================

// publicKeyImpl 算法相关的公钥原语
type publicKeyImpl interface {
	// Raw 返回规范公钥字节（副本）
	Raw() []byte

	// Verify 验证签名，签名长度已由调用方检查
	Verify(data, sig []byte) bool
}

// privateKeyImpl 算法相关的私钥原语
type privateKeyImpl interface {
	// Raw 返回规范私钥字节（副本）
	Raw() []byte

	// Public 派生对应的公钥
	Public() publicKeyImpl

	// Sign 签名数据，对合法私钥总是成功
	Sign(data []byte) []byte

	// Zero 尽力清除内存中的秘密
	Zero()
}

// provider 单个算法的能力集
type provider interface {
	// UnmarshalPublic 校验并解析原始公钥
	UnmarshalPublic(data []byte) (publicKeyImpl, error)

	// UnmarshalPrivate 校验并解析原始私钥
	UnmarshalPrivate(data []byte) (privateKeyImpl, error)

	// Generate 从随机源生成私钥
	//
	// 对同一字节流必须产生相同的密钥（确定性派生依赖此性质）。
	Generate(src io.Reader) (privateKeyImpl, error)

	// SignatureSize 该算法签名的固定长度
	SignatureSize() int
}

// ============================================================================
//                              能力表
// ============================================================================

// providers 算法 → 原语实现
var providers = map[Algorithm]provider{
	Ed25519:   ed25519Provider{},
	Secp256k1: secp256k1Provider{},
	BlsNormal: blsProvider[blsG1]{publicKeySize: BlsNormalPublicKeySize, signatureSize: BlsNormalSignatureSize},
	BlsSmall:  blsProvider[blsG2]{publicKeySize: BlsSmallPublicKeySize, signatureSize: BlsSmallSignatureSize},
}

// providerFor 查找算法的原语实现
func providerFor(alg Algorithm) (provider, error) {
	p, ok := providers[alg]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint8(alg))
	}
	return p, nil
}

// mustProvider 用于已通过构造校验的算法
func mustProvider(alg Algorithm) provider {
	p, err := providerFor(alg)
	if err != nil {
		panic(err)
	}
	return p
}

// generateRandom 使用系统随机源生成私钥
//
// 随机源不可用属于不可恢复的致命条件。
func generateRandom(alg Algorithm) (privateKeyImpl, error) {
	p, err := providerFor(alg)
	if err != nil {
		return nil, err
	}
	k, err := p.Generate(rand.Reader)
	if err != nil {
		panic(fmt.Sprintf("crypto: system randomness unavailable: %v", err))
	}
	return k, nil
}

// rawEqual 常量时间比较两个原语的字节
func rawEqual(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
