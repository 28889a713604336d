package crypto

import (
	"fmt"
	"log/slog"
	"runtime"
	"strings"
)

// ============================================================================
//                              PublicKey
// ============================================================================

// PublicKey 公钥
//
// (算法, 负载) 对，构造后不可变。以指针共享，复制句柄不会复制负载。
type PublicKey struct {
	algorithm Algorithm
	inner     publicKeyImpl
}

// PublicKeyFromMultihash 从 multihash 字符串解析公钥
func PublicKeyFromMultihash(s string) (*PublicKey, error) {
	alg, payload, err := decodeMultihashKind(s, KindPublic)
	if err != nil {
		return nil, err
	}
	return PublicKeyFromRaw(alg, payload)
}

// PublicKeyFromRaw 从原始字节和算法构造公钥
//
// 负载由算法的原语实现校验（长度、曲线点），格式错误返回 ErrInvalidKeyPayload。
func PublicKeyFromRaw(alg Algorithm, payload []byte) (*PublicKey, error) {
	p, err := providerFor(alg)
	if err != nil {
		return nil, err
	}
	inner, err := p.UnmarshalPublic(payload)
	if err != nil {
		return nil, err
	}
	return &PublicKey{algorithm: alg, inner: inner}, nil
}

// PublicKeyFromRawHex 从十六进制负载构造公钥
func PublicKeyFromRawHex(alg Algorithm, hex string) (*PublicKey, error) {
	payload, err := DecodeHex(hex)
	if err != nil {
		return nil, err
	}
	return PublicKeyFromRaw(alg, payload)
}

// PublicKeyFromPrivateKey 从私钥派生公钥
func PublicKeyFromPrivateKey(key *PrivateKey) *PublicKey {
	defer runtime.KeepAlive(key)
	return &PublicKey{algorithm: key.algorithm, inner: key.inner.Public()}
}

// Algorithm 返回算法
func (k *PublicKey) Algorithm() Algorithm {
	return k.algorithm
}

// Payload 返回原始负载（副本）
func (k *PublicKey) Payload() []byte {
	return k.inner.Raw()
}

// PayloadHex 返回小写十六进制负载
func (k *PublicKey) PayloadHex() string {
	return EncodeHex(k.inner.Raw())
}

// Multihash 返回规范 multihash 编码
func (k *PublicKey) Multihash() string {
	code, _ := codeFor(k.algorithm, KindPublic)
	return encodeMultihash(code, k.inner.Raw())
}

// String 返回 multihash 编码
func (k *PublicKey) String() string {
	return k.Multihash()
}

// Equals 比较算法与负载
//
// 使用常量时间比较。
func (k *PublicKey) Equals(other *PublicKey) bool {
	if k == nil || other == nil {
		return k == other
	}
	if k.algorithm != other.algorithm {
		return false
	}
	return rawEqual(k.inner.Raw(), other.inner.Raw())
}

// Verify 用此公钥验证签名
func (k *PublicKey) Verify(sig *Signature, payload []byte) error {
	return sig.Verify(k, payload)
}

// MarshalText 实现 encoding.TextMarshaler，输出 multihash
func (k *PublicKey) MarshalText() ([]byte, error) {
	return []byte(k.Multihash()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler
func (k *PublicKey) UnmarshalText(text []byte) error {
	parsed, err := PublicKeyFromMultihash(string(text))
	if err != nil {
		return err
	}
	*k = *parsed
	return nil
}

// ============================================================================
//                              PrivateKey
// ============================================================================

// redactedPrivateKey 私钥的日志/打印形式
const redactedPrivateKey = "[REDACTED PrivateKey]"

// PrivateKey 私钥
//
// 以指针共享；最后一个持有者释放后由终结器尽力清除秘密。
// String、GoString、LogValue 和 Multihash 均不输出秘密，
// 需要序列化秘密时必须显式调用 Expose。
type PrivateKey struct {
	algorithm Algorithm
	inner     privateKeyImpl
}

// newPrivateKey 包装私钥原语并注册清除
func newPrivateKey(alg Algorithm, inner privateKeyImpl) *PrivateKey {
	k := &PrivateKey{algorithm: alg, inner: inner}
	runtime.SetFinalizer(k, (*PrivateKey).release)
	return k
}

// release 清除私钥原语
func (k *PrivateKey) release() {
	if k.inner != nil {
		k.inner.Zero()
	}
}

// PrivateKeyFromMultihash 从 multihash 字符串解析私钥
func PrivateKeyFromMultihash(s string) (*PrivateKey, error) {
	alg, payload, err := decodeMultihashKind(s, KindPrivate)
	if err != nil {
		return nil, err
	}
	defer wipe(payload)
	return PrivateKeyFromRaw(alg, payload)
}

// PrivateKeyFromRaw 从原始字节和算法构造私钥
func PrivateKeyFromRaw(alg Algorithm, payload []byte) (*PrivateKey, error) {
	p, err := providerFor(alg)
	if err != nil {
		return nil, err
	}
	inner, err := p.UnmarshalPrivate(payload)
	if err != nil {
		return nil, err
	}
	return newPrivateKey(alg, inner), nil
}

// PrivateKeyFromRawHex 从十六进制负载构造私钥
func PrivateKeyFromRawHex(alg Algorithm, hex string) (*PrivateKey, error) {
	payload, err := DecodeHex(hex)
	if err != nil {
		return nil, err
	}
	defer wipe(payload)
	return PrivateKeyFromRaw(alg, payload)
}

// Algorithm 返回算法
func (k *PrivateKey) Algorithm() Algorithm {
	return k.algorithm
}

// Payload 返回原始秘密负载（副本）
func (k *PrivateKey) Payload() []byte {
	defer runtime.KeepAlive(k)
	return k.inner.Raw()
}

// PayloadHex 返回小写十六进制秘密负载
func (k *PrivateKey) PayloadHex() string {
	raw := k.Payload()
	defer wipe(raw)
	return EncodeHex(raw)
}

// Multihash 返回遮蔽后的 multihash
//
// 保留真实的编码头（算法与长度），负载替换为 '*'。
// 完整编码见 Expose().Multihash()。
func (k *PrivateKey) Multihash() string {
	raw := k.Payload()
	n := len(raw)
	wipe(raw)

	code, _ := codeFor(k.algorithm, KindPrivate)
	return multihashHeader(code, n) + strings.Repeat("*", 2*n)
}

// String 实现 fmt.Stringer，不输出秘密
func (k *PrivateKey) String() string {
	return redactedPrivateKey
}

// GoString 实现 fmt.GoStringer，不输出秘密
func (k *PrivateKey) GoString() string {
	return fmt.Sprintf("crypto.PrivateKey{algorithm: %s, payload: %s}", k.algorithm, redactedPrivateKey)
}

// LogValue 实现 slog.LogValuer，不输出秘密
func (k *PrivateKey) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("algorithm", k.algorithm.String()),
		slog.String("payload", redactedPrivateKey),
	)
}

// Equals 比较算法与负载
//
// 使用常量时间比较。
func (k *PrivateKey) Equals(other *PrivateKey) bool {
	if k == nil || other == nil {
		return k == other
	}
	if k.algorithm != other.algorithm {
		return false
	}
	a, b := k.Payload(), other.Payload()
	defer wipe(a)
	defer wipe(b)
	return rawEqual(a, b)
}

// Sign 用此私钥签名
func (k *PrivateKey) Sign(payload []byte) *Signature {
	return Sign(k, payload)
}
