package crypto

import "runtime"

// ============================================================================
//                              显式暴露的私钥
// ============================================================================

// ExposedPrivateKey 可序列化秘密的私钥视图
//
// 只能通过 (*PrivateKey).Expose 获得。类型名本身标记了秘密即将离开进程内存，
// 便于代码审查时定位所有序列化私钥的位置。
type ExposedPrivateKey struct {
	key *PrivateKey
}

// Expose 返回可序列化秘密的视图
func (k *PrivateKey) Expose() ExposedPrivateKey {
	return ExposedPrivateKey{key: k}
}

// PrivateKey 返回底层私钥
func (e ExposedPrivateKey) PrivateKey() *PrivateKey {
	return e.key
}

// Multihash 返回包含秘密的完整 multihash
func (e ExposedPrivateKey) Multihash() string {
	defer runtime.KeepAlive(e.key)

	raw := e.key.inner.Raw()
	defer wipe(raw)

	code, _ := codeFor(e.key.algorithm, KindPrivate)
	return encodeMultihash(code, raw)
}

// PayloadHex 返回小写十六进制秘密负载
func (e ExposedPrivateKey) PayloadHex() string {
	return e.key.PayloadHex()
}

// String 返回完整 multihash
func (e ExposedPrivateKey) String() string {
	return e.Multihash()
}

// MarshalText 实现 encoding.TextMarshaler
func (e ExposedPrivateKey) MarshalText() ([]byte, error) {
	return []byte(e.Multihash()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler
func (e *ExposedPrivateKey) UnmarshalText(text []byte) error {
	k, err := PrivateKeyFromMultihash(string(text))
	if err != nil {
		return err
	}
	e.key = k
	return nil
}
