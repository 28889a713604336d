package crypto

import (
	"encoding/json"
	"fmt"
	"runtime"
)

// ============================================================================
//                              Signature
// ============================================================================

// Signature 签名
//
// 只保存签名字节，不记录算法；验证时由公钥决定算法。构造后不可变。
type Signature struct {
	payload []byte
}

// SignatureFromRaw 从原始字节构造签名
//
// 只复制字节，不做校验；有效性在验证时检查。
func SignatureFromRaw(b []byte) *Signature {
	payload := make([]byte, len(b))
	copy(payload, b)
	return &Signature{payload: payload}
}

// SignatureFromRawHex 从十六进制字符串构造签名
func SignatureFromRawHex(s string) (*Signature, error) {
	b, err := DecodeHex(s)
	if err != nil {
		return nil, err
	}
	return &Signature{payload: b}, nil
}

// Sign 使用私钥签名数据
//
// 签名算法即私钥的算法，对有效私钥总是成功。
func Sign(key *PrivateKey, payload []byte) *Signature {
	defer runtime.KeepAlive(key)
	return &Signature{payload: key.inner.Sign(payload)}
}

// SignHex 对十六进制数据签名
func SignHex(key *PrivateKey, payloadHex string) (*Signature, error) {
	payload, err := DecodeHex(payloadHex)
	if err != nil {
		return nil, err
	}
	return Sign(key, payload), nil
}

// Verify 使用公钥验证签名
//
// 签名长度不属于公钥算法时返回 ErrAlgorithmMismatch，不进入验证计算；
// 签名与公钥和数据不匹配时返回 ErrVerificationFailed。
// 公钥为 nil 时返回 ErrInvalidKeyPayload，签名为 nil 时返回 ErrVerificationFailed。
func (s *Signature) Verify(key *PublicKey, payload []byte) error {
	if key == nil {
		return fmt.Errorf("%w: nil public key", ErrInvalidKeyPayload)
	}
	if s == nil {
		return fmt.Errorf("%w: nil signature", ErrVerificationFailed)
	}
	p := mustProvider(key.algorithm)
	if len(s.payload) != p.SignatureSize() {
		return fmt.Errorf("%w: %s signature must be %d bytes, got %d",
			ErrAlgorithmMismatch, key.algorithm, p.SignatureSize(), len(s.payload))
	}

	if !key.inner.Verify(payload, s.payload) {
		log.Debug("签名验证失败", "algorithm", key.algorithm)
		return fmt.Errorf("%w: %s", ErrVerificationFailed, key.algorithm)
	}
	return nil
}

// VerifyHex 验证十六进制数据的签名
func (s *Signature) VerifyHex(key *PublicKey, payloadHex string) error {
	payload, err := DecodeHex(payloadHex)
	if err != nil {
		return err
	}
	return s.Verify(key, payload)
}

// Payload 返回签名字节（副本）
func (s *Signature) Payload() []byte {
	out := make([]byte, len(s.payload))
	copy(out, s.payload)
	return out
}

// Hex 返回小写十六进制签名
func (s *Signature) Hex() string {
	return EncodeHex(s.payload)
}

// String 返回小写十六进制签名
func (s *Signature) String() string {
	return s.Hex()
}

// MarshalText 实现 encoding.TextMarshaler
func (s *Signature) MarshalText() ([]byte, error) {
	return []byte(s.Hex()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler
func (s *Signature) UnmarshalText(text []byte) error {
	b, err := DecodeHex(string(text))
	if err != nil {
		return err
	}
	s.payload = b
	return nil
}

// ============================================================================
//                              验证结果
// ============================================================================

// 验证结果判别值
const (
	verifyTagOK  = "ok"
	verifyTagErr = "err"
)

// VerifyResult 跨边界传递的验证结果
//
// JSON 形式：
//
//	{"t":"ok"}
//	{"t":"err","error":"signature verification failed: ed25519","kind":"VerificationFailed"}
type VerifyResult struct {
	T     string    `json:"t"`
	Error string    `json:"error,omitempty"`
	Kind  ErrorKind `json:"kind,omitempty"`
}

// NewVerifyResult 由验证错误构造结果
func NewVerifyResult(err error) VerifyResult {
	if err == nil {
		return VerifyResult{T: verifyTagOK}
	}
	return VerifyResult{T: verifyTagErr, Error: err.Error(), Kind: KindOf(err)}
}

// OK 报告验证是否成功
func (r VerifyResult) OK() bool {
	return r.T == verifyTagOK
}

// String 返回 JSON 形式
func (r VerifyResult) String() string {
	b, _ := json.Marshal(r)
	return string(b)
}
