package crypto

import "errors"

// ============================================================================
//                              错误定义
// ============================================================================

// 算法相关错误
var (
	// ErrInvalidAlgorithmName 无法识别的算法名称
	ErrInvalidAlgorithmName = errors.New("invalid algorithm name")

	// ErrUnknownAlgorithm multihash 编码或枚举值不对应任何受支持的算法
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// 编码相关错误
var (
	// ErrMalformedHex 十六进制字符串格式错误（奇数长度或非法字符）
	ErrMalformedHex = errors.New("malformed hex")

	// ErrMalformedMultihash multihash 字符串损坏或被截断
	ErrMalformedMultihash = errors.New("malformed multihash")
)

// 密钥相关错误
var (
	// ErrInvalidKeyPayload 原始字节不能构成该算法的有效密钥
	ErrInvalidKeyPayload = errors.New("invalid key payload")

	// ErrInvalidSeedLength 种子长度不满足确定性派生的要求
	ErrInvalidSeedLength = errors.New("invalid seed length")

	// ErrKeyMismatch 公钥与私钥不对应，或算法不一致
	ErrKeyMismatch = errors.New("key mismatch")
)

// 签名相关错误
var (
	// ErrVerificationFailed 签名验证失败
	ErrVerificationFailed = errors.New("signature verification failed")

	// ErrAlgorithmMismatch 签名结构与公钥算法不兼容
	ErrAlgorithmMismatch = errors.New("algorithm mismatch")
)

// ============================================================================
//                              错误分类
// ============================================================================

// ErrorKind 错误类别名称，用于跨边界传递错误
type ErrorKind string

// 错误类别
const (
	KindNone                 ErrorKind = ""
	KindInvalidAlgorithmName ErrorKind = "InvalidAlgorithmName"
	KindMalformedHex         ErrorKind = "MalformedHex"
	KindMalformedMultihash   ErrorKind = "MalformedMultihash"
	KindUnknownAlgorithm     ErrorKind = "UnknownAlgorithm"
	KindInvalidKeyPayload    ErrorKind = "InvalidKeyPayload"
	KindInvalidSeedLength    ErrorKind = "InvalidSeedLength"
	KindKeyMismatch          ErrorKind = "KeyMismatch"
	KindVerificationFailed   ErrorKind = "VerificationFailed"
	KindAlgorithmMismatch    ErrorKind = "AlgorithmMismatch"
	KindUnclassified         ErrorKind = "Unclassified"
)

// errorKinds 按匹配优先级排列
//
// UnknownAlgorithm 排在 MalformedMultihash 之前：未知编码的 multihash 错误同时包装两者。
var errorKinds = []struct {
	err  error
	kind ErrorKind
}{
	{ErrInvalidAlgorithmName, KindInvalidAlgorithmName},
	{ErrMalformedHex, KindMalformedHex},
	{ErrUnknownAlgorithm, KindUnknownAlgorithm},
	{ErrMalformedMultihash, KindMalformedMultihash},
	{ErrInvalidKeyPayload, KindInvalidKeyPayload},
	{ErrInvalidSeedLength, KindInvalidSeedLength},
	{ErrKeyMismatch, KindKeyMismatch},
	{ErrVerificationFailed, KindVerificationFailed},
	{ErrAlgorithmMismatch, KindAlgorithmMismatch},
}

// KindOf 返回错误所属的类别
//
// nil 返回 KindNone；不属于本包错误体系的错误返回 KindUnclassified。
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindUnclassified
}
