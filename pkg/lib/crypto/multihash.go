package crypto

import (
	"fmt"
	"strings"

	"github.com/multiformats/go-varint"
)

// ============================================================================
//                              Multihash 格式
// ============================================================================

// 序列化格式（与 Iroha 兼容）：
//
//   ┌─────────────────────────────────────────────────────────────┐
//   │                   公钥/私钥 multihash 字符串                   │
//   ├─────────────────────────────────────────────────────────────┤
//   │  Code:    uvarint，小写十六进制                                │
//   │  Length:  uvarint，小写十六进制                                │
//   │  Payload: 密钥字节，大写十六进制                                │
//   └─────────────────────────────────────────────────────────────┘
//
// 例如 Ed25519 公钥：ed0120 + 64 个大写十六进制字符。
// 解码时对大小写不敏感。

// KeyKind 区分公钥与私钥的 multihash 编码
type KeyKind uint8

const (
	// KindPublic 公钥
	KindPublic KeyKind = iota
	// KindPrivate 私钥
	KindPrivate
)

// String 返回密钥种类名称
func (k KeyKind) String() string {
	if k == KindPrivate {
		return "private"
	}
	return "public"
}

// multicodec 编码表
const (
	codeEd25519Pub    uint64 = 0xed
	codeSecp256k1Pub  uint64 = 0xe7
	codeBls12381G1Pub uint64 = 0xea
	codeBls12381G2Pub uint64 = 0xeb

	codeEd25519Priv    uint64 = 0x1300
	codeSecp256k1Priv  uint64 = 0x1301
	codeBls12381G1Priv uint64 = 0x1309
	codeBls12381G2Priv uint64 = 0x130a
)

type multihashCode struct {
	algorithm Algorithm
	kind      KeyKind
}

// multihashCodes 编码 → (算法, 种类)
var multihashCodes = map[uint64]multihashCode{
	codeEd25519Pub:     {Ed25519, KindPublic},
	codeSecp256k1Pub:   {Secp256k1, KindPublic},
	codeBls12381G1Pub:  {BlsNormal, KindPublic},
	codeBls12381G2Pub:  {BlsSmall, KindPublic},
	codeEd25519Priv:    {Ed25519, KindPrivate},
	codeSecp256k1Priv:  {Secp256k1, KindPrivate},
	codeBls12381G1Priv: {BlsNormal, KindPrivate},
	codeBls12381G2Priv: {BlsSmall, KindPrivate},
}

// codeFor 返回算法与种类对应的 multicodec 编码
func codeFor(alg Algorithm, kind KeyKind) (uint64, bool) {
	for code, mc := range multihashCodes {
		if mc.algorithm == alg && mc.kind == kind {
			return code, true
		}
	}
	return 0, false
}

// ============================================================================
//                              编码 / 解码
// ============================================================================

// EncodeMultihash 将算法、种类和负载编码为自描述字符串
func EncodeMultihash(alg Algorithm, kind KeyKind, payload []byte) (string, error) {
	code, ok := codeFor(alg, kind)
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint8(alg))
	}
	return encodeMultihash(code, payload), nil
}

// encodeMultihash 编码已知 multicodec
func encodeMultihash(code uint64, payload []byte) string {
	var sb strings.Builder
	header := append(varint.ToUvarint(code), varint.ToUvarint(uint64(len(payload)))...)
	sb.Grow(2 * (len(header) + len(payload)))
	sb.WriteString(EncodeHex(header))
	sb.WriteString(strings.ToUpper(EncodeHex(payload)))
	return sb.String()
}

// multihashHeader 返回编码头（小写十六进制）
func multihashHeader(code uint64, payloadLen int) string {
	return EncodeHex(append(varint.ToUvarint(code), varint.ToUvarint(uint64(payloadLen))...))
}

// DecodeMultihash 解码自描述字符串
//
// 返回：
//   - Algorithm: 嵌入的算法
//   - KeyKind: 公钥或私钥
//   - []byte: 负载
//   - error: ErrMalformedMultihash；编码无法识别时同时匹配 ErrUnknownAlgorithm
func DecodeMultihash(s string) (Algorithm, KeyKind, []byte, error) {
	raw, err := DecodeHex(s)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("%w: %v", ErrMalformedMultihash, err)
	}
	return decodeMultihash(raw)
}

// decodeMultihash 解析已解码的字节并在返回前清零 buf
//
// 私钥 multihash 的 buf 含有秘密，返回的负载是独立副本。
func decodeMultihash(buf []byte) (Algorithm, KeyKind, []byte, error) {
	defer wipe(buf)
	raw := buf

	code, n, err := varint.FromUvarint(raw)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("%w: bad code: %v", ErrMalformedMultihash, err)
	}
	raw = raw[n:]

	length, n, err := varint.FromUvarint(raw)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("%w: bad length: %v", ErrMalformedMultihash, err)
	}
	raw = raw[n:]

	if uint64(len(raw)) != length {
		return 0, 0, nil, fmt.Errorf("%w: payload length %d, declared %d", ErrMalformedMultihash, len(raw), length)
	}

	mc, ok := multihashCodes[code]
	if !ok {
		return 0, 0, nil, fmt.Errorf("%w: %w: code 0x%x", ErrMalformedMultihash, ErrUnknownAlgorithm, code)
	}

	payload := make([]byte, len(raw))
	copy(payload, raw)
	return mc.algorithm, mc.kind, payload, nil
}

// decodeMultihashKind 解码并要求指定种类
func decodeMultihashKind(s string, want KeyKind) (Algorithm, []byte, error) {
	alg, kind, payload, err := DecodeMultihash(s)
	if err != nil {
		return 0, nil, err
	}
	if kind != want {
		return 0, nil, fmt.Errorf("%w: expected %s key, got %s key", ErrMalformedMultihash, want, kind)
	}
	return alg, payload, nil
}
