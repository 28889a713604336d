package crypto

import "fmt"

// ============================================================================
//                              算法定义
// ============================================================================

// Algorithm 签名算法
//
// 封闭枚举，零值为 Ed25519（默认算法）。
// 每个密钥和签名在整个生命周期内只关联一个算法。
type Algorithm uint8

const (
	// Ed25519 Ed25519 签名（默认）
	Ed25519 Algorithm = iota
	// Secp256k1 secp256k1 ECDSA 签名（区块链兼容）
	Secp256k1
	// BlsNormal BLS12-381，公钥在 G1（48 字节），签名在 G2（96 字节）
	BlsNormal
	// BlsSmall BLS12-381，公钥在 G2（96 字节），签名在 G1（48 字节）
	BlsSmall
)

// 规范算法名称
const (
	algorithmNameEd25519   = "ed25519"
	algorithmNameSecp256k1 = "secp256k1"
	algorithmNameBlsNormal = "bls_normal"
	algorithmNameBlsSmall  = "bls_small"
)

// DefaultAlgorithm 返回默认算法（Ed25519）
func DefaultAlgorithm() Algorithm {
	return Ed25519
}

// Algorithms 返回所有受支持的算法
func Algorithms() []Algorithm {
	return []Algorithm{Ed25519, Secp256k1, BlsNormal, BlsSmall}
}

// ParseAlgorithm 解析规范算法名称
//
// 名称区分大小写，且不接受别名。
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case algorithmNameEd25519:
		return Ed25519, nil
	case algorithmNameSecp256k1:
		return Secp256k1, nil
	case algorithmNameBlsNormal:
		return BlsNormal, nil
	case algorithmNameBlsSmall:
		return BlsSmall, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidAlgorithmName, name)
	}
}

// String 返回规范算法名称
func (a Algorithm) String() string {
	switch a {
	case Ed25519:
		return algorithmNameEd25519
	case Secp256k1:
		return algorithmNameSecp256k1
	case BlsNormal:
		return algorithmNameBlsNormal
	case BlsSmall:
		return algorithmNameBlsSmall
	default:
		return fmt.Sprintf("unknown(%d)", uint8(a))
	}
}

// Valid 报告是否为受支持的算法
func (a Algorithm) Valid() bool {
	return a <= BlsSmall
}

// MarshalText 实现 encoding.TextMarshaler
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint8(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
