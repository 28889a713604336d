package crypto

import (
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// HashSize 哈希长度（字节）
const HashSize = 32

// Hash 32 字节内容哈希
//
// Blake2b-256 摘要，最后一个字节的最低位固定为 1。
// 因此真实数据的哈希永远不等于全零的 ZeroHash。
type Hash [HashSize]byte

// ZeroHash 返回全零哈希，作为默认值或占位符
func ZeroHash() Hash {
	return Hash{}
}

// PrehashedHash 将已计算好的摘要包装为哈希，并设置最低位
func PrehashedHash(digest [HashSize]byte) Hash {
	digest[HashSize-1] |= 1
	return Hash(digest)
}

// NewHash 计算数据的哈希
func NewHash(payload []byte) Hash {
	return PrehashedHash(blake2b.Sum256(payload))
}

// NewHashFromHex 计算十六进制数据的哈希
func NewHashFromHex(payloadHex string) (Hash, error) {
	payload, err := DecodeHex(payloadHex)
	if err != nil {
		return Hash{}, err
	}
	return NewHash(payload), nil
}

// Payload 返回 32 字节摘要（副本）
func (h Hash) Payload() []byte {
	out := make([]byte, HashSize)
	copy(out, h[:])
	return out
}

// Hex 返回小写十六进制
func (h Hash) Hex() string {
	return EncodeHex(h[:])
}

// String 返回小写十六进制
func (h Hash) String() string {
	return h.Hex()
}

// IsZero 报告是否为全零哈希
func (h Hash) IsZero() bool {
	return h == Hash{}
}

// MarshalText 实现 encoding.TextMarshaler
func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.Hex()), nil
}

// UnmarshalText 解析 64 位十六进制摘要，不重新计算哈希
func (h *Hash) UnmarshalText(text []byte) error {
	b, err := DecodeHex(string(text))
	if err != nil {
		return err
	}
	if len(b) != HashSize {
		return fmt.Errorf("%w: hash must be %d bytes, got %d", ErrMalformedHex, HashSize, len(b))
	}
	copy(h[:], b)
	return nil
}
