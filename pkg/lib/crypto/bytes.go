package crypto

import (
	"encoding/json"
	"fmt"
)

// ============================================================================
//                              结构化字节输入
// ============================================================================

// BytesKind 结构化字节输入的判别值
type BytesKind uint8

const (
	// BytesArray 字面字节序列
	BytesArray BytesKind = iota
	// BytesHex 十六进制字符串
	BytesHex
)

// 判别字段取值
const (
	bytesTagArray = "array"
	bytesTagHex   = "hex"
)

// String 返回判别字段取值
func (k BytesKind) String() string {
	switch k {
	case BytesArray:
		return bytesTagArray
	case BytesHex:
		return bytesTagHex
	default:
		return "unknown"
	}
}

// Bytes 边界处的二进制输入
//
// 调用方可能只有文本安全的通道，因此二进制数据可以以字节数组或十六进制字符串给出。
// 进入任何密码学操作之前都必须先 Resolve 为原始字节。
//
// JSON 形式：
//
//	{"t":"array","array":[222,173,190,239]}
//	{"t":"hex","hex":"deadbeef"}
type Bytes struct {
	kind  BytesKind
	array []byte
	hex   string
}

// BytesFromArray 从字节序列构造
func BytesFromArray(b []byte) Bytes {
	return Bytes{kind: BytesArray, array: b}
}

// BytesFromHex 从十六进制字符串构造
func BytesFromHex(s string) Bytes {
	return Bytes{kind: BytesHex, hex: s}
}

// Kind 返回判别值
func (b Bytes) Kind() BytesKind {
	return b.kind
}

// Resolve 解析为原始字节
//
// array 原样返回（副本）；hex 委托给 DecodeHex，错误原样传播。
func (b Bytes) Resolve() ([]byte, error) {
	switch b.kind {
	case BytesArray:
		out := make([]byte, len(b.array))
		copy(out, b.array)
		return out, nil
	case BytesHex:
		return DecodeHex(b.hex)
	default:
		return nil, fmt.Errorf("unknown bytes kind %d", b.kind)
	}
}

// bytesJSON JSON 线上形式
type bytesJSON struct {
	T     string  `json:"t"`
	Array []int   `json:"array,omitempty"`
	Hex   *string `json:"hex,omitempty"`
}

// MarshalJSON 实现 json.Marshaler
func (b Bytes) MarshalJSON() ([]byte, error) {
	switch b.kind {
	case BytesArray:
		arr := make([]int, len(b.array))
		for i, v := range b.array {
			arr[i] = int(v)
		}
		// 空数组也要输出 "array":[]
		return json.Marshal(struct {
			T     string `json:"t"`
			Array []int  `json:"array"`
		}{T: bytesTagArray, Array: arr})
	case BytesHex:
		h := b.hex
		return json.Marshal(bytesJSON{T: bytesTagHex, Hex: &h})
	default:
		return nil, fmt.Errorf("unknown bytes kind %d", b.kind)
	}
}

// UnmarshalJSON 实现 json.Unmarshaler
func (b *Bytes) UnmarshalJSON(data []byte) error {
	var raw bytesJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid bytes input: %w", err)
	}

	switch raw.T {
	case bytesTagArray:
		arr := make([]byte, len(raw.Array))
		for i, v := range raw.Array {
			if v < 0 || v > 0xff {
				return fmt.Errorf("invalid bytes input: element %d out of range: %d", i, v)
			}
			arr[i] = byte(v)
		}
		*b = BytesFromArray(arr)
	case bytesTagHex:
		if raw.Hex == nil {
			return fmt.Errorf("invalid bytes input: missing %q field", bytesTagHex)
		}
		*b = BytesFromHex(*raw.Hex)
	default:
		return fmt.Errorf("invalid bytes input: unknown tag %q", raw.T)
	}
	return nil
}
