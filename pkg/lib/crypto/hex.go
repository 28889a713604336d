package crypto

import (
	"encoding/hex"
	"fmt"
)

// EncodeHex 编码为小写十六进制字符串（无 0x 前缀）
func EncodeHex(b []byte) string {
	return hex.EncodeToString(b)
}

// DecodeHex 解码十六进制字符串，大小写不敏感
//
// 奇数长度或出现非十六进制字符时返回 ErrMalformedHex，错误信息指出字符及其位置。
func DecodeHex(s string) ([]byte, error) {
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return nil, fmt.Errorf("%w: invalid character %q at position %d", ErrMalformedHex, rune(s[i]), i)
		}
	}
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd number of digits (%d)", ErrMalformedHex, len(s))
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHex, err)
	}
	return b, nil
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
