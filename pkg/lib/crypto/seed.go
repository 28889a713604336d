package crypto

import (
	"fmt"

	sha256 "github.com/minio/sha256-simd"
	"golang.org/x/crypto/chacha20"
)

// ============================================================================
//                              确定性随机源
// ============================================================================

// seedReader 由种子派生的 ChaCha20 密钥流
//
// 密钥为 SHA-256(seed)，nonce 与计数器均从 0 开始。
// Ed25519 与 secp256k1 直接取前 32 字节，结果与 Iroha 一致。
type seedReader struct {
	stream *chacha20.Cipher
}

// newSeedReader 创建种子随机源
func newSeedReader(seed []byte) (*seedReader, error) {
	if len(seed) == 0 {
		return nil, fmt.Errorf("%w: seed must not be empty", ErrInvalidSeedLength)
	}

	key := sha256.Sum256(seed)
	defer wipe(key[:])

	var nonce [chacha20.NonceSize]byte
	stream, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		return nil, err
	}
	return &seedReader{stream: stream}, nil
}

// Read 输出密钥流
func (r *seedReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	r.stream.XORKeyStream(p, p)
	return len(p), nil
}
