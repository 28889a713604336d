package crypto

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEd25519_Sizes(t *testing.T) {
	kp, err := RandomKeyPair(Ed25519)
	require.NoError(t, err)

	assert.Len(t, kp.PublicKey().Payload(), Ed25519PublicKeySize)
	assert.Len(t, kp.PrivateKey().Payload(), Ed25519PrivateKeySize)
	assert.Len(t, kp.Sign([]byte("x")).Payload(), Ed25519SignatureSize)
}

// TestEd25519_StdlibInterop 测试与标准库签名互通
func TestEd25519_StdlibInterop(t *testing.T) {
	kp, err := RandomKeyPair(Ed25519)
	require.NoError(t, err)

	std := ed25519.NewKeyFromSeed(kp.PrivateKey().Payload())
	assert.Equal(t, []byte(std.Public().(ed25519.PublicKey)), kp.PublicKey().Payload())

	msg := []byte("interop")
	assert.True(t, ed25519.Verify(kp.PublicKey().Payload(), msg, kp.Sign(msg).Payload()))
	assert.NoError(t, SignatureFromRaw(ed25519.Sign(std, msg)).Verify(kp.PublicKey(), msg))
}

// TestEd25519_Zero 测试清除后种子为零
func TestEd25519_Zero(t *testing.T) {
	priv, err := ed25519Provider{}.UnmarshalPrivate(bytesOf(0x42, 32))
	require.NoError(t, err)

	priv.Zero()
	assert.Equal(t, make([]byte, 32), priv.Raw())
}
