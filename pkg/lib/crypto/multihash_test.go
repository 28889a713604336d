package crypto

import (
	"crypto/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEncodeMultihash_Headers 测试各算法的编码头
func TestEncodeMultihash_Headers(t *testing.T) {
	tests := []struct {
		alg    Algorithm
		kind   KeyKind
		size   int
		prefix string
	}{
		{Ed25519, KindPublic, 32, "ed0120"},
		{Secp256k1, KindPublic, 33, "e70121"},
		{BlsNormal, KindPublic, 48, "ea0130"},
		{BlsSmall, KindPublic, 96, "eb0160"},
		{Ed25519, KindPrivate, 32, "802620"},
		{Secp256k1, KindPrivate, 32, "812620"},
		{BlsNormal, KindPrivate, 32, "892620"},
		{BlsSmall, KindPrivate, 32, "8a2620"},
	}

	for _, tt := range tests {
		t.Run(tt.alg.String()+"/"+tt.kind.String(), func(t *testing.T) {
			s, err := EncodeMultihash(tt.alg, tt.kind, make([]byte, tt.size))
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(s, tt.prefix), s)
			assert.Len(t, s, len(tt.prefix)+2*tt.size)
		})
	}
}

// TestEncodeMultihash_PayloadUppercase 测试负载为大写十六进制
func TestEncodeMultihash_PayloadUppercase(t *testing.T) {
	payload, err := DecodeHex("A88D1B0D23BC1ADC564DE57CEDBF8FD7D045D0D698EF27E5D9C1807C1041E016")
	require.NoError(t, err)

	s, err := EncodeMultihash(Ed25519, KindPublic, payload)
	require.NoError(t, err)
	assert.Equal(t, "ed0120A88D1B0D23BC1ADC564DE57CEDBF8FD7D045D0D698EF27E5D9C1807C1041E016", s)
}

func TestEncodeMultihash_UnknownAlgorithm(t *testing.T) {
	_, err := EncodeMultihash(Algorithm(9), KindPublic, []byte{1})
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

// TestDecodeMultihash 测试解码
func TestDecodeMultihash(t *testing.T) {
	alg, kind, payload, err := DecodeMultihash("ed0120B23E14F659B91736AAB980B6ADDCE4B1DB8A138AB0267E049C082A744471714E")
	require.NoError(t, err)
	assert.Equal(t, Ed25519, alg)
	assert.Equal(t, KindPublic, kind)
	assert.Equal(t, "b23e14f659b91736aab980b6addce4b1db8a138ab0267e049c082a744471714e", EncodeHex(payload))

	// 大小写不敏感
	alg2, kind2, payload2, err := DecodeMultihash("ED0120b23e14f659b91736aab980b6addce4b1db8a138ab0267e049c082a744471714e")
	require.NoError(t, err)
	assert.Equal(t, alg, alg2)
	assert.Equal(t, kind, kind2)
	assert.Equal(t, payload, payload2)
}

// TestMultihash_RoundTrip 测试所有算法与种类的往返
func TestMultihash_RoundTrip(t *testing.T) {
	for _, alg := range Algorithms() {
		for _, kind := range []KeyKind{KindPublic, KindPrivate} {
			for _, n := range []int{0, 1, 32, 127, 128, 300} {
				payload := make([]byte, n)
				_, _ = rand.Read(payload)

				s, err := EncodeMultihash(alg, kind, payload)
				require.NoError(t, err)

				gotAlg, gotKind, gotPayload, err := DecodeMultihash(s)
				require.NoError(t, err)
				assert.Equal(t, alg, gotAlg)
				assert.Equal(t, kind, gotKind)
				assert.Equal(t, payload, gotPayload)
			}
		}
	}
}

// TestDecodeMultihash_Malformed 测试损坏或截断的输入
func TestDecodeMultihash_Malformed(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"not hex":        "ed01zz",
		"odd length":     "ed012",
		"truncated":      "ed0120B23E14F659B91736AAB980B6ADDCE4B1DB8A138AB0267E049C082A74447171",
		"trailing bytes": "ed0120B23E14F659B91736AAB980B6ADDCE4B1DB8A138AB0267E049C082A744471714E00",
		"no length":      "ed01",
		"bad varint":     "ff",
		"non-minimal":    "ed8100",
	}

	for name, s := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, _, err := DecodeMultihash(s)
			require.ErrorIs(t, err, ErrMalformedMultihash)
			assert.NotErrorIs(t, err, ErrUnknownAlgorithm)
		})
	}
}

// TestDecodeMultihash_UnknownCode 测试未知编码同时匹配两个哨兵
func TestDecodeMultihash_UnknownCode(t *testing.T) {
	// 0x12 sha2-256
	_, _, _, err := DecodeMultihash("1202ABCD")
	require.ErrorIs(t, err, ErrMalformedMultihash)
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
	assert.Equal(t, KindUnknownAlgorithm, KindOf(err))
}

// TestDecodeMultihash_WipesBuffer 测试解码后清零整个输入缓冲区
func TestDecodeMultihash_WipesBuffer(t *testing.T) {
	zero := func(b []byte) bool {
		for _, v := range b {
			if v != 0 {
				return false
			}
		}
		return true
	}

	t.Run("Valid", func(t *testing.T) {
		buf, err := DecodeHex("8026205B2523645A5D025E67C482E64A4117CDE9A1BE5F128458970491D9774596D2DD")
		require.NoError(t, err)

		alg, kind, payload, err := decodeMultihash(buf)
		require.NoError(t, err)
		assert.Equal(t, Ed25519, alg)
		assert.Equal(t, KindPrivate, kind)

		// 负载是副本，不受清零影响
		assert.Equal(t, "5b2523645a5d025e67c482e64a4117cde9a1be5f128458970491d9774596d2dd", EncodeHex(payload))
		assert.True(t, zero(buf), "header and payload bytes must be wiped")
	})

	t.Run("Malformed", func(t *testing.T) {
		buf, err := DecodeHex("8026205B2523645A5D025E67C482E64A4117CDE9A1BE5F128458970491D97745")
		require.NoError(t, err)

		_, _, _, err = decodeMultihash(buf)
		require.ErrorIs(t, err, ErrMalformedMultihash)
		assert.True(t, zero(buf))
	})
}

// TestDecodeMultihashKind 测试种类检查
func TestDecodeMultihashKind(t *testing.T) {
	_, _, err := decodeMultihashKind("802620418A3712F4841FFE7A90B14E90BF76A6EF2A2546AC8DBBB1F442FFB8250426B0", KindPublic)
	assert.ErrorIs(t, err, ErrMalformedMultihash)

	alg, payload, err := decodeMultihashKind("802620418A3712F4841FFE7A90B14E90BF76A6EF2A2546AC8DBBB1F442FFB8250426B0", KindPrivate)
	require.NoError(t, err)
	assert.Equal(t, Ed25519, alg)
	assert.Len(t, payload, 32)
}
