package crypto

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
//                              生成与派生
// ============================================================================

// TestRandomKeyPair 测试随机生成
func TestRandomKeyPair(t *testing.T) {
	for _, alg := range Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			kp1, err := RandomKeyPair(alg)
			require.NoError(t, err)
			kp2, err := RandomKeyPair(alg)
			require.NoError(t, err)

			assert.Equal(t, alg, kp1.Algorithm())
			assert.Equal(t, alg, kp1.PublicKey().Algorithm())
			assert.Equal(t, alg, kp1.PrivateKey().Algorithm())
			assert.False(t, kp1.PublicKey().Equals(kp2.PublicKey()), "两次随机生成不应相同")
		})
	}

	t.Log("✅ RandomKeyPair 测试通过")
}

func TestRandomKeyPair_UnknownAlgorithm(t *testing.T) {
	_, err := RandomKeyPair(Algorithm(200))
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

// TestDeriveKeyPairFromSeed 测试从种子派生的已知结果
func TestDeriveKeyPairFromSeed(t *testing.T) {
	kp, err := DeriveKeyPairFromSeed([]byte{49, 50, 51, 52}, DefaultAlgorithm())
	require.NoError(t, err)

	assert.Equal(t, "80262001F2DB2416255E79DB67D5AC807E55459ED8754F07586864948AEA00F6F81763", kp.PrivateKey().Expose().Multihash())
	assert.Equal(t, "ed0120F149BB4B59FEB0ACE3074F10C65E179880EA2C4FE4E0D6022B1E82C33C3278C7", kp.PublicKey().Multihash())
}

// TestDeriveKeyPairFromSeed_ZeroSeed 测试 32 字节全零种子的派生结果固定
func TestDeriveKeyPairFromSeed_ZeroSeed(t *testing.T) {
	seed := make([]byte, 32)

	kp1, err := DeriveKeyPairFromSeed(seed, Ed25519)
	require.NoError(t, err)
	kp2, err := DeriveKeyPairFromSeed(seed, Ed25519)
	require.NoError(t, err)

	assert.Equal(t, "641297079357229f295938a4b5a333de35069bf47b9d0704e45805713d13c201", kp1.PublicKey().PayloadHex())
	assert.Equal(t, "755bd058fc8c7dc341bb9b9656900da3ec530aa6865c15358aae7750d2875654", kp1.PrivateKey().PayloadHex())
	assert.Equal(t, kp1.PublicKey().Payload(), kp2.PublicKey().Payload())
	assert.Equal(t, kp1.PrivateKey().Payload(), kp2.PrivateKey().Payload())
}

// TestDeriveKeyPairFromSeed_Secp256k1 测试 secp256k1 与 ed25519 使用相同的秘密字节
func TestDeriveKeyPairFromSeed_Secp256k1(t *testing.T) {
	kp, err := DeriveKeyPairFromSeedHex("babe", Secp256k1)
	require.NoError(t, err)
	assert.Equal(t, "8126205B2523645A5D025E67C482E64A4117CDE9A1BE5F128458970491D9774596D2DD", kp.PrivateKey().Expose().Multihash())
	assert.Equal(t, "02061414cdc692dacdaf3760471126541417dc24235fcfff145be4e96d4230d53e", kp.PublicKey().PayloadHex())

	ed, err := DeriveKeyPairFromSeedHex("babe", Ed25519)
	require.NoError(t, err)
	assert.Equal(t, "8026205B2523645A5D025E67C482E64A4117CDE9A1BE5F128458970491D9774596D2DD", ed.PrivateKey().Expose().Multihash())
}

// TestDeriveKeyPairFromSeed_Deterministic 测试所有算法的确定性
func TestDeriveKeyPairFromSeed_Deterministic(t *testing.T) {
	for _, alg := range Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			kp1, err := DeriveKeyPairFromSeed([]byte("reproducible identity"), alg)
			require.NoError(t, err)
			kp2, err := DeriveKeyPairFromSeed([]byte("reproducible identity"), alg)
			require.NoError(t, err)
			other, err := DeriveKeyPairFromSeed([]byte("another identity"), alg)
			require.NoError(t, err)

			assert.True(t, kp1.PublicKey().Equals(kp2.PublicKey()))
			assert.True(t, kp1.PrivateKey().Equals(kp2.PrivateKey()))
			assert.False(t, kp1.PublicKey().Equals(other.PublicKey()))
		})
	}
}

// TestDeriveKeyPairFromSeed_AlgorithmsDiffer 测试同一种子在不同算法下得到不同公钥
func TestDeriveKeyPairFromSeed_AlgorithmsDiffer(t *testing.T) {
	seen := make(map[string]Algorithm)
	for _, alg := range Algorithms() {
		kp, err := DeriveKeyPairFromSeedHex("aa1108", alg)
		require.NoError(t, err)
		mh := kp.PublicKey().Multihash()
		_, dup := seen[mh]
		assert.False(t, dup)
		seen[mh] = alg
	}
}

func TestDeriveKeyPairFromSeed_Errors(t *testing.T) {
	_, err := DeriveKeyPairFromSeed(nil, Ed25519)
	assert.ErrorIs(t, err, ErrInvalidSeedLength)
	assert.Equal(t, KindInvalidSeedLength, KindOf(err))

	_, err = DeriveKeyPairFromSeedHex("", Ed25519)
	assert.ErrorIs(t, err, ErrInvalidSeedLength)

	_, err = DeriveKeyPairFromSeedHex("abc", Ed25519)
	assert.ErrorIs(t, err, ErrMalformedHex)

	_, err = DeriveKeyPairFromSeed([]byte{1}, Algorithm(99))
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

// TestDeriveKeyPairFromPrivateKey 测试从私钥派生
func TestDeriveKeyPairFromPrivateKey(t *testing.T) {
	priv, err := PrivateKeyFromMultihash(samplePrivateMultihash)
	require.NoError(t, err)

	kp := DeriveKeyPairFromPrivateKey(priv)
	assert.Same(t, priv, kp.PrivateKey())
	assert.Equal(t, sampleDerivedPublic, kp.PublicKey().Multihash())
	assert.Equal(t, samplePrivateMultihash, kp.PrivateKey().Expose().Multihash())
}

// ============================================================================
//                              组合
// ============================================================================

// TestKeyPairFromParts 测试由两个半部组合
func TestKeyPairFromParts(t *testing.T) {
	for _, alg := range Algorithms() {
		src, err := RandomKeyPair(alg)
		require.NoError(t, err)

		pub := src.PublicKey()
		priv := src.PrivateKey()

		kp, err := KeyPairFromParts(pub, priv)
		require.NoError(t, err)
		assert.Same(t, pub, kp.PublicKey())
		assert.Same(t, priv, kp.PrivateKey())
	}
}

// TestKeyPairFromParts_AlgorithmMismatch 测试算法不同
func TestKeyPairFromParts_AlgorithmMismatch(t *testing.T) {
	kp1, err := DeriveKeyPairFromSeedHex("deadbeef", BlsNormal)
	require.NoError(t, err)
	kp2, err := DeriveKeyPairFromSeedHex("beefdead", Ed25519)
	require.NoError(t, err)

	_, err = KeyPairFromParts(kp1.PublicKey(), kp2.PrivateKey())
	require.ErrorIs(t, err, ErrKeyMismatch)
	assert.Contains(t, err.Error(), "mismatch of key algorithms")
	assert.Equal(t, KindKeyMismatch, KindOf(err))
}

// TestKeyPairFromParts_NotDerived 测试公钥不属于私钥
func TestKeyPairFromParts_NotDerived(t *testing.T) {
	for _, alg := range Algorithms() {
		a, err := RandomKeyPair(alg)
		require.NoError(t, err)
		b, err := RandomKeyPair(alg)
		require.NoError(t, err)

		_, err = KeyPairFromParts(a.PublicKey(), b.PrivateKey())
		assert.ErrorIs(t, err, ErrKeyMismatch, "alg=%s", alg)
	}
}

// TestKeyPairFromParts_Nil 测试 nil 部分返回错误而不是 panic
func TestKeyPairFromParts_Nil(t *testing.T) {
	kp, err := RandomKeyPair(Ed25519)
	require.NoError(t, err)

	cases := map[string]struct {
		pub  *PublicKey
		priv *PrivateKey
	}{
		"nil public":  {nil, kp.PrivateKey()},
		"nil private": {kp.PublicKey(), nil},
		"both nil":    {nil, nil},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			var got *KeyPair
			assert.NotPanics(t, func() {
				got, err = KeyPairFromParts(c.pub, c.priv)
			})
			require.ErrorIs(t, err, ErrKeyMismatch)
			assert.Nil(t, got)
			assert.Equal(t, KindKeyMismatch, KindOf(err))
		})
	}
}

// TestKeyPair_PublicKeyMatchesPrivate 测试公钥总等于私钥派生结果
func TestKeyPair_PublicKeyMatchesPrivate(t *testing.T) {
	for _, alg := range Algorithms() {
		kp, err := DeriveKeyPairFromSeedHex("aa1108", alg)
		require.NoError(t, err)
		assert.True(t, PublicKeyFromPrivateKey(kp.PrivateKey()).Equals(kp.PublicKey()))
	}
}

// ============================================================================
//                              缓存
// ============================================================================

// TestKeyPair_Memoized 测试缓存的包装保持同一指针
func TestKeyPair_Memoized(t *testing.T) {
	kp, err := RandomKeyPair(Secp256k1)
	require.NoError(t, err)

	assert.Same(t, kp.PublicKey(), kp.PublicKey())
	assert.Same(t, kp.PrivateKey(), kp.PrivateKey())
}

// TestKeyPair_ConcurrentAccess 测试并发首次访问只创建一个包装
func TestKeyPair_ConcurrentAccess(t *testing.T) {
	kp, err := RandomKeyPair(Ed25519)
	require.NoError(t, err)

	const n = 32
	pubs := make([]*PublicKey, n)
	privs := make([]*PrivateKey, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			pubs[i] = kp.PublicKey()
			privs[i] = kp.PrivateKey()
		}(i)
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		assert.Same(t, pubs[0], pubs[i])
		assert.Same(t, privs[0], privs[i])
	}
}

// ============================================================================
//                              签名与 JSON
// ============================================================================

func TestKeyPair_Sign(t *testing.T) {
	for _, alg := range Algorithms() {
		kp, err := RandomKeyPair(alg)
		require.NoError(t, err)

		sig := kp.Sign([]byte("message"))
		assert.NoError(t, sig.Verify(kp.PublicKey(), []byte("message")))
	}
}

// TestKeyPair_String 测试打印不泄露秘密
func TestKeyPair_String(t *testing.T) {
	priv, err := PrivateKeyFromMultihash(samplePrivateMultihash)
	require.NoError(t, err)
	kp := DeriveKeyPairFromPrivateKey(priv)

	s := kp.String()
	assert.Contains(t, s, sampleDerivedPublic)
	assert.NotContains(t, s, samplePrivateMultihash[6:])
}

// TestKeyPair_JSON 测试 {"publicKey","privateKey"} 形式
func TestKeyPair_JSON(t *testing.T) {
	kp, err := DeriveKeyPairFromSeed([]byte{49, 50, 51, 52}, Ed25519)
	require.NoError(t, err)

	data, err := json.Marshal(kp.Expose())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"publicKey": "ed0120F149BB4B59FEB0ACE3074F10C65E179880EA2C4FE4E0D6022B1E82C33C3278C7",
		"privateKey": "80262001F2DB2416255E79DB67D5AC807E55459ED8754F07586864948AEA00F6F81763"
	}`, string(data))

	back, err := ParseKeyPairJSON(data)
	require.NoError(t, err)
	assert.True(t, back.PublicKey().Equals(kp.PublicKey()))
	assert.True(t, back.PrivateKey().Equals(kp.PrivateKey()))

	var exposed ExposedKeyPair
	require.NoError(t, json.Unmarshal(data, &exposed))
	assert.True(t, exposed.KeyPair().PublicKey().Equals(kp.PublicKey()))
}

func TestParseKeyPairJSON_Errors(t *testing.T) {
	_, err := ParseKeyPairJSON([]byte(`not json`))
	assert.Error(t, err)

	_, err = ParseKeyPairJSON([]byte(`{"publicKey":"zz","privateKey":"` + samplePrivateMultihash + `"}`))
	assert.ErrorIs(t, err, ErrMalformedMultihash)

	_, err = ParseKeyPairJSON([]byte(`{"publicKey":"` + samplePublicMultihash + `","privateKey":"` + samplePrivateMultihash + `"}`))
	assert.ErrorIs(t, err, ErrKeyMismatch)

	_, err = ParseKeyPairJSON([]byte(`{"publicKey":"` + sampleDerivedPublic + `","privateKey":"` + samplePrivateMultihash + `"}`))
	assert.NoError(t, err)
}
