package crypto

import (
	"encoding/json"
	"fmt"
	"runtime"
	"sync"

	"github.com/dep2p/go-iroha-crypto/internal/util/logger"
)

var log = logger.Logger("crypto")

// ============================================================================
//                              KeyPair
// ============================================================================

// KeyPair 同一算法下对应的公钥与私钥
//
// 内部持有原语实现；PublicKey/PrivateKey 包装在首次访问时创建并缓存，
// 之后每次返回同一个指针。缓存由互斥锁保护，可并发访问。
type KeyPair struct {
	algorithm Algorithm
	public    publicKeyImpl
	private   privateKeyImpl

	mu         sync.Mutex
	publicKey  *PublicKey
	privateKey *PrivateKey
}

// newKeyPair 创建密钥对
//
// 尚未缓存私钥包装时，由密钥对自身负责清除秘密。
func newKeyPair(alg Algorithm, pub publicKeyImpl, priv privateKeyImpl) *KeyPair {
	kp := &KeyPair{algorithm: alg, public: pub, private: priv}
	runtime.SetFinalizer(kp, (*KeyPair).release)
	return kp
}

// release 清除未移交给私钥包装的秘密
func (kp *KeyPair) release() {
	kp.mu.Lock()
	defer kp.mu.Unlock()
	if kp.privateKey == nil && kp.private != nil {
		kp.private.Zero()
	}
}

// RandomKeyPair 使用系统随机源生成密钥对
//
// 仅当 alg 不是受支持的算法时返回错误；系统随机源不可用时 panic。
func RandomKeyPair(alg Algorithm) (*KeyPair, error) {
	priv, err := generateRandom(alg)
	if err != nil {
		return nil, err
	}
	log.Debug("生成随机密钥对", "algorithm", alg)
	return newKeyPair(alg, priv.Public(), priv), nil
}

// KeyPairFromParts 由已有的公钥和私钥组成密钥对
//
// 任一部分为 nil、算法不同，或公钥不是由私钥派生时返回 ErrKeyMismatch。
func KeyPairFromParts(pub *PublicKey, priv *PrivateKey) (*KeyPair, error) {
	if pub == nil || priv == nil {
		return nil, fmt.Errorf("%w: public and private key must not be nil", ErrKeyMismatch)
	}
	if pub.algorithm != priv.algorithm {
		return nil, fmt.Errorf("%w: mismatch of key algorithms (%s, %s)",
			ErrKeyMismatch, pub.algorithm, priv.algorithm)
	}

	derived := priv.inner.Public()
	runtime.KeepAlive(priv)
	if !rawEqual(derived.Raw(), pub.inner.Raw()) {
		return nil, fmt.Errorf("%w: public key is not derived from private key", ErrKeyMismatch)
	}

	kp := newKeyPair(pub.algorithm, pub.inner, priv.inner)
	kp.publicKey = pub
	kp.privateKey = priv
	return kp, nil
}

// DeriveKeyPairFromSeed 从种子确定性派生密钥对
//
// 相同的种子和算法总是得到相同的密钥对。种子为空时返回 ErrInvalidSeedLength。
func DeriveKeyPairFromSeed(seed []byte, alg Algorithm) (*KeyPair, error) {
	p, err := providerFor(alg)
	if err != nil {
		return nil, err
	}

	src, err := newSeedReader(seed)
	if err != nil {
		return nil, err
	}
	priv, err := p.Generate(src)
	if err != nil {
		return nil, fmt.Errorf("derive %s key pair: %w", alg, err)
	}

	log.Debug("从种子派生密钥对", "algorithm", alg)
	return newKeyPair(alg, priv.Public(), priv), nil
}

// DeriveKeyPairFromSeedHex 从十六进制种子派生密钥对
func DeriveKeyPairFromSeedHex(seedHex string, alg Algorithm) (*KeyPair, error) {
	seed, err := DecodeHex(seedHex)
	if err != nil {
		return nil, err
	}
	defer wipe(seed)
	return DeriveKeyPairFromSeed(seed, alg)
}

// DeriveKeyPairFromPrivateKey 从私钥派生密钥对
//
// 缓存传入的私钥包装，公钥包装延迟到首次访问时创建。
func DeriveKeyPairFromPrivateKey(priv *PrivateKey) *KeyPair {
	kp := newKeyPair(priv.algorithm, priv.inner.Public(), priv.inner)
	kp.privateKey = priv
	return kp
}

// Algorithm 返回算法
func (kp *KeyPair) Algorithm() Algorithm {
	return kp.algorithm
}

// PublicKey 返回缓存的公钥
func (kp *KeyPair) PublicKey() *PublicKey {
	kp.mu.Lock()
	defer kp.mu.Unlock()
	if kp.publicKey == nil {
		kp.publicKey = &PublicKey{algorithm: kp.algorithm, inner: kp.public}
	}
	return kp.publicKey
}

// PrivateKey 返回缓存的私钥
//
// 首次创建后秘密的清除交由该私钥负责。
func (kp *KeyPair) PrivateKey() *PrivateKey {
	kp.mu.Lock()
	defer kp.mu.Unlock()
	if kp.privateKey == nil {
		kp.privateKey = newPrivateKey(kp.algorithm, kp.private)
	}
	return kp.privateKey
}

// Sign 用密钥对的私钥签名
func (kp *KeyPair) Sign(payload []byte) *Signature {
	defer runtime.KeepAlive(kp)
	return &Signature{payload: kp.private.Sign(payload)}
}

// String 返回公钥，不输出秘密
func (kp *KeyPair) String() string {
	return fmt.Sprintf("KeyPair{%s, %s}", kp.PublicKey(), redactedPrivateKey)
}

// ============================================================================
//                              JSON 形式
// ============================================================================

// keyPairJSON 线上形式
type keyPairJSON struct {
	PublicKey  string `json:"publicKey"`
	PrivateKey string `json:"privateKey"`
}

// ExposedKeyPair 可序列化秘密的密钥对视图
type ExposedKeyPair struct {
	kp *KeyPair
}

// Expose 返回可序列化秘密的视图
func (kp *KeyPair) Expose() ExposedKeyPair {
	return ExposedKeyPair{kp: kp}
}

// KeyPair 返回底层密钥对
func (e ExposedKeyPair) KeyPair() *KeyPair {
	return e.kp
}

// MarshalJSON 输出 {"publicKey": ..., "privateKey": ...}
func (e ExposedKeyPair) MarshalJSON() ([]byte, error) {
	return json.Marshal(keyPairJSON{
		PublicKey:  e.kp.PublicKey().Multihash(),
		PrivateKey: e.kp.PrivateKey().Expose().Multihash(),
	})
}

// UnmarshalJSON 解析并校验两个半部
func (e *ExposedKeyPair) UnmarshalJSON(data []byte) error {
	kp, err := ParseKeyPairJSON(data)
	if err != nil {
		return err
	}
	e.kp = kp
	return nil
}

// ParseKeyPairJSON 解析 {"publicKey": ..., "privateKey": ...}
//
// 两个字段均为 multihash，组合规则同 KeyPairFromParts。
func ParseKeyPairJSON(data []byte) (*KeyPair, error) {
	var raw keyPairJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid key pair json: %w", err)
	}

	pub, err := PublicKeyFromMultihash(raw.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("publicKey: %w", err)
	}
	priv, err := PrivateKeyFromMultihash(raw.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("privateKey: %w", err)
	}
	return KeyPairFromParts(pub, priv)
}
