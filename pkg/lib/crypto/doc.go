// Package crypto 提供算法无关的身份与签名门面
//
// 本包在 Ed25519、Secp256k1 和两种 BLS12-381 变体之上提供统一的密钥、
// 密钥对、签名和哈希抽象，调用方无需按算法分支。
//
// # Iroha 兼容性
//
// 十六进制、multihash 编码和哈希与 Iroha 一致。Ed25519 与 secp256k1 的
// 种子派生和签名与 Iroha 逐字节相同，双方互相验证。
//
// BLS 只在编码层面兼容：Iroha 的 BLS 私钥和公钥可以导入，签名长度与点编码相同，
// 但签名方案不同。本包使用 IETF BLS 签名（SSWU 哈希到曲线，NUL 域分隔标签），
// 种子派生使用 IETF KeyGen。因此 Iroha 产生的 BLS 签名在此验证失败，
// 本包的 BLS 签名在 Iroha 中同样无法验证，同一种子得到的 BLS 私钥也不同。
//
// # 支持的算法
//
//   - ed25519（默认）：Ed25519 签名
//   - secp256k1：ECDSA，SHA-256 预哈希，64 字节 R || S，低 S
//   - bls_normal：BLS12-381，公钥在 G1（48 字节），签名在 G2（96 字节）
//   - bls_small：BLS12-381，公钥在 G2（96 字节），签名在 G1（48 字节）
//
// # 快速开始
//
// 生成密钥对：
//
//	kp, err := crypto.RandomKeyPair(crypto.Ed25519)
//
// 从种子确定性派生：
//
//	kp, err := crypto.DeriveKeyPairFromSeed([]byte("seed"), crypto.Secp256k1)
//
// 签名和验证：
//
//	sig := crypto.Sign(kp.PrivateKey(), data)
//	err := sig.Verify(kp.PublicKey(), data)
//
// 编码：
//
//	s := kp.PublicKey().Multihash()           // "ed0120..."
//	pub, err := crypto.PublicKeyFromMultihash(s)
//
// # 私钥暴露
//
// PrivateKey 的 String、GoString、LogValue 和 Multihash 都不输出秘密，
// Multihash 只保留编码头。需要序列化秘密时必须显式调用：
//
//	s := priv.Expose().Multihash()
//
// # 错误
//
// 所有错误都包装本包的哨兵错误，使用 errors.Is 判断，
// 或用 KindOf 得到跨边界传递的类别名称。调用方输入不会导致 panic。
//
// # 并发
//
// 密钥、签名和哈希构造后不可变。KeyPair 的公钥/私钥缓存由互斥锁保护。
package crypto
