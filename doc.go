// Package irohacrypto 提供 Iroha 编码的密码学身份与签名工具
//
// irohacrypto 在 Ed25519、secp256k1、BLS normal 与 BLS small 四种算法之上
// 提供统一的 API，调用方无需按算法分支即可生成、编码、派生和使用密钥、签名与哈希。
//
// # 目录结构
//
//   - pkg/lib/crypto: 密钥、密钥对、签名、哈希与 multihash 编码
//   - config: 命令行配置（默认算法、日志、输出格式）
//   - internal/util/logger: 按子系统划分的 slog 日志
//   - cmd/irohacrypto: 命令行入口
//
// # 快速开始
//
//	import "github.com/dep2p/go-iroha-crypto/pkg/lib/crypto"
//
//	kp, err := crypto.DeriveKeyPairFromSeedHex("babe", crypto.Ed25519)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sig := kp.Sign([]byte("hello"))
//	err = sig.Verify(kp.PublicKey(), []byte("hello"))
//
// # 命令行
//
//	irohacrypto keygen --seed-hex babe -a secp256k1
//	irohacrypto sign --private-key 802620... --hex deadbeef
//	irohacrypto hash --text hello
package irohacrypto
