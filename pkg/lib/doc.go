// Package lib 包含基础设施工具库
//
// 本目录包含与命令行无关、可被外部项目直接引用的库：
//
//   - crypto: 密码学原语（算法、密钥、密钥对、签名、哈希、multihash）
//
// # 使用示例
//
//	import (
//	    "github.com/dep2p/go-iroha-crypto/pkg/lib/crypto"
//	)
package lib
