// Package commands 定义 irohacrypto 命令行
//
// 命令：
//
//   - algorithms   列出受支持的算法
//   - keygen       生成或派生密钥对
//   - pubkey       从私钥推导公钥
//   - sign         对负载签名
//   - verify       验证签名
//   - hash         计算 Iroha 哈希
//   - version      显示版本信息
//
// # 配置
//
// 根命令在任何子命令运行前加载配置：默认值、--config 指定的 JSON 文件、
// --preset 预设，最后是显式给出的命令行参数。合并结果经过验证后应用到日志系统。
//
// # 负载输入
//
// sign、verify、hash 通过 --hex、--text 或 --bytes 之一接收负载。
// --bytes 接受结构化 JSON，例如 {"t":"hex","hex":"deadbeef"}。
package commands
