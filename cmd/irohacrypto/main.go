// Package main 提供 irohacrypto 命令行入口
package main

import (
	"os"

	"github.com/dep2p/go-iroha-crypto/cmd/irohacrypto/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
