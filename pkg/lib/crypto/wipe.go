package crypto

import "runtime"

// wipe 清零缓冲区
//
// 尽力而为，防止编译器省略写入。
//
//go:noinline
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(&b)
}
