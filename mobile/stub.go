//go:build !mobile

// Package mobile 的桌面端占位：不带 -tags mobile 构建时 ./... 仍能通过编译，
// 且不会要求 mobile/assets 目录存在。
package mobile

// Dummy 是一个空导出函数，确保包在非移动端构建时也能被引用
func Dummy() {}
