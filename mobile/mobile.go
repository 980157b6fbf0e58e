//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.ctale -o build/android/ctale.aar ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/CTale.xcframework ./mobile
//
// 移动端没有键盘时只能显示标题画面，战斗输入依赖外接键盘。
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/ctale/pkg/app"
	"github.com/decker502/ctale/pkg/embedded"
)

func init() {
	embedded.Init(assetsFS)

	data, err := app.OpenStorage("ctale")
	if err != nil {
		log.Printf("[mobile] Warning: %v", err)
	}

	gameApp, err := app.NewApp(app.Config{Verbose: true, Data: data})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
