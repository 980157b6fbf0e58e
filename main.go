package main

import (
	"flag"
	"log"

	"github.com/decker502/ctale/pkg/app"
	"github.com/decker502/ctale/pkg/config"
	"github.com/decker502/ctale/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose   = flag.Bool("verbose", false, "启用详细日志输出")
	debug     = flag.Bool("debug", false, "显示调试面板并热加载 assets/config/battle.yaml")
	skipIntro = flag.Bool("skip-intro", false, "跳过标题与过场，直接进入战斗")
)

func main() {
	flag.Parse()

	embedded.Init(assetsFS)

	data, err := app.OpenStorage("ctale")
	if err != nil {
		// 没有可写目录时设置只保存在内存中
		log.Printf("[main] Warning: %v", err)
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:   *verbose,
		Debug:     *debug,
		SkipIntro: *skipIntro,
		Data:      data,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}
	defer func() {
		if err := gameApp.Close(); err != nil {
			log.Printf("[main] %v", err)
		}
	}()

	settings := gameApp.Settings().GetSettings()
	ebiten.SetWindowSize(app.WindowSize(settings.WindowScale))
	ebiten.SetWindowTitle(config.GameTitle)
	ebiten.SetFullscreen(settings.Fullscreen)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
