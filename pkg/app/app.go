// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/ctale/pkg/components"
	"github.com/decker502/ctale/pkg/config"
	"github.com/decker502/ctale/pkg/content"
	"github.com/decker502/ctale/pkg/embedded"
	"github.com/decker502/ctale/pkg/game"
	"github.com/decker502/ctale/pkg/scenes"
	"github.com/decker502/ctale/pkg/systems"
	"github.com/decker502/ctale/pkg/types"
	"github.com/decker502/ctale/pkg/ui"
	"github.com/decker502/ctale/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Debug 显示调试面板、启用 F1~F4 跳转，并热加载磁盘上的 battle.yaml
	Debug bool
	// SkipIntro 跳过标题与过场，直接进入战斗
	SkipIntro bool
	// Data 设置存储，为 nil 时设置只保存在内存中
	Data *gdata.Manager
}

// maxFrameDelta 单帧最大时间步长（秒），窗口拖动等卡顿后避免状态跳变
const maxFrameDelta = 0.25

// debugJumps 调试模式下的场景跳转键
var debugJumps = map[ebiten.Key]components.GameMode{
	ebiten.KeyF1: components.ModeTitle,
	ebiten.KeyF2: components.ModeCutscene,
	ebiten.KeyF3: components.ModeBattle,
	ebiten.KeyF4: components.ModeEnding,
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	state        *game.EncounterState
	audio        *game.AudioManager
	settings     *game.SettingsManager
	glyphs       *game.GlyphFactory
	battle       *systems.BattleSystem
	input        *utils.InputTracker
	watcher      *config.Watcher
	panel        *ui.SettingsPanel

	verbose bool
	debug   bool

	lastFrame                time.Time
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	if !embedded.IsInitialized() {
		return nil, fmt.Errorf("嵌入资源未初始化，请先调用 embedded.Init")
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(48000)

	// 资源缺失直接报错：对话与战斗都假定纹理存在
	resourceManager := game.NewResourceManager(audioContext)
	if err := resourceManager.LoadAll(game.ResourceConfigPath, content.AllGroups...); err != nil {
		return nil, fmt.Errorf("资源加载失败: %w", err)
	}

	battleConfig, err := config.LoadBattleConfig(config.BattleConfigPath)
	if err != nil {
		log.Printf("[App] Warning: %v (using defaults)", err)
	}

	settingsManager, err := game.NewSettingsManager(cfg.Data)
	if err != nil {
		return nil, fmt.Errorf("设置初始化失败: %w", err)
	}
	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	log.Printf("[App] AudioManager initialized")

	renderer := game.NewEbitenRenderer(resourceManager)
	glyphs := game.NewGlyphFactory(resourceManager)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	dialogue := systems.NewDialogueSystem(glyphs, audioManager, content.Voices())
	scenes.ApplyPortraits(dialogue, resourceManager)

	state := game.NewEncounterState(battleConfig)
	if cfg.SkipIntro {
		log.Printf("[App] SkipIntro enabled, starting in battle")
		state.Mode = components.ModeBattle
	}

	scripts := content.NewBattleScripts()
	patterns := systems.NewAttackPatternSystem(audioManager, rng)
	battle := systems.NewBattleSystem(state, dialogue, patterns, scripts,
		scenes.BuildBattleAssets(resourceManager), audioManager, glyphs, rng)
	input := &utils.InputTracker{}

	svc := &scenes.Services{
		State:    state,
		Textures: resourceManager,
		Audio:    audioManager,
		Glyphs:   glyphs,
		Renderer: renderer,
		Input:    input,
		Dialogue: dialogue,
		Scripts:  scripts,
		Battle:   battle,
	}

	a := &App{
		state:    state,
		audio:    audioManager,
		settings: settingsManager,
		glyphs:   glyphs,
		battle:   battle,
		input:    input,
		verbose:  cfg.Verbose,
		debug:    cfg.Debug,
	}

	if cfg.Debug {
		// 热加载读的是工作目录下的源文件，而不是嵌入副本
		w, err := config.NewWatcher(config.BattleConfigPath)
		if err != nil {
			log.Printf("[App] Warning: config hot reload disabled: %v", err)
		} else {
			a.watcher = w
		}
	}

	a.panel = ui.NewSettingsPanel(settingsManager, a.applySettings)
	a.sceneManager = game.NewSceneManager(state, scenes.NewFactory(svc))
	return a, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	now := time.Now()
	deltaTime := frameDelta(a.lastFrame, now)
	a.lastFrame = now

	a.input.Push(utils.PollKeyboard())

	if a.watcher != nil {
		if cfg, ok := a.watcher.Drain(); ok {
			a.state.ApplyConfig(cfg)
			log.Printf("[App] Battle config reloaded")
		}
	}

	a.updateWindow()

	// Esc 打开设置面板，面板打开期间场景暂停
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.panel.Toggle()
	}
	if a.panel.IsOpen() {
		a.panel.Update(a.input)
		a.audio.Update()
		return nil
	}

	if a.debug {
		for key, mode := range debugJumps {
			if inpututil.IsKeyJustPressed(key) {
				log.Printf("[App] Debug jump to %s", mode)
				a.sceneManager.SwitchTo(mode)
			}
		}
	}

	a.sceneManager.Update(deltaTime)
	a.audio.Update()
	return nil
}

// frameDelta 返回两帧之间的秒数
// 第一帧按 1/60 秒计算，长时间卡顿被截断为 maxFrameDelta
func frameDelta(last, now time.Time) float64 {
	if last.IsZero() {
		return 1.0 / 60.0
	}
	dt := now.Sub(last).Seconds()
	if dt < 0 {
		return 0
	}
	if dt > maxFrameDelta {
		return maxFrameDelta
	}
	return dt
}

// updateWindow 处理 F11 全屏切换与退出全屏后的窗口尺寸恢复
func (a *App) updateWindow() {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			w, h := WindowSize(a.settings.GetSettings().WindowScale)
			ebiten.SetWindowSize(w, h)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", w, h)
			a.pendingWindowSizeReset = false
		}
	}

	if !inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		return
	}
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}
	a.settings.SetFullscreen(ebiten.IsFullscreen())
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// applySettings 设置面板修改后应用音量与窗口，并立即保存
func (a *App) applySettings() {
	s := a.settings.GetSettings()
	a.audio.ApplySettings()
	if ebiten.IsFullscreen() != s.Fullscreen {
		ebiten.SetFullscreen(s.Fullscreen)
	}
	if !s.Fullscreen {
		ebiten.SetWindowSize(WindowSize(s.WindowScale))
	}
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
	a.panel.Draw(screen)
	if a.debug {
		a.drawDebug(screen)
	}
}

// drawDebug 左上角调试信息：模式、战斗子状态、计时器与存活字形数
func (a *App) drawDebug(screen *ebiten.Image) {
	s := a.state
	lines := fmt.Sprintf("FPS %.0f  mode %s  player %s\nbattle %s  turn %s  dodge %s\nturn %.2f  box %.2f  invuln %.2f\nhp %d/%d  boss %d  food %d\nglyphs %d  bullets %d  deaths %d",
		ebiten.ActualFPS(), s.Mode, s.PlayerMode,
		s.Battle, s.Turn, s.DodgePhase,
		s.TurnTimer, s.BoxTimer, s.InvulnTimer,
		s.Player.Health, s.Player.MaxHealth, s.Boss.Health, s.Food,
		a.glyphs.Live(), a.battle.Patterns().Pool().Live(), s.DeathCount)
	ebitenutil.DebugPrintAt(screen, lines, 4, 4)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	// 像素风画面使用最近邻缩放，避免字形发虚
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// Settings 返回设置管理器（main 用于恢复窗口尺寸与全屏）
func (a *App) Settings() *game.SettingsManager {
	return a.settings
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

// Close 停止配置监视并保存设置
func (a *App) Close() error {
	a.audio.Stop(types.ChannelAny)
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			log.Printf("[App] Warning: %v", err)
		}
	}
	if err := a.settings.Save(); err != nil {
		return fmt.Errorf("failed to save settings on exit: %w", err)
	}
	return nil
}

// WindowSize 返回指定缩放倍数下的窗口尺寸
func WindowSize(scale int) (int, int) {
	if scale < 1 {
		scale = 1
	}
	return config.ScreenWidth * scale, config.ScreenHeight * scale
}

// OpenStorage 打开设置存储
// 失败时返回错误，调用方可以传 nil 给 Config.Data 以内存模式运行
func OpenStorage(appName string) (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open storage %q: %w", appName, err)
	}
	return m, nil
}
