package game

import (
	"log"

	"github.com/decker502/ctale/pkg/types"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// audioPlayer 播放器的最小接口（*audio.Player 满足该接口）
type audioPlayer interface {
	Play()
	Pause()
	Rewind() error
	IsPlaying() bool
	SetVolume(volume float64)
}

// playerLoader 按资源ID取得播放器，loop 为 true 时返回无限循环的播放器
type playerLoader func(id types.SoundID, loop bool) (audioPlayer, error)

// channelState 逻辑声道上正在播放的音频
type channelState struct {
	id     types.SoundID
	player audioPlayer
	// remaining 尚未播放的额外循环次数（有限循环由 Update 补播）
	remaining int
}

// AudioManager 音频管理器
// 职责：
//   - 实现 types.Audio：按逻辑声道播放、停止、查询
//   - 同一声道上的新音频替换旧音频（声道 -1 不占用声道）
//   - 音量与开关从 SettingsManager 读取，音乐声道与其余声道分开控制
type AudioManager struct {
	load     playerLoader
	settings *SettingsManager
	players  map[playerKey]audioPlayer
	channels map[int]*channelState
}

type playerKey struct {
	id   types.SoundID
	loop bool
}

// NewAudioManager 创建音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（按ID解码音频）
//   - sm: SettingsManager 实例（音量设置，可为 nil）
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return newAudioManager(func(id types.SoundID, loop bool) (audioPlayer, error) {
		p, err := rm.PlayerByID(id, loop)
		if err != nil {
			return nil, err
		}
		return p, nil
	}, sm)
}

func newAudioManager(load playerLoader, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		load:     load,
		settings: sm,
		players:  make(map[playerKey]audioPlayer),
		channels: make(map[int]*channelState),
	}
}

var _ types.Audio = (*AudioManager)(nil)

// Play 在指定声道播放音频
// loops 为额外循环次数：0 播放一次，-1 无限循环，n 再重复 n 次
func (am *AudioManager) Play(id types.SoundID, channel int, loops int) {
	if !am.enabled(channel) {
		return
	}

	player := am.player(id, loops < 0)
	if player == nil {
		return
	}

	// 播放器按 (id, loop) 共享；已被具名声道占用时，声道 -1 不去打断它
	owner, owned := am.owner(player)
	if channel == types.ChannelAny {
		if owned && player.IsPlaying() {
			log.Printf("[AudioManager] %s busy on channel %d, skipped", id, owner)
			return
		}
	} else {
		if owned && owner != channel {
			delete(am.channels, owner)
		}
		if prev, ok := am.channels[channel]; ok && prev.player != player {
			prev.player.Pause()
		}
		am.channels[channel] = &channelState{id: id, player: player, remaining: max(loops, 0)}
	}

	player.SetVolume(am.volume(channel))
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind %s: %v", id, err)
	}
	player.Play()
}

// owner 返回占用该播放器的具名声道
func (am *AudioManager) owner(p audioPlayer) (int, bool) {
	for ch, state := range am.channels {
		if state.player == p {
			return ch, true
		}
	}
	return 0, false
}

// Stop 停止指定声道，ChannelAny 停止所有声道
func (am *AudioManager) Stop(channel int) {
	if channel == types.ChannelAny {
		for ch := range am.channels {
			am.Stop(ch)
		}
		return
	}
	if state, ok := am.channels[channel]; ok {
		state.player.Pause()
		delete(am.channels, channel)
	}
}

// IsPlaying 查询声道是否正在播放（含尚未补播的有限循环）
func (am *AudioManager) IsPlaying(channel int) bool {
	state, ok := am.channels[channel]
	if !ok {
		return false
	}
	return state.player.IsPlaying() || state.remaining > 0
}

// Update 每帧调用：补播有限循环，回收已结束的声道
func (am *AudioManager) Update() {
	for ch, state := range am.channels {
		if state.player.IsPlaying() {
			continue
		}
		if state.remaining > 0 {
			state.remaining--
			if err := state.player.Rewind(); err != nil {
				log.Printf("[AudioManager] Warning: Failed to rewind %s: %v", state.id, err)
			}
			state.player.Play()
			continue
		}
		delete(am.channels, ch)
	}
}

// Playing 返回声道上的音频ID（调试面板使用）
func (am *AudioManager) Playing(channel int) (types.SoundID, bool) {
	state, ok := am.channels[channel]
	if !ok {
		return "", false
	}
	return state.id, true
}

// ApplySettings 将当前设置的音量与开关应用到正在播放的声道
func (am *AudioManager) ApplySettings() {
	for ch, state := range am.channels {
		if !am.enabled(ch) {
			am.Stop(ch)
			continue
		}
		state.player.SetVolume(am.volume(ch))
	}
}

// player 获取或加载播放器
func (am *AudioManager) player(id types.SoundID, loop bool) audioPlayer {
	key := playerKey{id: id, loop: loop}
	if p, ok := am.players[key]; ok {
		return p
	}
	if am.load == nil {
		return nil
	}
	p, err := am.load(id, loop)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to load %s: %v", id, err)
		return nil
	}
	am.players[key] = p
	return p
}

func (am *AudioManager) enabled(channel int) bool {
	if am.settings == nil {
		return true
	}
	s := am.settings.GetSettings()
	if channel == types.ChannelMusic {
		return s.MusicEnabled
	}
	return s.SoundEnabled
}

// volume 音乐声道使用 MusicVolume，对话声道使用 VoiceVolume，其余使用 SoundVolume
func (am *AudioManager) volume(channel int) float64 {
	if am.settings == nil {
		return DefaultSettings().volumeFor(channel)
	}
	return am.settings.GetSettings().volumeFor(channel)
}

// 确保 *audio.Player 满足播放器接口
var _ audioPlayer = (*audio.Player)(nil)
