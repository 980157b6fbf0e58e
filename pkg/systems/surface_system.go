package systems

import (
	"log"

	"github.com/decker502/ctale/pkg/content"
	"github.com/decker502/ctale/pkg/types"
	"github.com/decker502/ctale/pkg/utils"
)

// SurfaceSystem 地面检测与脚步声
//
// 用角色脚下的检测条与地图区域求最大重叠，地面变化时切换循环脚步声，
// 停止移动时静音。区域坐标相对地图原点，查询时按当前地图偏移换算。
type SurfaceSystem struct {
	audio   types.Audio
	regions []content.SurfaceRegion
	rects   []utils.Rect // 复用缓冲，避免每帧分配

	current content.Surface
	playing bool
}

// NewSurfaceSystem 创建地面检测系统
func NewSurfaceSystem(audio types.Audio, regions []content.SurfaceRegion) *SurfaceSystem {
	return &SurfaceSystem{
		audio:   audio,
		regions: regions,
		rects:   make([]utils.Rect, len(regions)),
		current: content.SurfaceNone,
	}
}

// Detect 返回角色所站的地面，originX/originY 为地图左上角在屏幕上的位置
func (s *SurfaceSystem) Detect(body utils.Rect, originX, originY int) content.Surface {
	for i, r := range s.regions {
		s.rects[i] = r.Rect.Offset(originX, originY)
	}
	idx := utils.BestOverlap(utils.FeetStrip(body), s.rects)
	if idx < 0 {
		return content.SurfaceNone
	}
	return s.regions[idx].Surface
}

// Update 检测地面并驱动脚步声
// 只有地面变化（或从静止开始移动）时才重新播放，避免循环音效每帧重启
func (s *SurfaceSystem) Update(body utils.Rect, originX, originY int, moving bool) content.Surface {
	surface := s.Detect(body, originX, originY)

	if !moving {
		s.Stop()
		s.current = surface
		return surface
	}

	if surface != s.current || !s.playing {
		if surface != s.current {
			log.Printf("[SurfaceSystem] %s -> %s", s.current, surface)
		}
		s.current = surface
		if id := surface.Footstep(); id != "" && s.audio != nil {
			s.audio.Play(id, types.ChannelSFX, -1)
			s.playing = true
		} else {
			s.Stop()
		}
	}
	return surface
}

// Current 返回最近一次检测到的地面
func (s *SurfaceSystem) Current() content.Surface {
	return s.current
}

// Stop 停止脚步声
func (s *SurfaceSystem) Stop() {
	if s.playing && s.audio != nil {
		s.audio.Stop(types.ChannelSFX)
	}
	s.playing = false
}
