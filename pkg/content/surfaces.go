package content

import (
	"github.com/decker502/ctale/pkg/types"
	"github.com/decker502/ctale/pkg/utils"
)

// Surface 地面类型
type Surface int

const (
	SurfaceNone Surface = iota - 1
	SurfaceGrass
	SurfaceConcrete
	SurfaceSand
	SurfaceBridge
	SurfaceWood
	SurfaceDirt
)

// String 返回地面名称
func (s Surface) String() string {
	switch s {
	case SurfaceGrass:
		return "grass"
	case SurfaceConcrete:
		return "concrete"
	case SurfaceSand:
		return "sand"
	case SurfaceBridge:
		return "bridge"
	case SurfaceWood:
		return "wood"
	case SurfaceDirt:
		return "dirt"
	default:
		return "none"
	}
}

// Footstep 返回该地面的脚步声，SurfaceNone 返回空
func (s Surface) Footstep() types.SoundID {
	switch s {
	case SurfaceGrass:
		return SoundWalkGrass
	case SurfaceConcrete:
		return SoundWalkConcrete
	case SurfaceSand:
		return SoundWalkSand
	case SurfaceBridge:
		return SoundWalkBridge
	case SurfaceWood:
		return SoundWalkWood
	case SurfaceDirt:
		return SoundWalkDirt
	default:
		return ""
	}
}

// SurfaceRegion 地图上的一块地面
type SurfaceRegion struct {
	Name    string
	Rect    utils.Rect // 相对地图原点
	Surface Surface
}

// SurfaceRegions 地图地面区域，顺序决定重叠面积相同时的优先级
var SurfaceRegions = []SurfaceRegion{
	{"grass_left", utils.Rect{X: 0, Y: 569, W: 611, H: 135}, SurfaceGrass},
	{"grass_right", utils.Rect{X: 669, Y: 569, W: 611, H: 135}, SurfaceGrass},
	{"grass_rest", utils.Rect{X: 653, Y: 590, W: 16, H: 49}, SurfaceGrass},
	{"sidewalk", utils.Rect{X: 0, Y: 704, W: 1280, H: 41}, SurfaceConcrete},
	{"crosswalk", utils.Rect{X: 981, Y: 745, W: 64, H: 72}, SurfaceConcrete},
	{"stones", utils.Rect{X: 981, Y: 817, W: 64, H: 40}, SurfaceConcrete},
	{"sand", utils.Rect{X: 981, Y: 857, W: 64, H: 33}, SurfaceSand},
	{"bridge", utils.Rect{X: 607, Y: 398, W: 66, H: 152}, SurfaceBridge},
	{"pier", utils.Rect{X: 253, Y: 106, W: 774, H: 278}, SurfaceWood},
	{"dirt_top", utils.Rect{X: 607, Y: 550, W: 66, H: 19}, SurfaceDirt},
	{"dirt_upper", utils.Rect{X: 611, Y: 569, W: 58, H: 21}, SurfaceDirt},
	{"dirt_middle", utils.Rect{X: 611, Y: 590, W: 42, H: 49}, SurfaceDirt},
	{"dirt_lower", utils.Rect{X: 611, Y: 639, W: 58, H: 65}, SurfaceDirt},
}
