package game

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"
	"testing/fstest"

	"github.com/decker502/ctale/pkg/embedded"
	"github.com/decker502/ctale/pkg/types"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Ebitengine 只允许创建一个音频上下文，所有测试共用
var testAudioContext *audio.Context

func TestMain(m *testing.M) {
	testAudioContext = audio.NewContext(48000)
	os.Exit(m.Run())
}

// pngBytes 生成 w x h 的纯色 PNG
func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

// wavBytes 生成一段 16 位立体声静音 WAV
func wavBytes(samples int) []byte {
	dataSize := uint32(samples * 4)
	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVEfmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(2)) // 声道数
	binary.Write(&buf, binary.LittleEndian, uint32(48000))
	binary.Write(&buf, binary.LittleEndian, uint32(48000*4))
	binary.Write(&buf, binary.LittleEndian, uint16(4))
	binary.Write(&buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, dataSize)
	buf.Write(make([]byte, dataSize))
	return buf.Bytes()
}

const testManifest = `
version: "1.0"
base_path: assets
groups:
  battle:
    images:
      - id: IMAGE_SOUL
        path: images/soul
    sounds:
      - id: SOUND_SLASH
        path: sounds/slash.wav
      - id: MUSIC_BATTLE
        path: music/battle.wav
        music: true
  broken:
    images:
      - id: IMAGE_MISSING
        path: images/missing.png
`

// initTestAssets 用内存文件系统替换嵌入资源
func initTestAssets(t *testing.T, files fstest.MapFS) {
	t.Helper()
	embedded.Init(files)
	t.Cleanup(func() { embedded.Init(nil) })
}

func testAssets(t *testing.T) fstest.MapFS {
	return fstest.MapFS{
		"assets/config/resources.yaml": {Data: []byte(testManifest)},
		"assets/images/soul.png":       {Data: pngBytes(t, 20, 20)},
		"assets/sounds/slash.wav":      {Data: wavBytes(64)},
		"assets/music/battle.wav":      {Data: wavBytes(64)},
	}
}

// TestLoadResourceGroup 测试按组加载并按ID取回
func TestLoadResourceGroup(t *testing.T) {
	initTestAssets(t, testAssets(t))
	rm := NewResourceManager(testAudioContext)

	if err := rm.LoadAll(ResourceConfigPath, "battle"); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}

	img := rm.GetImageByID("IMAGE_SOUL")
	if img == nil {
		t.Fatal("IMAGE_SOUL not cached")
	}
	if w, h := types.TextureSize(rm.Texture("IMAGE_SOUL")); w != 20 || h != 20 {
		t.Errorf("size = %dx%d, want 20x20", w, h)
	}
	if rm.resourceMap["IMAGE_SOUL"] != "assets/images/soul.png" {
		t.Errorf("default extension not applied: %s", rm.resourceMap["IMAGE_SOUL"])
	}
	if !rm.musicIDs["MUSIC_BATTLE"] || rm.musicIDs["SOUND_SLASH"] {
		t.Error("music flag not recorded")
	}
}

// TestMissingImageIsFatal 缺失的资源在加载组时返回错误
func TestMissingImageIsFatal(t *testing.T) {
	initTestAssets(t, testAssets(t))
	rm := NewResourceManager(testAudioContext)

	err := rm.LoadAll(ResourceConfigPath, "battle", "broken")
	if err == nil {
		t.Fatal("missing image should fail the group")
	}
	if err := rm.LoadResourceGroup("nope"); err == nil {
		t.Error("unknown group should fail")
	}
}

// TestTextureMissingIsNilInterface 未加载的纹理返回 nil 接口而不是 nil 指针
func TestTextureMissingIsNilInterface(t *testing.T) {
	rm := NewResourceManager(nil)
	if tex := rm.Texture("IMAGE_NOPE"); tex != nil {
		t.Errorf("Texture = %#v, want nil interface", tex)
	}
	if got := rm.Textures("A", "B"); len(got) != 2 || got[0] != nil {
		t.Error("Textures should return nil entries")
	}
}

// TestPlayerByID 循环与单次播放器分别缓存
func TestPlayerByID(t *testing.T) {
	initTestAssets(t, testAssets(t))
	rm := NewResourceManager(testAudioContext)
	if err := rm.LoadResourceConfig(ResourceConfigPath); err != nil {
		t.Fatalf("LoadResourceConfig: %v", err)
	}

	once, err := rm.PlayerByID("SOUND_SLASH", false)
	if err != nil {
		t.Fatalf("PlayerByID: %v", err)
	}
	loop, err := rm.PlayerByID("SOUND_SLASH", true)
	if err != nil {
		t.Fatalf("PlayerByID loop: %v", err)
	}
	if once == loop {
		t.Error("looping and one-shot players should differ")
	}
	again, _ := rm.PlayerByID("SOUND_SLASH", false)
	if again != once {
		t.Error("player should be cached")
	}
	music, _ := rm.PlayerByID("MUSIC_BATTLE", false)
	if cached := rm.audioCache["assets/music/battle.wav|loop"]; cached != music {
		t.Error("music should always decode as a loop")
	}

	if _, err := rm.PlayerByID("SOUND_NOPE", false); err == nil {
		t.Error("unknown sound should fail")
	}
}

// TestDecodeAudioUnsupported 不支持的格式返回错误
func TestDecodeAudioUnsupported(t *testing.T) {
	if _, err := decodeAudio("a.flac", nil); err == nil {
		t.Error("flac should be rejected")
	}
	if _, err := decodeAudio("a.wav", []byte("junk")); err == nil {
		t.Error("corrupt wav should be rejected")
	}
}

// TestFaceFallback 未指定或未知的字体使用内置位图字体
func TestFaceFallback(t *testing.T) {
	rm := NewResourceManager(nil)
	if rm.Face(types.TextStyle{}) != rm.fallbackFace {
		t.Error("empty font id should use the fallback")
	}
	if rm.Face(types.TextStyle{FontID: "FONT_NOPE", Size: 12}) != rm.fallbackFace {
		t.Error("unknown font should use the fallback")
	}
}
