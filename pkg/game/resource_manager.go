package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/decker502/ctale/pkg/embedded"
	"github.com/decker502/ctale/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
	"gopkg.in/yaml.v3"
)

// ResourceManager is responsible for centralized management of game resources.
// All files are read from the embedded assets tree (pkg/embedded), decoded once
// and cached by path.
//
// Resources are addressed by the IDs declared in assets/config/resources.yaml.
// Every group is loaded at startup; a missing or undecodable file is a fatal
// startup error, so the core never sees a missing texture at runtime.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. Load everything from the main
// goroutine before the game loop starts.
type ResourceManager struct {
	imageCache      map[string]*ebiten.Image           // path -> Image
	audioCache      map[string]*audio.Player           // path|loop -> Player
	audioData       map[string][]byte                  // path -> raw file bytes
	audioContext    *audio.Context                     // shared audio context
	fontSourceCache map[string]*text.GoTextFaceSource  // path -> font source
	fontFaceCache   map[string]*text.GoTextFace        // path:size -> face
	fallbackFace    text.Face                          // used when a style names no font

	config      *ResourceConfig
	resourceMap map[string]string // Resource ID -> file path
	musicIDs    map[string]bool   // sound IDs decoded as looping streams
}

// NewResourceManager creates a ResourceManager with empty caches.
// audioContext may be nil when only images and fonts are needed (tools, tests).
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		imageCache:      make(map[string]*ebiten.Image),
		audioCache:      make(map[string]*audio.Player),
		audioData:       make(map[string][]byte),
		audioContext:    audioContext,
		fontSourceCache: make(map[string]*text.GoTextFaceSource),
		fontFaceCache:   make(map[string]*text.GoTextFace),
		fallbackFace:    text.NewGoXFace(basicfont.Face7x13),
		resourceMap:     make(map[string]string),
		musicIDs:        make(map[string]bool),
	}
}

// LoadImage loads a PNG from the embedded assets and caches it.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// GetImage returns a cached image or nil.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// readAudio reads and caches the raw bytes of an audio file.
func (rm *ResourceManager) readAudio(path string) ([]byte, error) {
	if data, ok := rm.audioData[path]; ok {
		return data, nil
	}
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file %s: %w", path, err)
	}
	rm.audioData[path] = data
	return data, nil
}

// decodedStream is what every ebiten decoder returns.
type decodedStream interface {
	io.ReadSeeker
	Length() int64
}

// decodeAudio picks a decoder by file extension.
// Supported formats: .wav, .mp3, .ogg
func decodeAudio(path string, data []byte) (decodedStream, error) {
	reader := bytes.NewReader(data)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		s, err := wav.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV audio %s: %w", path, err)
		}
		return s, nil
	case ".mp3":
		s, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		return s, nil
	case ".ogg":
		s, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .mp3, .ogg)", ext)
	}
}

// loadPlayer 解码音频并缓存播放器，loop 为 true 时无限循环（音乐、脚步声）
func (rm *ResourceManager) loadPlayer(path string, loop bool) (*audio.Player, error) {
	key := path
	if loop {
		key += "|loop"
	}
	if cachedPlayer, exists := rm.audioCache[key]; exists {
		return cachedPlayer, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("no audio context for %s", path)
	}

	data, err := rm.readAudio(path)
	if err != nil {
		return nil, err
	}
	stream, err := decodeAudio(path, data)
	if err != nil {
		return nil, err
	}

	var src io.Reader = stream
	if loop {
		src = audio.NewInfiniteLoop(stream, stream.Length())
	}

	player, err := rm.audioContext.NewPlayer(src)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[key] = player
	return player, nil
}

// PlayerByID returns the player for a sound ID.
// loop forces an infinitely looping stream; sounds flagged `music` in the
// manifest always loop.
func (rm *ResourceManager) PlayerByID(id types.SoundID, loop bool) (*audio.Player, error) {
	path, ok := rm.resourceMap[string(id)]
	if !ok {
		return nil, fmt.Errorf("sound resource ID not found: %s", id)
	}
	return rm.loadPlayer(path, loop || rm.musicIDs[string(id)])
}

// LoadFont loads a TrueType/OpenType font and creates a face of the given size.
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	source, ok := rm.fontSourceCache[path]
	if !ok {
		fontData, err := embedded.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
		}
		source, err = text.NewGoTextFaceSource(bytes.NewReader(fontData))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source for %s: %w", path, err)
		}
		rm.fontSourceCache[path] = source
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face, nil
}

// LoadFontByID loads a font face by resource ID.
func (rm *ResourceManager) LoadFontByID(id string, size float64) (*text.GoTextFace, error) {
	path, ok := rm.resourceMap[id]
	if !ok {
		return nil, fmt.Errorf("font resource ID not found: %s", id)
	}
	return rm.LoadFont(path, size)
}

// Face resolves a text style to a face.
// Styles without a FontID (debug labels) use the built-in 7x13 bitmap face.
func (rm *ResourceManager) Face(style types.TextStyle) text.Face {
	if style.FontID == "" {
		return rm.fallbackFace
	}
	face, err := rm.LoadFontByID(style.FontID, style.Size)
	if err != nil {
		log.Printf("[ResourceManager] Warning: %v (using fallback face)", err)
		return rm.fallbackFace
	}
	return face
}

// LoadResourceConfig parses the resource manifest from the embedded assets.
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := embedded.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse resource config %s: %w", configPath, err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid resource config %s: %w", configPath, err)
	}

	rm.config = &config
	rm.buildResourceMap()
	return nil
}

// buildResourceMap maps every resource ID to its full path.
//
//	IMAGE_SOUL -> assets/images/battle/soul.png
//	SOUND_SLASH -> assets/sounds/slash.wav
func (rm *ResourceManager) buildResourceMap() {
	rm.resourceMap = make(map[string]string)
	rm.musicIDs = make(map[string]bool)
	if rm.config == nil {
		return
	}

	for _, group := range rm.config.Groups {
		for _, img := range group.Images {
			fullPath := buildFullPath(rm.config.BasePath, img.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".png"
			}
			rm.resourceMap[img.ID] = fullPath
		}
		for _, sound := range group.Sounds {
			fullPath := buildFullPath(rm.config.BasePath, sound.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".wav"
			}
			rm.resourceMap[sound.ID] = fullPath
			if sound.Music {
				rm.musicIDs[sound.ID] = true
			}
		}
		for _, font := range group.Fonts {
			rm.resourceMap[font.ID] = buildFullPath(rm.config.BasePath, font.Path)
		}
	}
}

// LoadImageByID loads an image by resource ID.
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	if rm.config == nil {
		return nil, fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}
	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil, fmt.Errorf("resource ID not found: %s", resourceID)
	}
	return rm.LoadImage(filePath)
}

// GetImageByID returns a loaded image by resource ID, or nil.
func (rm *ResourceManager) GetImageByID(resourceID string) *ebiten.Image {
	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil
	}
	return rm.GetImage(filePath)
}

// Texture returns a loaded image as a core texture handle.
// A missing image yields a nil interface, never a typed nil.
func (rm *ResourceManager) Texture(resourceID string) types.Texture {
	if img := rm.GetImageByID(resourceID); img != nil {
		return img
	}
	return nil
}

// Textures looks up several images in order.
func (rm *ResourceManager) Textures(resourceIDs ...string) []types.Texture {
	out := make([]types.Texture, len(resourceIDs))
	for i, id := range resourceIDs {
		out[i] = rm.Texture(id)
	}
	return out
}

// LoadResourceGroup loads every image, sound and font of a group.
// Sounds are decoded up front so a broken file fails at startup;
// fonts are parsed once and sized on demand.
func (rm *ResourceManager) LoadResourceGroup(groupName string) error {
	if rm.config == nil {
		return fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}
	group, exists := rm.config.Groups[groupName]
	if !exists {
		return fmt.Errorf("resource group not found: %s", groupName)
	}

	for _, img := range group.Images {
		if _, err := rm.LoadImageByID(img.ID); err != nil {
			return fmt.Errorf("failed to load image %s in group %s: %w", img.ID, groupName, err)
		}
	}

	for _, sound := range group.Sounds {
		path := rm.resourceMap[sound.ID]
		data, err := rm.readAudio(path)
		if err != nil {
			return fmt.Errorf("failed to load sound %s in group %s: %w", sound.ID, groupName, err)
		}
		if _, err := decodeAudio(path, data); err != nil {
			return fmt.Errorf("failed to load sound %s in group %s: %w", sound.ID, groupName, err)
		}
	}

	for _, font := range group.Fonts {
		if _, err := rm.LoadFontByID(font.ID, 16); err != nil {
			return fmt.Errorf("failed to load font %s in group %s: %w", font.ID, groupName, err)
		}
	}

	log.Printf("[ResourceManager] Loaded group %s (%d images, %d sounds, %d fonts)",
		groupName, len(group.Images), len(group.Sounds), len(group.Fonts))
	return nil
}

// LoadAll loads the manifest and then every listed group in order.
func (rm *ResourceManager) LoadAll(configPath string, groups ...string) error {
	if err := rm.LoadResourceConfig(configPath); err != nil {
		return err
	}
	for _, g := range groups {
		if err := rm.LoadResourceGroup(g); err != nil {
			return err
		}
	}
	return nil
}
