package game

import "fmt"

// ResourceConfigPath 资源清单（嵌入资源路径）
const ResourceConfigPath = "assets/config/resources.yaml"

// ResourceConfig 资源清单 assets/config/resources.yaml
//
// 结构:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  battle:
//	    images: [...]
//	    sounds: [...]
//	    fonts: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`
	BasePath string                   `yaml:"base_path"`
	Groups   map[string]ResourceGroup `yaml:"groups"`
}

// ResourceGroup 一起加载的一组资源
type ResourceGroup struct {
	Images []ImageResource `yaml:"images"`
	Sounds []SoundResource `yaml:"sounds"`
	Fonts  []FontResource  `yaml:"fonts"`
}

// ImageResource 图片资源
//
//	- id: IMAGE_SOUL
//	  path: images/battle/soul.png
type ImageResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// SoundResource 音频资源
// Music 为 true 的音频解码为无限循环流（背景音乐、脚步声）
//
//	- id: MUSIC_BATTLE_AGAINST_ABSTRACTION
//	  path: music/battle_against_abstraction.mp3
//	  music: true
type SoundResource struct {
	ID    string `yaml:"id"`
	Path  string `yaml:"path"`
	Music bool   `yaml:"music,omitempty"`
}

// FontResource 字体资源（TTF/OTF，字号在使用时指定）
type FontResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// Validate 检查资源ID在所有组中唯一且路径非空
func (c *ResourceConfig) Validate() error {
	seen := make(map[string]string)
	check := func(group, id, path string) error {
		if id == "" {
			return fmt.Errorf("group %s: resource with empty id", group)
		}
		if path == "" {
			return fmt.Errorf("group %s: resource %s has empty path", group, id)
		}
		if other, dup := seen[id]; dup {
			return fmt.Errorf("resource %s declared in both %s and %s", id, other, group)
		}
		seen[id] = group
		return nil
	}

	for name, group := range c.Groups {
		for _, img := range group.Images {
			if err := check(name, img.ID, img.Path); err != nil {
				return err
			}
		}
		for _, snd := range group.Sounds {
			if err := check(name, snd.ID, snd.Path); err != nil {
				return err
			}
		}
		for _, font := range group.Fonts {
			if err := check(name, font.ID, font.Path); err != nil {
				return err
			}
		}
	}
	return nil
}

// buildFullPath 拼接基础路径与相对路径
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	if len(relativePath) > 0 && relativePath[0] == '/' {
		return basePath + relativePath
	}
	return basePath + "/" + relativePath
}
