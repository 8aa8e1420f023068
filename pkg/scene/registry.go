package scene

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownScene is returned by New for names not in the registry
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Registry key, as passed to New
	DisplayName string
	Description string
}

type sceneEntry struct {
	info  SceneInfo
	build func(Options) (*Scene, error)
}

var registry = []sceneEntry{
	{newInfo("spheres", "Diffuse, fuzzy metal and hollow glass spheres on a large ground sphere"), NewSpheresScene},
	{newInfo("random", "Random sphere field with moving spheres, checker ground and defocus blur"), NewRandomScene},
	{newInfo("perlin", "Two spheres with turbulent marble noise"), NewPerlinScene},
	{newInfo("earth", "Image-textured globe"), NewEarthScene},
	{newInfo("light", "Noise spheres lit by an emissive sphere and rectangle"), NewSimpleLightScene},
	{newInfo("cornell", "Cornell box with two rotated blocks"), NewCornellScene},
	{newInfo("cornell-smoke", "Cornell box with blocks of white and black smoke"), NewCornellSmokeScene},
	{newInfo("final", "Box terrain, moving, glass, metal, noise and textured spheres, fog and a rotated sphere cluster"), NewFinalScene},
}

func newInfo(id, description string) SceneInfo {
	return SceneInfo{ID: id, DisplayName: titleCase(id), Description: description}
}

// ListScenes returns the built-in scenes in registry order
func ListScenes() []SceneInfo {
	infos := make([]SceneInfo, len(registry))
	for i, entry := range registry {
		infos[i] = entry.info
	}
	return infos
}

// New builds the named built-in scene
func New(name string, opts Options) (*Scene, error) {
	for _, entry := range registry {
		if entry.info.ID == name {
			logger.Infof("building scene %q (seed %d)", name, opts.Seed)
			return entry.build(opts)
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
}

// titleCase converts a registry key to title case
// e.g., "cornell-smoke" -> "Cornell Smoke"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
