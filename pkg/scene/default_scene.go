package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnknownScene is returned when a scene name matches no built-in scene or file
var ErrUnknownScene = errors.New("unknown scene")

// NewDefaultScene creates the reference shaded scene
func NewDefaultScene() *Scene {
	return mustBuild("default", DefaultConfig())
}

// NewSilhouetteScene creates the reference geometry rendered as a flat silhouette
func NewSilhouetteScene() *Scene {
	return mustBuild("silhouette", SilhouetteConfig())
}

// SilhouetteConfig returns the reference scene configured for silhouette mode
func SilhouetteConfig() Config {
	cfg := DefaultConfig()
	cfg.Mode = string(ModeSilhouette)
	return cfg
}

// mustBuild is for built-in configs, which are always valid
func mustBuild(name string, cfg Config) *Scene {
	s, err := cfg.Build(name)
	if err != nil {
		panic(err)
	}
	return s
}

// BuiltinConfig returns the configuration of a built-in scene
func BuiltinConfig(name string) (Config, bool) {
	switch name {
	case "default":
		return DefaultConfig(), true
	case "silhouette":
		return SilhouetteConfig(), true
	default:
		return Config{}, false
	}
}

// ResolveConfig finds the configuration for a scene name. The name may be a
// built-in scene, a JSON file path, or the base name of a file in the scenes
// directory.
func ResolveConfig(name string) (Config, error) {
	if name == "" {
		return Config{}, fmt.Errorf("%w: empty scene name", ErrUnknownScene)
	}
	if cfg, ok := BuiltinConfig(name); ok {
		return cfg, nil
	}

	if strings.HasSuffix(name, ".json") {
		if _, err := os.Stat(name); err != nil {
			return Config{}, fmt.Errorf("%w: %s", ErrUnknownScene, name)
		}
		return LoadConfig(name)
	}

	if dir := findScenesDir(); dir != "" {
		path := filepath.Join(dir, name+".json")
		if _, err := os.Stat(path); err == nil {
			return LoadConfig(path)
		}
	}
	return Config{}, fmt.Errorf("%w: %s", ErrUnknownScene, name)
}

// NewScene resolves and builds a scene by name
func NewScene(name string) (*Scene, error) {
	cfg, err := ResolveConfig(name)
	if err != nil {
		return nil, err
	}
	return cfg.Build(sceneID(name))
}

func sceneID(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
