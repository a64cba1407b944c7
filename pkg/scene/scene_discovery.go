package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Mode        string `json:"mode"`        // "silhouette" or "shaded"
	Type        string `json:"type"`        // "builtin" or "file"
	FilePath    string `json:"filePath"`    // Path to JSON file (file type only)
}

// sceneFileHeader is the optional metadata block of a scene file
type sceneFileHeader struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Mode        string `json:"mode"`
}

// BuiltinScenes returns the scenes compiled into the binary
func BuiltinScenes() []SceneInfo {
	return []SceneInfo{
		{
			ID:          "default",
			DisplayName: "Shaded Sphere",
			Description: "Magenta unit sphere with Phong shading from one point light",
			Mode:        string(ModeShaded),
			Type:        "builtin",
		},
		{
			ID:          "silhouette",
			DisplayName: "Silhouette",
			Description: "Reference geometry with every hit pixel flagged in red",
			Mode:        string(ModeSilhouette),
			Type:        "builtin",
		},
	}
}

// ListScenes returns built-in scenes and scene files together, sorted by ID
func ListScenes() ([]SceneInfo, error) {
	fileScenes, err := ListFileScenes()
	if err != nil {
		return nil, fmt.Errorf("failed to list scene files: %w", err)
	}
	scenes := append(BuiltinScenes(), fileScenes...)
	sort.SliceStable(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes, nil
}

// ListFileScenes scans the scenes directory for JSON scene files
func ListFileScenes() ([]SceneInfo, error) {
	scenesDir := findScenesDir()
	if scenesDir == "" {
		// No scenes directory found, return empty list
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(scenesDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, filePath := range files {
		info, err := ParseSceneMetadata(filePath)
		if err != nil {
			// Skip unreadable files but keep listing the rest
			continue
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes, nil
}

// ParseSceneMetadata extracts display metadata from a scene file
func ParseSceneMetadata(filePath string) (SceneInfo, error) {
	id := sceneID(filePath)
	info := SceneInfo{
		ID:          id,
		DisplayName: titleCase(id),
		Mode:        string(ModeShaded),
		Type:        "file",
		FilePath:    filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return info, err
	}

	var header sceneFileHeader
	if err := json.Unmarshal(data, &header); err != nil {
		return info, err
	}
	if header.Name != "" {
		info.DisplayName = header.Name
	}
	if header.Mode != "" {
		info.Mode = header.Mode
	}
	info.Description = header.Description
	return info, nil
}

func findScenesDir() string {
	// Try different possible paths for scenes directory
	for _, path := range []string{"scenes", "../scenes"} {
		if stat, err := os.Stat(path); err == nil && stat.IsDir() {
			return path
		}
	}
	return ""
}

// titleCase converts a filename-style string to title case
// e.g., "big-sphere" -> "Big Sphere"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
