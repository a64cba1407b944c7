package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/df07/go-raycaster/pkg/display"
	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/scene"
)

// Canvas size limits accepted by the render endpoint
const (
	minCanvasSize = 16
	maxCanvasSize = 2000
)

// Server handles web requests for the ray caster
type Server struct {
	port      int
	workers   int
	renderSeq atomic.Int64
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// SetNumWorkers sets the worker count for each render (0 = auto-detect)
func (s *Server) SetNumWorkers(n int) {
	s.workers = n
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene string `json:"scene"` // Scene name (e.g., "default")
	Mode  string `json:"mode"`  // Optional mode override
	Size  int    `json:"size"`  // Canvas side in pixels
}

// Stats represents render statistics
type Stats struct {
	TotalPixels int     `json:"totalPixels"`
	HitPixels   int     `json:"hitPixels"`
	HitRatio    float64 `json:"hitRatio"`
	Tiles       int     `json:"tiles"`
	Workers     int     `json:"workers"`
	ElapsedMs   int64   `json:"elapsedMs"`
}

// Handler returns the router with all API endpoints registered
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists built-in and file scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	scenes, err := scene.ListScenes()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, scenes)
}

// handleRender renders one frame and returns it as a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	renderID := fmt.Sprintf("render-%d", s.renderSeq.Add(1))
	config := renderer.DefaultRenderConfig()
	config.NumWorkers = s.workers

	raytracer, err := renderer.NewRaytracer(sceneObj, config, NewRenderLogger(renderID))
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	fb := display.NewFramebuffer(sceneObj.Width, sceneObj.Height)
	stats, err := raytracer.RenderFrame(r.Context(), fb)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Render error: %v", err))
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, fb.Image()); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	statsJSON, _ := json.Marshal(toStats(stats))
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Id", renderID)
	w.Header().Set("X-Render-Stats", string(statsJSON))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: "default"}

	if sceneName := query.Get("scene"); sceneName != "" {
		req.Scene = sceneName
	}
	if !validSceneName(req.Scene) {
		return nil, fmt.Errorf("invalid scene: %s", req.Scene)
	}

	if mode := query.Get("mode"); mode != "" {
		if _, err := scene.ParseMode(mode); err != nil {
			return nil, err
		}
		req.Mode = mode
	}

	var err error
	if req.Size, err = parseIntParam(query, "size", 0, minCanvasSize, maxCanvasSize); err != nil {
		return nil, err
	}
	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// createScene resolves the named scene and applies request overrides
func (s *Server) createScene(req *RenderRequest) (*scene.Scene, error) {
	cfg, err := scene.ResolveConfig(req.Scene)
	if err != nil {
		return nil, err
	}
	if req.Mode != "" {
		cfg.Mode = req.Mode
	}
	if req.Size > 0 {
		cfg.CanvasSize = req.Size
	}
	return cfg.Build(req.Scene)
}

// handleSceneConfig returns the configuration for a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = "default"
	}
	if !validSceneName(sceneName) {
		writeError(w, http.StatusBadRequest, "Invalid scene: "+sceneName)
		return
	}

	cfg, err := scene.ResolveConfig(sceneName)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	response := map[string]interface{}{
		"scene":    sceneName,
		"defaults": cfg,
		"limits": map[string]interface{}{
			"size": map[string]int{
				"min": minCanvasSize,
				"max": maxCanvasSize,
			},
			"mode": []scene.Mode{scene.ModeSilhouette, scene.ModeShaded},
		},
	}
	writeJSON(w, http.StatusOK, response)
}

// validSceneName accepts scene IDs only, never file paths
func validSceneName(name string) bool {
	return !strings.ContainsAny(name, `/\`) && !strings.HasSuffix(name, ".json")
}

func toStats(stats renderer.RenderStats) Stats {
	return Stats{
		TotalPixels: stats.TotalPixels,
		HitPixels:   stats.HitPixels,
		HitRatio:    stats.HitRatio(),
		Tiles:       stats.Tiles,
		Workers:     stats.Workers,
		ElapsedMs:   stats.Duration.Round(time.Millisecond).Milliseconds(),
	}
}

// statusFor maps scene errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, scene.ErrUnknownScene):
		return http.StatusNotFound
	case errors.Is(err, scene.ErrInvalidConfig):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
