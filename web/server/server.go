package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/df07/go-nextweek-raytracer/pkg/config"
	"github.com/df07/go-nextweek-raytracer/pkg/log"
	"github.com/df07/go-nextweek-raytracer/pkg/scene"
)

var logger = log.New("server")

// Server streams progressive renders of the built-in scenes over HTTP
type Server struct {
	port int
	cfg  config.Config
	mux  *http.ServeMux
}

// NewServer creates a web server that builds scenes with the given configuration
func NewServer(port int, cfg config.Config) *Server {
	s := &Server{port: port, cfg: cfg, mux: http.NewServeMux()}

	s.mux.HandleFunc("/api/health", s.handleHealth)
	s.mux.HandleFunc("/api/scenes", s.handleScenes)
	s.mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	s.mux.HandleFunc("/api/render", s.handleRender)
	s.mux.HandleFunc("/api/inspect", s.handleInspect)

	return s
}

// Handler exposes the routes, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Noticef("starting web server on http://localhost%s", srv.Addr)
		errChan <- srv.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errChan; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type sceneListEntry struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
}

func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	infos := scene.ListScenes()
	entries := make([]sceneListEntry, len(infos))
	for i, info := range infos {
		entries[i] = sceneListEntry{ID: info.ID, DisplayName: info.DisplayName, Description: info.Description}
	}
	writeJSON(w, http.StatusOK, entries)
}

// handleSceneConfig returns the default configuration for a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = defaultScene
	}

	sceneObj, err := s.createScene(sceneName, 0, 0, 0)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	sampling := sceneObj.GetSamplingConfig()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"scene":       sceneName,
		"aspectRatio": sceneObj.CameraConfig.AspectRatio,
		"defaults": map[string]int{
			"samplesPerPixel": sampling.SamplesPerPixel,
			"maxDepth":        sampling.MaxDepth,
		},
		"limits": map[string]map[string]int{
			"width":      {"min": minDimension, "max": maxDimension},
			"height":     {"min": minDimension, "max": maxDimension},
			"maxSamples": {"min": 1, "max": maxSamples},
			"maxPasses":  {"min": 1, "max": maxPasses},
			"maxDepth":   {"min": 1, "max": maxDepth},
		},
	})
}

const (
	defaultScene = "cornell"
	minDimension = 10
	maxDimension = 2000
	maxSamples   = 10000
	maxPasses    = 100
	maxDepth     = 1000
)

// createScene builds a registry scene. A zero height lets the scene pick
// its own aspect ratio.
func (s *Server) createScene(name string, width, height int, seed int64) (*scene.Scene, error) {
	return scene.New(name, scene.Options{
		Width:          width,
		Height:         height,
		TextureDir:     s.cfg.TextureDir,
		MaxTextureSize: s.cfg.MaxTextureSize,
		Seed:           seed,
	})
}

// sceneParams are the query parameters shared by render and inspect
type sceneParams struct {
	Scene  string
	Width  int
	Height int // 0 follows the scene's aspect ratio
	Seed   int64
}

// build creates the scene and resolves the frame height
func (s *Server) build(p sceneParams) (*scene.Scene, int, error) {
	sceneObj, err := s.createScene(p.Scene, p.Width, p.Height, p.Seed)
	if err != nil {
		return nil, 0, err
	}
	height := p.Height
	if height == 0 {
		height = max(1, int(float64(p.Width)/sceneObj.CameraConfig.AspectRatio))
	}
	return sceneObj, height, nil
}

func parseSceneParams(values url.Values) (sceneParams, error) {
	p := sceneParams{Scene: values.Get("scene")}
	if p.Scene == "" {
		p.Scene = defaultScene
	}

	var err error
	if p.Width, err = parseIntParam(values, "width", 400, minDimension, maxDimension); err != nil {
		return p, err
	}
	if p.Height, err = parseIntParam(values, "height", 0, 0, maxDimension); err != nil {
		return p, err
	}
	seed, err := parseIntParam(values, "seed", 42, 0, 1<<31-1)
	if err != nil {
		return p, err
	}
	p.Seed = int64(seed)
	return p, nil
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

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warningf("failed to write response: %v", err)
	}
}
