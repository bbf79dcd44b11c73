package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Request limits
const (
	MinImageSize = 16
	MaxImageSize = 2000
	MaxSamples   = 64
	MaxDepth     = 16
)

// Server handles web requests for the raytracer
type Server struct {
	port   int
	logger core.Logger
}

// NewServer creates a new web server. A nil logger discards server logs.
func NewServer(port int, logger core.Logger) *Server {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Server{port: port, logger: logger}
}

// RenderRequest represents a render request from the client. Zero values
// defer to the scene's own settings.
type RenderRequest struct {
	Scene    string `json:"scene"`    // Built-in id or yaml:<name>
	Width    int    `json:"width"`    // Image width
	Height   int    `json:"height"`   // Image height
	Samples  int    `json:"samples"`  // Samples per pixel
	MaxDepth int    `json:"maxDepth"` // Reflection/refraction depth
}

// Handler returns the server's routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Serve static files
	mux.Handle("/", http.FileServer(http.Dir("static/")))

	// API endpoints
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/render.png", s.handleRenderPNG)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists built-in and file scenes by group
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	scenes, err := scene.ListAllScenes()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, scenes)
}

// handleSceneConfig returns the default configuration for a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = "default"
	}

	sceneObj, err := s.createScene(&RenderRequest{Scene: sceneName})
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	response := map[string]interface{}{
		"scene":    sceneName,
		"metadata": sceneObj.Metadata,
		"defaults": map[string]interface{}{
			"width":           sceneObj.CameraConfig.Width,
			"height":          sceneObj.CameraConfig.Height,
			"samplesPerPixel": sceneObj.SamplingConfig.SamplesPerPixel,
			"maxDepth":        sceneObj.SamplingConfig.MaxDepth,
		},
		"limits": map[string]interface{}{
			"width":   map[string]int{"min": MinImageSize, "max": MaxImageSize},
			"height":  map[string]int{"min": MinImageSize, "max": MaxImageSize},
			"samples": map[string]int{"min": 1, "max": MaxSamples},
			"maxDepth": map[string]int{
				"min": 0,
				"max": MaxDepth,
			},
		},
		"primitiveCount": sceneObj.GetPrimitiveCount(),
	}
	writeJSON(w, http.StatusOK, response)
}

// parseRenderRequest parses and validates request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}
	if err := s.parseCommonSceneParams(r, req); err != nil {
		return nil, err
	}

	var err error
	query := r.URL.Query()
	if req.Samples, err = parseIntParam(query, "samples", 0, 1, MaxSamples); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(query, "maxDepth", 0, 0, MaxDepth); err != nil {
		return nil, err
	}

	// Performance warning
	if req.Width*req.Height > 800*600 && req.Samples > 16 {
		log.Printf("Render warning: Large image with high samples may render slowly")
	}
	return req, nil
}

// parseCommonSceneParams reads the scene id and image size shared by all
// scene endpoints
func (s *Server) parseCommonSceneParams(r *http.Request, req *RenderRequest) error {
	query := r.URL.Query()
	if req.Scene = query.Get("scene"); req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, MinImageSize, MaxImageSize); err != nil {
		return err
	}
	if req.Height, err = parseIntParam(query, "height", 0, MinImageSize, MaxImageSize); err != nil {
		return err
	}
	return nil
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

// createScene builds the requested scene, applying the requested size
func (s *Server) createScene(req *RenderRequest) (*scene.Scene, error) {
	overrides := geometry.CameraConfig{Width: req.Width, Height: req.Height}

	sceneObj, err := scene.NewBuiltin(req.Scene, overrides)
	if err == nil {
		return sceneObj, nil
	}
	if !errors.Is(err, scene.ErrUnknownScene) || !strings.HasPrefix(req.Scene, scene.FileScenePrefix) {
		return nil, err
	}

	files, err := scene.ListSceneFiles()
	if err != nil {
		return nil, err
	}
	for _, info := range files {
		if info.ID != req.Scene {
			continue
		}
		if err := loaders.ValidateScenePath(info.FilePath); err != nil {
			return nil, fmt.Errorf("scene %q: %w", req.Scene, err)
		}
		return loaders.LoadSceneFile(info.FilePath, overrides)
	}
	return nil, fmt.Errorf("scene %q: %w", req.Scene, scene.ErrUnknownScene)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
