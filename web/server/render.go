package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"time"

	"github.com/df07/go-nextweek-raytracer/pkg/renderer"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	sceneParams
	MaxSamples int // 0 uses the scene's recommendation
	MaxPasses  int
	MaxDepth   int // 0 uses the scene's recommendation
}

// ProgressUpdate is sent as one SSE event per completed pass
type ProgressUpdate struct {
	PassNumber  int     `json:"passNumber"`
	TotalPasses int     `json:"totalPasses"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	ImageData   string  `json:"imageData"` // Base64 encoded PNG
	Stats       Stats   `json:"stats"`
	Luminance   float64 `json:"luminance"`
	IsComplete  bool    `json:"isComplete"`
	ElapsedMs   int64   `json:"elapsedMs"`
}

// Stats represents render statistics
type Stats struct {
	TotalPixels    int     `json:"totalPixels"`
	TotalSamples   int     `json:"totalSamples"`
	AverageSamples float64 `json:"averageSamples"`
	MaxSamples     int     `json:"maxSamples"`
	MinSamples     int     `json:"minSamples"`
	MaxSamplesUsed int     `json:"maxSamplesUsed"`
}

// handleRender streams a progressive render as server-sent events. Each
// pass produces a "progress" event; the stream ends with "complete" or
// "error". A client disconnect cancels the render between passes.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}
	setSSEHeaders(w)

	req, err := parseRenderRequest(r)
	if err != nil {
		sendSSEEvent(w, flusher, "error", fmt.Sprintf("invalid request: %v", err))
		return
	}

	sceneObj, height, err := s.build(req.sceneParams)
	if err != nil {
		sendSSEEvent(w, flusher, "error", err.Error())
		return
	}
	if req.MaxSamples > 0 {
		sceneObj.SamplingConfig.SamplesPerPixel = req.MaxSamples
	}
	if req.MaxDepth > 0 {
		sceneObj.SamplingConfig.MaxDepth = req.MaxDepth
	}

	if req.Width*height > 800*600 && sceneObj.SamplingConfig.SamplesPerPixel > 100 {
		logger.Warningf("large image with high samples may render slowly (%dx%d, %d spp)",
			req.Width, height, sceneObj.SamplingConfig.SamplesPerPixel)
	}

	pr := renderer.NewProgressiveRaytracer(sceneObj, req.Width, height, renderer.ProgressiveConfig{
		TileSize:           64,
		InitialSamples:     1,
		MaxSamplesPerPixel: sceneObj.SamplingConfig.SamplesPerPixel,
		Passes:             req.MaxPasses,
		Seed:               req.Seed,
	})

	ctx := r.Context()
	start := time.Now()
	passChan, errChan := pr.RenderProgressive(ctx)

	for pass := range passChan {
		update, err := newProgressUpdate(pass, req.MaxPasses, start)
		if err != nil {
			sendSSEEvent(w, flusher, "error", err.Error())
			// Drain so the render goroutine can exit.
			for range passChan {
			}
			return
		}
		data, err := json.Marshal(update)
		if err != nil {
			sendSSEEvent(w, flusher, "error", err.Error())
			for range passChan {
			}
			return
		}
		sendSSEEvent(w, flusher, "progress", string(data))
	}

	if err := <-errChan; err != nil {
		if ctx.Err() != nil {
			logger.Infof("render of %q cancelled by client", req.Scene)
			return
		}
		sendSSEEvent(w, flusher, "error", err.Error())
		return
	}

	logger.Infof("render of %q finished in %v", req.Scene, time.Since(start))
	sendSSEEvent(w, flusher, "complete", "{}")
}

func parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	values := r.URL.Query()
	params, err := parseSceneParams(values)
	if err != nil {
		return nil, err
	}

	req := &RenderRequest{sceneParams: params}
	if req.MaxSamples, err = parseIntParam(values, "maxSamples", 0, 0, maxSamples); err != nil {
		return nil, err
	}
	if req.MaxPasses, err = parseIntParam(values, "maxPasses", 5, 1, maxPasses); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(values, "maxDepth", 0, 0, maxDepth); err != nil {
		return nil, err
	}
	return req, nil
}

func newProgressUpdate(pass renderer.PassResult, totalPasses int, start time.Time) (ProgressUpdate, error) {
	imageData, err := imageToBase64PNG(pass.Image)
	if err != nil {
		return ProgressUpdate{}, fmt.Errorf("failed to encode pass %d: %w", pass.PassNumber, err)
	}

	bounds := pass.Image.Bounds()
	return ProgressUpdate{
		PassNumber:  pass.PassNumber,
		TotalPasses: totalPasses,
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ImageData:   imageData,
		Stats: Stats{
			TotalPixels:    pass.Stats.TotalPixels,
			TotalSamples:   pass.Stats.TotalSamples,
			AverageSamples: pass.Stats.AverageSamples,
			MaxSamples:     pass.Stats.MaxSamples,
			MinSamples:     pass.Stats.MinSamples,
			MaxSamplesUsed: pass.Stats.MaxSamplesUsed,
		},
		Luminance:  renderer.CalculateAverageLuminance(pass.Image),
		IsComplete: pass.IsLast,
		ElapsedMs:  time.Since(start).Milliseconds(),
	}, nil
}

// imageToBase64PNG converts an image to base64-encoded PNG
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

func sendSSEEvent(w http.ResponseWriter, flusher http.Flusher, event, data string) {
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
	flusher.Flush()
}
