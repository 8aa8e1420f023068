package renderer

import (
	"context"
	"fmt"
	"image"
	"math/rand"
	"time"

	"github.com/df07/go-nextweek-raytracer/pkg/log"
)

var logger = log.New("renderer")

// ProgressiveConfig contains configuration for progressive rendering
type ProgressiveConfig struct {
	TileSize           int   // Size of each square tile in pixels
	InitialSamples     int   // Samples for the first (preview) pass
	MaxSamplesPerPixel int   // Total samples per pixel after the last pass
	Passes             int   // Number of passes
	NumWorkers         int   // Number of parallel workers (0 = use CPU count)
	Seed               int64 // Base seed for the per-tile random streams
}

// DefaultProgressiveConfig returns sensible default values
func DefaultProgressiveConfig() ProgressiveConfig {
	return ProgressiveConfig{
		TileSize:           32,
		InitialSamples:     1,
		MaxSamplesPerPixel: 100,
		Passes:             5,
		NumWorkers:         0,
		Seed:               42,
	}
}

// ProgressiveRaytracer manages progressive rendering with multiple passes
type ProgressiveRaytracer struct {
	width, height int
	config        ProgressiveConfig
	tiles         []*Tile        // Tile management
	pixelStats    [][]PixelStats // Shared pixel statistics array (global image coordinates)
	workerPool    *WorkerPool    // Worker pool for parallel processing
}

// NewProgressiveRaytracer creates a new progressive raytracer. Zero config
// fields fall back to DefaultProgressiveConfig.
func NewProgressiveRaytracer(scene Scene, width, height int, config ProgressiveConfig) *ProgressiveRaytracer {
	config = withDefaults(config)
	tiles := NewTileGrid(width, height, config.TileSize, config.Seed)

	return &ProgressiveRaytracer{
		width:      width,
		height:     height,
		config:     config,
		tiles:      tiles,
		pixelStats: newPixelStatsGrid(width, height),
		workerPool: NewWorkerPool(NewRaytracer(scene, width, height), config.NumWorkers, len(tiles)),
	}
}

func withDefaults(config ProgressiveConfig) ProgressiveConfig {
	defaults := DefaultProgressiveConfig()
	if config.TileSize <= 0 {
		config.TileSize = defaults.TileSize
	}
	if config.MaxSamplesPerPixel <= 0 {
		config.MaxSamplesPerPixel = defaults.MaxSamplesPerPixel
	}
	if config.Passes <= 0 {
		config.Passes = defaults.Passes
	}
	if config.InitialSamples <= 0 {
		config.InitialSamples = defaults.InitialSamples
	}
	config.InitialSamples = min(config.InitialSamples, config.MaxSamplesPerPixel)
	return config
}

// getSamplesForPass calculates the target total samples for a given pass
func (pr *ProgressiveRaytracer) getSamplesForPass(passNumber int) int {
	if pr.config.Passes == 1 || passNumber >= pr.config.Passes {
		return pr.config.MaxSamplesPerPixel
	}

	// First pass is a quick preview
	if passNumber == 1 {
		return pr.config.InitialSamples
	}

	// Divide remaining samples evenly across remaining passes
	remainingSamples := pr.config.MaxSamplesPerPixel - pr.config.InitialSamples
	samplesPerPass := remainingSamples / (pr.config.Passes - 1)

	return pr.config.InitialSamples + (passNumber-1)*samplesPerPass
}

// PassResult contains the result of a single pass
type PassResult struct {
	PassNumber int
	Image      *image.RGBA
	Stats      RenderStats
	Duration   time.Duration
	IsLast     bool
}

// RenderPass renders a single progressive pass using parallel processing
func (pr *ProgressiveRaytracer) RenderPass(passNumber int) (PassResult, error) {
	start := time.Now()
	targetSamples := pr.getSamplesForPass(passNumber)

	logger.Debugf("pass %d: target %d samples per pixel (using %d workers)",
		passNumber, targetSamples, pr.workerPool.GetNumWorkers())

	pr.workerPool.Start()

	for id, tile := range pr.tiles {
		pr.workerPool.SubmitTask(TileTask{
			Tile:          tile,
			PassNumber:    passNumber,
			TargetSamples: targetSamples,
			TaskID:        id,
			PixelStats:    pr.pixelStats,
		})
	}

	for i := 0; i < len(pr.tiles); i++ {
		result, ok := pr.workerPool.GetResult()
		if !ok {
			return PassResult{}, fmt.Errorf("worker pool closed unexpectedly")
		}
		pr.tiles[result.TaskID].PassesCompleted++
	}

	img, stats := pr.assembleCurrentImage(targetSamples)
	return PassResult{
		PassNumber: passNumber,
		Image:      img,
		Stats:      stats,
		Duration:   time.Since(start),
		IsLast:     passNumber >= pr.config.Passes,
	}, nil
}

// RenderProgressive runs every pass in a background goroutine, delivering
// each intermediate frame on the returned channel. Cancellation is checked
// between passes.
func (pr *ProgressiveRaytracer) RenderProgressive(ctx context.Context) (<-chan PassResult, <-chan error) {
	passChan := make(chan PassResult, 1)
	errChan := make(chan error, 1)

	go func() {
		defer close(passChan)
		defer close(errChan)
		defer pr.workerPool.Stop()

		logger.Infof("starting progressive rendering: %dx%d, %d passes, %d spp",
			pr.width, pr.height, pr.config.Passes, pr.config.MaxSamplesPerPixel)

		for pass := 1; pass <= pr.config.Passes; pass++ {
			select {
			case <-ctx.Done():
				logger.Noticef("rendering cancelled before pass %d", pass)
				errChan <- ctx.Err()
				return
			default:
			}

			result, err := pr.RenderPass(pass)
			if err != nil {
				errChan <- err
				return
			}

			logger.Infof("pass %d completed in %v (%.1f samples/pixel)",
				pass, result.Duration, result.Stats.AverageSamples)

			select {
			case passChan <- result:
			case <-ctx.Done():
				errChan <- ctx.Err()
				return
			}
		}
	}()

	return passChan, errChan
}

// Render runs all passes, invoking onPass (if non-nil) with every
// intermediate frame, and returns the results of all passes in order.
func (pr *ProgressiveRaytracer) Render(ctx context.Context, onPass func(PassResult)) ([]PassResult, error) {
	passChan, errChan := pr.RenderProgressive(ctx)

	var results []PassResult
	for result := range passChan {
		if onPass != nil {
			onPass(result)
		}
		results = append(results, result)
	}

	if err := <-errChan; err != nil {
		return results, err
	}
	return results, nil
}

// assembleCurrentImage creates an image from the current state of the shared pixel stats
// and calculates render statistics in a single pass
func (pr *ProgressiveRaytracer) assembleCurrentImage(targetSamples int) (*image.RGBA, RenderStats) {
	stats := RenderStats{
		TotalPixels: pr.width * pr.height,
		MaxSamples:  targetSamples,
		MinSamples:  targetSamples,
	}

	for y := 0; y < pr.height; y++ {
		for x := 0; x < pr.width; x++ {
			count := pr.pixelStats[y][x].SampleCount
			stats.TotalSamples += count
			stats.MinSamples = min(stats.MinSamples, count)
			stats.MaxSamplesUsed = max(stats.MaxSamplesUsed, count)
		}
	}

	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	}

	return assembleImage(pr.pixelStats, pr.width, pr.height), stats
}

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID              int             // Unique tile identifier
	Bounds          image.Rectangle // Pixel bounds (x0,y0,x1,y1)
	PassesCompleted int             // Number of passes completed for this tile
	Random          *rand.Rand      // Tile-specific random stream, persistent across passes
}

// NewTile creates a new tile whose random stream is derived from seed and id
func NewTile(id int, bounds image.Rectangle, seed int64) *Tile {
	return &Tile{
		ID:     id,
		Bounds: bounds,
		Random: rand.New(rand.NewSource(seed*1_000_003 + int64(id) + 1)),
	}
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int, seed int64) []*Tile {
	var tiles []*Tile
	tileID := 0

	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, NewTile(tileID, image.Rect(x0, y0, x1, y1), seed))
			tileID++
		}
	}

	return tiles
}
