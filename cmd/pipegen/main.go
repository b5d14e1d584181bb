// Command pipegen grows a pipe world offline and writes both instance
// streams as one JSON document, for renderers that load geometry ahead
// of time instead of streaming it.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"cogentcore.org/core/base/randx"

	"github.com/gravitas-games/pipeworks/internal/world"
	"github.com/gravitas-games/pipeworks/pkg/grid3"
	"github.com/gravitas-games/pipeworks/pkg/models"
)

type output struct {
	Bounds   [3]uint32         `json:"bounds"`
	Seed     int64             `json:"seed"`
	Straight []models.Instance `json:"straight"`
	Elbow    []models.Instance `json:"elbow"`
}

func main() {
	var (
		boundsX  = flag.Uint("x", 10, "grid extent on the X axis")
		boundsY  = flag.Uint("y", 10, "grid extent on the Y axis")
		boundsZ  = flag.Uint("z", 10, "grid extent on the Z axis")
		turnProb = flag.Float64("turn", 0.1, "per-step turn probability")
		stopProb = flag.Float64("stop", 0.1, "per-step stop probability")
		count    = flag.Int("count", 100, "number of segments to grow")
		seed     = flag.Int64("seed", 0, "random seed (0 seeds from the clock)")
		outPath  = flag.String("o", "", "output file (default stdout)")
	)
	flag.Parse()

	w, err := world.New(world.Params{
		Bounds:          grid3.Bounds{X: uint32(*boundsX), Y: uint32(*boundsY), Z: uint32(*boundsZ)},
		TurnProbability: float32(*turnProb),
		StopProbability: float32(*stopProb),
	})
	if err != nil {
		log.Fatalf("Invalid parameters: %v", err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := randx.NewSysRand(*seed)

	for i := 0; i < *count; i++ {
		if _, err := w.Grow(rng); err != nil {
			if errors.Is(err, world.ErrGridSaturated) {
				log.Printf("Grid saturated after %d segments, stopping early", w.SegmentCount())
				break
			}
			log.Fatalf("Growth failed: %v", err)
		}
	}

	b := w.Bounds()
	doc := output{
		Bounds:   [3]uint32{b.X, b.Y, b.Z},
		Seed:     *seed,
		Straight: w.StraightInstances(),
		Elbow:    w.ElbowInstances(),
	}

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatalf("Failed to create %s: %v", *outPath, err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}

	log.Printf("Grew %d segments (%d straight, %d elbow) in %v",
		w.SegmentCount(), len(w.StraightInstances()), len(w.ElbowInstances()), b)
}
