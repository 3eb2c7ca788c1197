// Command bitperft counts move-generation leaf nodes from the starting
// position and can render the resulting board.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/hailam/bitmove/internal/board"
	"github.com/hailam/bitmove/internal/perft"
	"github.com/hailam/bitmove/internal/render"
	"github.com/hailam/bitmove/internal/storage"
)

var (
	depth      = flag.Int("depth", 4, "perft depth")
	divide     = flag.Bool("divide", false, "print per-move node counts at root")
	workers    = flag.Int("workers", 0, "parallel root moves (0 = GOMAXPROCS)")
	useCache   = flag.Bool("cache", false, "cache subtree counts in BadgerDB")
	cacheDir   = flag.String("cachedir", "", "cache directory (default: platform data dir, or BITMOVE_CACHE_DIR)")
	moves      = flag.String("moves", "", "space-separated UCI moves to play before counting")
	highlight  = flag.String("highlight", "", "square whose legal destinations are highlighted in diagrams")
	svgPath    = flag.String("svg", "", "write an SVG diagram of the position")
	pngPath    = flag.String("png", "", "write a PNG diagram of the position")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	debug      = flag.Bool("debug", false, "log positions that reach move generation in a broken state")
)

func main() {
	flag.Parse()
	board.DebugMoveValidation = *debug

	// Start CPU profiling if requested (via flag or environment variable)
	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	// Play any setup moves from the starting position
	pos := board.NewPosition()
	for _, s := range strings.Fields(*moves) {
		m, err := board.ParseMove(s, pos)
		if err != nil {
			log.Fatalf("move %s: %v", s, err)
		}
		if _, err := pos.DoMove(m); err != nil {
			log.Fatalf("move %s: %v", s, err)
		}
	}

	if err := writeDiagrams(pos); err != nil {
		log.Fatal(err)
	}

	// Open the subtree cache only when asked; badger holds a directory lock
	var cache perft.Cache
	if *useCache {
		store, err := openStorage()
		if err != nil {
			log.Fatal(err)
		}
		defer store.Close()
		cache = store
		defer reportStats(store)
	}

	// Ctrl-C cancels the workers mid-tree
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	div, err := perft.Parallel(ctx, pos, *depth, perft.Options{Workers: *workers, Cache: cache})
	if err != nil {
		log.Printf("perft failed: %v", err)
		return
	}
	elapsed := time.Since(start)
	total := perft.Total(div)

	if *divide {
		for _, m := range perft.Sorted(div) {
			fmt.Printf("%s: %d\n", m, div[m])
		}
		fmt.Println()
	}
	fmt.Printf("Depth: %d\nTotal: %d\nTime: %s\nNPS: %.0f\n", *depth, total, elapsed, float64(total)/elapsed.Seconds())

	// Record the run so later invocations can report cumulative stats
	if store, ok := cache.(*storage.Storage); ok {
		result := storage.RunResult{FEN: pos.ToFEN(), Depth: *depth, Nodes: total, Duration: elapsed}
		if err := store.RecordRun(result); err != nil {
			log.Printf("Warning: run not recorded: %v", err)
		}
	}
}

func openStorage() (*storage.Storage, error) {
	dir := *cacheDir
	if dir == "" {
		dir = os.Getenv("BITMOVE_CACHE_DIR")
	}
	if dir == "" {
		return storage.NewStorage()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return storage.Open(dir)
}

func reportStats(store *storage.Storage) {
	stats, err := store.LoadStats()
	if err != nil {
		log.Printf("Warning: stats unavailable: %v", err)
		return
	}
	entries, err := store.CachedEntries()
	if err != nil {
		log.Printf("Warning: cache size unavailable: %v", err)
	}
	log.Printf("cache: %d entries, %d runs, deepest %d, avg %.0f nps",
		entries, stats.Runs, stats.DeepestDepth, stats.NodesPerSecond())
}

// highlightTargets returns the legal destinations of the piece on -highlight.
func highlightTargets(pos *board.Position) (board.Bitboard, error) {
	if *highlight == "" {
		return 0, nil
	}
	from, err := board.ParseSquare(*highlight)
	if err != nil {
		return 0, err
	}
	legal, err := pos.GenerateLegalMoves()
	if err != nil {
		return 0, err
	}
	var targets board.Bitboard
	for _, m := range legal.Slice() {
		if m.From() == from {
			targets |= board.SquareBB(m.To())
		}
	}
	return targets, nil
}

func writeDiagrams(pos *board.Position) error {
	targets, err := highlightTargets(pos)
	if err != nil {
		return err
	}
	fmt.Print(render.Text(pos, targets))

	opts := render.Options{Highlight: targets}
	if *svgPath != "" {
		if err := writeFile(*svgPath, func(f *os.File) error { return render.SVG(f, pos, opts) }); err != nil {
			return err
		}
		log.Printf("wrote %s", *svgPath)
	}
	if *pngPath != "" {
		if err := writeFile(*pngPath, func(f *os.File) error { return render.PNG(f, pos, opts) }); err != nil {
			return err
		}
		log.Printf("wrote %s", *pngPath)
	}
	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
