package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/lixenwraith/room-stage/prefab"
	"github.com/lixenwraith/room-stage/scene"
	"github.com/lixenwraith/room-stage/stage"
)

// plan is the JSON output shape of the dumper
type plan struct {
	Layout  string     `json:"layout"`
	Floor   bool       `json:"floor"`
	Placed  int        `json:"placed"`
	Skipped int        `json:"skipped"`
	Ops     []scene.Op `json:"ops"`
}

func main() {
	var (
		prefabDir string
		asJSON    bool
	)

	flag.StringVar(&prefabDir, "prefabs", "prefabs", "Directory with prefab manifest files")
	flag.BoolVar(&asJSON, "json", false, "Emit the plan as JSON")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: room-plan [options] <layout.json>")
		fmt.Fprintln(os.Stderr, "\nPrints the placement commands a layout would produce.")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
		os.Exit(1)
	}
	layoutPath := flag.Arg(0)

	discovered, err := prefab.DiscoverManifests(prefabDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading prefabs: %v\n", err)
		os.Exit(1)
	}
	reg := prefab.NewRegistry(append(discovered, prefab.DefaultSet()...))

	rec := scene.NewRecorder()
	stats, err := stage.Generate(layoutPath, reg, rec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if asJSON {
		out := plan{
			Layout:  layoutPath,
			Floor:   stats.Floor,
			Placed:  stats.Placed,
			Skipped: stats.Skipped,
			Ops:     rec.Ops(),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding plan: %v\n", err)
			os.Exit(1)
		}
		return
	}

	for _, op := range rec.Ops() {
		fmt.Println(op)
	}
	fmt.Printf("floor=%v placed=%d skipped=%d\n", stats.Floor, stats.Placed, stats.Skipped)
}
