package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/room-stage/audio"
	"github.com/lixenwraith/room-stage/layout"
	"github.com/lixenwraith/room-stage/prefab"
	"github.com/lixenwraith/room-stage/render"
	"github.com/lixenwraith/room-stage/scene"
	"github.com/lixenwraith/room-stage/stage"
)

const (
	logDir      = "logs"
	logFileName = "room-stage.log"
)

func main() {
	var (
		prefabDir string
		cellScale int
		sound     bool
		debugLog  bool
	)

	flag.StringVar(&prefabDir, "prefabs", "prefabs", "Directory with prefab manifest files")
	flag.IntVar(&cellScale, "scale", 1, "Screen cells per world unit (vertical; horizontal is doubled)")
	flag.BoolVar(&sound, "sound", false, "Play placement cues")
	flag.BoolVar(&debugLog, "debug", false, "Write staging logs to "+logDir+"/"+logFileName)
	flag.Parse()

	if flag.NArg() < 1 {
		printUsage()
		os.Exit(1)
	}
	layoutPath := flag.Arg(0)

	// Staging warnings go to a file or nowhere; stray writes to stderr
	// would corrupt the raw terminal
	if logFile := setupLogging(debugLog); logFile != nil {
		defer logFile.Close()
	}

	reg, err := buildRegistry(prefabDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading prefabs: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	// Panic recovery: restore the terminal before printing the stack
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "room-stage crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	cfg := render.Config{CellsPerUnitX: cellScale * 2, CellsPerUnitY: cellScale}
	termHost := render.NewTerminalHost(screen, cfg)

	var host scene.Host = termHost
	var feedback *audio.Feedback
	if sound {
		feedback = audio.NewFeedback()
		host = &cueHost{Host: termHost, fb: feedback}
	}

	stats, err := restage(layoutPath, reg, termHost, host)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if feedback != nil && stats.Skipped > 0 {
		feedback.SkipBuzz()
	}
	drawStatus(screen, layoutPath, stats)

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			termHost.Compose()
			drawStatus(screen, layoutPath, stats)
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
				return
			case ev.Rune() == 'q':
				return
			case ev.Rune() == 'r':
				stats, err = restage(layoutPath, reg, termHost, host)
				if err != nil {
					screen.Fini()
					fmt.Fprintf(os.Stderr, "Error: %v\n", err)
					os.Exit(1)
				}
				if feedback != nil && stats.Skipped > 0 {
					feedback.SkipBuzz()
				}
				drawStatus(screen, layoutPath, stats)
			}
		}
	}
}

// setupLogging routes log output to a file when debug is enabled and
// discards it otherwise
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	return f
}

// restage clears the host, stages the layout, and repaints
func restage(path string, reg *prefab.Registry, termHost *render.TerminalHost, host scene.Host) (stage.Stats, error) {
	termHost.Reset()
	stats, err := stage.Generate(path, reg, host)
	if err != nil {
		return stats, err
	}
	termHost.Compose()
	return stats, nil
}

// buildRegistry combines discovered manifests with the built-in set.
// Discovered entries come first so they win over built-ins.
func buildRegistry(dir string) (*prefab.Registry, error) {
	discovered, err := prefab.DiscoverManifests(dir)
	if err != nil {
		return nil, err
	}
	return prefab.NewRegistry(append(discovered, prefab.DefaultSet()...)), nil
}

// drawStatus paints the bottom status line over the composed scene
func drawStatus(screen tcell.Screen, path string, stats stage.Stats) {
	_, sh := screen.Size()
	msg := fmt.Sprintf(" %s | placed %d, skipped %d | r: reload  q: quit ",
		path, stats.Placed, stats.Skipped)

	style := tcell.StyleDefault.Reverse(true)
	for i, r := range msg {
		screen.SetContent(i, sh-1, r, nil, style)
	}
	screen.Show()
}

// cueHost forwards host calls and plays a tick per instantiation
type cueHost struct {
	scene.Host
	fb *audio.Feedback
}

func (c *cueHost) Instantiate(p *prefab.Prefab, pos layout.Vec2) (scene.EntityID, error) {
	id, err := c.Host.Instantiate(p, pos)
	if err == nil {
		c.fb.PlacementTick()
	}
	return id, err
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: room-stage [options] <layout.json>")
	fmt.Fprintln(os.Stderr, "\nStages a room layout in the terminal.")
	fmt.Fprintln(os.Stderr, "\nOptions:")
	flag.PrintDefaults()
}
