// Command chess-engine is a UCI chess engine speaking the line
// protocol on standard input/output.
package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"

	"github.com/AKAA-2025/Chess-AI-Engine/internal/engine"
	"github.com/AKAA-2025/Chess-AI-Engine/internal/storage"
	"github.com/AKAA-2025/Chess-AI-Engine/internal/uci"
)

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")

func main() {
	flag.Parse()

	// CPU profiling via flag or environment variable.
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

	// Persistent options and stats; the engine runs without them when
	// the store cannot be opened (read-only filesystems, sandboxes).
	store, err := storage.Open()
	if err != nil {
		log.Printf("Warning: persistent storage unavailable: %v", err)
		store = nil
	}

	protocol := uci.New(engine.New(), store)
	protocol.Run()

	// EOF on stdin without "quit": exit cleanly.
	store.Close()
}
