// Command simulate runs the movement core headless over a level and prints
// the body state frame by frame.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/tilehop/shared/leveldata"
	"github.com/automoto/tilehop/shared/sim"
	"github.com/automoto/tilehop/shared/tuning"
)

func main() {
	levelDir := flag.String("levels", "assets/levels", "Directory holding .tmx levels")
	name := flag.String("level", "", "Level to run (file stem, empty = first)")
	layer := flag.String("layer", "ground", "Tile layer holding the level geometry")
	script := flag.String("script", "R*60,RJ,R*40,*30", "Input script, e.g. R*30,RJ,*10")
	tuningFile := flag.String("tuning", "", "YAML movement tuning file")
	watch := flag.Bool("watch", false, "Reload the tuning file while running")
	every := flag.Int("every", 1, "Print every Nth frame (0 = summary only)")
	tickRate := flag.Int("tickrate", 0, "Frames per second (0 = as fast as possible)")
	writeTuning := flag.String("write-tuning", "", "Write the active tuning to this YAML file and exit")
	flag.Parse()

	levels, names, err := leveldata.LoadAllLevels(os.DirFS(*levelDir), ".", *layer)
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}
	if *name == "" {
		*name = names[0]
	}
	level, ok := levels[*name]
	if !ok {
		log.Fatalf("Unknown level %q, have %v", *name, names)
	}

	cfg := sim.DefaultConfig()
	if *tuningFile != "" {
		t, err := tuning.LoadFile(*tuningFile)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		cfg.Tuning = t
	}
	if *writeTuning != "" {
		if err := tuning.WriteFile(*writeTuning, cfg.Tuning); err != nil {
			log.Fatalf("Failed to write tuning: %v", err)
		}
		return
	}

	inputs, err := sim.ParseScript(*script)
	if err != nil {
		log.Fatalf("Bad script: %v", err)
	}

	s, err := sim.New(level, cfg)
	if err != nil {
		log.Fatalf("Failed to start simulation: %v", err)
	}

	var last sim.Frame
	loop := sim.NewLoop(s, *tickRate, inputs, func(f sim.Frame) {
		last = f
		if *every > 0 && f.Index%*every == 0 {
			fmt.Println(f)
		}
	})

	if *watch && *tuningFile != "" {
		w, err := tuning.NewWatcher(*tuningFile)
		if err != nil {
			log.Fatalf("Failed to watch tuning: %v", err)
		}
		defer w.Close()
		go func() {
			for err := range w.Errors {
				log.Printf("Tuning reload: %v", err)
			}
		}()
		loop.WithTuning(w.Updates)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Stopping simulation...")
		loop.Stop()
	}()

	log.Printf("Simulating level %q (%dx%d tiles) for %d frames", *name, level.Width, level.Height, len(inputs))
	n := loop.Run()
	log.Printf("Ran %d frames, final: %v", n, last)
}
