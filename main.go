package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"favicongen/config"
	"favicongen/icons"
	"favicongen/watcher"
)

func main() {
	fmt.Println("Favicongen - Favicon & Touch Icon Generator")
	fmt.Println("===========================================")

	// Load config
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Loaded config: %s -> %s", cfg.Source.Path, cfg.Output.Dir)

	// Run one generation pass
	gen := icons.NewGenerator(cfg)
	if err := gen.Run(); err != nil {
		log.Fatalf("Favicon generation failed: %v", err)
	}

	if !cfg.Watch {
		return
	}

	// Create watcher
	w, err := watcher.NewWatcher(cfg, gen)
	if err != nil {
		log.Fatalf("Failed to create watcher: %v", err)
	}

	// Start watching
	if err := w.Start(); err != nil {
		log.Fatalf("Failed to start watcher: %v", err)
	}

	log.Println("Watcher started. Monitoring source image for changes...")
	log.Println("Press Ctrl+C to stop")

	// Listen for events
	go func() {
		for event := range w.Events() {
			log.Printf("📄 Event: %v - %s", event.Type, event.FilePath)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down...")
	w.Stop()
}
