package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-raycaster/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	workers := flag.Int("workers", 0, "Number of parallel workers per render (0 = auto-detect CPU count)")
	flag.Parse()

	// Create and start web server
	webServer := server.NewServer(*port)
	webServer.SetNumWorkers(*workers)

	log.Printf("Ray Caster Web Server")
	log.Printf("Try http://localhost:%d/api/render?scene=default", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
