package server

import (
	"fmt"
	"log"
	"strings"

	"github.com/df07/go-raycaster/pkg/core"
)

// RenderLogger implements core.Logger by tagging each line with its render ID
type RenderLogger struct {
	renderID string
	logger   *log.Logger
}

// NewRenderLogger creates a logger for a specific render that writes to the
// standard server log
func NewRenderLogger(renderID string) core.Logger {
	return &RenderLogger{
		renderID: renderID,
		logger:   log.Default(),
	}
}

// Printf implements core.Logger interface
func (rl *RenderLogger) Printf(format string, args ...interface{}) {
	message := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	rl.logger.Printf("[%s] %s", rl.renderID, message)
}
