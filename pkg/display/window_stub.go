//go:build !cgo

package display

import (
	"context"
	"errors"

	"tinygo.org/x/drivers"
)

func RunWindow(_ WindowConfig, _ func(ctx context.Context, target drivers.Displayer) error) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
