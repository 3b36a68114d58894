//go:build !cgo

package window

import (
	"errors"

	"github.com/willibrandon/rainbow/internal/birds"
	"github.com/willibrandon/rainbow/internal/config"
)

// Run is unavailable without cgo.
func Run(_ *config.Config, _ *birds.Table, _ int) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
