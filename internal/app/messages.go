package app

import (
	"time"

	"github.com/willibrandon/rainbow/internal/birds"
)

// DatasetLoadedMsg is sent when the abundance table has been read
type DatasetLoadedMsg struct {
	Table   *birds.Table
	Elapsed time.Duration
}

// DatasetFailedMsg is sent when the abundance table could not be read
type DatasetFailedMsg struct {
	Path string
	Err  error
}

// flashExpiredMsg clears a status bar message once its time is up
type flashExpiredMsg struct {
	seq int
}
