package progress

import (
	"context"

	"github.com/openlabels/oli-cli/internal/usecase"
)

// NopSink discards all progress events.
type NopSink struct{}

// NewNopSink creates a progress sink that does nothing
func NewNopSink() *NopSink {
	return &NopSink{}
}

func (s *NopSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {}

func (s *NopSink) Info(message string) {}

func (s *NopSink) Error(message string) {}

var _ usecase.ProgressSink = (*NopSink)(nil)
