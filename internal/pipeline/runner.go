package pipeline

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/okrenz/manuscan/internal/model"
)

// MessageType discriminates messages crossing the async boundary.
type MessageType string

const (
	MessageProgress MessageType = "progress"
	MessageComplete MessageType = "complete"
	MessageError    MessageType = "error"
)

// Message is the only thing that crosses the async boundary. All data is
// owned by the receiver once sent; nothing is shared.
type Message struct {
	Type   MessageType   `json:"type"`
	Step   Stage         `json:"step,omitempty"`
	Detail string        `json:"detail,omitempty"`
	Result *model.Report `json:"result,omitempty"`
	Error  string        `json:"error,omitempty"`
}

// Runner executes a pipeline off the caller's goroutine and relays
// progress over a channel: zero or more progress messages, then exactly
// one complete or error message, then the channel closes.
//
// Progress messages may be throttled (dropped) under a configured rate;
// terminal messages never are.
type Runner struct {
	pipeline *Pipeline
	limiter  *rate.Limiter
}

// NewRunner creates a runner for the pipeline. cfg controls the progress
// throttle; a zero rate disables it.
func NewRunner(p *Pipeline, cfg model.ProgressConfig) *Runner {
	var limiter *rate.Limiter
	if cfg.EventsPerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.EventsPerSecond), burst)
	}
	return &Runner{pipeline: p, limiter: limiter}
}

// Run starts the analysis in a new goroutine and returns the message
// channel. The channel is buffered enough that a slow consumer never
// stalls the analysis for progress messages.
func (r *Runner) Run(ctx context.Context, m model.Manuscript) <-chan Message {
	out := make(chan Message, 32)

	go func() {
		defer close(out)

		observer := ProgressFunc(func(stage Stage, detail string) {
			if r.limiter != nil && !r.limiter.Allow() {
				return
			}
			select {
			case out <- Message{Type: MessageProgress, Step: stage, Detail: detail}:
			default:
				// Consumer is not keeping up; progress is advisory.
			}
		})

		report, err := r.pipeline.Analyze(ctx, m, observer)
		if err != nil {
			out <- Message{Type: MessageError, Error: err.Error()}
			return
		}
		out <- Message{Type: MessageComplete, Result: report}
	}()

	return out
}
