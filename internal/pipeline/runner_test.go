package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/okrenz/manuscan/internal/analyze"
	"github.com/okrenz/manuscan/internal/model"
)

var errTropesBroken = errors.New("trope analyzer broke")

func TestRunner_MessageContract(t *testing.T) {
	p := NewPipeline(testConfig()).WithRegistry(stubRegistry())
	r := NewRunner(p, model.ProgressConfig{})

	m := model.NewManuscript("ch1", "Some manuscript text.", "")
	var msgs []Message
	for msg := range r.Run(context.Background(), m) {
		msgs = append(msgs, msg)
	}

	if len(msgs) < 2 {
		t.Fatalf("expected progress plus terminal, got %d messages", len(msgs))
	}

	last := msgs[len(msgs)-1]
	if last.Type != MessageComplete {
		t.Fatalf("last message type = %s, want %s", last.Type, MessageComplete)
	}
	if last.Result == nil {
		t.Fatal("complete message must carry the report")
	}

	for i, msg := range msgs[:len(msgs)-1] {
		if msg.Type != MessageProgress {
			t.Errorf("message %d type = %s, want %s", i, msg.Type, MessageProgress)
		}
		if msg.Step == "" {
			t.Errorf("progress message %d has no step", i)
		}
		if msg.Result != nil {
			t.Errorf("progress message %d must not carry a result", i)
		}
	}
}

func TestRunner_ErrorTerminal(t *testing.T) {
	reg := stubRegistry()
	reg.Register(&stubAnalyzer{name: analyze.NameTropes, err: errTropesBroken})

	p := NewPipeline(testConfig()).WithRegistry(reg)
	r := NewRunner(p, model.ProgressConfig{})

	m := model.NewManuscript("ch1", "Some manuscript text.", "")
	var msgs []Message
	for msg := range r.Run(context.Background(), m) {
		msgs = append(msgs, msg)
	}

	last := msgs[len(msgs)-1]
	if last.Type != MessageError {
		t.Fatalf("last message type = %s, want %s", last.Type, MessageError)
	}
	if !strings.Contains(last.Error, errTropesBroken.Error()) {
		t.Errorf("error message %q should contain %q", last.Error, errTropesBroken)
	}
	if last.Result != nil {
		t.Error("error message must not carry a result")
	}
	for _, msg := range msgs[:len(msgs)-1] {
		if msg.Type != MessageProgress {
			t.Errorf("non-terminal message type = %s, want %s", msg.Type, MessageProgress)
		}
		if msg.Type == MessageComplete {
			t.Error("failed run must not emit a complete message")
		}
	}
}

func TestRunner_ThrottleKeepsTerminal(t *testing.T) {
	p := NewPipeline(testConfig()).WithRegistry(stubRegistry())
	// One event per hour with burst 1: nearly every progress message is
	// dropped, but the terminal must still arrive.
	r := NewRunner(p, model.ProgressConfig{EventsPerSecond: 1.0 / 3600, Burst: 1})

	m := model.NewManuscript("ch1", "Some manuscript text.", "")
	var msgs []Message
	for msg := range r.Run(context.Background(), m) {
		msgs = append(msgs, msg)
	}

	if len(msgs) == 0 {
		t.Fatal("channel closed without a terminal message")
	}
	last := msgs[len(msgs)-1]
	if last.Type != MessageComplete {
		t.Fatalf("last message type = %s, want %s", last.Type, MessageComplete)
	}
	if len(msgs) > len(Stages())+1 {
		t.Errorf("throttle did not drop progress: %d messages", len(msgs))
	}
}
