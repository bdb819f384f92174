// Package flow drives one end-to-end refinement session: draft capture,
// clarifying questions, the synthesize/approve loop, persistence, and handoff
// to the external chat application.
package flow

import (
	"context"
	"log"
	"time"

	"github.com/promptpolish/promptpolish/internal/optimizer"
	"github.com/promptpolish/promptpolish/internal/storage"
)

// UI is the interaction surface consumed by the runner. Implementations block
// until the user gives a valid response.
type UI interface {
	AskDraft() (string, error)
	CollectAnswers(questions []string) ([]string, error)
	ShowComparison(original, candidate string)
	AskApproval() (bool, error)
	AskRefinementNote() (string, error)
	Successf(format string, args ...any)
	Errorf(format string, args ...any)
	Printf(format string, args ...any)
}

// Recorder persists the final approved prompt pair
type Recorder interface {
	Save(rec storage.Record) (string, error)
}

// Deliverer hands the final prompt to an external chat application
type Deliverer interface {
	Deliver(ctx context.Context, text string, target string) error
}

// Runner owns one session and sequences the refinement protocol. Strictly
// sequential: it blocks on each user prompt and each model round-trip.
type Runner struct {
	optimizer *optimizer.Optimizer
	ui        UI
	recorder  Recorder
	deliverer Deliverer
	target    string

	now func() time.Time
}

func NewRunner(opt *optimizer.Optimizer, ui UI, recorder Recorder, deliverer Deliverer, target string) *Runner {
	return &Runner{
		optimizer: opt,
		ui:        ui,
		recorder:  recorder,
		deliverer: deliverer,
		target:    target,
		now:       time.Now,
	}
}

// Run executes one session from draft capture to delivery. Clarify and
// synthesize failures abort the run; persistence and delivery failures are
// reported to the user but never discard the approved prompt, which is always
// echoed before Run returns.
func (r *Runner) Run(ctx context.Context) error {
	draft, err := r.ui.AskDraft()
	if err != nil {
		return err
	}

	questions, err := r.optimizer.Clarify(ctx, draft)
	if err != nil {
		return err
	}

	answers, err := r.ui.CollectAnswers(questions)
	if err != nil {
		return err
	}

	candidate, err := r.refinementLoop(ctx, draft, questions, answers)
	if err != nil {
		return err
	}

	r.ui.Successf("Prompt approved!")

	if path, err := r.recorder.Save(storage.Record{
		Original:  draft,
		Optimized: candidate,
		Timestamp: r.now(),
	}); err != nil {
		log.Printf("Failed to save session: %v", err)
		r.ui.Errorf("Could not save this session: %v", err)
	} else {
		r.ui.Printf("Saved to: %s", path)
	}

	if err := r.deliverer.Deliver(ctx, candidate, r.target); err != nil {
		log.Printf("Delivery failed: %v", err)
		r.ui.Errorf("Could not hand the prompt to %s: %v", r.target, err)
	}

	// The approved text stays available to the user no matter what failed
	r.ui.Printf("\nYour optimized prompt:\n\n%s", candidate)
	return nil
}

// refinementLoop synthesizes candidates until the user approves one. Each
// rejection appends exactly one refinement note; every accumulated note is
// passed to every subsequent synthesis call. The loop is unbounded by design.
func (r *Runner) refinementLoop(ctx context.Context, draft string, questions, answers []string) (string, error) {
	var notes []string
	for {
		candidate, err := r.optimizer.Synthesize(ctx, draft, questions, answers, notes)
		if err != nil {
			return "", err
		}

		r.ui.ShowComparison(draft, candidate)

		approved, err := r.ui.AskApproval()
		if err != nil {
			return "", err
		}
		if approved {
			return candidate, nil
		}

		note, err := r.ui.AskRefinementNote()
		if err != nil {
			return "", err
		}
		notes = append(notes, note)
	}
}
