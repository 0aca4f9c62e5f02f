package convo

import (
	"context"
	"strings"

	"prism/internal/models"
	"prism/internal/observability"
)

// Generator is the adapter boundary to the generative API. Each call is a
// complete generation for one mode.
type Generator interface {
	Text(ctx context.Context, prompt string) (string, []models.Citation, error)
	Image(ctx context.Context, prompt string) (string, error)
	Video(ctx context.Context, prompt string) (string, error)
}

// Per-mode fallback messages shown when a generation fails.
const (
	chatFallback  = "I encountered an error processing your request. Please try again."
	imageFallback = "Failed to generate image."
	videoFallback = "Video generation failed."
)

// Dispatcher owns the request lifecycle: it guards submissions with the
// busy flag, appends the user turn synchronously, routes to the adapter for
// the mode captured at dispatch time, and appends exactly one model turn
// per accepted submission.
type Dispatcher struct {
	store *Store
	gen   Generator
}

func NewDispatcher(store *Store, gen Generator) *Dispatcher {
	return &Dispatcher{store: store, gen: gen}
}

// Pending is an accepted submission awaiting its model turn.
type Pending struct {
	d      *Dispatcher
	prompt string
	mode   models.Mode
}

// Mode is the mode captured when the submission was dispatched. Later mode
// switches never affect it.
func (p *Pending) Mode() models.Mode {
	return p.mode
}

// Dispatch accepts or ignores a submission. A blank prompt or a busy
// conversation is a no-op, not an error. On acceptance the user message is
// already appended when Dispatch returns, the busy flag is set, and the
// active mode is captured into the returned Pending.
func (d *Dispatcher) Dispatch(prompt string) (*Pending, bool) {
	trimmed := strings.TrimSpace(prompt)
	if trimmed == "" || d.store.Busy() {
		return nil, false
	}

	d.store.SetBusy(true)
	d.store.Append(models.NewUserMessage(trimmed))

	mode := d.store.Mode()
	observability.Logger().Info("dispatched", "mode", mode.String())
	return &Pending{d: d, prompt: trimmed, mode: mode}, true
}

// Resolve runs the generation for the captured mode. It never fails: any
// adapter error becomes the mode's fallback text turn.
func (p *Pending) Resolve(ctx context.Context) models.Message {
	switch p.mode {
	case models.ModeImage:
		media, err := p.d.gen.Image(ctx, p.prompt)
		if err != nil {
			return p.fallback(err, imageFallback)
		}
		msg, err := models.NewImageMessage(p.prompt, media)
		if err != nil {
			return p.fallback(err, imageFallback)
		}
		return msg

	case models.ModeVideo:
		media, err := p.d.gen.Video(ctx, p.prompt)
		if err != nil {
			return p.fallback(err, videoFallback)
		}
		msg, err := models.NewVideoMessage(p.prompt, media)
		if err != nil {
			return p.fallback(err, videoFallback)
		}
		return msg

	default:
		text, citations, err := p.d.gen.Text(ctx, p.prompt)
		if err != nil {
			return p.fallback(err, chatFallback)
		}
		return models.NewTextMessage(text, citations)
	}
}

func (p *Pending) fallback(err error, text string) models.Message {
	observability.Logger().Error("generation failed", "mode", p.mode.String(), "error", err)
	return models.NewTextMessage(text, nil)
}

// Complete appends the model turn and clears the busy flag, closing the
// cycle opened by Dispatch.
func (d *Dispatcher) Complete(msg models.Message) {
	d.store.Append(msg)
	d.store.SetBusy(false)
}

// Submit runs one full cycle synchronously. The busy flag is cleared even
// if the generator panics.
func (d *Dispatcher) Submit(ctx context.Context, prompt string) bool {
	pending, ok := d.Dispatch(prompt)
	if !ok {
		return false
	}
	defer d.store.SetBusy(false)
	d.Complete(pending.Resolve(ctx))
	return true
}
