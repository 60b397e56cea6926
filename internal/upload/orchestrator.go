package upload

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/kagazlabs/kagaz-cli/internal/api"
	"github.com/kagazlabs/kagaz-cli/internal/validate"
)

// Phase is the lifecycle position of an upload.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseValidating
	PhaseUploading
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseValidating:
		return "validating"
	case PhaseUploading:
		return "uploading"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is an observable snapshot of the orchestrator.
type State struct {
	Phase      Phase
	Progress   int    // whole percent sent, meaningful while uploading
	DocumentID string // set once succeeded
	Message    string // human-readable failure message
	Err        error  // typed failure cause
}

// Request describes one upload attempt.
type Request struct {
	Path     string
	Language string
	Consent  bool
}

// Submitter is the single service call the orchestrator drives.
type Submitter interface {
	SubmitDocument(ctx context.Context, req api.SubmitRequest, onProgress func(int)) (*api.UploadReceipt, error)
}

// ErrUploadInFlight rejects a submission while another one is running.
var ErrUploadInFlight = errors.New("an upload is already in progress")

// PreconditionError indicates a submission was refused before any network
// call because a local precondition did not hold.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string { return "cannot upload: " + e.Reason }

// Orchestrator drives a document upload from local validation to a terminal
// success or failure. At most one upload runs at a time, and a failed upload
// is never retried automatically; retrying is the caller's explicit choice.
type Orchestrator struct {
	client Submitter

	mu    sync.Mutex
	state State
	busy  bool
}

func New(client Submitter) *Orchestrator {
	return &Orchestrator{client: client}
}

// State returns the current snapshot.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Submit runs one upload to completion and returns the terminal state.
// onProgress, when non-nil, receives whole percentages while uploading,
// best effort. Validation and the consent precondition are checked before
// anything touches the network.
func (o *Orchestrator) Submit(ctx context.Context, req Request, onProgress func(int)) (State, error) {
	o.mu.Lock()
	if o.busy {
		st := o.state
		o.mu.Unlock()
		return st, ErrUploadInFlight
	}
	o.busy = true
	o.state = State{Phase: PhaseValidating}
	o.mu.Unlock()
	defer func() {
		o.mu.Lock()
		o.busy = false
		o.mu.Unlock()
	}()

	if !req.Consent {
		return o.fail(&PreconditionError{Reason: "processing consent was not given"})
	}
	if err := validate.CheckFile(req.Path); err != nil {
		return o.fail(err)
	}
	data, err := os.ReadFile(req.Path)
	if err != nil {
		return o.fail(fmt.Errorf("read file: %w", err))
	}

	o.setUploading()
	receipt, err := o.client.SubmitDocument(ctx, api.SubmitRequest{
		Name:     filepath.Base(req.Path),
		Language: req.Language,
		Data:     data,
	}, func(pct int) {
		o.setProgress(pct)
		if onProgress != nil {
			onProgress(pct)
		}
	})
	if err != nil {
		return o.fail(err)
	}

	o.mu.Lock()
	o.state = State{Phase: PhaseSucceeded, Progress: 100, DocumentID: receipt.DocumentID}
	st := o.state
	o.mu.Unlock()
	return st, nil
}

func (o *Orchestrator) setUploading() {
	o.mu.Lock()
	o.state = State{Phase: PhaseUploading}
	o.mu.Unlock()
}

func (o *Orchestrator) setProgress(pct int) {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	o.mu.Lock()
	if o.state.Phase == PhaseUploading && pct > o.state.Progress {
		o.state.Progress = pct
	}
	o.mu.Unlock()
}

func (o *Orchestrator) fail(err error) (State, error) {
	o.mu.Lock()
	o.state = State{Phase: PhaseFailed, Message: failureMessage(err), Err: err}
	st := o.state
	o.mu.Unlock()
	return st, err
}

// failureMessage picks the most useful text for a failed upload: the
// service's own detail first, then the error text, then a generic fallback.
func failureMessage(err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return "upload failed"
}
