package results

import (
	"context"
	"errors"
	"strings"

	"github.com/kagazlabs/kagaz-cli/internal/api"
)

// Status is the lifecycle position of a retrieval.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusLoaded
	StatusNotFound
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusNotFound:
		return "not found"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// State is the terminal outcome of one retrieval.
type State struct {
	Status   Status
	Document *api.Document // set when loaded
	Message  string        // human-readable failure message
	Err      error         // typed failure cause
}

// ErrMissingID refuses a retrieval that has no identifier to ask for.
var ErrMissingID = errors.New("no document id given")

// Getter is the service call the fetcher drives.
type Getter interface {
	FetchDocument(ctx context.Context, id string) (*api.Document, error)
}

// Fetcher retrieves one analyzed document per explicit call. Nothing is
// cached: fetching the same id twice issues two requests.
type Fetcher struct {
	client Getter
}

func New(client Getter) *Fetcher {
	return &Fetcher{client: client}
}

// Fetch resolves id to a terminal state. An empty id fails immediately
// without any network call.
func (f *Fetcher) Fetch(ctx context.Context, id string) State {
	if strings.TrimSpace(id) == "" {
		return State{Status: StatusError, Message: ErrMissingID.Error(), Err: ErrMissingID}
	}
	doc, err := f.client.FetchDocument(ctx, id)
	if err != nil {
		var nf *api.NotFoundError
		if errors.As(err, &nf) {
			return State{Status: StatusNotFound, Message: nf.Error(), Err: err}
		}
		return State{Status: StatusError, Message: fetchMessage(err), Err: err}
	}
	return State{Status: StatusLoaded, Document: doc}
}

// fetchMessage mirrors the upload message order: service detail first, then
// the error text.
func fetchMessage(err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return "could not load the document"
}
