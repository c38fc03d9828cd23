// Package shell holds the display state of the pokedex and renders records
// as text cards
package shell

import (
	"context"
	"sync"

	"github.com/KirkDiggler/pokedex/internal/entities"
	"github.com/KirkDiggler/pokedex/internal/errors"
	"github.com/KirkDiggler/pokedex/internal/orchestrators/pokedex"
)

// State is the display state of the shell
type State int

// Display states
const (
	StateNoRecordYet State = iota
	StateLoading
	StateLoaded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateNoRecordYet:
		return "no_record_yet"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// View is a consistent snapshot of the shell
type View struct {
	State   State
	Record  *entities.CreatureRecord
	FetchID string
	Err     error
}

// Config holds the dependencies for the shell
type Config struct {
	Service pokedex.Service
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	vb := errors.NewValidationBuilder()
	if c.Service == nil {
		vb.RequiredField("Service")
	}
	return vb.Build()
}

// Shell runs one fetch at a time and swaps its view wholesale when the fetch
// completes
type Shell struct {
	service pokedex.Service

	mu   sync.Mutex
	view View
}

// New creates a shell in StateNoRecordYet
func New(cfg *Config) (*Shell, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Shell{service: cfg.Service}, nil
}

// Search fetches a random record
func (s *Shell) Search(ctx context.Context) (View, error) {
	return s.Show(ctx, 0)
}

// Show fetches the record with the given id, or a random one when id is 0.
// It is rejected while another fetch is outstanding.
func (s *Shell) Show(ctx context.Context, id uint16) (View, error) {
	s.mu.Lock()
	if s.view.State == StateLoading {
		s.mu.Unlock()
		return View{}, errors.FailedPrecondition("a search is already in progress")
	}
	// the previous record is discarded once the next fetch begins
	s.view = View{State: StateLoading}
	s.mu.Unlock()

	settled := false
	defer func() {
		if settled {
			return
		}
		// FetchRecord panicked; leave Loading so later searches are accepted
		s.mu.Lock()
		s.view = View{State: StateFailed, Err: errors.Internalf("search for id %d aborted", id)}
		s.mu.Unlock()
	}()

	out, err := s.service.FetchRecord(ctx, &pokedex.FetchRecordInput{ID: id})

	s.mu.Lock()
	defer s.mu.Unlock()
	settled = true
	if err != nil {
		s.view = View{State: StateFailed, Err: err, FetchID: fetchIDOf(err)}
		return s.view, err
	}
	s.view = View{State: StateLoaded, Record: out.Record, FetchID: out.FetchID}
	return s.view, nil
}

// Snapshot returns the current view
func (s *Shell) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// Title returns the window title for the current state
func (s *Shell) Title() string {
	return Title(s.Snapshot())
}

// Title formats the title for a view
func Title(v View) string {
	switch v.State {
	case StateLoaded:
		return v.Record.Name() + " - Pokédex"
	case StateFailed:
		return "Whoops! - Pokédex"
	default:
		return "Loading - Pokédex"
	}
}

func fetchIDOf(err error) string {
	id, _ := errors.GetMeta(err)["fetch_id"].(string)
	return id
}
