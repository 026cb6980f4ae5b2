package affirmation

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/julianstephens/resurs/internal/logger"
	"github.com/julianstephens/resurs/internal/models"
)

// Result is delivered to the subscriber when a request completes while
// still current.
type Result struct {
	RequestID string
	Mood      models.MoodType
	Text      string
}

// Ticket identifies one request.
type Ticket struct {
	ID   string
	seq  uint64
	done chan struct{}
}

// Done is closed when the request goroutine has finished, whether its
// result was delivered or discarded.
func (t Ticket) Done() <-chan struct{} {
	return t.done
}

// Tracker runs affirmation fetches with last-request-wins semantics: a new
// request cancels the pending one, and a result is kept only when it belongs
// to the most recent request.
type Tracker struct {
	service  *Service
	onResult func(Result)

	mu      sync.Mutex
	seq     uint64
	cancel  context.CancelFunc
	latest  string
	pending sync.WaitGroup
}

// NewTracker creates a tracker. onResult may be nil; it is called from the
// request goroutine.
func NewTracker(service *Service, onResult func(Result)) *Tracker {
	return &Tracker{service: service, onResult: onResult}
}

// Request starts a fetch for mood and supersedes any pending one. Call it
// only after the check-in has been persisted.
func (t *Tracker) Request(ctx context.Context, mood models.MoodType, userName string) Ticket {
	t.mu.Lock()
	if t.cancel != nil {
		t.cancel()
	}
	t.seq++
	reqCtx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	ticket := Ticket{ID: uuid.NewString(), seq: t.seq, done: make(chan struct{})}
	t.pending.Add(1)
	t.mu.Unlock()

	logger.Debug("affirmation requested", "request_id", ticket.ID, "mood", mood)

	go func() {
		defer t.pending.Done()
		defer close(ticket.done)
		defer cancel()

		text := t.service.Fetch(reqCtx, mood, userName)

		t.mu.Lock()
		if ticket.seq != t.seq || reqCtx.Err() != nil {
			t.mu.Unlock()
			logger.Debug("affirmation discarded", "request_id", ticket.ID)
			return
		}
		t.latest = text
		t.cancel = nil
		onResult := t.onResult
		t.mu.Unlock()

		if onResult != nil {
			onResult(Result{RequestID: ticket.ID, Mood: mood, Text: text})
		}
	}()

	return ticket
}

// Current reports whether ticket belongs to the most recent request.
func (t *Tracker) Current(ticket Ticket) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return ticket.seq == t.seq
}

// Cancel discards any pending result. The displayed value is kept.
func (t *Tracker) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.seq++
}

// Latest returns the most recently delivered affirmation.
func (t *Tracker) Latest() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.latest
}

// Close cancels the pending request and waits for its goroutine to exit.
func (t *Tracker) Close() {
	t.Cancel()
	t.pending.Wait()
}
