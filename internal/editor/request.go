package editor

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrCanceled rejects a request whose form was dismissed.
	ErrCanceled = errors.New("editor: canceled")
	// ErrBusy is returned by Open while a previous request is still pending.
	ErrBusy = errors.New("editor: a request is already pending")
)

// Result is what a valid submit resolves with.
type Result struct {
	Name  string
	Price float64
}

// Settled is the outcome of a request. Err is nil on resolve and ErrCanceled
// on reject.
type Settled struct {
	RequestID string
	Result    Result
	Err       error
}

// Request is the pending side of one editor session. It settles exactly once.
type Request struct {
	id   string
	once sync.Once
	done chan Settled
}

func newRequest() *Request {
	return &Request{
		id:   uuid.NewString(),
		done: make(chan Settled, 1),
	}
}

// ID correlates Settled messages with the session that produced them.
func (r *Request) ID() string { return r.id }

// Done yields the outcome once settled. Read it from one place only: either
// here or through Await.
func (r *Request) Done() <-chan Settled { return r.done }

// Await blocks on the outcome inside a Bubble Tea command and delivers it as
// a Settled message.
func (r *Request) Await() tea.Cmd {
	return func() tea.Msg { return <-r.done }
}

func (r *Request) resolve(res Result) bool {
	return r.settle(Settled{Result: res})
}

func (r *Request) reject() bool {
	return r.settle(Settled{Err: ErrCanceled})
}

func (r *Request) settle(s Settled) bool {
	settled := false
	r.once.Do(func() {
		s.RequestID = r.id
		r.done <- s
		settled = true
	})
	return settled
}
