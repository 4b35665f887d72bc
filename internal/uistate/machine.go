package uistate

import (
	"errors"
	"sync"
)

// Status is the lifecycle phase of one result area.
type Status int

const (
	Idle Status = iota
	Loading
	Ok
	Err
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ok:
		return "ok"
	case Err:
		return "error"
	default:
		return "unknown"
	}
}

// ErrBusy is returned when an action is started while another one is in flight.
var ErrBusy = errors.New("an action is already in progress")

// View is what a result area currently displays.
type View struct {
	Status         Status
	Value          string
	Hint           string
	TriggerEnabled bool
}

// Machine tracks Idle -> Loading -> {Ok, Err} -> Loading for one area.
// It is safe for concurrent use.
type Machine struct {
	mu   sync.Mutex
	view View
}

// NewMachine returns an idle machine with its trigger enabled.
func NewMachine() *Machine {
	return &Machine{view: View{Status: Idle, TriggerEnabled: true}}
}

// Start enters Loading and disables the trigger. It refuses while
// already Loading.
func (m *Machine) Start(pending, hint string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.view.Status == Loading {
		return ErrBusy
	}
	m.view = View{Status: Loading, Value: pending, Hint: hint}
	return nil
}

// Succeed leaves Loading for Ok.
func (m *Machine) Succeed(value, hint string) {
	m.finish(Ok, value, hint)
}

// Fail leaves Loading for Err.
func (m *Machine) Fail(value, hint string) {
	m.finish(Err, value, hint)
}

func (m *Machine) finish(status Status, value, hint string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.view.Status != Loading {
		return
	}
	m.view = View{Status: status, Value: value, Hint: hint, TriggerEnabled: true}
}

// Release re-enables the trigger. An action that never reached Succeed
// or Fail is closed as Err.
func (m *Machine) Release() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.view.Status == Loading {
		m.view.Status = Err
		m.view.Value = "Error"
	}
	m.view.TriggerEnabled = true
}

// Snapshot returns the current view.
func (m *Machine) Snapshot() View {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.view
}
