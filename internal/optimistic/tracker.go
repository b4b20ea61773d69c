package optimistic

import (
	"errors"
	"sync"
)

var (
	ErrInFlight   = errors.New("another transition is pending")
	ErrNotPending = errors.New("no pending transition")
)

type State string

const (
	StateIdle       State = "IDLE"
	StatePending    State = "PENDING"
	StateConfirmed  State = "CONFIRMED"
	StateRolledBack State = "ROLLED_BACK"
)

func (s State) String() string {
	return string(s)
}

// Tracker ведет одну оптимистичную транзакцию над снимком сущности:
// Begin -> Pending, затем Confirm -> Confirmed или RollBack -> RolledBack.
// Пока переход в Pending, следующий Begin отклоняется, сериализация остается за вызывающим.
type Tracker[T any] struct {
	mu        sync.Mutex
	state     State
	confirmed *T
	proposed  *T
	reason    error
}

// New создает трекер с последним подтвержденным сервером снимком.
func New[T any](confirmed T) *Tracker[T] {
	return &Tracker[T]{
		state:     StateIdle,
		confirmed: &confirmed,
	}
}

// Begin применяет локально вычисленный снимок до ответа сервера.
func (t *Tracker[T]) Begin(proposed T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == StatePending {
		return ErrInFlight
	}

	t.state = StatePending
	t.proposed = &proposed
	t.reason = nil
	return nil
}

// Confirm принимает снимок сервера как новое подтвержденное состояние.
func (t *Tracker[T]) Confirm(authoritative T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StatePending {
		return ErrNotPending
	}

	t.state = StateConfirmed
	t.confirmed = &authoritative
	t.proposed = nil
	return nil
}

// RollBack отменяет оптимистичный снимок и возвращает последний подтвержденный.
func (t *Tracker[T]) RollBack(reason error) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StatePending {
		var zero T
		return zero, ErrNotPending
	}

	t.state = StateRolledBack
	t.proposed = nil
	t.reason = reason
	return *t.confirmed, nil
}

// Reset заменяет подтвержденный снимок свежими данными сервера, например после повторного чтения.
func (t *Tracker[T]) Reset(authoritative T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == StatePending {
		return ErrInFlight
	}

	t.state = StateIdle
	t.confirmed = &authoritative
	t.reason = nil
	return nil
}

// View возвращает снимок для отображения: оптимистичный, пока переход в Pending, иначе подтвержденный.
func (t *Tracker[T]) View() T {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == StatePending {
		return *t.proposed
	}
	return *t.confirmed
}

func (t *Tracker[T]) Confirmed() T {
	t.mu.Lock()
	defer t.mu.Unlock()

	return *t.confirmed
}

func (t *Tracker[T]) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.state
}

// Reason возвращает причину последнего отката.
func (t *Tracker[T]) Reason() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.reason
}
