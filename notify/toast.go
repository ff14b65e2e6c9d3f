package notify

import (
	"sync"
	"time"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindWarning Kind = "warning"
)

// Toast is a short-lived message for one profile.
type Toast struct {
	Message string    `json:"message"`
	Kind    Kind      `json:"kind"`
	Expires time.Time `json:"expires"`
}

// Toasts holds at most one live toast per profile. Showing a new one replaces the previous,
// restarting its lifetime.
type Toasts struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	active map[string]Toast
}

func NewToasts(ttl time.Duration) *Toasts {
	return &Toasts{ttl: ttl, now: time.Now, active: make(map[string]Toast)}
}

func (t *Toasts) Show(profileID string, kind Kind, message string) Toast {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.sweep()
	toast := Toast{Message: message, Kind: kind, Expires: t.now().Add(t.ttl)}
	t.active[profileID] = toast
	return toast
}

// Current returns the live toast of a profile, if any.
func (t *Toasts) Current(profileID string) (Toast, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	toast, ok := t.active[profileID]
	if !ok {
		return Toast{}, false
	}
	if !t.now().Before(toast.Expires) {
		delete(t.active, profileID)
		return Toast{}, false
	}
	return toast, true
}

func (t *Toasts) sweep() {
	now := t.now()
	for id, toast := range t.active {
		if !now.Before(toast.Expires) {
			delete(t.active, id)
		}
	}
}
