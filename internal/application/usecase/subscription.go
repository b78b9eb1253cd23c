package usecase

import "sync"

// Subscription is a live registration with the system color scheme notifier.
// Release is idempotent and safe on a nil Subscription.
type Subscription struct {
	once    sync.Once
	release func()
}

// NewSubscription wraps an unregister function.
func NewSubscription(release func()) *Subscription {
	return &Subscription{release: release}
}

// Release unregisters the subscription. Later calls are no-ops.
func (s *Subscription) Release() {
	if s == nil || s.release == nil {
		return
	}
	s.once.Do(s.release)
}
