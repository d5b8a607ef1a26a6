package nd

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Borrow states. Positive values count live shared leases.
const (
	stateIdle      int32 = 0
	stateExclusive int32 = -1
	stateFreed     int32 = -2
)

// borrowState tracks the leases handed out by one buffer.
// It replaces compile-time borrow checking with a single atomic counter,
// so taking and returning a lease never blocks.
type borrowState struct {
	n atomic.Int32
}

// share takes a shared lease.
func (bs *borrowState) share() error {
	for {
		n := bs.n.Load()
		switch {
		case n == stateFreed:
			return fmt.Errorf("%w: buffer has been freed", ErrReleased)
		case n == stateExclusive:
			return fmt.Errorf("%w: buffer is exclusively borrowed", ErrBorrowConflict)
		}
		if bs.n.CompareAndSwap(n, n+1) {
			return nil
		}
	}
}

// exclusive takes the exclusive lease.
func (bs *borrowState) exclusive() error {
	if bs.n.CompareAndSwap(stateIdle, stateExclusive) {
		return nil
	}
	switch n := bs.n.Load(); {
	case n == stateFreed:
		return fmt.Errorf("%w: buffer has been freed", ErrReleased)
	case n == stateExclusive:
		return fmt.Errorf("%w: buffer is already exclusively borrowed", ErrBorrowConflict)
	default:
		return fmt.Errorf("%w: buffer has %d live shared borrows", ErrBorrowConflict, n)
	}
}

// free marks the buffer freed if no lease is live.
func (bs *borrowState) free() error {
	if bs.n.CompareAndSwap(stateIdle, stateFreed) {
		return nil
	}
	if bs.n.Load() == stateFreed {
		return nil
	}
	return fmt.Errorf("%w: buffer still has live borrows", ErrBorrowConflict)
}

func (bs *borrowState) unshare() {
	bs.n.Add(-1)
}

func (bs *borrowState) unexclusive() {
	bs.n.CompareAndSwap(stateExclusive, stateIdle)
}

// lease is one borrow of a buffer. Every view derived from a borrowed view
// carries the same lease, so releasing any of them ends the borrow for all.
type lease struct {
	owner     *borrowState
	exclusive bool
	released  atomic.Bool
	once      sync.Once
}

func newLease(owner *borrowState, exclusive bool) *lease {
	return &lease{owner: owner, exclusive: exclusive}
}

// release returns the lease to its owner. Calling it more than once is a no-op.
func (l *lease) release() {
	l.once.Do(func() {
		l.released.Store(true)
		if l.exclusive {
			l.owner.unexclusive()
		} else {
			l.owner.unshare()
		}
	})
}

// live reports an error if the lease has been released.
func (l *lease) live() error {
	if l == nil || l.released.Load() {
		return fmt.Errorf("%w: view used after Release", ErrReleased)
	}
	return nil
}
