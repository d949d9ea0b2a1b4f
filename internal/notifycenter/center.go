package notifycenter

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/coopstead/portal/internal/changefeed"
	"github.com/coopstead/portal/internal/model"
)

// Error taxonomy surfaced through Snapshot().Err. A new error replaces
// the previous one; the collection always stays usable.
var (
	ErrLoadFailed         = errors.New("notification load failed")
	ErrSubscriptionFailed = errors.New("notification subscription failed")
	ErrMutationFailed     = errors.New("notification mutation failed")

	// ErrNotFound is returned when an operation names an id that is not
	// in the current collection.
	ErrNotFound = errors.New("notification not found")
)

// State of the center for the current user session.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
)

//go:generate mockgen -source=center.go -destination=../mocks/notifycenter/mock.go -package=mocks

// Gateway is the persistence surface the center mutates through. The
// notification service implements it; writes through the service also
// publish change-feed echoes, which the center must tolerate receiving
// back.
type Gateway interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Subscription is a cancellable handle on an open event stream.
type Subscription interface {
	Cancel()
}

// Feed delivers per-user insert/update events.
type Feed interface {
	Subscribe(ctx context.Context, userID uuid.UUID, out chan<- changefeed.Event) (Subscription, error)
}

// WrapFeed adapts the concrete change feed to the Feed interface.
func WrapFeed(f *changefeed.Feed) Feed {
	return feedAdapter{f}
}

type feedAdapter struct {
	f *changefeed.Feed
}

func (a feedAdapter) Subscribe(ctx context.Context, userID uuid.UUID, out chan<- changefeed.Event) (Subscription, error) {
	sub, err := a.f.Subscribe(ctx, userID, out)
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// Snapshot is a read-only copy of the center's state handed to views.
type Snapshot struct {
	Notifications []model.Notification
	UnreadCount   int
	State         State
	Err           error
}

// Center owns the authoritative in-memory view of one user's
// notifications: the collection sorted by creation time descending and
// the derived unread count. It reconciles a one-time bulk load, a live
// stream of insert/update events, and local mutations. Views read
// snapshots and call the four operations; nothing else mutates the
// collection.
type Center struct {
	gateway Gateway
	feed    Feed

	mu            sync.Mutex
	userID        uuid.UUID
	state         State
	generation    uint64
	notifications []model.Notification
	unread        int
	lastErr       error
	pending       []changefeed.Event
	cancelSub     func()
}

func New(gateway Gateway, feed Feed) *Center {
	return &Center{gateway: gateway, feed: feed}
}

// Initialize (re)binds the center to a user: it cancels any previous
// subscription, opens a new one, and bulk-loads the user's
// notifications. Events arriving while the load is in flight are
// buffered and applied after it completes, deduplicated by id, so none
// are lost or double-applied. A failed load leaves the center Ready
// with an empty collection and a recorded error.
func (c *Center) Initialize(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return fmt.Errorf("initialize: user id is required")
	}

	c.mu.Lock()
	c.generation++
	gen := c.generation
	if c.cancelSub != nil {
		c.cancelSub()
		c.cancelSub = nil
	}
	c.userID = userID
	c.state = StateLoading
	c.notifications = nil
	c.unread = 0
	c.lastErr = nil
	c.pending = nil
	c.mu.Unlock()

	subCtx, cancel := context.WithCancel(context.Background())
	out := make(chan changefeed.Event, 16)

	sub, err := c.feed.Subscribe(subCtx, userID, out)

	c.mu.Lock()
	if gen != c.generation {
		// Superseded by a newer Initialize while we were subscribing.
		c.mu.Unlock()
		cancel()
		if sub != nil {
			sub.Cancel()
		}
		return nil
	}
	if err != nil {
		cancel()
		c.lastErr = fmt.Errorf("%w: %w", ErrSubscriptionFailed, err)
		zlog.Logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to subscribe to change feed")
	} else {
		c.cancelSub = func() {
			cancel()
			sub.Cancel()
		}
		go c.consume(gen, out)
	}
	c.mu.Unlock()

	rows, loadErr := c.gateway.ListByUser(ctx, userID)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		return nil
	}

	if loadErr != nil {
		c.lastErr = fmt.Errorf("%w: %w", ErrLoadFailed, loadErr)
		zlog.Logger.Error().Err(loadErr).Str("user_id", userID.String()).Msg("failed to load notifications")
		rows = nil
	}

	c.notifications = rows
	c.unread = countUnread(rows)
	c.state = StateReady

	for _, ev := range c.pending {
		c.applyLocked(ev)
	}
	c.pending = nil

	return nil
}

// Close cancels the subscription and drops all state. Events already in
// flight for the closed generation are discarded.
func (c *Center) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	if c.cancelSub != nil {
		c.cancelSub()
		c.cancelSub = nil
	}
	c.state = StateUninitialized
	c.userID = uuid.Nil
	c.notifications = nil
	c.unread = 0
	c.lastErr = nil
	c.pending = nil
}

// consume forwards feed events into the collection until its generation
// is superseded. The generation guard is what makes cancellation exact:
// a late event tagged with an old generation is dropped even if it was
// already sitting in the channel.
func (c *Center) consume(gen uint64, out <-chan changefeed.Event) {
	for ev := range out {
		c.mu.Lock()
		if gen != c.generation {
			c.mu.Unlock()
			return
		}
		if c.state == StateLoading {
			c.pending = append(c.pending, ev)
		} else {
			c.applyLocked(ev)
		}
		c.mu.Unlock()
	}
}

// applyLocked merges one feed event. Callers hold c.mu.
func (c *Center) applyLocked(ev changefeed.Event) {
	switch ev.Kind {
	case changefeed.EventInsert:
		if c.indexLocked(ev.Notification.ID) >= 0 {
			// Already present (bulk load raced the stream); never
			// double-apply.
			return
		}
		c.notifications = append([]model.Notification{ev.Notification}, c.notifications...)
		c.unread++
	case changefeed.EventUpdate:
		i := c.indexLocked(ev.Notification.ID)
		if i < 0 {
			return
		}
		c.notifications[i] = ev.Notification
		// Recompute by full scan rather than by delta: a local mutation
		// and the remote echo of that same mutation may both touch the
		// count, and a scan cannot double-count.
		c.unread = countUnread(c.notifications)
	}
}

// MarkAsRead marks one notification read, persisting first and applying
// locally only on success. Marking an already-read entry is a no-op for
// the count.
func (c *Center) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	c.mu.Lock()
	gen := c.generation
	if c.indexLocked(id) < 0 {
		c.mu.Unlock()
		return ErrNotFound
	}
	c.mu.Unlock()

	if err := c.gateway.MarkRead(ctx, id); err != nil {
		c.recordMutationErr(gen, "mark as read", err)
		return fmt.Errorf("mark as read: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return nil
	}
	if i := c.indexLocked(id); i >= 0 && !c.notifications[i].Read {
		c.notifications[i].Read = true
		if c.unread > 0 {
			c.unread--
		}
	}
	return nil
}

// MarkAllAsRead marks every notification of the current user read.
func (c *Center) MarkAllAsRead(ctx context.Context) error {
	c.mu.Lock()
	gen := c.generation
	userID := c.userID
	c.mu.Unlock()

	if userID == uuid.Nil {
		return fmt.Errorf("mark all as read: no user bound")
	}

	if err := c.gateway.MarkAllRead(ctx, userID); err != nil {
		c.recordMutationErr(gen, "mark all as read", err)
		return fmt.Errorf("mark all as read: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return nil
	}
	for i := range c.notifications {
		c.notifications[i].Read = true
	}
	c.unread = 0
	return nil
}

// DeleteNotification removes one notification. The count drops only if
// the removed entry was still unread at removal time.
func (c *Center) DeleteNotification(ctx context.Context, id uuid.UUID) error {
	c.mu.Lock()
	gen := c.generation
	if c.indexLocked(id) < 0 {
		c.mu.Unlock()
		return ErrNotFound
	}
	c.mu.Unlock()

	if err := c.gateway.Delete(ctx, id); err != nil {
		c.recordMutationErr(gen, "delete", err)
		return fmt.Errorf("delete notification: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return nil
	}
	if i := c.indexLocked(id); i >= 0 {
		if !c.notifications[i].Read && c.unread > 0 {
			c.unread--
		}
		c.notifications = append(c.notifications[:i], c.notifications[i+1:]...)
	}
	return nil
}

// Snapshot returns a copy of the current view.
func (c *Center) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]model.Notification, len(c.notifications))
	copy(out, c.notifications)

	return Snapshot{
		Notifications: out,
		UnreadCount:   c.unread,
		State:         c.state,
		Err:           c.lastErr,
	}
}

func (c *Center) recordMutationErr(gen uint64, op string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return
	}
	c.lastErr = fmt.Errorf("%w: %s: %w", ErrMutationFailed, op, err)
}

func (c *Center) indexLocked(id uuid.UUID) int {
	for i := range c.notifications {
		if c.notifications[i].ID == id {
			return i
		}
	}
	return -1
}

func countUnread(notifications []model.Notification) int {
	n := 0
	for i := range notifications {
		if !notifications[i].Read {
			n++
		}
	}
	return n
}
