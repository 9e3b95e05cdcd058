package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentalworks/rental-portal/internal/model"
	"github.com/rentalworks/rental-portal/internal/queue"
	"github.com/rentalworks/rental-portal/internal/session"
)

// stubBackend records calls per method and answers from canned payloads.
type stubBackend struct {
	mu       sync.Mutex
	calls    map[string]int
	lastArgs map[string]any
	delay    time.Duration
	respond  map[string]any // method -> payload marshaled into out
	fail     map[string]error
}

func newStubBackend() *stubBackend {
	return &stubBackend{
		calls:    make(map[string]int),
		lastArgs: make(map[string]any),
		respond:  make(map[string]any),
		fail:     make(map[string]error),
	}
}

func (b *stubBackend) Call(_ context.Context, _ , method string, args any, out any) error {
	b.mu.Lock()
	b.calls[method]++
	b.lastArgs[method] = args
	delay := b.delay
	err := b.fail[method]
	payload, ok := b.respond[method]
	b.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	if err != nil {
		return err
	}
	if ok && out != nil {
		bs, merr := json.Marshal(payload)
		if merr != nil {
			return merr
		}
		return json.Unmarshal(bs, out)
	}
	return nil
}

func (b *stubBackend) count(method string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[method]
}

// capturePublisher collects audit events.
type capturePublisher struct {
	mu     sync.Mutex
	events []queue.BookingStageEvent
}

func (p *capturePublisher) PublishBookingStage(_ context.Context, ev queue.BookingStageEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return nil
}

func staffSession(t *testing.T, store session.Store) *session.Session {
	t.Helper()
	u := session.User{Email: "staff@example.com", FullName: "Staff", Roles: []string{"Rental Staff"}}
	require.NoError(t, store.SaveUser(context.Background(), "sess-1", u, "sid-1"))
	sess, err := store.Load(context.Background(), "sess-1")
	require.NoError(t, err)
	return sess
}

func TestConfirmWithAdvance(t *testing.T) {
	t.Run("double submit performs one backend call", func(t *testing.T) {
		rpc := newStubBackend()
		rpc.delay = 100 * time.Millisecond
		store := session.NewMemoryStore()
		pub := &capturePublisher{}
		svc := NewBookingService(rpc, store, pub)
		sess := staffSession(t, store)

		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				errs[i] = svc.ConfirmWithAdvance(context.Background(), sess, "RB-001", 2000, model.PayModeUPI)
			}(i)
		}
		wg.Wait()

		assert.NoError(t, errs[0])
		assert.NoError(t, errs[1])
		assert.Equal(t, 1, rpc.count("confirm_booking_with_advance"))
	})

	t.Run("rejects unknown payment mode before calling backend", func(t *testing.T) {
		rpc := newStubBackend()
		svc := NewBookingService(rpc, session.NewMemoryStore(), nil)
		err := svc.ConfirmWithAdvance(context.Background(), &session.Session{}, "RB-001", 2000, "Barter")
		assert.ErrorIs(t, err, ErrBadInput)
		assert.Zero(t, rpc.count("confirm_booking_with_advance"))
	})

	t.Run("publishes stage event with actor", func(t *testing.T) {
		rpc := newStubBackend()
		store := session.NewMemoryStore()
		pub := &capturePublisher{}
		svc := NewBookingService(rpc, store, pub)
		sess := staffSession(t, store)

		require.NoError(t, svc.ConfirmWithAdvance(context.Background(), sess, "RB-002", 1500, model.PayModeCash))
		require.Len(t, pub.events, 1)
		ev := pub.events[0]
		assert.Equal(t, queue.StageAdvance, ev.Stage)
		assert.Equal(t, "RB-002", ev.BookingID)
		assert.Equal(t, 1500.0, ev.Amount)
		assert.Equal(t, "staff@example.com", ev.Actor)
		assert.NotEmpty(t, ev.OccurredAt)
	})
}

func TestProcessReturnAndRefund(t *testing.T) {
	t.Run("deduction requires a reason", func(t *testing.T) {
		rpc := newStubBackend()
		svc := NewBookingService(rpc, session.NewMemoryStore(), nil)
		err := svc.ProcessReturnAndRefund(context.Background(), &session.Session{}, "RB-001", 4500, 500, "", model.PayModeCash)
		assert.ErrorIs(t, err, ErrBadInput)
		assert.Zero(t, rpc.count("process_item_return_and_refund"))
	})

	t.Run("full refund needs no reason", func(t *testing.T) {
		rpc := newStubBackend()
		svc := NewBookingService(rpc, session.NewMemoryStore(), nil)
		err := svc.ProcessReturnAndRefund(context.Background(), &session.Session{}, "RB-001", 5000, 0, "", model.PayModeCash)
		assert.NoError(t, err)
		assert.Equal(t, 1, rpc.count("process_item_return_and_refund"))
	})
}

func TestCreateFromCart(t *testing.T) {
	t.Run("refetches cart after creation", func(t *testing.T) {
		rpc := newStubBackend()
		rpc.respond["create_booking_from_cart"] = map[string]any{"booking_id": "RB-100"}
		rpc.respond["get_cart_items"] = map[string]any{"items": []any{}, "total": 0, "item_count": 0}
		store := session.NewMemoryStore()
		pub := &capturePublisher{}
		svc := NewBookingService(rpc, store, pub)
		sess := staffSession(t, store)
		require.NoError(t, store.SaveCart(context.Background(), sess.ID, &model.Cart{ItemCount: 3}))

		id, err := svc.CreateFromCart(context.Background(), sess, "CUST-001", 2000, "deliver before noon")
		require.NoError(t, err)
		assert.Equal(t, "RB-100", id)
		assert.Equal(t, 1, rpc.count("get_cart_items"))

		reloaded, err := store.Load(context.Background(), sess.ID)
		require.NoError(t, err)
		require.NotNil(t, reloaded.Cart)
		assert.Zero(t, reloaded.Cart.ItemCount)

		require.Len(t, pub.events, 1)
		assert.Equal(t, queue.StageCreated, pub.events[0].Stage)
	})

	t.Run("requires a customer", func(t *testing.T) {
		svc := NewBookingService(newStubBackend(), session.NewMemoryStore(), nil)
		_, err := svc.CreateFromCart(context.Background(), &session.Session{}, "", 0, "")
		assert.ErrorIs(t, err, ErrNoCustomer)
	})
}

func TestSummary(t *testing.T) {
	t.Run("passes can flags through untouched", func(t *testing.T) {
		rpc := newStubBackend()
		rpc.respond["get_booking_payment_summary"] = map[string]any{
			"summary": map[string]any{
				"booking_id":          "RB-001",
				"booking_status":      "Confirmed",
				"can_collect_balance": true,
				"can_collect_advance": false,
			},
		}
		svc := NewBookingService(rpc, session.NewMemoryStore(), nil)
		sum, err := svc.Summary(context.Background(), &session.Session{}, "RB-001")
		require.NoError(t, err)
		assert.True(t, sum.CanCollectBalance)
		assert.False(t, sum.CanCollectAdvance)
		assert.Equal(t, model.StatusConfirmed, sum.BookingStatus)
	})

	t.Run("missing summary is an error", func(t *testing.T) {
		svc := NewBookingService(newStubBackend(), session.NewMemoryStore(), nil)
		_, err := svc.Summary(context.Background(), &session.Session{}, "RB-404")
		assert.ErrorIs(t, err, ErrBadInput)
	})
}

func TestProcessExchange(t *testing.T) {
	t.Run("requires removals and replacements", func(t *testing.T) {
		svc := NewBookingService(newStubBackend(), session.NewMemoryStore(), nil)
		_, err := svc.ProcessExchange(context.Background(), &session.Session{}, "RB-001",
			nil, []model.ExchangeItem{{ItemCode: "X"}}, 0, model.PayModeCash)
		assert.ErrorIs(t, err, ErrBadInput)
	})

	t.Run("returns superseding booking id and publishes", func(t *testing.T) {
		rpc := newStubBackend()
		rpc.respond["process_exchange"] = map[string]any{"new_booking": "RB-200"}
		store := session.NewMemoryStore()
		pub := &capturePublisher{}
		svc := NewBookingService(rpc, store, pub)
		sess := staffSession(t, store)

		newID, err := svc.ProcessExchange(context.Background(), sess, "RB-001",
			[]model.ExchangeItem{{ItemCode: "OLD", Qty: 1, Rate: 1000}},
			[]model.ExchangeItem{{ItemCode: "NEW", Qty: 1, Rate: 1500}},
			500, model.PayModeUPI)
		require.NoError(t, err)
		assert.Equal(t, "RB-200", newID)

		require.Len(t, pub.events, 1)
		assert.Equal(t, queue.StageExchanged, pub.events[0].Stage)
		assert.Equal(t, "RB-200", pub.events[0].NewBookingID)
	})
}
