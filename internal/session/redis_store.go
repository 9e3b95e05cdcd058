package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rentalworks/rental-portal/internal/model"
)

// Key prefixes mirror the storage entries the browser client kept:
// the portal user record, the selected customer and the cart snapshot.
// Keeping them as three separate keys lets logout and session expiry
// clear them in one MULTI-free DEL.
const (
	userKeyPrefix     = "rental_portal_user:"
	customerKeyPrefix = "customer-store:"
	cartKeyPrefix     = "cart-store:"
)

// userRecord is the JSON stored under the user key.
type userRecord struct {
	User User   `json:"user"`
	SID  string `json:"sid"`
}

// RedisStore persists sessions in Redis with a fixed TTL.  It satisfies
// Store and is the production implementation; use NewMemoryStore when no
// Redis client is available.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore wraps an existing client.  A non-positive ttl defaults to
// twelve hours, matching a working day with margin.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Load(ctx context.Context, id string) (*Session, error) {
	raw, err := s.rdb.Get(ctx, userKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}
	var rec userRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, ErrNoSession
	}

	sess := &Session{ID: id, SID: rec.SID, User: &rec.User}
	if raw, err := s.rdb.Get(ctx, customerKeyPrefix+id).Bytes(); err == nil {
		var cust model.Customer
		if json.Unmarshal(raw, &cust) == nil {
			sess.Customer = &cust
		}
	}
	if raw, err := s.rdb.Get(ctx, cartKeyPrefix+id).Bytes(); err == nil {
		var cart model.Cart
		if json.Unmarshal(raw, &cart) == nil {
			sess.Cart = &cart
		}
	}
	return sess, nil
}

func (s *RedisStore) SaveUser(ctx context.Context, id string, u User, sid string) error {
	raw, err := json.Marshal(userRecord{User: u, SID: sid})
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, userKeyPrefix+id, raw, s.ttl).Err()
}

func (s *RedisStore) SaveCustomer(ctx context.Context, id string, c *model.Customer) error {
	if c == nil {
		return s.rdb.Del(ctx, customerKeyPrefix+id).Err()
	}
	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, customerKeyPrefix+id, raw, s.ttl).Err()
}

func (s *RedisStore) SaveCart(ctx context.Context, id string, cart *model.Cart) error {
	if cart == nil {
		return s.rdb.Del(ctx, cartKeyPrefix+id).Err()
	}
	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, cartKeyPrefix+id, raw, s.ttl).Err()
}

func (s *RedisStore) Clear(ctx context.Context, id string) error {
	return s.rdb.Del(ctx,
		userKeyPrefix+id,
		customerKeyPrefix+id,
		cartKeyPrefix+id,
	).Err()
}
