package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"

	pkgerrors "github.com/rifqipratama/warungkita-backend/pkg/errors"
)

// Store holds every live cart in process memory. There is exactly one cart
// per browsing session and nothing survives a restart.
type Store struct {
	mu    sync.Mutex
	carts map[uuid.UUID]*Cart
}

// NewStore builds an empty cart store.
func NewStore() *Store {
	return &Store{carts: map[uuid.UUID]*Cart{}}
}

func (s *Store) create() *Cart {
	now := time.Now().UTC()
	record := &Cart{
		ID:        uuid.New(),
		Items:     []Item{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.carts[record.ID] = record
	s.mu.Unlock()

	return record.clone()
}

func (s *Store) get(cartID uuid.UUID) (*Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.carts[cartID]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart not found")
	}
	return record.clone(), nil
}

// mutate applies fn to the cart under the lock and returns a snapshot of the
// result. The snapshot is what callers see, so totals derived from it always
// reflect the committed mutation.
func (s *Store) mutate(cartID uuid.UUID, fn func(*Cart) error) (*Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.carts[cartID]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart not found")
	}
	if err := fn(record); err != nil {
		return nil, err
	}
	record.UpdatedAt = time.Now().UTC()
	return record.clone(), nil
}
