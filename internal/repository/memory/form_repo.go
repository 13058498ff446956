package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go-contact-form/internal/domain"
	"go-contact-form/pkg/logger"
)

// FormRepository is the in-memory domain.FormRepository.
type FormRepository struct {
	forms    sync.Map // id -> *domain.FormInstance
	count    atomic.Int64
	maxForms int
	ttl      time.Duration
	now      func() time.Time
}

var _ domain.FormRepository = (*FormRepository)(nil)

// NewFormRepository keeps form instances in process memory. Instances idle
// for longer than ttl are dropped by Sweep or the cleanup loop.
func NewFormRepository(maxForms int, ttl time.Duration) *FormRepository {
	return &FormRepository{
		maxForms: maxForms,
		ttl:      ttl,
		now:      time.Now,
	}
}

func (r *FormRepository) Create(ctx context.Context, instance *domain.FormInstance) error {
	if r.count.Add(1) > int64(r.maxForms) {
		r.count.Add(-1)
		return domain.ErrTooManyForms
	}
	if _, loaded := r.forms.LoadOrStore(instance.ID, instance); loaded {
		r.count.Add(-1)
	}
	return nil
}

func (r *FormRepository) Get(ctx context.Context, id string) (*domain.FormInstance, error) {
	value, ok := r.forms.Load(id)
	if !ok {
		return nil, domain.ErrFormNotFound
	}
	return value.(*domain.FormInstance), nil
}

func (r *FormRepository) Delete(ctx context.Context, id string) error {
	if _, loaded := r.forms.LoadAndDelete(id); !loaded {
		return domain.ErrFormNotFound
	}
	r.count.Add(-1)
	return nil
}

func (r *FormRepository) Len() int {
	return int(r.count.Load())
}

// Sweep drops every instance idle for longer than the TTL and returns how
// many were removed.
func (r *FormRepository) Sweep() int {
	cutoff := r.now().Add(-r.ttl)
	removed := 0
	r.forms.Range(func(key, value interface{}) bool {
		instance := value.(*domain.FormInstance)
		if instance.IdleSince(cutoff) {
			if _, loaded := r.forms.LoadAndDelete(key); loaded {
				r.count.Add(-1)
				removed++
			}
		}
		return true
	})
	return removed
}

// StartCleanup runs Sweep every interval until ctx is done.
func (r *FormRepository) StartCleanup(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := r.Sweep(); n > 0 {
					logger.Log.Info("Expired idle forms", "count", n, "active", r.Len())
				}
			}
		}
	}()
}
