package jobs

import (
	"context"
	"sync"
	"time"

	"github.com/yungbote/swipegen-backend/internal/types"
)

type memoryEntry struct {
	job       types.Job
	expiresAt time.Time
}

// MemoryStore is a process-local Store used for development and tests when
// no Redis address is configured.
type MemoryStore struct {
	mu  sync.Mutex
	ttl time.Duration
	m   map[string]*memoryEntry
	now func() time.Time
}

// NewMemoryStore builds a memory store; ttl <= 0 uses DefaultTTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		ttl: ttl,
		m:   map[string]*memoryEntry{},
		now: time.Now,
	}
}

func (s *MemoryStore) Create(_ context.Context, id string, meta *types.JobMetadata) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.m[id]; ok && s.now().Before(e.expiresAt) {
		return ErrDuplicateJob
	}
	nowMs := s.now().UnixMilli()
	s.m[id] = &memoryEntry{
		job: types.Job{
			ID:        id,
			Status:    types.StatusPending,
			Progress:  0,
			CreatedAt: nowMs,
			UpdatedAt: nowMs,
			Metadata:  meta,
		},
		expiresAt: s.now().Add(s.ttl),
	}
	return nil
}

func (s *MemoryStore) UpdateStatus(_ context.Context, id string, status types.JobStatus, progress int, result *types.JobResult, errMsg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.m[id]
	if !ok || !s.now().Before(e.expiresAt) {
		delete(s.m, id)
		return ErrNotFound
	}
	e.job.Status = status
	e.job.Progress = progress
	if result != nil {
		e.job.Result = result
	}
	e.job.Error = errMsg
	e.job.UpdatedAt = s.now().UnixMilli()
	e.expiresAt = s.now().Add(s.ttl)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*types.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.m[id]
	if !ok || !s.now().Before(e.expiresAt) {
		delete(s.m, id)
		return nil, ErrNotFound
	}
	job := e.job
	return &job, nil
}
