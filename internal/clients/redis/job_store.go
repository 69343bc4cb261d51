package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/swipegen-backend/internal/jobs"
	"github.com/yungbote/swipegen-backend/internal/logger"
	"github.com/yungbote/swipegen-backend/internal/types"
)

const (
	keyPrefix  = "lpgen:job:"
	rmwRetries = 5
)

// JobStore is the Redis-backed jobs.Store. Records are JSON blobs under
// lpgen:job:<id> with a TTL re-armed on every write.
type JobStore struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

var _ jobs.Store = (*JobStore)(nil)

// NewJobStore connects using REDIS_ADDR (and optional REDIS_PASSWORD,
// REDIS_DB is always 0 here) and verifies the connection with a short ping.
func NewJobStore(log *logger.Logger, ttl time.Duration) (*JobStore, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if ttl <= 0 {
		ttl = jobs.DefaultTTL
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    os.Getenv("REDIS_PASSWORD"),
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &JobStore{
		log: log.With("service", "RedisJobStore"),
		rdb: rdb,
		ttl: ttl,
	}, nil
}

func (s *JobStore) Close() error {
	if s == nil || s.rdb == nil {
		return nil
	}
	return s.rdb.Close()
}

func key(id string) string { return keyPrefix + id }

func (s *JobStore) Create(ctx context.Context, id string, meta *types.JobMetadata) error {
	nowMs := time.Now().UnixMilli()
	job := types.Job{
		ID:        id,
		Status:    types.StatusPending,
		Progress:  0,
		CreatedAt: nowMs,
		UpdatedAt: nowMs,
		Metadata:  meta,
	}
	raw, err := json.Marshal(&job)
	if err != nil {
		return fmt.Errorf("marshal job: %w", err)
	}

	ok, err := s.rdb.SetNX(ctx, key(id), raw, s.ttl).Result()
	if err != nil {
		return fmt.Errorf("redis setnx: %w", err)
	}
	if !ok {
		return jobs.ErrDuplicateJob
	}
	return nil
}

// UpdateStatus is a read-modify-write under WATCH so concurrent writers to
// the same job never interleave partial records.
func (s *JobStore) UpdateStatus(ctx context.Context, id string, status types.JobStatus, progress int, result *types.JobResult, errMsg string) error {
	k := key(id)

	txn := func(tx *goredis.Tx) error {
		raw, err := tx.Get(ctx, k).Bytes()
		if errors.Is(err, goredis.Nil) {
			return jobs.ErrNotFound
		}
		if err != nil {
			return err
		}

		var job types.Job
		if err := json.Unmarshal(raw, &job); err != nil {
			return fmt.Errorf("unmarshal job: %w", err)
		}

		job.Status = status
		job.Progress = progress
		if result != nil {
			job.Result = result
		}
		job.Error = errMsg
		job.UpdatedAt = time.Now().UnixMilli()

		next, err := json.Marshal(&job)
		if err != nil {
			return fmt.Errorf("marshal job: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, k, next, s.ttl)
			return nil
		})
		return err
	}

	for i := 0; i < rmwRetries; i++ {
		err := s.rdb.Watch(ctx, txn, k)
		if err == nil {
			return nil
		}
		if errors.Is(err, goredis.TxFailedErr) {
			continue
		}
		return err
	}
	return fmt.Errorf("job %s: update contended past %d retries", id, rmwRetries)
}

func (s *JobStore) Get(ctx context.Context, id string) (*types.Job, error) {
	raw, err := s.rdb.Get(ctx, key(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, jobs.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var job types.Job
	if err := json.Unmarshal(raw, &job); err != nil {
		return nil, fmt.Errorf("unmarshal job: %w", err)
	}
	return &job, nil
}
