package jobs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/swipegen-backend/internal/types"
)

// IDPrefix marks every job id; handlers reject lookups without it before
// touching the store.
const IDPrefix = "job_"

// DefaultTTL is how long a job record lives after its last write.
const DefaultTTL = 24 * time.Hour

var (
	ErrNotFound     = errors.New("job not found")
	ErrDuplicateJob = errors.New("job id already exists")
)

// NewID returns a fresh job id: prefix, creation millis, random segment.
func NewID() string {
	return fmt.Sprintf("%s%d_%s", IDPrefix, time.Now().UnixMilli(), uuid.NewString()[:8])
}

// ValidID reports whether the id could have come from NewID.
func ValidID(id string) bool {
	return strings.HasPrefix(id, IDPrefix) && len(id) > len(IDPrefix)
}

// Store persists job records with a TTL re-armed on every write.
type Store interface {
	// Create inserts a new pending job; ErrDuplicateJob if the id exists.
	Create(ctx context.Context, id string, meta *types.JobMetadata) error
	// UpdateStatus merges status, progress and outcome into an existing
	// record. Updating a missing or expired job returns ErrNotFound.
	UpdateStatus(ctx context.Context, id string, status types.JobStatus, progress int, result *types.JobResult, errMsg string) error
	// Get fetches a job; ErrNotFound if absent or expired.
	Get(ctx context.Context, id string) (*types.Job, error)
}
