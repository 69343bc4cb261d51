package poller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/yungbote/swipegen-backend/internal/logger"
	"github.com/yungbote/swipegen-backend/internal/types"
)

// State is the client-visible phase of a generation run.
type State string

const (
	StateIdle       State = "idle"
	StateGenerating State = "generating"
	StateCompleted  State = "completed"
	StateError      State = "error"
)

const (
	defaultInterval    = 1 * time.Second
	defaultMaxAttempts = 60
)

// ErrTimeout is returned when the job does not finish within MaxAttempts
// polls.
var ErrTimeout = errors.New("generation timeout - please try again")

// Config drives a Poller. Zero values fall back to one-second polls with a
// sixty-attempt budget.
type Config struct {
	BaseURL     string
	Interval    time.Duration
	MaxAttempts int
	HTTPClient  *http.Client
	// OnProgress is invoked after every state change with the current
	// state and job progress. Optional.
	OnProgress func(state State, progress int)
}

// Poller drives a generation job from submission to result on the client
// side. Concurrent Run calls for the same payload share one server job via
// singleflight.
type Poller struct {
	cfg   Config
	log   *logger.Logger
	group singleflight.Group

	mu    sync.Mutex
	state State
}

func New(cfg Config, log *logger.Logger) *Poller {
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultMaxAttempts
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Poller{cfg: cfg, log: log.With("service", "Poller"), state: StateIdle}
}

// State returns the current phase of the most recent run.
func (p *Poller) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Run submits the request and polls until the job completes, fails, times
// out or ctx is canceled.
func (p *Poller) Run(ctx context.Context, req *types.GenerateRequest) (*types.ResultResponse, error) {
	jobID, err := p.submit(ctx, req)
	if err != nil {
		p.notify(StateError, 0)
		return nil, err
	}
	p.notify(StateGenerating, 0)

	return p.Poll(ctx, jobID)
}

// Poll waits for an already submitted job. Concurrent Poll calls for the
// same job id share a single polling loop.
func (p *Poller) Poll(ctx context.Context, jobID string) (*types.ResultResponse, error) {
	res, err, _ := p.group.Do(jobID, func() (any, error) {
		return p.poll(ctx, jobID)
	})
	if err != nil {
		p.notify(StateError, 0)
		return nil, err
	}
	p.notify(StateCompleted, 100)
	return res.(*types.ResultResponse), nil
}

func (p *Poller) notify(state State, progress int) {
	p.mu.Lock()
	p.state = state
	p.mu.Unlock()
	if p.cfg.OnProgress != nil {
		p.cfg.OnProgress(state, progress)
	}
}

func (p *Poller) submit(ctx context.Context, req *types.GenerateRequest) (string, error) {
	var resp types.GenerateResponse
	if err := p.postJSON(ctx, "/api/generate-lp", req, &resp); err != nil {
		return "", fmt.Errorf("submit generation: %w", err)
	}
	if resp.JobID == "" {
		return "", errors.New("server returned no job id")
	}
	return resp.JobID, nil
}

func (p *Poller) poll(ctx context.Context, jobID string) (*types.ResultResponse, error) {
	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	for attempt := 0; attempt < p.cfg.MaxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}

		var status types.StatusResponse
		if err := p.getJSON(ctx, "/api/generation-status?jobId="+url.QueryEscape(jobID), &status); err != nil {
			p.log.Warn("status poll failed", "job_id", jobID, "attempt", attempt+1, "error", err)
			continue
		}
		p.notify(StateGenerating, status.Progress)

		switch status.Status {
		case types.StatusCompleted:
			var result types.ResultResponse
			if err := p.getJSON(ctx, "/api/get-result?jobId="+url.QueryEscape(jobID), &result); err != nil {
				return nil, fmt.Errorf("fetch result: %w", err)
			}
			return &result, nil
		case types.StatusError:
			msg := status.Error
			if msg == "" {
				msg = "generation failed"
			}
			return nil, errors.New(msg)
		}
	}

	return nil, ErrTimeout
}

func (p *Poller) postJSON(ctx context.Context, path string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.BaseURL+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return p.doJSON(req, out)
}

func (p *Poller) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.cfg.BaseURL+path, nil)
	if err != nil {
		return err
	}
	return p.doJSON(req, out)
}

func (p *Poller) doJSON(req *http.Request, out any) error {
	resp, err := p.cfg.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("http %d: %s", resp.StatusCode, string(raw))
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}
