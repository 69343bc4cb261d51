package poller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/yungbote/swipegen-backend/internal/logger"
	"github.com/yungbote/swipegen-backend/internal/types"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("dev")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}

// fakeServer simulates the generation API: a job completes after a fixed
// number of status polls.
type fakeServer struct {
	mu           sync.Mutex
	pollsToDone  int
	statusCalls  int
	failJob      bool
	errorMessage string
}

func (f *fakeServer) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/generate-lp", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(types.GenerateResponse{JobID: "job_1_test", Status: "pending"})
	})
	mux.HandleFunc("/api/generation-status", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.statusCalls++
		calls := f.statusCalls
		f.mu.Unlock()

		resp := types.StatusResponse{Status: "processing", Progress: 50}
		if calls >= f.pollsToDone {
			if f.failJob {
				resp = types.StatusResponse{Status: "error", Error: f.errorMessage}
			} else {
				resp = types.StatusResponse{Status: "completed", Progress: 100}
			}
		}
		json.NewEncoder(w).Encode(resp)
	})
	mux.HandleFunc("/api/get-result", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(types.ResultResponse{
			Code:         "<html></html>",
			TemplateName: "Test Template",
			Variables:    map[string]string{"heroTitle": "Hi"},
		})
	})
	return mux
}

func request() *types.GenerateRequest {
	return &types.GenerateRequest{
		SwipeResults: []types.SwipeEvent{{ItemID: 1, Decision: types.DecisionLike}},
		Preferences:  &types.PreferenceProfile{Influence: types.InfluenceMinimal},
	}
}

func TestRunCompletes(t *testing.T) {
	fake := &fakeServer{pollsToDone: 3}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	var states []State
	p := New(Config{
		BaseURL:     srv.URL,
		Interval:    5 * time.Millisecond,
		MaxAttempts: 20,
		OnProgress:  func(s State, _ int) { states = append(states, s) },
	}, testLogger(t))

	res, err := p.Run(context.Background(), request())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.TemplateName != "Test Template" || res.Code == "" {
		t.Fatalf("bad result %+v", res)
	}
	if len(states) == 0 || states[0] != StateGenerating {
		t.Fatalf("expected generating first, got %v", states)
	}
	if states[len(states)-1] != StateCompleted {
		t.Fatalf("expected completed last, got %v", states)
	}
	if p.State() != StateCompleted {
		t.Fatalf("poller state = %q", p.State())
	}
}

func TestRunJobError(t *testing.T) {
	fake := &fakeServer{pollsToDone: 2, failJob: true, errorMessage: "assembly exploded"}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	p := New(Config{BaseURL: srv.URL, Interval: 5 * time.Millisecond, MaxAttempts: 20}, testLogger(t))
	_, err := p.Run(context.Background(), request())
	if err == nil || err.Error() != "assembly exploded" {
		t.Fatalf("expected job error, got %v", err)
	}
}

func TestRunTimesOut(t *testing.T) {
	fake := &fakeServer{pollsToDone: 1 << 30}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	p := New(Config{BaseURL: srv.URL, Interval: 2 * time.Millisecond, MaxAttempts: 5}, testLogger(t))
	_, err := p.Run(context.Background(), request())
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
}

func TestRunHonorsContextCancel(t *testing.T) {
	fake := &fakeServer{pollsToDone: 1 << 30}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	p := New(Config{BaseURL: srv.URL, Interval: 10 * time.Millisecond, MaxAttempts: 1000}, testLogger(t))

	done := make(chan error, 1)
	go func() {
		_, err := p.Run(ctx, request())
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("poller ignored cancellation")
	}
}

func TestPollDeduplicatesConcurrentWaiters(t *testing.T) {
	fake := &fakeServer{pollsToDone: 5}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	p := New(Config{BaseURL: srv.URL, Interval: 5 * time.Millisecond, MaxAttempts: 50}, testLogger(t))

	var wg sync.WaitGroup
	results := make([]*types.ResultResponse, 4)
	errs := make([]error, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = p.Poll(context.Background(), "job_1_test")
		}(i)
	}
	wg.Wait()

	for i := 0; i < 4; i++ {
		if errs[i] != nil {
			t.Fatalf("waiter %d: %v", i, errs[i])
		}
		if results[i] == nil || results[i].TemplateName != "Test Template" {
			t.Fatalf("waiter %d: bad result %+v", i, results[i])
		}
	}

	fake.mu.Lock()
	calls := fake.statusCalls
	fake.mu.Unlock()
	if calls > 10 {
		t.Fatalf("concurrent waiters should share one poll loop, saw %d status calls", calls)
	}
}
