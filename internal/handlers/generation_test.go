package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/swipegen-backend/internal/catalog"
	"github.com/yungbote/swipegen-backend/internal/generator"
	"github.com/yungbote/swipegen-backend/internal/jobs"
	"github.com/yungbote/swipegen-backend/internal/logger"
	"github.com/yungbote/swipegen-backend/internal/selector"
	"github.com/yungbote/swipegen-backend/internal/services"
	"github.com/yungbote/swipegen-backend/internal/types"
)

func testRouter(t *testing.T) *gin.Engine {
	r, _ := testRouterWithStore(t)
	return r
}

func testRouterWithStore(t *testing.T) (*gin.Engine, *jobs.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log, err := logger.New("dev")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	store := jobs.NewMemoryStore(0)
	svc, err := services.NewGenerationService(
		log,
		store,
		selector.New(catalog.Templates),
		generator.New(nil, log),
	)
	if err != nil {
		t.Fatalf("service: %v", err)
	}

	h := NewGenerationHandler(log, svc)
	r := gin.New()
	r.POST("/api/generate-lp", h.CreateJob)
	r.GET("/api/generation-status", h.GetStatus)
	r.GET("/api/get-result", h.GetResult)
	return r, store
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validRequest() types.GenerateRequest {
	return types.GenerateRequest{
		SwipeResults: []types.SwipeEvent{
			{ItemID: 1, Decision: types.DecisionLike, Style: "creative"},
		},
		Preferences: &types.PreferenceProfile{
			Styles:    []string{"creative"},
			Influence: types.InfluenceCreative,
		},
	}
}

func createJob(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/generate-lp", validRequest())
	if w.Code != http.StatusOK {
		t.Fatalf("create: status %d body %s", w.Code, w.Body.String())
	}
	var resp types.GenerateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !jobs.ValidID(resp.JobID) {
		t.Fatalf("bad job id %q", resp.JobID)
	}
	if resp.Status != "accepted" {
		t.Fatalf("create status = %q", resp.Status)
	}
	return resp.JobID
}

func TestCreateJobRejectsIncompleteBody(t *testing.T) {
	r := testRouter(t)

	for _, body := range []any{
		map[string]any{},
		map[string]any{"swipeResults": validRequest().SwipeResults},
		map[string]any{"preferences": validRequest().Preferences},
		"not json at all",
	} {
		w := doJSON(t, r, http.MethodPost, "/api/generate-lp", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %v: status %d, want 400", body, w.Code)
		}
	}
}

func TestStatusValidatesJobID(t *testing.T) {
	r := testRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/generation-status", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing jobId: status %d, want 400", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, "/api/generation-status?jobId=run_123", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("malformed jobId: status %d, want 400", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, "/api/generation-status?jobId=job_999_deadbeef", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown jobId: status %d, want 404", w.Code)
	}
}

func TestStatusAndResultHappyPath(t *testing.T) {
	r := testRouter(t)
	jobID := createJob(t, r)

	deadline := time.Now().Add(5 * time.Second)
	var status types.StatusResponse
	for time.Now().Before(deadline) {
		w := doJSON(t, r, http.MethodGet, "/api/generation-status?jobId="+jobID, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status: %d body %s", w.Code, w.Body.String())
		}
		if err := json.Unmarshal(w.Body.Bytes(), &status); err != nil {
			t.Fatalf("decode status: %v", err)
		}
		if status.Status == "completed" || status.Status == "error" {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if status.Status != "completed" {
		t.Fatalf("job did not complete: %+v", status)
	}
	if status.Progress != 100 {
		t.Fatalf("completed progress = %d", status.Progress)
	}

	w := doJSON(t, r, http.MethodGet, "/api/get-result?jobId="+jobID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("result: %d body %s", w.Code, w.Body.String())
	}
	var result types.ResultResponse
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.Code == "" || result.TemplateName == "" {
		t.Fatalf("empty result payload: %+v", result)
	}
	if len(result.Variables) == 0 {
		t.Fatal("result must include generated variables")
	}
}

func TestResultBeforeCompletionAnswers202(t *testing.T) {
	r, store := testRouterWithStore(t)

	// A job that no pipeline is driving stays in flight.
	jobID := jobs.NewID()
	if err := store.Create(context.Background(), jobID, nil); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.UpdateStatus(context.Background(), jobID, types.StatusProcessing, 50, nil, ""); err != nil {
		t.Fatalf("update: %v", err)
	}

	w := doJSON(t, r, http.MethodGet, "/api/get-result?jobId="+jobID, nil)
	if w.Code != http.StatusAccepted {
		t.Fatalf("in-flight result: status %d, want 202", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "processing" {
		t.Fatalf("202 body status = %v", body["status"])
	}
	if body["progress"] != float64(50) {
		t.Fatalf("202 body progress = %v", body["progress"])
	}
}

func TestResultValidatesJobID(t *testing.T) {
	r := testRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/get-result", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing jobId: status %d, want 400", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, "/api/get-result?jobId=nope", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("malformed jobId: status %d, want 400", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, "/api/get-result?jobId=job_999_deadbeef", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown jobId: status %d, want 404", w.Code)
	}
}
