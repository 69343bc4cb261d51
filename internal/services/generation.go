package services

import (
	"context"
	"fmt"

	"github.com/yungbote/swipegen-backend/internal/assembler"
	"github.com/yungbote/swipegen-backend/internal/generator"
	"github.com/yungbote/swipegen-backend/internal/jobs"
	"github.com/yungbote/swipegen-backend/internal/logger"
	"github.com/yungbote/swipegen-backend/internal/selector"
	"github.com/yungbote/swipegen-backend/internal/types"
)

// Progress checkpoints written as a job advances through the pipeline.
const (
	progressAccepted  = 25
	progressSelected  = 50
	progressGenerated = 75
	progressDone      = 100
)

type GenerationService interface {
	// Enqueue validates the request, persists a pending job and kicks off
	// the pipeline in the background. Returns the new job id.
	Enqueue(ctx context.Context, req *types.GenerateRequest) (string, error)
	// GetJob fetches the current job record.
	GetJob(ctx context.Context, jobID string) (*types.Job, error)
}

type generationService struct {
	log   *logger.Logger
	store jobs.Store
	sel   *selector.Selector
	gen   *generator.Generator
}

func NewGenerationService(log *logger.Logger, store jobs.Store, sel *selector.Selector, gen *generator.Generator) (GenerationService, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if store == nil {
		return nil, fmt.Errorf("job store required")
	}
	if sel == nil || gen == nil {
		return nil, fmt.Errorf("selector and generator required")
	}
	return &generationService{
		log:   log.With("service", "GenerationService"),
		store: store,
		sel:   sel,
		gen:   gen,
	}, nil
}

func (s *generationService) Enqueue(ctx context.Context, req *types.GenerateRequest) (string, error) {
	if req == nil || len(req.SwipeResults) == 0 || req.Preferences == nil {
		return "", fmt.Errorf("missing required data: swipeResults and preferences")
	}

	jobID := jobs.NewID()
	meta := &types.JobMetadata{
		SwipeResults: req.SwipeResults,
		Preferences:  req.Preferences,
	}
	if err := s.store.Create(ctx, jobID, meta); err != nil {
		return "", fmt.Errorf("create job: %w", err)
	}

	s.log.Info("job enqueued", "job_id", jobID, "swipes", len(req.SwipeResults))

	// Detached from the request context: the pipeline outlives the HTTP
	// request that started it.
	go s.processJob(context.Background(), jobID, *req.Preferences)

	return jobID, nil
}

func (s *generationService) GetJob(ctx context.Context, jobID string) (*types.Job, error) {
	return s.store.Get(ctx, jobID)
}

func (s *generationService) processJob(ctx context.Context, jobID string, profile types.PreferenceProfile) {
	log := s.log.With("job_id", jobID)

	// Progress writes are best effort; a failed checkpoint write must not
	// kill the job. The terminal write is attempted exactly once either way.
	progress := func(p int) {
		if err := s.store.UpdateStatus(ctx, jobID, types.StatusProcessing, p, nil, ""); err != nil {
			log.Warn("progress write failed", "progress", p, "error", err)
		}
	}
	fail := func(msg string, err error) {
		log.Error("job failed", "stage", msg, "error", err)
		if uErr := s.store.UpdateStatus(ctx, jobID, types.StatusError, 0, nil, fmt.Sprintf("%s: %v", msg, err)); uErr != nil {
			log.Error("terminal error write failed", "error", uErr)
		}
	}

	progress(progressAccepted)

	tmpl, confidence, ok := s.sel.Select(profile)
	if !ok {
		fail("template selection", fmt.Errorf("template catalog is empty"))
		return
	}
	log.Info("template selected", "template", tmpl.ID, "confidence", confidence)
	progress(progressSelected)

	vars := s.gen.Variables(ctx, tmpl, profile)
	progress(progressGenerated)

	html, err := assembler.Assemble(tmpl, vars)
	if err != nil {
		fail("template assembly", err)
		return
	}

	result := &types.JobResult{
		HTML:         html,
		TemplateName: tmpl.Name,
		Variables:    vars,
	}
	if err := s.store.UpdateStatus(ctx, jobID, types.StatusCompleted, progressDone, result, ""); err != nil {
		log.Error("terminal completion write failed", "error", err)
		return
	}
	log.Info("job completed", "template", tmpl.ID, "html_bytes", len(html))
}
