package services

import (
	"context"
	"strings"
	"time"

	"github.com/career-navigator/apiserver/internal/store"
	"github.com/career-navigator/apiserver/types"
	"github.com/google/uuid"
)

// RecordsService owns per-account job and progress records. Every call is
// scoped to the owner resolved by AuthService.Identify; the owner id is
// never taken from caller-supplied input.
type RecordsService struct {
	store store.Store
}

func NewRecordsService(st store.Store) *RecordsService {
	return &RecordsService{store: st}
}

// JobParams are the caller-supplied fields of a job application.
type JobParams struct {
	Title   string
	Company string
	Status  string
	Notes   string
}

func (s *RecordsService) AddJob(ctx context.Context, ownerID string, params JobParams) (types.Job, error) {
	now := time.Now().UTC()
	job := types.Job{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Title:     strings.TrimSpace(params.Title),
		Company:   strings.TrimSpace(params.Company),
		Status:    strings.TrimSpace(params.Status),
		Notes:     strings.TrimSpace(params.Notes),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.store.CreateJob(ctx, job)
}

func (s *RecordsService) ListJobs(ctx context.Context, ownerID string) ([]types.Job, error) {
	return s.store.ListJobs(ctx, ownerID)
}

// ProgressParams are the caller-supplied fields of a progress record.
type ProgressParams struct {
	Competency  string
	Level       string
	EvidenceURL string
}

func (s *RecordsService) AddProgress(ctx context.Context, ownerID string, params ProgressParams) (types.Progress, error) {
	now := time.Now().UTC()
	item := types.Progress{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Competency:  strings.TrimSpace(params.Competency),
		Level:       strings.TrimSpace(params.Level),
		EvidenceURL: strings.TrimSpace(params.EvidenceURL),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return s.store.CreateProgress(ctx, item)
}

func (s *RecordsService) ListProgress(ctx context.Context, ownerID string) ([]types.Progress, error) {
	return s.store.ListProgress(ctx, ownerID)
}
