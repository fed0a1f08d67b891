package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"riderperf/internal/domain"
	"riderperf/internal/redis"
	"riderperf/internal/repository"
)

// summaryLockTTL bounds how long a crashed request can block summary
// creation for the same rider and date.
const summaryLockTTL = 10 * time.Second

// SummaryService handles daily check-in summaries. At most one summary may
// exist per rider per date; concurrent submissions are serialized with a
// redis lock before the uniqueness check.
type SummaryService struct {
	summaryRepo repository.SummaryRepository
	riderRepo   repository.RiderRepository
	lockStore   redis.SummaryLockInterface
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(
	summaryRepo repository.SummaryRepository,
	riderRepo repository.RiderRepository,
	lockStore redis.SummaryLockInterface,
) *SummaryService {
	return &SummaryService{
		summaryRepo: summaryRepo,
		riderRepo:   riderRepo,
		lockStore:   lockStore,
	}
}

// CreateSummaryRequest contains the parameters for a daily check-in.
type CreateSummaryRequest struct {
	RiderID       string
	Date          string
	ReportingTime string // "HH:mm" or full timestamp; optional
}

// CreateSummary records a rider's daily check-in.
func (s *SummaryService) CreateSummary(ctx context.Context, req CreateSummaryRequest) (*domain.DailySummary, error) {
	if req.RiderID == "" {
		return nil, ErrInvalidRiderID
	}

	if _, err := time.Parse(domain.DateLayout, req.Date); err != nil {
		return nil, ErrInvalidDate
	}

	if _, err := s.riderRepo.GetByID(ctx, req.RiderID); err != nil {
		return nil, err
	}

	if s.lockStore != nil {
		acquired, err := s.lockStore.AcquireSummaryLock(ctx, req.RiderID, req.Date, summaryLockTTL)
		if err == nil && !acquired {
			return nil, ErrSummaryInProgress
		}
		if err == nil {
			defer func() {
				_ = s.lockStore.ReleaseSummaryLock(ctx, req.RiderID, req.Date)
			}()
		}
		// On redis error, fall through: the repo check below still holds.
	}

	existing, err := s.summaryRepo.GetByRiderAndDate(ctx, req.RiderID, req.Date)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSummaryExists
	}

	summary := &domain.DailySummary{
		ID:            uuid.New().String(),
		RiderID:       req.RiderID,
		Date:          req.Date,
		ReportingTime: req.ReportingTime,
		CreatedAt:     time.Now(),
	}

	if err := s.summaryRepo.Create(ctx, summary); err != nil {
		return nil, err
	}

	return summary, nil
}

// GetAllSummaries retrieves recent summaries.
func (s *SummaryService) GetAllSummaries(ctx context.Context) ([]*domain.DailySummary, error) {
	return s.summaryRepo.GetAll(ctx)
}
