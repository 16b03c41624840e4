package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/staff-records/internal/domain"
	"github.com/spec-kit/staff-records/internal/repository"
	"github.com/spec-kit/staff-records/internal/storage"
	"github.com/spec-kit/staff-records/internal/validation"
	apperrors "github.com/spec-kit/staff-records/pkg/util"
)

const detailCachePrefix = "staff:detail:"

// StaffService orchestrates the staff record use cases: it combines the
// validation engine, the photo store, and the repository, and keeps the
// record store and the photo file namespace consistent.
type StaffService struct {
	repo     repository.StaffRepository
	photos   *storage.PhotoStore
	cache    *redis.Client
	cacheTTL time.Duration
	logger   *zap.Logger
}

// Dependencies encapsulates collaborators required by the service.
// Cache may be nil, in which case detail reads always hit the store.
type Dependencies struct {
	Repo     repository.StaffRepository
	Photos   *storage.PhotoStore
	Cache    *redis.Client
	CacheTTL time.Duration
	Logger   *zap.Logger
}

// NewStaffService constructs the service.
func NewStaffService(deps Dependencies) *StaffService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	ttl := deps.CacheTTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &StaffService{
		repo:     deps.Repo,
		photos:   deps.Photos,
		cache:    deps.Cache,
		cacheTTL: ttl,
		logger:   logger,
	}
}

// List returns all staff records in insertion order.
func (s *StaffService) List(ctx context.Context) ([]domain.StaffRecord, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return records, nil
}

// GetByStaffID fetches a single record by its business key.
func (s *StaffService) GetByStaffID(ctx context.Context, staffID string) (*domain.StaffRecord, error) {
	if cached := s.cacheGet(ctx, staffID); cached != nil {
		return cached, nil
	}
	record, err := s.repo.GetByStaffID(ctx, staffID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if record == nil {
		return nil, apperrors.NewNotFound("staff record", map[string]any{"staffId": staffID})
	}
	s.cacheSet(ctx, record)
	return record, nil
}

// Create validates the form, stores the photo if one is attached, and
// inserts the record. Uniqueness of staffId and email is checked before
// any file is written so a rejected submission never leaves an upload
// behind.
func (s *StaffService) Create(ctx context.Context, form *domain.StaffForm) (*domain.StaffRecord, error) {
	if violations := validation.ValidateForm(form); len(violations) > 0 {
		return nil, apperrors.NewValidationFailed(violations)
	}
	if err := s.checkUnique(ctx, form, 0); err != nil {
		return nil, err
	}

	startingDate, err := form.ParseStartingDate()
	if err != nil {
		return nil, apperrors.NewValidationFailed([]apperrors.FieldViolation{
			{Field: "startingDate", Message: "Starting date must be a valid date"},
		})
	}

	record := &domain.StaffRecord{
		StaffID:      form.StaffID,
		StaffName:    form.StaffName,
		Email:        form.Email,
		PhoneNumber:  form.PhoneNumber,
		StartingDate: startingDate,
	}

	if form.Photo != nil {
		path, err := s.photos.Store(form.Photo.Content, form.Photo.FileName)
		if err != nil {
			return nil, apperrors.NewInternalError(err)
		}
		record.PhotoPath = path
	}

	if err := s.repo.Create(ctx, record); err != nil {
		if record.PhotoPath != "" {
			// Insert lost a race; do not leave the upload orphaned.
			if delErr := s.photos.Delete(record.PhotoPath); delErr != nil {
				s.logger.Warn("failed to remove photo after insert failure", zap.Error(delErr))
			}
		}
		return nil, mapRepoError(err)
	}

	s.cacheInvalidate(ctx, record.StaffID)
	s.logger.Info("staff record created", zap.String("staffId", record.StaffID), zap.Int64("id", record.ID))
	return record, nil
}

// Update applies an edit form to the record at the given business key.
// The form's numeric id must match the stored record. When no new photo
// is supplied the existing PhotoPath carries over unchanged; a new photo
// replaces the old file. Uniqueness is re-checked before any file I/O.
func (s *StaffService) Update(ctx context.Context, staffID string, form *domain.StaffForm) (*domain.StaffRecord, error) {
	existing, err := s.repo.GetByStaffID(ctx, staffID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if existing == nil || existing.ID != form.ID {
		return nil, apperrors.NewNotFound("staff record", map[string]any{"staffId": staffID})
	}

	if violations := validation.ValidateForm(form); len(violations) > 0 {
		// Carry the stored photo path so the client can redisplay it.
		return nil, apperrors.NewValidationFailedWithDetails(violations, map[string]any{"photoPath": existing.PhotoPath})
	}
	if err := s.checkUnique(ctx, form, existing.ID); err != nil {
		return nil, err
	}

	startingDate, err := form.ParseStartingDate()
	if err != nil {
		return nil, apperrors.NewValidationFailed([]apperrors.FieldViolation{
			{Field: "startingDate", Message: "Starting date must be a valid date"},
		})
	}

	previousKey := existing.StaffID
	existing.StaffID = form.StaffID
	existing.StaffName = form.StaffName
	existing.Email = form.Email
	existing.PhoneNumber = form.PhoneNumber
	existing.StartingDate = startingDate

	if form.Photo != nil {
		if existing.PhotoPath != "" {
			if err := s.photos.Delete(existing.PhotoPath); err != nil {
				return nil, apperrors.NewInternalError(err)
			}
		}
		path, err := s.photos.Store(form.Photo.Content, form.Photo.FileName)
		if err != nil {
			return nil, apperrors.NewInternalError(err)
		}
		existing.PhotoPath = path
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, mapRepoError(err)
	}

	s.cacheInvalidate(ctx, previousKey)
	s.cacheInvalidate(ctx, existing.StaffID)
	s.logger.Info("staff record updated", zap.String("staffId", existing.StaffID), zap.Int64("id", existing.ID))
	return existing, nil
}

// Delete removes the record at the given business key along with its
// stored photo. Deleting an absent key is a no-op.
func (s *StaffService) Delete(ctx context.Context, staffID string) error {
	existing, err := s.repo.GetByStaffID(ctx, staffID)
	if err != nil {
		return apperrors.MapError(err)
	}
	if existing == nil {
		return nil
	}

	if existing.PhotoPath != "" {
		if err := s.photos.Delete(existing.PhotoPath); err != nil {
			return apperrors.NewInternalError(err)
		}
	}
	if err := s.repo.Delete(ctx, existing.ID); err != nil {
		return apperrors.MapError(err)
	}

	s.cacheInvalidate(ctx, staffID)
	s.logger.Info("staff record deleted", zap.String("staffId", staffID), zap.Int64("id", existing.ID))
	return nil
}

// checkUnique verifies staffId and email against the store, ignoring the
// record identified by selfID. The database unique indexes remain the
// authority under concurrent writes; this pre-check keeps conflicting
// submissions from touching the photo store.
func (s *StaffService) checkUnique(ctx context.Context, form *domain.StaffForm, selfID int64) error {
	if other, err := s.repo.GetByStaffID(ctx, form.StaffID); err != nil {
		return apperrors.MapError(err)
	} else if other != nil && other.ID != selfID {
		return apperrors.NewConflict("staffId", "Staff ID already exists")
	}
	if other, err := s.repo.GetByEmail(ctx, form.Email); err != nil {
		return apperrors.MapError(err)
	} else if other != nil && other.ID != selfID {
		return apperrors.NewConflict("email", "Email already exists")
	}
	return nil
}

func mapRepoError(err error) error {
	if conflict, ok := err.(*repository.ConflictError); ok {
		return apperrors.NewConflict(conflict.Field, conflict.Error())
	}
	return apperrors.MapError(err)
}

func (s *StaffService) cacheGet(ctx context.Context, staffID string) *domain.StaffRecord {
	if s.cache == nil {
		return nil
	}
	payload, err := s.cache.Get(ctx, detailCachePrefix+staffID).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Debug("detail cache read failed", zap.Error(err))
		}
		return nil
	}
	var record domain.StaffRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil
	}
	return &record
}

func (s *StaffService) cacheSet(ctx context.Context, record *domain.StaffRecord) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(record)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, detailCachePrefix+record.StaffID, payload, s.cacheTTL).Err(); err != nil {
		s.logger.Debug("detail cache write failed", zap.Error(err))
	}
}

func (s *StaffService) cacheInvalidate(ctx context.Context, staffID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, detailCachePrefix+staffID).Err(); err != nil {
		s.logger.Debug("detail cache invalidation failed", zap.Error(err))
	}
}
