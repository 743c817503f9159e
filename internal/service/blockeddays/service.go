package blockeddays

import (
	"context"
	"fmt"

	"github.com/tadbeer-it/TDB-FieldService/internal/domain"
	"github.com/tadbeer-it/TDB-FieldService/internal/service/blockeddays/models"
)

// Service service for managing calendar availability
type Service struct {
	blockedDayRepo BlockedDayRepository
	identityClient IdentityClient
	logger         Logger
}

// NewService creates a blocked day service
func NewService(
	blockedDayRepo BlockedDayRepository,
	identityClient IdentityClient,
	logger Logger,
) *Service {
	return &Service{
		blockedDayRepo: blockedDayRepo,
		identityClient: identityClient,
		logger:         logger,
	}
}

// Set opens or closes a date, globally or for a single client. Admin only.
func (s *Service) Set(ctx context.Context, req *models.SetBlockedDayRequest) (*models.BlockedDayResponse, error) {
	s.logger.Info("Set: date=%s, client=%v, status=%s by user=%d", req.Date, req.ClientID, req.Status, req.UserID)

	if !s.identityClient.IsAdmin(ctx, req.UserID) {
		s.logger.Warn("Set: access denied for user=%d", req.UserID)
		return nil, ErrAccessDenied
	}

	switch domain.BlockedDayStatus(req.Status) {
	case domain.DayOpen, domain.DayClosed:
	default:
		s.logger.Warn("Set: unknown status %q", req.Status)
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}

	if req.ClientID != nil && *req.ClientID <= 0 {
		return nil, fmt.Errorf("%w: client id must be positive", ErrInvalidInput)
	}

	day, err := req.ToDomainBlockedDay()
	if err != nil {
		s.logger.Warn("Set: invalid date %q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, req.Date)
	}

	saved, err := s.blockedDayRepo.Upsert(ctx, day)
	if err != nil {
		s.logger.Error("Set: repository error for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: Set - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Set: blocked day id=%d saved for date=%s", saved.ID, req.Date)
	return models.FromDomainBlockedDay(saved), nil
}

// List returns all blocked-day rows. Admin only.
func (s *Service) List(ctx context.Context, userID int64) (*models.BlockedDayListResponse, error) {
	s.logger.Info("List: listing blocked days for user=%d", userID)

	if !s.identityClient.IsAdmin(ctx, userID) {
		s.logger.Warn("List: access denied for user=%d", userID)
		return nil, ErrAccessDenied
	}

	days, err := s.blockedDayRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d blocked days", len(days))
	return models.FromDomainBlockedDayList(days), nil
}
