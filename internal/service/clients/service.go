package clients

import (
	"context"
	"errors"
	"fmt"
	"strings"

	clientRepo "github.com/tadbeer-it/TDB-FieldService/internal/infra/storage/client"
	"github.com/tadbeer-it/TDB-FieldService/internal/service/clients/models"
)

// Service service for managing client records
type Service struct {
	clientRepo     ClientRepository
	identityClient IdentityClient
	logger         Logger
}

// NewService creates a client service
func NewService(
	clientRepo ClientRepository,
	identityClient IdentityClient,
	logger Logger,
) *Service {
	return &Service{
		clientRepo:     clientRepo,
		identityClient: identityClient,
		logger:         logger,
	}
}

// Create registers a new client. Admin only.
func (s *Service) Create(ctx context.Context, req *models.CreateClientRequest) (*models.ClientResponse, error) {
	s.logger.Info("Create: creating client %q by user=%d", req.NameEn, req.UserID)

	if !s.identityClient.IsAdmin(ctx, req.UserID) {
		s.logger.Warn("Create: access denied for user=%d", req.UserID)
		return nil, ErrAccessDenied
	}

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: invalid request: %v", err)
		return nil, err
	}

	client, err := s.clientRepo.Create(ctx, req.ToDomainClient())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: client id=%d created", client.ID)
	return models.FromDomainClient(client), nil
}

// GetByID fetches a client record
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ClientResponse, error) {
	s.logger.Info("GetByID: fetching client id=%d", id)

	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("GetByID: client id=%d not found", id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("GetByID: repository error for client id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainClient(client), nil
}

// List returns all registered clients. Admin only.
func (s *Service) List(ctx context.Context, userID int64) (*models.ClientListResponse, error) {
	s.logger.Info("List: listing clients for user=%d", userID)

	if !s.identityClient.IsAdmin(ctx, userID) {
		s.logger.Warn("List: access denied for user=%d", userID)
		return nil, ErrAccessDenied
	}

	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d clients", len(clients))
	return models.FromDomainClientList(clients), nil
}

// Delete soft-deletes a client record. Admin only. Existing bookings and
// tasks keep their client reference for history.
func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	s.logger.Info("Delete: deleting client id=%d by user=%d", id, userID)

	if !s.identityClient.IsAdmin(ctx, userID) {
		s.logger.Warn("Delete: access denied for user=%d", userID)
		return ErrAccessDenied
	}

	if err := s.clientRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("Delete: client id=%d not found", id)
			return ErrClientNotFound
		}
		s.logger.Error("Delete: repository error for client id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: client id=%d deleted", id)
	return nil
}

func validateCreateRequest(req *models.CreateClientRequest) error {
	if strings.TrimSpace(req.NameAr) == "" && strings.TrimSpace(req.NameEn) == "" {
		return fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	return nil
}
