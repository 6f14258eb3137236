package service

import (
	"context"
	"errors"
	"fmt"

	"golang-stock-registry/internal/registry/dto"
	"golang-stock-registry/internal/registry/repository"
	"golang-stock-registry/pkg/logger"
)

// BearerService defines the interface for reading and seeding bearers.
type BearerService interface {
	ListBearers(ctx context.Context) ([]*dto.BearerResponse, error)
	CreateBearer(ctx context.Context, name string) (*dto.BearerResponse, error)
}

// NewBearerService creates a new bearer service.
func NewBearerService(bearerRepo repository.BearerRepository, bearerNames *BearerNameCache, log *logger.Logger) BearerService {
	return &bearerService{
		bearerRepo:  bearerRepo,
		bearerNames: bearerNames,
		logger:      log,
	}
}

type bearerService struct {
	bearerRepo  repository.BearerRepository
	bearerNames *BearerNameCache
	logger      *logger.Logger
}

// ListBearers returns every bearer.
func (s *bearerService) ListBearers(ctx context.Context) ([]*dto.BearerResponse, error) {
	bearers, err := s.bearerRepo.FindAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list bearers", logger.ErrorField(err))
		return nil, err
	}

	responses := make([]*dto.BearerResponse, 0, len(bearers))
	for i := range bearers {
		s.bearerNames.Remember(&bearers[i])
		responses = append(responses, &dto.BearerResponse{ID: bearers[i].ID, Name: bearers[i].Name})
	}
	return responses, nil
}

// CreateBearer inserts a bearer with a unique name.
func (s *bearerService) CreateBearer(ctx context.Context, name string) (*dto.BearerResponse, error) {
	if isBlank(name) {
		return nil, &ValidationError{Reasons: []string{MsgNameBlank}}
	}

	bearer, err := s.bearerRepo.Create(ctx, nil, name)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, nameTakenError()
		}
		return nil, fmt.Errorf("failed to create bearer: %w", err)
	}

	s.bearerNames.Remember(bearer)
	s.logger.InfoContext(ctx, "Bearer created", logger.UintField("bearer_id", bearer.ID), logger.StringField("name", bearer.Name))
	return &dto.BearerResponse{ID: bearer.ID, Name: bearer.Name}, nil
}
