package service

import (
	"context"

	"gearshare-backend/internal/domain"
	"gearshare-backend/internal/logger"
	"gearshare-backend/internal/metrics"
	"gearshare-backend/internal/repository"
)

type requestService struct {
	requestRepo repository.ItemRequestRepository
	userRepo    repository.UserRepository
	clock       Clock
}

func NewRequestService(requestRepo repository.ItemRequestRepository, userRepo repository.UserRepository, clock Clock) RequestService {
	return &requestService{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		clock:       clock,
	}
}

func (s *requestService) CreateRequest(ctx context.Context, description string, userID int64) (*domain.ItemRequest, error) {
	requestor, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	request := &domain.ItemRequest{
		Description: description,
		RequestorID: requestor.ID,
		Created:     s.clock.Now(),
		Items:       []domain.Item{},
	}
	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}
	request.Requestor = requestor

	metrics.ItemRequestsCreated.Inc()
	logger.Info("item request created", "request_id", request.ID, "requestor_id", requestor.ID)
	return request, nil
}

func (s *requestService) ListOwnRequests(ctx context.Context, userID int64) ([]domain.ItemRequest, error) {
	return s.requestRepo.ListByRequestor(ctx, userID)
}

func (s *requestService) ListAllRequests(ctx context.Context) ([]domain.ItemRequest, error) {
	return s.requestRepo.ListAll(ctx)
}

func (s *requestService) GetRequest(ctx context.Context, requestID int64) (*domain.ItemRequest, error) {
	return s.requestRepo.GetByID(ctx, requestID)
}
