package service

import (
	"context"
	"errors"

	"customerlist/internal/logging"
	"customerlist/internal/model"
	"customerlist/internal/repository"
)

// ErrUpstreamFailed is the only error CustomerService.List returns. The cause
// is logged, never propagated; the text is safe to show to end users.
var ErrUpstreamFailed = errors.New("Müşteri listesi alınamadı")

// CustomerService defines the use cases for listing customers.
type CustomerService interface {
	// List returns the current batch of customers in source order.
	List(ctx context.Context) ([]model.Customer, error)
}

type customerService struct {
	repo repository.CustomerRepository
	log  *logging.Logger
}

// NewCustomerService constructs a new CustomerService. log may be nil.
func NewCustomerService(repo repository.CustomerRepository, log *logging.Logger) CustomerService {
	return &customerService{repo: repo, log: log}
}

func (s *customerService) List(ctx context.Context) ([]model.Customer, error) {
	customers, err := s.repo.List(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "shopify_request_failed", err, map[string]any{
			"component": "customer_service",
		})
		return nil, ErrUpstreamFailed
	}
	if customers == nil {
		customers = []model.Customer{}
	}
	return customers, nil
}
