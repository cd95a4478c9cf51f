package repository

import (
	"context"
	"time"

	"glass_office/internal/models"
	"glass_office/internal/store"
)

type ResidentialRequestRepository interface {
	NewID() string
	Save(ctx context.Context, req *models.ResidentialRequest) error
	GetByID(ctx context.Context, id string) (*models.ResidentialRequest, error)
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context) ([]models.ResidentialRequest, error)
}

type residentialRequestRepository struct {
	requests docCollection[models.ResidentialRequest]
}

func NewResidentialRequestRepository(s store.DocumentStore) ResidentialRequestRepository {
	return &residentialRequestRepository{
		requests: newCollection(s, store.ResidentialRequests, "Residential request",
			func(r *models.ResidentialRequest, id string) { r.ID = id }),
	}
}

func (r *residentialRequestRepository) NewID() string { return newID("req_") }

func (r *residentialRequestRepository) Save(ctx context.Context, req *models.ResidentialRequest) error {
	return r.requests.put(ctx, req.ID, req)
}

func (r *residentialRequestRepository) GetByID(ctx context.Context, id string) (*models.ResidentialRequest, error) {
	return r.requests.get(ctx, id)
}

func (r *residentialRequestRepository) Delete(ctx context.Context, id string) error {
	return r.requests.remove(ctx, id)
}

func (r *residentialRequestRepository) GetAll(ctx context.Context) ([]models.ResidentialRequest, error) {
	rows, err := r.requests.all(ctx)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(rows, func(req models.ResidentialRequest) time.Time { return req.CreatedAt })
	return rows, nil
}

type ServiceRequestRepository interface {
	NewID() string
	Save(ctx context.Context, req *models.ServiceRequest) error
	GetByID(ctx context.Context, id string) (*models.ServiceRequest, error)
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context) ([]models.ServiceRequest, error)
}

type serviceRequestRepository struct {
	requests docCollection[models.ServiceRequest]
}

func NewServiceRequestRepository(s store.DocumentStore) ServiceRequestRepository {
	return &serviceRequestRepository{
		requests: newCollection(s, store.ServiceRequests, "Service request",
			func(r *models.ServiceRequest, id string) { r.ID = id }),
	}
}

func (r *serviceRequestRepository) NewID() string { return newID("sr_") }

func (r *serviceRequestRepository) Save(ctx context.Context, req *models.ServiceRequest) error {
	return r.requests.put(ctx, req.ID, req)
}

func (r *serviceRequestRepository) GetByID(ctx context.Context, id string) (*models.ServiceRequest, error) {
	return r.requests.get(ctx, id)
}

func (r *serviceRequestRepository) Delete(ctx context.Context, id string) error {
	return r.requests.remove(ctx, id)
}

func (r *serviceRequestRepository) GetAll(ctx context.Context) ([]models.ServiceRequest, error) {
	rows, err := r.requests.all(ctx)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(rows, func(req models.ServiceRequest) time.Time { return req.CreatedAt })
	return rows, nil
}
