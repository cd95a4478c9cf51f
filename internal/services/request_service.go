package services

import (
	"context"
	"strings"

	ierr "glass_office/internal/errors"
	"glass_office/internal/models"
	"glass_office/internal/repository"
	"glass_office/internal/store"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

type ResidentialRequestService interface {
	CreateRequest(ctx context.Context, in models.ResidentialRequestInput) (*models.ResidentialRequest, error)
	GetRequestByID(ctx context.Context, id string) (*models.ResidentialRequest, error)
	GetAllRequests(ctx context.Context) ([]models.ResidentialRequest, error)
	UpdateRequest(ctx context.Context, id string, patch models.ResidentialRequestPatch) (*models.ResidentialRequest, error)
	DeleteRequest(ctx context.Context, id string) error
}

type residentialRequestService struct {
	requestRepo repository.ResidentialRequestRepository
	techRepo    repository.TechnicianRepository
	seqRepo     repository.SequenceRepository
	notifier    *Notifier
	log         *zap.Logger
	clock       Clock
}

// NewResidentialRequestService resolves assigned technicians against techRepo, which
// is backed by the service-techs collection.
func NewResidentialRequestService(
	requestRepo repository.ResidentialRequestRepository,
	techRepo repository.TechnicianRepository,
	seqRepo repository.SequenceRepository,
	notifier *Notifier,
	log *zap.Logger,
	clock Clock,
) ResidentialRequestService {
	return &residentialRequestService{
		requestRepo: requestRepo,
		techRepo:    techRepo,
		seqRepo:     seqRepo,
		notifier:    notifier,
		log:         log,
		clock:       clock,
	}
}

func (s *residentialRequestService) CreateRequest(ctx context.Context, in models.ResidentialRequestInput) (*models.ResidentialRequest, error) {
	if strings.TrimSpace(in.Customer.Name) == "" {
		return nil, ierr.Validation("Customer name is required")
	}

	contact, err := ResolveTech(ctx, s.techRepo, in.AssignedTechID, in.AssignedTech)
	if err != nil {
		return nil, err
	}

	seq, err := s.seqRepo.Next(ctx, store.ResidentialSequence, repository.ResidentialSequenceSeed)
	if err != nil {
		return nil, err
	}

	now := s.clock.now()
	req := &models.ResidentialRequest{
		ID:                s.requestRepo.NewID(),
		RequestNumber:     models.ResidentialRequestNumberFor(seq),
		Customer:          in.Customer,
		Description:       in.Description,
		AssignedTech:      firstNonEmpty(contact.Name, in.AssignedTech),
		AssignedTechID:    firstNonEmpty(contact.ID, in.AssignedTechID),
		AssignedTechEmail: contact.Email,
		Status:            firstNonEmpty(in.Status, models.ResidentialStatusOpen),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	s.notify(ctx, req)

	if err := s.requestRepo.Save(ctx, req); err != nil {
		return nil, err
	}

	s.log.Info("residential request created",
		zap.String("request_id", req.ID),
		zap.String("request_number", req.RequestNumber),
		zap.Bool("tech_notified", req.EmailNotification.Sent),
	)
	return req, nil
}

func (s *residentialRequestService) GetRequestByID(ctx context.Context, id string) (*models.ResidentialRequest, error) {
	return s.requestRepo.GetByID(ctx, id)
}

func (s *residentialRequestService) GetAllRequests(ctx context.Context) ([]models.ResidentialRequest, error) {
	return s.requestRepo.GetAll(ctx)
}

// UpdateRequest applies the patch. A new technician id or name is re-resolved and
// notified; the request number never changes.
func (s *residentialRequestService) UpdateRequest(ctx context.Context, id string, patch models.ResidentialRequestPatch) (*models.ResidentialRequest, error) {
	req, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Customer != nil {
		req.Customer = *patch.Customer
	}
	setString(&req.Description, patch.Description)
	setString(&req.Status, patch.Status)

	patchID := lo.FromPtr(patch.AssignedTechID)
	patchName := lo.FromPtr(patch.AssignedTech)
	techChanged := patchID != "" || patchName != ""
	if techChanged {
		contact, err := ResolveTech(ctx, s.techRepo, patchID, patchName)
		if err != nil {
			return nil, err
		}
		req.AssignedTech = firstNonEmpty(contact.Name, patchName, req.AssignedTech)
		req.AssignedTechID = firstNonEmpty(contact.ID, patchID)
		req.AssignedTechEmail = contact.Email
		if contact.ID == "" && patchID == "" {
			s.log.Warn("assigned technician not found",
				zap.String("request_id", req.ID),
				zap.String("assigned_tech", patchName),
			)
		}
	}

	req.ID = id
	req.UpdatedAt = s.clock.now()
	if techChanged {
		s.notify(ctx, req)
	}

	if err := s.requestRepo.Save(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *residentialRequestService) DeleteRequest(ctx context.Context, id string) error {
	return s.requestRepo.Delete(ctx, id)
}

func (s *residentialRequestService) notify(ctx context.Context, req *models.ResidentialRequest) {
	subject := strings.TrimSpace("New Residential Request " + req.RequestNumber)
	lines := []string{
		"You have been assigned a new residential request.",
		"Request #: " + orNA(req.RequestNumber),
		"Customer: " + orNA(req.Customer.Name),
		"Phone: " + orNA(req.Customer.Phone),
		"Address: " + orNA(req.Customer.Address),
		"Description: " + orNA(req.Description),
		"Status: " + firstNonEmpty(req.Status, models.ResidentialStatusOpen),
	}
	result := s.notifier.Notify(ctx, req.AssignedTechEmail, subject, lines)
	req.EmailNotification = &result
}

type ServiceRequestService interface {
	CreateRequest(ctx context.Context, in models.ServiceRequestInput) (*models.ServiceRequest, error)
	GetRequestByID(ctx context.Context, id string) (*models.ServiceRequest, error)
	GetAllRequests(ctx context.Context, search string) ([]models.ServiceRequest, error)
	UpdateRequest(ctx context.Context, id string, patch models.ServiceRequestPatch) (*models.ServiceRequest, error)
	DeleteRequest(ctx context.Context, id string) error
}

type serviceRequestService struct {
	requestRepo repository.ServiceRequestRepository
	techRepo    repository.TechnicianRepository
	notifier    *Notifier
	log         *zap.Logger
	clock       Clock
}

// NewServiceRequestService resolves assigned technicians against techRepo, which is
// backed by the technicians collection.
func NewServiceRequestService(
	requestRepo repository.ServiceRequestRepository,
	techRepo repository.TechnicianRepository,
	notifier *Notifier,
	log *zap.Logger,
	clock Clock,
) ServiceRequestService {
	return &serviceRequestService{requestRepo: requestRepo, techRepo: techRepo, notifier: notifier, log: log, clock: clock}
}

func (s *serviceRequestService) CreateRequest(ctx context.Context, in models.ServiceRequestInput) (*models.ServiceRequest, error) {
	customer := trimCustomer(in.Customer)
	description := strings.TrimSpace(in.Description)
	switch {
	case customer.Name == "":
		return nil, ierr.Validation("Customer name is required")
	case description == "":
		return nil, ierr.Validation("Description is required")
	case in.AssignedTechID == "" || in.AssignedTechName == "":
		return nil, ierr.Validation("Assigned technician is required")
	}

	contact, err := ResolveTech(ctx, s.techRepo, in.AssignedTechID, in.AssignedTechName)
	if err != nil {
		return nil, err
	}

	now := s.clock.now()
	req := &models.ServiceRequest{
		ID:                s.requestRepo.NewID(),
		RequestNumber:     models.ServiceRequestNumberFor(now),
		Customer:          customer,
		Description:       description,
		AssignedTechID:    in.AssignedTechID,
		AssignedTechName:  in.AssignedTechName,
		AssignedTechEmail: contact.Email,
		Status:            firstNonEmpty(in.Status, models.ServiceStatusRequested),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	s.notify(ctx, req)

	if err := s.requestRepo.Save(ctx, req); err != nil {
		return nil, err
	}

	s.log.Info("service request created",
		zap.String("request_id", req.ID),
		zap.String("request_number", req.RequestNumber),
		zap.Bool("tech_notified", req.EmailNotification.Sent),
	)
	return req, nil
}

func (s *serviceRequestService) GetRequestByID(ctx context.Context, id string) (*models.ServiceRequest, error) {
	return s.requestRepo.GetByID(ctx, id)
}

// GetAllRequests lists requests newest first, optionally keeping those whose number,
// technician, description or customer contact contains search.
func (s *serviceRequestService) GetAllRequests(ctx context.Context, search string) ([]models.ServiceRequest, error) {
	requests, err := s.requestRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	search = strings.TrimSpace(search)
	if search == "" {
		return requests, nil
	}
	return lo.Filter(requests, func(r models.ServiceRequest, _ int) bool {
		haystack := strings.Join([]string{
			r.RequestNumber,
			r.AssignedTechName,
			r.Description,
			r.Customer.Name,
			r.Customer.Phone,
			r.Customer.Address,
		}, " ")
		return containsFold(haystack, search)
	}), nil
}

func (s *serviceRequestService) UpdateRequest(ctx context.Context, id string, patch models.ServiceRequestPatch) (*models.ServiceRequest, error) {
	req, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if c := patch.Customer; c != nil {
		setString(&req.Customer.Name, c.Name)
		setString(&req.Customer.Address, c.Address)
		setString(&req.Customer.Email, c.Email)
		setString(&req.Customer.Phone, c.Phone)
		setString(&req.Customer.CreditTerms, c.CreditTerms)
	}
	setString(&req.Description, patch.Description)
	setString(&req.Status, patch.Status)

	patchID := lo.FromPtr(patch.AssignedTechID)
	patchName := lo.FromPtr(patch.AssignedTechName)
	techChanged := (patchID != "" && patchID != req.AssignedTechID) ||
		(patchName != "" && patchName != req.AssignedTechName)
	if techChanged {
		contact, err := ResolveTech(ctx, s.techRepo, patchID, patchName)
		if err != nil {
			return nil, err
		}
		req.AssignedTechID = firstNonEmpty(contact.ID, patchID)
		req.AssignedTechName = firstNonEmpty(patchName, contact.Name, req.AssignedTechName)
		req.AssignedTechEmail = contact.Email
	}

	req.ID = id
	req.UpdatedAt = s.clock.now()
	if techChanged {
		s.notify(ctx, req)
	}

	if err := s.requestRepo.Save(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *serviceRequestService) DeleteRequest(ctx context.Context, id string) error {
	return s.requestRepo.Delete(ctx, id)
}

func (s *serviceRequestService) notify(ctx context.Context, req *models.ServiceRequest) {
	subject := strings.TrimSpace("New Service Request " + req.RequestNumber)
	lines := []string{
		"You have been assigned a new service request.",
		"Request #: " + orNA(req.RequestNumber),
		"Customer: " + orNA(req.Customer.Name),
		"Phone: " + orNA(req.Customer.Phone),
		"Address: " + orNA(req.Customer.Address),
		"Description: " + orNA(req.Description),
		"Status: " + firstNonEmpty(req.Status, models.ServiceStatusRequested),
	}
	result := s.notifier.Notify(ctx, req.AssignedTechEmail, subject, lines)
	req.EmailNotification = &result
}

func trimCustomer(c models.CustomerInfo) models.CustomerInfo {
	c.Name = strings.TrimSpace(c.Name)
	c.Address = strings.TrimSpace(c.Address)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	c.CreditTerms = strings.TrimSpace(c.CreditTerms)
	return c
}
