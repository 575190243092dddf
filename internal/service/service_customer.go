package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/apexglitch/crm/internal/logger"
	"github.com/apexglitch/crm/internal/notify"
	"github.com/apexglitch/crm/internal/store"
	"github.com/apexglitch/crm/internal/validators"
	"github.com/apexglitch/crm/models"
)

// customerService is the concrete implementation of CustomerService. It
// validates client payloads against the customer column allow-list,
// persists them through the CustomerRepository, and fires best-effort
// notifications on creation.
//
// Deleting a customer is a cascade: the database removes the customer's
// document metadata rows through the foreign key, and this service then
// removes the stored files, tolerating files that are already gone.
type customerService struct {
	customerRepository store.CustomerRepository
	documentRepository store.DocumentRepository
	fileStore          store.FileStore
	validator          validators.Validator
	notifier           notify.Notifier
	logger             *logger.Logger
}

func NewCustomerService(
	customerRepository store.CustomerRepository,
	documentRepository store.DocumentRepository,
	fileStore store.FileStore,
	notifier notify.Notifier,
	logger *logger.Logger,
) CustomerService {
	return &customerService{
		customerRepository: customerRepository,
		documentRepository: documentRepository,
		fileStore:          fileStore,
		validator:          validators.NewCustomerValidator(),
		notifier:           notifier,
		logger:             logger,
	}
}

// Create validates the payload and persists a new customer record. The
// created notification is fired after the write succeeds; its outcome never
// affects the returned value.
func (s *customerService) Create(ctx context.Context, fields models.CustomerFields) (models.Customer, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, fields); err != nil {
		log.Error().Err(err).Msg("customer payload validation failed")
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	customer, err := s.customerRepository.Create(ctx, fields)
	if err != nil {
		log.Err(err).Msg("customer creation ended with error")
		return nil, fmt.Errorf("customer creation ended with error: %w", err)
	}

	if err := s.notifier.CustomerCreated(ctx, customer); err != nil {
		log.Warn().Err(err).Int64("id", customer.ID()).Msg("customer created notification failed")
	}

	return customer, nil
}

// Update overwrites the stored record with the supplied field set. The
// required attributes must be present in every update; columns the client
// omits keep their stored values.
func (s *customerService) Update(ctx context.Context, id int64, fields models.CustomerFields) (models.Customer, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, fields); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("customer payload validation failed")
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	customer, err := s.customerRepository.Update(ctx, id, fields)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("customer update ended with error")
		return nil, fmt.Errorf("customer update ended with error: %w", err)
	}

	return customer, nil
}

// Get returns a single customer record by id.
func (s *customerService) Get(ctx context.Context, id int64) (models.Customer, error) {
	customer, err := s.customerRepository.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("customer lookup failed: %w", err)
	}

	return customer, nil
}

// List returns all customer records, most recently created first.
func (s *customerService) List(ctx context.Context) ([]models.Customer, error) {
	customers, err := s.customerRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("customer listing failed: %w", err)
	}

	return customers, nil
}

// Delete removes a customer and everything attached to it. The stored file
// paths are collected before the row is deleted because the foreign-key
// cascade erases the metadata rows along with the customer. File removal
// happens after the delete commits; a file that is already absent is
// skipped.
func (s *customerService) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	paths, err := s.documentRepository.ListPathsByCustomer(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("collecting document paths failed")
		return fmt.Errorf("collecting document paths failed: %w", err)
	}

	if err := s.customerRepository.Delete(ctx, id); err != nil {
		if !errors.Is(err, store.ErrCustomerNotFound) {
			log.Err(err).Int64("id", id).Msg("customer deletion ended with error")
		}
		return fmt.Errorf("customer deletion ended with error: %w", err)
	}

	for _, path := range paths {
		if err := s.fileStore.Remove(ctx, path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("removing stored file failed")
		}
	}

	return nil
}
