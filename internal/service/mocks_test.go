package service

import (
	"context"
	"io"

	"github.com/apexglitch/crm/models"
)

// Hand-written mocks for the store and notify interfaces. Each method
// delegates to an optional function field; unset fields return zero values.

type mockUserRepository struct {
	createUserFn     func(ctx context.Context, user models.User) (models.User, error)
	findByEmailFn    func(ctx context.Context, email string) (models.User, error)
	findByIDFn       func(ctx context.Context, id int64) (models.User, error)
	adminExistsFn    func(ctx context.Context) (bool, error)
	updatePasswordFn func(ctx context.Context, id int64, passwordHash string) error
	updateEmailFn    func(ctx context.Context, id int64, email string) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) AdminExists(ctx context.Context) (bool, error) {
	if m.adminExistsFn != nil {
		return m.adminExistsFn(ctx)
	}
	return false, nil
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	if m.updatePasswordFn != nil {
		return m.updatePasswordFn(ctx, id, passwordHash)
	}
	return nil
}

func (m *mockUserRepository) UpdateEmail(ctx context.Context, id int64, email string) error {
	if m.updateEmailFn != nil {
		return m.updateEmailFn(ctx, id, email)
	}
	return nil
}

type mockCustomerRepository struct {
	createFn func(ctx context.Context, fields models.CustomerFields) (models.Customer, error)
	updateFn func(ctx context.Context, id int64, fields models.CustomerFields) (models.Customer, error)
	getFn    func(ctx context.Context, id int64) (models.Customer, error)
	listFn   func(ctx context.Context) ([]models.Customer, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockCustomerRepository) Create(ctx context.Context, fields models.CustomerFields) (models.Customer, error) {
	if m.createFn != nil {
		return m.createFn(ctx, fields)
	}
	return models.Customer(fields), nil
}

func (m *mockCustomerRepository) Update(ctx context.Context, id int64, fields models.CustomerFields) (models.Customer, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, fields)
	}
	return models.Customer(fields), nil
}

func (m *mockCustomerRepository) Get(ctx context.Context, id int64) (models.Customer, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Customer{"id": id}, nil
}

func (m *mockCustomerRepository) List(ctx context.Context) ([]models.Customer, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockCustomerRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockDocumentRepository struct {
	createFn    func(ctx context.Context, document models.Document) (models.Document, error)
	getFn       func(ctx context.Context, id int64) (models.Document, error)
	listFn      func(ctx context.Context, customerID int64) ([]models.Document, error)
	listPathsFn func(ctx context.Context, customerID int64) ([]string, error)
	deleteFn    func(ctx context.Context, id int64) error
}

func (m *mockDocumentRepository) Create(ctx context.Context, document models.Document) (models.Document, error) {
	if m.createFn != nil {
		return m.createFn(ctx, document)
	}
	return document, nil
}

func (m *mockDocumentRepository) Get(ctx context.Context, id int64) (models.Document, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Document{ID: id}, nil
}

func (m *mockDocumentRepository) ListByCustomer(ctx context.Context, customerID int64) ([]models.Document, error) {
	if m.listFn != nil {
		return m.listFn(ctx, customerID)
	}
	return nil, nil
}

func (m *mockDocumentRepository) ListPathsByCustomer(ctx context.Context, customerID int64) ([]string, error) {
	if m.listPathsFn != nil {
		return m.listPathsFn(ctx, customerID)
	}
	return nil, nil
}

func (m *mockDocumentRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockFileStore struct {
	saveFn   func(ctx context.Context, filename string, content io.Reader) (string, int64, error)
	openFn   func(ctx context.Context, path string) (io.ReadCloser, error)
	removeFn func(ctx context.Context, path string) error

	removed []string
}

func (m *mockFileStore) Save(ctx context.Context, filename string, content io.Reader) (string, int64, error) {
	if m.saveFn != nil {
		return m.saveFn(ctx, filename, content)
	}
	return "uploads/" + filename, 0, nil
}

func (m *mockFileStore) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if m.openFn != nil {
		return m.openFn(ctx, path)
	}
	return io.NopCloser(nil), nil
}

func (m *mockFileStore) Remove(ctx context.Context, path string) error {
	m.removed = append(m.removed, path)
	if m.removeFn != nil {
		return m.removeFn(ctx, path)
	}
	return nil
}

type mockNotifier struct {
	customerCreatedFn  func(ctx context.Context, customer models.Customer) error
	documentUploadedFn func(ctx context.Context, customer models.Customer, document models.Document) error

	customerCreatedCalls  int
	documentUploadedCalls int
}

func (m *mockNotifier) CustomerCreated(ctx context.Context, customer models.Customer) error {
	m.customerCreatedCalls++
	if m.customerCreatedFn != nil {
		return m.customerCreatedFn(ctx, customer)
	}
	return nil
}

func (m *mockNotifier) DocumentUploaded(ctx context.Context, customer models.Customer, document models.Document) error {
	m.documentUploadedCalls++
	if m.documentUploadedFn != nil {
		return m.documentUploadedFn(ctx, customer, document)
	}
	return nil
}
