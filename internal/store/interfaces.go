package store

import (
	"context"
	"io"

	"github.com/apexglitch/crm/models"
)

// UserRepository owns persistence of user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	AdminExists(ctx context.Context) (bool, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	UpdateEmail(ctx context.Context, id int64, email string) error
}

// CustomerRepository owns persistence and referential integrity of customer
// records. Create and Update are driven by the validated client-supplied
// field set; the statement column list is exactly that set.
type CustomerRepository interface {
	Create(ctx context.Context, fields models.CustomerFields) (models.Customer, error)
	Update(ctx context.Context, id int64, fields models.CustomerFields) (models.Customer, error)
	Get(ctx context.Context, id int64) (models.Customer, error)
	List(ctx context.Context) ([]models.Customer, error)
	Delete(ctx context.Context, id int64) error
}

// DocumentRepository owns persistence of document metadata rows.
type DocumentRepository interface {
	Create(ctx context.Context, document models.Document) (models.Document, error)
	Get(ctx context.Context, id int64) (models.Document, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]models.Document, error)
	ListPathsByCustomer(ctx context.Context, customerID int64) ([]string, error)
	Delete(ctx context.Context, id int64) error
}

// FileStore owns the binary content of uploaded documents inside the
// dedicated upload directory.
type FileStore interface {
	Save(ctx context.Context, filename string, content io.Reader) (path string, size int64, err error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Remove(ctx context.Context, path string) error
}
