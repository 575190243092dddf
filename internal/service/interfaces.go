package service

import (
	"context"
	"io"

	"github.com/apexglitch/crm/models"
)

type AuthService interface {
	BootstrapRegister(ctx context.Context, email, password, secretCode string) (models.User, error)
	RegisterUser(ctx context.Context, email, password string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	CreateAdmin(ctx context.Context, principal models.Principal, email, password, secretCode string) (models.User, error)
	ChangePassword(ctx context.Context, principal models.Principal, currentPassword, newPassword string) error
	ChangeEmail(ctx context.Context, principal models.Principal, newEmail string) error
	AdminExists(ctx context.Context) (bool, error)
}

type CustomerService interface {
	Create(ctx context.Context, fields models.CustomerFields) (models.Customer, error)
	Update(ctx context.Context, id int64, fields models.CustomerFields) (models.Customer, error)
	Get(ctx context.Context, id int64) (models.Customer, error)
	List(ctx context.Context) ([]models.Customer, error)
	Delete(ctx context.Context, id int64) error
}

type DocumentService interface {
	Upload(ctx context.Context, upload models.DocumentUpload) (models.Document, error)
	Get(ctx context.Context, id int64) (models.Document, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]models.Document, error)
	Delete(ctx context.Context, id int64) error

	// Download returns the document metadata and an open reader over its
	// stored content. The caller owns closing the reader.
	Download(ctx context.Context, id int64) (models.Document, io.ReadCloser, error)
}
