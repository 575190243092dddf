package models

import (
	"io"
	"time"
)

// Document is the metadata record of a single uploaded file. The binary
// content itself lives on the filesystem under FilePath; the database row
// only references it.
//
// Every document belongs to exactly one customer. Deleting the customer
// removes the row through the foreign-key cascade; the stored file is removed
// by the service layer.
type Document struct {
	// ID is the internal unique identifier of the document row.
	ID int64 `json:"id"`

	// CustomerID is the owning customer's identifier.
	CustomerID int64 `json:"customer_id"`

	// Filename is the server-generated, collision-resistant name the file is
	// stored under. It is never derived solely from the client-supplied name.
	Filename string `json:"filename"`

	// OriginalFilename is the name the client supplied at upload time. Used
	// for the Content-Disposition header on download.
	OriginalFilename string `json:"original_filename"`

	// FilePath is the location of the stored file inside the upload
	// directory.
	FilePath string `json:"file_path"`

	// FileSize is the byte size of the stored content.
	FileSize int64 `json:"file_size"`

	// FileType is the media type the client declared for the content.
	FileType string `json:"file_type"`

	// Category is a free-text checklist label (for example
	// "Business Tax Return - 2024"). Not enforced as an enumeration.
	Category string `json:"category"`

	// Description is free text supplied by the client.
	Description string `json:"description"`

	// UploadedAt is the timestamp the metadata row was created.
	UploadedAt time.Time `json:"uploaded_at"`
}

// TableName returns the name of the database table
// associated with the Document model.
func (d Document) TableName() string {
	return "documents"
}

// DocumentUpload is the validated input of a document upload: the client's
// file metadata plus a reader over the content. The reader is consumed once
// by the file store.
type DocumentUpload struct {
	CustomerID       int64
	OriginalFilename string
	Size             int64
	ContentType      string
	Category         string
	Description      string
	Content          io.Reader
}
