package utils

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// FilenameGenerator produces unique names for stored upload files. Names are
// built from the upload timestamp and a UUID, keeping only the extension of
// the client-supplied filename, so no client input ever becomes part of a
// filesystem path.
type FilenameGenerator struct {
}

func NewFilenameGenerator() *FilenameGenerator {
	return &FilenameGenerator{}
}

// Generate returns a stored filename of the form
// "<unix-millis>-<uuid><ext>", where ext is taken from originalFilename.
func (g *FilenameGenerator) Generate(originalFilename string) string {
	ext := filepath.Ext(originalFilename)

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)
	}

	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), id.String(), ext)
}
