package services

import (
	"io"
	"os"

	"github.com/Hazot/trec-clinical-trials-2023/internal/core/domain"
)

// readDocument loads one corpus file. On error the returned kind says
// whether opening or reading failed.
func readDocument(path string) (*domain.RawDocument, domain.FailureKind, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, domain.FailureOpen, err
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, domain.FailureRead, err
	}

	return &domain.RawDocument{URI: path, Content: content}, "", nil
}
