package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tair/catalog-service/internal/catalog/domain"
)

// translate maps driver level errors onto domain error kinds
func translate(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	what := fmt.Sprintf(format, args...)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %s", domain.ErrNotFound, what)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %s already exists", domain.ErrConflict, what)
	default:
		return fmt.Errorf("%s: %w", what, err)
	}
}
