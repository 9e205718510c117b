package services

import (
	"fmt"

	"github.com/dmitrijs2005/photocards/internal/common"
)

// invalid reports a request the caller must fix before retrying.
func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", common.ErrorValidation, fmt.Sprintf(format, args...))
}

func notFound(what string, id int64) error {
	return fmt.Errorf("%s %d %w", what, id, common.ErrorNotFound)
}
