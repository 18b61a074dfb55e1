package services

import (
	"errors"
	"fmt"

	"github.com/yigit/schooladmin/internal/pkg/apperrors"
	"github.com/yigit/schooladmin/internal/pkg/dberrors"
)

// Services defined in this package:
// - AuthService: Handles login and token issuance
// - StudentService: Handles students and their group assignment
// - StaffService: Handles staff members and the teacher picker
// - InstitutionService: Handles institutions
// - GroupService: Handles class groups
// - CatalogService: Reads the fixed lookup tables
//
// Deletions of every owner entity go through the deletion dispatcher.

// writeError maps a store error raised by an insert or update. A foreign key
// violation here means the request pointed at a record that does not exist.
func writeError(err error, action, what string) error {
	switch {
	case dberrors.IsForeignKeyViolation(err):
		return apperrors.NewBadRequestError(fmt.Sprintf("%s references a record that does not exist", what))
	case dberrors.IsUniqueViolation(err):
		return fmt.Errorf("%w: %s", apperrors.ErrResourceAlreadyExists, what)
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return err
	default:
		return fmt.Errorf("error %s %s: %w", action, what, err)
	}
}

func validateID(id int64, what string) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid %s ID", apperrors.ErrValidationFailed, what)
	}
	return nil
}
