// Package validation checks caller-supplied input and reports failures as
// *errors.AppError values suitable for returning to the caller's own caller.
//
// Codes follow the failure kind: INVALID_INPUT for arguments, NULL_VALUE for
// nil values, INDEX_OUT_OF_RANGE for indexes and ILLEGAL_STATE for state.
//
//	func (s *Service) Rename(ctx context.Context, id, name string) error {
//	    if _, err := validation.UUID(id); err != nil {
//	        return err
//	    }
//	    if _, err := validation.NotBlank(name, validation.Msg("name is required")); err != nil {
//	        return err
//	    }
//	    ...
//	}
//
// The underlying AppError is reachable with errors.AsAppError.
package validation
