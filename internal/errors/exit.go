package errors

import "errors"

// Exit codes returned by the moduledev binary.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates a name, version or setting was rejected.
	ExitValidationError = 2

	// ExitPreconditionError indicates the tree is unset, not set up, or not empty.
	ExitPreconditionError = 3

	// ExitCollision indicates files are in the way of a module.
	ExitCollision = 4

	// ExitNotFound indicates a module or version was not found.
	ExitNotFound = 5

	// ExitParseError indicates a descriptor could not be parsed.
	ExitParseError = 6

	// ExitPermissionDenied indicates insufficient filesystem permissions.
	ExitPermissionDenied = 7
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitPreconditionError:
		return "Precondition Failed"
	case ExitCollision:
		return "Collision"
	case ExitNotFound:
		return "Not Found"
	case ExitParseError:
		return "Parse Error"
	case ExitPermissionDenied:
		return "Permission Denied"
	default:
		return "Unknown"
	}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrValidation):
		return ExitValidationError
	case errors.Is(err, ErrPrecondition):
		return ExitPreconditionError
	case errors.Is(err, ErrCollision):
		return ExitCollision
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, ErrParse):
		return ExitParseError
	case errors.Is(err, ErrPermission):
		return ExitPermissionDenied
	default:
		return ExitGeneralError
	}
}
