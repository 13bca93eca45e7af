package errs

import "errors"

// Sentinel errors for the usecase layers
var (
	// Menu errors
	ErrMenuNotFound       = errors.New("menu not found")
	ErrActiveMenuConflict = errors.New("another menu is already active for this cafe")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrEventPublishFailed      = errors.New("event publish failed")
)
