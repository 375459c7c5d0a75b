package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnsupportedType indicates an unknown item, content, or export type.
	ErrUnsupportedType = errors.New("unsupported type")

	// Persistence Errors.

	// ErrCorruptState indicates the persisted worksheet could not be parsed.
	// Recovered by starting from a fresh worksheet.
	ErrCorruptState = errors.New("persisted state is corrupt")

	// ErrPersistenceWrite indicates a durable write failed after a mutation.
	// The in-memory worksheet remains authoritative.
	ErrPersistenceWrite = errors.New("persistence write failed")

	// ErrStorageUnavailable indicates the storage backend cannot be reached.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// Navigation Errors.

	// ErrUnsupportedJourneyRoute indicates a journey route other than the
	// supported one was requested. Callers redirect to the application root.
	ErrUnsupportedJourneyRoute = errors.New("unsupported journey route")

	// Export Errors.

	// ErrDocumentExport indicates document rendering or saving failed.
	// It is surfaced to the user as a retryable, non-fatal error.
	ErrDocumentExport = errors.New("document export failed")
)
