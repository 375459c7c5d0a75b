package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrNotImplemented", ErrNotImplemented},
		{"ErrUnsupportedType", ErrUnsupportedType},
		{"ErrCorruptState", ErrCorruptState},
		{"ErrPersistenceWrite", ErrPersistenceWrite},
		{"ErrStorageUnavailable", ErrStorageUnavailable},
		{"ErrUnsupportedJourneyRoute", ErrUnsupportedJourneyRoute},
		{"ErrDocumentExport", ErrDocumentExport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrNotFound(t *testing.T) {
	assert.Equal(t, "not found", ErrNotFound.Error())
	assert.True(t, errors.Is(ErrNotFound, ErrNotFound))
	assert.False(t, errors.Is(ErrNotFound, ErrInvalidInput))
}

func TestErrDocumentExport_Wrapped(t *testing.T) {
	err := fmt.Errorf("%w: disk full", ErrDocumentExport)

	assert.True(t, errors.Is(err, ErrDocumentExport))
	assert.False(t, errors.Is(err, ErrPersistenceWrite))
	assert.Contains(t, err.Error(), "document export failed")
}

func TestErrors_Distinct(t *testing.T) {
	all := []error{
		ErrNotFound, ErrInvalidInput, ErrNotImplemented, ErrUnsupportedType,
		ErrCorruptState, ErrPersistenceWrite, ErrStorageUnavailable,
		ErrUnsupportedJourneyRoute, ErrDocumentExport,
	}
	for i := range all {
		for j := range all {
			if i != j {
				assert.False(t, errors.Is(all[i], all[j]), "%v should not match %v", all[i], all[j])
			}
		}
	}
}
