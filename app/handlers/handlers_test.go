package handlers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInternalErrorDetails(t *testing.T) {
	failure := errors.New("pq: connection refused")

	tests := []struct {
		name          string
		err           error
		isDevelopment bool
		expected      any
	}{
		{name: "development exposes the failure", err: failure, isDevelopment: true, expected: "pq: connection refused"},
		{name: "production stays opaque", err: failure, isDevelopment: false, expected: nil},
		{name: "nil error in development", err: nil, isDevelopment: true, expected: nil},
		{name: "nil error in production", err: nil, isDevelopment: false, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, internalErrorDetails(tt.err, tt.isDevelopment))
		})
	}
}
