package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NotFound("lot", 42), http.StatusNotFound},
		{"validation", Invalid("quantity", "must be positive"), http.StatusBadRequest},
		{"conflict", Conflict("farm", "code", "FA-001"), http.StatusConflict},
		{"render", Render("barcode", errors.New("empty content")), http.StatusInternalServerError},
		{"wrapped not found", fmt.Errorf("fetch: %w", NotFound("farm", 7)), http.StatusNotFound},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}

func TestMessages(t *testing.T) {
	assert.Equal(t, "lot 42 not found", NotFound("lot", 42).Error())
	assert.Equal(t, "quantity: must be positive", Invalid("quantity", "must be positive").Error())
	assert.Equal(t, `farm with code "FA-001" already exists`, Conflict("farm", "code", "FA-001").Error())

	cause := errors.New("bad input")
	re := Render("pdf", cause)
	assert.ErrorIs(t, re, cause)
}
