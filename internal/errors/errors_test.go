package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "missing fields maps to 400",
			err:             ErrMissingFields,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Nome e email são obrigatórios",
		},
		{
			name:            "not found maps to 404",
			err:             ErrUserNotFound,
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "Usuário não encontrado",
		},
		{
			name:            "email taken maps to 409",
			err:             ErrEmailTaken,
			expectedStatus:  http.StatusConflict,
			expectedMessage: "Email já cadastrado",
		},
		{
			name:            "wrapped domain error still classified",
			err:             fmt.Errorf("update user: %w", ErrEmailTaken),
			expectedStatus:  http.StatusConflict,
			expectedMessage: "Email já cadastrado",
		},
		{
			name:            "unknown error maps to 500 with generic message",
			err:             errors.New("dial tcp 10.0.0.5:3306: connection refused"),
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Erro interno do servidor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err, "Erro interno do servidor")

			assert.Equal(t, tt.expectedStatus, httpErr.StatusCode)
			assert.Equal(t, tt.expectedMessage, httpErr.Message)
			assert.Equal(t, ErrorResponse{Error: tt.expectedMessage}, httpErr.ToErrorResponse())
		})
	}
}

func TestMapErrorToHTTP_NeverLeaksInternalDetail(t *testing.T) {
	cause := errors.New("Error 1045: Access denied for user 'root'@'localhost'")
	httpErr := MapErrorToHTTP(cause, "Erro ao criar usuário")

	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
	assert.Equal(t, "Erro ao criar usuário", httpErr.ToErrorResponse().Error)
	// The cause stays reachable for server-side logging.
	assert.ErrorIs(t, httpErr, cause)
}
