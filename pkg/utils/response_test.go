package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespondWithJSON(t *testing.T) {
	t.Run("Payload encoded", func(t *testing.T) {
		w := httptest.NewRecorder()
		RespondWithJSON(w, 201, map[string]string{"status": "ok"})

		assert.Equal(t, 201, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("Nil payload leaves body empty", func(t *testing.T) {
		w := httptest.NewRecorder()
		RespondWithJSON(w, 204, nil)

		assert.Equal(t, 204, w.Code)
		assert.Empty(t, w.Body.String())
	})
}

func TestRespondWithError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithError(w, 404, "credit not found")

	assert.Equal(t, 404, w.Code)
	assert.JSONEq(t, `{"message":"credit not found"}`, w.Body.String())
}
