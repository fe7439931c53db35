package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/apperror"
)

func serve(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", handler)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w
}

func TestEnvelope(t *testing.T) {
	tests := []struct {
		name    string
		handler gin.HandlerFunc
		code    int
		body    string
	}{
		{
			name:    "Data",
			handler: func(c *gin.Context) { Data(c, http.StatusOK, []string{"2026-03-11"}) },
			code:    http.StatusOK,
			body:    `{"data":["2026-03-11"],"errors":[]}`,
		},
		{
			name:    "Empty list is kept",
			handler: func(c *gin.Context) { Data(c, http.StatusOK, []string{}) },
			code:    http.StatusOK,
			body:    `{"data":[],"errors":[]}`,
		},
		{
			name:    "Errors",
			handler: func(c *gin.Context) { Errors(c, http.StatusBadRequest, "a", "b") },
			code:    http.StatusBadRequest,
			body:    `{"errors":["a","b"]}`,
		},
		{
			name:    "AppError keeps its status",
			handler: func(c *gin.Context) { Error(c, apperror.Wrap(errors.New("cause"), http.StatusConflict, "taken")) },
			code:    http.StatusConflict,
			body:    `{"errors":["taken"]}`,
		},
		{
			name:    "Unknown error is hidden",
			handler: func(c *gin.Context) { Error(c, errors.New("pq: connection refused")) },
			code:    http.StatusInternalServerError,
			body:    `{"errors":["internal server error"]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(tt.handler)
			assert.Equal(t, tt.code, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}
