package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "leadgrid/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mw := NewRequestIDMiddleware(logger)

	tests := []struct {
		name     string
		inbound  string
		wantSame bool
	}{
		{name: "propagates inbound id", inbound: "req-123", wantSame: true},
		{name: "generates when missing", inbound: ""},
		{name: "replaces oversized id", inbound: strings.Repeat("x", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.inbound != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.inbound)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxRequestID string
			var ctxLogger *slog.Logger
			err := mw.Process(func(c echo.Context) error {
				ctxRequestID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				ctxLogger = deliverycontext.GetLogger(c.Request().Context())

				return nil
			})(c)
			require.NoError(t, err)

			headerID := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEmpty(t, headerID)
			assert.Equal(t, headerID, ctxRequestID)
			assert.Equal(t, headerID, deliverycontext.GetRequestID(c))
			assert.NotNil(t, ctxLogger)
			if tt.wantSame {
				assert.Equal(t, tt.inbound, headerID)
			} else {
				assert.NotEqual(t, tt.inbound, headerID)
			}
		})
	}
}
