package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func TestHandleServiceErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err     error
		code    int
		message string
	}{
		{NewValidationError("email", "required", "is required"), http.StatusBadRequest, "Validation failed"},
		{fmt.Errorf("lookup: %w", ErrItineraryNotFound), http.StatusNotFound, "Itinerary not found"},
		{ErrPaymentNotConfigured, http.StatusInternalServerError, "Payment provider is not configured"},
		{&ProviderError{Kind: ErrPaymentProvider, PublicMessage: "Your card was declined.", Err: errors.New("card_declined")}, http.StatusInternalServerError, "Your card was declined."},
		{&ProviderError{Kind: ErrPaymentProvider, Err: errors.New("api down")}, http.StatusInternalServerError, "Upstream provider error"},
		{errors.New("pq: connection refused"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("trace_id", "trace-1")

		HandleServiceError(c, zap.NewNop(), tc.err)

		if w.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, w.Code)
		}
		var body APIResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Message != tc.message || body.TraceID != "trace-1" {
			t.Fatalf("%v: unexpected body %+v", tc.err, body)
		}
		if strings.Contains(w.Body.String(), "pq:") {
			t.Fatal("internal error detail leaked to client")
		}
	}
}
