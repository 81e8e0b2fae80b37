package courier

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T, tokenCalls *int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/issue-token":
			*tokenCalls++
			json.NewEncoder(w).Encode(map[string]interface{}{
				"access_token": "tok-123",
				"expires_in":   3600,
			})
		case "/consignments":
			if r.Header.Get("Authorization") != "Bearer tok-123" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			var payload map[string]interface{}
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			assert.Equal(t, "20260829-abc", payload["merchant_order_id"])
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"consignment_id": "DA123456",
				"tracking_code":  "TRK-9",
				"order_status":   "pending",
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestCreateConsignment(t *testing.T) {
	var tokenCalls int
	srv := testServer(t, &tokenCalls)
	defer srv.Close()

	client := NewClient(Config{
		BaseURL:      srv.URL,
		ClientID:     "id",
		ClientSecret: "secret",
		StoreID:      "store-1",
	})

	req := ConsignmentRequest{
		OrderRef:       "20260829-abc",
		RecipientName:  "Rahim Uddin",
		RecipientPhone: "01711000000",
		Address:        "Dhanmondi, Dhaka",
		WeightKG:       0.4,
		Quantity:       2,
	}

	con, err := client.CreateConsignment(req)
	require.NoError(t, err)
	assert.Equal(t, "DA123456", con.ConsignmentID)
	assert.Equal(t, "TRK-9", con.TrackingCode)

	// second consignment reuses the cached token
	_, err = client.CreateConsignment(req)
	require.NoError(t, err)
	assert.Equal(t, 1, tokenCalls)
}

func TestIssueTokenError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, ClientID: "id", ClientSecret: "bad"})
	_, err := client.IssueToken()
	assert.Error(t, err)
}
