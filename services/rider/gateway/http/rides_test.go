package gateway_http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/delivermi/rider-app/internal/pkg/models"
	"github.com/delivermi/rider-app/services/rider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

func newTestGateway(t *testing.T, handler http.HandlerFunc) *RideServiceGateway {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewRideServiceGateway(models.RideServiceConfig{
		URL:     server.URL,
		Timeout: 5,
	}, "test-token")
}

func TestGetRide_Success(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var req graphqlRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req.Query, "query Ride")
		assert.Equal(t, "ride-1", req.Variables["id"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"ride":{"id":"ride-1","status":"ACCEPTED","fare":25000}}}`))
	})

	ride, err := gw.GetRide(context.Background(), "ride-1")

	require.NoError(t, err)
	require.NotNil(t, ride)
	assert.Equal(t, "ride-1", ride.ID)
	assert.Equal(t, models.RideStatusAccepted, ride.Status)
	assert.Equal(t, float64(25000), ride.Fare)
}

func TestGetRide_NotFoundReturnsNoData(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"errors":[{"message":"ride not found","extensions":{"code":"NOT_FOUND"}}]}`))
	})

	ride, err := gw.GetRide(context.Background(), "ride-gone")

	require.NoError(t, err)
	assert.Nil(t, ride)
}

func TestGetRide_PermissionDenied(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"errors":[{"message":"not your ride","extensions":{"code":"FORBIDDEN"}}]}`))
	})

	ride, err := gw.GetRide(context.Background(), "ride-1")

	assert.Nil(t, ride)
	assert.ErrorIs(t, err, rider.ErrPermissionDenied)
}

func TestGetRide_ServerErrorWrapped(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	ride, err := gw.GetRide(context.Background(), "ride-1")

	assert.Nil(t, ride)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to query ride")
}

func TestListMyRides(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		var req graphqlRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req.Query, "myRides")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"myRides":[{"id":"ride-1","status":"COMPLETED"},{"id":"ride-2","status":"REQUESTED"}]}}`))
	})

	rides, err := gw.ListMyRides(context.Background())

	require.NoError(t, err)
	require.Len(t, rides, 2)
	assert.Equal(t, "ride-1", rides[0].ID)
	assert.Equal(t, models.RideStatusRequested, rides[1].Status)
}

func TestRequestRide(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		var req graphqlRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req.Query, "mutation RequestRide")

		input, ok := req.Variables["input"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "Jl. Sudirman 1", input["pickup_address"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"requestRide":{"id":"ride-new","status":"REQUESTED"}}}`))
	})

	ride, err := gw.RequestRide(context.Background(), &models.RideRequest{
		PickupAddress:  "Jl. Sudirman 1",
		DropoffAddress: "Jl. Thamrin 10",
		Fare:           30000,
	})

	require.NoError(t, err)
	require.NotNil(t, ride)
	assert.Equal(t, "ride-new", ride.ID)
	assert.Equal(t, models.RideStatusRequested, ride.Status)
}

func TestRequestRide_EmptyResponse(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"requestRide":null}}`))
	})

	ride, err := gw.RequestRide(context.Background(), &models.RideRequest{})

	assert.Nil(t, ride)
	assert.Error(t, err)
}

func TestCancelRide(t *testing.T) {
	var captured graphqlRequest
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"cancelRide":{"id":"ride-1"}}}`))
	})

	err := gw.CancelRide(context.Background(), "ride-1", "changed my mind")

	require.NoError(t, err)
	assert.True(t, strings.Contains(captured.Query, "mutation CancelRide"))
	assert.Equal(t, "ride-1", captured.Variables["id"])
	assert.Equal(t, "changed my mind", captured.Variables["reason"])
}

func TestAcceptOffer(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		var req graphqlRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "driver-1", req.Variables["riderId"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"acceptOffer":{"id":"ride-1","status":"ACCEPTED","rider":{"id":"driver-1","full_name":"Budi"}}}}`))
	})

	ride, err := gw.AcceptOffer(context.Background(), "ride-1", "driver-1")

	require.NoError(t, err)
	require.NotNil(t, ride)
	require.NotNil(t, ride.Rider)
	assert.Equal(t, "Budi", ride.Rider.FullName)
}

func TestAdjustFare(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		var req graphqlRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, float64(35000), req.Variables["amount"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"adjustFare":{"id":"ride-1","status":"REQUESTED","fare":35000}}}`))
	})

	ride, err := gw.AdjustFare(context.Background(), "ride-1", 35000)

	require.NoError(t, err)
	require.NotNil(t, ride)
	assert.Equal(t, float64(35000), ride.Fare)
}

func TestRateRide(t *testing.T) {
	var captured graphqlRequest
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"rateRide":{"id":"ride-1"}}}`))
	})

	err := gw.RateRide(context.Background(), "ride-1", 5, "great driver")

	require.NoError(t, err)
	assert.Equal(t, float64(5), captured.Variables["rating"])
	assert.Equal(t, "great driver", captured.Variables["comment"])
}
