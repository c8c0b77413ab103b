package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/delivermi/rider-app/internal/pkg/models"
	"github.com/delivermi/rider-app/services/rider"
	"github.com/delivermi/rider-app/services/rider/mocks"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRequestRide_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	riderUC := mocks.NewMockRiderUC(ctrl)
	h := NewRideHandler(riderUC)

	riderUC.EXPECT().
		RequestRide(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *models.RideRequest) (*models.Ride, error) {
			assert.Equal(t, "Jl. Sudirman 1", req.PickupAddress)
			return &models.Ride{ID: "ride-1", Status: models.RideStatusRequested}, nil
		})

	body := `{"pickup_address":"Jl. Sudirman 1","dropoff_address":"Jl. Thamrin 10","fare":30000}`
	c, rec := newContext(http.MethodPost, "/rides", body)

	require.NoError(t, h.RequestRide(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool        `json:"success"`
		Data    models.Ride `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "ride-1", resp.Data.ID)
}

func TestRequestRide_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing addresses", `{"fare":30000}`},
		{"non-positive fare", `{"pickup_address":"a","dropoff_address":"b","fare":0}`},
		{"malformed json", `{not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h := NewRideHandler(mocks.NewMockRiderUC(ctrl))
			c, rec := newContext(http.MethodPost, "/rides", tt.body)

			require.NoError(t, h.RequestRide(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestRequestRide_UpstreamFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	riderUC := mocks.NewMockRiderUC(ctrl)
	riderUC.EXPECT().RequestRide(gomock.Any(), gomock.Any()).Return(nil, errors.New("ride service down"))
	h := NewRideHandler(riderUC)

	body := `{"pickup_address":"a","dropoff_address":"b","fare":30000}`
	c, rec := newContext(http.MethodPost, "/rides", body)

	require.NoError(t, h.RequestRide(c))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestCancelRide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	riderUC := mocks.NewMockRiderUC(ctrl)
	riderUC.EXPECT().CancelRide(gomock.Any(), "ride-1", "waited too long").Return(nil)
	h := NewRideHandler(riderUC)

	c, rec := newContext(http.MethodPost, "/rides/ride-1/cancel", `{"reason":"waited too long"}`)
	c.SetParamNames("id")
	c.SetParamValues("ride-1")

	require.NoError(t, h.CancelRide(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAcceptOffer_MissingRiderID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewRideHandler(mocks.NewMockRiderUC(ctrl))

	c, rec := newContext(http.MethodPost, "/rides/ride-1/accept-offer", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("ride-1")

	require.NoError(t, h.AcceptOffer(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAcceptOffer_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	riderUC := mocks.NewMockRiderUC(ctrl)
	riderUC.EXPECT().
		AcceptOffer(gomock.Any(), "ride-1", "driver-1").
		Return(&models.Ride{ID: "ride-1", Status: models.RideStatusAccepted}, nil)
	h := NewRideHandler(riderUC)

	c, rec := newContext(http.MethodPost, "/rides/ride-1/accept-offer", `{"rider_id":"driver-1"}`)
	c.SetParamNames("id")
	c.SetParamValues("ride-1")

	require.NoError(t, h.AcceptOffer(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdjustFare_InvalidAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewRideHandler(mocks.NewMockRiderUC(ctrl))

	c, rec := newContext(http.MethodPost, "/rides/ride-1/fare", `{"amount":-5}`)
	c.SetParamNames("id")
	c.SetParamValues("ride-1")

	require.NoError(t, h.AdjustFare(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRateRide_RatingBounds(t *testing.T) {
	for _, body := range []string{`{"rating":0}`, `{"rating":6}`} {
		ctrl := gomock.NewController(t)

		h := NewRideHandler(mocks.NewMockRiderUC(ctrl))
		c, rec := newContext(http.MethodPost, "/rides/ride-1/rating", body)
		c.SetParamNames("id")
		c.SetParamValues("ride-1")

		require.NoError(t, h.RateRide(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		ctrl.Finish()
	}
}

func TestRateRide_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	riderUC := mocks.NewMockRiderUC(ctrl)
	riderUC.EXPECT().RateRide(gomock.Any(), "ride-1", 5, "great").Return(nil)
	h := NewRideHandler(riderUC)

	c, rec := newContext(http.MethodPost, "/rides/ride-1/rating", `{"rating":5,"comment":"great"}`)
	c.SetParamNames("id")
	c.SetParamValues("ride-1")

	require.NoError(t, h.RateRide(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	riderUC := mocks.NewMockRiderUC(ctrl)
	riderUC.EXPECT().Snapshot().Return(models.RideSnapshot{
		Ride:      &models.Ride{ID: "ride-1", Status: models.RideStatusAccepted},
		Validated: true,
		Unread:    2,
	})
	h := NewRideHandler(riderUC)

	c, rec := newContext(http.MethodGet, "/state", "")

	require.NoError(t, h.GetState(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool                `json:"success"`
		Data    models.RideSnapshot `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Data.Ride)
	assert.Equal(t, 2, resp.Data.Unread)
	assert.True(t, resp.Data.Validated)
}

func TestClearStuckRide_NoActiveRide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	riderUC := mocks.NewMockRiderUC(ctrl)
	riderUC.EXPECT().ClearStuckRide(gomock.Any()).Return(rider.ErrNoActiveRide)
	h := NewRideHandler(riderUC)

	c, rec := newContext(http.MethodPost, "/state/clear", "")

	require.NoError(t, h.ClearStuckRide(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestClearStuckRide_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	riderUC := mocks.NewMockRiderUC(ctrl)
	riderUC.EXPECT().ClearStuckRide(gomock.Any()).Return(nil)
	h := NewRideHandler(riderUC)

	c, rec := newContext(http.MethodPost, "/state/clear", "")

	require.NoError(t, h.ClearStuckRide(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestChatVisibility(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	riderUC := mocks.NewMockRiderUC(ctrl)
	riderUC.EXPECT().OpenChat(gomock.Any()).Return(nil)
	riderUC.EXPECT().CloseChat()
	h := NewRideHandler(riderUC)

	c, rec := newContext(http.MethodPost, "/chat/open", "")
	require.NoError(t, h.OpenChat(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext(http.MethodPost, "/chat/close", "")
	require.NoError(t, h.CloseChat(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
