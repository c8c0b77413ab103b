package gateway_http

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/delivermi/rider-app/internal/pkg/graphql"
	"github.com/delivermi/rider-app/internal/pkg/models"
	"github.com/delivermi/rider-app/services/rider"
)

// GraphQL error extension codes used by the ride service
const (
	codeNotFound         = "NOT_FOUND"
	codePermissionDenied = "FORBIDDEN"
)

const rideFields = `
	id
	status
	pickup { latitude longitude }
	dropoff { latitude longitude }
	pickup_address
	dropoff_address
	fare
	distance_km
	duration_min
	rider { id full_name phone plate rating }
	offers { rider_id rider_name amount created_at }
	created_at
	updated_at
`

var (
	queryRide        = fmt.Sprintf(`query Ride($id: ID!) { ride(id: $id) { %s } }`, rideFields)
	queryMyRides     = fmt.Sprintf(`query MyRides { myRides { %s } }`, rideFields)
	mutationRequest  = fmt.Sprintf(`mutation RequestRide($input: RideRequestInput!) { requestRide(input: $input) { %s } }`, rideFields)
	mutationCancel   = `mutation CancelRide($id: ID!, $reason: String!) { cancelRide(id: $id, reason: $reason) { id } }`
	mutationAccept   = fmt.Sprintf(`mutation AcceptOffer($id: ID!, $riderId: ID!) { acceptOffer(rideId: $id, riderId: $riderId) { %s } }`, rideFields)
	mutationAdjust   = fmt.Sprintf(`mutation AdjustFare($id: ID!, $amount: Float!) { adjustFare(rideId: $id, amount: $amount) { %s } }`, rideFields)
	mutationRateRide = `mutation RateRide($id: ID!, $rating: Int!, $comment: String) { rateRide(rideId: $id, rating: $rating, comment: $comment) { id } }`
)

// RideServiceGateway implements rider.RideServiceGW against the remote
// GraphQL ride service
type RideServiceGateway struct {
	client *graphql.Client
}

// NewRideServiceGateway creates a new ride service gateway
func NewRideServiceGateway(cfg models.RideServiceConfig, authToken string) *RideServiceGateway {
	return &RideServiceGateway{
		client: graphql.NewClient(cfg.URL, time.Duration(cfg.Timeout)*time.Second, authToken),
	}
}

// GetRide fetches one ride by ID. Returns (nil, nil) when the ride does not
// exist so the caller can count missing polls, and ErrPermissionDenied when
// the ride belongs to another identity.
func (g *RideServiceGateway) GetRide(ctx context.Context, rideID string) (*models.Ride, error) {
	var out struct {
		Ride *models.Ride `json:"ride"`
	}

	err := g.client.Do(ctx, queryRide, map[string]interface{}{"id": rideID}, &out)
	if err != nil {
		var gqlErrs graphql.ErrorList
		if errors.As(err, &gqlErrs) {
			if gqlErrs.HasCode(codeNotFound) {
				return nil, nil
			}
			if gqlErrs.HasCode(codePermissionDenied) {
				return nil, rider.ErrPermissionDenied
			}
		}
		return nil, fmt.Errorf("failed to query ride: %w", err)
	}

	return out.Ride, nil
}

// ListMyRides fetches the ride summaries owned by the current session
func (g *RideServiceGateway) ListMyRides(ctx context.Context) ([]*models.Ride, error) {
	var out struct {
		MyRides []*models.Ride `json:"myRides"`
	}

	if err := g.client.Do(ctx, queryMyRides, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to query my rides: %w", err)
	}

	return out.MyRides, nil
}

// RequestRide creates a new ride
func (g *RideServiceGateway) RequestRide(ctx context.Context, req *models.RideRequest) (*models.Ride, error) {
	var out struct {
		RequestRide *models.Ride `json:"requestRide"`
	}

	vars := map[string]interface{}{"input": req}
	if err := g.client.Do(ctx, mutationRequest, vars, &out); err != nil {
		return nil, fmt.Errorf("failed to request ride: %w", err)
	}
	if out.RequestRide == nil {
		return nil, fmt.Errorf("ride service returned no ride for request")
	}

	return out.RequestRide, nil
}

// CancelRide cancels a ride with a reason
func (g *RideServiceGateway) CancelRide(ctx context.Context, rideID string, reason string) error {
	vars := map[string]interface{}{"id": rideID, "reason": reason}
	if err := g.client.Do(ctx, mutationCancel, vars, nil); err != nil {
		return fmt.Errorf("failed to cancel ride: %w", err)
	}
	return nil
}

// AcceptOffer accepts a rider's counter-offer and returns the updated ride
func (g *RideServiceGateway) AcceptOffer(ctx context.Context, rideID string, offerRiderID string) (*models.Ride, error) {
	var out struct {
		AcceptOffer *models.Ride `json:"acceptOffer"`
	}

	vars := map[string]interface{}{"id": rideID, "riderId": offerRiderID}
	if err := g.client.Do(ctx, mutationAccept, vars, &out); err != nil {
		return nil, fmt.Errorf("failed to accept offer: %w", err)
	}

	return out.AcceptOffer, nil
}

// AdjustFare changes the offered fare and returns the updated ride
func (g *RideServiceGateway) AdjustFare(ctx context.Context, rideID string, amount float64) (*models.Ride, error) {
	var out struct {
		AdjustFare *models.Ride `json:"adjustFare"`
	}

	vars := map[string]interface{}{"id": rideID, "amount": amount}
	if err := g.client.Do(ctx, mutationAdjust, vars, &out); err != nil {
		return nil, fmt.Errorf("failed to adjust fare: %w", err)
	}

	return out.AdjustFare, nil
}

// RateRide submits the post-completion rating
func (g *RideServiceGateway) RateRide(ctx context.Context, rideID string, rating int, comment string) error {
	vars := map[string]interface{}{"id": rideID, "rating": rating, "comment": comment}
	if err := g.client.Do(ctx, mutationRateRide, vars, nil); err != nil {
		return fmt.Errorf("failed to rate ride: %w", err)
	}
	return nil
}
