package upstream

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"github.com/ashutosh-sx/Emergo/domain"
)

// GoogleDirectionsProvider implements domain.DirectionsProvider using the
// Google Maps Directions API.
type GoogleDirectionsProvider struct {
	client *maps.Client
}

// NewGoogleDirectionsProvider creates a directions provider. With no API key
// the provider stays in degraded mode and every request returns
// ErrMapsUnavailable, which the handler maps to a 503 so the tracking page
// can fall back to its keyless UI.
func NewGoogleDirectionsProvider(apiKey string) (domain.DirectionsProvider, error) {
	if apiKey == "" {
		return &GoogleDirectionsProvider{}, nil
	}
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GoogleDirectionsProvider{client: client}, nil
}

// GetDirections implements domain.DirectionsProvider
func (g *GoogleDirectionsProvider) GetDirections(ctx context.Context, origin, destination string) (*domain.Route, error) {
	if g.client == nil {
		return nil, domain.ErrMapsUnavailable
	}

	routes, _, err := g.client.Directions(ctx, &maps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return nil, fmt.Errorf("%w: no route found", domain.ErrUpstream)
	}

	leg := routes[0].Legs[0]
	return &domain.Route{
		Distance: leg.Distance.HumanReadable,
		Duration: leg.Duration.String(),
		Polyline: routes[0].OverviewPolyline.Points,
	}, nil
}
