package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/mikosha12/Hulu-beand-mern-b/models"
	"github.com/mikosha12/Hulu-beand-mern-b/services/metrics"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

type Geocoder interface {
	Geocode(ctx context.Context, address string) (models.Location, error)
}

// GeocodingResponseGoong is the subset of the Goong geocode reply we read
type GeocodingResponseGoong struct {
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

const goongBaseURL = "https://rsapi.goong.io"

type GoongGeocoder struct {
	apiKey  string
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

func NewGoongGeocoder(apiKey string, perSecond float64) *GoongGeocoder {
	if perSecond <= 0 {
		perSecond = 5
	}
	return &GoongGeocoder{
		apiKey:  apiKey,
		baseURL: goongBaseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(perSecond), 1),
	}
}

// WithBaseURL points the client at another host
func (g *GoongGeocoder) WithBaseURL(baseURL string) *GoongGeocoder {
	g.baseURL = baseURL
	return g
}

// bestCoordinates reads the first result of a Goong reply
func bestCoordinates(body io.Reader) (models.Location, error) {
	var response GeocodingResponseGoong
	if err := json.NewDecoder(body).Decode(&response); err != nil {
		return models.Location{}, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(response.Results) == 0 {
		return models.Location{}, errors.New("no results found")
	}

	best := response.Results[0]
	return models.Location{
		Latitude:  best.Geometry.Location.Lat,
		Longitude: best.Geometry.Location.Lng,
	}, nil
}

func (g *GoongGeocoder) Geocode(ctx context.Context, address string) (models.Location, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return models.Location{}, err
	}

	apiURL := fmt.Sprintf("%s/geocode?address=%s&api_key=%s", g.baseURL, url.QueryEscape(address), url.QueryEscape(g.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return models.Location{}, err
	}

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		metrics.ObserveExternal("goong", "geocode", 0, time.Since(start))
		return models.Location{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()
	metrics.ObserveExternal("goong", "geocode", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return models.Location{}, fmt.Errorf("API returned status %d", resp.StatusCode)
	}
	return bestCoordinates(resp.Body)
}
