package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoongGeocoder_Geocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geocode", r.URL.Path)
		assert.Equal(t, "Bahir Dar, Ethiopia", r.URL.Query().Get("address"))
		assert.Equal(t, "key", r.URL.Query().Get("api_key"))
		w.Write([]byte(`{"results":[{"formatted_address":"Bahir Dar","geometry":{"location":{"lat":11.59,"lng":37.39}}}]}`))
	}))
	defer srv.Close()

	g := NewGoongGeocoder("key", 100).WithBaseURL(srv.URL)
	loc, err := g.Geocode(context.Background(), "Bahir Dar, Ethiopia")
	require.NoError(t, err)
	assert.InDelta(t, 11.59, loc.Latitude, 1e-9)
	assert.InDelta(t, 37.39, loc.Longitude, 1e-9)
}

func TestGoongGeocoder_Failures(t *testing.T) {
	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	}))
	defer empty.Close()

	_, err := NewGoongGeocoder("key", 100).WithBaseURL(empty.URL).Geocode(context.Background(), "nowhere")
	assert.EqualError(t, err, "no results found")

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer down.Close()

	_, err = NewGoongGeocoder("key", 100).WithBaseURL(down.URL).Geocode(context.Background(), "x")
	assert.EqualError(t, err, "API returned status 503")
}
