package process

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func robotsServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		hits.Add(1)
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestRobotsGateDisallow(t *testing.T) {
	srv, hits := robotsServer(t, http.StatusOK, "User-agent: *\nDisallow: /private/\n")
	gate := NewRobotsGate(srv.Client(), "wordlegen", quiet)
	ctx := context.Background()

	assert.NoError(t, gate.Check(ctx, srv.URL+"/mots4lettres.htm"))

	err := gate.Check(ctx, srv.URL+"/private/mots4lettres.htm")
	var se *ScraperError
	require.True(t, errors.As(err, &se))
	assert.Contains(t, se.Error(), "robots.txt")

	// cached per host
	assert.Equal(t, int32(1), hits.Load())
}

func TestRobotsGateMissingRobotsAllows(t *testing.T) {
	srv, _ := robotsServer(t, http.StatusNotFound, "")
	gate := NewRobotsGate(srv.Client(), "wordlegen", quiet)

	assert.NoError(t, gate.Check(context.Background(), srv.URL+"/mots4lettres.htm"))
}

func TestRobotsGateUnreachableAllows(t *testing.T) {
	srv, _ := robotsServer(t, http.StatusOK, "")
	url := srv.URL + "/mots4lettres.htm"
	srv.Close()

	gate := NewRobotsGate(nil, "wordlegen", quiet)
	assert.NoError(t, gate.Check(context.Background(), url))
}
