package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/notes/internal/model"
	"github.com/idilsaglam/notes/internal/store"
	"github.com/idilsaglam/notes/internal/store/kv"
	"github.com/idilsaglam/notes/internal/store/local"
	"github.com/idilsaglam/notes/internal/store/remote"
)

func newServer(t *testing.T) (*httptest.Server, *local.Store) {
	t.Helper()
	log, _ := test.NewNullLogger()
	backing := local.New(kv.NewMemory(), log)
	srv := httptest.NewServer(New(backing, log, Options{CORSOrigins: []string{"*"}}).Handler())
	t.Cleanup(srv.Close)
	return srv, backing
}

func do(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { res.Body.Close() })
	return res
}

func TestServer_StatusCodes(t *testing.T) {
	srv, _ := newServer(t)

	res := do(t, http.MethodPost, srv.URL+"/notes", `{"title":"a","content":"b","updatedAt":1}`)
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	res = do(t, http.MethodPut, srv.URL+"/notes/missing", `{"title":"a","content":"b"}`)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res = do(t, http.MethodPost, srv.URL+"/notes", `{nope`)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res = do(t, http.MethodDelete, srv.URL+"/notes/whatever", "")
	assert.Equal(t, http.StatusNoContent, res.StatusCode)
}

func TestServer_CORSPreflight(t *testing.T) {
	srv, _ := newServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/notes", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
}

// The remote client and the server agree on the whole contract.
func TestServer_RemoteClientRoundTrip(t *testing.T) {
	srv, backing := newServer(t)
	ctx := context.Background()
	c := remote.New(srv.URL)

	notes, err := c.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)

	created, err := c.Create(ctx, "", "x")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, model.DefaultTitle, created.Title)

	odd, err := backing.Create(ctx, "odd", "")
	require.NoError(t, err)

	updated, err := c.Update(ctx, created.ID, "A", "y")
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "A", updated.Title)

	_, err = c.Update(ctx, "no/such id", "t", "c")
	var re *store.RequestError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, http.StatusNotFound, re.StatusCode)
	assert.Contains(t, re.Body, "no/such id")

	require.NoError(t, c.Delete(ctx, created.ID))
	require.NoError(t, c.Delete(ctx, odd.ID))
	notes, err = c.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)
}
