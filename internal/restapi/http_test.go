package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"cuifreport.sfcdata.org/internal/app"
	"cuifreport.sfcdata.org/internal/cuif"
	"cuifreport.sfcdata.org/internal/pipeline"
	"cuifreport.sfcdata.org/internal/socrata"
)

// createTestAPI wires a RestAPI against a stub upstream handler standing in
// for the Socrata resource.
func createTestAPI(t *testing.T, upstream http.HandlerFunc) (*RestAPI, *httptest.Server) {
	t.Helper()

	upstreamServer := httptest.NewServer(upstream)
	t.Cleanup(upstreamServer.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	catalog := cuif.DefaultCatalog()
	dataset := socrata.NewClient(upstreamServer.URL, upstreamServer.Client(), logger)

	application := &app.Application{
		Config:   app.Config{Env: "test", SocrataBaseURL: upstreamServer.URL},
		Logger:   logger,
		Catalog:  catalog,
		Dataset:  dataset,
		Pipeline: pipeline.New(dataset, catalog, nil, logger),
	}

	api := NewRestAPI(application)
	server := httptest.NewServer(api.Routes())
	t.Cleanup(server.Close)

	return api, server
}

func getJSON(t *testing.T, url string) (*http.Response, ResponseModel) {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close() // nolint:errcheck

	var response ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}
