// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package bridge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL)
	require.NoError(t, err)
	return client
}

func TestClient_IsAlive(t *testing.T) {
	client := newTestWorker(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, endpointStatus, r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})
	assert.True(t, client.IsAlive(context.Background()))
}

func TestClient_IsAliveDownWorker(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	client, err := NewClient(server.URL)
	require.NoError(t, err)
	server.Close()

	assert.False(t, client.IsAlive(context.Background()))
}

func TestClient_Analyze(t *testing.T) {
	client := newTestWorker(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, endpointAnalyze, r.URL.Path)

		var request AnalysisRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, "/proj/src/app.ts", request.FilePath)
		assert.Nil(t, request.FileContent, "nil content means worker reads from disk")
		assert.Equal(t, []string{"/proj/tsconfig.json"}, request.ConfigPaths)

		json.NewEncoder(w).Encode(AnalysisResponse{
			Issues: []Issue{{Line: 3, Column: 1, RuleID: "no-console", Message: "no console"}},
		})
	})

	response, err := client.Analyze(context.Background(), &AnalysisRequest{
		FilePath:    "/proj/src/app.ts",
		ConfigPaths: []string{"/proj/tsconfig.json"},
	})
	require.NoError(t, err)
	require.Len(t, response.Issues, 1)
	assert.Equal(t, "no-console", response.Issues[0].RuleID)
	assert.Nil(t, response.ParsingError)
}

func TestClient_AnalyzeParsingErrorIsNotTransportFailure(t *testing.T) {
	client := newTestWorker(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(AnalysisResponse{
			ParsingError: &ParsingError{Line: 7, Message: "unexpected token", Code: ParsingErrorParsing},
		})
	})

	response, err := client.Analyze(context.Background(), &AnalysisRequest{FilePath: "bad.ts"})
	require.NoError(t, err, "worker answered; this is an analysis failure, not transport")
	require.NotNil(t, response.ParsingError)
	assert.Equal(t, ParsingErrorParsing, response.ParsingError.Code)
	assert.Equal(t, 7, response.ParsingError.Line)
}

func TestClient_AnalyzeTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	client, err := NewClient(server.URL)
	require.NoError(t, err)
	server.Close()

	_, err = client.Analyze(context.Background(), &AnalysisRequest{FilePath: "app.ts"})
	assert.ErrorIs(t, err, ErrTransport)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, endpointAnalyze, reqErr.Endpoint)
}

func TestClient_AnalyzeServerError(t *testing.T) {
	client := newTestWorker(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "worker exploded", http.StatusInternalServerError)
	})

	_, err := client.Analyze(context.Background(), &AnalysisRequest{FilePath: "app.ts"})
	require.ErrorIs(t, err, ErrTransport)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusInternalServerError, reqErr.StatusCode)
}

func TestClient_InitLinterPayload(t *testing.T) {
	var got initLinterRequest
	client := newTestWorker(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, endpointInitLinter, r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	})

	rules := []Rule{{Key: "no-console", Configurations: []any{}}}
	err := client.InitLinter(context.Background(), rules, []string{"browser"}, []string{"angular"})
	require.NoError(t, err)

	require.Len(t, got.Rules, 1)
	assert.Equal(t, "no-console", got.Rules[0].Key)
	assert.Equal(t, []string{"browser"}, got.Environments)
	assert.Equal(t, []string{"angular"}, got.Globals)
}

func TestClient_UnmarshalableBodyIsNotTransportFailure(t *testing.T) {
	client := newTestWorker(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request should reach the worker")
	})

	rules := []Rule{{Key: "no-console", Configurations: []any{make(chan int)}}}
	err := client.InitLinter(context.Background(), rules, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.NotErrorIs(t, err, ErrTransport)
}

func TestClient_LoadConfig(t *testing.T) {
	client := newTestWorker(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, endpointLoadConfig, r.URL.Path)

		var request loadConfigRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, "/proj/tsconfig.json", request.ConfigPath)

		json.NewEncoder(w).Encode(configResponse{
			Filename:          "/proj/tsconfig.json",
			Files:             []string{"/proj/src/app.ts"},
			ProjectReferences: []string{"/proj/lib/tsconfig.json"},
		})
	})

	config, err := client.LoadConfig(context.Background(), "/proj/tsconfig.json")
	require.NoError(t, err)
	assert.Equal(t, "/proj/tsconfig.json", config.Path)
	assert.Equal(t, []string{"/proj/src/app.ts"}, config.Files)
	assert.Equal(t, []string{"/proj/lib/tsconfig.json"}, config.References)
}

func TestClient_LoadConfigParseFailure(t *testing.T) {
	client := newTestWorker(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(configResponse{Error: "unexpected end of JSON"})
	})

	_, err := client.LoadConfig(context.Background(), "/proj/tsconfig.json")
	assert.ErrorIs(t, err, ErrConfigParse)
	assert.NotErrorIs(t, err, ErrTransport)
}

func TestClient_AdvanceContext(t *testing.T) {
	calls := 0
	client := newTestWorker(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, endpointNewContext, r.URL.Path)
		calls++
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, client.AdvanceContext(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestNewClient_EmptyBaseURL(t *testing.T) {
	_, err := NewClient("")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
