package gcore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestInvokeListSendsQueryAndAuth(t *testing.T) {
	var gotPath, gotQuery, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("limit")
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]any{"count": 2})
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL, APIKey: "secret", ProjectID: 7, RegionID: 3})
	result, err := client.Invoke(context.Background(), "cloud.instances.list", map[string]any{"limit": 10})
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if gotPath != "/cloud/v1/instances/7/3" {
		t.Fatalf("unexpected path: %q", gotPath)
	}
	if gotQuery != "10" {
		t.Fatalf("unexpected query: %q", gotQuery)
	}
	if gotAuth != "APIKey secret" {
		t.Fatalf("unexpected auth header: %q", gotAuth)
	}
	if result.(map[string]any)["count"].(float64) != 2 {
		t.Fatalf("unexpected result: %#v", result)
	}
}

func TestInvokeCreateSendsJSONBody(t *testing.T) {
	var gotMethod, gotContentType string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"task_id":"t1"}`))
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL, ProjectID: 1, RegionID: 1})
	_, err := client.Invoke(context.Background(), "cloud.instances.create", map[string]any{"name": "vm-1"})
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if gotMethod != "POST" || gotContentType != "application/json" {
		t.Fatalf("method=%q content-type=%q", gotMethod, gotContentType)
	}
	if gotBody["name"] != "vm-1" {
		t.Fatalf("unexpected body: %#v", gotBody)
	}
}

func TestInvokeItemRouteUsesIDArgument(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL, ProjectID: 7, RegionID: 3})
	if _, err := client.Invoke(context.Background(), "cloud.instances.get", map[string]any{"id": "abc"}); err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if gotPath != "/cloud/v1/instances/7/3/abc" {
		t.Fatalf("unexpected path: %q", gotPath)
	}

	if _, err := client.Invoke(context.Background(), "cloud.instances.get", nil); err == nil {
		t.Fatalf("expected missing id error")
	}
}

func TestInvokeActionRoute(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL, ProjectID: 7, RegionID: 3})
	if _, err := client.Invoke(context.Background(), "cloud.instances.start", map[string]any{"id": "abc"}); err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if gotMethod != "POST" || gotPath != "/cloud/v1/instances/7/3/abc/start" {
		t.Fatalf("method=%q path=%q", gotMethod, gotPath)
	}
}

func TestInvokeAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"instance not found"}`))
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL, ProjectID: 7, RegionID: 3})
	_, err := client.Invoke(context.Background(), "cloud.instances.get", map[string]any{"id": "abc"})
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != 404 || apiErr.Message != "instance not found" {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
}

func TestInvokeCachesGETResponses(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"count":1}`))
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL, ProjectID: 1, RegionID: 1, ResponseTTL: time.Minute})
	for i := 0; i < 3; i++ {
		if _, err := client.Invoke(context.Background(), "cloud.instances.list", nil); err != nil {
			t.Fatalf("Invoke: %v", err)
		}
	}
	if calls.Load() != 1 {
		t.Fatalf("expected 1 upstream call, got %d", calls.Load())
	}

	client.FlushCache()
	if _, err := client.Invoke(context.Background(), "cloud.instances.list", nil); err != nil {
		t.Fatalf("Invoke after flush: %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected flush to bypass cache, got %d calls", calls.Load())
	}
}
