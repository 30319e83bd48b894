// Millesime - Wine Vintage Quality and Gift Recommendation Service
// Copyright 2026 M. Vachon (mvachon)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mvachon/millesime

package services

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/mvachon/millesime/internal/vintage"
)

// fakeServer implements HTTPServer. ListenAndServe blocks until
// Shutdown is called or a fault is injected.
type fakeServer struct {
	listenErr   error
	shutdownErr error

	closed       chan struct{}
	shutdownSeen chan struct{}
}

func newFakeServer() *fakeServer {
	return &fakeServer{
		closed:       make(chan struct{}),
		shutdownSeen: make(chan struct{}, 1),
	}
}

func (f *fakeServer) ListenAndServe() error {
	if f.listenErr != nil {
		return f.listenErr
	}
	<-f.closed
	return http.ErrServerClosed
}

func (f *fakeServer) Shutdown(_ context.Context) error {
	select {
	case f.shutdownSeen <- struct{}{}:
	default:
	}
	close(f.closed)
	return f.shutdownErr
}

func TestHTTPServiceGracefulShutdown(t *testing.T) {
	srv := newFakeServer()
	svc := NewHTTPService(srv, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- svc.Serve(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Serve returned %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after cancellation")
	}

	select {
	case <-srv.shutdownSeen:
	default:
		t.Fatal("Shutdown was not called")
	}
}

func TestHTTPServiceListenFailure(t *testing.T) {
	srv := newFakeServer()
	srv.listenErr = errors.New("bind: address already in use")
	svc := NewHTTPService(srv, time.Second)

	err := svc.Serve(context.Background())
	if err == nil {
		t.Fatal("Serve returned nil, want listen error")
	}
	if !errors.Is(err, srv.listenErr) {
		t.Fatalf("Serve returned %v, want wrapped listen error", err)
	}
}

func TestHTTPServiceShutdownFailure(t *testing.T) {
	srv := newFakeServer()
	srv.shutdownErr = errors.New("connections still draining")
	svc := NewHTTPService(srv, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := svc.Serve(ctx)
	if err == nil || !errors.Is(err, srv.shutdownErr) {
		t.Fatalf("Serve returned %v, want wrapped shutdown error", err)
	}
}

func TestHTTPServiceString(t *testing.T) {
	svc := NewHTTPService(newFakeServer(), 0)
	if got := svc.String(); got != "http-server" {
		t.Fatalf("String() = %q, want %q", got, "http-server")
	}
}

func TestWarmupServiceLoadsAndParks(t *testing.T) {
	dataDir := filepath.Join("..", "..", "vintage", "testdata")
	store := vintage.NewStore(filepath.Join(dataDir, "vintage_ok.json"))
	geo := vintage.NewGeoStore(filepath.Join(dataDir, "regions_ok.geojson"))

	svc := NewWarmupService(store, geo)
	if got := svc.String(); got != "dataset-warmup" {
		t.Fatalf("String() = %q, want %q", got, "dataset-warmup")
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- svc.Serve(ctx)
	}()

	deadline := time.After(2 * time.Second)
	for !store.Loaded() || !geo.Loaded() {
		select {
		case <-deadline:
			t.Fatal("datasets did not load")
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Serve returned %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after cancellation")
	}
}

func TestWarmupServiceSurvivesMissingData(t *testing.T) {
	store := vintage.NewStore(filepath.Join("testdata", "does_not_exist.json"))
	geo := vintage.NewGeoStore(filepath.Join("testdata", "does_not_exist.geojson"))

	svc := NewWarmupService(store, geo)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- svc.Serve(ctx)
	}()

	// The service must keep running despite the failed loads.
	select {
	case err := <-done:
		t.Fatalf("Serve returned early with %v", err)
	case <-time.After(50 * time.Millisecond):
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Serve returned %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after cancellation")
	}
}
