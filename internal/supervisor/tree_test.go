// Millesime - Wine Vintage Quality and Gift Recommendation Service
// Copyright 2026 M. Vachon (mvachon)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mvachon/millesime

package supervisor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"
)

// blockService parks until canceled and counts its starts.
type blockService struct {
	starts atomic.Int32
}

func (s *blockService) Serve(ctx context.Context) error {
	s.starts.Add(1)
	<-ctx.Done()
	return ctx.Err()
}

func (s *blockService) String() string { return "block" }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDefaultTreeConfig(t *testing.T) {
	cfg := DefaultTreeConfig()
	if cfg.FailureThreshold != 5.0 {
		t.Errorf("FailureThreshold = %v, want 5.0", cfg.FailureThreshold)
	}
	if cfg.FailureDecay != 30.0 {
		t.Errorf("FailureDecay = %v, want 30.0", cfg.FailureDecay)
	}
	if cfg.FailureBackoff != 15*time.Second {
		t.Errorf("FailureBackoff = %v, want 15s", cfg.FailureBackoff)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 10s", cfg.ShutdownTimeout)
	}
}

func TestTreeRunsServicesInBothLayers(t *testing.T) {
	tree := NewTree(discardLogger(), DefaultTreeConfig())

	dataSvc := &blockService{}
	apiSvc := &blockService{}
	tree.AddDataService(dataSvc)
	tree.AddAPIService(apiSvc)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	deadline := time.After(2 * time.Second)
	for dataSvc.starts.Load() == 0 || apiSvc.starts.Load() == 0 {
		select {
		case <-deadline:
			t.Fatalf("services never started: data=%d api=%d",
				dataSvc.starts.Load(), apiSvc.starts.Load())
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Fatalf("tree returned %v, want nil or context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("tree did not stop after cancellation")
	}
}

func TestTreeRestartsCrashedService(t *testing.T) {
	tree := NewTree(discardLogger(), TreeConfig{
		FailureThreshold: 50.0,
		FailureDecay:     30.0,
		FailureBackoff:   time.Millisecond,
		ShutdownTimeout:  time.Second,
	})

	crasher := &crashOnceService{resumed: make(chan struct{})}
	tree.AddAPIService(crasher)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := tree.ServeBackground(ctx)

	select {
	case <-crasher.resumed:
	case err := <-errCh:
		t.Fatalf("tree exited with %v before restarting the service", err)
	case <-time.After(2 * time.Second):
		t.Fatal("crashed service was not restarted")
	}
}

// crashOnceService fails its first run and parks on the second.
type crashOnceService struct {
	runs    atomic.Int32
	resumed chan struct{}
}

func (s *crashOnceService) Serve(ctx context.Context) error {
	if s.runs.Add(1) == 1 {
		return errors.New("simulated crash")
	}
	close(s.resumed)
	<-ctx.Done()
	return ctx.Err()
}

func (s *crashOnceService) String() string { return "crash-once" }

func TestTreeZeroValueConfigGetsDefaults(t *testing.T) {
	tree := NewTree(discardLogger(), TreeConfig{})
	if tree.config.FailureThreshold != 5.0 {
		t.Errorf("FailureThreshold = %v, want 5.0", tree.config.FailureThreshold)
	}
	if tree.config.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 10s", tree.config.ShutdownTimeout)
	}
	if tree.Root() == nil {
		t.Fatal("Root() returned nil")
	}
}
