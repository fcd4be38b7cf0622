// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/handler"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/mock"
	"github.com/MKhiriev/go-user-auth/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func newTestHandlers(t *testing.T, cfg config.Server) (*handler.Handlers, *mock.MockAppInfoService) {
	t.Helper()

	appInfo := mock.NewMockAppInfoService(gomock.NewController(t))
	h, err := handler.NewHandlers(&service.Services{AppInfoService: appInfo}, cfg, nil, logger.Nop())
	require.NoError(t, err)

	return h, appInfo
}

// startServer runs srv in the background and returns a stop func that
// cancels it and waits for RunServer to return.
func startServer(t *testing.T, srv Server) func() error {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.RunServer(ctx) }()

	return func() error {
		cancel()
		select {
		case err := <-done:
			return err
		case <-time.After(5 * time.Second):
			return fmt.Errorf("server did not stop in time")
		}
	}
}

func TestNewServer_NoAddresses(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestNewServer_MissingHandler(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())

	assert.ErrorIs(t, err, errMissingHandler)
	assert.Nil(t, srv)
}

func TestNewServer_PortInUse(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := config.Server{HTTPAddress: busy.Addr().String()}
	handlers, _ := newTestHandlers(t, cfg)

	srv, err := NewServer(handlers, cfg, logger.Nop())

	assert.Error(t, err)
	assert.Nil(t, srv)
}

func TestRunServer_HTTP(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", ShutdownTimeout: time.Second}
	handlers, appInfo := newTestHandlers(t, cfg)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)
	addr := srv.(*server).httpServer.listener.Addr().String()

	stop := startServer(t, srv)

	resp, err := http.Get("http://" + addr + "/version")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "1.2.3", string(body))
	assert.NotEmpty(t, resp.Header.Get("X-Trace-ID"))

	require.NoError(t, stop())

	_, err = http.Get("http://" + addr + "/version")
	assert.Error(t, err, "listener must be closed after shutdown")
}

func TestRunServer_GRPCHealth(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0", ShutdownTimeout: time.Second}
	handlers, appInfo := newTestHandlers(t, cfg)
	appInfo.EXPECT().Ping(gomock.Any()).Return(nil)

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)
	addr := srv.(*server).gRPCServer.gRPCNetListener.Addr().String()

	stop := startServer(t, srv)

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{})

	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
	require.NoError(t, stop())
}

func TestShutdown_WithoutRun(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"}
	handlers, _ := newTestHandlers(t, cfg)

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)

	defer srv.(*server).closeListeners()

	assert.NoError(t, srv.Shutdown(context.Background()))
}
