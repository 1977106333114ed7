package grpcserver_test

import (
	"context"
	"io"
	"testing"
	"time"

	configloader "github.com/Kermitroid/outterspace2/internal/infrastructure/configloader"
	grpcserver "github.com/Kermitroid/outterspace2/internal/infrastructure/grpc_server"

	"github.com/bionicotaku/lingo-utils/observability"
	"github.com/go-kratos/kratos/v2/log"
)

// TestNewGRPCServer_WithNetwork 验证 network 配置。
func TestNewGRPCServer_WithNetwork(t *testing.T) {
	cfg := configloader.ServerConfig{
		GRPC: configloader.ListenerConfig{Network: "tcp", Address: "127.0.0.1:0"},
	}
	metricsCfg := &observability.MetricsConfig{GRPCEnabled: false}

	srv := grpcserver.NewGRPCServer(cfg, metricsCfg, log.NewStdLogger(io.Discard))
	if srv == nil {
		t.Fatal("expected non-nil server")
	}

	endpoint, err := srv.Endpoint()
	if err != nil || endpoint == nil {
		t.Fatalf("expected endpoint, got %v (err=%v)", endpoint, err)
	}
	_ = srv.Stop(context.Background())
}

// TestNewGRPCServer_WithTimeout 验证 timeout 配置。
func TestNewGRPCServer_WithTimeout(t *testing.T) {
	cfg := configloader.ServerConfig{
		GRPC: configloader.ListenerConfig{Address: "127.0.0.1:0", Timeout: 5 * time.Second},
	}
	metricsCfg := &observability.MetricsConfig{GRPCEnabled: true, GRPCIncludeHealth: false}

	srv := grpcserver.NewGRPCServer(cfg, metricsCfg, log.NewStdLogger(io.Discard))
	if srv == nil {
		t.Fatal("expected non-nil server")
	}
	_ = srv.Stop(context.Background())
}

// TestNewGRPCServer_NilMetricsConfig 验证 nil metricsCfg 时使用默认值。
func TestNewGRPCServer_NilMetricsConfig(t *testing.T) {
	cfg := configloader.ServerConfig{GRPC: configloader.ListenerConfig{Address: "127.0.0.1:0"}}

	srv := grpcserver.NewGRPCServer(cfg, nil, log.NewStdLogger(io.Discard))
	if srv == nil {
		t.Fatal("expected non-nil server")
	}
	_ = srv.Stop(context.Background())
}

// TestNewGRPCServer_MetricsIncludeHealth 验证 GRPCIncludeHealth=true 时服务器构造成功。
func TestNewGRPCServer_MetricsIncludeHealth(t *testing.T) {
	cfg := configloader.ServerConfig{GRPC: configloader.ListenerConfig{Address: "127.0.0.1:0"}}
	metricsCfg := &observability.MetricsConfig{
		GRPCEnabled:       true,
		GRPCIncludeHealth: true,
	}

	srv := grpcserver.NewGRPCServer(cfg, metricsCfg, log.NewStdLogger(io.Discard))
	if srv == nil {
		t.Fatal("expected non-nil server")
	}
	_ = srv.Stop(context.Background())
}
