package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/possibility.space/internal/services/calc/domain"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "Possibility.Space Calc"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// TransportKind identifies the MCP transport implementation.
type TransportKind string

const (
	// TransportStdio uses standard input/output for MCP.
	TransportStdio TransportKind = "stdio"
	// TransportHTTP runs MCP over streamable HTTP for remote clients.
	TransportHTTP TransportKind = "http"
)

// Config configures the MCP server runtime.
type Config struct {
	Transport TransportKind
	HTTPAddr  string // HTTP server address. Defaults to localhost:8081 for HTTP transport.
	AuthToken string // Optional bearer token required on every HTTP request.
}

// Server hosts the calculator MCP server over a shared engine registry.
type Server struct {
	mcpServer *mcp.Server
	registry  *domain.Registry
}

// New creates a configured MCP server with all calculator tools registered
// against a fresh in-memory registry.
func New() *Server {
	return NewWithRegistry(domain.NewRegistry())
}

// NewWithRegistry creates a configured MCP server over an existing registry.
// Servers for different transports can share one registry this way.
func NewWithRegistry(registry *domain.Registry) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, &mcp.ServerOptions{
		CompletionHandler: completionHandler,
	})
	registerCalcTools(mcpServer, registry)
	return &Server{mcpServer: mcpServer, registry: registry}
}

// Registry returns the engine registry backing this server.
func (s *Server) Registry() *domain.Registry {
	return s.registry
}

// registerCalcTools binds every calculator tool to the registry.
func registerCalcTools(server *mcp.Server, registry *domain.Registry) {
	mcp.AddTool(server, domain.CalcCreateTool(), domain.CalcCreateHandler(registry))
	mcp.AddTool(server, domain.CalcRegisterEventTool(), domain.CalcRegisterEventHandler(registry))
	mcp.AddTool(server, domain.CalcCombineEventsTool(), domain.CalcCombineEventsHandler(registry))
	mcp.AddTool(server, domain.CalcProbabilityTool(), domain.CalcProbabilityHandler(registry))
	mcp.AddTool(server, domain.CalcFuzzyProbabilityTool(), domain.CalcFuzzyProbabilityHandler(registry))
	mcp.AddTool(server, domain.CalcBernoulliTool(), domain.CalcBernoulliHandler(registry))
}

// completionHandler handles completion/complete requests with empty results.
// Calculator tools take numeric payloads, so there is nothing meaningful to
// complete yet.
func completionHandler(ctx context.Context, req *mcp.CompleteRequest) (*mcp.CompleteResult, error) {
	return &mcp.CompleteResult{
		Completion: mcp.CompletionResultDetails{
			Values: []string{},
		},
	}, nil
}

// Run is the service entrypoint for MCP and blocks until context cancellation.
// Startup chooses stdio for local tools and HTTP for remote integrations.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}

	switch cfg.Transport {
	case TransportStdio:
		return New().serveWithTransport(ctx, &mcp.StdioTransport{})
	case TransportHTTP:
		return runWithHTTPTransport(ctx, cfg)
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
}

// Serve starts the MCP server on stdio and blocks until it stops or the context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// serveWithTransport starts the MCP server using the provided transport.
// Context cancellation is the normal shutdown path and is not treated as an error.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}

// runWithHTTPTransport creates a server and serves it over HTTP transport.
func runWithHTTPTransport(ctx context.Context, cfg Config) error {
	// Default to localhost-only binding for security
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		httpAddr = "localhost:8081"
	}

	server := New()
	httpTransport := NewHTTPTransportWithServer(httpAddr, server.mcpServer)
	httpTransport.applyConfig(cfg)
	return httpTransport.Start(ctx)
}
