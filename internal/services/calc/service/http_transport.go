package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// defaultReadHeaderTimeout bounds slow-header clients on the HTTP listener.
	defaultReadHeaderTimeout = 10 * time.Second

	// defaultShutdownTimeout is the maximum time to wait for graceful HTTP
	// server shutdown, long enough for in-flight tool calls to finish.
	defaultShutdownTimeout = 35 * time.Second
)

// HTTPTransport serves MCP over streamable HTTP. Every request shares the
// same MCP server instance, so all sessions see one calculator registry.
type HTTPTransport struct {
	addr       string
	server     *mcp.Server
	apiToken   string
	httpServer *http.Server
}

// NewHTTPTransportWithServer creates an HTTP transport bound to the MCP server.
// It defaults to localhost-only binding so the default footprint stays
// constrained to local development.
func NewHTTPTransportWithServer(addr string, server *mcp.Server) *HTTPTransport {
	if addr == "" {
		addr = "localhost:8081"
	}
	return &HTTPTransport{addr: addr, server: server}
}

// applyConfig copies runtime options onto the transport.
func (t *HTTPTransport) applyConfig(cfg Config) {
	if t == nil {
		return
	}
	t.apiToken = strings.TrimSpace(cfg.AuthToken)
}

// Start starts the HTTP server and blocks until the context ends or the
// listener fails.
func (t *HTTPTransport) Start(ctx context.Context) error {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return t.server
	}, nil)

	mux := http.NewServeMux()
	mux.Handle("/mcp", t.requireAuth(handler))
	mux.HandleFunc("/mcp/health", t.handleHealth)

	t.httpServer = &http.Server{
		Addr:              t.addr,
		Handler:           mux,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
	}

	log.Printf("Starting MCP HTTP server on %s", t.addr)

	errChan := make(chan error, 1)
	go func() {
		if err := t.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Printf("Shutting down MCP HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
		defer cancel()
		if err := t.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown HTTP server: %w", err)
		}
		return nil
	case err := <-errChan:
		return fmt.Errorf("HTTP server error: %w", err)
	}
}

// requireAuth enforces the configured bearer token. Requests pass through
// untouched when no token is configured.
func (t *HTTPTransport) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if t.apiToken == "" {
			next.ServeHTTP(w, r)
			return
		}
		presented, ok := bearerToken(r)
		if !ok || subtle.ConstantTimeCompare([]byte(presented), []byte(t.apiToken)) != 1 {
			w.Header().Set("WWW-Authenticate", `Bearer realm="mcp"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// handleHealth reports liveness for process supervisors.
func (t *HTTPTransport) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, `{"status":"ok"}`)
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(r *http.Request) (string, bool) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(header[len(prefix):]), true
}
