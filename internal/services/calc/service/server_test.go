package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// TestRunUnsupportedTransport ensures Run rejects unknown transport kinds.
func TestRunUnsupportedTransport(t *testing.T) {
	err := Run(context.Background(), Config{Transport: "websocket"})
	if err == nil {
		t.Fatal("expected error for unsupported transport")
	}
	if !strings.Contains(err.Error(), "not supported") {
		t.Errorf("expected 'not supported' in error, got: %v", err)
	}
}

func TestNewSharesRegistry(t *testing.T) {
	server := New()
	if server.Registry() == nil {
		t.Fatal("expected server to expose its registry")
	}

	registry := server.Registry()
	other := NewWithRegistry(registry)
	if other.Registry() != registry {
		t.Fatal("expected servers to share the provided registry")
	}
}

// TestServeWithTransportMissingServer ensures serveWithTransport rejects
// unconfigured servers.
func TestServeWithTransportMissingServer(t *testing.T) {
	var nilServer *Server
	if err := nilServer.serveWithTransport(context.Background(), &mcp.StdioTransport{}); err == nil {
		t.Fatal("expected error for nil server")
	}

	emptyServer := &Server{}
	if err := emptyServer.serveWithTransport(context.Background(), &mcp.StdioTransport{}); err == nil {
		t.Fatal("expected error for missing mcp server")
	}
}

// TestServerToolCallRoundTrip drives a create/probability exchange through
// in-memory transports, end to end through the MCP protocol layer.
func TestServerToolCallRoundTrip(t *testing.T) {
	server := New()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.serveWithTransport(ctx, serverTransport)
	}()

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	clientCtx, clientCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer clientCancel()

	session, err := client.Connect(clientCtx, clientTransport, nil)
	if err != nil {
		t.Fatalf("connect client: %v", err)
	}
	defer session.Close()

	created, err := session.CallTool(clientCtx, &mcp.CallToolParams{
		Name: "calc_create",
		Arguments: map[string]any{
			"universe":      []float64{0, 1, 2, 3, 4},
			"probabilities": []float64{0.1, 0.2, 0.3, 0.2, 0.2},
		},
	})
	if err != nil {
		t.Fatalf("call calc_create: %v", err)
	}
	if created.IsError {
		t.Fatalf("calc_create returned tool error: %v", created.Content)
	}

	var createPayload struct {
		CalcID string `json:"calc_id"`
		Size   int    `json:"size"`
	}
	raw, err := json.Marshal(created.StructuredContent)
	if err != nil {
		t.Fatalf("marshal structured content: %v", err)
	}
	if err := json.Unmarshal(raw, &createPayload); err != nil {
		t.Fatalf("decode calc_create result: %v", err)
	}
	if createPayload.CalcID == "" || createPayload.Size != 5 {
		t.Fatalf("unexpected calc_create payload: %+v", createPayload)
	}

	probability, err := session.CallTool(clientCtx, &mcp.CallToolParams{
		Name: "calc_probability",
		Arguments: map[string]any{
			"calc_id": createPayload.CalcID,
			"event":   []float64{0.2, 0.4, 0.4, 0, 0},
		},
	})
	if err != nil {
		t.Fatalf("call calc_probability: %v", err)
	}
	if probability.IsError {
		t.Fatalf("calc_probability returned tool error: %v", probability.Content)
	}

	var probabilityPayload struct {
		Probability float64 `json:"probability"`
	}
	raw, err = json.Marshal(probability.StructuredContent)
	if err != nil {
		t.Fatalf("marshal structured content: %v", err)
	}
	if err := json.Unmarshal(raw, &probabilityPayload); err != nil {
		t.Fatalf("decode calc_probability result: %v", err)
	}
	if probabilityPayload.Probability < 0.2199 || probabilityPayload.Probability > 0.2201 {
		t.Fatalf("expected probability near 0.22, got %v", probabilityPayload.Probability)
	}

	cancel()
	select {
	case err := <-serveErr:
		if err != nil {
			t.Fatalf("serve returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("serve did not stop after cancel")
	}
}
