// servers/mcp/main.go
// MCP server over stdio (JSON-RPC 2.0 + Content-Length framing)
// Tools: get_npm_docs, get_pypi_docs
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mwiater/pkgdocs/internal/appconfig"
	"github.com/mwiater/pkgdocs/internal/logging"
	"github.com/mwiater/pkgdocs/internal/registry"
	"github.com/mwiater/pkgdocs/servers/mcp/tools"
)

var (
	configPath string
)

func init() {
	flag.StringVar(&configPath, "config", "", "path to the config file")
}

// --- Protocol data types ---

type jsonrpcRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type jsonrpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type jsonrpcResponse struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      any           `json:"id,omitempty"`
	Result  any           `json:"result,omitempty"`
	Error   *jsonrpcError `json:"error,omitempty"`
}

// tools/call params
type toolsCallParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// JSON-RPC error codes. The two negative-32000s are server-defined: they keep
// upstream transport failures distinguishable from malformed upstream bodies.
const (
	codeServerError       = -32000
	codeMalformedUpstream = -32001
	codeMethodNotFound    = -32601
	codeInvalidParams     = -32602
)

// --- Framing Helpers ---

func writeMessage(w *bufio.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Content-Length: %d\r\n\r\n", len(data)); err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	return w.Flush()
}

func readMessage(r *bufio.Reader) (*jsonrpcRequest, error) {
	// Read headers until blank line
	headers := map[string]string{}
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil, io.EOF
			}
			return nil, err
		}
		s := line
		if s == "\r\n" || s == "\n" {
			break
		}
		// Accumulate headers (allow LF-only too)
		s = strings.TrimRight(s, "\r\n")
		if s == "" {
			break
		}
		if i := strings.IndexByte(s, ':'); i >= 0 {
			key := strings.ToLower(strings.TrimSpace(s[:i]))
			val := strings.TrimSpace(s[i+1:])
			headers[key] = val
		}
	}
	clStr, ok := headers["content-length"]
	if !ok {
		return nil, fmt.Errorf("missing Content-Length")
	}
	var length int
	if _, err := fmt.Sscanf(clStr, "%d", &length); err != nil {
		return nil, fmt.Errorf("invalid Content-Length: %v", err)
	}
	body := make([]byte, length)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, err
	}
	var req jsonrpcRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// --- RPC Helpers ---

func makeResult(id any, result any) jsonrpcResponse {
	return jsonrpcResponse{JSONRPC: "2.0", ID: id, Result: result}
}

func makeError(id any, code int, msg string) jsonrpcResponse {
	return jsonrpcResponse{JSONRPC: "2.0", ID: id, Error: &jsonrpcError{Code: code, Message: msg}}
}

// --- Dispatcher ---

// server dispatches one request at a time; each invocation is independent and
// carries no state into the next.
type server struct {
	toolset *tools.Toolset
	timeout time.Duration
}

func newServer(cfg appconfig.Config) *server {
	return &server{
		toolset: tools.New(cfg),
		timeout: cfg.RequestTimeout(),
	}
}

// classifyToolError maps a handler failure onto the error taxonomy: argument
// problems are invalid params, malformed upstream bodies get their own code,
// everything else (DNS, refused connections, non-2xx statuses) is a generic
// server error carrying the upstream message.
func classifyToolError(err error) int {
	var schemaErr *registry.SchemaError
	if errors.As(err, &schemaErr) {
		return codeMalformedUpstream
	}
	var argErr *tools.ArgumentError
	if errors.As(err, &argErr) {
		return codeInvalidParams
	}
	return codeServerError
}

func registryLabel(toolName string) string {
	switch toolName {
	case tools.GetNPMDocsName:
		return "npm"
	case tools.GetPyPIDocsName:
		return "pypi"
	default:
		return ""
	}
}

func (s *server) handleRequest(req *jsonrpcRequest, w *bufio.Writer) error {
	switch req.Method {
	case "initialize":
		result := map[string]any{
			"serverInfo":   map[string]any{"name": "pkgdocs-mcp", "version": "0.1.0"},
			"capabilities": map[string]any{"tools": map[string]any{"list": true, "call": true}},
		}
		return writeMessage(w, makeResult(req.ID, result))

	case "ping":
		return writeMessage(w, makeResult(req.ID, map[string]any{}))

	case "tools/list":
		result := map[string]any{"tools": tools.Definitions()}
		return writeMessage(w, makeResult(req.ID, result))

	case "tools/call":
		return s.handleToolCall(req, w)
	}

	return writeMessage(w, makeError(req.ID, codeMethodNotFound, fmt.Sprintf("Method not found: %s", req.Method)))
}

// handleToolCall runs the full dispatch sequence: resolve the tool, validate
// arguments, fetch, render. The tool lookup happens before anything else so
// an unknown name never reaches the network.
func (s *server) handleToolCall(req *jsonrpcRequest, w *bufio.Writer) error {
	var p toolsCallParams
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &p); err != nil {
			return writeMessage(w, makeError(req.ID, codeInvalidParams, "Invalid params"))
		}
	}
	if p.Arguments == nil {
		p.Arguments = map[string]any{}
	}

	handler := s.toolset.HandlerFor(p.Name)
	if handler == nil {
		return writeMessage(w, makeError(req.ID, codeMethodNotFound, fmt.Sprintf("Unknown tool: %s", p.Name)))
	}

	if err := tools.ValidateArguments(p.Name, p.Arguments); err != nil {
		return writeMessage(w, makeError(req.ID, codeInvalidParams, err.Error()))
	}

	logging.LogRequest("host->server", registryLabel(p.Name), p.Name, req.Params)

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	content, err := handler(ctx, p.Arguments)
	if err != nil {
		logging.LogRequest("server->host", registryLabel(p.Name), p.Name, err.Error())
		return writeMessage(w, makeError(req.ID, classifyToolError(err), err.Error()))
	}

	logging.LogRequest("server->host", registryLabel(p.Name), p.Name, fmt.Sprintf("%d content part(s)", len(content)))
	return writeMessage(w, makeResult(req.ID, map[string]any{"content": content}))
}

// --- Main Server Loop ---

func main() {
	flag.Parse()
	cfg, err := appconfig.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pkgdocs-mcp: %v\n", err)
		os.Exit(1)
	}

	if err := logging.Init(cfg.LogFilePath()); err != nil {
		fmt.Fprintf(os.Stderr, "pkgdocs-mcp: init logging: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logging.Close() }()
	logging.LogEvent("pkgdocs-mcp listening on stdio (npm=%s pypi=%s)", cfg.NPMBaseURL(), cfg.PyPIBaseURL())

	s := newServer(cfg)

	r := bufio.NewReader(os.Stdin)
	w := bufio.NewWriter(os.Stdout)

	for {
		req, err := readMessage(r)
		if err != nil {
			if err == io.EOF {
				return
			}
			// write a best-effort error frame without id to keep stream sane
			_ = writeMessage(w, jsonrpcResponse{JSONRPC: "2.0", Error: &jsonrpcError{Code: codeServerError, Message: err.Error()}})
			return
		}
		if req == nil {
			// malformed; end
			return
		}
		if err := s.handleRequest(req, w); err != nil {
			// Attempt to report per-request error
			_ = writeMessage(w, makeError(req.ID, codeServerError, err.Error()))
			// Do not exit; continue processing
		}
	}
}
