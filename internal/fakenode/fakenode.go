// Package fakenode serves canned NEAR JSON-RPC responses over HTTP for tests.
package fakenode

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/gorilla/rpc/v2/json2"
	"github.com/tidwall/gjson"
)

// Request is one call received by the node.
type Request struct {
	ID     json.RawMessage
	Method string
	Params json.RawMessage
	Header http.Header
}

type reply struct {
	status int
	body   func(id string) []byte
}

// Node answers each method with the reply registered for it. Unknown
// methods get the error a real node sends for METHOD_NOT_FOUND.
type Node struct {
	mu       sync.Mutex
	replies  map[string]reply
	requests []Request
}

func New() *Node {
	return &Node{replies: make(map[string]reply)}
}

// Serve starts an httptest server backed by n. Callers close it.
func (n *Node) Serve() *httptest.Server {
	return httptest.NewServer(n)
}

// Result registers a success envelope carrying result, which is either
// raw JSON text or a value to marshal.
func (n *Node) Result(method string, result interface{}) *Node {
	raw := mustJSON(result)
	return n.set(method, http.StatusOK, func(id string) []byte {
		return []byte(fmt.Sprintf(`{"jsonrpc":"2.0","id":%s,"result":%s}`, id, raw))
	})
}

// Error registers an error envelope carrying errObj.
func (n *Node) Error(method string, status int, errObj interface{}) *Node {
	raw := mustJSON(errObj)
	return n.set(method, status, func(id string) []byte {
		return []byte(fmt.Sprintf(`{"jsonrpc":"2.0","id":%s,"error":%s}`, id, raw))
	})
}

// Envelope registers an envelope that echoes the request id and carries the
// given members, eg. `"result":{}`. An empty members leaves both result and
// error out.
func (n *Node) Envelope(method string, status int, members string) *Node {
	return n.set(method, status, func(id string) []byte {
		if members == "" {
			return []byte(fmt.Sprintf(`{"jsonrpc":"2.0","id":%s}`, id))
		}
		return []byte(fmt.Sprintf(`{"jsonrpc":"2.0","id":%s,%s}`, id, members))
	})
}

// Raw registers a literal response body, envelope or not.
func (n *Node) Raw(method string, status int, body string) *Node {
	return n.set(method, status, func(string) []byte { return []byte(body) })
}

func (n *Node) set(method string, status int, body func(string) []byte) *Node {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.replies[method] = reply{status: status, body: body}
	return n
}

// Requests returns the calls received so far, oldest first.
func (n *Node) Requests() []Request {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Request(nil), n.requests...)
}

func (n *Node) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	b, err := io.ReadAll(r.Body)
	if err != nil || !gjson.ValidBytes(b) {
		writeJSON(w, http.StatusBadRequest, parseError())
		return
	}
	id := gjson.GetBytes(b, "id").Raw
	if id == "" {
		id = "null"
	}
	method := gjson.GetBytes(b, "method").String()

	n.mu.Lock()
	n.requests = append(n.requests, Request{
		ID:     json.RawMessage(id),
		Method: method,
		Params: json.RawMessage(gjson.GetBytes(b, "params").Raw),
		Header: r.Header.Clone(),
	})
	rep, ok := n.replies[method]
	n.mu.Unlock()

	if !ok {
		writeJSON(w, http.StatusOK, []byte(fmt.Sprintf(`{"jsonrpc":"2.0","id":%s,"error":%s}`, id, MethodNotFound(method))))
		return
	}
	writeJSON(w, rep.status, rep.body(id))
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func mustJSON(v interface{}) []byte {
	switch t := v.(type) {
	case string:
		return []byte(t)
	case []byte:
		return t
	}
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

func parseError() []byte {
	return []byte(fmt.Sprintf(`{"jsonrpc":"2.0","id":null,"error":{"name":"REQUEST_VALIDATION_ERROR","cause":{"name":"PARSE_ERROR","info":{"error_message":"invalid json"}},"code":%d,"message":"Parse error","data":"invalid json"}}`, json2.E_PARSE))
}
