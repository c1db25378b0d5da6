package fakenode

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func post(t *testing.T, url, body string) (int, string) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}

func TestNodeEchoesID(t *testing.T) {
	n := New().Result("status", map[string]string{"chain_id": "localnet"})
	srv := n.Serve()
	defer srv.Close()

	code, body := post(t, srv.URL, `{"jsonrpc":"2.0","id":"abc","method":"status","params":{}}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "abc", gjson.Get(body, "id").String())
	assert.Equal(t, "localnet", gjson.Get(body, "result.chain_id").String())

	reqs := n.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "status", reqs[0].Method)
	assert.JSONEq(t, `{}`, string(reqs[0].Params))
}

func TestNodeErrors(t *testing.T) {
	n := New().Error("query", http.StatusOK, UnknownAccount("x.near", 1, "h"))
	srv := n.Serve()
	defer srv.Close()

	_, body := post(t, srv.URL, `{"jsonrpc":"2.0","id":7,"method":"query","params":{}}`)
	assert.Equal(t, "HANDLER_ERROR", gjson.Get(body, "error.name").String())
	assert.Equal(t, "UNKNOWN_ACCOUNT", gjson.Get(body, "error.cause.name").String())
	assert.Equal(t, "x.near", gjson.Get(body, "error.cause.info.requested_account_id").String())
	assert.EqualValues(t, -32000, gjson.Get(body, "error.code").Int())

	_, body = post(t, srv.URL, `{"jsonrpc":"2.0","id":8,"method":"nope","params":{}}`)
	assert.EqualValues(t, 8, gjson.Get(body, "id").Int())
	assert.Equal(t, "METHOD_NOT_FOUND", gjson.Get(body, "error.cause.name").String())
	assert.EqualValues(t, -32601, gjson.Get(body, "error.code").Int())

	code, body := post(t, srv.URL, `{not json`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "PARSE_ERROR", gjson.Get(body, "error.cause.name").String())
}

func TestNodeRaw(t *testing.T) {
	srv := New().Raw("status", http.StatusBadGateway, "bad gateway").Serve()
	defer srv.Close()

	code, body := post(t, srv.URL, `{"jsonrpc":"2.0","id":1,"method":"status","params":{}}`)
	assert.Equal(t, http.StatusBadGateway, code)
	assert.Equal(t, "bad gateway", body)
}

func TestNodeEnvelope(t *testing.T) {
	srv := New().
		Envelope("status", http.StatusOK, "").
		Envelope("health", http.StatusServiceUnavailable, `"result":null`).
		Serve()
	defer srv.Close()

	code, body := post(t, srv.URL, `{"jsonrpc":"2.0","id":4611686018427387904,"method":"status","params":{}}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, `{"jsonrpc":"2.0","id":4611686018427387904}`, body)

	code, body = post(t, srv.URL, `{"jsonrpc":"2.0","id":5,"method":"health","params":{}}`)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, `{"jsonrpc":"2.0","id":5,"result":null}`, body)
}
