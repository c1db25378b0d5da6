package variant

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type height uint64
type hash string

var blockRefMatchers = []Matcher{
	Object{Required: []string{"account_id", "finality"}, Consts: map[string]interface{}{"request_type": "view_account"}},
	Object{Required: []string{"account_id", "block_id"}, Consts: map[string]interface{}{"request_type": "view_account"}},
	Object{Required: []string{"account_id", "finality"}, Consts: map[string]interface{}{"request_type": "view_code"}},
	Object{Required: []string{"account_id", "block_id"}, Consts: map[string]interface{}{"request_type": "view_code"}},
}

func TestSelectByDiscriminatorAndShape(t *testing.T) {
	cases := map[string]int{
		`{"request_type":"view_account","account_id":"a.near","finality":"final"}`: 0,
		`{"request_type":"view_account","account_id":"a.near","block_id":1}`:       1,
		`{"request_type":"view_code","account_id":"a.near","finality":"final"}`:    2,
		`{"request_type":"view_code","block_id":"abc","account_id":"a.near"}`:      3,
	}
	for in, want := range cases {
		got, err := Select("Query", []byte(in), blockRefMatchers)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestSelectNoMatch(t *testing.T) {
	_, err := Select("Query", []byte(`{"request_type":"view_state","account_id":"a.near"}`), blockRefMatchers)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoVariant))
	assert.Contains(t, err.Error(), "Query")

	_, err = Select("Query", []byte(`"final"`), blockRefMatchers)
	assert.True(t, errors.Is(err, ErrNoVariant))
}

func TestSelectPrefersFewerUnknownKeys(t *testing.T) {
	matchers := []Matcher{
		Object{Required: []string{"block_hash"}},
		Object{Required: []string{"block_hash"}, Optional: []string{"values", "proof"}},
	}
	got, err := Select("Resp", []byte(`{"block_hash":"x","values":[]}`), matchers)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestSelectToleratesUnknownKeys(t *testing.T) {
	matchers := []Matcher{Object{Required: []string{"block_hash", "block_height"}}}
	got, err := Select("Resp", []byte(`{"block_hash":"x","block_height":1,"added_later":true}`), matchers)
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	ok, penalty := matchers[0].Match([]byte(`{"block_hash":"x","block_height":1,"a":1,"b":2}`))
	assert.True(t, ok)
	assert.Equal(t, 2, penalty)
}

func TestSelectPrefersSpecific(t *testing.T) {
	matchers := []Matcher{
		Object{Optional: []string{"a", "b"}},
		Object{Required: []string{"a", "b"}},
	}
	got, err := Select("U", []byte(`{"a":1,"b":2}`), matchers)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestEnumAndStrict(t *testing.T) {
	matchers := []Matcher{Enum{"latest"}, Strict[height]{}, Strict[hash]{}}

	got, err := Select("Validators", []byte(`"latest"`), matchers)
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	got, err = Select("BlockId", []byte(`42`), matchers)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	got, err = Select("BlockId", []byte(`"EjTbVi5r"`), matchers)
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	_, err = Select("BlockId", []byte(`-1`), matchers)
	assert.Error(t, err)
}

func TestMarshalOne(t *testing.T) {
	h := height(7)
	var unset *hash

	b, err := MarshalOne("BlockId", &h, unset)
	require.NoError(t, err)
	assert.Equal(t, `7`, string(b))

	_, err = MarshalOne("BlockId", (*height)(nil), unset)
	assert.True(t, errors.Is(err, ErrNoVariant))

	s := hash("x")
	_, err = MarshalOne("BlockId", &h, &s)
	assert.True(t, errors.Is(err, ErrMultipleVariants))
}

func TestMarshalWithConsts(t *testing.T) {
	v := struct {
		AccountID string `json:"account_id"`
	}{"a.near"}
	b, err := MarshalWithConsts(v, map[string]interface{}{"request_type": "view_account"})
	require.NoError(t, err)
	assert.Equal(t, `{"account_id":"a.near","request_type":"view_account"}`, string(b))

	_, err = MarshalWithConsts("scalar", map[string]interface{}{"k": 1})
	assert.Error(t, err)
}

func TestDecodeStrict(t *testing.T) {
	var v struct {
		A int `json:"a"`
	}
	assert.NoError(t, DecodeStrict([]byte(`{"a":1}`), &v))
	assert.Error(t, DecodeStrict([]byte(`{"a":1,"b":2}`), &v))
	assert.Error(t, DecodeStrict([]byte(`{"a":1} {}`), &v))
}

func TestBytes(t *testing.T) {
	var b Bytes
	require.NoError(t, json.Unmarshal([]byte(`[123,34,111,107,34,125]`), &b))
	assert.Equal(t, `{"ok"}`, b.String())

	out, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, `[123,34,111,107,34,125]`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`[256]`), &b))

	var decoded int
	require.NoError(t, Bytes(`42`).Decode(&decoded))
	assert.Equal(t, 42, decoded)
}
