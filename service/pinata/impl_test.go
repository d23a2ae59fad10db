package pinata

import (
	"encoding/json"
	"errors"
	"io"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remixer-xyz/goapi/base/ctx"
	"github.com/remixer-xyz/goapi/domain"
)

func TestPin(t *testing.T) {
	c := ctx.Background()

	var gotAuth string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, pinPath, r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)
		json.NewEncoder(w).Encode(map[string]string{"IpfsHash": "QmImageCid"})
	}))
	defer srv.Close()

	p := New(&ClientCfg{Endpoint: srv.URL, Jwt: "test-jwt"})

	cid, err := p.Pin(c, []byte{0x89, 'P', 'N', 'G'}, "cover.png")
	require.NoError(t, err)
	assert.Equal(t, "QmImageCid", cid)
	assert.Equal(t, "Bearer test-jwt", gotAuth)
	assert.Contains(t, string(gotBody), `filename="cover.png"`)
}

func TestPinDetectsExtension(t *testing.T) {
	c := ctx.Background()

	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		json.NewEncoder(w).Encode(map[string]string{"IpfsHash": "QmCid"})
	}))
	defer srv.Close()

	p := New(&ClientCfg{Endpoint: srv.URL})

	// valid png magic, filename without extension
	png := append([]byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}, make([]byte, 16)...)
	_, err := p.Pin(c, png, "cover")
	require.NoError(t, err)
	assert.Contains(t, string(gotBody), `filename="cover.png"`)
}

func TestPinGuards(t *testing.T) {
	c := ctx.Background()

	// guards fire before any network call
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("unexpected request")
	}))
	defer srv.Close()

	p := New(&ClientCfg{Endpoint: srv.URL, MaxFileSize: 8})

	_, err := p.Pin(c, nil, "empty.png")
	assert.Equal(t, domain.ErrInvalidInput, err)

	_, err = p.Pin(c, make([]byte, 9), "big.png")
	assert.Equal(t, domain.ErrSizeExceeded, err)
}

func TestPinRejected(t *testing.T) {
	c := ctx.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
	}))
	defer srv.Close()

	p := New(&ClientCfg{Endpoint: srv.URL})

	_, err := p.Pin(c, []byte("data"), "f.png")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUploadFailed))
}

func TestPinTransportFailureKeepsCause(t *testing.T) {
	c := ctx.Background()

	// nothing listens here, the request itself fails
	p := New(&ClientCfg{Endpoint: "http://127.0.0.1:1"})

	_, err := p.Pin(c, []byte("data"), "f.png")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUploadFailed))
	assert.Contains(t, err.Error(), "127.0.0.1:1")
}

func TestPinJson(t *testing.T) {
	c := ctx.Background()

	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, pinJsonPath, r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]string{"IpfsHash": "QmJsonCid"})
	}))
	defer srv.Close()

	p := New(&ClientCfg{Endpoint: srv.URL})

	doc := map[string]interface{}{
		"name":   "My Remix",
		"supply": big.NewInt(1000000),
	}
	cid, err := p.PinJson(c, doc, "RemixerCoinMetadata_my-remix.json")
	require.NoError(t, err)
	assert.Equal(t, "QmJsonCid", cid)

	content, ok := gotBody["pinataContent"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "1000000", content["supply"])

	meta, ok := gotBody["pinataMetadata"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "RemixerCoinMetadata_my-remix.json", meta["name"])
}

func TestPinMissingCid(t *testing.T) {
	c := ctx.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer srv.Close()

	p := New(&ClientCfg{Endpoint: srv.URL})

	_, err := p.Pin(c, []byte("data"), "f.png")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUploadFailed))
}

func TestStringifyBigInts(t *testing.T) {
	in := map[string]interface{}{
		"a": big.NewInt(7),
		"b": []interface{}{big.NewInt(8), "x"},
		"c": map[string]interface{}{"d": *big.NewInt(9)},
		"e": 10,
	}
	out := StringifyBigInts(in).(map[string]interface{})
	assert.Equal(t, "7", out["a"])
	assert.Equal(t, []interface{}{"8", "x"}, out["b"])
	assert.Equal(t, "9", out["c"].(map[string]interface{})["d"])
	assert.Equal(t, 10, out["e"])

	b, err := json.Marshal(out)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(b), `{"neg"`))
}
