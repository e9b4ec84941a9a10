package mdpaint

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPRender(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/doc.md" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("- remote\n"))
	}))
	defer srv.Close()

	var out bytes.Buffer
	err := HTTPRender(context.Background(), HTTPRenderRequest{
		URL:     srv.URL + "/doc.md",
		Writer:  &out,
		Styles:  testStyles(t, nil),
		Options: []RenderOption{WithColor(false)},
	})
	require.NoError(t, err)
	assert.Equal(t, "  ✧ remote\n", out.String())

	err = HTTPRender(context.Background(), HTTPRenderRequest{URL: srv.URL + "/missing", Writer: &out})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestHTTPRenderValidation(t *testing.T) {
	var out bytes.Buffer
	require.Error(t, HTTPRender(context.Background(), HTTPRenderRequest{Writer: &out}))
	require.Error(t, HTTPRender(context.Background(), HTTPRenderRequest{URL: "http://x"}))

	err := HTTPRender(context.Background(), HTTPRenderRequest{URL: "ftp://example.com/a.md", Writer: &out})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported scheme")
}
