// Package testingcommon Общие процедуры тестирования
package testingcommon

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TestGetGzip struct {
	Name           string
	Address        string
	AcceptEncoding string
	WantCompressed bool
	WantBody       string
}

// TestGzipCompression requests Address from handler and checks whether the
// response came back gzip-compressed. The transport's automatic
// decompression is disabled so the raw stream is observable.
func TestGzipCompression(t *testing.T, handler http.Handler, tests []TestGetGzip) {

	srv := httptest.NewServer(handler)
	defer srv.Close()

	client := &http.Client{
		Transport: &http.Transport{DisableCompression: true},
	}

	for _, test := range tests {

		t.Run(test.Name, func(t *testing.T) {

			r, err := http.NewRequest(http.MethodGet, srv.URL+test.Address, nil)
			require.NoError(t, err)
			if test.AcceptEncoding != "" {
				r.Header.Set("Accept-Encoding", test.AcceptEncoding)
			}

			resp, err := client.Do(r)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, http.StatusOK, resp.StatusCode)

			if !test.WantCompressed {
				assert.Empty(t, resp.Header.Get("Content-Encoding"))
				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				if test.WantBody != "" {
					assert.Equal(t, test.WantBody, string(body))
				}
				return
			}

			require.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))

			zr, err := gzip.NewReader(resp.Body)
			require.NoError(t, err)
			body, err := io.ReadAll(zr)
			require.NoError(t, err)
			require.NoError(t, zr.Close())

			if test.WantBody != "" {
				assert.Equal(t, test.WantBody, string(body))
			}
		})
	}
}
