package getdata

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-datasvc/pkg/config"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		PublicURL:          "http://localhost:8080",
		Environment:        "development",
		SOAPPath:           "/GetDataService.asmx",
		GuestFallback:      true,
		SessionCookieName:  "DATASVC_SESSION",
		SessionIdleTimeout: 20 * time.Minute,
	}
}

func TestModule_RoutesServeBothPaths(t *testing.T) {
	m := New(nil, testConfig())
	assert.Equal(t, "getdata", m.Name())

	r := chi.NewRouter()
	m.Routes(r)

	body := `<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body><HelloWorld xmlns="http://tempuri.org/"/></soap:Body>
</soap:Envelope>`

	// The .asmx path and the WCF-era .svc alias answer identically.
	for _, path := range []string{"/GetDataService.asmx", "/GetDataService.svc"} {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "text/xml; charset=utf-8")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, "path %s", path)
		assert.Contains(t, rec.Body.String(), "<HelloWorldResult>Hello World</HelloWorldResult>")
	}
}

func TestSvcAlias(t *testing.T) {
	assert.Equal(t, "/GetDataService.svc", svcAlias("/GetDataService.asmx"))
	assert.Equal(t, "", svcAlias("/soap/data"))
}

func TestModule_StopIsIdempotent(t *testing.T) {
	m := New(nil, testConfig())
	m.Stop()
	m.Stop()
}
