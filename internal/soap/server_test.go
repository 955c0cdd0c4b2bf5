package soap

import (
	"context"
	"encoding/xml"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoResponse struct {
	XMLName xml.Name `xml:"http://tempuri.org/ EchoResponse"`
	Result  string   `xml:"EchoResult"`
}

func newEchoServer(devMode bool) *Server {
	s := NewServer(devMode)
	s.Register("Echo", func(ctx context.Context, req *Request) (interface{}, error) {
		var in struct {
			XMLName xml.Name `xml:"http://tempuri.org/ Echo"`
			Text    string   `xml:"text"`
		}
		if err := req.Decode(&in); err != nil {
			return nil, ClientFault(err.Error())
		}
		return echoResponse{Result: in.Text}, nil
	})
	return s
}

func postEnvelope(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/GetDataService.asmx", strings.NewReader(body))
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func envelope11(inner string) string {
	return `<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>` + inner + `</soap:Body>
</soap:Envelope>`
}

func TestServer_Dispatch(t *testing.T) {
	s := newEchoServer(false)

	rec := postEnvelope(t, s, envelope11(`<Echo xmlns="http://tempuri.org/"><text>ping</text></Echo>`))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<EchoResult>ping</EchoResult>")
}

func TestServer_UnknownOperation(t *testing.T) {
	s := newEchoServer(false)

	rec := postEnvelope(t, s, envelope11(`<Nope xmlns="http://tempuri.org/"/>`))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "<faultcode>soap:Client</faultcode>")
	assert.Contains(t, rec.Body.String(), `unknown operation &#34;Nope&#34;`)
}

func TestServer_MalformedEnvelope(t *testing.T) {
	s := newEchoServer(false)

	rec := postEnvelope(t, s, `this is not xml`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "<faultcode>soap:Client</faultcode>")
}

func TestServer_OperationError(t *testing.T) {
	s := NewServer(false)
	s.Register("Boom", func(ctx context.Context, req *Request) (interface{}, error) {
		return nil, errors.New("backend exploded")
	})

	rec := postEnvelope(t, s, envelope11(`<Boom xmlns="http://tempuri.org/"/>`))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<faultcode>soap:Server</faultcode>")
	assert.Contains(t, body, "Internal server error")
	// Raw error text stays out of production faults.
	assert.NotContains(t, body, "backend exploded")
}

func TestServer_OperationError_DevDetail(t *testing.T) {
	s := NewServer(true)
	s.Register("Boom", func(ctx context.Context, req *Request) (interface{}, error) {
		return nil, errors.New("backend exploded")
	})

	rec := postEnvelope(t, s, envelope11(`<Boom xmlns="http://tempuri.org/"/>`))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "backend exploded")
}

func TestServer_FaultPassthrough(t *testing.T) {
	s := NewServer(false)
	s.Register("Reject", func(ctx context.Context, req *Request) (interface{}, error) {
		return nil, ClientFault("Validation failed: ReportName is required")
	})

	rec := postEnvelope(t, s, envelope11(`<Reject xmlns="http://tempuri.org/"/>`))

	body := rec.Body.String()
	assert.Contains(t, body, "<faultcode>soap:Client</faultcode>")
	assert.Contains(t, body, "Validation failed: ReportName is required")
}

func TestServer_PanicRecovery(t *testing.T) {
	s := NewServer(false)
	s.Register("Panic", func(ctx context.Context, req *Request) (interface{}, error) {
		panic("kaboom")
	})

	rec := postEnvelope(t, s, envelope11(`<Panic xmlns="http://tempuri.org/"/>`))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<faultcode>soap:Server</faultcode>")
	assert.Contains(t, body, "Internal server error")
	assert.NotContains(t, body, "kaboom")
}

func TestServer_GetWSDL(t *testing.T) {
	s := newEchoServer(false)
	s.SetWSDL([]byte(`<definitions/>`))

	req := httptest.NewRequest(http.MethodGet, "/GetDataService.asmx?wsdl", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/xml; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `<definitions/>`, rec.Body.String())
}

func TestServer_GetListing(t *testing.T) {
	s := newEchoServer(false)

	req := httptest.NewRequest(http.MethodGet, "/GetDataService.asmx", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Echo")
	assert.Contains(t, rec.Body.String(), "?wsdl")
}

func TestServer_MethodNotAllowed(t *testing.T) {
	s := newEchoServer(false)

	req := httptest.NewRequest(http.MethodPut, "/GetDataService.asmx", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, POST", rec.Header().Get("Allow"))
}

func TestServer_SOAP12RoundTrip(t *testing.T) {
	s := newEchoServer(false)

	body := `<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:soap="http://www.w3.org/2003/05/soap-envelope">
  <soap:Body><Echo xmlns="http://tempuri.org/"><text>ping</text></Echo></soap:Body>
</soap:Envelope>`

	rec := postEnvelope(t, s, body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/soap+xml; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), NamespaceSOAP12)
	assert.Contains(t, rec.Body.String(), "<EchoResult>ping</EchoResult>")
}
