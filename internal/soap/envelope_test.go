package soap

import (
	"encoding/xml"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const soap11GetData = `<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <GetData xmlns="http://tempuri.org/">
      <name>World</name>
    </GetData>
  </soap:Body>
</soap:Envelope>`

const soap12GetData = `<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:soap="http://www.w3.org/2003/05/soap-envelope">
  <soap:Body>
    <GetData xmlns="http://tempuri.org/">
      <name>World</name>
    </GetData>
  </soap:Body>
</soap:Envelope>`

func TestDecodeRequest_SOAP11(t *testing.T) {
	req, err := DecodeRequest([]byte(soap11GetData))
	require.NoError(t, err)

	assert.Equal(t, SOAP11, req.Version)
	assert.Equal(t, "1.1", req.Version.String())
	assert.Equal(t, "GetData", req.Action)
}

func TestDecodeRequest_SOAP12(t *testing.T) {
	req, err := DecodeRequest([]byte(soap12GetData))
	require.NoError(t, err)

	assert.Equal(t, SOAP12, req.Version)
	assert.Equal(t, "1.2", req.Version.String())
	assert.Equal(t, "GetData", req.Action)
}

func TestDecodeRequest_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "not xml",
			body: `{"not":"xml"}`,
			want: "malformed SOAP envelope",
		},
		{
			name: "wrong root element",
			body: `<Wrapper xmlns="http://schemas.xmlsoap.org/soap/envelope/"><Body/></Wrapper>`,
			want: "unexpected root element",
		},
		{
			name: "unknown envelope namespace",
			body: `<Envelope xmlns="http://example.com/not-soap"><Body><Op/></Body></Envelope>`,
			want: "unsupported envelope namespace",
		},
		{
			name: "empty body",
			body: `<Envelope xmlns="http://schemas.xmlsoap.org/soap/envelope/"><Body></Body></Envelope>`,
			want: "empty SOAP body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeRequest([]byte(tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRequest_Decode(t *testing.T) {
	req, err := DecodeRequest([]byte(soap11GetData))
	require.NoError(t, err)

	var in struct {
		XMLName xml.Name `xml:"http://tempuri.org/ GetData"`
		Name    string   `xml:"name"`
	}
	require.NoError(t, req.Decode(&in))
	assert.Equal(t, "World", in.Name)
}

func TestRequest_Decode_NamespaceMismatch(t *testing.T) {
	req, err := DecodeRequest([]byte(soap11GetData))
	require.NoError(t, err)

	var in struct {
		XMLName xml.Name `xml:"http://example.com/other GetData"`
		Name    string   `xml:"name"`
	}
	assert.Error(t, req.Decode(&in))
}

func TestWriteResponse(t *testing.T) {
	type payload struct {
		XMLName xml.Name `xml:"http://tempuri.org/ GetDataResponse"`
		Result  string   `xml:"GetDataResult"`
	}

	tests := []struct {
		name        string
		version     Version
		contentType string
		namespace   string
	}{
		{
			name:        "soap 1.1",
			version:     SOAP11,
			contentType: "text/xml; charset=utf-8",
			namespace:   NamespaceSOAP11,
		},
		{
			name:        "soap 1.2",
			version:     SOAP12,
			contentType: "application/soap+xml; charset=utf-8",
			namespace:   NamespaceSOAP12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			err := WriteResponse(rec, tt.version, payload{Result: "Hello, World!"})
			require.NoError(t, err)

			assert.Equal(t, 200, rec.Code)
			assert.Equal(t, tt.contentType, rec.Header().Get("Content-Type"))

			body := rec.Body.String()
			assert.Contains(t, body, `xmlns:soap="`+tt.namespace+`"`)
			assert.Contains(t, body, "<GetDataResult>Hello, World!</GetDataResult>")

			// The produced envelope must itself decode.
			req, err := DecodeRequest(rec.Body.Bytes())
			require.NoError(t, err)
			assert.Equal(t, tt.version, req.Version)
			assert.Equal(t, "GetDataResponse", req.Action)
		})
	}
}
