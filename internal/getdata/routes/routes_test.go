package routes

import (
	"encoding/xml"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-datasvc/internal/getdata/dto"
	"go-datasvc/internal/getdata/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	service := services.NewService(true)
	routes := NewRoutes(service, false, "http://localhost:8080/GetDataService.asmx")
	return routes.Handler()
}

func post(t *testing.T, h http.Handler, inner string) *httptest.ResponseRecorder {
	t.Helper()
	body := `<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>` + inner + `</soap:Body>
</soap:Envelope>`

	req := httptest.NewRequest(http.MethodPost, "/GetDataService.asmx", strings.NewReader(body))
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHelloWorld_RoundTrip(t *testing.T) {
	h := newTestHandler(t)

	rec := post(t, h, `<HelloWorld xmlns="http://tempuri.org/"/>`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<HelloWorldResult>Hello World</HelloWorldResult>")
}

func TestGetData_RoundTrip(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name  string
		inner string
		want  string
	}{
		{
			name:  "named caller",
			inner: `<GetData xmlns="http://tempuri.org/"><name>World</name></GetData>`,
			want:  "<GetDataResult>Hello, World!</GetDataResult>",
		},
		{
			name:  "blank name falls back to guest",
			inner: `<GetData xmlns="http://tempuri.org/"><name></name></GetData>`,
			want:  "<GetDataResult>Hello, Guest!</GetDataResult>",
		},
		{
			name:  "missing name element falls back to guest",
			inner: `<GetData xmlns="http://tempuri.org/"/>`,
			want:  "<GetDataResult>Hello, Guest!</GetDataResult>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, h, tt.inner)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
}

func TestGetDataSet_RoundTrip(t *testing.T) {
	h := newTestHandler(t)

	rec := post(t, h, `<GetDataSet xmlns="http://tempuri.org/"/>`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		XMLName xml.Name `xml:"Envelope"`
		Body    struct {
			Response struct {
				Result sampleDataResult `xml:"GetDataSetResult"`
			} `xml:"GetDataSetResponse"`
		} `xml:"Body"`
	}
	require.NoError(t, xml.Unmarshal(rec.Body.Bytes(), &resp))

	result := resp.Body.Response.Result
	assert.Equal(t, dto.StatusSuccess, result.Status)
	assert.Equal(t, "SampleDataSet", result.DataSetName)
	assert.Equal(t, "SampleTable", result.TableName)
	assert.Equal(t, 2, result.Count)
	require.Len(t, result.Items, 2)
	assert.Equal(t, dto.SampleDataItem{ID: 1, Name: "Alice"}, result.Items[0])
	assert.Equal(t, dto.SampleDataItem{ID: 2, Name: "Bob"}, result.Items[1])
	assert.False(t, result.Timestamp.IsZero())
}

func TestGetReport_RoundTrip(t *testing.T) {
	h := newTestHandler(t)

	inner := `<GetReport xmlns="http://tempuri.org/">
  <input>
    <ReportName>Monthly Sales</ReportName>
    <Parameters>
      <Parameter><Key>region</Key><Value>EMEA</Value></Parameter>
    </Parameters>
    <Format>CSV</Format>
    <Priority>3</Priority>
    <Metadata>
      <Entry><Key>source</Key><Value>erp</Value></Entry>
    </Metadata>
  </input>
</GetReport>`

	rec := post(t, h, inner)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		XMLName xml.Name `xml:"Envelope"`
		Body    struct {
			Response struct {
				Result reportDataResult `xml:"GetReportResult"`
			} `xml:"GetReportResponse"`
		} `xml:"Body"`
	}
	require.NoError(t, xml.Unmarshal(rec.Body.Bytes(), &resp))

	result := resp.Body.Response.Result
	assert.Equal(t, dto.StatusSuccess, result.Status)
	assert.Equal(t, "Report 'Monthly Sales' generated with 2 rows", result.Summary)
	assert.Equal(t, 2, result.Count)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "Generated for report: Monthly Sales", result.Items[0].ReportMetadata)
}

func TestGetReport_DefaultPriorityApplied(t *testing.T) {
	h := newTestHandler(t)

	// Priority omitted entirely; the default keeps the input valid.
	inner := `<GetReport xmlns="http://tempuri.org/">
  <input><ReportName>Daily</ReportName></input>
</GetReport>`

	rec := post(t, h, inner)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Report 'Daily' generated")
}

func TestGetReport_ValidationFault(t *testing.T) {
	h := newTestHandler(t)

	inner := `<GetReport xmlns="http://tempuri.org/">
  <input>
    <ReportName></ReportName>
    <Format>DOCX</Format>
  </input>
</GetReport>`

	rec := post(t, h, inner)

	// Invalid input is the caller's fault: 1.1 fault on HTTP 500.
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<faultcode>soap:Client</faultcode>")
	assert.Contains(t, body, "Validation failed:")
	assert.Contains(t, body, "ReportName is required")
	assert.Contains(t, body, "Format must be one of: PDF EXCEL CSV XML JSON")
}

func TestWSDL_Served(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/GetDataService.asmx?wsdl", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `targetNamespace="http://tempuri.org/"`)
	assert.Contains(t, body, `location="http://localhost:8080/GetDataService.asmx"`)
	for _, op := range []string{"HelloWorld", "GetData", "GetDataSet", "GetReport"} {
		assert.Contains(t, body, `name="`+op+`"`)
	}
}

func TestWireStructs_ReportInputDecode(t *testing.T) {
	raw := `<GetReport xmlns="http://tempuri.org/">
  <input>
    <ReportName>X</ReportName>
    <StartDate>2024-01-01T00:00:00Z</StartDate>
    <EndDate>2024-02-01T00:00:00Z</EndDate>
    <IsAsync>true</IsAsync>
    <NotificationEmail>ops@example.com</NotificationEmail>
    <Culture>de-DE</Culture>
  </input>
</GetReport>`

	var in getReportRequest
	require.NoError(t, xml.Unmarshal([]byte(raw), &in))

	assert.Equal(t, "X", in.Input.ReportName)
	require.NotNil(t, in.Input.StartDate)
	require.NotNil(t, in.Input.EndDate)
	assert.True(t, in.Input.IsAsync)
	assert.Equal(t, "ops@example.com", in.Input.NotificationEmail)
	assert.Equal(t, "de-DE", in.Input.Culture)
}
