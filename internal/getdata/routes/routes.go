package routes

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go-datasvc/internal/getdata/dto"
	"go-datasvc/internal/getdata/services"
	"go-datasvc/internal/soap"
)

// Routes wires the GetDataService operations into the SOAP server
type Routes struct {
	service *services.Service
	server  *soap.Server
}

// NewRoutes builds the SOAP endpoint for the service. endpointURL is the
// externally visible address written into the WSDL.
func NewRoutes(service *services.Service, devMode bool, endpointURL string) *Routes {
	server := soap.NewServer(devMode)
	server.SetWSDL([]byte(ServiceWSDL(endpointURL)))

	r := &Routes{
		service: service,
		server:  server,
	}

	server.Register("HelloWorld", r.helloWorld)
	server.Register("GetData", r.getData)
	server.Register("GetDataSet", r.getDataSet)
	server.Register("GetReport", r.getReport)

	return r
}

// Handler returns the http.Handler serving the SOAP endpoint
func (r *Routes) Handler() http.Handler {
	return r.server
}

func (r *Routes) helloWorld(ctx context.Context, req *soap.Request) (interface{}, error) {
	var in helloWorldRequest
	if err := req.Decode(&in); err != nil {
		return nil, soap.ClientFault("malformed HelloWorld request: " + err.Error())
	}

	return helloWorldResponse{Result: r.service.HelloWorld(ctx)}, nil
}

func (r *Routes) getData(ctx context.Context, req *soap.Request) (interface{}, error) {
	var in getDataRequest
	if err := req.Decode(&in); err != nil {
		return nil, soap.ClientFault("malformed GetData request: " + err.Error())
	}

	return getDataResponse{Result: r.service.GetData(ctx, in.Name)}, nil
}

func (r *Routes) getDataSet(ctx context.Context, req *soap.Request) (interface{}, error) {
	var in getDataSetRequest
	if err := req.Decode(&in); err != nil {
		return nil, soap.ClientFault("malformed GetDataSet request: " + err.Error())
	}

	response, err := r.service.GetDataSet(ctx)
	if err != nil {
		return nil, err
	}

	return getDataSetResponse{Result: toSampleDataResult(response)}, nil
}

func (r *Routes) getReport(ctx context.Context, req *soap.Request) (interface{}, error) {
	var in getReportRequest
	if err := req.Decode(&in); err != nil {
		return nil, soap.ClientFault("malformed GetReport request: " + err.Error())
	}

	response, err := r.service.GetReport(ctx, &in.Input)
	if err != nil {
		// Validation failures are the caller's fault; everything else
		// surfaces as a server fault upstream.
		var verr *dto.ValidationError
		if errors.As(err, &verr) {
			return nil, soap.ClientFault("Validation failed: " + strings.Join(verr.Errors, "; "))
		}
		return nil, err
	}

	return getReportResponse{Result: toReportDataResult(response)}, nil
}
