package soap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"sort"
	"strings"

	"go-datasvc/pkg/middleware"
)

// maxRequestSize bounds SOAP request bodies. The legacy service accepted
// at most the default ASP.NET 4MB request limit.
const maxRequestSize = 4 << 20

// OperationFunc handles a single SOAP operation: it decodes its request
// from req and returns the response payload to be wrapped in the envelope.
type OperationFunc func(ctx context.Context, req *Request) (interface{}, error)

// Server dispatches SOAP envelopes to registered operations and serves
// the WSDL document. It is safe for concurrent use once configured.
type Server struct {
	operations map[string]OperationFunc
	wsdl       []byte
	devMode    bool
}

func NewServer(devMode bool) *Server {
	return &Server{
		operations: make(map[string]OperationFunc),
		devMode:    devMode,
	}
}

// Register binds an operation name (the first Body child element) to a handler
func (s *Server) Register(action string, fn OperationFunc) {
	s.operations[action] = fn
}

// SetWSDL sets the document returned for GET ...?wsdl
func (s *Server) SetWSDL(doc []byte) {
	s.wsdl = doc
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.serveGet(w, r)
	case http.MethodPost:
		s.servePost(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) serveGet(w http.ResponseWriter, r *http.Request) {
	if _, ok := r.URL.Query()["wsdl"]; ok && s.wsdl != nil {
		w.Header().Set("Content-Type", "text/xml; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(s.wsdl)
		return
	}

	// Legacy .asmx endpoints answer bare GETs with an operation listing.
	names := make([]string, 0, len(s.operations))
	for name := range s.operations {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("GetDataService\n\nSupported operations:\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  - %s\n", name)
	}
	b.WriteString("\nAppend ?wsdl to this URL for the service description.\n")

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, b.String())
}

func (s *Server) servePost(w http.ResponseWriter, r *http.Request) {
	// A panic anywhere below still produces a well-formed fault envelope.
	version := SOAP11
	defer func() {
		if rec := recover(); rec != nil {
			stack := string(debug.Stack())
			slog.Error("Panic during SOAP request",
				slog.Any("panic", rec),
				slog.String("correlation_id", middleware.GetCorrelationID(r.Context())),
			)
			fault := ServerFault("Internal server error")
			if s.devMode {
				fault.Detail = fmt.Sprint(rec)
			}
			s.writeFault(w, version, fault, stack)
		}
	}()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestSize))
	if err != nil {
		s.writeFault(w, version, ClientFault("unable to read request body"), "")
		return
	}

	req, err := DecodeRequest(body)
	if err != nil {
		s.writeFault(w, version, ClientFault(err.Error()), "")
		return
	}
	version = req.Version

	op, ok := s.operations[req.Action]
	if !ok {
		s.writeFault(w, version, ClientFault(fmt.Sprintf("unknown operation %q", req.Action)), "")
		return
	}

	corrID := middleware.GetCorrelationID(r.Context())
	slog.Info("SOAP operation invoked",
		slog.String("operation", req.Action),
		slog.String("soap_version", version.String()),
		slog.String("correlation_id", corrID),
	)

	payload, err := op(r.Context(), req)
	if err != nil {
		var fault *FaultError
		if !errors.As(err, &fault) {
			fault = ServerFault("Internal server error")
			if s.devMode {
				fault.Detail = err.Error()
			}
		}
		slog.Warn("SOAP operation failed",
			slog.String("operation", req.Action),
			slog.String("fault_code", fault.Code),
			slog.String("error", err.Error()),
			slog.String("correlation_id", corrID),
		)
		s.writeFault(w, version, fault, "")
		return
	}

	if err := WriteResponse(w, version, payload); err != nil {
		slog.Error("Failed to write SOAP response",
			slog.String("operation", req.Action),
			slog.String("error", err.Error()),
			slog.String("correlation_id", corrID),
		)
	}
}

func (s *Server) writeFault(w http.ResponseWriter, version Version, fault *FaultError, stack string) {
	if !s.devMode {
		stack = ""
	}
	if err := WriteFault(w, version, fault, s.devMode, stack); err != nil {
		slog.Error("Failed to write SOAP fault", "error", err)
	}
}
