package soap

import (
	"encoding/xml"
	"net/http"
)

// Fault codes in the internal representation. They are translated to the
// version-specific values (Client/Server for 1.1, Sender/Receiver for 1.2)
// when the fault envelope is written.
const (
	FaultClient = "Client"
	FaultServer = "Server"
)

// FaultError carries a SOAP fault through the operation call chain.
// Detail is only exposed to callers outside production environments.
type FaultError struct {
	Code    string
	Message string
	Detail  string
}

func (e *FaultError) Error() string {
	return e.Message
}

// ClientFault builds a caller-error fault (malformed or invalid input)
func ClientFault(message string) *FaultError {
	return &FaultError{Code: FaultClient, Message: message}
}

// ServerFault builds a service-error fault
func ServerFault(message string) *FaultError {
	return &FaultError{Code: FaultServer, Message: message}
}

type faultDetail struct {
	Message string `xml:"Message,omitempty"`
	Stack   string `xml:"Stack,omitempty"`
}

type fault11 struct {
	XMLName     xml.Name     `xml:"soap:Fault"`
	FaultCode   string       `xml:"faultcode"`
	FaultString string       `xml:"faultstring"`
	Detail      *faultDetail `xml:"detail,omitempty"`
}

type fault12 struct {
	XMLName xml.Name     `xml:"soap:Fault"`
	Code    fault12Code  `xml:"soap:Code"`
	Reason  fault12Text  `xml:"soap:Reason"`
	Detail  *faultDetail `xml:"soap:Detail,omitempty"`
}

type fault12Code struct {
	Value string `xml:"soap:Value"`
}

type fault12Text struct {
	Text string `xml:"soap:Text"`
}

// WriteFault encodes a fault envelope. SOAP 1.1 faults always ride on
// HTTP 500; SOAP 1.2 distinguishes sender (400) from receiver (500).
func WriteFault(w http.ResponseWriter, version Version, f *FaultError, includeDetail bool, stack string) error {
	var detail *faultDetail
	if includeDetail && (f.Detail != "" || stack != "") {
		detail = &faultDetail{Message: f.Detail, Stack: stack}
	}

	if version == SOAP12 {
		code := "soap:Receiver"
		status := http.StatusInternalServerError
		if f.Code == FaultClient {
			code = "soap:Sender"
			status = http.StatusBadRequest
		}
		payload := fault12{
			Code:   fault12Code{Value: code},
			Reason: fault12Text{Text: f.Message},
			Detail: detail,
		}
		return writeEnvelope(w, version, status, payload)
	}

	payload := fault11{
		FaultCode:   "soap:" + f.Code,
		FaultString: f.Message,
		Detail:      detail,
	}
	return writeEnvelope(w, version, http.StatusInternalServerError, payload)
}
