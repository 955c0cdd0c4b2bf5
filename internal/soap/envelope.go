package soap

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
)

// Envelope namespaces for the two supported SOAP versions.
const (
	NamespaceSOAP11 = "http://schemas.xmlsoap.org/soap/envelope/"
	NamespaceSOAP12 = "http://www.w3.org/2003/05/soap-envelope"

	// ServiceNamespace is the legacy contract namespace, preserved for
	// backward compatibility with existing clients.
	ServiceNamespace = "http://tempuri.org/"

	contentTypeSOAP11 = "text/xml; charset=utf-8"
	contentTypeSOAP12 = "application/soap+xml; charset=utf-8"
)

// Version identifies the SOAP envelope version of a request
type Version int

const (
	SOAP11 Version = iota + 1
	SOAP12
)

func (v Version) String() string {
	if v == SOAP12 {
		return "1.2"
	}
	return "1.1"
}

// Request is a decoded SOAP request: the envelope version, the operation
// name taken from the first Body child, and the raw Body content.
type Request struct {
	Version Version
	Action  string
	payload []byte
}

// DecodeRequest parses a SOAP envelope and identifies the requested operation
func DecodeRequest(data []byte) (*Request, error) {
	var env struct {
		XMLName xml.Name
		Body    struct {
			Inner []byte `xml:",innerxml"`
		} `xml:"Body"`
	}

	if err := xml.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("malformed SOAP envelope: %w", err)
	}

	if env.XMLName.Local != "Envelope" {
		return nil, fmt.Errorf("unexpected root element %q", env.XMLName.Local)
	}

	var version Version
	switch env.XMLName.Space {
	case NamespaceSOAP11:
		version = SOAP11
	case NamespaceSOAP12:
		version = SOAP12
	default:
		return nil, fmt.Errorf("unsupported envelope namespace %q", env.XMLName.Space)
	}

	action, err := firstElementName(env.Body.Inner)
	if err != nil {
		return nil, fmt.Errorf("empty SOAP body: %w", err)
	}

	return &Request{
		Version: version,
		Action:  action.Local,
		payload: env.Body.Inner,
	}, nil
}

// Decode unmarshals the Body payload into an operation request struct.
// The target's XMLName must match the operation element.
func (r *Request) Decode(v interface{}) error {
	d := xml.NewDecoder(bytes.NewReader(r.payload))
	for {
		tok, err := d.Token()
		if err != nil {
			if err == io.EOF {
				return fmt.Errorf("empty SOAP body")
			}
			return err
		}
		if se, ok := tok.(xml.StartElement); ok {
			return d.DecodeElement(v, &se)
		}
	}
}

func firstElementName(data []byte) (xml.Name, error) {
	d := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := d.Token()
		if err != nil {
			return xml.Name{}, err
		}
		if se, ok := tok.(xml.StartElement); ok {
			return se.Name, nil
		}
	}
}

type envelope struct {
	XMLName   xml.Name `xml:"soap:Envelope"`
	Namespace string   `xml:"xmlns:soap,attr"`
	Body      envelopeBody
}

type envelopeBody struct {
	XMLName xml.Name `xml:"soap:Body"`
	Payload interface{}
}

func namespaceFor(v Version) string {
	if v == SOAP12 {
		return NamespaceSOAP12
	}
	return NamespaceSOAP11
}

func contentTypeFor(v Version) string {
	if v == SOAP12 {
		return contentTypeSOAP12
	}
	return contentTypeSOAP11
}

// WriteResponse encodes a payload inside a SOAP envelope matching the
// request version
func WriteResponse(w http.ResponseWriter, version Version, payload interface{}) error {
	return writeEnvelope(w, version, http.StatusOK, payload)
}

func writeEnvelope(w http.ResponseWriter, version Version, status int, payload interface{}) error {
	env := envelope{
		Namespace: namespaceFor(version),
		Body:      envelopeBody{Payload: payload},
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(env); err != nil {
		return err
	}

	w.Header().Set("Content-Type", contentTypeFor(version))
	w.WriteHeader(status)
	_, err := w.Write(buf.Bytes())
	return err
}
