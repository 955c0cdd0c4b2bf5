package dto

import (
	"time"
)

// ReportFormat values accepted by GetReport
const (
	FormatPDF   = "PDF"
	FormatExcel = "EXCEL"
	FormatCSV   = "CSV"
	FormatXML   = "XML"
	FormatJSON  = "JSON"
)

// DefaultPriority is applied when the caller leaves Priority unset
const DefaultPriority = 5

// ReportInput is the GetReport request parameter object. It is built per
// request from the wire payload, validated once, and discarded when the
// operation completes.
type ReportInput struct {
	ReportName string `xml:"ReportName" json:"report_name" validate:"required,max=100,report_name"`

	Parameters []ReportParameter `xml:"Parameters>Parameter" json:"parameters,omitempty" validate:"max=50,dive"`

	StartDate *time.Time `xml:"StartDate" json:"start_date,omitempty"`
	EndDate   *time.Time `xml:"EndDate" json:"end_date,omitempty"`

	Format string `xml:"Format" json:"format,omitempty" validate:"omitempty,oneof=PDF EXCEL CSV XML JSON"`

	Priority int `xml:"Priority" json:"priority" validate:"min=1,max=10"`

	IsAsync           bool   `xml:"IsAsync" json:"is_async"`
	NotificationEmail string `xml:"NotificationEmail" json:"notification_email,omitempty" validate:"required_if=IsAsync true,omitempty,email"`

	Culture string `xml:"Culture" json:"culture,omitempty" validate:"omitempty,locale"`

	Metadata []MetadataEntry `xml:"Metadata>Entry" json:"metadata,omitempty" validate:"max=20,dive"`
}

// ReportParameter is one key/value pair in the report parameter map.
// The legacy contract modeled this as a dictionary; SOAP serializes it
// as a repeated element.
type ReportParameter struct {
	Key   string `xml:"Key" json:"key" validate:"required,max=100"`
	Value string `xml:"Value" json:"value"`
}

// MetadataEntry is one key/value pair of free-form report metadata
type MetadataEntry struct {
	Key   string `xml:"Key" json:"key" validate:"required,max=50"`
	Value string `xml:"Value" json:"value" validate:"max=255"`
}

// ApplyDefaults fills the legacy default values on optional fields.
// Called after decoding, before validation.
func (in *ReportInput) ApplyDefaults() {
	if in.Priority == 0 {
		in.Priority = DefaultPriority
	}
}
