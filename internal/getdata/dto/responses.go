package dto

import (
	"time"
)

// StatusSuccess is the conventional success status text
const StatusSuccess = "Success"

// ErrorStatus formats the conventional error status text
func ErrorStatus(message string) string {
	return "Error: " + message
}

// ResponseEnvelope carries the fields shared by every response. Concrete
// responses embed it by value; there is no response inheritance hierarchy.
type ResponseEnvelope struct {
	Timestamp time.Time `xml:"Timestamp" json:"timestamp"`
	Status    string    `xml:"Status" json:"status" validate:"notblank"`
}

// NewEnvelope stamps a response envelope with the current time
func NewEnvelope(status string) ResponseEnvelope {
	return ResponseEnvelope{
		Timestamp: time.Now().UTC(),
		Status:    status,
	}
}

// IsSuccess reports whether the response carries the success status
func (e ResponseEnvelope) IsSuccess() bool {
	return e.Status == StatusSuccess
}

// SampleDataItem is a single row of the canonical dataset
type SampleDataItem struct {
	ID   int    `xml:"ID" json:"id" validate:"gt=0"`
	Name string `xml:"Name" json:"name" validate:"min=1,max=255"`
}

// ReportDataItem is a dataset row enriched with report context
type ReportDataItem struct {
	SampleDataItem
	ReportMetadata string    `xml:"ReportMetadata" json:"report_metadata"`
	Category       string    `xml:"Category" json:"category"`
	CreatedDate    time.Time `xml:"CreatedDate" json:"created_date" validate:"notfuture"`
}

// SampleDataResponse is the structured replacement for the legacy
// GetDataSet tabular result.
type SampleDataResponse struct {
	ResponseEnvelope
	DataSetName string           `xml:"DataSetName" json:"dataset_name"`
	TableName   string           `xml:"TableName" json:"table_name"`
	Items       []SampleDataItem `xml:"Items>Item" json:"items" validate:"dive"`
}

// Count is always derived from the item collection, never stored
func (r *SampleDataResponse) Count() int {
	return len(r.Items)
}

// ReportDataResponse is the structured GetReport result
type ReportDataResponse struct {
	ResponseEnvelope
	DataSetName string           `xml:"DataSetName" json:"dataset_name"`
	TableName   string           `xml:"TableName" json:"table_name"`
	Summary     string           `xml:"Summary" json:"summary"`
	Items       []ReportDataItem `xml:"Items>Item" json:"items" validate:"dive"`
}

// Count is always derived from the item collection, never stored
func (r *ReportDataResponse) Count() int {
	return len(r.Items)
}
