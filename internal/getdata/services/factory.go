package services

import (
	"fmt"
	"time"

	"go-datasvc/internal/getdata/dto"
)

// Legacy-compatibility naming carried over from the original DataSet result
const (
	dataSetName    = "SampleDataSet"
	tableName      = "SampleTable"
	reportCategory = "Sample"
)

// canonicalItems returns the fixed two-row dataset every operation serves
func canonicalItems() []dto.SampleDataItem {
	return []dto.SampleDataItem{
		{ID: 1, Name: "Alice"},
		{ID: 2, Name: "Bob"},
	}
}

// NewSampleDataResponse builds the canonical success dataset response
func NewSampleDataResponse() *dto.SampleDataResponse {
	return &dto.SampleDataResponse{
		ResponseEnvelope: dto.NewEnvelope(dto.StatusSuccess),
		DataSetName:      dataSetName,
		TableName:        tableName,
		Items:            canonicalItems(),
	}
}

// NewErrorSampleDataResponse builds a dataset response carrying an error
// status and no items
func NewErrorSampleDataResponse(message string) *dto.SampleDataResponse {
	return &dto.SampleDataResponse{
		ResponseEnvelope: dto.NewEnvelope(dto.ErrorStatus(message)),
		DataSetName:      dataSetName,
		TableName:        tableName,
		Items:            []dto.SampleDataItem{},
	}
}

// NewReportDataResponse builds the canonical dataset enriched with report
// context. Report-specific generation never branched on the report name in
// the legacy service; the name only feeds the metadata and summary.
func NewReportDataResponse(reportName string) *dto.ReportDataResponse {
	created := time.Now().UTC()

	items := make([]dto.ReportDataItem, 0, 2)
	for _, item := range canonicalItems() {
		items = append(items, dto.ReportDataItem{
			SampleDataItem: item,
			ReportMetadata: fmt.Sprintf("Generated for report: %s", reportName),
			Category:       reportCategory,
			CreatedDate:    created,
		})
	}

	return &dto.ReportDataResponse{
		ResponseEnvelope: dto.NewEnvelope(dto.StatusSuccess),
		DataSetName:      dataSetName,
		TableName:        tableName,
		Summary:          fmt.Sprintf("Report '%s' generated with %d rows", reportName, len(items)),
		Items:            items,
	}
}

// NewErrorReportDataResponse builds a report response carrying an error
// status and no items
func NewErrorReportDataResponse(reportName, message string) *dto.ReportDataResponse {
	return &dto.ReportDataResponse{
		ResponseEnvelope: dto.NewEnvelope(dto.ErrorStatus(message)),
		DataSetName:      dataSetName,
		TableName:        tableName,
		Summary:          fmt.Sprintf("Report '%s' failed: %s", reportName, message),
		Items:            []dto.ReportDataItem{},
	}
}
