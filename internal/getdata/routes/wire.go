package routes

import (
	"encoding/xml"
	"time"

	"go-datasvc/internal/getdata/dto"
)

// Wire shapes for the four operations. Element names and the
// http://tempuri.org/ namespace match the legacy ASMX contract exactly
// so existing clients keep working unmodified.

type helloWorldRequest struct {
	XMLName xml.Name `xml:"http://tempuri.org/ HelloWorld"`
}

type helloWorldResponse struct {
	XMLName xml.Name `xml:"http://tempuri.org/ HelloWorldResponse"`
	Result  string   `xml:"HelloWorldResult"`
}

type getDataRequest struct {
	XMLName xml.Name `xml:"http://tempuri.org/ GetData"`
	Name    string   `xml:"name"`
}

type getDataResponse struct {
	XMLName xml.Name `xml:"http://tempuri.org/ GetDataResponse"`
	Result  string   `xml:"GetDataResult"`
}

type getDataSetRequest struct {
	XMLName xml.Name `xml:"http://tempuri.org/ GetDataSet"`
}

type getDataSetResponse struct {
	XMLName xml.Name         `xml:"http://tempuri.org/ GetDataSetResponse"`
	Result  sampleDataResult `xml:"GetDataSetResult"`
}

type getReportRequest struct {
	XMLName xml.Name        `xml:"http://tempuri.org/ GetReport"`
	Input   dto.ReportInput `xml:"input"`
}

type getReportResponse struct {
	XMLName xml.Name         `xml:"http://tempuri.org/ GetReportResponse"`
	Result  reportDataResult `xml:"GetReportResult"`
}

// sampleDataResult is the serialized SampleDataResponse. Count is filled
// from the item collection at encode time; it is never stored on the DTO.
type sampleDataResult struct {
	Timestamp   time.Time            `xml:"Timestamp"`
	Status      string               `xml:"Status"`
	DataSetName string               `xml:"DataSetName"`
	TableName   string               `xml:"TableName"`
	Count       int                  `xml:"Count"`
	Items       []dto.SampleDataItem `xml:"Items>Item"`
}

type reportDataResult struct {
	Timestamp   time.Time            `xml:"Timestamp"`
	Status      string               `xml:"Status"`
	DataSetName string               `xml:"DataSetName"`
	TableName   string               `xml:"TableName"`
	Summary     string               `xml:"Summary"`
	Count       int                  `xml:"Count"`
	Items       []dto.ReportDataItem `xml:"Items>Item"`
}

func toSampleDataResult(r *dto.SampleDataResponse) sampleDataResult {
	return sampleDataResult{
		Timestamp:   r.Timestamp,
		Status:      r.Status,
		DataSetName: r.DataSetName,
		TableName:   r.TableName,
		Count:       r.Count(),
		Items:       r.Items,
	}
}

func toReportDataResult(r *dto.ReportDataResponse) reportDataResult {
	return reportDataResult{
		Timestamp:   r.Timestamp,
		Status:      r.Status,
		DataSetName: r.DataSetName,
		TableName:   r.TableName,
		Summary:     r.Summary,
		Count:       r.Count(),
		Items:       r.Items,
	}
}
