package routes

import (
	"fmt"
)

// ServiceWSDL renders the service description with the given endpoint
// address. The document mirrors the legacy ASMX-generated WSDL: same
// target namespace, operation names, and message shapes.
func ServiceWSDL(endpointURL string) string {
	return fmt.Sprintf(wsdlTemplate, endpointURL, endpointURL)
}

const wsdlTemplate = `<?xml version="1.0" encoding="utf-8"?>
<wsdl:definitions xmlns:wsdl="http://schemas.xmlsoap.org/wsdl/"
                  xmlns:soap="http://schemas.xmlsoap.org/wsdl/soap/"
                  xmlns:soap12="http://schemas.xmlsoap.org/wsdl/soap12/"
                  xmlns:s="http://www.w3.org/2001/XMLSchema"
                  xmlns:tns="http://tempuri.org/"
                  targetNamespace="http://tempuri.org/">
  <wsdl:types>
    <s:schema elementFormDefault="qualified" targetNamespace="http://tempuri.org/">
      <s:element name="HelloWorld">
        <s:complexType/>
      </s:element>
      <s:element name="HelloWorldResponse">
        <s:complexType>
          <s:sequence>
            <s:element minOccurs="0" maxOccurs="1" name="HelloWorldResult" type="s:string"/>
          </s:sequence>
        </s:complexType>
      </s:element>
      <s:element name="GetData">
        <s:complexType>
          <s:sequence>
            <s:element minOccurs="0" maxOccurs="1" name="name" type="s:string"/>
          </s:sequence>
        </s:complexType>
      </s:element>
      <s:element name="GetDataResponse">
        <s:complexType>
          <s:sequence>
            <s:element minOccurs="0" maxOccurs="1" name="GetDataResult" type="s:string"/>
          </s:sequence>
        </s:complexType>
      </s:element>
      <s:element name="GetDataSet">
        <s:complexType/>
      </s:element>
      <s:element name="GetDataSetResponse">
        <s:complexType>
          <s:sequence>
            <s:element minOccurs="0" maxOccurs="1" name="GetDataSetResult" type="tns:SampleDataResponse"/>
          </s:sequence>
        </s:complexType>
      </s:element>
      <s:element name="GetReport">
        <s:complexType>
          <s:sequence>
            <s:element minOccurs="0" maxOccurs="1" name="input" type="tns:ReportInput"/>
          </s:sequence>
        </s:complexType>
      </s:element>
      <s:element name="GetReportResponse">
        <s:complexType>
          <s:sequence>
            <s:element minOccurs="0" maxOccurs="1" name="GetReportResult" type="tns:ReportDataResponse"/>
          </s:sequence>
        </s:complexType>
      </s:element>
      <s:complexType name="ReportInput">
        <s:sequence>
          <s:element minOccurs="1" maxOccurs="1" name="ReportName" type="s:string"/>
          <s:element minOccurs="0" maxOccurs="1" name="Parameters" type="tns:ArrayOfParameter"/>
          <s:element minOccurs="0" maxOccurs="1" name="StartDate" type="s:dateTime"/>
          <s:element minOccurs="0" maxOccurs="1" name="EndDate" type="s:dateTime"/>
          <s:element minOccurs="0" maxOccurs="1" name="Format" type="s:string"/>
          <s:element minOccurs="0" maxOccurs="1" name="Priority" type="s:int"/>
          <s:element minOccurs="0" maxOccurs="1" name="IsAsync" type="s:boolean"/>
          <s:element minOccurs="0" maxOccurs="1" name="NotificationEmail" type="s:string"/>
          <s:element minOccurs="0" maxOccurs="1" name="Culture" type="s:string"/>
          <s:element minOccurs="0" maxOccurs="1" name="Metadata" type="tns:ArrayOfMetadataEntry"/>
        </s:sequence>
      </s:complexType>
      <s:complexType name="ArrayOfParameter">
        <s:sequence>
          <s:element minOccurs="0" maxOccurs="unbounded" name="Parameter" type="tns:KeyValueEntry"/>
        </s:sequence>
      </s:complexType>
      <s:complexType name="ArrayOfMetadataEntry">
        <s:sequence>
          <s:element minOccurs="0" maxOccurs="unbounded" name="Entry" type="tns:KeyValueEntry"/>
        </s:sequence>
      </s:complexType>
      <s:complexType name="KeyValueEntry">
        <s:sequence>
          <s:element minOccurs="1" maxOccurs="1" name="Key" type="s:string"/>
          <s:element minOccurs="0" maxOccurs="1" name="Value" type="s:string"/>
        </s:sequence>
      </s:complexType>
      <s:complexType name="SampleDataItem">
        <s:sequence>
          <s:element minOccurs="1" maxOccurs="1" name="ID" type="s:int"/>
          <s:element minOccurs="1" maxOccurs="1" name="Name" type="s:string"/>
        </s:sequence>
      </s:complexType>
      <s:complexType name="ReportDataItem">
        <s:complexContent>
          <s:extension base="tns:SampleDataItem">
            <s:sequence>
              <s:element minOccurs="0" maxOccurs="1" name="ReportMetadata" type="s:string"/>
              <s:element minOccurs="0" maxOccurs="1" name="Category" type="s:string"/>
              <s:element minOccurs="1" maxOccurs="1" name="CreatedDate" type="s:dateTime"/>
            </s:sequence>
          </s:extension>
        </s:complexContent>
      </s:complexType>
      <s:complexType name="SampleDataResponse">
        <s:sequence>
          <s:element minOccurs="1" maxOccurs="1" name="Timestamp" type="s:dateTime"/>
          <s:element minOccurs="1" maxOccurs="1" name="Status" type="s:string"/>
          <s:element minOccurs="0" maxOccurs="1" name="DataSetName" type="s:string"/>
          <s:element minOccurs="0" maxOccurs="1" name="TableName" type="s:string"/>
          <s:element minOccurs="1" maxOccurs="1" name="Count" type="s:int"/>
          <s:element minOccurs="0" maxOccurs="1" name="Items" type="tns:ArrayOfSampleDataItem"/>
        </s:sequence>
      </s:complexType>
      <s:complexType name="ReportDataResponse">
        <s:sequence>
          <s:element minOccurs="1" maxOccurs="1" name="Timestamp" type="s:dateTime"/>
          <s:element minOccurs="1" maxOccurs="1" name="Status" type="s:string"/>
          <s:element minOccurs="0" maxOccurs="1" name="DataSetName" type="s:string"/>
          <s:element minOccurs="0" maxOccurs="1" name="TableName" type="s:string"/>
          <s:element minOccurs="0" maxOccurs="1" name="Summary" type="s:string"/>
          <s:element minOccurs="1" maxOccurs="1" name="Count" type="s:int"/>
          <s:element minOccurs="0" maxOccurs="1" name="Items" type="tns:ArrayOfReportDataItem"/>
        </s:sequence>
      </s:complexType>
      <s:complexType name="ArrayOfSampleDataItem">
        <s:sequence>
          <s:element minOccurs="0" maxOccurs="unbounded" name="Item" type="tns:SampleDataItem"/>
        </s:sequence>
      </s:complexType>
      <s:complexType name="ArrayOfReportDataItem">
        <s:sequence>
          <s:element minOccurs="0" maxOccurs="unbounded" name="Item" type="tns:ReportDataItem"/>
        </s:sequence>
      </s:complexType>
    </s:schema>
  </wsdl:types>
  <wsdl:message name="HelloWorldSoapIn">
    <wsdl:part name="parameters" element="tns:HelloWorld"/>
  </wsdl:message>
  <wsdl:message name="HelloWorldSoapOut">
    <wsdl:part name="parameters" element="tns:HelloWorldResponse"/>
  </wsdl:message>
  <wsdl:message name="GetDataSoapIn">
    <wsdl:part name="parameters" element="tns:GetData"/>
  </wsdl:message>
  <wsdl:message name="GetDataSoapOut">
    <wsdl:part name="parameters" element="tns:GetDataResponse"/>
  </wsdl:message>
  <wsdl:message name="GetDataSetSoapIn">
    <wsdl:part name="parameters" element="tns:GetDataSet"/>
  </wsdl:message>
  <wsdl:message name="GetDataSetSoapOut">
    <wsdl:part name="parameters" element="tns:GetDataSetResponse"/>
  </wsdl:message>
  <wsdl:message name="GetReportSoapIn">
    <wsdl:part name="parameters" element="tns:GetReport"/>
  </wsdl:message>
  <wsdl:message name="GetReportSoapOut">
    <wsdl:part name="parameters" element="tns:GetReportResponse"/>
  </wsdl:message>
  <wsdl:portType name="GetDataServiceSoap">
    <wsdl:operation name="HelloWorld">
      <wsdl:input message="tns:HelloWorldSoapIn"/>
      <wsdl:output message="tns:HelloWorldSoapOut"/>
    </wsdl:operation>
    <wsdl:operation name="GetData">
      <wsdl:input message="tns:GetDataSoapIn"/>
      <wsdl:output message="tns:GetDataSoapOut"/>
    </wsdl:operation>
    <wsdl:operation name="GetDataSet">
      <wsdl:input message="tns:GetDataSetSoapIn"/>
      <wsdl:output message="tns:GetDataSetSoapOut"/>
    </wsdl:operation>
    <wsdl:operation name="GetReport">
      <wsdl:input message="tns:GetReportSoapIn"/>
      <wsdl:output message="tns:GetReportSoapOut"/>
    </wsdl:operation>
  </wsdl:portType>
  <wsdl:binding name="GetDataServiceSoap" type="tns:GetDataServiceSoap">
    <soap:binding transport="http://schemas.xmlsoap.org/soap/http"/>
    <wsdl:operation name="HelloWorld">
      <soap:operation soapAction="http://tempuri.org/HelloWorld" style="document"/>
      <wsdl:input><soap:body use="literal"/></wsdl:input>
      <wsdl:output><soap:body use="literal"/></wsdl:output>
    </wsdl:operation>
    <wsdl:operation name="GetData">
      <soap:operation soapAction="http://tempuri.org/GetData" style="document"/>
      <wsdl:input><soap:body use="literal"/></wsdl:input>
      <wsdl:output><soap:body use="literal"/></wsdl:output>
    </wsdl:operation>
    <wsdl:operation name="GetDataSet">
      <soap:operation soapAction="http://tempuri.org/GetDataSet" style="document"/>
      <wsdl:input><soap:body use="literal"/></wsdl:input>
      <wsdl:output><soap:body use="literal"/></wsdl:output>
    </wsdl:operation>
    <wsdl:operation name="GetReport">
      <soap:operation soapAction="http://tempuri.org/GetReport" style="document"/>
      <wsdl:input><soap:body use="literal"/></wsdl:input>
      <wsdl:output><soap:body use="literal"/></wsdl:output>
    </wsdl:operation>
  </wsdl:binding>
  <wsdl:binding name="GetDataServiceSoap12" type="tns:GetDataServiceSoap">
    <soap12:binding transport="http://schemas.xmlsoap.org/soap/http"/>
    <wsdl:operation name="HelloWorld">
      <soap12:operation soapAction="http://tempuri.org/HelloWorld" style="document"/>
      <wsdl:input><soap12:body use="literal"/></wsdl:input>
      <wsdl:output><soap12:body use="literal"/></wsdl:output>
    </wsdl:operation>
    <wsdl:operation name="GetData">
      <soap12:operation soapAction="http://tempuri.org/GetData" style="document"/>
      <wsdl:input><soap12:body use="literal"/></wsdl:input>
      <wsdl:output><soap12:body use="literal"/></wsdl:output>
    </wsdl:operation>
    <wsdl:operation name="GetDataSet">
      <soap12:operation soapAction="http://tempuri.org/GetDataSet" style="document"/>
      <wsdl:input><soap12:body use="literal"/></wsdl:input>
      <wsdl:output><soap12:body use="literal"/></wsdl:output>
    </wsdl:operation>
    <wsdl:operation name="GetReport">
      <soap12:operation soapAction="http://tempuri.org/GetReport" style="document"/>
      <wsdl:input><soap12:body use="literal"/></wsdl:input>
      <wsdl:output><soap12:body use="literal"/></wsdl:output>
    </wsdl:operation>
  </wsdl:binding>
  <wsdl:service name="GetDataService">
    <wsdl:port name="GetDataServiceSoap" binding="tns:GetDataServiceSoap">
      <soap:address location="%s"/>
    </wsdl:port>
    <wsdl:port name="GetDataServiceSoap12" binding="tns:GetDataServiceSoap12">
      <soap12:address location="%s"/>
    </wsdl:port>
  </wsdl:service>
</wsdl:definitions>
`
