package dto

// SaftReportRequest are the query parameters for the audit file download.
// OrganizationID falls back to the default organization when omitted.
type SaftReportRequest struct {
	OrganizationID string `form:"organizationId"`
	ReportType     string `form:"report_type" binding:"required"`
	Year           int    `form:"year" binding:"required"`
	Month          int    `form:"month"`
	Gzip           bool   `form:"gzip"`
}

// VATRegistersRequest are the query parameters for the VAT register export.
type VATRegistersRequest struct {
	OrganizationID string `form:"organizationId"`
	Year           int    `form:"year" binding:"required"`
	Month          int    `form:"month"`
}
