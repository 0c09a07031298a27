package saft

// Schema constants for the audit file. Every literal the serializer emits
// outside of record data lives here.
const (
	// Namespace is the target namespace bound to the nsSAFT prefix
	Namespace = "mf:nra:dgti:dxxxx:declaration:v1"

	// DocNamespace is the OECD documentation namespace on the root element
	DocNamespace = "urn:schemas-OECD:schema-extensions:documentation xml:lang=en"

	// XSINamespace is the schema-instance namespace on the root element
	XSINamespace = "http://www.w3.org/2001/XMLSchema-instance"

	// SchemaVersion is the audit file version reported in the header
	SchemaVersion = "1.0.1"

	// Country is the audit file country
	Country = "BG"

	// Jurisdiction is the tax reporting jurisdiction
	Jurisdiction = "NRA"

	// Software identification reported in the header
	SoftwareCompanyName = "Fiskal"
	SoftwareID          = "Fiskal"
	SoftwareVersion     = "1.0"

	// DefaultRegionCode is used when the organization has no region set
	DefaultRegionCode = "22"

	// Default subledger accounts
	CustomerAccountID = "411"
	SupplierAccountID = "401"
	AssetAccountID    = "205"
	StockAccountID    = "302"

	// Tax registration types: with and without VAT registration
	TaxTypeVATRegistered = "100010"
	TaxTypeEIKOnly       = "100020"
)

// Header comments distinguishing the three report kinds.
const (
	headerCommentMonthly  = "M"
	headerCommentAnnual   = "A"
	headerCommentOnDemand = "D"
)
