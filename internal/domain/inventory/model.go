// Package inventory provides stock movements and physical stock derivation.
package inventory

import (
	"context"
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"fiskal/internal/core/apperror"
	"fiskal/internal/core/entity"
	"fiskal/internal/core/id"
)

// MovementType classifies a stock movement. The set is closed: every switch
// over MovementType must handle all four values.
type MovementType uint8

const (
	MovementPurchase MovementType = iota + 1
	MovementSale
	MovementAdjustment
	MovementTransfer
)

// String returns the stable wire name of the movement type.
func (t MovementType) String() string {
	switch t {
	case MovementPurchase:
		return "purchase"
	case MovementSale:
		return "sale"
	case MovementAdjustment:
		return "adjustment"
	case MovementTransfer:
		return "transfer"
	}
	return fmt.Sprintf("MovementType(%d)", uint8(t))
}

// ParseMovementType converts a wire name into a MovementType.
func ParseMovementType(s string) (MovementType, error) {
	switch s {
	case "purchase":
		return MovementPurchase, nil
	case "sale":
		return MovementSale, nil
	case "adjustment":
		return MovementAdjustment, nil
	case "transfer":
		return MovementTransfer, nil
	}
	return 0, fmt.Errorf("unknown movement type %q", s)
}

// Value implements driver.Valuer (stored as text).
func (t MovementType) Value() (driver.Value, error) {
	switch t {
	case MovementPurchase, MovementSale, MovementAdjustment, MovementTransfer:
		return t.String(), nil
	}
	return nil, fmt.Errorf("invalid movement type %d", uint8(t))
}

// Scan implements sql.Scanner.
func (t *MovementType) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into inventory.MovementType", src)
	}
	parsed, err := ParseMovementType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalJSON renders the type as its wire name.
func (t MovementType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON parses the wire name.
func (t *MovementType) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("movement type must be a JSON string")
	}
	parsed, err := ParseMovementType(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// IsIncoming reports whether the movement increases stock.
// Adjustments increase or decrease depending on quantity sign convention;
// they are recorded as incoming with the signed value.
func (t MovementType) IsIncoming() bool {
	switch t {
	case MovementPurchase, MovementAdjustment:
		return true
	case MovementSale, MovementTransfer:
		return false
	}
	return false
}

// IsOutgoing reports whether the movement decreases stock.
func (t MovementType) IsOutgoing() bool {
	switch t {
	case MovementSale, MovementTransfer:
		return true
	case MovementPurchase, MovementAdjustment:
		return false
	}
	return false
}

// StockMovement records goods entering or leaving a warehouse.
type StockMovement struct {
	entity.BaseDocument

	OrganizationID id.ID `db:"organization_id" json:"organizationId"`

	ProductID   id.ID  `db:"product_id" json:"productId"`
	ProductCode string `db:"product_code" json:"productCode"`

	Warehouse string `db:"warehouse" json:"warehouse"`

	MovementType MovementType `db:"movement_type" json:"movementType"`

	// Quantity is always >= 0; direction comes from the movement type
	Quantity decimal.Decimal `db:"quantity" json:"quantity"`

	// Unit is the unit-of-measure code
	Unit string `db:"unit" json:"unit"`

	MovementDate time.Time `db:"movement_date" json:"movementDate"`

	UnitPrice decimal.Decimal `db:"unit_price" json:"unitPrice"`
	Value     decimal.Decimal `db:"value" json:"value"`

	// DocumentRef references the source document
	DocumentRef *string `db:"document_ref" json:"documentRef,omitempty"`
}

// NewStockMovement creates a stock movement with required fields.
func NewStockMovement(orgID, productID id.ID, movementType MovementType, quantity decimal.Decimal, date time.Time) *StockMovement {
	return &StockMovement{
		BaseDocument:   entity.NewBaseDocument(),
		OrganizationID: orgID,
		ProductID:      productID,
		MovementType:   movementType,
		Quantity:       quantity,
		MovementDate:   date,
		UnitPrice:      decimal.Zero,
		Value:          decimal.Zero,
	}
}

// Validate implements entity.Validatable interface.
func (m *StockMovement) Validate(ctx context.Context) error {
	if id.IsNil(m.OrganizationID) {
		return apperror.NewValidation("organization is required").
			WithDetail("field", "organizationId")
	}
	if id.IsNil(m.ProductID) {
		return apperror.NewValidation("product is required").
			WithDetail("field", "productId")
	}
	if _, err := m.MovementType.Value(); err != nil {
		return apperror.NewValidation("invalid movement type").
			WithDetail("field", "movementType")
	}
	if m.Quantity.IsNegative() {
		return apperror.NewValidation("quantity cannot be negative").
			WithDetail("field", "quantity")
	}
	if m.MovementDate.IsZero() {
		return apperror.NewValidation("movement date is required").
			WithDetail("field", "movementDate")
	}
	return nil
}
