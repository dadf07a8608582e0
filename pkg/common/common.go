package common

import "strings"

// EntityKind identifies which variant of an extracted record an Entity
// carries. The set is closed; resolution only ever touches the shared
// name/alias surface, never the kind-specific payloads.
type EntityKind string

const (
	KindCompany  EntityKind = "company"
	KindPerson   EntityKind = "person"
	KindLocation EntityKind = "location"
	KindContact  EntityKind = "contact"
	KindProduct  EntityKind = "product"
	KindService  EntityKind = "service"
	KindShipment EntityKind = "shipment"
	KindOther    EntityKind = "other"
)

// Mappable reports whether records of this kind participate in registry
// resolution. The registry holds organizations, so only company records are
// matched; every other kind passes through unmapped.
func (k EntityKind) Mappable() bool {
	return k == KindCompany
}

// ParseEntityKind maps a free-form type string from an upstream extractor to
// a known kind. Unknown values become KindOther.
func ParseEntityKind(s string) EntityKind {
	switch k := EntityKind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindCompany, KindPerson, KindLocation, KindContact, KindProduct, KindService, KindShipment, KindOther:
		return k
	case "organization", "org":
		return KindCompany
	default:
		return KindOther
	}
}

// Entity is a candidate record handed over by the document-extraction
// collaborator. Name is required and non-empty; everything else is optional
// metadata that resolution carries through untouched.
type Entity struct {
	ID          string            `json:"id,omitempty"`
	Name        string            `json:"name"`
	Kind        EntityKind        `json:"type"`
	Aliases     []string          `json:"aliases,omitempty"`
	Description string            `json:"description,omitempty"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	Confidence  float64           `json:"confidence,omitempty"`

	Company  *CompanyDetails  `json:"company,omitempty"`
	Person   *PersonDetails   `json:"person,omitempty"`
	Location *LocationDetails `json:"location,omitempty"`
	Shipment *ShipmentDetails `json:"shipment,omitempty"`
}

// Address is a structured postal address.
type Address struct {
	FullAddress string `json:"full_address,omitempty"`
	Street      string `json:"street,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	PostalCode  string `json:"postal_code,omitempty"`
	Country     string `json:"country,omitempty"`
}

// ContactInfo holds ways to reach an entity.
type ContactInfo struct {
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Fax     string `json:"fax,omitempty"`
	Website string `json:"website,omitempty"`
}

// CompanyDetails is the payload of a KindCompany record.
type CompanyDetails struct {
	Industry      string       `json:"industry,omitempty"`
	FoundingDate  string       `json:"founding_date,omitempty"`
	Address       *Address     `json:"address,omitempty"`
	Contact       *ContactInfo `json:"contact,omitempty"`
	ParentCompany string       `json:"parent_company,omitempty"`
	Subsidiaries  []string     `json:"subsidiaries,omitempty"`
}

// PersonDetails is the payload of a KindPerson record.
type PersonDetails struct {
	Title        string       `json:"title,omitempty"`
	Organization string       `json:"organization,omitempty"`
	Contact      *ContactInfo `json:"contact,omitempty"`
}

// LocationDetails is the payload of a KindLocation record.
type LocationDetails struct {
	Address      *Address     `json:"address,omitempty"`
	Contact      *ContactInfo `json:"contact,omitempty"`
	LocationType string       `json:"location_type,omitempty"`
}

// ReferenceNumbers groups the identifiers a shipping document may carry.
type ReferenceNumbers struct {
	OrderNumber      string `json:"order_number,omitempty"`
	BOLNumber        string `json:"bol_number,omitempty"`
	TrackingNumber   string `json:"tracking_number,omitempty"`
	ProNumber        string `json:"pro_number,omitempty"`
	LoadNumber       string `json:"load_number,omitempty"`
	CarrierReference string `json:"carrier_reference,omitempty"`
}

// ShipmentDates holds the milestone dates of a shipment.
type ShipmentDates struct {
	Pickup            string `json:"pickup,omitempty"`
	Delivery          string `json:"delivery,omitempty"`
	Created           string `json:"created,omitempty"`
	EstimatedDelivery string `json:"estimated_delivery,omitempty"`
}

// CargoDetails describes what is being shipped.
type CargoDetails struct {
	Description         string `json:"description,omitempty"`
	Quantity            string `json:"quantity,omitempty"`
	Weight              string `json:"weight,omitempty"`
	Dimensions          string `json:"dimensions,omitempty"`
	Hazardous           bool   `json:"hazardous,omitempty"`
	SpecialInstructions string `json:"special_instructions,omitempty"`
}

// FinancialDetails holds the monetary fields of a shipment.
type FinancialDetails struct {
	TotalCharges      string            `json:"total_charges,omitempty"`
	LineHaul          string            `json:"line_haul,omitempty"`
	FuelSurcharge     string            `json:"fuel_surcharge,omitempty"`
	AdditionalCharges map[string]string `json:"additional_charges,omitempty"`
	PaymentTerms      string            `json:"payment_terms,omitempty"`
	Currency          string            `json:"currency,omitempty"`
}

// ShipmentDetails is the payload of a KindShipment record.
type ShipmentDetails struct {
	ReferenceNumbers *ReferenceNumbers `json:"reference_numbers,omitempty"`
	Dates            *ShipmentDates    `json:"dates,omitempty"`
	Origin           string            `json:"origin,omitempty"`
	Destination      string            `json:"destination,omitempty"`
	Carrier          string            `json:"carrier,omitempty"`
	Shipper          string            `json:"shipper,omitempty"`
	Consignee        string            `json:"consignee,omitempty"`
	Cargo            *CargoDetails     `json:"cargo,omitempty"`
	Financial        *FinancialDetails `json:"financial,omitempty"`
	Status           string            `json:"status,omitempty"`
	DocumentType     string            `json:"document_type,omitempty"`
}
