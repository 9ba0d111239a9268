package model

// Field names as they appear in extracted output and missing-field lists.
const (
	FieldPolicyNumber        = "policy_number"
	FieldIncidentDate        = "incident_date"
	FieldIncidentLocation    = "incident_location"
	FieldIncidentDescription = "incident_description"
	FieldClaimantName        = "claimant_name"
	FieldClaimType           = "claim_type"
	FieldVehicleMake         = "vehicle_make"
	FieldVehicleModel        = "vehicle_model"
	FieldVIN                 = "vin"
	FieldEstimatedDamage     = "estimated_damage"
)

// MandatoryFields lists the fields whose absence forces manual review.
// The order here is the order missing fields are reported in.
var MandatoryFields = []string{
	FieldPolicyNumber,
	FieldIncidentDate,
	FieldIncidentLocation,
	FieldIncidentDescription,
	FieldClaimantName,
	FieldClaimType,
}

// ExtractedRecord is the structured result of parsing one FNOL document.
// A zero value means the field was not found; absent fields are omitted
// from JSON so callers can tell "not found" from "found but empty".
type ExtractedRecord struct {
	PolicyNumber        string   `json:"policy_number,omitempty"`
	IncidentDate        string   `json:"incident_date,omitempty"` // ISO YYYY-MM-DD
	IncidentLocation    string   `json:"incident_location,omitempty"`
	IncidentDescription string   `json:"incident_description,omitempty"`
	ClaimantName        string   `json:"claimant_name,omitempty"`
	ClaimType           string   `json:"claim_type,omitempty"`
	VehicleMake         string   `json:"vehicle_make,omitempty"`
	VehicleModel        string   `json:"vehicle_model,omitempty"`
	VIN                 string   `json:"vin,omitempty"`
	EstimatedDamage     *float64 `json:"estimated_damage,omitempty"`
}

// ClaimType is a normalized claim category.
type ClaimType string

const (
	ClaimTypeCollision ClaimType = "collision"
	ClaimTypeInjury    ClaimType = "injury"
	ClaimTypeTheft     ClaimType = "theft"
	ClaimTypeOther     ClaimType = "other"
)

// HasField reports whether the named field is present in the record.
// Presence is structural: the field was located and non-empty in the
// source text, regardless of whether it later passes a business check.
func (r *ExtractedRecord) HasField(name string) bool {
	switch name {
	case FieldPolicyNumber:
		return r.PolicyNumber != ""
	case FieldIncidentDate:
		return r.IncidentDate != ""
	case FieldIncidentLocation:
		return r.IncidentLocation != ""
	case FieldIncidentDescription:
		return r.IncidentDescription != ""
	case FieldClaimantName:
		return r.ClaimantName != ""
	case FieldClaimType:
		return r.ClaimType != ""
	case FieldVehicleMake:
		return r.VehicleMake != ""
	case FieldVehicleModel:
		return r.VehicleModel != ""
	case FieldVIN:
		return r.VIN != ""
	case FieldEstimatedDamage:
		return r.EstimatedDamage != nil
	default:
		return false
	}
}

// MissingMandatory returns the mandatory fields absent from the record,
// in declaration order.
func (r *ExtractedRecord) MissingMandatory() []string {
	missing := []string{}
	for _, name := range MandatoryFields {
		if !r.HasField(name) {
			missing = append(missing, name)
		}
	}
	return missing
}
