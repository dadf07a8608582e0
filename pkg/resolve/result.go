package resolve

// Method identifies which resolution stage produced a result.
type Method string

const (
	MethodExact      Method = "exact_match"
	MethodNameChange Method = "name_change"
	MethodFuzzy      Method = "fuzzy_match"
	MethodSemantic   Method = "semantic_match"
	MethodNoMatch    Method = "no_match"
)

// NameChange is the audit copy of a name-change record attached to a result
// resolved through a previous name.
type NameChange struct {
	PreviousName string `json:"previous_name"`
	CurrentName  string `json:"current_name"`
	ChangeDate   string `json:"change_date"`
	ChangeReason string `json:"change_reason,omitempty"`
}

// MappingResult is the outcome of resolving one candidate name against the
// registry. OriginalName always echoes the input verbatim so callers can
// correlate batch results with their requests.
type MappingResult struct {
	OriginalName       string      `json:"original_name"`
	MatchedEntityID    string      `json:"matched_entity_id,omitempty"`
	MatchedEntityName  string      `json:"matched_entity_name,omitempty"`
	Confidence         float64     `json:"confidence"`
	Method             Method      `json:"method"`
	NameChangeDetected bool        `json:"name_change_detected"`
	NameChange         *NameChange `json:"name_change,omitempty"`
}

// Matched reports whether the result identifies a registry entity.
func (r MappingResult) Matched() bool {
	return r.Method != MethodNoMatch && r.MatchedEntityID != ""
}
