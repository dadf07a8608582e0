package common

import "testing"

func TestParseEntityKind(t *testing.T) {
	tests := []struct {
		input string
		want  EntityKind
	}{
		{"company", KindCompany},
		{"Company", KindCompany},
		{"  COMPANY  ", KindCompany},
		{"organization", KindCompany},
		{"org", KindCompany},
		{"person", KindPerson},
		{"shipment", KindShipment},
		{"warehouse", KindOther},
		{"", KindOther},
	}
	for _, tt := range tests {
		if got := ParseEntityKind(tt.input); got != tt.want {
			t.Fatalf("ParseEntityKind(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestMappable(t *testing.T) {
	if !KindCompany.Mappable() {
		t.Fatal("company records must be mappable")
	}
	for _, k := range []EntityKind{KindPerson, KindLocation, KindContact, KindProduct, KindService, KindShipment, KindOther} {
		if k.Mappable() {
			t.Fatalf("%q must not be mappable", k)
		}
	}
}
