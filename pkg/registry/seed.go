package registry

import "github.com/freightlens/resolver/pkg/common"

// Seed builds the built-in carrier registry. It backs the service whenever
// no snapshot is configured or the configured snapshot cannot be loaded.
func Seed(opts ...Option) *Registry {
	entities := []CanonicalEntity{
		{
			ID:      "comp001",
			Name:    "Bennett Truck Transport, LLC",
			Type:    "company",
			Aliases: []string{"Bennett", "BTT"},
		},
		{
			ID:      "comp002",
			Name:    "Road Masters Transportation",
			Type:    "company",
			Aliases: []string{"Road Masters", "RM Transport"},
		},
		{
			ID:      "comp003",
			Name:    "Bennett International Logistics, LLC",
			Type:    "company",
			Aliases: []string{"BIL", "Bennett International"},
		},
		{
			ID:      "comp004",
			Name:    "Steve Trucking Company",
			Type:    "company",
			Aliases: []string{"STC"},
		},
		{
			ID:      "comp005",
			Name:    "GT Express Incorporated",
			Type:    "company",
			Aliases: []string{"GT Express", "GTE"},
		},
		{
			ID:      "comp006",
			Name:    "Linbis Logistics Software",
			Type:    "company",
			Aliases: []string{"Linbis", "LLS"},
		},
	}

	changes := []NameChangeRecord{
		{
			PreviousName: "Steve's Trucking",
			CurrentName:  "Steve Trucking Company",
			EntityID:     "comp004",
			ChangeDate:   "2020-01-15",
			ChangeReason: "rebranding",
		},
		{
			PreviousName: "GT XPRESS INC",
			CurrentName:  "GT Express Incorporated",
			EntityID:     "comp005",
			ChangeDate:   "2018-06-30",
			ChangeReason: "acquisition",
		},
		{
			PreviousName: "Bennett Logistics International",
			CurrentName:  "Bennett International Logistics, LLC",
			EntityID:     "comp003",
			ChangeDate:   "2017-11-01",
			ChangeReason: "restructuring",
		},
	}

	meta := map[string]Metadata{
		"comp001": {
			Industry: "transportation",
			Address: &common.Address{
				Street:     "PO Box 569",
				City:       "McDonough",
				State:      "GA",
				PostalCode: "30253",
				Country:    "USA",
			},
			Contact: &common.ContactInfo{
				Phone: "770-957-1866",
				Fax:   "877-251-8541",
			},
		},
		"comp002": {
			Industry: "transportation",
		},
		"comp003": {
			Industry:      "logistics",
			ParentCompany: "Bennett Truck Transport, LLC",
		},
		"comp004": {
			Industry: "transportation",
			Address: &common.Address{
				Street:     "PO Box 915654",
				City:       "Kansas City",
				State:      "MO",
				PostalCode: "64111",
				Country:    "USA",
			},
			Contact: &common.ContactInfo{
				Phone: "888-564-6546",
			},
		},
		"comp005": {
			Industry: "transportation",
		},
		"comp006": {
			Industry: "logistics software",
			Address: &common.Address{
				Street:     "5406 NW 72 AVE",
				City:       "Miami",
				State:      "FL",
				PostalCode: "33166",
				Country:    "USA",
			},
			Contact: &common.ContactInfo{
				Phone:   "305-513-8555",
				Fax:     "305-513-8555",
				Email:   "info@linbis.com",
				Website: "www.linbis.com",
			},
		},
	}

	opts = append([]Option{WithMetadata(meta)}, opts...)
	return New(entities, changes, opts...)
}
