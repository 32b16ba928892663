package models

type PerformerMode string

const (
	ModeSolo PerformerMode = "solo"
	ModeBand PerformerMode = "band"
)

type BandMember struct {
	GivenName             string `json:"given_name"`
	FamilyName            string `json:"family_name"`
	CollectingSocietyRole string `json:"collecting_society_role"`
}

// PerformerInfo keeps both identifiers so switching Mode back and forth never loses
// what the user typed. Use Identity to get the one that applies.
type PerformerInfo struct {
	Mode           PerformerMode `json:"mode"`
	Performer      string        `json:"performer" validate:"required"`
	IsItalian      bool          `json:"is_italian"`
	Address        string        `json:"address" validate:"required"`
	PostalCode     string        `json:"postal_code" validate:"required"`
	Province       string        `json:"province" validate:"required"`
	Municipality   string        `json:"municipality" validate:"required"`
	PerformerTaxID string        `json:"performer_tax_id"`
	PartitaIva     string        `json:"partita_iva"`
	BandMembers    []BandMember  `json:"band_members"`
}

type PerformerPatch struct {
	Mode           *PerformerMode `json:"mode,omitempty" validate:"omitempty,oneof=solo band"`
	Performer      *string        `json:"performer,omitempty"`
	IsItalian      *bool          `json:"is_italian,omitempty"`
	Address        *string        `json:"address,omitempty"`
	PostalCode     *string        `json:"postal_code,omitempty"`
	Province       *string        `json:"province,omitempty"`
	Municipality   *string        `json:"municipality,omitempty"`
	PerformerTaxID *string        `json:"performer_tax_id,omitempty"`
	PartitaIva     *string        `json:"partita_iva,omitempty"`
	BandMembers    *[]BandMember  `json:"band_members,omitempty"`
}

func NewPerformerInfo() PerformerInfo {
	return PerformerInfo{
		Mode:        ModeSolo,
		IsItalian:   true,
		BandMembers: []BandMember{},
	}
}

// Merge returns p with every field present in patch replaced. A present
// BandMembers replaces the whole roster.
func (p PerformerInfo) Merge(patch PerformerPatch) PerformerInfo {
	set(&p.Mode, patch.Mode)
	set(&p.Performer, patch.Performer)
	set(&p.IsItalian, patch.IsItalian)
	set(&p.Address, patch.Address)
	set(&p.PostalCode, patch.PostalCode)
	set(&p.Province, patch.Province)
	set(&p.Municipality, patch.Municipality)
	set(&p.PerformerTaxID, patch.PerformerTaxID)
	set(&p.PartitaIva, patch.PartitaIva)

	if patch.BandMembers != nil {
		p.BandMembers = append([]BandMember{}, (*patch.BandMembers)...)
	} else {
		p.BandMembers = append([]BandMember{}, p.BandMembers...)
	}

	return p
}

// PerformerIdentity is the identifier set that applies to the current mode:
// SoloIdentity or BandIdentity.
type PerformerIdentity interface {
	Mode() PerformerMode
}

type SoloIdentity struct {
	TaxID string `json:"performer_tax_id" validate:"required"`
}

type BandIdentity struct {
	VATID   string       `json:"partita_iva" validate:"required"`
	Members []BandMember `json:"band_members"`
}

func (SoloIdentity) Mode() PerformerMode { return ModeSolo }

func (BandIdentity) Mode() PerformerMode { return ModeBand }

// Identity picks the identifier set for p.Mode. Any mode other than band is solo.
func (p PerformerInfo) Identity() PerformerIdentity {
	if p.Mode == ModeBand {
		return BandIdentity{VATID: p.PartitaIva, Members: p.BandMembers}
	}

	return SoloIdentity{TaxID: p.PerformerTaxID}
}
