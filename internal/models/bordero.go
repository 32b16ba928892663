package models

// Record is a point-in-time copy of a borderò: event, performer and the songs in
// ledger order.
type Record struct {
	Event     EventInfo     `json:"event"`
	Performer PerformerInfo `json:"performer"`
	Songs     []Song        `json:"songs"`
}

func NewRecord() Record {
	return Record{
		Event:     NewEventInfo(),
		Performer: NewPerformerInfo(),
		Songs:     []Song{},
	}
}

// Snapshot returns a deep copy of r that shares no slices with it.
func (r Record) Snapshot() Record {
	out := r
	out.Performer.BandMembers = append([]BandMember{}, r.Performer.BandMembers...)
	out.Songs = append([]Song{}, r.Songs...)

	return out
}
