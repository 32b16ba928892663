package models

// DefaultEventType is the SIAE programme code preset on a new borderò.
const DefaultEventType = "107-OR"

// EventInfo describes the event the borderò declares. Dates are dd-mm-yyyy text,
// times are hh:mm text; neither is parsed.
type EventInfo struct {
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
	Location  string `json:"location" validate:"required"`
	EventType string `json:"event_type" validate:"required"`
	Organizer string `json:"organizer" validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

// EventPatch is a partial EventInfo: nil fields are left untouched by Merge.
type EventPatch struct {
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	Location  *string `json:"location,omitempty"`
	EventType *string `json:"event_type,omitempty"`
	Organizer *string `json:"organizer,omitempty"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
}

func NewEventInfo() EventInfo {
	return EventInfo{EventType: DefaultEventType}
}

// Merge returns e with every field present in p replaced.
func (e EventInfo) Merge(p EventPatch) EventInfo {
	set(&e.StartDate, p.StartDate)
	set(&e.EndDate, p.EndDate)
	set(&e.Location, p.Location)
	set(&e.EventType, p.EventType)
	set(&e.Organizer, p.Organizer)
	set(&e.StartTime, p.StartTime)
	set(&e.EndTime, p.EndTime)

	return e
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
