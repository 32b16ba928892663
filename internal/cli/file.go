package cli

import (
	"errors"
	"fmt"
	"os"

	"bordero/internal/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

var ErrInvalidMode = errors.New("invalid performer mode")

// borderoFile is the YAML form of a borderò. Absent keys keep the defaults of a
// new borderò.
type borderoFile struct {
	Event     eventFile     `yaml:"event"`
	Performer performerFile `yaml:"performer"`
	Songs     []songFile    `yaml:"songs"`
}

type eventFile struct {
	StartDate *string `yaml:"start_date"`
	EndDate   *string `yaml:"end_date"`
	Location  *string `yaml:"location"`
	EventType *string `yaml:"event_type"`
	Organizer *string `yaml:"organizer"`
	StartTime *string `yaml:"start_time"`
	EndTime   *string `yaml:"end_time"`
}

type performerFile struct {
	Mode           *string      `yaml:"mode"`
	Performer      *string      `yaml:"performer"`
	IsItalian      *bool        `yaml:"is_italian"`
	Address        *string      `yaml:"address"`
	PostalCode     *string      `yaml:"postal_code"`
	Province       *string      `yaml:"province"`
	Municipality   *string      `yaml:"municipality"`
	PerformerTaxID *string      `yaml:"performer_tax_id"`
	PartitaIva     *string      `yaml:"partita_iva"`
	BandMembers    []memberFile `yaml:"band_members"`
}

type memberFile struct {
	GivenName             string `yaml:"given_name"`
	FamilyName            string `yaml:"family_name"`
	CollectingSocietyRole string `yaml:"collecting_society_role"`
}

type songFile struct {
	ID        string `yaml:"id"`
	Title     string `yaml:"title"`
	Artist    string `yaml:"artist"`
	Composer  string `yaml:"composer"`
	Execution bool   `yaml:"execution"`
}

// LoadRecord reads a borderò from a YAML file.
func LoadRecord(path string) (models.Record, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return models.Record{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var f borderoFile
	if err = yaml.Unmarshal(raw, &f); err != nil {
		return models.Record{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return f.record()
}

func (f borderoFile) record() (models.Record, error) {
	r := models.NewRecord()

	r.Event = r.Event.Merge(models.EventPatch{
		StartDate: f.Event.StartDate,
		EndDate:   f.Event.EndDate,
		Location:  f.Event.Location,
		EventType: f.Event.EventType,
		Organizer: f.Event.Organizer,
		StartTime: f.Event.StartTime,
		EndTime:   f.Event.EndTime,
	})

	patch := models.PerformerPatch{
		Performer:      f.Performer.Performer,
		IsItalian:      f.Performer.IsItalian,
		Address:        f.Performer.Address,
		PostalCode:     f.Performer.PostalCode,
		Province:       f.Performer.Province,
		Municipality:   f.Performer.Municipality,
		PerformerTaxID: f.Performer.PerformerTaxID,
		PartitaIva:     f.Performer.PartitaIva,
	}

	if f.Performer.Mode != nil {
		mode := models.PerformerMode(*f.Performer.Mode)
		if mode != models.ModeSolo && mode != models.ModeBand {
			return models.Record{}, fmt.Errorf("%w: %q", ErrInvalidMode, *f.Performer.Mode)
		}
		patch.Mode = &mode
	}

	if f.Performer.BandMembers != nil {
		members := make([]models.BandMember, 0, len(f.Performer.BandMembers))
		for _, m := range f.Performer.BandMembers {
			members = append(members, models.BandMember{
				GivenName:             m.GivenName,
				FamilyName:            m.FamilyName,
				CollectingSocietyRole: m.CollectingSocietyRole,
			})
		}
		patch.BandMembers = &members
	}

	r.Performer = r.Performer.Merge(patch)

	for _, s := range f.Songs {
		id := s.ID
		if id == "" {
			id = uuid.NewString()
		}

		r.Songs = append(r.Songs, models.Song{
			ID:        id,
			Title:     s.Title,
			Artist:    s.Artist,
			Composer:  s.Composer,
			Execution: s.Execution,
		})
	}

	return r, nil
}
