// Package layout turns a borderò snapshot into the positioned text lines of the
// printed form.
//
// The form is a single page laid out top to bottom with a fixed cursor step:
// nothing is measured, wrapped or paginated. Coordinates are millimetres from
// the top-left corner of the page.
package layout

import (
	"fmt"

	"bordero/internal/models"
)

// Filename is the name the document is saved under.
const Filename = "bordero.pdf"

const (
	marginX = 10.0
	memberX = 12.0
	startY  = 10.0

	lineStep    = 5.0
	sectionStep = 10.0

	titleFontSize   = 16.0
	sectionFontSize = 14.0
	bodyFontSize    = 12.0
)

// Instruction draws Text with its baseline at (X, Y).
type Instruction struct {
	Text     string  `json:"text"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	FontSize float64 `json:"font_size"`
}

type Document struct {
	Filename     string        `json:"filename"`
	Instructions []Instruction `json:"instructions"`
}

// line is drawn at the current cursor, which then moves down by advance.
type line struct {
	text    string
	x       float64
	size    float64
	advance float64
}

// section is a run of lines preceded by a vertical gap.
type section struct {
	gap   float64
	lines []line
}

// Render lays out r. It never fails: an incomplete record renders with blank
// values, so callers gate on validation before exporting.
func Render(r models.Record) Document {
	secs := sections(r)

	doc := Document{
		Filename:     Filename,
		Instructions: make([]Instruction, 0, countLines(secs)),
	}

	y := startY
	for _, s := range secs {
		y += s.gap
		for _, l := range s.lines {
			doc.Instructions = append(doc.Instructions, Instruction{
				Text:     l.text,
				X:        l.x,
				Y:        y,
				FontSize: l.size,
			})
			y += l.advance
		}
	}

	return doc
}

// LineCount is the number of instructions Render produces for r.
func LineCount(r models.Record) int {
	return countLines(sections(r))
}

func countLines(secs []section) int {
	n := 0
	for _, s := range secs {
		n += len(s.lines)
	}
	return n
}

func sections(r models.Record) []section {
	return []section{
		header(r.Event),
		performer(r.Performer),
		tracks(r.Songs),
	}
}

func header(e models.EventInfo) section {
	return section{lines: []line{
		{text: fmt.Sprintf("%s - %s", LabelBordero, e.EventType), x: marginX, size: titleFontSize, advance: sectionStep},
		{text: fmt.Sprintf("%s: %s / %s", LabelDate, e.StartDate, e.EndDate), x: marginX, size: bodyFontSize, advance: lineStep},
		{text: fmt.Sprintf("%s: %s - %s", LabelTime, e.StartTime, e.EndTime), x: marginX, size: bodyFontSize, advance: lineStep},
		{text: fmt.Sprintf("%s: %s", LabelLocation, e.Location), x: marginX, size: bodyFontSize, advance: sectionStep},
		{text: fmt.Sprintf("%s: %s", LabelOrganizer, e.Organizer), x: marginX, size: bodyFontSize, advance: sectionStep},
	}}
}

func performer(p models.PerformerInfo) section {
	var s section

	switch id := p.Identity().(type) {
	case models.BandIdentity:
		s.lines = append(s.lines, heading(LabelBandSection), field(LabelBandName, p.Performer))
		s.lines = append(s.lines, common(p)...)
		s.lines = append(s.lines, field(LabelPartitaIva, id.VATID))

		if len(id.Members) > 0 {
			s.lines = append(s.lines, line{
				text:    LabelBandMembers + ":",
				x:       marginX,
				size:    bodyFontSize,
				advance: sectionStep,
			})
			for _, m := range id.Members {
				s.lines = append(s.lines, member(m))
			}
		}
	case models.SoloIdentity:
		s.lines = append(s.lines, heading(LabelSoloSection), field(LabelName, p.Performer))
		s.lines = append(s.lines, common(p)...)
		s.lines = append(s.lines, field(LabelTaxID, id.TaxID))
	}

	return s
}

func common(p models.PerformerInfo) []line {
	return []line{
		field(LabelItalian, yesNo(p.IsItalian)),
		field(LabelAddress, p.Address),
		field(LabelPostalCode, p.PostalCode),
		field(LabelProvince, p.Province),
		field(LabelMunicipality, p.Municipality),
	}
}

func member(m models.BandMember) line {
	return line{
		text:    fmt.Sprintf("  - %s %s (%s)", m.GivenName, m.FamilyName, m.CollectingSocietyRole),
		x:       memberX,
		size:    bodyFontSize,
		advance: lineStep,
	}
}

func tracks(songs []models.Song) section {
	s := section{
		gap:   sectionStep,
		lines: make([]line, 0, len(songs)+1),
	}

	s.lines = append(s.lines, heading(LabelTracks))

	for i, song := range songs {
		s.lines = append(s.lines, line{
			text:    SongLine(i+1, song),
			x:       marginX,
			size:    bodyFontSize,
			advance: lineStep,
		})
	}

	return s
}

// SongLine formats the n-th (1-based) entry of the track list.
func SongLine(n int, s models.Song) string {
	return fmt.Sprintf("%d. %s - %s (%s: %s), %s", n, s.Title, s.Artist, LabelComposers, s.Composer, duration(s.Execution))
}

func duration(short bool) string {
	if short {
		return LabelShortExecution
	}
	return LabelFullExecution
}

func yesNo(b bool) string {
	if b {
		return LabelYes
	}
	return LabelNo
}

func heading(label string) line {
	return line{
		text:    "--- " + label + " ---",
		x:       marginX,
		size:    sectionFontSize,
		advance: sectionStep,
	}
}

func field(label, value string) line {
	return line{
		text:    label + ": " + value,
		x:       marginX,
		size:    bodyFontSize,
		advance: lineStep,
	}
}
