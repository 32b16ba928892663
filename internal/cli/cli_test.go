package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bordero/internal/lib/layout"
	"bordero/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const completeBand = `
event:
  start_date: "14-02-2025"
  end_date: "14-02-2025"
  location: "Teatro Comunale"
  organizer: "Pro Loco"
  start_time: "21:00"
  end_time: "23:30"
performer:
  mode: band
  performer: "I Nomadi"
  is_italian: true
  address: "Via Emilia 10"
  postal_code: "42100"
  province: "RE"
  municipality: "Reggio Emilia"
  partita_iva: "01234567890"
  band_members:
    - given_name: "Beppe"
      family_name: "Carletti"
      collecting_society_role: "Esecutore"
songs:
  - title: "Io vagabondo"
    artist: "I Nomadi"
    composer: "Dattoli, Lo Vecchio"
  - id: "intro"
    title: "Jingle"
    execution: true
`

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "bordero.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestLoadRecord(t *testing.T) {
	t.Parallel()

	rec, err := LoadRecord(writeFile(t, completeBand))
	require.NoError(t, err)

	assert.Equal(t, models.DefaultEventType, rec.Event.EventType)
	assert.Equal(t, "Teatro Comunale", rec.Event.Location)
	assert.Equal(t, models.ModeBand, rec.Performer.Mode)
	assert.Equal(t, "01234567890", rec.Performer.PartitaIva)
	require.Len(t, rec.Performer.BandMembers, 1)
	assert.Equal(t, "Carletti", rec.Performer.BandMembers[0].FamilyName)

	require.Len(t, rec.Songs, 2)
	assert.NotEmpty(t, rec.Songs[0].ID)
	assert.Equal(t, "intro", rec.Songs[1].ID)
	assert.True(t, rec.Songs[1].Execution)
}

func TestLoadRecordDefaults(t *testing.T) {
	t.Parallel()

	rec, err := LoadRecord(writeFile(t, "performer:\n  performer: \"Mario Rossi\"\n"))
	require.NoError(t, err)

	assert.Equal(t, models.ModeSolo, rec.Performer.Mode)
	assert.True(t, rec.Performer.IsItalian)
	assert.Equal(t, "Mario Rossi", rec.Performer.Performer)
	assert.Empty(t, rec.Songs)
	assert.NotNil(t, rec.Songs)
}

func TestLoadRecordErrors(t *testing.T) {
	t.Parallel()

	_, err := LoadRecord(writeFile(t, "performer:\n  mode: orchestra\n"))
	assert.ErrorIs(t, err, ErrInvalidMode)

	_, err = LoadRecord(writeFile(t, "event: [unclosed"))
	assert.Error(t, err)

	_, err = LoadRecord(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidateCommand(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "validate", writeFile(t, completeBand))
	require.NoError(t, err)
	assert.Equal(t, "OK\n", stdout)

	incomplete := strings.Replace(completeBand, `  partita_iva: "01234567890"`+"\n", "", 1)

	stdout, _, err = run(t, "validate", writeFile(t, incomplete))
	assert.ErrorIs(t, err, ErrIncomplete)
	assert.Equal(t, "missing performer.partita_iva\n", stdout)
}

func TestRenderCommandJSON(t *testing.T) {
	t.Parallel()

	in := writeFile(t, completeBand)
	out := filepath.Join(t.TempDir(), "layout.json")

	stdout, _, err := run(t, "render", in, "--format", "json", "-o", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "wrote "+out)

	raw, err := os.ReadFile(out)
	require.NoError(t, err)

	var doc layout.Document
	require.NoError(t, json.Unmarshal(raw, &doc))

	rec, err := LoadRecord(in)
	require.NoError(t, err)

	assert.Equal(t, layout.LineCount(rec), len(doc.Instructions))
	assert.Equal(t, layout.Filename, doc.Filename)
}

func TestRenderCommandPDF(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "out.pdf")

	_, _, err := run(t, "render", writeFile(t, completeBand), "-o", out)
	require.NoError(t, err)

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF-")))
}

func TestRenderCommandRefusesIncomplete(t *testing.T) {
	t.Parallel()

	in := writeFile(t, "performer:\n  performer: \"Mario Rossi\"\n")
	out := filepath.Join(t.TempDir(), "out.json")

	_, stderr, err := run(t, "render", in, "--format", "json", "-o", out)
	assert.ErrorIs(t, err, ErrIncomplete)
	assert.Contains(t, stderr, "missing event.start_date")

	_, err = os.Stat(out)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = run(t, "render", in, "--format", "json", "-o", out, "--force")
	require.NoError(t, err)

	_, err = os.Stat(out)
	assert.NoError(t, err)
}

func TestRenderCommandUnknownFormat(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "render", writeFile(t, completeBand), "--format", "docx")
	assert.ErrorContains(t, err, "unsupported format")
}
