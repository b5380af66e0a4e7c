package events

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/enduro/internal/cli/clitest"
	apperrors "github.com/julianstephens/enduro/internal/errors"
	"github.com/julianstephens/enduro/internal/models"
	"github.com/julianstephens/enduro/internal/storage"
)

func TestEventAddCmd(t *testing.T) {
	env := clitest.New(t)

	cmd := &EventAddCmd{
		Name:        "  Zegama  ",
		Status:      "completed",
		Distance:    models.Float(42),
		Elevation:   models.Float(2736),
		Difficulty:  4,
		Time:        "05:12:30",
		Date:        "2025-05-18",
		Completions: 1,
	}
	require.NoError(t, cmd.Run(env.Ctx))

	events := env.Events(t)
	require.Len(t, events, 1)
	e := events[0]
	assert.Equal(t, "Zegama", e.Name)
	assert.Equal(t, models.EventTypeUltra, e.Type, "configured default type")
	assert.Equal(t, models.EventStatusCompleted, e.Status)
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, clitest.Now, e.CreatedAt)
	assert.Contains(t, env.Output(), "Added event: Zegama")
}

func TestEventAddCmd_Invalid(t *testing.T) {
	env := clitest.New(t)

	cmd := &EventAddCmd{
		Name:        "",
		Type:        "Road",
		Status:      "completed",
		Distance:    models.Float(-1),
		Difficulty:  9,
		Completions: 1,
	}
	err := cmd.Run(env.Ctx)
	require.Error(t, err)
	for _, field := range []string{"name", "type", "distance", "difficulty"} {
		assert.Contains(t, err.Error(), field)
	}
	assert.Empty(t, env.Events(t))
}

func TestEventAddCmd_Upcoming(t *testing.T) {
	env := clitest.New(t)
	env.Seed(t, clitest.Wishlist("old", "Old Target", 50, 3))
	require.NoError(t, (&EventPromoteCmd{Event: "old"}).Run(env.Ctx))

	cmd := &EventAddCmd{Name: "Lavaredo", Status: "upcoming", Distance: models.Float(120), Difficulty: 5, Completions: 1}
	require.Error(t, cmd.Run(env.Ctx), "second upcoming event without --replace")
	assert.Len(t, env.Events(t), 1, "nothing stored when the upcoming slot is taken")

	cmd.Replace = true
	require.NoError(t, cmd.Run(env.Ctx))

	var upcoming []models.Event
	for _, e := range env.Events(t) {
		if e.Status == models.EventStatusUpcoming {
			upcoming = append(upcoming, e)
		}
	}
	require.Len(t, upcoming, 1)
	assert.Equal(t, "Lavaredo", upcoming[0].Name)
	require.NotNil(t, upcoming[0].TrainingPlan)
	assert.Equal(t, 16, upcoming[0].TrainingPlan.TotalWeeks)

	old := env.Event(t, "old")
	assert.Equal(t, models.EventStatusWishlist, old.Status)
	assert.Nil(t, old.TrainingPlan)
}

func TestEventPromoteCmd(t *testing.T) {
	env := clitest.New(t)
	env.Seed(t,
		clitest.Wishlist("evt-a", "Lakeland 100", 100, 5),
		clitest.Wishlist("evt-b", "Comrades", 90, 3),
		clitest.Completed("evt-c", "Zegama", "2025-05-18", 42, 2736, 4),
	)

	require.NoError(t, (&EventPromoteCmd{Event: "lakeland 100"}).Run(env.Ctx))
	a := env.Event(t, "evt-a")
	assert.Equal(t, models.EventStatusUpcoming, a.Status)
	require.NotNil(t, a.TrainingPlan)
	assert.Equal(t, 14, a.TrainingPlan.TotalWeeks)
	assert.Len(t, a.TrainingWeeks, 14)
	assert.Equal(t, 1, a.Week)
	assert.Contains(t, env.Output(), "14-week plan")

	err := (&EventPromoteCmd{Event: "evt-b"}).Run(env.Ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--replace")

	require.NoError(t, (&EventPromoteCmd{Event: "evt-b", Replace: true}).Run(env.Ctx))
	assert.Equal(t, models.EventStatusUpcoming, env.Event(t, "evt-b").Status)
	a = env.Event(t, "evt-a")
	assert.Equal(t, models.EventStatusWishlist, a.Status)
	assert.Nil(t, a.TrainingPlan)
	assert.Contains(t, env.Output(), "Moved Lakeland 100 back to the wishlist")

	assert.Error(t, (&EventPromoteCmd{Event: "evt-c"}).Run(env.Ctx), "completed events cannot be promoted")
	assert.Error(t, (&EventPromoteCmd{Event: "evt-b"}).Run(env.Ctx), "already upcoming")
}

func TestEventListCmd(t *testing.T) {
	env := clitest.New(t)
	env.Seed(t,
		clitest.Completed("evt-a", "Zegama", "2025-05-18", 42, 2736, 4),
		clitest.Wishlist("evt-b", "Comrades", 90, 3),
	)

	require.NoError(t, (&EventListCmd{}).Run(env.Ctx))
	out := env.Output()
	assert.Contains(t, out, "Zegama")
	assert.Contains(t, out, "Comrades")

	require.NoError(t, (&EventListCmd{Status: "wishlist"}).Run(env.Ctx))
	out = env.Output()
	assert.NotContains(t, out, "Zegama")
	assert.Contains(t, out, "Comrades")

	require.NoError(t, (&EventListCmd{OutputFlags: clitestFormat("json")}).Run(env.Ctx))
	assert.Contains(t, env.Output(), `"name": "Zegama"`)

	assert.Error(t, (&EventListCmd{Status: "maybe"}).Validate())
	assert.Error(t, (&EventListCmd{Type: "Road"}).Validate())
	assert.NoError(t, (&EventListCmd{Status: "completed", Type: "Urban"}).Validate())
}

func TestEventDeleteAndRestore(t *testing.T) {
	env := clitest.New(t)
	env.Seed(t, clitest.Wishlist("evt-a", "Comrades", 90, 3))

	require.NoError(t, (&EventDeleteCmd{Event: "Comrades"}).Run(env.Ctx))
	_, err := env.Ctx.Store.GetEvent("evt-a")
	assert.True(t, apperrors.IsNotFound(err))

	require.NoError(t, (&EventListCmd{Deleted: true}).Run(env.Ctx))
	assert.Contains(t, env.Output(), "Comrades")

	require.NoError(t, (&EventRestoreCmd{ID: "evt-a"}).Run(env.Ctx))
	assert.Equal(t, "Comrades", env.Event(t, "evt-a").Name)
}

func TestEventRestoreCmd_UpcomingConflict(t *testing.T) {
	env := clitest.New(t)
	env.Seed(t,
		clitest.Wishlist("evt-a", "Lakeland 100", 100, 5),
		clitest.Wishlist("evt-b", "Comrades", 90, 3),
	)

	require.NoError(t, (&EventPromoteCmd{Event: "evt-a"}).Run(env.Ctx))
	require.NoError(t, (&EventDeleteCmd{Event: "evt-a"}).Run(env.Ctx))
	require.NoError(t, (&EventPromoteCmd{Event: "evt-b"}).Run(env.Ctx))
	env.Output()

	err := (&EventRestoreCmd{ID: "evt-a"}).Run(env.Ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--replace")
	_, err = env.Ctx.Store.GetEvent("evt-a")
	assert.True(t, apperrors.IsNotFound(err), "refused restore leaves the event deleted")

	require.NoError(t, (&EventRestoreCmd{ID: "evt-a", Replace: true}).Run(env.Ctx))
	assert.Contains(t, env.Output(), "Moved Comrades back to the wishlist")

	upcoming := 0
	for _, e := range env.Events(t) {
		if e.Status == models.EventStatusUpcoming {
			upcoming++
			assert.Equal(t, "evt-a", e.ID)
		}
	}
	assert.Equal(t, 1, upcoming)
	b := env.Event(t, "evt-b")
	assert.Equal(t, models.EventStatusWishlist, b.Status)
	assert.Nil(t, b.TrainingPlan)
}

// failingUpdates rejects UpdateEvent for one event ID.
type failingUpdates struct {
	storage.Provider
	id string
}

func (s *failingUpdates) UpdateEvent(e models.Event) error {
	if e.ID == s.id {
		return errors.New("disk full")
	}
	return s.Provider.UpdateEvent(e)
}

func TestPromote_RestoresDemotedOnFailure(t *testing.T) {
	env := clitest.New(t)
	env.Seed(t,
		clitest.Wishlist("evt-a", "Lakeland 100", 100, 5),
		clitest.Wishlist("evt-b", "Comrades", 90, 3),
	)
	require.NoError(t, (&EventPromoteCmd{Event: "evt-a"}).Run(env.Ctx))

	env.Ctx.Store = &failingUpdates{Provider: env.Ctx.Store, id: "evt-b"}
	_, demoted, err := Promote(env.Ctx, env.Event(t, "evt-b"), true)
	require.Error(t, err)
	assert.Nil(t, demoted)

	a := env.Event(t, "evt-a")
	assert.Equal(t, models.EventStatusUpcoming, a.Status)
	assert.NotNil(t, a.TrainingPlan)
	assert.Equal(t, models.EventStatusWishlist, env.Event(t, "evt-b").Status)
}

func TestEventEditCmd(t *testing.T) {
	env := clitest.New(t)
	env.Seed(t, clitest.Completed("evt-a", "Zegama", "2025-05-18", 42, 2736, 4))

	name := "Zegama-Aizkorri"
	notime := ""
	require.NoError(t, (&EventEditCmd{Event: "evt-a", Name: &name, Time: &notime, ClearElevation: true}).Run(env.Ctx))

	e := env.Event(t, "evt-a")
	assert.Equal(t, name, e.Name)
	assert.Nil(t, e.Elevation)
	assert.Equal(t, 42.0, e.DistanceKm())
	assert.Equal(t, clitest.Now, e.UpdatedAt)

	require.NoError(t, (&EventEditCmd{Event: "evt-a"}).Run(env.Ctx))
	assert.Contains(t, env.Output(), "No changes specified")

	bad := 7
	assert.Error(t, (&EventEditCmd{Event: "evt-a", Difficulty: &bad}).Run(env.Ctx))
	assert.Error(t, (&EventEditCmd{ClearDistance: true, Distance: models.Float(1)}).Validate())
}

func TestEventEditCmd_RegeneratesPlan(t *testing.T) {
	env := clitest.New(t)
	env.Seed(t, clitest.Wishlist("evt-a", "Comrades", 90, 3))
	require.NoError(t, (&EventPromoteCmd{Event: "evt-a"}).Run(env.Ctx))
	assert.Equal(t, 12, env.Event(t, "evt-a").TrainingPlan.TotalWeeks)

	distance := 15.0
	easy := 1
	require.NoError(t, (&EventEditCmd{Event: "evt-a", Distance: &distance, Difficulty: &easy}).Run(env.Ctx))

	e := env.Event(t, "evt-a")
	assert.Equal(t, 8, e.TrainingPlan.TotalWeeks)
	assert.Len(t, e.TrainingWeeks, 8)
	assert.Contains(t, env.Output(), "Regenerated training plan: 8 weeks")
}

func TestEventCompleteCmd(t *testing.T) {
	env := clitest.New(t)
	env.Seed(t, clitest.Wishlist("evt-a", "Comrades", 90, 3))

	require.NoError(t, (&EventCompleteCmd{Event: "evt-a", Time: "09:00:00"}).Run(env.Ctx))
	e := env.Event(t, "evt-a")
	assert.Equal(t, models.EventStatusCompleted, e.Status)
	assert.Equal(t, "2026-10-17", e.Date, "defaults to today")
	assert.Equal(t, 1, e.Completions)
	assert.Contains(t, env.Output(), "6:00 /km")

	assert.Error(t, (&EventCompleteCmd{Event: "evt-a"}).Run(env.Ctx))
}

func TestEventRepeatCmd(t *testing.T) {
	env := clitest.New(t)
	ev := clitest.Completed("evt-a", "Zegama", "2024-05-19", 42, 2736, 4)
	ev.Time = "05:30:00"
	env.Seed(t, ev, clitest.Wishlist("evt-b", "Comrades", 90, 3))

	require.NoError(t, (&EventRepeatCmd{Event: "evt-a", Time: "05:45:00", Date: "2025-05-18"}).Run(env.Ctx))
	e := env.Event(t, "evt-a")
	assert.Equal(t, 2, e.Completions)
	assert.Equal(t, "05:30:00", e.Time, "slower repeat keeps the best time")
	assert.Equal(t, "2025-05-18", e.Date)

	require.NoError(t, (&EventRepeatCmd{Event: "evt-a", Time: "05:10:00"}).Run(env.Ctx))
	e = env.Event(t, "evt-a")
	assert.Equal(t, 3, e.Completions)
	assert.Equal(t, "05:10:00", e.Time)
	assert.Contains(t, env.Output(), "New best time: 5:10:00")

	assert.Error(t, (&EventRepeatCmd{Event: "evt-a", Time: "fast"}).Run(env.Ctx))
	assert.Error(t, (&EventRepeatCmd{Event: "evt-b"}).Run(env.Ctx), "not completed yet")
}

func TestEventImportGPXCmd(t *testing.T) {
	env := clitest.New(t)
	path := filepath.Join(t.TempDir(), "ridge-run.gpx")
	doc := `<gpx version="1.1" xmlns="http://www.topografix.com/GPX/1/1"><trk><trkseg>
<trkpt lat="0" lon="0"><ele>100</ele></trkpt>
<trkpt lat="0" lon="0.1"><ele>350</ele></trkpt>
<trkpt lat="0" lon="0.2"><ele>300</ele></trkpt>
</trkseg></trk></gpx>`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0600))

	require.NoError(t, (&EventImportGPXCmd{File: path, Difficulty: 3}).Run(env.Ctx))

	events := env.Events(t)
	require.Len(t, events, 1)
	e := events[0]
	assert.Equal(t, "ridge-run", e.Name)
	assert.Equal(t, models.EventStatusWishlist, e.Status)
	assert.InDelta(t, 22.24, e.DistanceKm(), 0.05)
	assert.Equal(t, 250.0, e.ElevationM())

	empty := filepath.Join(t.TempDir(), "empty.gpx")
	require.NoError(t, os.WriteFile(empty, []byte(`<gpx version="1.1" xmlns="http://www.topografix.com/GPX/1/1"></gpx>`), 0600))
	assert.Error(t, (&EventImportGPXCmd{File: empty, Difficulty: 3}).Run(env.Ctx))
}

func TestEventShowCmd(t *testing.T) {
	env := clitest.New(t)
	ev := clitest.Completed("0a1b2c3d-aaaa", "Zegama", "2025-05-18", 42, 2736, 4)
	ev.Time = "04:12:00"
	env.Seed(t, ev)

	require.NoError(t, (&EventShowCmd{Event: "0a1b"}).Run(env.Ctx))
	out := env.Output()
	assert.Contains(t, out, "Zegama")
	assert.Contains(t, out, "6:00 /km")
	assert.Contains(t, out, "4:12:00")

	require.NoError(t, (&EventShowCmd{Event: "Zegama", OutputFlags: clitestFormat("yaml")}).Run(env.Ctx))
	assert.Contains(t, env.Output(), "name: Zegama")

	assert.True(t, apperrors.IsNotFound((&EventShowCmd{Event: "nope"}).Run(env.Ctx)))
}
