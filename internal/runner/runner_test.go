package runner

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/menufsm/internal/fsm"
	"github.com/muurk/menufsm/internal/input"
	"github.com/muurk/menufsm/internal/options"
	"github.com/muurk/menufsm/internal/view"
)

// recordingRenderer keeps every snapshot it was asked to draw
type recordingRenderer struct {
	frames []fsm.Snapshot
	err    error
}

func (r *recordingRenderer) Render(snap fsm.Snapshot) error {
	if r.err != nil {
		return r.err
	}
	r.frames = append(r.frames, snap)
	return nil
}

func (r *recordingRenderer) Close() error { return nil }

func (r *recordingRenderer) kinds() []view.Kind {
	kinds := make([]view.Kind, len(r.frames))
	for i, f := range r.frames {
		kinds[i] = view.KindOf(f)
	}
	return kinds
}

type errSource struct{ err error }

func (s errSource) Next() (string, error) { return "", s.err }

func newRunner(t *testing.T, keys string, renderer view.Renderer) (*Runner, *fsm.Machine, *options.Registry) {
	t.Helper()
	reg := options.DefaultRegistry()
	machine, err := fsm.NewMachine(fsm.NewMenu(reg, ""))
	require.NoError(t, err)
	mapper, err := input.NewMapper(input.DefaultKeyMap())
	require.NoError(t, err)

	r, err := New(Config{
		Source:   input.NewSource(strings.NewReader(keys)),
		Mapper:   mapper,
		Machine:  machine,
		Renderer: renderer,
	})
	require.NoError(t, err)
	return r, machine, reg
}

func TestNewRequiresCollaborators(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestExitFromMenu(t *testing.T) {
	rec := &recordingRenderer{}
	// Trailing keys must never be processed
	r, machine, _ := newRunner(t, "wwewww", rec)

	require.NoError(t, r.Run())

	assert.Equal(t, 3, r.Steps())
	assert.Equal(t, fsm.StateMenuNav, machine.State())
	assert.Equal(t, 2, machine.VIndex())
	// Initial menu plus one frame per cursor move, nothing after Exit
	require.Len(t, rec.frames, 3)
	assert.Equal(t, 2, rec.frames[2].VIndex)
}

func TestEscFromMenuStopsLoop(t *testing.T) {
	rec := &recordingRenderer{}
	r, _, _ := newRunner(t, "rq", rec)

	require.NoError(t, r.Run())
	assert.Equal(t, 1, r.Steps())
	assert.Len(t, rec.frames, 1)
}

func TestClockEditScenario(t *testing.T) {
	rec := &recordingRenderer{}
	keys := "ee" + strings.Repeat("q", 15) + "r"
	r, machine, reg := newRunner(t, keys, rec)

	require.NoError(t, r.Run())

	assert.Equal(t, fsm.StateOptionNav, machine.State())
	assert.Equal(t, 0, machine.HIndex())
	assert.Equal(t, []uint8{23, 0, 0}, reg.Get("clock").Values())
	assert.Equal(t, []uint8{1, 1, 25}, reg.Get("date").Values())

	kinds := rec.kinds()
	require.Len(t, kinds, 1+2+15+1)
	assert.Equal(t, view.KindMenu, kinds[0])
	assert.Equal(t, view.KindOptions, kinds[1])
	assert.Equal(t, view.KindEdit, kinds[2])
	assert.Equal(t, view.KindEdit, kinds[17])
	assert.Equal(t, view.KindOptions, kinds[18])
}

func TestUnboundKeysAreDropped(t *testing.T) {
	rec := &recordingRenderer{}
	r, machine, _ := newRunner(t, "x\nz1w?", rec)

	require.NoError(t, r.Run())

	assert.Equal(t, 1, r.Steps())
	assert.Equal(t, 1, machine.VIndex())
	assert.Len(t, rec.frames, 2, "unbound keys must not trigger a render")
}

func TestUppercaseKeys(t *testing.T) {
	rec := &recordingRenderer{}
	r, machine, _ := newRunner(t, "WE", rec)

	require.NoError(t, r.Run())
	assert.Equal(t, fsm.StateOptionNav, machine.State())
	assert.Same(t, machine.Menu()[1].Action.(fsm.BindGroup).Group, machine.Active())
}

func TestInterruptStopsCleanly(t *testing.T) {
	rec := &recordingRenderer{}
	r, _, _ := newRunner(t, "w\x03w", rec)

	require.NoError(t, r.Run())
	assert.Equal(t, 1, r.Steps())
}

func TestReadErrorIsReturned(t *testing.T) {
	reg := options.DefaultRegistry()
	machine, err := fsm.NewMachine(fsm.NewMenu(reg, ""))
	require.NoError(t, err)
	mapper, err := input.NewMapper(input.DefaultKeyMap())
	require.NoError(t, err)

	boom := errors.New("device gone")
	r, err := New(Config{
		Source:   errSource{err: boom},
		Mapper:   mapper,
		Machine:  machine,
		Renderer: &recordingRenderer{},
	})
	require.NoError(t, err)

	assert.ErrorIs(t, r.Run(), boom)
}

func TestRenderErrorIsReturned(t *testing.T) {
	boom := errors.New("broken pipe")
	r, _, _ := newRunner(t, "w", &recordingRenderer{err: boom})

	assert.ErrorIs(t, r.Run(), boom)
}

func TestPlainOutputEndToEnd(t *testing.T) {
	var buf bytes.Buffer
	r, _, _ := newRunner(t, "ewq", view.NewPlainRenderer(&buf, false))

	require.NoError(t, r.Run())

	frames := strings.Split(buf.String(), view.ClearScreen)
	require.Len(t, frames, 5) // leading empty split + 4 frames
	assert.Equal(t, view.HideCursor+"\n=== MENU ===\n > Set Clock\n   Set Date\n   Exit\n", frames[1])
	assert.Equal(t, "\n=== OPTIONS ===\nTime: 12:00:00\n      --\n", frames[2])
	assert.Equal(t, "\n=== OPTIONS ===\nTime: 12:00:00\n         --\n", frames[3])
	assert.Equal(t, "\n=== OPTIONS ===\nTime: 12:00:00\n      --\n", frames[4])
}
