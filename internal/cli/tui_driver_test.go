package cli

import (
	"testing"

	"github.com/alexanderramin/jornada/internal/teatest"
)

// TestDriver wraps teatest.Driver with inspection methods for appModel
// internals (view stack, shared state) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver constructs the appModel, sets terminal size, and drains
// Init().
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() *appModel {
	m := d.Model.(appModel)
	return &m
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// ViewStackIDs returns the ViewIDs of all views on the stack, bottom to top.
func (d *TestDriver) ViewStackIDs() []ViewID {
	m := d.appModel()
	ids := make([]ViewID, len(m.viewStack))
	for i, v := range m.viewStack {
		ids[i] = v.ID()
	}
	return ids
}

// State returns the shared state.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// stepIndex returns the journey index of the step with id.
func (d *TestDriver) stepIndex(id string) int {
	d.T.Helper()
	for i, s := range d.State().Journey {
		if s.ID == id {
			return i
		}
	}
	d.T.Fatalf("no journey step %q", id)
	return -1
}

// openStep moves the journey cursor to the step with id and presses Enter.
func (d *TestDriver) openStep(id string) {
	d.T.Helper()
	jv, ok := d.appModel().activeView().(*journeyView)
	if !ok {
		d.T.Fatalf("active view is %v, want journey", d.ActiveViewID())
	}
	target := d.stepIndex(id)
	for jv.cursor > target {
		d.PressUp()
	}
	for jv.cursor < target {
		d.PressDown()
	}
	d.PressEnter()
}
