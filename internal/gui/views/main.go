package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/berrythewa/clipcycle/internal/types"
	"github.com/berrythewa/clipcycle/pkg/format"
)

// Slot is the rendered state of one history label
type Slot struct {
	Text   string
	Active bool
	Used   bool
}

// RenderSlots turns a snapshot into exactly snap.Capacity slots, oldest
// first. Slots past the end of the history are blank.
func RenderSlots(snap types.Snapshot, maxLen int) []Slot {
	n := snap.Capacity
	if n < snap.Len() {
		n = snap.Len()
	}

	slots := make([]Slot, n)
	for i, entry := range snap.Entries {
		preview := format.Preview(entry, maxLen)
		if snap.IsActive(i) {
			slots[i] = Slot{Text: format.ActiveMarker + preview, Active: true, Used: true}
			continue
		}
		slots[i] = Slot{Text: format.InactiveMarker + preview, Used: true}
	}
	return slots
}

// MainView is the history window content: a title, one label per slot and a
// clear button.
type MainView struct {
	title       *widget.Label
	slots       []*widget.Label
	clearButton *widget.Button
	content     fyne.CanvasObject
}

// NewMainView creates a view with capacity slot labels. onClear runs when
// the "Clear History" button is tapped.
func NewMainView(title string, capacity int, onClear func()) *MainView {
	v := &MainView{
		title: widget.NewLabelWithStyle(title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
	}
	v.title.Importance = widget.SuccessImportance

	rows := []fyne.CanvasObject{v.title}
	for i := 0; i < capacity; i++ {
		lbl := widget.NewLabel("")
		lbl.Truncation = fyne.TextTruncateEllipsis
		v.slots = append(v.slots, lbl)
		rows = append(rows, lbl)
	}

	v.clearButton = widget.NewButton("Clear History", onClear)
	rows = append(rows, container.NewCenter(v.clearButton))

	v.content = container.NewPadded(container.NewVBox(rows...))
	return v
}

// Content returns the root canvas object
func (v *MainView) Content() fyne.CanvasObject {
	return v.content
}

// Update applies rendered slots to the labels. Must run on the fyne thread.
func (v *MainView) Update(slots []Slot) {
	for i, lbl := range v.slots {
		var s Slot
		if i < len(slots) {
			s = slots[i]
		}

		switch {
		case s.Active:
			lbl.Importance = widget.SuccessImportance
		case s.Used:
			lbl.Importance = widget.MediumImportance
		default:
			lbl.Importance = widget.LowImportance
		}
		lbl.SetText(s.Text)
	}
}

// SlotTexts returns the current label texts
func (v *MainView) SlotTexts() []string {
	texts := make([]string, len(v.slots))
	for i, lbl := range v.slots {
		texts[i] = lbl.Text
	}
	return texts
}

// ClearButton returns the clear button
func (v *MainView) ClearButton() *widget.Button {
	return v.clearButton
}
