package widgets

type Display int

const (
	DisplayBlock Display = iota
	DisplayNone
)

func (d Display) String() string {
	if d == DisplayNone {
		return "none"
	}
	return "block"
}

// Visibility holds display and enablement for a controllable widget. The
// zero value is shown and enabled. Embed it to get Show, Hide, Enable and
// Disable.
type Visibility struct {
	display  Display
	disabled bool
}

func (v *Visibility) Show()    { v.display = DisplayBlock }
func (v *Visibility) Hide()    { v.display = DisplayNone }
func (v *Visibility) Enable()  { v.disabled = false }
func (v *Visibility) Disable() { v.disabled = true }

func (v *Visibility) Display() Display { return v.display }
func (v *Visibility) Visible() bool    { return v.display == DisplayBlock }
func (v *Visibility) Enabled() bool    { return !v.disabled }
