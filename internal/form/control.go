package form

import "github.com/muurk/biollante/internal/gaconfig"

// Kind is the input type of a control
type Kind string

const (
	KindText     Kind = "text"
	KindNumber   Kind = "number"
	KindRadio    Kind = "radio"
	KindCheckbox Kind = "checkbox"
	KindHidden   Kind = "hidden"
	KindSubmit   Kind = "submit"
	KindButton   Kind = "button"
	KindReset    Kind = "reset"
	KindFile     Kind = "file"
)

// Checkable reports whether the kind carries a checked state
func (k Kind) Checkable() bool {
	return k == KindRadio || k == KindCheckbox
}

// Serializable reports whether controls of this kind can contribute a value
func (k Kind) Serializable() bool {
	switch k {
	case KindSubmit, KindButton, KindReset, KindFile:
		return false
	default:
		return true
	}
}

// Control is a single form input
type Control struct {
	Name     string
	Value    string
	Kind     Kind
	Checked  bool
	Disabled bool
	Label    string
}

// Submittable reports whether the control contributes name=value when its
// section is read: it is named, enabled, of a serializable kind and, for
// radios and checkboxes, checked.
func (c *Control) Submittable() bool {
	if c == nil || c.Name == "" || c.Disabled || !c.Kind.Serializable() {
		return false
	}
	if c.Kind.Checkable() && !c.Checked {
		return false
	}
	return true
}

// Field returns the control's name and value
func (c *Control) Field() gaconfig.Field {
	return gaconfig.Field{Name: c.Name, Value: c.Value}
}

// SetValue replaces the control's value. The checked and disabled states are
// left alone.
func (c *Control) SetValue(v string) {
	c.Value = v
}

// Group is one row of a panel: an optional selector plus the controls it
// enables. A group without a selector holds plain inputs.
type Group struct {
	Label      string
	Selector   *Control
	Dependents []*Control
}

// Method returns the method the group's selector names, if any
func (g *Group) Method() string {
	if g.Selector == nil {
		return ""
	}
	return g.Selector.Value
}

// Dependent returns the dependent control with the given name, or nil
func (g *Group) Dependent(name string) *Control {
	for _, c := range g.Dependents {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Controls returns the selector followed by the dependents
func (g *Group) Controls() []*Control {
	controls := make([]*Control, 0, len(g.Dependents)+1)
	if g.Selector != nil {
		controls = append(controls, g.Selector)
	}
	return append(controls, g.Dependents...)
}
