package form

import (
	"strings"

	"github.com/muurk/biollante/internal/gaconfig"
)

// Panel is a section of the form. Method panels are shown one at a time
// under their tab; the base panel is always shown.
type Panel struct {
	ID      string
	Title   string
	Section gaconfig.SectionKind

	// SelectorKind is the kind of selector whose groups the panel re-evaluates
	// when a checked state changes
	SelectorKind Kind

	Groups []*Group
	Hidden bool
}

// PanelID returns the panel id of a section (e.g., "stop-criteria-contents")
func PanelID(section gaconfig.SectionKind) string {
	return slug(section) + "-contents"
}

// TabID returns the tab id of a section (e.g., "tab-stop-criteria")
func TabID(section gaconfig.SectionKind) string {
	return "tab-" + slug(section)
}

func slug(section gaconfig.SectionKind) string {
	return strings.ReplaceAll(string(section), "_", "-")
}

// Controls returns every control in document order
func (p *Panel) Controls() []*Control {
	if p == nil {
		return nil
	}
	var controls []*Control
	for _, g := range p.Groups {
		controls = append(controls, g.Controls()...)
	}
	return controls
}

// Fields returns the name=value pairs the panel submits, in document order
func (p *Panel) Fields() []gaconfig.Field {
	fields := []gaconfig.Field{}
	for _, c := range p.Controls() {
		if c.Submittable() {
			fields = append(fields, c.Field())
		}
	}
	return fields
}

// Choices returns one choice per checkbox selector, with the submittable
// values of its dependents
func (p *Panel) Choices() []gaconfig.Choice {
	choices := []gaconfig.Choice{}
	if p == nil {
		return choices
	}

	for _, g := range p.Groups {
		if g.Selector == nil || g.Selector.Kind != KindCheckbox {
			continue
		}
		choice := gaconfig.Choice{
			Value:      g.Selector.Value,
			Checked:    g.Selector.Checked,
			Dependents: []gaconfig.Field{},
		}
		for _, c := range g.Dependents {
			if c.Submittable() {
				choice.Dependents = append(choice.Dependents, c.Field())
			}
		}
		choices = append(choices, choice)
	}
	return choices
}

// Group returns the group whose selector names method, or nil
func (p *Panel) Group(method string) *Group {
	if p == nil {
		return nil
	}
	for _, g := range p.Groups {
		if g.Selector != nil && g.Selector.Value == method {
			return g
		}
	}
	return nil
}

// Control returns the first control named name, or nil
func (p *Panel) Control(name string) *Control {
	for _, c := range p.Controls() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Checked returns the methods whose selectors are checked, in document order
func (p *Panel) Checked() []string {
	var methods []string
	if p == nil {
		return methods
	}
	for _, g := range p.Groups {
		if g.Selector != nil && g.Selector.Checked {
			methods = append(methods, g.Selector.Value)
		}
	}
	return methods
}
