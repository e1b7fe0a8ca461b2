package form

import (
	"fmt"
	"strings"

	"github.com/muurk/biollante/internal/gaconfig"
)

// Form is the whole run configuration form: the base panel, the five method
// panels in tab order and the tab strip over them.
type Form struct {
	Title     string
	BasePanel *Panel
	Panels    []*Panel
	Tabs      *Tabs
}

// New assembles a form, enables the dependents of checked selectors and
// activates the first tab
func New(title string, base *Panel, panels []*Panel) *Form {
	f := &Form{
		Title:     title,
		BasePanel: base,
		Panels:    panels,
		Tabs:      NewTabs(panels),
	}
	for _, p := range panels {
		p.RefreshHelpers()
	}
	f.Tabs.ActivateIndex(0)
	return f
}

// Panel returns the panel of a section, or nil
func (f *Form) Panel(section gaconfig.SectionKind) *Panel {
	if section == gaconfig.SectionBase {
		return f.BasePanel
	}
	for _, p := range f.Panels {
		if p.Section == section {
			return p
		}
	}
	return nil
}

// Section accessors satisfying gaconfig.Form
func (f *Form) Base() gaconfig.Section               { return f.BasePanel }
func (f *Form) Selection() gaconfig.Section          { return f.Panel(gaconfig.SectionSelection) }
func (f *Form) Replacement() gaconfig.Section        { return f.Panel(gaconfig.SectionReplacement) }
func (f *Form) Crossover() gaconfig.ChoiceSection    { return f.Panel(gaconfig.SectionCrossover) }
func (f *Form) Mutation() gaconfig.ChoiceSection     { return f.Panel(gaconfig.SectionMutation) }
func (f *Form) StopCriteria() gaconfig.ChoiceSection { return f.Panel(gaconfig.SectionStopCriteria) }

// Select checks or unchecks the selector of method in section
func (f *Form) Select(section gaconfig.SectionKind, method string, checked bool) error {
	p := f.Panel(section)
	if p == nil {
		return fmt.Errorf("form has no %s panel", section)
	}
	g := p.Group(method)
	if g == nil {
		return fmt.Errorf("%s panel has no method %q", section, method)
	}
	p.SetChecked(g.Selector, checked)
	return nil
}

// SetValue sets a control value addressed by path:
//
//	base.popSize
//	selection.tournament.tSize
//	crossover.uniform.preference
//
// Disabled controls can be set; they still are not submitted.
func (f *Form) SetValue(path, value string) error {
	parts := strings.Split(path, ".")
	section := gaconfig.SectionKind(strings.ReplaceAll(parts[0], "-", "_"))

	p := f.Panel(section)
	if p == nil {
		return fmt.Errorf("unknown section %q in %q", parts[0], path)
	}

	var c *Control
	switch {
	case section == gaconfig.SectionBase && len(parts) == 2:
		c = p.Control(parts[1])
	case section != gaconfig.SectionBase && len(parts) == 3:
		g := p.Group(parts[1])
		if g == nil {
			return fmt.Errorf("%s panel has no method %q", section, parts[1])
		}
		c = g.Dependent(parts[2])
	default:
		return fmt.Errorf("invalid path %q (want base.<name> or <section>.<method>.<param>)", path)
	}

	if c == nil {
		return fmt.Errorf("no control at %q", path)
	}
	if c.Kind.Checkable() {
		return fmt.Errorf("%q is a %s; select it instead", path, c.Kind)
	}
	c.SetValue(value)
	return nil
}

// SetFlag checks or unchecks a flag parameter (e.g., mutation.binary.normalize)
func (f *Form) SetFlag(path string, on bool) error {
	parts := strings.Split(path, ".")
	if len(parts) != 3 {
		return fmt.Errorf("invalid flag path %q (want <section>.<method>.<param>)", path)
	}
	p := f.Panel(gaconfig.SectionKind(strings.ReplaceAll(parts[0], "-", "_")))
	g := p.Group(parts[1])
	if g == nil {
		return fmt.Errorf("no method at %q", path)
	}
	c := g.Dependent(parts[2])
	if c == nil || c.Kind != KindCheckbox {
		return fmt.Errorf("no flag at %q", path)
	}
	c.Checked = on
	return nil
}
