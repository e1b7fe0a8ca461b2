package form

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/muurk/biollante/internal/gaconfig"
)

// Layout describes the markup of a form: which inputs exist, their labels,
// their starting values and which selectors start checked.
type Layout struct {
	Title  string        `yaml:"title"`
	Base   []ParamLayout `yaml:"base"`
	Panels []PanelLayout `yaml:"panels"`
}

// PanelLayout describes one method panel
type PanelLayout struct {
	Section string         `yaml:"section"`
	Title   string         `yaml:"title,omitempty"`
	Methods []MethodLayout `yaml:"methods"`
}

// MethodLayout describes one selector group
type MethodLayout struct {
	Method  string        `yaml:"method"`
	Label   string        `yaml:"label,omitempty"`
	Checked bool          `yaml:"checked,omitempty"`
	Params  []ParamLayout `yaml:"params,omitempty"`
}

// ParamLayout describes one input
type ParamLayout struct {
	Name    string `yaml:"name"`
	Label   string `yaml:"label,omitempty"`
	Kind    string `yaml:"kind,omitempty"` // number, text, flag or hidden; defaults to number
	Value   string `yaml:"value,omitempty"`
	Checked bool   `yaml:"checked,omitempty"` // flag only
}

// Starting selections of the built-in layout
var defaultChecked = map[gaconfig.SectionKind]string{
	gaconfig.SectionSelection:    "tournament",
	gaconfig.SectionReplacement:  "SSGAworse",
	gaconfig.SectionCrossover:    "uniform",
	gaconfig.SectionMutation:     "binary",
	gaconfig.SectionStopCriteria: "maxGenerations",
}

// DefaultLayout returns the layout of every method in the catalog with its
// default parameters
func DefaultLayout() *Layout {
	l := &Layout{Title: "Classifier Optimization"}

	for _, spec := range gaconfig.BaseParams {
		l.Base = append(l.Base, paramLayout(spec))
	}

	for _, section := range gaconfig.Sections {
		pl := PanelLayout{Section: string(section), Title: section.String()}
		for _, m := range gaconfig.Catalog[section] {
			ml := MethodLayout{
				Method:  m.Name,
				Label:   m.Label,
				Checked: defaultChecked[section] == m.Name,
			}
			for _, spec := range m.Params {
				ml.Params = append(ml.Params, paramLayout(spec))
			}
			pl.Methods = append(pl.Methods, ml)
		}
		l.Panels = append(l.Panels, pl)
	}

	return l
}

func paramLayout(spec gaconfig.ParamSpec) ParamLayout {
	return ParamLayout{
		Name:  spec.Name,
		Label: spec.Label,
		Kind:  string(spec.Kind),
		Value: spec.Default,
	}
}

// ParseLayout decodes a YAML layout
func ParseLayout(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}
	return &l, nil
}

// LoadLayout reads a YAML layout from path
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}
	return ParseLayout(data)
}

// Marshal encodes the layout as YAML
func (l *Layout) Marshal() ([]byte, error) {
	return yaml.Marshal(l)
}

// Build creates a form from the layout.
// Panels are arranged in tab order whatever order the layout lists them in;
// sections the layout leaves out get an empty panel.
func (l *Layout) Build() (*Form, error) {
	base := &Panel{
		ID:      "base-contents",
		Title:   gaconfig.SectionBase.String(),
		Section: gaconfig.SectionBase,
	}
	for _, pl := range l.Base {
		c, err := pl.control()
		if err != nil {
			return nil, fmt.Errorf("base: %w", err)
		}
		base.Groups = append(base.Groups, &Group{Label: c.Label, Dependents: []*Control{c}})
	}

	bySection := make(map[gaconfig.SectionKind]*PanelLayout, len(l.Panels))
	for i := range l.Panels {
		pl := &l.Panels[i]
		section := gaconfig.SectionKind(pl.Section)
		if !isMethodSection(section) {
			return nil, fmt.Errorf("unknown section %q", pl.Section)
		}
		if _, dup := bySection[section]; dup {
			return nil, fmt.Errorf("section %q listed twice", pl.Section)
		}
		bySection[section] = pl
	}

	panels := make([]*Panel, 0, len(gaconfig.Sections))
	for _, section := range gaconfig.Sections {
		p, err := buildPanel(section, bySection[section])
		if err != nil {
			return nil, err
		}
		panels = append(panels, p)
	}

	title := l.Title
	if title == "" {
		title = "Classifier Optimization"
	}
	return New(title, base, panels), nil
}

func buildPanel(section gaconfig.SectionKind, pl *PanelLayout) (*Panel, error) {
	p := &Panel{
		ID:           PanelID(section),
		Title:        section.String(),
		Section:      section,
		SelectorKind: KindRadio,
		Hidden:       true,
	}
	if section.MultiChoice() {
		p.SelectorKind = KindCheckbox
	}
	if pl == nil {
		return p, nil
	}
	if pl.Title != "" {
		p.Title = pl.Title
	}

	radioChecked := false
	seen := make(map[string]bool, len(pl.Methods))
	for _, ml := range pl.Methods {
		if ml.Method == "" {
			return nil, fmt.Errorf("%s: method without a name", section)
		}
		if seen[ml.Method] {
			return nil, fmt.Errorf("%s: method %q listed twice", section, ml.Method)
		}
		seen[ml.Method] = true

		selector := &Control{
			Name:    selectorName(section),
			Value:   ml.Method,
			Kind:    p.SelectorKind,
			Checked: ml.Checked,
			Label:   ml.Label,
		}
		if selector.Label == "" {
			selector.Label = ml.Method
		}
		// Only the first checked radio stays checked
		if p.SelectorKind == KindRadio && ml.Checked {
			selector.Checked = !radioChecked
			radioChecked = true
		}

		g := &Group{Label: selector.Label, Selector: selector}
		for _, param := range ml.Params {
			c, err := param.control()
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", section, ml.Method, err)
			}
			g.Dependents = append(g.Dependents, c)
		}
		p.Groups = append(p.Groups, g)
	}

	return p, nil
}

// selectorName is the control name of a section's selectors. Single-choice
// sections submit their method under "method".
func selectorName(section gaconfig.SectionKind) string {
	if section.MultiChoice() {
		return string(section)
	}
	return gaconfig.MethodField
}

func isMethodSection(section gaconfig.SectionKind) bool {
	for _, s := range gaconfig.Sections {
		if s == section {
			return true
		}
	}
	return false
}

func (pl ParamLayout) control() (*Control, error) {
	if pl.Name == "" {
		return nil, fmt.Errorf("parameter without a name")
	}
	if pl.Name == gaconfig.MethodField {
		return nil, fmt.Errorf("parameter name %q is reserved", pl.Name)
	}

	c := &Control{Name: pl.Name, Value: pl.Value, Label: pl.Label}
	if c.Label == "" {
		c.Label = pl.Name
	}

	switch gaconfig.ParamKind(pl.Kind) {
	case gaconfig.ParamNumber, "":
		c.Kind = KindNumber
	case gaconfig.ParamText:
		c.Kind = KindText
	case gaconfig.ParamFlag:
		c.Kind = KindCheckbox
		c.Checked = pl.Checked
		if c.Value == "" {
			c.Value = "true"
		}
	case "hidden":
		c.Kind = KindHidden
	default:
		return nil, fmt.Errorf("parameter %q has unknown kind %q", pl.Name, pl.Kind)
	}
	return c, nil
}
