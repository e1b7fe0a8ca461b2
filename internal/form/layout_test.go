package form

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muurk/biollante/internal/gaconfig"
)

func TestDefaultLayoutCoversCatalog(t *testing.T) {
	l := DefaultLayout()

	if len(l.Panels) != len(gaconfig.Sections) {
		t.Fatalf("got %d panels, want %d", len(l.Panels), len(gaconfig.Sections))
	}
	for i, section := range gaconfig.Sections {
		pl := l.Panels[i]
		if pl.Section != string(section) {
			t.Errorf("panel %d section = %s, want %s", i, pl.Section, section)
		}
		if len(pl.Methods) != len(gaconfig.Catalog[section]) {
			t.Errorf("%s has %d methods, want %d", section, len(pl.Methods), len(gaconfig.Catalog[section]))
		}
		checked := 0
		for _, m := range pl.Methods {
			if m.Checked {
				checked++
			}
		}
		if checked != 1 {
			t.Errorf("%s has %d methods checked, want 1", section, checked)
		}
	}
}

func TestLayoutRoundTripBuilds(t *testing.T) {
	data, err := DefaultLayout().Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "layout.yaml")
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatal(err)
	}

	l, err := LoadLayout(path)
	if err != nil {
		t.Fatalf("LoadLayout() error = %v", err)
	}
	f, err := l.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	cfg := gaconfig.Aggregate(f)
	if cfg.Selection.Method != "tournament" {
		t.Errorf("Selection = %s, want tournament", cfg.Selection.Method)
	}
	if got := gaconfig.MethodNames(cfg.Mutation); len(got) != 1 || got[0] != "binary" {
		t.Errorf("Mutation = %v, want [binary]", got)
	}
}

func TestParseLayoutCustom(t *testing.T) {
	data := []byte(`
title: Staff notation run
base:
  - name: popSize
    value: "100"
  - name: opMode
    kind: text
    value: weighting
panels:
  - section: stop_criteria
    methods:
      - method: maxGenerations
        checked: true
        params:
          - name: n
            value: "20"
  - section: mutation
    methods:
      - method: gauss
        checked: true
        params:
          - name: sigma
            value: "0.2"
      - method: swap
`)

	l, err := ParseLayout(data)
	if err != nil {
		t.Fatalf("ParseLayout() error = %v", err)
	}
	f, err := l.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if f.Title != "Staff notation run" {
		t.Errorf("Title = %s", f.Title)
	}
	if len(f.Panels) != 5 {
		t.Fatalf("got %d panels, want 5 (missing sections become empty panels)", len(f.Panels))
	}
	if f.Panels[3].Section != gaconfig.SectionMutation {
		t.Errorf("panel 3 = %s, want mutation (tab order)", f.Panels[3].Section)
	}

	cfg := gaconfig.Aggregate(f)
	if cfg.Base["opMode"] != "weighting" || cfg.Base["popSize"] != "100" {
		t.Errorf("Base = %v", cfg.Base)
	}
	if len(cfg.Mutation) != 1 || cfg.Mutation[0].Parameters["sigma"] != 0.2 {
		t.Errorf("Mutation = %+v, want gauss sigma=0.2", cfg.Mutation)
	}
	if cfg.Selection.Method != "" {
		t.Errorf("Selection = %q, want none from an empty panel", cfg.Selection.Method)
	}
	if len(cfg.Crossover) != 0 {
		t.Errorf("Crossover = %v, want none", cfg.Crossover)
	}
}

func TestBuildKeepsOneRadioChecked(t *testing.T) {
	l := &Layout{Panels: []PanelLayout{{
		Section: "replacement",
		Methods: []MethodLayout{
			{Method: "generational", Checked: true},
			{Method: "SSGAworse", Checked: true},
		},
	}}}

	f, err := l.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got := f.Panel(gaconfig.SectionReplacement).Checked(); len(got) != 1 || got[0] != "generational" {
		t.Errorf("Checked() = %v, want [generational]", got)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout
		want   string
	}{
		{
			name:   "unknown section",
			layout: Layout{Panels: []PanelLayout{{Section: "elitism"}}},
			want:   "unknown section",
		},
		{
			name:   "base is not a method panel",
			layout: Layout{Panels: []PanelLayout{{Section: "base"}}},
			want:   "unknown section",
		},
		{
			name:   "duplicate section",
			layout: Layout{Panels: []PanelLayout{{Section: "mutation"}, {Section: "mutation"}}},
			want:   "listed twice",
		},
		{
			name: "duplicate method",
			layout: Layout{Panels: []PanelLayout{{Section: "mutation", Methods: []MethodLayout{
				{Method: "swap"}, {Method: "swap"},
			}}}},
			want: "listed twice",
		},
		{
			name:   "reserved parameter name",
			layout: Layout{Base: []ParamLayout{{Name: "method"}}},
			want:   "reserved",
		},
		{
			name:   "unknown kind",
			layout: Layout{Base: []ParamLayout{{Name: "seed", Kind: "slider"}}},
			want:   "unknown kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.layout.Build()
			if err == nil {
				t.Fatal("Build() should fail")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestParseLayoutInvalidYAML(t *testing.T) {
	if _, err := ParseLayout([]byte("panels: [")); err == nil {
		t.Error("ParseLayout() should fail on invalid YAML")
	}
}
