package form

import (
	"github.com/muurk/biollante/internal/gaconfig"
	"github.com/muurk/biollante/internal/logging"
)

// TabPanels maps each tab id to the panel it reveals
var TabPanels = map[string]string{
	TabID(gaconfig.SectionSelection):    PanelID(gaconfig.SectionSelection),
	TabID(gaconfig.SectionReplacement):  PanelID(gaconfig.SectionReplacement),
	TabID(gaconfig.SectionCrossover):    PanelID(gaconfig.SectionCrossover),
	TabID(gaconfig.SectionMutation):     PanelID(gaconfig.SectionMutation),
	TabID(gaconfig.SectionStopCriteria): PanelID(gaconfig.SectionStopCriteria),
}

// Tab is one entry of the tab strip
type Tab struct {
	ID     string
	Title  string
	Active bool
}

// Tabs switches which method panel is visible
type Tabs struct {
	Tabs   []*Tab
	Panels []*Panel

	active string
}

// NewTabs creates a tab strip over panels, one tab per panel, in order.
// Nothing is active until a tab is activated.
func NewTabs(panels []*Panel) *Tabs {
	t := &Tabs{Panels: panels}
	for _, p := range panels {
		t.Tabs = append(t.Tabs, &Tab{ID: TabID(p.Section), Title: p.Section.String()})
	}
	return t
}

// Activate makes id the active tab, hides every panel and reveals the panel
// mapped to id. An id with no mapped panel leaves every panel hidden and
// reports false.
func (t *Tabs) Activate(id string) bool {
	for _, tab := range t.Tabs {
		tab.Active = tab.ID == id
	}
	t.active = id

	for _, p := range t.Panels {
		p.Hidden = true
	}

	panelID, ok := TabPanels[id]
	if !ok {
		logging.LogTabChange(id, "")
		return false
	}

	revealed := false
	for _, p := range t.Panels {
		if p.ID == panelID {
			p.Hidden = false
			revealed = true
		}
	}
	logging.LogTabChange(id, panelID)
	return revealed
}

// Active returns the id of the active tab
func (t *Tabs) Active() string {
	return t.active
}

// ActiveIndex returns the position of the active tab, or -1
func (t *Tabs) ActiveIndex() int {
	for i, tab := range t.Tabs {
		if tab.ID == t.active {
			return i
		}
	}
	return -1
}

// ActivePanel returns the visible method panel, or nil
func (t *Tabs) ActivePanel() *Panel {
	for _, p := range t.Panels {
		if !p.Hidden {
			return p
		}
	}
	return nil
}

// ActivateIndex activates the tab at position i
func (t *Tabs) ActivateIndex(i int) bool {
	if i < 0 || i >= len(t.Tabs) {
		return false
	}
	return t.Activate(t.Tabs[i].ID)
}

// Next activates the tab after the active one, wrapping around
func (t *Tabs) Next() bool {
	if len(t.Tabs) == 0 {
		return false
	}
	return t.ActivateIndex((t.ActiveIndex() + 1) % len(t.Tabs))
}

// Prev activates the tab before the active one, wrapping around
func (t *Tabs) Prev() bool {
	if len(t.Tabs) == 0 {
		return false
	}
	i := t.ActiveIndex() - 1
	if i < 0 {
		i = len(t.Tabs) - 1
	}
	return t.ActivateIndex(i)
}
