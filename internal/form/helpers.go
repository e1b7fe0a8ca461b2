package form

// SetChecked changes the checked state of a selector in the panel and
// re-evaluates which dependents are enabled. Checking a radio unchecks the
// other radios of the same name.
func (p *Panel) SetChecked(c *Control, checked bool) {
	if c == nil || !c.Kind.Checkable() {
		return
	}

	c.Checked = checked
	if checked && c.Kind == KindRadio {
		for _, other := range p.Controls() {
			if other != c && other.Kind == KindRadio && other.Name == c.Name {
				other.Checked = false
			}
		}
	}

	p.RefreshHelpers()
}

// Toggle flips a checkbox. A radio can only be checked, as with a click.
func (p *Panel) Toggle(c *Control) {
	if c == nil {
		return
	}
	switch c.Kind {
	case KindCheckbox:
		p.SetChecked(c, !c.Checked)
	case KindRadio:
		if !c.Checked {
			p.SetChecked(c, true)
		}
	}
}

// RefreshHelpers enables the dependents of every checked selector and
// disables those of every unchecked one. Only groups whose selector is of the
// panel's selector kind take part. Values are never changed.
func (p *Panel) RefreshHelpers() {
	if p == nil {
		return
	}
	for _, g := range p.Groups {
		if g.Selector == nil || g.Selector.Kind != p.SelectorKind {
			continue
		}
		for _, dep := range g.Dependents {
			dep.Disabled = !g.Selector.Checked
		}
	}
}
