package gaconfig

// Field is one named value a form section would submit
type Field struct {
	Name  string
	Value string
}

// Section is anything that can enumerate the named values it would submit,
// in document order. Disabled and unchecked controls are already left out.
type Section interface {
	Fields() []Field
}

// Choice is one checkbox selector of a multi-choice section together with the
// values of its dependent region.
type Choice struct {
	// Value is the selector's value, which names the method
	Value string

	// Checked is the selector's checked state
	Checked bool

	// Dependents are the submittable values of the selector's dependent region
	Dependents []Field
}

// ChoiceSection is a multi-choice section: a list of checkbox selectors,
// each with its own dependent region.
type ChoiceSection interface {
	Choices() []Choice
}

// Form exposes the six sections of a run configuration.
type Form interface {
	Base() Section
	Selection() Section
	Replacement() Section
	Crossover() ChoiceSection
	Mutation() ChoiceSection
	StopCriteria() ChoiceSection
}

// FieldMap collapses fields into a map; later names overwrite earlier ones.
func FieldMap(fields []Field) map[string]string {
	m := make(map[string]string, len(fields))
	for _, f := range fields {
		m[f.Name] = f.Value
	}
	return m
}
