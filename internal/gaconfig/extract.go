package gaconfig

// ExtractBase reads the base settings as a flat name to value map.
// Values are passed through unmodified.
func ExtractBase(s Section) map[string]string {
	if s == nil {
		return map[string]string{}
	}
	return FieldMap(s.Fields())
}

// ExtractSelection reads the selection panel. The "method" field names the
// method; every other field becomes a string parameter.
func ExtractSelection(s Section) Method {
	return extractSingle(s, false)
}

// ExtractReplacement reads the replacement panel. The "method" field names the
// method; every other field becomes a parameter, coerced to a number when it
// is a numeric literal.
func ExtractReplacement(s Section) Method {
	return extractSingle(s, true)
}

// ExtractCrossover returns one method per checked crossover selector
func ExtractCrossover(s ChoiceSection) []Method {
	return extractChoices(s)
}

// ExtractMutation returns one method per checked mutation selector
func ExtractMutation(s ChoiceSection) []Method {
	return extractChoices(s)
}

// ExtractStopCriteria returns one method per checked stop criteria selector
func ExtractStopCriteria(s ChoiceSection) []Method {
	return extractChoices(s)
}

// extractSingle builds the method of a single-choice (radio) section
func extractSingle(s Section, coerce bool) Method {
	m := Method{Parameters: Parameters{}}
	if s == nil {
		return m
	}

	for name, value := range FieldMap(s.Fields()) {
		if name == MethodField {
			m.Method = value
			continue
		}
		if coerce {
			m.Parameters[name] = Coerce(value)
		} else {
			m.Parameters[name] = value
		}
	}

	return m
}

// extractChoices builds one method per checked selector, in document order
func extractChoices(s ChoiceSection) []Method {
	methods := []Method{}
	if s == nil {
		return methods
	}

	for _, choice := range s.Choices() {
		if !choice.Checked {
			continue
		}
		params := Parameters{}
		for _, f := range choice.Dependents {
			params[f.Name] = Coerce(f.Value)
		}
		methods = append(methods, Method{
			Method:     choice.Value,
			Parameters: params,
		})
	}

	return methods
}

// Aggregate builds a run configuration from every section of the form.
// Sections are copied verbatim; no cross-field checks are made here.
func Aggregate(f Form) *Configuration {
	cfg := &Configuration{
		Base:         ExtractBase(f.Base()),
		Selection:    ExtractSelection(f.Selection()),
		Replacement:  ExtractReplacement(f.Replacement()),
		Mutation:     ExtractMutation(f.Mutation()),
		Crossover:    ExtractCrossover(f.Crossover()),
		StopCriteria: ExtractStopCriteria(f.StopCriteria()),
	}
	return cfg
}
