package gaconfig

// SectionKind identifies one configuration category
type SectionKind string

const (
	SectionBase         SectionKind = "base"
	SectionSelection    SectionKind = "selection"
	SectionReplacement  SectionKind = "replacement"
	SectionCrossover    SectionKind = "crossover"
	SectionMutation     SectionKind = "mutation"
	SectionStopCriteria SectionKind = "stop_criteria"
)

// String returns a human-readable name for the section
func (k SectionKind) String() string {
	switch k {
	case SectionBase:
		return "Base Settings"
	case SectionSelection:
		return "Selection"
	case SectionReplacement:
		return "Replacement"
	case SectionCrossover:
		return "Crossover"
	case SectionMutation:
		return "Mutation"
	case SectionStopCriteria:
		return "Stop Criteria"
	default:
		return string(k)
	}
}

// MultiChoice reports whether the section accepts any number of methods
func (k SectionKind) MultiChoice() bool {
	return k == SectionCrossover || k == SectionMutation || k == SectionStopCriteria
}

// ParamKind describes how a parameter is entered
type ParamKind string

const (
	ParamNumber ParamKind = "number"
	ParamFlag   ParamKind = "flag" // a checkbox that submits "true" when checked
	ParamText   ParamKind = "text"
)

// ParamSpec describes one tunable parameter of a method
type ParamSpec struct {
	Name    string
	Label   string
	Kind    ParamKind
	Default string // Empty when the optimizer has no default
}

// MethodSpec describes one method the optimizer understands
type MethodSpec struct {
	Name   string
	Label  string
	Params []ParamSpec
}

// Param returns the named parameter spec, or nil
func (m *MethodSpec) Param(name string) *ParamSpec {
	for i := range m.Params {
		if m.Params[i].Name == name {
			return &m.Params[i]
		}
	}
	return nil
}

// Catalog lists the methods of every section in the order they are offered.
// Feature counts are not listed; the job fills them from the training data.
var Catalog = map[SectionKind][]MethodSpec{
	SectionSelection: {
		{Name: "random", Label: "Random"},
		{Name: "rank", Label: "Rank", Params: []ParamSpec{
			{Name: "pressure", Label: "Pressure", Kind: ParamNumber, Default: "2.0"},
			{Name: "exponent", Label: "Exponent", Kind: ParamNumber, Default: "1.0"},
		}},
		{Name: "roulette", Label: "Roulette Wheel"},
		{Name: "roulette_scaled", Label: "Roulette Wheel (Scaled)", Params: []ParamSpec{
			{Name: "pressure", Label: "Pressure", Kind: ParamNumber, Default: "2.0"},
		}},
		{Name: "stochiastic", Label: "Stochastic Universal Sampling"},
		{Name: "tournament", Label: "Tournament", Params: []ParamSpec{
			{Name: "tSize", Label: "Tournament Size", Kind: ParamNumber, Default: "3"},
		}},
	},
	SectionReplacement: {
		{Name: "generational", Label: "Generational"},
		{Name: "SSGAdetTournament", Label: "SSGA Deterministic Tournament", Params: []ParamSpec{
			{Name: "tSize", Label: "Tournament Size", Kind: ParamNumber, Default: "3"},
		}},
		{Name: "SSGAworse", Label: "SSGA Replace Worst"},
	},
	SectionCrossover: {
		{Name: "hypercube", Label: "Hypercube", Params: []ParamSpec{
			{Name: "min", Label: "Min", Kind: ParamNumber, Default: "0.0"},
			{Name: "max", Label: "Max", Kind: ParamNumber, Default: "1.0"},
			{Name: "alpha", Label: "Alpha", Kind: ParamNumber, Default: "0.0"},
		}},
		{Name: "nPoint", Label: "N-Point", Params: []ParamSpec{
			{Name: "n", Label: "Points", Kind: ParamNumber, Default: "1"},
		}},
		{Name: "sbx", Label: "Simulated Binary", Params: []ParamSpec{
			{Name: "min", Label: "Min", Kind: ParamNumber, Default: "0.0"},
			{Name: "max", Label: "Max", Kind: ParamNumber, Default: "1.0"},
			{Name: "eta", Label: "Eta", Kind: ParamNumber, Default: "1.0"},
		}},
		{Name: "segment", Label: "Segment", Params: []ParamSpec{
			{Name: "min", Label: "Min", Kind: ParamNumber, Default: "0.0"},
			{Name: "max", Label: "Max", Kind: ParamNumber, Default: "1.0"},
			{Name: "alpha", Label: "Alpha", Kind: ParamNumber, Default: "0.0"},
		}},
		{Name: "uniform", Label: "Uniform", Params: []ParamSpec{
			{Name: "preference", Label: "Preference", Kind: ParamNumber, Default: "0.5"},
		}},
	},
	SectionMutation: {
		{Name: "binary", Label: "Binary", Params: []ParamSpec{
			{Name: "rate", Label: "Rate", Kind: ParamNumber, Default: "0.05"},
			{Name: "normalize", Label: "Normalize", Kind: ParamFlag},
		}},
		{Name: "gauss", Label: "Gaussian", Params: []ParamSpec{
			{Name: "min", Label: "Min", Kind: ParamNumber, Default: "0.0"},
			{Name: "max", Label: "Max", Kind: ParamNumber, Default: "1.0"},
			{Name: "sigma", Label: "Sigma", Kind: ParamNumber, Default: "0.5"},
			{Name: "rate", Label: "Rate", Kind: ParamNumber, Default: "1.0"},
		}},
		{Name: "inversion", Label: "Inversion"},
		{Name: "shift", Label: "Shift"},
		{Name: "swap", Label: "Swap"},
	},
	SectionStopCriteria: {
		{Name: "bestFitness", Label: "Best Fitness", Params: []ParamSpec{
			{Name: "optimum", Label: "Optimum", Kind: ParamNumber, Default: "1.0"},
		}},
		{Name: "maxFitnessEvals", Label: "Max Fitness Evaluations", Params: []ParamSpec{
			{Name: "n", Label: "Evaluations", Kind: ParamNumber, Default: "5000"},
		}},
		{Name: "maxGenerations", Label: "Max Generations", Params: []ParamSpec{
			{Name: "n", Label: "Generations", Kind: ParamNumber, Default: "100"},
		}},
		{Name: "steadyState", Label: "Steady State", Params: []ParamSpec{
			{Name: "minGens", Label: "Min Generations", Kind: ParamNumber, Default: "40"},
			{Name: "noChangeGens", Label: "No-Change Generations", Kind: ParamNumber, Default: "10"},
		}},
	},
}

// BaseParams lists the base settings of a run
var BaseParams = []ParamSpec{
	{Name: "opMode", Label: "Mode", Kind: ParamText, Default: "selection"},
	{Name: "popSize", Label: "Population Size", Kind: ParamNumber, Default: "75"},
	{Name: "crossRate", Label: "Crossover Rate", Kind: ParamNumber, Default: "0.95"},
	{Name: "mutRate", Label: "Mutation Rate", Kind: ParamNumber, Default: "0.05"},
}

// LookupMethod returns the spec of a method within a section, or nil
func LookupMethod(section SectionKind, name string) *MethodSpec {
	methods := Catalog[section]
	for i := range methods {
		if methods[i].Name == name {
			return &methods[i]
		}
	}
	return nil
}

// Sections lists the method sections in tab order
var Sections = []SectionKind{
	SectionSelection,
	SectionReplacement,
	SectionCrossover,
	SectionMutation,
	SectionStopCriteria,
}
