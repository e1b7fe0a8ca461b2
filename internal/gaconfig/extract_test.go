package gaconfig

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type fakeSection []Field

func (s fakeSection) Fields() []Field { return s }

type fakeChoices []Choice

func (s fakeChoices) Choices() []Choice { return s }

type fakeForm struct {
	base, selection, replacement  Section
	crossover, mutation, stopping ChoiceSection
}

func (f fakeForm) Base() Section               { return f.base }
func (f fakeForm) Selection() Section          { return f.selection }
func (f fakeForm) Replacement() Section        { return f.replacement }
func (f fakeForm) Crossover() ChoiceSection    { return f.crossover }
func (f fakeForm) Mutation() ChoiceSection     { return f.mutation }
func (f fakeForm) StopCriteria() ChoiceSection { return f.stopping }

func TestExtractBase(t *testing.T) {
	tests := []struct {
		name    string
		section Section
		want    map[string]string
	}{
		{
			name:    "values pass through as strings",
			section: fakeSection{{"popSize", "100"}, {"opMode", "selection"}},
			want:    map[string]string{"popSize": "100", "opMode": "selection"},
		},
		{
			name:    "later duplicate wins",
			section: fakeSection{{"popSize", "75"}, {"popSize", "100"}},
			want:    map[string]string{"popSize": "100"},
		},
		{
			name:    "empty panel",
			section: fakeSection{},
			want:    map[string]string{},
		},
		{
			name:    "nil panel",
			section: nil,
			want:    map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractBase(tt.section)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ExtractBase() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtractSelection(t *testing.T) {
	got := ExtractSelection(fakeSection{{"method", "tournament"}, {"tSize", "3"}})
	want := Method{Method: "tournament", Parameters: Parameters{"tSize": "3"}}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ExtractSelection() mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractSelectionWithoutMethod(t *testing.T) {
	got := ExtractSelection(fakeSection{})
	if got.Method != "" {
		t.Errorf("Method = %q, want empty", got.Method)
	}
	if got.Parameters == nil || len(got.Parameters) != 0 {
		t.Errorf("Parameters = %#v, want empty map", got.Parameters)
	}

	data, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `{"parameters":{}}` {
		t.Errorf("Marshal() = %s, want {\"parameters\":{}}", data)
	}
}

func TestExtractReplacement(t *testing.T) {
	got := ExtractReplacement(fakeSection{
		{"method", "SSGAdetTournament"},
		{"tSize", "3"},
		{"label", "abc"},
		{"blank", ""},
	})
	want := Method{
		Method: "SSGAdetTournament",
		Parameters: Parameters{
			"tSize": float64(3),
			"label": "abc",
			"blank": "",
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ExtractReplacement() mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractReplacementKeepsNumericMethodName(t *testing.T) {
	got := ExtractReplacement(fakeSection{{"method", "1"}})
	if got.Method != "1" {
		t.Errorf("Method = %q, want \"1\"", got.Method)
	}
}

func TestExtractCrossover(t *testing.T) {
	section := fakeChoices{
		{Value: "hypercube", Checked: false, Dependents: []Field{{"alpha", "0.0"}}},
		{Value: "uniform", Checked: true, Dependents: []Field{{"rate", "0.5"}}},
	}

	got := ExtractCrossover(section)
	want := []Method{{Method: "uniform", Parameters: Parameters{"rate": 0.5}}}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ExtractCrossover() mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractChoicesOrderAndParameters(t *testing.T) {
	section := fakeChoices{
		{Value: "maxGenerations", Checked: true, Dependents: []Field{{"n", "100"}}},
		{Value: "bestFitness", Checked: false},
		{Value: "steadyState", Checked: true, Dependents: []Field{{"minGens", "40"}, {"noChangeGens", "ten"}}},
		{Value: "maxFitnessEvals", Checked: true},
	}

	got := ExtractStopCriteria(section)
	want := []Method{
		{Method: "maxGenerations", Parameters: Parameters{"n": float64(100)}},
		{Method: "steadyState", Parameters: Parameters{"minGens": float64(40), "noChangeGens": "ten"}},
		{Method: "maxFitnessEvals", Parameters: Parameters{}},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ExtractStopCriteria() mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractMutationNothingChecked(t *testing.T) {
	for name, section := range map[string]ChoiceSection{
		"unchecked": fakeChoices{{Value: "binary"}, {Value: "swap"}},
		"empty":     fakeChoices{},
		"nil":       nil,
	} {
		t.Run(name, func(t *testing.T) {
			got := ExtractMutation(section)
			if got == nil {
				t.Fatal("ExtractMutation() returned nil, want empty slice")
			}
			if len(got) != 0 {
				t.Errorf("ExtractMutation() = %v, want empty", got)
			}
		})
	}
}

func TestAggregateFullSubmitBody(t *testing.T) {
	form := fakeForm{
		base:        fakeSection{{"population", "100"}},
		selection:   fakeSection{{"method", "tournament"}, {"tSize", "3"}},
		replacement: fakeSection{{"method", "generational"}},
		crossover:   fakeChoices{{Value: "uniform"}},
		mutation:    fakeChoices{{Value: "binary"}},
		stopping:    fakeChoices{},
	}

	data, err := json.Marshal(NewStartRequest(Aggregate(form)))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	want := map[string]any{
		"method": "start",
		"base":   map[string]any{"population": "100"},
		"selection": map[string]any{
			"method":     "tournament",
			"parameters": map[string]any{"tSize": "3"},
		},
		"replacement": map[string]any{
			"method":     "generational",
			"parameters": map[string]any{},
		},
		"mutation":      []any{},
		"crossover":     []any{},
		"stop_criteria": []any{},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("start body mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregateReadsFreshState(t *testing.T) {
	choices := fakeChoices{{Value: "swap", Checked: true}}
	form := fakeForm{mutation: choices}

	first := Aggregate(form)
	choices[0].Checked = false
	second := Aggregate(form)

	if len(first.Mutation) != 1 {
		t.Errorf("first Mutation = %v, want one method", first.Mutation)
	}
	if len(second.Mutation) != 0 {
		t.Errorf("second Mutation = %v, want none", second.Mutation)
	}
}

func TestNewStartRequestNormalizesNil(t *testing.T) {
	data, err := json.Marshal(NewStartRequest(&Configuration{}))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"method":"start","base":{},"selection":{"parameters":{}},"replacement":{"parameters":{}},"mutation":[],"crossover":[],"stop_criteria":[]}`
	if string(data) != want {
		t.Errorf("Marshal() = %s\nwant %s", data, want)
	}
}

func TestFinishRequest(t *testing.T) {
	data, err := json.Marshal(NewFinishRequest())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `{"method":"finish"}` {
		t.Errorf("Marshal() = %s, want {\"method\":\"finish\"}", data)
	}
}
