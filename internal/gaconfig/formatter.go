package gaconfig

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Summary returns a one-line summary of the configuration
func (c *Configuration) Summary() string {
	return fmt.Sprintf("selection=%s replacement=%s crossover=[%s] mutation=[%s] stop=[%s]",
		orNone(c.Selection.Method),
		orNone(c.Replacement.Method),
		strings.Join(MethodNames(c.Crossover), ","),
		strings.Join(MethodNames(c.Mutation), ","),
		strings.Join(MethodNames(c.StopCriteria), ","),
	)
}

// FormatBase returns the base settings sorted by name
func (c *Configuration) FormatBase() string {
	var b strings.Builder

	b.WriteString("=== Base Settings ===\n")
	if len(c.Base) == 0 {
		b.WriteString("(none)\n")
		return b.String()
	}

	names := make([]string, 0, len(c.Base))
	for name := range c.Base {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		b.WriteString(fmt.Sprintf("%-12s %s\n", name+":", c.Base[name]))
	}

	return b.String()
}

// FormatDetailed returns every section of the configuration
func (c *Configuration) FormatDetailed() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("╔════════════════════════════════════════════════════════════════╗\n")
	b.WriteString("║              GENETIC ALGORITHM RUN CONFIGURATION               ║\n")
	b.WriteString("╚════════════════════════════════════════════════════════════════╝\n")
	b.WriteString("\n")

	b.WriteString(c.FormatBase())
	b.WriteString("\n")
	writeSingle(&b, SectionSelection, c.Selection)
	b.WriteString("\n")
	writeSingle(&b, SectionReplacement, c.Replacement)
	b.WriteString("\n")
	writeMultiple(&b, SectionCrossover, c.Crossover)
	b.WriteString("\n")
	writeMultiple(&b, SectionMutation, c.Mutation)
	b.WriteString("\n")
	writeMultiple(&b, SectionStopCriteria, c.StopCriteria)

	return b.String()
}

// FormatParameters renders parameters as name=value pairs sorted by name.
// Strings are quoted so "3" and 3 can be told apart.
func FormatParameters(p Parameters) string {
	if len(p) == 0 {
		return "(no parameters)"
	}

	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+"="+formatValue(p[name]))
	}
	return strings.Join(parts, " ")
}

func writeSingle(b *strings.Builder, section SectionKind, m Method) {
	b.WriteString(fmt.Sprintf("=== %s ===\n", section))
	if m.Method == "" {
		b.WriteString("(no method chosen)\n")
		return
	}
	b.WriteString(fmt.Sprintf("%s %s\n", m.Method, FormatParameters(m.Parameters)))
}

func writeMultiple(b *strings.Builder, section SectionKind, methods []Method) {
	b.WriteString(fmt.Sprintf("=== %s ===\n", section))
	if len(methods) == 0 {
		b.WriteString("(none)\n")
		return
	}
	for i, m := range methods {
		b.WriteString(fmt.Sprintf("%d. %s %s\n", i+1, m.Method, FormatParameters(m.Parameters)))
	}
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return strconv.Quote(val)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
