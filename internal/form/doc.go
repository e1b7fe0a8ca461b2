// Package form holds the state of the run configuration form: panels of
// selector groups, the tab strip that decides which method panel is shown,
// and the rule that a group's parameters are enabled only while its selector
// is checked.
//
// A Panel implements gaconfig.Section and gaconfig.ChoiceSection, and a Form
// implements gaconfig.Form, so the state can be read by the extractors without
// any front end involved.
//
// # Layout
//
// The inputs of a form come from a Layout. DefaultLayout lists every method of
// gaconfig.Catalog with its default parameters; a YAML file can replace it:
//
//	title: Staff notation run
//	base:
//	  - name: popSize
//	    value: "100"
//	panels:
//	  - section: mutation
//	    methods:
//	      - method: gauss
//	        checked: true
//	        params:
//	          - name: sigma
//	            value: "0.2"
//
// # Submitted Values
//
// A control contributes name=value when it is named, not disabled, not a
// button-like kind and, for radios and checkboxes, checked. Values are read in
// document order: each group's selector, then its parameters.
package form
