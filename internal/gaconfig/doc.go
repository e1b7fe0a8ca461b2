// Package gaconfig turns the state of a run configuration form into the JSON
// request an interactive genetic-algorithm job accepts, and sends it.
//
// A form is seen only through the Section, ChoiceSection and Form
// interfaces: each section enumerates the named values it would submit. The
// extractors read one section each and Aggregate combines them into a
// Configuration.
//
// # Sections
//
// The run configuration has six sections:
//   - Base: flat settings such as population size, passed through as strings
//   - Selection: one method, parameters kept as strings
//   - Replacement: one method, numeric parameters coerced to numbers
//   - Crossover, Mutation, Stop Criteria: any number of methods, each with its
//     own parameters, numeric values coerced
//
// # Usage Example
//
//	cfg := gaconfig.Aggregate(form)
//
//	client := gaconfig.NewClient("http://localhost:8000/interactive/1234/")
//	resp, err := client.Start(ctx, cfg)
//	if err != nil {
//	    fmt.Println(gaconfig.GetShortErrorMessage(err))
//	    fmt.Println(gaconfig.GetTroubleshootingHint(err))
//	}
//
// Submitter wraps the same steps in a goroutine and only logs the outcome.
//
// # Validation
//
// Nothing is validated on the way to the job. ValidateConfiguration applies the
// job's own pre-start checks against Catalog so a configuration can be checked
// before it is sent.
package gaconfig
