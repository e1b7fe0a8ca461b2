package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/muurk/biollante/internal/config"
	"github.com/muurk/biollante/internal/form"
	"github.com/muurk/biollante/internal/gaconfig"
	"github.com/muurk/biollante/internal/logging"
	"github.com/muurk/biollante/internal/ui"
	"github.com/muurk/biollante/internal/wizard/tui"
)

// edits are form changes given on the command line
type edits struct {
	Select   []string // section=method
	Unselect []string // section=method
	Set      []string // path=value
	Flags    []string // path or path=bool
}

// Command flags
var (
	formEdits  edits
	strict     bool
	jsonOutput bool
	force      bool
	assumeYes  bool
)

func init() {
	rootCmd.AddCommand(wizardCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(finishCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configNicknameCmd)
}

func addEditFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&formEdits.Select, "select", nil, "Check a method (section=method, repeatable)")
	cmd.Flags().StringArrayVar(&formEdits.Unselect, "unselect", nil, "Uncheck a method (section=method, repeatable)")
	cmd.Flags().StringArrayVar(&formEdits.Set, "set", nil, "Set a value (path=value, e.g. selection.tournament.tSize=5)")
	cmd.Flags().StringArrayVar(&formEdits.Flags, "flag", nil, "Check a flag parameter (path or path=false)")
}

// wizardCmd launches the interactive TUI wizard
var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Launch interactive configuration wizard",
	Long: `Launch an interactive TUI wizard for building a run configuration.

The wizard shows the base settings and one tab per method section.
Checking a method enables its parameters; unchecked methods keep their
values but are not submitted. Press 's' to send the configuration.

Submissions run in the background. Their outcome is written to the log
file only, so pass --log-file (or set logging.file) to keep a record.`,
	Example: `  # Launch wizard against the default endpoint
  biollante-cfg wizard
  # Or simply (wizard is default):
  biollante-cfg

  # Launch wizard for a specific job, logging outcomes
  biollante-cfg --endpoint http://rodan.local/interactive/5c1f.../ --log-file wizard.log --log-level info`,
	RunE: runWizard,
}

func init() {
	addEditFlags(wizardCmd)
}

func runWizard(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the wizard needs an interactive terminal; use 'biollante-cfg submit' instead")
	}

	f, err := buildForm(current, formEdits)
	if err != nil {
		return err
	}

	client := newClient(current)
	submitter := gaconfig.NewSubmitter(client)

	var mu sync.Mutex
	submitter.OnComplete = func(o gaconfig.Outcome) {
		mu.Lock()
		defer mu.Unlock()
		recordSubmission(current, outcomeStatus(o))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	return tui.Run(f, tui.Options{
		Context:   ctx,
		Endpoint:  current.Endpoint,
		Submitter: submitter,
		StartTab:  current.StartTab,
	})
}

// submitCmd sends a configuration and waits for the job's answer
var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Send a run configuration to the job",
	Long: `Build a run configuration from the form layout and send it to the job.

The configuration starts from the layout's defaults; --select, --unselect,
--set and --flag change it before it is sent. Unlike the wizard, submit
waits for the job's answer and reports it.

With --strict the configuration is validated locally first and nothing is
sent when it has errors.`,
	Example: `  # Send the default configuration
  biollante-cfg submit

  # Rank selection with a custom pressure, plus hypercube crossover
  biollante-cfg submit --select selection=rank --set selection.rank.pressure=1.5 \
    --select crossover=hypercube

  # Normalize binary mutation and refuse to send invalid values
  biollante-cfg submit --flag mutation.binary.normalize --set base.popSize=100 --strict`,
	RunE: runSubmit,
}

func init() {
	addEditFlags(submitCmd)
	submitCmd.Flags().BoolVar(&strict, "strict", false, "Validate locally and refuse to send on errors")
}

func runSubmit(cmd *cobra.Command, args []string) error {
	f, err := buildForm(current, formEdits)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := gaconfig.Aggregate(f)
	resp, err := submitConfiguration(ctx, cmd.OutOrStdout(), newClient(current), cfg, strict)
	if resp != nil {
		recordSubmission(current, resp.StatusCode)
	}
	return err
}

// submitConfiguration sends cfg and prints the outcome.
// The response is returned whenever the job answered, even with an error status.
func submitConfiguration(ctx context.Context, w io.Writer, client *gaconfig.Client, cfg *gaconfig.Configuration, strict bool) (*gaconfig.Response, error) {
	if strict {
		warnings, errs := gaconfig.SeparateWarningsAndErrors(gaconfig.ValidateConfiguration(cfg))
		printWarnings(w, warnings)
		if len(errs) > 0 {
			fmt.Fprint(w, gaconfig.FormatValidationErrors(errs))
			return nil, gaconfig.NewValidationError(fmt.Sprintf("%d validation error(s), nothing sent", len(errs)))
		}
	}

	fmt.Fprintln(w, ui.NewHeader("Submit Configuration", "biollante-cfg submit",
		ui.Param{Key: "Endpoint", Value: client.Endpoint},
		ui.Param{Key: "Timeout", Value: timeoutLabel(client.HTTPClient.Timeout)},
		ui.Param{Key: "Selection", Value: methodLabel(cfg.Selection.Method)},
		ui.Param{Key: "Replacement", Value: methodLabel(cfg.Replacement.Method)},
		ui.Param{Key: "Crossover", Value: methodsLabel(cfg.Crossover)},
		ui.Param{Key: "Mutation", Value: methodsLabel(cfg.Mutation)},
		ui.Param{Key: "Stop", Value: methodsLabel(cfg.StopCriteria)},
	).Render())
	fmt.Fprintln(w)

	resp, err := client.Start(ctx, cfg)
	if err != nil {
		fmt.Fprintln(w, failureResult(err).Render())
		return resp, err
	}

	fmt.Fprintln(w, ui.NewSuccessResult("Job accepted configuration",
		ui.Param{Key: "Status", Value: resp.Status},
		ui.Param{Key: "Request", Value: resp.RequestID},
		ui.Param{Key: "Duration", Value: resp.Duration.Round(time.Millisecond).String()},
	).Render())
	return resp, nil
}

// failureResult describes a failed request, quoting the job's answer if any
func failureResult(err error) *ui.Result {
	result := ui.NewFailureResult(gaconfig.GetShortErrorMessage(err), err, hintTips(gaconfig.GetTroubleshootingHint(err)))
	var subErr *gaconfig.SubmitError
	if errors.As(err, &subErr) && strings.TrimSpace(subErr.Body) != "" {
		result.AddDetail("Job said", strings.TrimSpace(subErr.Body))
	}
	return result
}

// hintTips turns a troubleshooting hint into bullet points
func hintTips(hint string) []string {
	var tips []string
	for _, line := range strings.Split(hint, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line == "Troubleshooting:" {
			continue
		}
		tips = append(tips, strings.TrimPrefix(line, "• "))
	}
	return tips
}

func timeoutLabel(d time.Duration) string {
	if d <= 0 {
		return "none"
	}
	return d.String()
}

func methodLabel(name string) string {
	if name == "" {
		return "(none)"
	}
	return name
}

func methodsLabel(methods []gaconfig.Method) string {
	return methodLabel(strings.Join(gaconfig.MethodNames(methods), ", "))
}

// previewCmd shows the configuration without sending it
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the run configuration without sending it",
	Long: `Build the run configuration exactly as submit would and print it.

Use --json to print the request body that would be POSTed.`,
	Example: `  # Human-readable preview
  biollante-cfg preview --select mutation=gauss

  # The exact request body
  biollante-cfg preview --json`,
	RunE: runPreview,
}

func init() {
	addEditFlags(previewCmd)
	previewCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the request body as JSON")
}

func runPreview(cmd *cobra.Command, args []string) error {
	f, err := buildForm(current, formEdits)
	if err != nil {
		return err
	}
	return previewConfiguration(cmd.OutOrStdout(), gaconfig.Aggregate(f), jsonOutput)
}

func previewConfiguration(w io.Writer, cfg *gaconfig.Configuration, asJSON bool) error {
	if !asJSON {
		fmt.Fprintln(w, cfg.FormatDetailed())
		return nil
	}

	data, err := json.MarshalIndent(gaconfig.NewStartRequest(cfg), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

// validateCmd checks a configuration locally
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the run configuration locally",
	Long: `Check the run configuration against the methods the optimizer knows.

Errors are problems the job would reject (a section with no method, a
parameter that is not a number). Warnings are settings the job ignores
or fills with its own defaults.`,
	RunE: runValidate,
}

func init() {
	addEditFlags(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	f, err := buildForm(current, formEdits)
	if err != nil {
		return err
	}
	return validateConfiguration(cmd.OutOrStdout(), gaconfig.Aggregate(f))
}

func validateConfiguration(w io.Writer, cfg *gaconfig.Configuration) error {
	warnings, errs := gaconfig.SeparateWarningsAndErrors(gaconfig.ValidateConfiguration(cfg))
	printWarnings(w, warnings)

	if len(errs) > 0 {
		fmt.Fprint(w, gaconfig.FormatValidationErrors(errs))
		return fmt.Errorf("configuration is invalid")
	}

	fmt.Fprintln(w, "✓ Configuration is valid")
	return nil
}

func printWarnings(w io.Writer, warnings []error) {
	if len(warnings) == 0 {
		return
	}
	fmt.Fprintf(w, "%d warning(s):\n", len(warnings))
	for _, warning := range warnings {
		var subErr *gaconfig.SubmitError
		if errors.As(warning, &subErr) {
			fmt.Fprintf(w, "  - %s\n", strings.TrimPrefix(subErr.Message, "warning: "))
		} else {
			fmt.Fprintf(w, "  - %v\n", warning)
		}
	}
	fmt.Fprintln(w)
}

// finishCmd asks the job to keep its latest classifier and end
var finishCmd = &cobra.Command{
	Use:   "finish",
	Short: "Tell the job to keep the latest classifier and finish",
	Long: `Tell the interactive job to keep the classifier of its latest run and
finish. This cannot be undone: the job accepts no further configurations.

You are asked to type FINISH to confirm unless --yes is given.`,
	RunE: runFinish,
}

func init() {
	finishCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation")
}

func runFinish(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	client := newClient(current)

	if !assumeYes && !ui.FinishConfirmation(w, cmd.InOrStdin(), client.Endpoint) {
		return nil
	}

	resp, err := finishJob(cmd.Context(), w, client)
	if resp != nil {
		recordSubmission(current, resp.StatusCode)
	}
	return err
}

// finishJob sends the finish request and prints the outcome
func finishJob(ctx context.Context, w io.Writer, client *gaconfig.Client) (*gaconfig.Response, error) {
	fmt.Fprintln(w, ui.NewHeader("Finish Job", "biollante-cfg finish",
		ui.Param{Key: "Endpoint", Value: client.Endpoint},
	).Render())
	fmt.Fprintln(w)

	resp, err := client.Finish(ctx)
	if err != nil {
		fmt.Fprintln(w, failureResult(err).Render())
		return resp, err
	}

	fmt.Fprintln(w, ui.NewSuccessResult("Job finished",
		ui.Param{Key: "Status", Value: resp.Status},
		ui.Param{Key: "Request", Value: resp.RequestID},
	).Render())
	return resp, nil
}

// layoutCmd prints the form layout
var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the form layout as YAML",
	Long: `Print the form layout in use: the built-in one, or the file given with
--layout after it has been checked. Save the output, edit labels, defaults
and checked methods, and pass it back with --layout.`,
	Example: `  biollante-cfg layout > my-layout.yaml
  biollante-cfg --layout my-layout.yaml wizard`,
	RunE: func(cmd *cobra.Command, args []string) error {
		layout, err := loadLayout(current)
		if err != nil {
			return err
		}
		if _, err := layout.Build(); err != nil {
			return fmt.Errorf("invalid layout: %w", err)
		}
		data, err := layout.Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.CreateDefaultConfig(force)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), current.ConfigPath)
	},
}

var configNicknameCmd = &cobra.Command{
	Use:   "nickname <name>",
	Short: "Name the current endpoint",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := config.LoadFile(current.ConfigPath)
		if err != nil {
			return err
		}
		registry.SetJobNickname(current.Endpoint, args[0])
		if err := registry.SaveFile(current.ConfigPath); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is now %q\n", current.Endpoint, args[0])
		return nil
	},
}

// newClient creates a client for the resolved endpoint and timeout
func newClient(s *settings) *gaconfig.Client {
	client := gaconfig.NewClient(s.Endpoint)
	client.SetTimeout(s.Timeout)
	return client
}

// loadLayout returns the layout file in s, or the built-in layout
func loadLayout(s *settings) (*form.Layout, error) {
	if s.LayoutPath == "" {
		return form.DefaultLayout(), nil
	}
	return form.LoadLayout(s.LayoutPath)
}

// buildForm builds the form and applies command-line edits to it
func buildForm(s *settings, e edits) (*form.Form, error) {
	layout, err := loadLayout(s)
	if err != nil {
		return nil, err
	}
	f, err := layout.Build()
	if err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}
	if err := applyEdits(f, e); err != nil {
		return nil, err
	}
	return f, nil
}

// applyEdits unchecks, then checks, then sets values, then sets flags
func applyEdits(f *form.Form, e edits) error {
	for _, arg := range e.Unselect {
		section, method, err := splitPair(arg, "--unselect")
		if err != nil {
			return err
		}
		if err := f.Select(sectionKind(section), method, false); err != nil {
			return err
		}
	}

	for _, arg := range e.Select {
		section, method, err := splitPair(arg, "--select")
		if err != nil {
			return err
		}
		if err := f.Select(sectionKind(section), method, true); err != nil {
			return err
		}
	}

	for _, arg := range e.Set {
		path, value, err := splitPair(arg, "--set")
		if err != nil {
			return err
		}
		if err := f.SetValue(path, value); err != nil {
			return err
		}
	}

	for _, arg := range e.Flags {
		path, on := arg, true
		if i := strings.IndexByte(arg, '='); i >= 0 {
			var err error
			path = arg[:i]
			if on, err = strconv.ParseBool(arg[i+1:]); err != nil {
				return fmt.Errorf("invalid --flag %q (use path or path=true/false): %w", arg, err)
			}
		}
		if err := f.SetFlag(path, on); err != nil {
			return err
		}
	}

	return nil
}

// splitPair splits "key=value" at the first '='
func splitPair(arg, flag string) (string, string, error) {
	key, value, ok := strings.Cut(arg, "=")
	if !ok || key == "" {
		return "", "", fmt.Errorf("invalid %s %q (want key=value)", flag, arg)
	}
	return key, value, nil
}

// sectionKind accepts section names with dashes (stop-criteria)
func sectionKind(name string) gaconfig.SectionKind {
	return gaconfig.SectionKind(strings.ReplaceAll(name, "-", "_"))
}

// recordSubmission notes the job's answer in the configuration file.
// Failing to save is not fatal to the submission.
func recordSubmission(s *settings, status int) {
	if status == 0 || s.ConfigPath == "" {
		return
	}
	registry, err := config.LoadFile(s.ConfigPath)
	if err != nil {
		logging.Warn("Could not load config to record submission", zap.Error(err))
		return
	}
	registry.RecordSubmission(s.Endpoint, status)
	if err := registry.SaveFile(s.ConfigPath); err != nil {
		logging.Warn("Could not record submission", zap.String("path", s.ConfigPath), zap.Error(err))
	}
}

// outcomeStatus returns the HTTP status of an outcome, or 0 if the job never answered
func outcomeStatus(o gaconfig.Outcome) int {
	if o.Response != nil {
		return o.Response.StatusCode
	}
	return gaconfig.StatusCode(o.Err)
}
