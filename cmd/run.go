package cmd

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"

	"github.com/mj1618/a11ytree/internal/input"
	"github.com/mj1618/a11ytree/internal/model"
	"github.com/mj1618/a11ytree/internal/platform"
	"github.com/mj1618/a11ytree/internal/uitree"
	"github.com/spf13/cobra"
)

// RunStep is one JSONL line written by the run command.
type RunStep struct {
	Type       string           `json:"type"`
	Key        string           `json:"key,omitempty"`
	Command    string           `json:"command,omitempty"`
	Focused    string           `json:"focused,omitempty"`
	FocusMoved bool             `json:"focus_moved,omitempty"`
	Generation uint64           `json:"generation"`
	Count      int              `json:"count,omitempty"`
	Changes    []model.UIChange `json:"changes,omitempty"`
	Events     []uitree.Event   `json:"events,omitempty"`
	Error      string           `json:"error,omitempty"`
}

// runOptions filters what each step reports.
type runOptions struct {
	IgnoreBounds bool
	IgnoreFocus  bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Drive focus and activation with key chords from stdin",
	Long: `Read one key chord per line from stdin (or --keys) and feed it to the input
driver: down/tab move focus forward, up/shift+tab move it back, return activates
the focused element. Blank lines and lines starting with "#" are skipped.

Output is always JSONL regardless of the --format flag: a snapshot line first,
then one line per chord with the resolved command, the focused element and
whether it moved, the tree changes caused by any rebuild and the events raised
for listening clients.

Examples:
  printf 'tab\ntab\nreturn\n' | a11ytree run --scene todo
  a11ytree run --scene todo --keys tab,return`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().String("keys", "", "Comma-separated chords to send instead of reading stdin")
	runCmd.Flags().Bool("ignore-bounds", false, "Ignore element position changes")
	runCmd.Flags().Bool("ignore-focus", false, "Ignore focus changes in diffs")
}

func runRun(cmd *cobra.Command, args []string) error {
	session, err := openSession(true)
	if err != nil {
		return err
	}

	keys, _ := cmd.Flags().GetString("keys")
	ignoreBounds, _ := cmd.Flags().GetBool("ignore-bounds")
	ignoreFocus, _ := cmd.Flags().GetBool("ignore-focus")

	in := cmd.InOrStdin()
	if keys != "" {
		in = strings.NewReader(strings.Join(splitList(keys), "\n"))
	}
	return runKeys(session, in, cmd.OutOrStdout(), runOptions{
		IgnoreBounds: ignoreBounds,
		IgnoreFocus:  ignoreFocus,
	})
}

// runKeys feeds every chord read from r to the session and writes one step
// per chord to w.
func runKeys(session *platform.Session, r io.Reader, w io.Writer, opts runOptions) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	prev := model.FlattenElements(session.Elements())
	session.Provider.Events.Drain()
	session.Tree.TakeFocusChanged()
	if err := enc.Encode(RunStep{
		Type:       "snapshot",
		Focused:    session.Host.Focus().String(),
		Generation: session.Tree.Snapshot().Generation(),
		Count:      len(prev),
	}); err != nil {
		return err
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		step := RunStep{Type: "key", Key: line}
		chord, err := input.ParseChord(line)
		if err == nil {
			var c input.Command
			c, err = session.Tap(chord)
			step.Command = c.String()
		}
		if err != nil {
			step.Type = "error"
			step.Error = err.Error()
		}

		curr := model.FlattenElements(session.Elements())
		step.Changes = filterChanges(model.DiffElements(prev, curr), opts)
		step.Events = session.Provider.Events.Drain()
		step.Focused = session.Host.Focus().String()
		step.FocusMoved = session.Tree.TakeFocusChanged()
		step.Generation = session.Tree.Snapshot().Generation()
		prev = curr

		if err := enc.Encode(step); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func filterChanges(changes []model.UIChange, opts runOptions) []model.UIChange {
	var out []model.UIChange
	for _, change := range changes {
		if change.Type == model.ChangeChanged {
			if opts.IgnoreBounds {
				delete(change.Changes, "b")
			}
			if opts.IgnoreFocus {
				delete(change.Changes, "f")
			}
			if len(change.Changes) == 0 {
				continue
			}
		}
		out = append(out, change)
	}
	return out
}
