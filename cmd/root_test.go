package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mj1618/captvty-nav/internal/output"
	"github.com/mj1618/captvty-nav/internal/server"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resetFlags restores every flag to its default. Cobra keeps flag values
// between Execute calls in the same process.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			sv.Replace(nil)
		} else {
			f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// runCLI executes the root command with args and returns what it printed.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var buf bytes.Buffer
	oldOut := output.Out
	output.Out = &buf
	defer func() { output.Out = oldOut }()

	rootCmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := rootCmd.Execute()
	return buf.String(), err
}

func runCLIJSON(t *testing.T, args ...string) (server.Result, error) {
	t.Helper()
	out, err := runCLI(t, append([]string{"--format", "json"}, args...)...)
	var r server.Result
	if jerr := json.Unmarshal([]byte(out), &r); jerr != nil {
		t.Fatalf("output is not a JSON result: %v\n%s", jerr, out)
	}
	return r, err
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	expected := []string{
		"mode", "buttons", "select-mode", "channels", "select-channel",
		"gesture", "parse-program", "tree", "render", "serve",
	}
	found := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		found[c.Name()] = true
	}
	for _, name := range expected {
		if !found[name] {
			t.Errorf("expected subcommand %q not found", name)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	if rootCmd.Version == "" {
		t.Error("root command version should be set")
	}
}

func TestRootCommand_RejectsUnknownFormat(t *testing.T) {
	if _, err := runCLI(t, "--format", "agent", "mode"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestRootCommand_MissingFixture(t *testing.T) {
	if _, err := runCLI(t, "--fixture", "/nonexistent/captvty.yaml", "mode"); err == nil {
		t.Error("expected error for a missing fixture file")
	}
}

func TestModeCommand(t *testing.T) {
	r, err := runCLIJSON(t, "mode")
	if err != nil {
		t.Fatal(err)
	}
	if !r.OK || r.Mode != "direct" {
		t.Errorf("result = %+v", r)
	}
	if len(r.Spoken) != 1 {
		t.Errorf("spoken = %v", r.Spoken)
	}
}

func TestButtonsCommand(t *testing.T) {
	r, err := runCLIJSON(t, "buttons")
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Buttons) != 3 {
		t.Errorf("buttons = %v", r.Buttons)
	}
}

func TestSelectModeCommand(t *testing.T) {
	r, err := runCLIJSON(t, "select-mode", "catchup")
	if err != nil {
		t.Fatal(err)
	}
	if r.Mode != "catchup" || len(r.Inputs) != 1 {
		t.Errorf("result = %+v", r)
	}

	if _, err := runCLI(t, "select-mode"); err == nil {
		t.Error("expected error without a mode argument")
	}
}

func TestChannelsCommand_YAML(t *testing.T) {
	out, err := runCLI(t, "channels")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Chérie 25") || !strings.Contains(out, "mode: direct") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestSelectChannelCommand(t *testing.T) {
	r, err := runCLIJSON(t, "select-channel", "--channel", "France 2", "--option", "#1")
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Inputs) != 1 || r.Inputs[0] != "click left 130,200" {
		t.Errorf("inputs = %v", r.Inputs)
	}
}

func TestSelectChannelCommand_RequiresChannel(t *testing.T) {
	if _, err := runCLI(t, "select-channel"); err == nil {
		t.Error("expected error without --channel")
	}
}

func TestSelectChannelCommand_RecordNotImplemented(t *testing.T) {
	r, err := runCLIJSON(t, "select-channel", "--channel", "tf1", "--option", "enregistrement")
	if err == nil {
		t.Fatal("expected scheduling a recording to be reported as not implemented")
	}
	if r.OK || r.Error == "" || len(r.Inputs) != 1 {
		t.Errorf("result = %+v", r)
	}
}

func TestGestureCommand(t *testing.T) {
	r, err := runCLIJSON(t, "gesture", "nvda+l", "--answer", "Arte", "--answer", "#2")
	if err != nil {
		t.Fatal(err)
	}
	// Arte is row 6: centre y 420, external player offset +162.
	if len(r.Inputs) != 1 || r.Inputs[0] != "click left 292,400" {
		t.Errorf("inputs = %v", r.Inputs)
	}
}

func TestGestureCommand_List(t *testing.T) {
	out, err := runCLI(t, "gesture", "--list")
	if err != nil {
		t.Fatal(err)
	}
	for _, g := range []string{"kb:control+d", "kb:control+r", "kb:nvda+l"} {
		if !strings.Contains(out, g) {
			t.Errorf("gesture %q missing from list:\n%s", g, out)
		}
	}
}

func TestGestureCommand_RequiresCombo(t *testing.T) {
	if _, err := runCLI(t, "gesture"); err == nil {
		t.Error("expected error without a gesture")
	}
}

func TestParseProgramCommand(t *testing.T) {
	r, err := runCLIJSON(t, "parse-program", "Foo; Chaîne: ARTE; Durée: 1h")
	if err != nil {
		t.Fatal(err)
	}
	if r.Program == nil || r.Program.Name != "Foo" {
		t.Fatalf("program = %+v", r.Program)
	}
	if r.Program.Channel == nil || *r.Program.Channel != "ARTE" {
		t.Errorf("channel = %v", r.Program.Channel)
	}
	if r.Program.Duration != nil {
		t.Error("out-of-order label should end parsing")
	}
}
