package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/mj1618/captvty-nav/internal/locate"
	"github.com/mj1618/captvty-nav/internal/model"
	"github.com/mj1618/captvty-nav/internal/output"
	"github.com/mj1618/captvty-nav/internal/platform"
	"github.com/mj1618/captvty-nav/internal/platform/fixture"
	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the foreground window tree with child-index paths",
	Long: `Print every element of the foreground window with its child-index path.
The paths are the ones the locators descend through, so this is the first
stop when a Captvty update moves its controls.

--export writes the window as a fixture file that --fixture can replay. The
channel row container is recorded as the scroll container when it is found.
--diff compares the window against a fixture file and prints what moved.

Examples:
  captvty-nav tree --width 263
  captvty-nav tree --roles btn --text direct
  captvty-nav tree --diff ./captvty.yaml`,
	Args: cobra.NoArgs,
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().Int("depth", 0, "Max depth to print (0 = unlimited)")
	treeCmd.Flags().String("export", "", "Write the window as a fixture YAML file")
	treeCmd.Flags().String("diff", "", "Print changes since the window in this fixture YAML file")
	treeCmd.Flags().String("roles", "", "Comma-separated role codes to keep (e.g. \"btn,row\")")
	treeCmd.Flags().String("text", "", "Keep elements whose name contains this text")
	treeCmd.Flags().Int("width", 0, "Keep elements of exactly this width")
}

func runTree(cmd *cobra.Command, args []string) error {
	depth, _ := cmd.Flags().GetInt("depth")
	export, _ := cmd.Flags().GetString("export")
	diffPath, _ := cmd.Flags().GetString("diff")
	rolesStr, _ := cmd.Flags().GetString("roles")
	text, _ := cmd.Flags().GetString("text")
	width, _ := cmd.Flags().GetInt("width")

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	if provider.Reader == nil {
		return fmt.Errorf("reader not available on this host")
	}
	window, err := provider.Reader.ForegroundWindow()
	if err != nil {
		return err
	}

	if export != "" {
		doc := exportDocument(window)
		data, err := doc.Marshal()
		if err != nil {
			return err
		}
		if err := os.WriteFile(export, data, 0o644); err != nil {
			return fmt.Errorf("write fixture: %w", err)
		}
	}

	if diffPath != "" {
		prev, err := fixture.LoadFile(diffPath)
		if err != nil {
			return err
		}
		changes := model.DiffElements(model.FlattenElements(&prev.Root, depth), model.FlattenElements(window, depth))
		if changes == nil {
			changes = []model.UIChange{}
		}
		return output.Print(changes)
	}

	filter := model.FlatFilter{Roles: parseRoles(rolesStr), Text: text, Width: width}
	return output.Print(model.FilterFlat(model.FlattenElements(window, depth), filter))
}

// parseRoles splits a comma-separated role list into compact role codes.
func parseRoles(s string) []string {
	var roles []string
	for _, r := range strings.Split(s, ",") {
		if r = strings.TrimSpace(r); r != "" {
			roles = append(roles, model.MapRole(r))
		}
	}
	return roles
}

// exportDocument wraps window as a fixture, locating its channel row
// container so the replay can scroll it.
func exportDocument(window *model.Element) *fixture.Document {
	doc := &fixture.Document{
		App:   "Captvty",
		Title: window.Name,
		Root:  *window,
	}
	rows := locate.New(cfg.Layout).ChannelRows(window)
	if len(rows) == 0 {
		return doc
	}
	container := model.Ancestor(window, rows[0].ID, 3)
	if container == nil {
		return doc
	}
	for _, fe := range model.FlattenElements(window, 0) {
		if fe.ID == container.ID {
			doc.ScrollContainers = []string{fe.Path}
			break
		}
	}
	return doc
}
