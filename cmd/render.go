package cmd

import (
	"fmt"
	"image/color"
	"image/png"
	"os"

	"github.com/mj1618/captvty-nav/internal/locate"
	"github.com/mj1618/captvty-nav/internal/output"
	"github.com/mj1618/captvty-nav/internal/platform"
	"github.com/spf13/cobra"
)

// RenderResult is the output of a successful render.
type RenderResult struct {
	OK       bool   `yaml:"ok"                 json:"ok"`
	Action   string `yaml:"action"             json:"action"`
	Path     string `yaml:"path"               json:"path"`
	Width    int    `yaml:"width"              json:"width"`
	Height   int    `yaml:"height"             json:"height"`
	Channels int    `yaml:"channels"           json:"channels"`
	Buttons  int    `yaml:"buttons"            json:"buttons"`
	Mode     string `yaml:"mode,omitempty"     json:"mode,omitempty"`
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Draw the located controls of the window to a PNG",
	Long: `Draw every element outline of the foreground window, then highlight what the
locators found: the channel list (yellow), its rows (green), the mode buttons
(blue) and the active mode button (red).

Examples:
  captvty-nav render --out layout.png
  captvty-nav render --fixture ./captvty.yaml --labels ids`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().String("out", "captvty.png", "Output PNG path")
	renderCmd.Flags().String("labels", "names", "Labels: names, ids, coords")
}

var (
	listColor   = color.RGBA{R: 230, G: 200, B: 40, A: 255}
	rowColor    = color.RGBA{R: 60, G: 200, B: 90, A: 255}
	buttonColor = color.RGBA{R: 70, G: 130, B: 240, A: 255}
	activeColor = color.RGBA{R: 230, G: 50, B: 50, A: 255}
)

func runRender(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("out")
	labels, _ := cmd.Flags().GetString("labels")
	mode, err := ParseLabelMode(labels)
	if err != nil {
		return err
	}

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

	locator := locate.New(cfg.Layout)
	var marks []highlight
	if list := locate.FindByWidth(window, cfg.Layout.ChannelListWidth); list != nil {
		marks = append(marks, highlight{el: list, color: listColor})
	}
	rows := locator.ChannelRows(window)
	for _, r := range rows {
		marks = append(marks, highlight{el: r, color: rowColor})
	}
	buttons := locator.ModeButtons(window)
	for _, b := range buttons {
		marks = append(marks, highlight{el: b, color: buttonColor})
	}
	if active := locate.RightMost(buttons); active != nil {
		marks = append(marks, highlight{el: active, color: activeColor})
	}

	img := RenderWindow(window, marks, mode)
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	return output.Print(RenderResult{
		OK:       true,
		Action:   "render",
		Path:     out,
		Width:    img.Bounds().Dx(),
		Height:   img.Bounds().Dy(),
		Channels: len(rows),
		Buttons:  len(buttons),
		Mode:     locator.AppMode(window).String(),
	})
}
