package fixture

import "github.com/mj1618/captvty-nav/internal/model"

// SampleName selects the built-in sample window instead of a file.
const SampleName = "sample"

// SampleChannels are the channel rows of the sample window.
var SampleChannels = []string{
	"TF1", "France 2", "France 3", "Canal+", "France 5", "M6", "Arte", "C8",
	"W9", "TMC", "TFX", "NRJ 12", "LCP", "France 4", "BFM TV", "CNews",
	"CStar", "Gulli", "TF1 Séries Films", "L'Équipe", "6ter", "RMC Story",
	"RMC Découverte", "Chérie 25",
}

const (
	sampleListWidth = 263
	sampleRowHeight = 40
	sampleListTop   = 160
)

// Sample builds a Captvty 3 window in the given mode:
//
//	window
//	├── 0 title bar
//	├── 1 menu bar
//	├── 2 channel list (w=263)
//	│   ├── 0 header
//	│   └── 1 rows (scrollable): row > 3 pane > 1 channel button
//	├── 3 program pane
//	└── 4 mode strip (w=263) > 3 pane > groups > mode buttons
func Sample(mode model.AppMode) *Document {
	rows := make([]model.Element, len(SampleChannels))
	for i, name := range SampleChannels {
		y := sampleListTop + i*sampleRowHeight
		rows[i] = model.Element{
			Role: "ListItem", Name: name, Bounds: [4]int{0, y, sampleListWidth, sampleRowHeight},
			Children: []model.Element{
				{Role: "Image", Name: name, Bounds: [4]int{4, y + 4, 32, 32}},
				{Role: "Text", Name: name, Bounds: [4]int{40, y + 4, 120, 32}},
				{Role: "Image", Bounds: [4]int{220, y + 4, 32, 32}},
				{Role: "Pane", Name: name, Bounds: [4]int{0, y, sampleListWidth, sampleRowHeight}, Children: []model.Element{
					{Role: "Text", Name: name, Bounds: [4]int{0, y, 10, sampleRowHeight}},
					{Role: "Button", Name: name, Actions: []string{"press"}, Bounds: [4]int{10, y + 5, 240, 30}},
				}},
			},
		}
	}

	names := []string{model.DirectButtonName, model.CatchupButtonName, "TÉLÉCHARGEMENT MANUEL"}
	lefts := []int{10, 95, 180}
	// The active mode button is drawn right-most.
	switch mode {
	case model.ModeDirect:
		lefts[0], lefts[2] = lefts[2], lefts[0]
	case model.ModeCatchup:
		lefts[1], lefts[2] = lefts[2], lefts[1]
	}
	button := func(i int) model.Element {
		return model.Element{Role: "Button", Name: names[i], Actions: []string{"press"}, Bounds: [4]int{lefts[i], 45, 80, 24}}
	}

	doc := &Document{
		App:              "Captvty",
		Title:            "Captvty",
		ScrollContainers: []string{"2/1"},
		ScrollPixels:     sampleRowHeight,
		Root: model.Element{
			Role: "Window", Name: "Captvty", Bounds: [4]int{0, 0, 1280, 800},
			Children: []model.Element{
				{Role: "Pane", Name: "Captvty", Bounds: [4]int{0, 0, 1280, 30}},
				{Role: "ToolBar", Bounds: [4]int{263, 30, 1017, 40}},
				{Role: "Pane", Bounds: [4]int{0, 120, sampleListWidth, 680}, Children: []model.Element{
					{Role: "Pane", Bounds: [4]int{0, 120, sampleListWidth, 40}, Children: []model.Element{
						{Role: "Text", Name: "Chaînes", Bounds: [4]int{4, 124, 120, 32}},
						{Role: "Edit", Bounds: [4]int{130, 124, 128, 32}},
					}},
					{Role: "List", Bounds: [4]int{0, sampleListTop, sampleListWidth, 640}, Children: rows},
				}},
				{Role: "Pane", Bounds: [4]int{sampleListWidth, 120, 1017, 680}},
				{Role: "Pane", Bounds: [4]int{0, 40, sampleListWidth, 34}, Children: []model.Element{
					{Role: "Image", Bounds: [4]int{0, 40, 10, 34}},
					{Role: "Image", Bounds: [4]int{253, 40, 10, 34}},
					{Role: "Text", Bounds: [4]int{0, 40, 263, 2}},
					{Role: "Pane", Bounds: [4]int{0, 42, sampleListWidth, 30}, Children: []model.Element{
						{Role: "Group", Children: []model.Element{button(0), button(1)}},
						{Role: "Group", Children: []model.Element{button(2)}},
					}},
				}},
			},
		},
	}
	doc.Normalize()
	return doc
}
