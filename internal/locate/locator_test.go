package locate

import (
	"io"
	"testing"

	"github.com/mj1618/captvty-nav/internal/config"
	"github.com/mj1618/captvty-nav/internal/model"
	"github.com/sirupsen/logrus"
)

const listWidth = 263

// modeStrip builds the window holding the mode buttons:
//
//	strip (w=263)
//	├── 0..2 decoration
//	└── 3 pane
//	    ├── group: DIRECT, RATTRAPAGE
//	    └── group: TÉLÉCHARGEMENT MANUEL, label (txt)
func modeStrip(id int, lefts [3]int, names [3]string) model.Element {
	btn := func(n int) model.Element {
		return model.Element{ID: id + 10 + n, Role: "btn", Name: names[n], Bounds: [4]int{lefts[n], 40, 80, 24}}
	}
	return model.Element{
		ID: id, Role: "pane", Bounds: [4]int{0, 40, listWidth, 30},
		Children: []model.Element{
			{ID: id + 1, Role: "img"},
			{ID: id + 2, Role: "img"},
			{ID: id + 3, Role: "img"},
			{ID: id + 4, Role: "pane", Children: []model.Element{
				{ID: id + 5, Role: "group", Children: []model.Element{btn(0), btn(1)}},
				{ID: id + 6, Role: "group", Children: []model.Element{
					btn(2),
					{ID: id + 7, Role: "txt", Name: "Mode"},
				}},
			}},
		},
	}
}

func filler(id, width int) model.Element {
	return model.Element{ID: id, Role: "pane", Bounds: [4]int{0, 0, width, 10}}
}

// channelList builds a list container with a header and rowCount channel rows.
// Each row's clickable element sits at row > child 3 > child 1.
func channelList(id, rowCount int) model.Element {
	rows := make([]model.Element, rowCount)
	for i := range rows {
		base := id + 100 + i*10
		rows[i] = model.Element{ID: base, Role: "row", Children: []model.Element{
			{ID: base + 1, Role: "img"},
			{ID: base + 2, Role: "txt"},
			{ID: base + 3, Role: "img"},
			{ID: base + 4, Role: "pane", Children: []model.Element{
				{ID: base + 5, Role: "txt"},
				{ID: base + 6, Role: "btn", Name: channelName(i), Bounds: [4]int{10, 140 + i*40, 240, 30}},
			}},
		}}
	}
	return model.Element{
		ID: id, Role: "pane", Bounds: [4]int{0, 120, listWidth, 600},
		Children: []model.Element{
			{ID: id + 1, Role: "pane", Children: []model.Element{{ID: id + 2}, {ID: id + 3}}},
			{ID: id + 4, Role: "list", Bounds: [4]int{0, 140, listWidth, 580}, Children: rows},
		},
	}
}

func channelName(i int) string {
	return "Chaîne " + string(rune('A'+i))
}

var defaultNames = [3]string{"DIRECT", "RATTRAPAGE", "TÉLÉCHARGEMENT MANUEL"}

func newTestLocator() *Locator {
	l := New(config.DefaultLayout())
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	l.Log = logger
	return l
}

func TestFindByWidth(t *testing.T) {
	root := &model.Element{ID: 1, Children: []model.Element{
		filler(2, 100), filler(3, listWidth), filler(4, listWidth),
	}}
	got := FindByWidth(root, listWidth)
	if got == nil || got.ID != 3 {
		t.Fatalf("FindByWidth = %v, want id=3 (first match)", got)
	}
	if FindByWidth(root, 264) != nil {
		t.Error("no fuzzy match expected")
	}
	if FindByWidth(nil, listWidth) != nil {
		t.Error("nil root should return nil")
	}
}

func TestFindByWidth_DirectChildrenOnly(t *testing.T) {
	root := &model.Element{ID: 1, Children: []model.Element{
		{ID: 2, Bounds: [4]int{0, 0, 500, 10}, Children: []model.Element{filler(3, listWidth)}},
	}}
	if got := FindByWidth(root, listWidth); got != nil {
		t.Errorf("FindByWidth should not descend, got id=%d", got.ID)
	}
}

func TestModeButtons_FoundAtEachIndex(t *testing.T) {
	for i := 3; i < 7; i++ {
		window := &model.Element{ID: 1}
		for j := 0; j < 7; j++ {
			if j == i {
				window.Children = append(window.Children, modeStrip(1000, [3]int{0, 90, 180}, defaultNames))
			} else {
				window.Children = append(window.Children, filler(j+2, 500))
			}
		}
		l := newTestLocator()
		buttons := l.ModeButtons(window)
		if len(buttons) != 3 {
			t.Fatalf("index %d: expected 3 buttons, got %d", i, len(buttons))
		}
		if got, ok := l.Cache.Get(); !ok || got != i {
			t.Errorf("index %d: cache = %d,%v", i, got, ok)
		}
	}
}

func TestModeButtons_IgnoresBeforeScanStart(t *testing.T) {
	window := &model.Element{ID: 1, Children: []model.Element{
		filler(2, 500),
		modeStrip(1000, [3]int{0, 90, 180}, defaultNames),
		filler(3, 500),
	}}
	l := newTestLocator()
	if got := l.ModeButtons(window); got != nil {
		t.Fatalf("expected nil before the scan offset, got %d buttons", len(got))
	}
	if _, ok := l.Cache.Get(); ok {
		t.Error("cache should stay empty")
	}
}

func TestModeButtons_RejectsWrongButtonCount(t *testing.T) {
	strip := modeStrip(1000, [3]int{0, 90, 180}, defaultNames)
	// Turn the third button into text.
	strip.Children[3].Children[1].Children[0].Role = "txt"
	window := &model.Element{ID: 1, Children: []model.Element{
		filler(2, 1), filler(3, 1), filler(4, 1), strip,
	}}
	l := newTestLocator()
	if got := l.ModeButtons(window); got != nil {
		t.Fatalf("expected nil with 2 buttons, got %d", len(got))
	}
}

func TestModeButtons_FirstMatchWins(t *testing.T) {
	window := &model.Element{ID: 1, Children: []model.Element{
		filler(2, 1), filler(3, 1), filler(4, 1),
		filler(5, listWidth), // right width, no pane
		modeStrip(1000, [3]int{0, 90, 180}, defaultNames),
		modeStrip(2000, [3]int{0, 90, 180}, defaultNames),
	}}
	l := newTestLocator()
	buttons := l.ModeButtons(window)
	if len(buttons) != 3 {
		t.Fatalf("expected 3 buttons, got %d", len(buttons))
	}
	if buttons[0].ID != 1010 {
		t.Errorf("expected buttons of the first strip, got id=%d", buttons[0].ID)
	}
	if got, _ := l.Cache.Get(); got != 4 {
		t.Errorf("cache = %d, want 4", got)
	}
}

func TestModeButtons_UsesCachedIndex(t *testing.T) {
	window := &model.Element{ID: 1, Children: []model.Element{
		filler(2, 1), filler(3, 1), filler(4, 1),
		modeStrip(1000, [3]int{0, 90, 180}, defaultNames),
		filler(5, 1),
		modeStrip(2000, [3]int{0, 90, 180}, defaultNames),
	}}
	l := newTestLocator()
	l.Cache.Set(5)
	buttons := l.ModeButtons(window)
	if len(buttons) != 3 || buttons[0].ID != 2010 {
		t.Fatalf("expected the strip at the cached index, got %v", buttons)
	}
}

func TestModeButtons_StaleCacheClearedThenRescanned(t *testing.T) {
	window := &model.Element{ID: 1, Children: []model.Element{
		filler(2, 1), filler(3, 1), filler(4, 1),
		modeStrip(1000, [3]int{0, 90, 180}, defaultNames),
		filler(5, 1),
		filler(6, 1),
	}}
	l := newTestLocator()
	l.Cache.Set(5) // buttons moved from 5 to 3

	if got := l.ModeButtons(window); got != nil {
		t.Fatalf("scan from the stale index should fail, got %d buttons", len(got))
	}
	if _, ok := l.Cache.Get(); ok {
		t.Fatal("stale cache should be invalidated")
	}

	buttons := l.ModeButtons(window)
	if len(buttons) != 3 {
		t.Fatalf("rescan from the default offset should succeed, got %d", len(buttons))
	}
	if got, ok := l.Cache.Get(); !ok || got != 3 {
		t.Errorf("cache = %d,%v, want 3,true", got, ok)
	}
}

func TestModeButtons_TreeMutationInvalidates(t *testing.T) {
	window := &model.Element{ID: 1, Children: []model.Element{
		filler(2, 1), filler(3, 1), filler(4, 1),
		modeStrip(1000, [3]int{0, 90, 180}, defaultNames),
	}}
	l := newTestLocator()
	if l.ModeButtons(window) == nil {
		t.Fatal("expected buttons")
	}
	window.Children[3].Bounds[2] = 300
	if l.ModeButtons(window) != nil {
		t.Fatal("expected nil after the strip changed width")
	}
	if _, ok := l.Cache.Get(); ok {
		t.Error("cache should be cleared")
	}
}

func TestChannelRows(t *testing.T) {
	window := &model.Element{ID: 1, Children: []model.Element{
		filler(2, 1280),
		channelList(3000, 20),
		filler(4, 1017),
		filler(5, 1280),
		modeStrip(1000, [3]int{0, 90, 180}, defaultNames),
	}}
	l := newTestLocator()
	rows := l.ChannelRows(window)
	if len(rows) != 20 {
		t.Fatalf("expected 20 channel rows, got %d", len(rows))
	}
	if rows[0].Name != channelName(0) || rows[19].Name != channelName(19) {
		t.Errorf("unexpected row order: first=%q last=%q", rows[0].Name, rows[19].Name)
	}
}

func TestChannelRows_BelowThreshold(t *testing.T) {
	window := &model.Element{ID: 1, Children: []model.Element{channelList(3000, 17)}}
	l := newTestLocator()
	if rows := l.ChannelRows(window); rows != nil {
		t.Fatalf("expected nil below 18 rows, got %d", len(rows))
	}
}

func TestChannelRows_SkipsMalformedRows(t *testing.T) {
	list := channelList(3000, 18)
	list.Children[1].Children[4].Children = list.Children[1].Children[4].Children[:2]
	window := &model.Element{ID: 1, Children: []model.Element{list}}
	l := newTestLocator()
	rows := l.ChannelRows(window)
	if len(rows) != 17 {
		t.Fatalf("expected 17 rows with one malformed, got %d", len(rows))
	}
}

func TestChannelRows_AllRowsMalformed(t *testing.T) {
	list := channelList(3000, 18)
	for i := range list.Children[1].Children {
		row := &list.Children[1].Children[i]
		row.Children = row.Children[:3]
	}
	window := &model.Element{ID: 1, Children: []model.Element{list}}
	if rows := newTestLocator().ChannelRows(window); rows != nil {
		t.Fatalf("expected nil when no row has its clickable element, got %d rows", len(rows))
	}
}

func TestChannelRows_NoList(t *testing.T) {
	window := &model.Element{ID: 1, Children: []model.Element{filler(2, 100)}}
	if rows := newTestLocator().ChannelRows(window); rows != nil {
		t.Fatalf("expected nil, got %d rows", len(rows))
	}
}

func modeWindow(lefts [3]int, names [3]string) *model.Element {
	return &model.Element{ID: 1, Children: []model.Element{
		filler(2, 1), filler(3, 1), filler(4, 1),
		modeStrip(1000, lefts, names),
	}}
}

func TestAppMode(t *testing.T) {
	tests := []struct {
		name  string
		lefts [3]int
		want  model.AppMode
	}{
		{"catchup right-most", [3]int{0, 180, 90}, model.ModeCatchup},
		{"direct right-most", [3]int{180, 0, 90}, model.ModeDirect},
		{"manual right-most", [3]int{0, 90, 180}, model.ModeOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newTestLocator().AppMode(modeWindow(tt.lefts, defaultNames))
			if got != tt.want {
				t.Errorf("AppMode = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppMode_NoButtons(t *testing.T) {
	window := &model.Element{ID: 1}
	if got := newTestLocator().AppMode(window); got != model.ModeOther {
		t.Errorf("AppMode = %v, want other", got)
	}
}

func TestRightMost_OrderIndependent(t *testing.T) {
	a := &model.Element{ID: 1, Name: "DIRECT", Bounds: [4]int{0, 0, 10, 10}}
	b := &model.Element{ID: 2, Name: "RATTRAPAGE", Bounds: [4]int{200, 0, 10, 10}}
	c := &model.Element{ID: 3, Name: "TÉLÉCHARGEMENT MANUEL", Bounds: [4]int{100, 0, 10, 10}}

	orders := [][]*model.Element{
		{a, b, c}, {a, c, b}, {b, a, c}, {b, c, a}, {c, a, b}, {c, b, a},
	}
	for _, order := range orders {
		if got := RightMost(order); got.ID != 2 {
			t.Errorf("RightMost = id %d, want 2", got.ID)
		}
	}
	if RightMost(nil) != nil {
		t.Error("RightMost(nil) should be nil")
	}
}

func TestButtonByName(t *testing.T) {
	buttons := newTestLocator().ModeButtons(modeWindow([3]int{0, 90, 180}, defaultNames))
	if got := ButtonByName(buttons, "RATTRAPAGE"); got == nil || got.ID != 1011 {
		t.Fatalf("ButtonByName(RATTRAPAGE) = %v", got)
	}
	if ButtonByName(buttons, "MISSING") != nil {
		t.Error("expected nil for an unknown name")
	}
}

func TestIndexCache(t *testing.T) {
	var c IndexCache
	if _, ok := c.Get(); ok {
		t.Fatal("new cache should be empty")
	}
	c.Set(4)
	if i, ok := c.Get(); !ok || i != 4 {
		t.Fatalf("Get() = %d,%v", i, ok)
	}
	c.Invalidate()
	if _, ok := c.Get(); ok {
		t.Fatal("cache should be empty after Invalidate")
	}
}
