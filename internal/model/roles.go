package model

// RoleMap maps host role names (UI Automation control types and NVDA role
// constants) to compact role codes.
var RoleMap = map[string]string{
	"Button":          "btn",
	"ROLE_BUTTON":     "btn",
	"Text":            "txt",
	"ROLE_STATICTEXT": "txt",
	"Hyperlink":       "lnk",
	"Image":           "img",
	"Edit":            "input",
	"CheckBox":        "chk",
	"RadioButton":     "radio",
	"Menu":            "menu",
	"MenuItem":        "menuitem",
	"Tab":             "tab",
	"List":            "list",
	"ListItem":        "row",
	"DataItem":        "row",
	"Pane":            "pane",
	"ROLE_PANE":       "pane",
	"Group":           "group",
	"ScrollBar":       "scroll",
	"ToolBar":         "toolbar",
	"Window":          "window",
	"ROLE_WINDOW":     "window",
}

// knownCodes is the set of compact codes, so already-mapped roles pass through.
var knownCodes = func() map[string]bool {
	m := make(map[string]bool, len(RoleMap))
	for _, code := range RoleMap {
		m[code] = true
	}
	return m
}()

// MapRole converts a raw accessibility role to a compact code.
func MapRole(raw string) string {
	if short, ok := RoleMap[raw]; ok {
		return short
	}
	if knownCodes[raw] {
		return raw
	}
	return "other"
}
