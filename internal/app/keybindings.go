package app

import (
	"slices"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/treykane/mathmark/internal/config"
)

// Actions sit between key presses and editor behaviour. A key is looked up
// in keyToAction and the action is dispatched in handleAction. Every action
// can be rebound through the "keybindings" object in config.json.
const (
	// actionFocusToggle moves focus between the markdown and escaped panes.
	actionFocusToggle = "pane.focus.toggle"

	// actionPreviewToggle shows or hides the rendered preview.
	actionPreviewToggle = "preview.toggle"

	// actionCopyEscaped copies the escaped pane to the system clipboard.
	actionCopyEscaped = "escaped.copy"

	// actionPaste inserts clipboard text into the focused pane.
	actionPaste = "clipboard.paste"

	// actionTargetCycle switches to the next registered target format.
	actionTargetCycle = "target.cycle"

	// actionSave writes the draft and the settings.
	actionSave = "app.save"

	actionPreviewPageUp   = "preview.scroll.page_up"
	actionPreviewPageDown = "preview.scroll.page_down"

	// actionHelp toggles the full key reference in the footer.
	actionHelp = "help.toggle"

	// actionQuit saves the draft and exits.
	actionQuit = "app.quit"
)

// defaultActionKeys maps each action to its factory-default keys, in Bubble
// Tea notation ("ctrl+", "alt+", "shift+" modifiers; "tab", "pgup", "f1").
var defaultActionKeys = map[string][]string{
	actionFocusToggle:     {"tab"},
	actionPreviewToggle:   {"ctrl+r"},
	actionCopyEscaped:     {"ctrl+y"},
	actionPaste:           {"ctrl+v"},
	actionTargetCycle:     {"ctrl+o"},
	actionSave:            {"ctrl+s"},
	actionPreviewPageUp:   {"pgup"},
	actionPreviewPageDown: {"pgdown"},
	actionHelp:            {"f1"},
	actionQuit:            {"ctrl+c", "esc"},
}

var actionHelpText = map[string]string{
	actionFocusToggle:     "switch pane",
	actionPreviewToggle:   "preview",
	actionCopyEscaped:     "copy escaped",
	actionPaste:           "paste",
	actionTargetCycle:     "target",
	actionSave:            "save",
	actionPreviewPageUp:   "scroll up",
	actionPreviewPageDown: "scroll down",
	actionHelp:            "help",
	actionQuit:            "quit",
}

// shortHelpActions are shown in the footer when the full reference is hidden.
var shortHelpActions = []string{
	actionFocusToggle,
	actionCopyEscaped,
	actionPreviewToggle,
	actionTargetCycle,
	actionHelp,
	actionQuit,
}

// loadKeybindings builds the key maps from the defaults, then applies the
// overrides in cfg.Keybindings. An override replaces every default key of
// its action. Unknown actions and key conflicts are logged and ignored; the
// first action to claim a key keeps it.
func (m *Model) loadKeybindings(cfg config.Config) {
	m.keyForAction = map[string][]string{}
	for action, keys := range defaultActionKeys {
		m.keyForAction[action] = append([]string(nil), keys...)
	}
	for action, key := range cfg.Keybindings {
		m.applyKeybindingOverride(action, key)
	}
	m.rebuildActionKeyIndex()
}

func (m *Model) applyKeybindingOverride(action, key string) {
	action = strings.TrimSpace(action)
	key = normalizeKeyString(key)
	if action == "" || key == "" {
		return
	}
	if _, ok := defaultActionKeys[action]; !ok {
		appLog.Warn("ignore unknown keybinding action", "action", action)
		return
	}
	m.keyForAction[action] = []string{key}
}

// rebuildActionKeyIndex fills keyToAction from keyForAction. Actions are
// visited in sorted order so conflicts resolve the same way on every start.
func (m *Model) rebuildActionKeyIndex() {
	actions := make([]string, 0, len(m.keyForAction))
	for action := range m.keyForAction {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	m.keyToAction = map[string]string{}
	for _, action := range actions {
		for _, key := range m.keyForAction[action] {
			if key == "" {
				continue
			}
			if existing, ok := m.keyToAction[key]; ok && existing != action {
				appLog.Warn("keybinding conflict ignored", "key", key, "action", action, "existing_action", existing)
				continue
			}
			m.keyToAction[key] = action
		}
	}
}

// normalizeKeyString lowercases a configured key. A single uppercase letter
// becomes "shift+<letter>" because Bubble Tea may report shifted letters as
// uppercase runes.
//
//	normalizeKeyString("Ctrl+S") → "ctrl+s"
//	normalizeKeyString(" Y ")    → "shift+y"
func normalizeKeyString(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	if len([]rune(key)) == 1 && strings.ToUpper(key) == key && strings.ToLower(key) != key {
		return "shift+" + strings.ToLower(key)
	}
	return strings.ToLower(key)
}

// actionForKey returns the action bound to key, or "" when none is.
func (m *Model) actionForKey(key string) string {
	if m.keyToAction == nil {
		return ""
	}
	return m.keyToAction[normalizeKeyString(key)]
}

// binding describes action for the help footer. Keys the action lost in a
// conflict are left out, and an action without keys is disabled so help
// skips it.
func (m *Model) binding(action string) key.Binding {
	var keys []string
	for _, k := range m.keyForAction[action] {
		if m.keyToAction[k] == action && !slices.Contains(keys, k) {
			keys = append(keys, k)
		}
	}
	labels := make([]string, 0, len(keys))
	for _, k := range keys {
		labels = append(labels, humanizeKeyLabel(k))
	}
	b := key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(labels, "/"), actionHelpText[action]),
	)
	b.SetEnabled(len(keys) > 0)
	return b
}

// helpKeys adapts the model's bindings to the bubbles help component.
type helpKeys struct {
	m *Model
}

var _ help.KeyMap = helpKeys{}

func (h helpKeys) ShortHelp() []key.Binding {
	bindings := make([]key.Binding, 0, len(shortHelpActions))
	for _, action := range shortHelpActions {
		bindings = append(bindings, h.m.binding(action))
	}
	return bindings
}

func (h helpKeys) FullHelp() [][]key.Binding {
	columns := [][]string{
		{actionFocusToggle, actionPaste, actionCopyEscaped},
		{actionPreviewToggle, actionPreviewPageUp, actionPreviewPageDown},
		{actionTargetCycle, actionSave, actionHelp, actionQuit},
	}
	out := make([][]key.Binding, 0, len(columns))
	for _, column := range columns {
		row := make([]key.Binding, 0, len(column))
		for _, action := range column {
			row = append(row, h.m.binding(action))
		}
		out = append(out, row)
	}
	return out
}

func humanizeKeyLabel(key string) string {
	normalized := normalizeKeyString(key)
	if normalized == "" {
		return ""
	}
	special := map[string]string{
		"up":     "↑",
		"down":   "↓",
		"enter":  "Enter",
		"esc":    "Esc",
		"tab":    "Tab",
		"pgup":   "PgUp",
		"pgdown": "PgDn",
		"space":  "Space",
	}
	parts := strings.Split(normalized, "+")
	for i, part := range parts {
		switch part {
		case "ctrl":
			parts[i] = "Ctrl"
		case "alt":
			parts[i] = "Alt"
		case "shift":
			parts[i] = "Shift"
		case "":
		default:
			if label, ok := special[part]; ok {
				parts[i] = label
				continue
			}
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, "+")
}
