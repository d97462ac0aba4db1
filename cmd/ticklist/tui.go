// Interactive checklist view built on Bubble Tea.
package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/ticklist/pkg/checklist"
	"github.com/mesh-intelligence/ticklist/pkg/types"
)

var tuiCmd = &cobra.Command{
	Use:   "tui <id>",
	Short: "Open a checklist in an interactive view",
	Long: `Tui opens one checklist in a full-screen view. Keys:

  space  toggle the selected task
  a      add a task
  d      delete the selected task
  c      mark the whole checklist complete
  q/esc  quit

Every action persists immediately.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withLockedRepo(func(ctx context.Context, repo *checklist.Repository) error {
			rec, err := repo.Get(ctx, id)
			if err != nil {
				return fmt.Errorf("get checklist %d: %w", id, err)
			}
			m := newTaskView(ctx, repo, rec)
			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		})
	},
}

// taskItem adapts one task to bubbles/list.Item.
type taskItem struct {
	Text string
	Done bool
}

func (i taskItem) Title() string       { return i.Text }
func (i taskItem) Description() string { return "" }
func (i taskItem) FilterValue() string { return i.Text }

// taskDelegate renders tasks as single checkbox lines.
type taskDelegate struct{}

func (d taskDelegate) Height() int                               { return 1 }
func (d taskDelegate) Spacing() int                              { return 0 }
func (d taskDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(taskItem)

	box := mutedStyle.Render(boxUnchecked)
	text := it.Text
	if it.Done {
		box = successStyle.Render(boxChecked)
		text = doneStyle.Render(text)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+box+" "+text)
}

// taskView is the Bubble Tea model for one checklist.
type taskView struct {
	ctx  context.Context
	repo *checklist.Repository
	rec  *types.ChecklistRecord

	list   list.Model
	adding bool
	input  textinput.Model
	errMsg string
}

func newTaskView(ctx context.Context, repo *checklist.Repository, rec *types.ChecklistRecord) taskView {
	l := list.New(taskItems(rec), taskDelegate{}, 0, 0)
	l.Title = viewTitle(rec)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("task", "tasks")
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle

	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	delBind := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	doneBind := key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "complete all"))
	toggleBind := key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"))
	extra := func() []key.Binding {
		return []key.Binding{toggleBind, addBind, delBind, doneBind}
	}
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "New task..."
	input.CharLimit = 200

	return taskView{
		ctx:   ctx,
		repo:  repo,
		rec:   rec,
		list:  l,
		input: input,
	}
}

func taskItems(rec *types.ChecklistRecord) []list.Item {
	items := make([]list.Item, 0, len(rec.Tasks))
	for _, task := range rec.Tasks {
		items = append(items, taskItem{Text: task, Done: rec.IsDone(task)})
	}
	return items
}

func viewTitle(rec *types.ChecklistRecord) string {
	state := ""
	if rec.Complete {
		state = successStyle.Render(" ✔ complete")
	}
	return fmt.Sprintf("%s  %d/%d%s",
		titleStyle.Render(rec.Title), len(rec.Done), len(rec.Tasks), state)
}

func (m taskView) Init() tea.Cmd { return nil }

func (m taskView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.list.SetSize(size.Width-2, size.Height-2)
		return m, nil
	}

	if m.adding {
		var cmd tea.Cmd
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "enter":
				task := strings.TrimSpace(m.input.Value())
				m.apply(func(rec *types.ChecklistRecord) error {
					return rec.AddTask(task)
				})
				m.input.SetValue("")
				m.input.Blur()
				m.adding = false
				return m.reload(), nil
			case "esc":
				m.adding = false
				m.input.SetValue("")
				m.input.Blur()
				return m, nil
			}
		}
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.list.SettingFilter() {
		switch keyMsg.String() {
		case "q", "esc":
			return m, tea.Quit
		case " ":
			if task, ok := m.selectedTask(); ok {
				m.apply(func(rec *types.ChecklistRecord) error {
					return rec.ToggleTask(task)
				})
			}
			return m.reload(), nil
		case "d":
			if task, ok := m.selectedTask(); ok {
				m.apply(func(rec *types.ChecklistRecord) error {
					return rec.RemoveTask(task)
				})
			}
			return m.reload(), nil
		case "c":
			m.apply(func(rec *types.ChecklistRecord) error {
				rec.SetComplete()
				return nil
			})
			return m.reload(), nil
		case "a":
			m.adding = true
			m.errMsg = ""
			m.input.Focus()
			return m, textinput.Blink
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// apply runs a mutation through the repository and records any error for the
// status line. The in-memory record is refreshed from the persisted copy.
func (m *taskView) apply(fn func(*types.ChecklistRecord) error) {
	rec, err := m.repo.Update(m.ctx, m.rec.ID, fn)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
	m.rec = rec
}

// reload rebuilds the list items and title from the current record.
func (m taskView) reload() taskView {
	idx := m.list.Index()
	m.list.SetItems(taskItems(m.rec))
	if idx >= len(m.rec.Tasks) {
		idx = len(m.rec.Tasks) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
	m.list.Title = viewTitle(m.rec)
	return m
}

func (m taskView) selectedTask() (string, bool) {
	it, ok := m.list.SelectedItem().(taskItem)
	if !ok {
		return "", false
	}
	return it.Text, true
}

func (m taskView) View() string {
	content := m.list.View()
	if m.adding {
		content += "\n" + m.input.View()
	}
	if m.errMsg != "" {
		content += "\n" + errorStyle.Render(m.errMsg)
	}
	return content
}
