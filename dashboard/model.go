// Package dashboard is the terminal client for the Store API: a view-state
// container mirroring projects and tasks, driven by Bubble Tea.
package dashboard

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"taskboard/models"
)

// AlertEmptyTaskName is the only failure the user is shown.
const AlertEmptyTaskName = "Task name cannot be empty."

type screen int

const (
	screenProjects screen = iota
	screenTasks
)

type mode int

const (
	modeBrowse mode = iota
	modeAddProject
	modeAddTask
	modeEditTask
)

// Options configures a Model.
type Options struct {
	Policy  FailurePolicy
	Timeout time.Duration
}

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	api     API
	logger  *log.Logger
	policy  FailurePolicy
	timeout time.Duration

	state   State
	screen  screen
	mode    mode
	cursor  int
	editing uuid.UUID

	input  textinput.Model
	keys   KeyMap
	help   help.Model
	styles styles
	width  int
	height int
}

func New(api API, logger *log.Logger, opts Options) Model {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultRequestTimeout
	}

	ti := textinput.New()
	ti.CharLimit = 255
	ti.Prompt = "> "

	return Model{
		api:     api,
		logger:  logger,
		policy:  opts.Policy,
		timeout: opts.Timeout,
		input:   ti,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		styles:  defaultStyles(),
	}
}

// State returns a snapshot of the view state.
func (m Model) State() State {
	return m.state
}

// Init fetches the project list once.
func (m Model) Init() tea.Cmd {
	return m.loadProjects()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = msg.Width - 4
		return m, nil

	case tea.KeyMsg:
		m.state.Alert = ""
		if m.mode != modeBrowse {
			return m.updateInput(msg)
		}
		return m.updateBrowse(msg)

	case ProjectsLoadedMsg:
		if msg.Err != nil {
			m.logger.Error("Error fetching projects", "err", msg.Err)
			return m, nil
		}
		m.state.SetProjects(msg.Projects)
		m.clampCursor()

	case ProjectCreatedMsg:
		if msg.Err != nil {
			m.logger.Error("Error adding project", "err", msg.Err)
			return m, nil
		}
		if msg.Project != nil {
			m.state.AddProject(*msg.Project)
		}

	case ProjectDeletedMsg:
		if msg.Err != nil {
			m.logger.Error("Error deleting project", "project_id", msg.ProjectID, "err", msg.Err)
			return m, nil
		}
		if m.state.RemoveProject(msg.ProjectID) {
			m.screen = screenProjects
			m.mode = modeBrowse
			m.cursor = 0
		}
		m.clampCursor()

	case TasksLoadedMsg:
		if msg.Err != nil {
			m.logger.Error("Error fetching tasks", "project_id", msg.ProjectID, "err", msg.Err)
			return m, nil
		}
		if !m.state.SetTasks(msg.ProjectID, msg.Tasks) {
			m.logger.Debug("Discarding tasks for unselected project", "project_id", msg.ProjectID)
			return m, nil
		}
		m.clampCursor()

	case TaskCreatedMsg:
		if msg.Err != nil {
			m.logger.Error("Error adding task", "project_id", msg.ProjectID, "err", msg.Err)
			return m, nil
		}
		if m.state.IsSelected(msg.ProjectID) {
			return m, m.loadTasks(msg.ProjectID)
		}

	case TaskToggledMsg:
		if msg.Err != nil {
			m.logger.Error("Error updating task status", "task_id", msg.Transition.TaskID(),
				"policy", m.policy, "err", msg.Err)
		}
		m.state.Settle(msg.Transition, msg.Task, msg.Err, m.policy)
		m.clampCursor()

	case TaskRenamedMsg:
		if msg.Err != nil {
			m.logger.Error("Error updating task", "task_id", msg.TaskID, "err", msg.Err)
			return m, nil
		}
		if t, ok := m.state.FindTask(msg.TaskID); ok {
			t.Name = msg.Name
			m.state.ReplaceTask(t)
		}

	case TaskDeletedMsg:
		if msg.Err != nil {
			m.logger.Error("Error deleting task", "task_id", msg.TaskID, "err", msg.Err)
		}
		// The refresh runs either way, so a failed delete reappears.
		if m.state.IsSelected(msg.ProjectID) {
			return m, m.loadTasks(msg.ProjectID)
		}
	}

	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.listLen()-1 {
			m.cursor++
		}
		return m, nil
	}

	if m.screen == screenProjects {
		return m.updateProjects(msg)
	}
	return m.updateTasks(msg)
}

func (m Model) updateProjects(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Open):
		p, ok := m.currentProject()
		if !ok {
			return m, nil
		}
		return m.selectProject(p.ID)

	case key.Matches(msg, m.keys.Add):
		return m.startInput(modeAddProject, "New Project", "")

	case key.Matches(msg, m.keys.Delete):
		p, ok := m.currentProject()
		if !ok {
			return m, nil
		}
		return m, m.deleteProject(p.ID)

	case key.Matches(msg, m.keys.Reload):
		return m, m.loadProjects()
	}
	return m, nil
}

func (m Model) updateTasks(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.state.Deselect()
		m.screen = screenProjects
		m.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.Add):
		return m.startInput(modeAddTask, "New Task", m.state.Input)

	case key.Matches(msg, m.keys.Edit):
		t, ok := m.currentTask()
		if !ok {
			return m, nil
		}
		m.editing = t.ID
		return m.startInput(modeEditTask, "Task name", t.Name)

	case key.Matches(msg, m.keys.Toggle):
		t, ok := m.currentTask()
		if !ok {
			return m, nil
		}
		tr, ok := m.state.BeginToggle(t.ID)
		if !ok {
			return m, nil
		}
		m.clampCursor()
		return m, m.toggleTask(tr)

	case key.Matches(msg, m.keys.Delete):
		t, ok := m.currentTask()
		if !ok || m.state.Selected == nil {
			return m, nil
		}
		projectID := m.state.Selected.ID
		m.state.RemoveTask(t.ID)
		m.clampCursor()
		return m, m.deleteTask(t.ID, projectID)

	case key.Matches(msg, m.keys.DeleteProject):
		if m.state.Selected == nil {
			return m, nil
		}
		return m, m.deleteProject(m.state.Selected.ID)

	case key.Matches(msg, m.keys.Filter):
		m.setFilter(m.state.Filter.Next())
	case key.Matches(msg, m.keys.All):
		m.setFilter(FilterAll)
	case key.Matches(msg, m.keys.Active):
		m.setFilter(FilterActive)
	case key.Matches(msg, m.keys.Done):
		m.setFilter(FilterCompleted)

	case key.Matches(msg, m.keys.Reload):
		if m.state.Selected != nil {
			return m, m.loadTasks(m.state.Selected.ID)
		}
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Cancel):
		if m.mode == modeAddTask {
			m.state.Input = m.input.Value()
		}
		return m.stopInput(), nil
	case key.Matches(msg, m.keys.Confirm):
		return m.submitInput()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.mode == modeAddTask {
		m.state.Input = m.input.Value()
	}
	return m, cmd
}

func (m Model) submitInput() (tea.Model, tea.Cmd) {
	value := m.input.Value()
	blank := strings.TrimSpace(value) == ""

	switch m.mode {
	case modeAddProject:
		m = m.stopInput()
		if blank {
			return m, nil
		}
		return m, m.createProject(value)

	case modeAddTask:
		if m.state.Selected == nil {
			return m.stopInput(), nil
		}
		if blank {
			m.state.Alert = AlertEmptyTaskName
			return m, nil
		}
		projectID := m.state.Selected.ID
		m.state.Input = ""
		return m.stopInput(), m.createTask(projectID, value)

	case modeEditTask:
		if blank {
			return m, nil
		}
		id := m.editing
		return m.stopInput(), m.renameTask(id, value)
	}

	return m.stopInput(), nil
}

// selectProject makes id current, clears its tasks and fetches them.
func (m Model) selectProject(id uuid.UUID) (tea.Model, tea.Cmd) {
	for _, p := range m.state.Projects {
		if p.ID == id {
			m.state.Select(p)
			m.screen = screenTasks
			m.cursor = 0
			return m, m.loadTasks(p.ID)
		}
	}
	return m, nil
}

func (m Model) startInput(md mode, placeholder, value string) (tea.Model, tea.Cmd) {
	m.mode = md
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m Model) stopInput() Model {
	m.mode = modeBrowse
	m.editing = uuid.Nil
	m.input.Blur()
	m.input.Reset()
	return m
}

func (m *Model) setFilter(f Filter) {
	m.state.Filter = f
	m.cursor = 0
}

func (m Model) listLen() int {
	if m.screen == screenProjects {
		return len(m.state.Projects)
	}
	return len(m.state.Visible())
}

func (m *Model) clampCursor() {
	n := m.listLen()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) currentProject() (models.Project, bool) {
	if m.screen != screenProjects || m.cursor >= len(m.state.Projects) {
		return models.Project{}, false
	}
	return m.state.Projects[m.cursor], true
}

func (m Model) currentTask() (models.TaskView, bool) {
	visible := m.state.Visible()
	if m.screen != screenTasks || m.cursor >= len(visible) {
		return models.TaskView{}, false
	}
	return visible[m.cursor], true
}
