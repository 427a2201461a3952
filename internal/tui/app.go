// Package tui is a terminal front-end for the dashboard. It drives the same
// view.Machine the HTTP API is built on and renders its descriptors with
// bubbletea and lipgloss.
//
// Keys: tab/shift+tab move between inputs, enter submits, esc toggles focus
// between the sidebar and the screen, ctrl+c quits.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kyra-labs/internship-dashboard/internal/models"
	"github.com/kyra-labs/internship-dashboard/internal/view"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	subtitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	sidebarStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(18)
	contentStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
)

const (
	loginEmail = iota
	loginPassword
	loginRole
)

// App is the bubbletea model.
type App struct {
	ctx     context.Context
	machine *view.Machine

	// login screen
	loginInputs []textinput.Model
	roleIdx     int

	// sidebar
	sidebarFocused bool
	navIdx         int

	// registration screen, one input per form field
	formInputs []textinput.Model
	formKeys   []string

	// shared focus index for whichever screen owns the inputs
	focus int
	// FAQ cursor
	faqIdx int

	notice string
	width  int
	height int
}

// NewApp creates the model around machine.
func NewApp(ctx context.Context, machine *view.Machine) *App {
	a := &App{ctx: ctx, machine: machine}
	a.resetLogin()
	return a
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) resetLogin() {
	email := textinput.New()
	email.Placeholder = "Email"
	email.Focus()
	password := textinput.New()
	password.Placeholder = "Password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	a.loginInputs = []textinput.Model{email, password}
	a.focus = loginEmail
}

// show adopts a new view from the machine and prepares its inputs.
func (a *App) show(v view.View) {
	a.notice = ""
	switch v.Kind {
	case view.KindLogin:
		a.sidebarFocused = false
		a.resetLogin()
	case view.KindRegistration:
		if v.Registration.Submitted {
			return
		}
		a.formInputs = make([]textinput.Model, len(v.Registration.Fields))
		a.formKeys = make([]string, len(v.Registration.Fields))
		for i, f := range v.Registration.Fields {
			ti := textinput.New()
			ti.Placeholder = f.Label
			a.formInputs[i] = ti
			a.formKeys[i] = f.Key
		}
		a.focus = 0
		if !a.sidebarFocused && len(a.formInputs) > 0 {
			a.formInputs[0].Focus()
		}
	case view.KindFAQ:
		a.faqIdx = 0
		for i, q := range v.FAQ.Questions {
			if q == v.FAQ.Selected {
				a.faqIdx = i
			}
		}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		switch a.machine.State() {
		case view.StateLoggedOut:
			return a.updateLogin(msg)
		default:
			if msg.String() == "esc" {
				a.toggleSidebar()
				return a, nil
			}
			if a.sidebarFocused {
				return a.updateSidebar(msg)
			}
			return a.updateContent(msg)
		}
	}
	if a.machine.State() == view.StateLoggedOut && a.focus != loginRole {
		var cmd tea.Cmd
		a.loginInputs[a.focus], cmd = a.loginInputs[a.focus].Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) toggleSidebar() {
	a.sidebarFocused = !a.sidebarFocused
	if a.machine.State() != view.StateRegister || a.machine.View().Registration.Submitted {
		return
	}
	for i := range a.formInputs {
		a.formInputs[i].Blur()
	}
	if !a.sidebarFocused && len(a.formInputs) > 0 {
		a.formInputs[a.focus].Focus()
	}
}

func (a *App) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		a.setLoginFocus((a.focus + 1) % 3)
		return a, nil
	case "shift+tab", "up":
		a.setLoginFocus((a.focus + 2) % 3)
		return a, nil
	case "left":
		if a.focus == loginRole {
			a.roleIdx = (a.roleIdx + len(models.Roles) - 1) % len(models.Roles)
			return a, nil
		}
	case "right":
		if a.focus == loginRole {
			a.roleIdx = (a.roleIdx + 1) % len(models.Roles)
			return a, nil
		}
	case "enter":
		v := a.machine.SubmitLogin(
			a.loginInputs[loginEmail].Value(),
			a.loginInputs[loginPassword].Value(),
			models.Roles[a.roleIdx],
		)
		if v.Kind == view.KindLogin {
			// keep what was typed so the user can correct it
			a.notice = ""
			return a, nil
		}
		a.sidebarFocused = true
		a.navIdx = 0
		a.show(v)
		return a, nil
	}
	if a.focus == loginRole {
		return a, nil
	}
	var cmd tea.Cmd
	a.loginInputs[a.focus], cmd = a.loginInputs[a.focus].Update(msg)
	return a, cmd
}

func (a *App) setLoginFocus(i int) {
	a.focus = i
	for j := range a.loginInputs {
		if j == i {
			a.loginInputs[j].Focus()
		} else {
			a.loginInputs[j].Blur()
		}
	}
}

func (a *App) updateSidebar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		a.navIdx = (a.navIdx + len(view.NavItems) - 1) % len(view.NavItems)
	case "down", "j":
		a.navIdx = (a.navIdx + 1) % len(view.NavItems)
	case "enter":
		v := a.machine.SelectNav(view.NavItems[a.navIdx])
		a.show(v)
		if v.Kind == view.KindLogin {
			a.notice = v.Message
		}
	}
	return a, nil
}

func (a *App) updateContent(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.machine.State() {
	case view.StateFAQ:
		return a.updateFAQ(msg)
	case view.StateRegister:
		return a.updateForm(msg)
	}
	return a, nil
}

func (a *App) updateFAQ(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	questions := a.machine.View().FAQ.Questions
	switch msg.String() {
	case "up", "k":
		a.faqIdx = (a.faqIdx + len(questions) - 1) % len(questions)
	case "down", "j":
		a.faqIdx = (a.faqIdx + 1) % len(questions)
	case "enter":
		a.machine.SelectFAQQuestion(questions[a.faqIdx])
	}
	return a, nil
}

func (a *App) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.machine.View().Registration.Submitted {
		// enter reopens a blank form
		if msg.String() == "enter" {
			a.show(a.machine.SelectNav(view.NavRegister))
		}
		return a, nil
	}
	n := len(a.formInputs)
	switch msg.String() {
	case "tab", "down":
		a.setFormFocus((a.focus + 1) % n)
		return a, nil
	case "shift+tab", "up":
		a.setFormFocus((a.focus + n - 1) % n)
		return a, nil
	case "enter":
		if a.focus < n-1 {
			a.setFormFocus(a.focus + 1)
			return a, nil
		}
		a.machine.SubmitRegistration(a.ctx, a.formValues())
		return a, nil
	}
	var cmd tea.Cmd
	a.formInputs[a.focus], cmd = a.formInputs[a.focus].Update(msg)
	return a, cmd
}

func (a *App) setFormFocus(i int) {
	a.focus = i
	for j := range a.formInputs {
		if j == i {
			a.formInputs[j].Focus()
		} else {
			a.formInputs[j].Blur()
		}
	}
}

func (a *App) formValues() map[string]string {
	out := make(map[string]string, len(a.formInputs))
	for i, ti := range a.formInputs {
		out[a.formKeys[i]] = ti.Value()
	}
	return out
}

func (a *App) View() string {
	v := a.machine.View()
	if v.Kind == view.KindLogin {
		return a.loginView(v)
	}
	sidebar := sidebarStyle.Render(a.sidebarView())
	content := contentStyle.Render(a.contentView(v))
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content) + "\n" +
		mutedStyle.Render("esc: switch focus · enter: select · ctrl+c: quit")
}

func (a *App) loginView(v view.View) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(v.Title) + "\n\n")
	b.WriteString(a.loginInputs[loginEmail].View() + "\n")
	b.WriteString(a.loginInputs[loginPassword].View() + "\n\n")
	role := fmt.Sprintf("Select your role: ◀ %s ▶", models.Roles[a.roleIdx])
	if a.focus == loginRole {
		role = selectedStyle.Render(role)
	}
	b.WriteString(role + "\n\n")
	if v.Error != "" {
		b.WriteString(errorStyle.Render(v.Error) + "\n")
	}
	if a.notice != "" {
		b.WriteString(successStyle.Render(a.notice) + "\n")
	}
	b.WriteString(mutedStyle.Render("tab: next field · ←/→: role · enter: Login · ctrl+c: quit"))
	return b.String()
}

func (a *App) sidebarView() string {
	var b strings.Builder
	b.WriteString(subtitleStyle.Render("Navigation") + "\n")
	for i, n := range view.NavItems {
		line := "  " + string(n)
		if i == a.navIdx {
			line = "> " + string(n)
			if a.sidebarFocused {
				line = selectedStyle.Render(line)
			}
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (a *App) contentView(v view.View) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(v.Title) + "\n")
	if v.Message != "" {
		b.WriteString(successStyle.Render(v.Message) + "\n")
	}
	if v.Error != "" {
		b.WriteString(errorStyle.Render(v.Error) + "\n")
	}
	b.WriteString("\n")
	switch v.Kind {
	case view.KindDashboard:
		b.WriteString(subtitleStyle.Render(v.Dashboard.Subheader) + "\n\n")
		b.WriteString(renderWidget(v.Dashboard))
	case view.KindRegistration:
		if v.Registration.Submitted {
			b.WriteString(mutedStyle.Render("Reference " + v.Registration.SubmissionID + " · enter: new form"))
			break
		}
		for i, f := range v.Registration.Fields {
			fmt.Fprintf(&b, "%-18s %s\n", f.Label, a.formInputs[i].View())
		}
		b.WriteString("\n" + mutedStyle.Render("enter on the last field: Submit"))
	case view.KindFAQ:
		b.WriteString("Choose a question:\n")
		for i, q := range v.FAQ.Questions {
			line := "  " + q
			if i == a.faqIdx {
				line = selectedStyle.Render("> " + q)
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("\nAnswer: " + v.FAQ.Answer)
	}
	return b.String()
}
