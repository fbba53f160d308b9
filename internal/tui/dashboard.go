// Package tui provides the interactive Bubble Tea dashboard for himoney.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/jeremy-dai/hi-money-sub001/internal/cli"
	"github.com/jeremy-dai/hi-money-sub001/internal/config"
	"github.com/jeremy-dai/hi-money-sub001/internal/goal"
	"github.com/jeremy-dai/hi-money-sub001/internal/model"
	"github.com/jeremy-dai/hi-money-sub001/internal/state"
)

// Dashboard is the root Bubble Tea model. It is a read-only view over the
// loaded application state; all mutation goes through the CLI commands.
type Dashboard struct {
	cfg config.Config
	app *state.App

	goalBar progress.Model
	width   int
}

// New builds the dashboard model.
func New(cfg config.Config, app *state.App) Dashboard {
	bar := progress.New(
		progress.WithSolidFill(string(cli.ColorGreen)),
		progress.WithWidth(40),
	)
	return Dashboard{
		cfg:     cfg,
		app:     app,
		goalBar: bar,
		width:   80,
	}
}

// Run starts the dashboard program and blocks until quit.
func Run(cfg config.Config, app *state.App) error {
	_, err := tea.NewProgram(New(cfg, app), tea.WithAltScreen()).Run()
	return err
}

// Init implements tea.Model.
func (d Dashboard) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (d Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.width = msg.Width
		return d, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return d, tea.Quit
		}
	}
	return d, nil
}

// View implements tea.Model.
func (d Dashboard) View() string {
	titleStyle := lipgloss.NewStyle().Foreground(cli.ColorAccent).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(cli.ColorTextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(cli.ColorText)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  hi-money"))
	b.WriteString(labelStyle.Render("  ·  q to quit"))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("  Monthly income "))
	b.WriteString(valueStyle.Render(cli.FormatMoney(d.app.MonthlyIncome, d.cfg.General.Currency)))
	b.WriteString("\n\n")

	d.viewAllocation(&b, labelStyle, valueStyle)
	d.viewGoal(&b, labelStyle, valueStyle)

	return b.String()
}

func (d *Dashboard) viewAllocation(b *strings.Builder, labelStyle, valueStyle lipgloss.Style) {
	weights := d.app.Allocation.Weights()

	b.WriteString(labelStyle.Render("  Allocation"))
	b.WriteString("\n")
	for i, bucket := range model.Buckets {
		w := weights.Weight(bucket)
		monthly := d.app.MonthlyIncome.Mul(decimal.NewFromFloat(w)).Div(decimal.NewFromInt(100))
		b.WriteString(fmt.Sprintf("  %s %s %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-11s", bucket.Label())),
			cli.RenderWeightBar(w, 24, cli.BucketColors[i]),
			valueStyle.Render(fmt.Sprintf("%5s", cli.FormatWeight(w))),
			labelStyle.Render(cli.FormatMoney(monthly, d.cfg.General.Currency)),
		))
	}
	b.WriteString("\n")
}

func (d *Dashboard) viewGoal(b *strings.Builder, labelStyle, valueStyle lipgloss.Style) {
	g := d.app.Tracker.Goal()
	if !g.IsSet() {
		b.WriteString(labelStyle.Render("  No savings goal set."))
		b.WriteString("\n")
		return
	}

	total := d.app.Ledger.GrandTotal()
	pct, _ := total.Div(g.TotalAmount).Float64()
	if pct > 1 {
		pct = 1
	}

	b.WriteString(labelStyle.Render(fmt.Sprintf("  Goal: %s", g.Name)))
	b.WriteString("\n")
	b.WriteString("  " + d.goalBar.ViewAs(pct))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("  %s of %s",
		cli.FormatMoney(total, d.cfg.General.Currency),
		cli.FormatMoney(g.TotalAmount, d.cfg.General.Currency),
	)))
	b.WriteString("\n\n")

	pred := goal.Project(g.TotalAmount, total, d.app.Tracker.History(), model.Prediction{}, time.Now())
	b.WriteString(valueStyle.Render("  " + describeProjection(pred, d.cfg.General.Currency)))
	b.WriteString("\n")
}

func describeProjection(p model.Prediction, currency string) string {
	switch p.EstimatedDate {
	case model.DateGoalReached:
		return "Goal reached!"
	case model.DateNotEnoughHistory, "":
		return "Not enough history for a projection yet."
	case model.DateNeedsMoreSavings:
		return "Needs increased savings."
	}
	return fmt.Sprintf("Projected for %s — %s at %s/month",
		p.EstimatedDate,
		cli.FormatMonths(p.MonthsNeeded),
		cli.FormatMoney(p.MonthlyGrowthRate, currency),
	)
}
