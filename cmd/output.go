package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"darwin-nic/internal/types"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	colorAccent = lipgloss.Color("#A8D8EA")
	colorMuted  = lipgloss.Color("#6c757d")
	colorGood   = lipgloss.Color("#4ECDC4")
	colorWarn   = lipgloss.Color("#FFE66D")
	colorAlert  = lipgloss.Color("#FF6B6B")

	styleTitle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	styleLabel  = lipgloss.NewStyle().Foreground(colorMuted).Width(16)
	styleGood   = lipgloss.NewStyle().Foreground(colorGood).Bold(true)
	styleWarn   = lipgloss.NewStyle().Foreground(colorWarn)
	styleBad    = lipgloss.NewStyle().Foreground(colorAlert).Bold(true)
	styleHeader = lipgloss.NewStyle().Foreground(colorMuted).Bold(true).Padding(0, 1)
	styleCell   = lipgloss.NewStyle().Padding(0, 1)
)

func line(w io.Writer, label, value string) {
	fmt.Fprintln(w, styleLabel.Render(label)+value)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "-"
}

// renderInterfaces lists every detected interface with its classification and score.
func renderInterfaces(w io.Writer, ifaces []types.NetworkInterface, ranked []types.NetworkInterface) {
	scores := make(map[string]int, len(ranked))
	for _, r := range ranked {
		scores[r.Name] = r.Score
	}
	top := ""
	if len(ranked) > 0 {
		top = ranked[0].Name
	}

	rows := make([][]string, 0, len(ifaces))
	for _, iface := range ifaces {
		score := "-"
		if s, ok := scores[iface.Name]; ok {
			score = strconv.Itoa(s)
		}
		index := "-"
		if iface.Index >= 0 {
			index = strconv.Itoa(iface.Index)
		}
		name := iface.Name
		if name == top {
			name += " *"
		}
		rows = append(rows, []string{
			name, iface.HardwarePort, index, iface.IPAddress,
			yesNo(iface.IsActive), yesNo(iface.IsUSB), yesNo(iface.IsProtected), iface.Vendor, score,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorMuted)).
		Headers("DEVICE", "PORT", "INDEX", "IPV4", "ACTIVE", "USB", "PROTECTED", "VENDOR", "SCORE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if row >= 0 && row < len(ifaces) && ifaces[row].IsProtected {
				return styleCell.Foreground(colorMuted)
			}
			return styleCell
		})
	fmt.Fprintln(w, t.Render())
	if top != "" {
		fmt.Fprintln(w, styleGood.Render("* ")+"selected for configuration")
	} else {
		fmt.Fprintln(w, styleWarn.Render("No eligible USB adapter found"))
	}
}

// renderResult prints the transaction summary.
func renderResult(w io.Writer, result *types.TransactionResult) {
	title := "Management interface configured"
	switch {
	case !result.Succeeded():
		title = "Configuration failed"
	case result.DryRun:
		title = "Dry run, no changes made"
	}
	fmt.Fprintln(w, styleTitle.Render(title))

	line(w, "Transaction", result.ID.String())
	line(w, "State", stateText(result))
	if result.Selected != nil {
		line(w, "Interface", fmt.Sprintf("%s (%s, score %d)", result.Selected.Name, result.Selected.HardwarePort, result.Selected.Score))
	}
	if len(result.NewServiceOrder) > 0 {
		line(w, "Service order", strings.Join(result.NewServiceOrder, " > "))
	}

	for _, a := range result.Actions {
		prefix := "would "
		if !result.DryRun {
			prefix = ""
		}
		if a.Skipped {
			prefix = "skipped "
		}
		line(w, "Action", fmt.Sprintf("%s%s %s %s", prefix, a.Kind, a.Target, a.Detail))
	}

	if !result.Verification.Skipped {
		for _, p := range result.Verification.Probes {
			status := styleGood.Render("ok")
			if !p.OK {
				status = styleWarn.Render("unreachable")
			}
			line(w, p.Kind+" probe", fmt.Sprintf("%s %s", p.Target, status))
		}
	}

	if result.Rollback.Performed {
		line(w, "Rollback", fmt.Sprintf("interface reset %s, service order restored %s",
			yesNo(result.Rollback.InterfaceReset), yesNo(result.Rollback.OrderRestored)))
	}
	if result.Err != nil {
		line(w, "Error", styleBad.Render(result.Err.Error()))
	}
	line(w, "Duration", result.Duration().Round(time.Millisecond).String())
}

func stateText(result *types.TransactionResult) string {
	s := string(result.State)
	if result.State == types.StateCommitted {
		return styleGood.Render(s)
	}
	if result.State == types.StateFailed {
		return styleBad.Render(s)
	}
	return s
}
