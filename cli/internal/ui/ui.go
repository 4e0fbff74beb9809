// Package ui provides styled terminal output for the robotfmt CLI.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

var (
	// Colors
	PrimaryColor   = lipgloss.Color("#00D9FF")
	SuccessColor   = lipgloss.Color("#00FF88")
	WarningColor   = lipgloss.Color("#FFB800")
	ErrorColor     = lipgloss.Color("#FF4444")
	SecondaryColor = lipgloss.Color("#6C757D")

	// Styles
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			MarginBottom(1)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	SecondaryStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor)
)

// PrintHeader prints a bordered header with a title and subtitle.
func PrintHeader(title string, subtitle string) {
	width := 80
	if w := pterm.GetTerminalWidth(); w > 0 {
		width = w
	}

	header := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Padding(1, 2).
		Render(
			lipgloss.JoinVertical(
				lipgloss.Center,
				TitleStyle.Render(title),
				SecondaryStyle.Render(subtitle),
			),
		)

	fmt.Println(header)
	fmt.Println()
}

// PrintSuccess prints a success message
func PrintSuccess(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	fmt.Println(SuccessStyle.Render("✓ " + message))
}

// PrintError prints an error message
func PrintError(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, ErrorStyle.Render("✗ "+message))
}

// PrintWarning prints a warning message
func PrintWarning(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	fmt.Println(WarningStyle.Render("⚠ " + message))
}

// PrintInfo prints an info message
func PrintInfo(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	fmt.Println(InfoStyle.Render("ℹ " + message))
}

// PrintTable prints a table using pterm
func PrintTable(headers []string, rows [][]string) {
	tableData := pterm.TableData{headers}
	tableData = append(tableData, rows...)
	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}

// PrintMarkdown renders markdown content to the terminal.
func PrintMarkdown(content string) error {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return err
	}

	out, err := r.Render(content)
	if err != nil {
		return err
	}

	fmt.Print(out)
	return nil
}

// Spinner wraps a pterm spinner so callers need not depend on pterm. All of
// its methods are safe on a nil receiver, so callers can skip the spinner in
// modes that print their own output.
type Spinner struct {
	sp *pterm.SpinnerPrinter
}

// StartSpinner starts a spinner with the given message.
func StartSpinner(message string) *Spinner {
	sp, err := pterm.DefaultSpinner.Start(message)
	if err != nil {
		return &Spinner{}
	}
	return &Spinner{sp: sp}
}

// Success stops the spinner with a success message.
func (s *Spinner) Success(format string, args ...interface{}) {
	if s == nil || s.sp == nil {
		return
	}
	s.sp.Success(fmt.Sprintf(format, args...))
}

// Fail stops the spinner with a failure message.
func (s *Spinner) Fail(format string, args ...interface{}) {
	if s == nil || s.sp == nil {
		return
	}
	s.sp.Fail(fmt.Sprintf(format, args...))
}

// PrintDiff prints a line diff between the original and formatted text of one
// file: removed lines in red, added lines in green, shared lines dimmed.
func PrintDiff(fileName, before, after string) {
	if before == after {
		return
	}
	fmt.Println(InfoStyle.Render("--- " + fileName))

	beforeLines := strings.Split(before, "\n")
	afterLines := strings.Split(after, "\n")

	for i := 0; i < len(beforeLines) || i < len(afterLines); i++ {
		switch {
		case i < len(beforeLines) && i < len(afterLines):
			if beforeLines[i] != afterLines[i] {
				fmt.Println(ErrorStyle.Render("- " + beforeLines[i]))
				fmt.Println(SuccessStyle.Render("+ " + afterLines[i]))
			} else {
				fmt.Println("  " + beforeLines[i])
			}
		case i < len(beforeLines):
			fmt.Println(ErrorStyle.Render("- " + beforeLines[i]))
		default:
			fmt.Println(SuccessStyle.Render("+ " + afterLines[i]))
		}
	}
}
