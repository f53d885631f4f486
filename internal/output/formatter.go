package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/termenv"
)

// Formatter renders command results in one of the output modes.
type Formatter interface {
	PrintCode(service, code string, remaining time.Duration)
	PrintServices(names []string)
	PrintMessage(format string, args ...any)
	PrintError(err error)
	PrintHint(msg string)
}

// New creates a formatter for the given mode, writing to stdout and
// stderr.
func New(mode string) Formatter {
	return NewTo(mode, os.Stdout, os.Stderr)
}

// NewTo creates a formatter with explicit writers. Used by tests to
// capture output.
func NewTo(mode string, out, errw io.Writer) Formatter {
	switch mode {
	case "json":
		return &jsonFormatter{out: out, errw: errw}
	case "rich":
		return &richFormatter{out: out, errw: errw, profile: termenv.ColorProfile()}
	default:
		return &plainFormatter{out: out, errw: errw}
	}
}

// plainFormatter emits the stable line-oriented output meant for
// scripts and pipes.
type plainFormatter struct {
	out  io.Writer
	errw io.Writer
}

func (f *plainFormatter) PrintCode(service, code string, _ time.Duration) {
	fmt.Fprintf(f.out, "TOTP code for %s: %s\n", service, code)
}

func (f *plainFormatter) PrintServices(names []string) {
	fmt.Fprintf(f.out, "Services: %s\n", strings.Join(names, ", "))
}

func (f *plainFormatter) PrintMessage(format string, args ...any) {
	fmt.Fprintf(f.errw, format+"\n", args...)
}

func (f *plainFormatter) PrintError(err error) {
	fmt.Fprintf(f.errw, "error: %v\n", err)
}

func (f *plainFormatter) PrintHint(msg string) {
	fmt.Fprintf(f.errw, "hint: %s\n", msg)
}

// jsonFormatter emits one JSON document per command for tooling.
type jsonFormatter struct {
	out  io.Writer
	errw io.Writer
}

func (f *jsonFormatter) print(data any) {
	enc := json.NewEncoder(f.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (f *jsonFormatter) PrintCode(service, code string, remaining time.Duration) {
	f.print(map[string]any{
		"service":    service,
		"code":       code,
		"expires_in": int(remaining.Seconds()),
	})
}

func (f *jsonFormatter) PrintServices(names []string) {
	f.print(map[string]any{
		"services": names,
		"count":    len(names),
	})
}

func (f *jsonFormatter) PrintMessage(format string, args ...any) {
	fmt.Fprintf(f.errw, format+"\n", args...)
}

func (f *jsonFormatter) PrintError(err error) {
	enc := json.NewEncoder(f.errw)
	enc.SetIndent("", "  ")
	_ = enc.Encode(map[string]string{"error": err.Error()})
}

func (f *jsonFormatter) PrintHint(msg string) {
	// Hints are interactive sugar, skipped in JSON mode.
}

// richFormatter emits styled output for interactive terminals.
type richFormatter struct {
	out     io.Writer
	errw    io.Writer
	profile termenv.Profile
}

func (f *richFormatter) PrintCode(service, code string, remaining time.Duration) {
	serviceStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	codeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	ttlStyle := lipgloss.NewStyle().Faint(true)

	fmt.Fprintf(f.out, "%s  %s %s\n",
		serviceStyle.Render(service),
		codeStyle.Render(code),
		ttlStyle.Render(fmt.Sprintf("(valid %ds)", int(remaining.Seconds()))),
	)
}

func (f *richFormatter) PrintServices(names []string) {
	if len(names) == 0 {
		fmt.Fprintln(f.out, lipgloss.NewStyle().Faint(true).Render("No services registered"))
		return
	}

	rows := make([]map[string]string, len(names))
	for i, name := range names {
		rows[i] = map[string]string{
			"Position": fmt.Sprintf("%d", i+1),
			"Service":  name,
		}
	}

	RenderTable(f.out, []Column{
		{Name: "#", Key: "Position"},
		{Name: "Service", Key: "Service"},
	}, rows)
}

func (f *richFormatter) PrintMessage(format string, args ...any) {
	fmt.Fprintf(f.errw, format+"\n", args...)
}

func (f *richFormatter) PrintError(err error) {
	style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	fmt.Fprintf(f.errw, "%s\n", style.Render("error: "+err.Error()))
}

func (f *richFormatter) PrintHint(msg string) {
	style := lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("8"))
	fmt.Fprintf(f.errw, "%s\n", style.Render("hint: "+msg))
}
