package ui

import (
	"fmt"
	"strings"

	"github.com/krlabs/devserve/internal/config"
	"github.com/krlabs/devserve/internal/preflight"
	"github.com/krlabs/devserve/internal/version"
)

// Banner renders the startup block printed right before uvicorn takes over.
func Banner(cfg config.Config, workDir, interpreter string) string {
	var b strings.Builder
	b.WriteString(special.Render(fmt.Sprintf("%s %s", version.AppName, version.Current)))
	b.WriteString("\n")
	b.WriteString("Starting Enterprise Search Pipeline API server\n")
	b.WriteString(subtle.Render("Working directory: "+workDir) + "\n")
	b.WriteString(subtle.Render("Interpreter:       "+interpreter) + "\n")
	b.WriteString("Server:  " + cfg.ServerURL() + "\n")
	b.WriteString("Docs:    " + cfg.DocsURL() + "\n")
	b.WriteString(strings.Repeat("=", 60) + "\n")
	return b.String()
}

// RenderReport renders preflight results, one line per gate.
func RenderReport(report preflight.Report) string {
	var b strings.Builder
	for _, res := range report.Results {
		b.WriteString(fmt.Sprintf("%s %-20s %s\n", icon(res.Status), res.Name, res.Detail))
	}
	return b.String()
}

func icon(s preflight.Status) string {
	switch s {
	case preflight.Passed:
		return iconOK.String()
	case preflight.Warned:
		return iconWarn.String()
	case preflight.Fixed:
		return iconFix.String()
	default:
		return iconFail.String()
	}
}

// Failf formats a fatal diagnostic line.
func Failf(format string, a ...any) string {
	return danger.Render(fmt.Sprintf(format, a...))
}

// Warnf formats a non-fatal diagnostic line.
func Warnf(format string, a ...any) string {
	return warning.Render(fmt.Sprintf(format, a...))
}
