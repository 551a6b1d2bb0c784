package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors and styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// RenderStatus renders the status data to a string
func RenderStatus(data *Status) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("📦 Version: ") + valueStyle.Render(data.Version))
	b.WriteString("\n\n")

	b.WriteString(renderConfig(data))
	b.WriteString("\n\n")

	b.WriteString(RenderEntities(data.Entities))

	return b.String()
}

func renderConfig(data *Status) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("📝 Configuration:") + "\n")

	if data.ConfigPath != "" {
		b.WriteString("   " + keyStyle.Render("File: ") + valueStyle.Render(data.ConfigPath) + " " + successStyle.Render("✓") + "\n")
	} else {
		b.WriteString("   " + keyStyle.Render("File: ") + subtleStyle.Render("none, using defaults") + "\n")
		if data.ConfigDir != "" {
			b.WriteString("   " + warningStyle.Render(fmt.Sprintf("Create %s/config.yml to change them", data.ConfigDir)) + "\n")
		}
	}

	b.WriteString("   " + keyStyle.Render("Log level: ") + valueStyle.Render(data.LogLevel) + "\n")
	b.WriteString("   " + keyStyle.Render("Time zone: ") + valueStyle.Render(orDefault(data.TimeZone, "UTC")) + "\n")
	b.WriteString("   " + keyStyle.Render("Operation name: ") + valueStyle.Render(data.OperationName) + "\n")
	b.WriteString("   " + keyStyle.Render("Default entity: ") + valueStyle.Render(orDefault(data.DefaultEntity, "none")))

	return b.String()
}

// RenderEntities renders the entity kinds with their collections and aliases
func RenderEntities(entities []EntityInfo) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("🗂  Entities:") + "\n")

	if len(entities) == 0 {
		b.WriteString("   " + subtleStyle.Render("No entities registered"))
		return b.String()
	}

	width := 0
	for _, e := range entities {
		width = max(width, len(e.Name))
	}

	for _, e := range entities {
		b.WriteString(fmt.Sprintf("   %s %s %s",
			keyStyle.Width(width).Render(e.Name),
			valueStyle.Render(e.Collection),
			subtleStyle.Render(fmt.Sprintf("(%d fields)", e.FieldCount))))
		if len(e.Aliases) > 0 {
			b.WriteString(" " + subtleStyle.Render("aliases: "+strings.Join(e.Aliases, ", ")))
		}
		if len(e.Selection) > 0 {
			b.WriteString("\n      " + subtleStyle.Render("selects: "+strings.Join(e.Selection, ", ")))
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// RenderFields renders the filterable fields of one entity as aligned columns
func RenderFields(listing *FieldListing) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render(fmt.Sprintf("🔎 Filterable fields of %s:", listing.Entity)) + "\n")

	if len(listing.Fields) == 0 {
		b.WriteString("   " + subtleStyle.Render("No filterable fields"))
		return b.String()
	}

	nameWidth, kindWidth := 0, 0
	for _, f := range listing.Fields {
		nameWidth = max(nameWidth, len(f.Name))
		kindWidth = max(kindWidth, len(f.Kind.String()))
	}

	for _, f := range listing.Fields {
		b.WriteString(fmt.Sprintf("   %s %s %s\n",
			valueStyle.Width(nameWidth).Render(f.Name),
			keyStyle.Width(kindWidth).Render(f.Kind.String()),
			subtleStyle.Render(f.Description)))
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// RenderReport renders the validation report of a filter file
func RenderReport(report *Report) string {
	var b strings.Builder

	if report.Result.Valid {
		b.WriteString(successStyle.Render("✓ "+report.Path) + " " + subtleStyle.Render("is valid"))
		return b.String()
	}

	b.WriteString(errorStyle.Render("✗ "+report.Path) + " " +
		subtleStyle.Render(fmt.Sprintf("has %d error(s):", len(report.Result.Errors))) + "\n")
	for _, e := range report.Result.Errors {
		b.WriteString(fmt.Sprintf("   %s %s\n",
			warningStyle.Render(orDefault(e.Field, "(root)")+":"),
			valueStyle.Render(e.Message)))
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
