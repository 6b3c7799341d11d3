package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jwinther/homeplan/pkg/plan"
	"github.com/jwinther/homeplan/pkg/requirements"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - links
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(14)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// printStats prints plan statistics on a single line.
func printStats(roomCount int, footprint plan.Footprint, cached bool) {
	parts := []string{
		fmt.Sprintf("%d rooms", roomCount),
		fmt.Sprintf("%.1fm x %.1fm footprint",
			float64(footprint.Length)/1000, float64(footprint.Width)/1000),
	}

	status := iconFresh
	statusStyle := styleComputed
	if cached {
		status = iconCached
		statusStyle = styleCached
	}
	parts = append(parts, statusStyle.Render(status))

	line := "  "
	for i, part := range parts {
		if i > 0 {
			line += StyleDim.Render(" · ")
		}
		line += StyleDim.Render(part)
	}
	fmt.Println(line)
}

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

// =============================================================================
// Requirements & Room Display
// =============================================================================

// printRequirements prints the parsed requirements as labeled values.
func printRequirements(req requirements.HouseRequirements) {
	printKeyValue("style", req.Style)
	printKeyValue("total area", fmt.Sprintf("%.0f sqft", req.TotalArea))
	printKeyValue("bedrooms", fmt.Sprintf("%d", req.Bedrooms))
	printKeyValue("bathrooms", fmt.Sprintf("%g", req.Bathrooms))
	printKeyValue("garage", fmt.Sprintf("%d cars", req.GarageCars))
	printKeyValue("stories", fmt.Sprintf("%d", req.Stories))
	if len(req.SpecialRooms) > 0 {
		printKeyValue("special", fmt.Sprintf("%v", req.SpecialRooms))
	}
	if len(req.BathroomTypes) > 0 {
		printKeyValue("bath types", fmt.Sprintf("%v", req.BathroomTypes))
	}
	if req.HasAttic {
		printKeyValue("attic", "yes")
	}
	if req.HasBasement {
		printKeyValue("basement", "yes")
	}
}

// roomTable renders the plan's room list as a bordered table.
func roomTable(p plan.Plan) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, len(p.Rooms))
	for _, r := range p.Rooms {
		rows = append(rows, []string{
			r.Name,
			string(r.Category),
			fmt.Sprintf("%.0f", r.TargetArea),
			fmt.Sprintf("%.1f x %.1f", float64(r.Length)/1000, float64(r.Width)/1000),
			fmt.Sprintf("%d", r.Windows),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Room", "Category", "Sqft", "Size (m)", "Windows").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleValue
			}
			return StyleDim
		})

	return t.Render()
}

// printRoomTable prints the plan's rooms as a table.
func printRoomTable(p plan.Plan) {
	fmt.Println(roomTable(p))
}
