package presentation

import (
	"fmt"
	"io"
	"strconv"

	"tidyext/internal/domain"
)

// Printer writes run progress to the terminal. lipgloss downgrades the
// styling to plain text when the output is not a TTY, so nothing here has a
// functional effect on the run.
type Printer struct {
	Writer io.Writer
}

func (p Printer) PrintNoMatches(ext string) {
	fmt.Fprintf(p.Writer, "%s No files found with extension %s\n",
		infoStyle.Render("info:"),
		extStyle.Render("."+ext),
	)
}

func (p Printer) PrintFound(count int, ext, sourceDir string) {
	fmt.Fprintf(p.Writer, "\n%s %s files with extension %s in %s\n",
		foundStyle.Render("FOUND:"),
		countStyle.Render(strconv.Itoa(count)),
		extStyle.Render("."+ext),
		pathStyle.Render(sourceDir),
	)
}

func (p Printer) PrintCancelled() {
	fmt.Fprintln(p.Writer, warningStyle.Render("Operation cancelled."))
}

func (p Printer) PrintDirCreated(path string) {
	fmt.Fprintf(p.Writer, "%s Created directory %s\n",
		successStyle.Render("OK:"),
		pathStyle.Render(path),
	)
}

func (p Printer) PrintMoveResult(result domain.MoveResult) {
	if result.Err != nil {
		fmt.Fprintf(p.Writer, "  %s %s: %v\n", errorStyle.Render(iconFailed), result.Name, result.Err)
		return
	}
	fmt.Fprintf(p.Writer, "  %s %s\n", successStyle.Render(iconMoved), result.Name)
}

func (p Printer) PrintSummary(moved int, ext string) {
	fmt.Fprintf(p.Writer, "\n%s Moved %s files to the %s folder.\n",
		summaryStyle.Render("DONE:"),
		countStyle.Render(strconv.Itoa(moved)),
		extStyle.Render("'"+ext+"'"),
	)
}
