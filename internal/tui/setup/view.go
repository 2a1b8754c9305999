package setup

import (
	"fmt"
	"strings"

	"github.com/jakoblorz/wpblocks/internal/models"
	"github.com/jakoblorz/wpblocks/internal/project"
	workflow "github.com/jakoblorz/wpblocks/internal/setup"
	"github.com/jakoblorz/wpblocks/internal/tui"
)

// RenderIntro is printed before the first prompt.
func RenderIntro() string {
	return tui.TitleStyle.Render("🛠️  Plugin configuration setup")
}

// RenderSuccess renders a summary after a completed workflow run.
func RenderSuccess(root string, id *models.PluginIdentity, result *workflow.Result) string {
	var b strings.Builder

	b.WriteString(tui.SuccessStyle.Render("✨ Done!"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Plugin:     %s (%s)\n", id.PluginName, id.TextDomain))
	if result.EntryFile != "" {
		b.WriteString(fmt.Sprintf("Entry file: %s\n", project.Rel(root, result.EntryFile)))
	}
	if len(result.Updated) > 0 {
		b.WriteString(fmt.Sprintf("Updated %d file(s):\n", len(result.Updated)))
		for i, file := range result.Updated {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, file))
		}
	}
	if n := len(result.Warnings); n > 0 {
		b.WriteString("\n")
		b.WriteString(tui.SubtleStyle.Render(fmt.Sprintf("%d warning(s), see above.", n)))
		b.WriteString("\n")
	}

	return b.String()
}
