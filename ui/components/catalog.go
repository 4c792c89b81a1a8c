package components

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Rorical/RoriChat/internal/models"
	"github.com/Rorical/RoriChat/ui/styles"
)

// RenderCatalog lists advertised tools with their parameters
func RenderCatalog(catalog []models.ToolDescriptor) string {
	var b strings.Builder

	title := styles.ProgramStyle()
	item := styles.ToolCallStyle()
	muted := styles.MutedStyle()

	b.WriteString(title.Render(fmt.Sprintf("%d tools", len(catalog))) + "\n\n")
	for _, desc := range catalog {
		params := desc.Function.Parameters
		required := make(map[string]bool, len(params.Required))
		for _, name := range params.Required {
			required[name] = true
		}

		var lines []string
		lines = append(lines, desc.Function.Name+" - "+desc.Function.Description)
		for _, name := range sortedKeys(params.Properties) {
			prop := params.Properties[name]
			marker := ""
			if required[name] {
				marker = " (required)"
			}
			lines = append(lines, fmt.Sprintf("  %s: %s%s, %s", name, prop.Type, marker, prop.Description))
		}
		b.WriteString(item.Render(strings.Join(lines, "\n")) + "\n")
	}

	if len(catalog) == 0 {
		b.WriteString(muted.Render("no tools advertised") + "\n")
	}
	return b.String()
}

func sortedKeys(m map[string]models.PropertySchema) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
