package tools

import (
	"sort"

	"github.com/Rorical/RoriChat/internal/models"
)

func cityParameter() models.ParameterSchema {
	return models.ParameterSchema{
		Type: "object",
		Properties: map[string]models.PropertySchema{
			"city": {Type: "string", Description: "The name of the city"},
		},
		Required: []string{"city"},
	}
}

// Catalog returns the tools advertised to the chat backend, in a fixed order.
// Every entry needs a matching dispatcher function.
func Catalog() []models.ToolDescriptor {
	return []models.ToolDescriptor{
		{
			Type: "function",
			Function: models.FunctionDescriptor{
				Name:        string(GetWeatherTool),
				Description: "Get the weather forecast for a specific city.",
				Parameters:  cityParameter(),
			},
		},
		{
			Type: "function",
			Function: models.FunctionDescriptor{
				Name:        string(GetTimeTool),
				Description: "Get the current time for a city.",
				Parameters:  cityParameter(),
			},
		},
	}
}

// CatalogReport lists names that appear on only one side of the catalog/dispatcher pair
type CatalogReport struct {
	Undispatchable []string // Advertised but not registered
	Unadvertised   []string // Registered but not advertised
}

func (r CatalogReport) OK() bool {
	return len(r.Undispatchable) == 0 && len(r.Unadvertised) == 0
}

// CheckCatalog compares the catalog against the dispatcher table
func CheckCatalog(catalog []models.ToolDescriptor, d *Dispatcher) CatalogReport {
	var report CatalogReport

	advertised := make(map[string]bool, len(catalog))
	for _, desc := range catalog {
		advertised[desc.Function.Name] = true
		if _, ok := d.Lookup(desc.Function.Name); !ok {
			report.Undispatchable = append(report.Undispatchable, desc.Function.Name)
		}
	}

	for _, name := range d.Names() {
		if !advertised[name] {
			report.Unadvertised = append(report.Unadvertised, name)
		}
	}

	sort.Strings(report.Undispatchable)
	return report
}
