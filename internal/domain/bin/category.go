package bin

import "strings"

type Category struct {
	Name  string
	Color string
}

var (
	CategoryGeneralWaste  = Category{Name: "General Waste", Color: "#E53935"}
	CategoryCommingled    = Category{Name: "Commingled", Color: "#FDD835"}
	CategoryOrganics      = Category{Name: "Organics", Color: "#43A047"}
	CategoryPaper         = Category{Name: "Paper & Cardboard", Color: "#1E88E5"}
	CategoryGlass         = Category{Name: "Glass", Color: "#8E24AA"}
	CategorySoftPlastics  = Category{Name: "Soft Plastics", Color: "#FB8C00"}
	CategoryLandfill      = Category{Name: "Landfill", Color: "#6D4C41"}
	CategoryUncategorised = Category{Name: "Other", Color: "#9E9E9E"}
)

// checked in order; first match wins
var categoryKeywords = []struct {
	keywords []string
	category Category
}{
	{[]string{"general"}, CategoryGeneralWaste},
	{[]string{"commingled", "co-mingled", "recycl"}, CategoryCommingled},
	{[]string{"organic", "food", "compost"}, CategoryOrganics},
	{[]string{"paper", "cardboard"}, CategoryPaper},
	{[]string{"glass"}, CategoryGlass},
	{[]string{"soft plastic", "plastic"}, CategorySoftPlastics},
	{[]string{"landfill"}, CategoryLandfill},
}

func CategoryOf(binName string) Category {
	name := strings.ToLower(strings.TrimSpace(binName))
	if name == "" {
		return CategoryUncategorised
	}
	for _, entry := range categoryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(name, kw) {
				return entry.category
			}
		}
	}
	return CategoryUncategorised
}
