package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/iam-fast/meyers-scraper/internal/menu"
)

// Summary renders a human-readable overview of the processed menus:
// item counts per date plus the item names and detail lines.
func Summary(menus *menu.Menus) string {
	var b strings.Builder

	divider := strings.Repeat("=", 60)
	b.WriteString(divider + "\n")
	b.WriteString("DATE MENUS EXTRACTED FROM MEYERS API\n")
	b.WriteString(divider + "\n\n")
	fmt.Fprintf(&b, "Total dates with menus: %d\n", menus.Len())

	dates := menus.Dates()
	sort.Strings(dates)

	for _, date := range dates {
		dm, _ := menus.Get(date)
		fmt.Fprintf(&b, "\n%s, %s (%d items)\n", dm.DayOfWeek, dm.Date, len(dm.Items))
		b.WriteString(strings.Repeat("-", 40) + "\n")

		if len(dm.Items) == 0 {
			b.WriteString("  No menu items available\n")
			continue
		}

		for _, item := range dm.Items {
			name := item.MenuName
			if name == "" {
				name = item.ItemName
			}
			fmt.Fprintf(&b, "  - %s\n", name)
			if item.MenuDescription != "" {
				fmt.Fprintf(&b, "      %s\n", item.MenuDescription)
			}
			if item.ItemCategory != "" {
				fmt.Fprintf(&b, "      Category: %s\n", item.ItemCategory)
			}
			if len(item.Pictograms) > 0 {
				fmt.Fprintf(&b, "      Pictograms: %s\n", joinKeys(item.Pictograms))
			}
			if len(item.Labels) > 0 {
				fmt.Fprintf(&b, "      Labels: %s\n", joinKeys(item.Labels))
			}
			if len(item.Allergens) > 0 {
				fmt.Fprintf(&b, "      Allergens: %s\n", joinKeys(item.Allergens))
			}
		}
	}

	b.WriteString("\n" + divider + "\n")
	return b.String()
}

func joinKeys(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}
