package services

import "strings"

// Filter modes accepted by SelectParts. Unknown modes behave as FilterAll.
const (
	FilterAll          = "all"
	FilterHighPriority = "high_priority"
	FilterInterior     = "interior"
	FilterLight        = "light"
)

// highPriorityCap bounds the high_priority candidate list.
const highPriorityCap = 30

// PriceBook is the slice of the junkyard price table the analysis pipeline
// consumes.
type PriceBook interface {
	Price(name string) (float64, bool)
	AllParts() []string
}

// highPriorityParts are the known-profitable part labels, in preference
// order: electronics first, then lighting, interior, seats/airbags, body.
var highPriorityParts = []string{
	"RADIO",
	"RADIO WITH DISPLAY",
	"RADIO WITHOUT DISPLAY",
	"INSTRUMENT CLUSTER",
	"SPEEDOMETER HEAD ONLY",
	"NAVIGATION GPS SCREEN",
	"DISPLAY SCREEN",
	"ECM (ELECTRONIC CONTROL MODULE)",
	"TCM (TRANSMISSION CONTROL MOD.)",

	"HEADLIGHT",
	"TAILLIGHT",
	"FOG LIGHT",

	"STEERING WHEEL",
	"CLIMATE CONTROL",
	"SWITCH PANEL",
	"CENTER CONSOLE",
	"MIRROR (SIDE VIEW)",
	"INTERIOR MIRROR",

	"SEAT WITH AIR BAG FRONT",
	"SEAT NO AIR BAG FRONT",
	"AIR BAG (FRONT, DRIVER)",
	"AIR BAG (FRONT, PASSENGER)",

	"GRILLE",
	"BUMPER COVER, FRONT",
	"DOOR, FRONT",
	"HOOD",
	"FENDER",
	"WHEEL (ALUMINUM)",
}

// interiorKeywords select lightweight, easy-to-carry interior parts.
var interiorKeywords = []string{
	"CONSOLE", "DASHBOARD", "DASH", "GLOVE", "STEERING", "SEAT",
	"DOOR PANEL", "ARMREST", "CARPET", "HEADLINER", "VISOR",
	"MIRROR", "RADIO", "INSTRUMENT", "CLUSTER", "TRIM", "HANDLE",
	"SWITCH", "VENT", "SHIFTER", "BEZEL", "CUBBY", "ASHTRAY",
	"CUP HOLDER", "KNOB", "BUTTON", "CLOCK",
}

// lightExteriorKeywords select exterior parts that are easy to remove.
var lightExteriorKeywords = []string{
	"HEADLIGHT", "TAILLIGHT", "BUMPER COVER", "GRILLE", "EMBLEM",
	"DOOR", "HOOD", "WHEEL", "HUBCAP", "BADGE",
}

// SelectParts produces the ordered candidate list for one filter mode,
// drawn from the price book's key set. The vehicle category is accepted for
// interface completeness; no mode currently distinguishes by it.
func SelectParts(book PriceBook, vehicleType, filterMode string) []string {
	all := book.AllParts()

	switch filterMode {
	case FilterHighPriority:
		return matchHighPriority(all)
	case FilterInterior:
		return matchKeywords(all, interiorKeywords)
	case FilterLight:
		keywords := append(append([]string{}, interiorKeywords...), lightExteriorKeywords...)
		return matchKeywords(all, keywords)
	default:
		return all
	}
}

// matchHighPriority matches curated labels against book keys with
// bidirectional substring containment, preserving discovery order.
func matchHighPriority(all []string) []string {
	seen := make(map[string]struct{})
	var filtered []string

	for _, priority := range highPriorityParts {
		pu := strings.ToUpper(priority)
		for _, part := range all {
			au := strings.ToUpper(part)
			if !strings.Contains(au, pu) && !strings.Contains(pu, au) {
				continue
			}
			if _, dup := seen[part]; dup {
				continue
			}
			seen[part] = struct{}{}
			filtered = append(filtered, part)
		}
	}

	if len(filtered) > highPriorityCap {
		filtered = filtered[:highPriorityCap]
	}
	return filtered
}

// matchKeywords keeps parts containing any keyword. An empty match falls
// back to the full key set: a filter must never starve the analyzer.
func matchKeywords(all, keywords []string) []string {
	var filtered []string
	for _, part := range all {
		pu := strings.ToUpper(part)
		for _, kw := range keywords {
			if strings.Contains(pu, kw) {
				filtered = append(filtered, part)
				break
			}
		}
	}
	if len(filtered) == 0 {
		return all
	}
	return filtered
}
