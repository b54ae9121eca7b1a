package templates

import (
	"fmt"
	"sort"
	"strings"

	"github.com/healthnest/healthnest-be/internal/knowledge"
)

// WomensHealth builds the women's-health answer. When the message mentions a
// symptom known to the store, its phase-specific advice leads the answer;
// the general menstrual-health block follows either way.
func WomensHealth(message string, store *knowledge.Store) string {
	lower := strings.ToLower(message)

	var b strings.Builder
	b.WriteString("👩 **Women's Health:**\n\n")

	// Sorted keys keep the answer deterministic when several symptoms match.
	keys := make([]string, 0, len(store.Symptoms))
	for key := range store.Symptoms {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if strings.Contains(lower, key) {
			symptom := store.Symptoms[key]
			fmt.Fprintf(&b, "**For %s** (%s phase, usually %s): %s\n\n",
				key, symptom.Phase, symptom.Severity, symptom.Advice)
			break
		}
	}

	b.WriteString("**Menstrual Cycle:**\nNormal cycle: 21-35 days, period: 3-7 days.\n\n")
	b.WriteString("**Pain Relief:**\nHeat pad, gentle exercise, ibuprofen, ginger tea, proper rest.\n\n")
	b.WriteString("**Diet During Period:**\nIron-rich foods (spinach, red meat, legumes); avoid excess caffeine and salt.")
	return b.String()
}
