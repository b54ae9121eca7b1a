package templates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/healthnest/healthnest-be/internal/knowledge"
)

// weekPattern extracts a week number from phrasings like "week 20" or
// "20 weeks".
var weekPattern = regexp.MustCompile(`(?i)week\s*(\d{1,2})|(\d{1,2})\s*weeks?`)

// Pregnancy builds the pregnancy answer. When the message names a week that
// exists in the knowledge store, the answer is week-specific; otherwise it
// is the general overview block.
func Pregnancy(message string, store *knowledge.Store) string {
	if week, ok := ExtractWeek(message); ok {
		if info, err := store.Week(week); err == nil {
			return weekAnswer(info)
		}
	}
	return pregnancyOverview()
}

// ExtractWeek parses a pregnancy week number out of a message. Only values
// in [1,42] are accepted.
func ExtractWeek(message string) (int, bool) {
	match := weekPattern.FindStringSubmatch(message)
	if match == nil {
		return 0, false
	}
	digits := match[1]
	if digits == "" {
		digits = match[2]
	}
	week, err := strconv.Atoi(digits)
	if err != nil || week < 1 || week > 42 {
		return 0, false
	}
	return week, true
}

func weekAnswer(info knowledge.PregnancyWeek) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🤰 **Pregnancy Week %d (Trimester %d):**\n\n", info.Week, info.Trimester)
	fmt.Fprintf(&b, "**Baby:** %s\n\n", info.BabyDevelopment)
	fmt.Fprintf(&b, "**You:** %s\n\n", info.MotherChanges)
	fmt.Fprintf(&b, "**Advice:** %s", info.Advice)
	return b.String()
}

func pregnancyOverview() string {
	tips := []string{
		"Take folic acid 400mcg daily",
		"Stay hydrated - drink 10-12 glasses of water",
		"Eat small frequent meals",
		"Get 8-9 hours of sleep",
		"Avoid heavy lifting",
		"Attend all prenatal checkups",
	}

	var b strings.Builder
	b.WriteString("🤰 **Pregnancy Information:**\n\n")
	b.WriteString("**Overview:**\nPregnancy lasts 40 weeks (9 months), divided into 3 trimesters.\n\n")
	b.WriteString("**Nutrition:**\nEat 300-500 extra calories daily. Take prenatal vitamins. Avoid alcohol, raw fish, unpasteurized dairy.\n\n")
	b.WriteString("**Exercise:**\n30 min moderate exercise daily. Try: walking, swimming, prenatal yoga. Avoid: contact sports, hot yoga.\n\n")
	b.WriteString("**Important Tips:**\n")
	for _, tip := range tips {
		b.WriteString("• " + tip + "\n")
	}
	b.WriteString("\nAsk about a specific week (e.g. \"week 20\") for detailed information.")
	return b.String()
}
