// Package templates assembles the canned multi-section answers for the
// keyword-routed intents. These are fixed text blocks with computed values
// substituted in; there is no retrieval or learning here.
package templates

// Greeting is the fixed welcome answer for greetings and very short
// messages.
func Greeting() string {
	return "👋 Hello! I'm HealthNest, your personal health assistant.\n\n" +
		"I can help you with:\n" +
		"🥗 Nutrition & diet advice\n" +
		"💪 Fitness & exercise recommendations\n" +
		"📊 BMI and calorie calculations\n" +
		"🤰 Pregnancy information\n" +
		"👩 Women's health questions\n" +
		"🏥 General health tips\n\n" +
		"Just ask me anything!"
}
