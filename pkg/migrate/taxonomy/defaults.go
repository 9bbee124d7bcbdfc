package taxonomy

// Default returns the built-in mapping for the Sanity -> Drupal migration.
func Default() *Mapping {
	return Build(defaultGroups, defaultTranslations, defaultIgnored)
}

// defaultGroups maps each Drupal field to the Sanity tag labels that
// classify into it.
var defaultGroups = map[string][]string{
	// Sanity category "Topics"
	"field_topics": {
		"Eating and body image",
		"Relationships",
		"Panic attacks",
		"Natural disasters",
		"Stress",
		"Self-harm",
		"Suicide",
		"Psychosis",
		"Grief",
		"Gambling",
		"Domestic and family violence",
		"Financial stress",
		"Trauma",
		"Loneliness",
		"Depression",
		"Substance Misuse",
		"Anxiety",
	},
	// Sanity "Listen, watch, or read". The Sanity "Media Type" labels
	// (Audio/Graphic/Video) do not match Drupal's Listen/Read/Watch
	// checkboxes; those live in defaultIgnored.
	"field_media_type": {
		"Read",
		"Watch",
		"Listen",
	},
	// Sanity "For others content"
	"field_audience": {
		"Carer Stories",
		"For Others Page",
		"Friends Family",
	},
	// Sanity "Quiz - Manage Now or Help Long Term"
	"field_quiz_question_2": {
		"Long-term help",
		"Short-term help",
	},
	// Sanity "Help right now or long term"
	"field_timeframe": {
		"Long term",
		"Right now",
	},
	// Sanity "Content Type"
	"field_support_toolkit_type": {
		"Technique or Strategy",
		"Support Service",
		"Support Guide",
		"Real Story",
		"Tool or App",
	},
	// Sanity "Type"
	"field_tools_apps_type": {
		"Online Program",
		"Book",
		"Website",
		"App",
	},
	// Sanity "Quiz - Something Else": a term within the quiz_question_1
	// vocabulary, not a separate field.
	"field_quiz_question_1": {
		"Other topics",
	},
	// Sanity "Quiz - Understanding"
	"field_quiz_understanding": {
		"Understanding",
	},
	// Sanity "Cost"
	"field_cost": {
		"Low cost",
		"Free",
	},
	// Sanity "Access Options"
	"field_access_options": {
		"Online",
		"Phone",
		"Counselling",
		"Text",
		"Forum",
		"Peer Support",
		"Crisis",
		"In Person",
	},
	// Sanity "State"
	"field_state": {
		"National",
		"NT",
		"ACT",
		"SA",
		"TAS",
		"VIC",
		"WA",
		"QLD",
		"NSW",
	},
	// Sanity "Priority"
	"field_quiz_priority": {
		"Priority 3",
		"Priority 2",
		"Priority 1",
	},
}

// defaultTranslations maps Sanity labels to the Drupal taxonomy term names
// where they differ. Classification always keys on the Sanity label;
// translation applies afterwards.
var defaultTranslations = map[string]string{
	// field_support_toolkit_type
	"Technique or Strategy": "Techniques & Guides",
	"Tool or App":           "Tools & Apps",
	// field_timeframe
	"Right now": "Help right now",
	"Long term": "Long term help",
	// field_quiz_question_2
	"Short-term help": "Try something to help me manage now",
	"Long-term help":  "Strategies to help me long term",
	// field_quiz_question_1
	"Other topics": "I'm feeling something else",
	// field_audience
	"For Others Page": "For Others",
	"Friends Family":  "For Friends & Family",
	// field_topics
	"Grief":    "Grief & loss",
	"Gambling": "Problem gambling",
	// field_access_options
	"Online": "Online Chat",
}

// defaultIgnored lists Sanity labels with no Drupal equivalent; they are
// dropped silently rather than warned about.
var defaultIgnored = []string{"Audio", "Graphic", "Video"}
