package seed

import (
	"time"

	"github.com/terraincognita07/accessaid/internal/models"
)

// DefaultPIN is the PIN every seeded account signs in with.
const DefaultPIN = "1234"

type userFixture struct {
	email       string
	firstName   string
	lastName    string
	timezone    string
	preferences models.AccessibilityPreferences
	voiceName   string
	speechRate  float64
	fontSize    string
	device      deviceFixture
	tasks       []taskFixture
	reminders   []reminderFixture
}

type deviceFixture struct {
	nameSuffix string
	deviceType string
	platform   string
}

type taskFixture struct {
	title        string
	description  string
	priority     string
	category     string
	dueIn        time.Duration
	reminderText string
}

type reminderFixture struct {
	title       string
	description string
	in          time.Duration
	frequency   string
	priority    string
}

var userFixtures = []userFixture{
	{
		email:     "john@example.com",
		firstName: "John",
		lastName:  "Smith",
		timezone:  "America/New_York",
		preferences: models.AccessibilityPreferences{
			VoiceSpeed:        0.8,
			HighContrast:      true,
			LargeText:         true,
			VoiceNavigation:   true,
			ReminderFrequency: models.ReminderFrequencyHigh,
			PreferredVoice:    "enhanced",
		},
		voiceName:  "enhanced",
		speechRate: 0.8,
		fontSize:   "large",
		device:     deviceFixture{nameSuffix: "iPhone", deviceType: "mobile", platform: "ios"},
		tasks: []taskFixture{
			{
				title:        "Read medication labels",
				description:  "Use voice assistance to read medication instructions",
				priority:     models.PriorityHigh,
				category:     "health",
				dueIn:        2 * time.Hour,
				reminderText: "Time to take your morning medication. Please use voice assistance to read the label.",
			},
			{
				title:        "Check email",
				description:  "Review important emails with text-to-speech",
				priority:     models.PriorityMedium,
				category:     "work",
				dueIn:        4 * time.Hour,
				reminderText: "You have new emails. Would you like me to read them to you?",
			},
		},
		reminders: []reminderFixture{
			{
				title:       "Medication Reminder",
				description: "Time to take your morning medication. Please use voice assistance to read the label.",
				in:          30 * time.Minute,
				frequency:   models.FrequencyDaily,
				priority:    models.PriorityHigh,
			},
			{
				title:       "Email Check",
				description: "You have new emails. Would you like me to read them to you?",
				in:          2 * time.Hour,
				frequency:   models.FrequencyOnce,
				priority:    models.PriorityMedium,
			},
		},
	},
	{
		email:     "mary@example.com",
		firstName: "Mary",
		lastName:  "Johnson",
		timezone:  "America/Chicago",
		preferences: models.AccessibilityPreferences{
			VoiceSpeed:        1.0,
			HighContrast:      false,
			LargeText:         false,
			VoiceNavigation:   true,
			ReminderFrequency: models.ReminderFrequencyHigh,
			PreferredVoice:    "clear",
		},
		voiceName:  "clear",
		speechRate: 1.0,
		fontSize:   "medium",
		device:     deviceFixture{nameSuffix: "Android", deviceType: "mobile", platform: "android"},
		tasks: []taskFixture{
			{
				title:        "Doctor appointment",
				description:  "Annual checkup at 2:00 PM",
				priority:     models.PriorityHigh,
				category:     "health",
				dueIn:        24 * time.Hour,
				reminderText: "You have a doctor appointment tomorrow at 2:00 PM. Don't forget to bring your insurance card.",
			},
			{
				title:        "Call pharmacy",
				description:  "Refill prescription for blood pressure medication",
				priority:     models.PriorityMedium,
				category:     "health",
				dueIn:        6 * time.Hour,
				reminderText: "Time to call the pharmacy for your prescription refill.",
			},
		},
		reminders: []reminderFixture{
			{
				title:       "Doctor Appointment",
				description: "You have a doctor appointment tomorrow at 2:00 PM. Don't forget to bring your insurance card.",
				in:          12 * time.Hour,
				frequency:   models.FrequencyOnce,
				priority:    models.PriorityUrgent,
			},
			{
				title:       "Pharmacy Call",
				description: "Time to call the pharmacy for your prescription refill.",
				in:          4 * time.Hour,
				frequency:   models.FrequencyWeekly,
				priority:    models.PriorityHigh,
			},
		},
	},
	{
		email:     "bob@example.com",
		firstName: "Bob",
		lastName:  "Wilson",
		timezone:  "America/Los_Angeles",
		preferences: models.AccessibilityPreferences{
			VoiceSpeed:        0.7,
			HighContrast:      true,
			LargeText:         true,
			VoiceNavigation:   true,
			ReminderFrequency: models.ReminderFrequencyNormal,
			PreferredVoice:    "simple",
		},
		voiceName:  "simple",
		speechRate: 0.7,
		fontSize:   "large",
		device:     deviceFixture{nameSuffix: "Tablet", deviceType: "tablet", platform: "android"},
		tasks: []taskFixture{
			{
				title:        "Take a walk",
				description:  "20-minute walk around the neighborhood",
				priority:     models.PriorityMedium,
				category:     "health",
				dueIn:        3 * time.Hour,
				reminderText: "It's time for your daily walk. Remember to wear comfortable shoes and bring water.",
			},
			{
				title:        "Family dinner",
				description:  "Dinner with family at 6:00 PM",
				priority:     models.PriorityHigh,
				category:     "personal",
				dueIn:        48 * time.Hour,
				reminderText: "Family dinner is in 2 days at 6:00 PM. Don't forget to bring the dessert you promised.",
			},
		},
		reminders: []reminderFixture{
			{
				title:       "Daily Walk",
				description: "It's time for your daily walk. Remember to wear comfortable shoes and bring water.",
				in:          time.Hour,
				frequency:   models.FrequencyDaily,
				priority:    models.PriorityMedium,
			},
			{
				title:       "Family Dinner",
				description: "Family dinner is in 2 days at 6:00 PM. Don't forget to bring the dessert you promised.",
				in:          24 * time.Hour,
				frequency:   models.FrequencyOnce,
				priority:    models.PriorityHigh,
			},
		},
	},
}

type ttsFixture struct {
	content  string
	duration float64
	context  string
}

var ttsFixtures = []ttsFixture{
	{content: "Time to take your morning medication", duration: 3.2, context: "reminder"},
	{content: "You have 3 new tasks to complete today", duration: 4.1, context: "notification"},
}

type accessibilityLogFixture struct {
	feature   string
	action    string
	sessionID string
	context   map[string]any
}

var accessibilityLogFixtures = []accessibilityLogFixture{
	{feature: "tts", action: "read_task_description", sessionID: "session_001", context: map[string]any{"task_id": 1, "text_length": 50}},
	{feature: "voice_navigation", action: "navigate_to_reminders", sessionID: "session_001", context: map[string]any{"from_screen": "home", "to_screen": "reminders"}},
	{feature: "high_contrast", action: "toggle_high_contrast", sessionID: "session_002", context: map[string]any{"enabled": true}},
}
