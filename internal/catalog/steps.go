package catalog

// The onboarding sequence for getting a therapy practice onto Google
// Business Profile. Ordering is by ID; the table is never mutated after
// process start.
var steps = []StepDefinition{
	{
		ID:          1,
		Title:       "Welcome",
		Description: "What a Google Business Profile does for a private practice and what this walkthrough covers.",
		Type:        StepTypeInfo,
		Content: Sections{
			Heading: "Get found by clients near you",
			Body: []string{
				"A free Business Profile puts your practice on Google Search and Maps.",
				"This walkthrough takes about twenty minutes end to end.",
			},
		},
	},
	{
		ID:          2,
		Title:       "Why it matters",
		Description: "How prospective clients actually search for a therapist.",
		Type:        StepTypeInfo,
		Content: FlowDiagram{
			Stages: []string{"Client searches \"therapist near me\"", "Map pack shows three practices", "Client taps a profile", "Client calls or books"},
		},
	},
	{
		ID:          3,
		Title:       "Before you start",
		Description: "Everything to have on hand before creating the profile.",
		Type:        StepTypeChecklist,
		Content: Checklist{
			Items: []string{
				"A Google account for the practice",
				"Practice name exactly as it appears on your signage and website",
				"Office address or service area",
				"Phone number clients should call",
				"License or credential details",
			},
		},
	},
	{
		ID:          4,
		Title:       "Office or telehealth",
		Description: "Pick how clients visit you; this changes how your address is shown.",
		Type:        StepTypeChoice,
		Content: Choices{
			Prompt: "How do clients see you?",
			Options: []string{
				"In person at my office",
				"Telehealth only",
				"Both in person and telehealth",
			},
		},
	},
	{
		ID:          5,
		Title:       "Create the profile",
		Description: "Start the profile on Google's business site with the name you chose.",
		Type:        StepTypeInfo,
		Content: Sections{
			Heading: "google.com/business",
			Body: []string{
				"Sign in with the practice account, not a personal one.",
				"Enter the practice name exactly as it appears elsewhere online.",
			},
		},
	},
	{
		ID:          6,
		Title:       "Pick your category",
		Description: "The primary category controls which searches you appear in.",
		Type:        StepTypeChoice,
		Content: Choices{
			Prompt: "Primary category",
			Options: []string{
				"Psychotherapist",
				"Counselor",
				"Marriage or relationship counselor",
				"Child psychologist",
				"Mental health clinic",
			},
		},
	},
	{
		ID:          7,
		Title:       "Address and service area",
		Description: "Enter the office address, or hide it and define a service area for telehealth.",
		Type:        StepTypeForm,
		Content: FormFields{
			Fields: []string{"street_address", "suite", "city", "state", "postal_code", "service_area"},
		},
	},
	{
		ID:          8,
		Title:       "Contact details",
		Description: "Phone number and website clients will use to reach you.",
		Type:        StepTypeForm,
		Content: FormFields{
			Fields: []string{"phone", "website_url", "appointment_url"},
		},
	},
	{
		ID:          9,
		Title:       "Verification",
		Description: "Google confirms you really operate at this location.",
		Type:        StepTypeInfo,
		Content: FlowDiagram{
			Stages: []string{"Request verification", "Postcard, phone or video review", "Enter the code", "Profile goes live"},
		},
	},
	{
		ID:          10,
		Title:       "Business hours",
		Description: "Set the hours clients can book sessions, including telehealth windows.",
		Type:        StepTypeForm,
		Content: FormFields{
			Fields: []string{"weekday_hours", "weekend_hours", "holiday_hours"},
		},
	},
	{
		ID:          11,
		Title:       "Describe your practice",
		Description: "Write the profile description in plain language a client would use.",
		Type:        StepTypeInfo,
		Content: Sections{
			Heading: "750 characters, first sentence counts most",
			Body: []string{
				"Lead with who you help and how, not with credentials.",
				"Mention modalities only after the problems you treat.",
			},
		},
	},
	{
		ID:          12,
		Title:       "Services list",
		Description: "Add each service so it can match specific searches.",
		Type:        StepTypeChecklist,
		Content: Checklist{
			Items: []string{
				"Individual therapy",
				"Couples counseling",
				"Family therapy",
				"Teen counseling",
				"EMDR",
				"Telehealth sessions",
			},
		},
	},
	{
		ID:          13,
		Title:       "Photos",
		Description: "Profiles with photos get far more clicks; what to shoot and what to skip.",
		Type:        StepTypeChecklist,
		Content: Checklist{
			Items: []string{
				"Exterior shot that helps clients find the door",
				"Waiting room and office",
				"A professional headshot",
				"Skip stock photos entirely",
			},
		},
	},
	{
		ID:          14,
		Title:       "Reviews",
		Description: "How to handle reviews ethically as a licensed clinician.",
		Type:        StepTypeInfo,
		Content: Sections{
			Heading: "Never solicit client reviews",
			Body: []string{
				"Most licensing boards prohibit asking clients for testimonials.",
				"Colleagues and professional contacts can review your practice instead.",
				"Respond to every review without confirming anyone is a client.",
			},
		},
	},
	{
		ID:          15,
		Title:       "Posts and updates",
		Description: "Keep the profile active with occasional updates.",
		Type:        StepTypeInfo,
		Content: Sections{
			Heading: "Once a month is plenty",
			Body: []string{
				"Announce new openings, groups or workshops.",
				"An active profile ranks better than a stale one.",
			},
		},
	},
	{
		ID:          16,
		Title:       "Ongoing upkeep",
		Description: "The short routine that keeps the profile accurate.",
		Type:        StepTypeChecklist,
		Content: Checklist{
			Items: []string{
				"Update hours before holidays",
				"Answer questions in the Q&A tab",
				"Check suggested edits monthly",
				"Refresh photos twice a year",
			},
		},
	},
	{
		ID:          17,
		Title:       "You're all set",
		Description: "The profile is live; where to go from here.",
		Type:        StepTypeFinal,
		Content: Sections{
			Heading: "Profile complete",
			Body: []string{
				"Expect the first profile views within a week of verification.",
				"Want help with the rest of your online presence? Reach out any time.",
			},
		},
	},
}
