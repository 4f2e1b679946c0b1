package card

// LengthOption pairs a tier with its form label.
type LengthOption struct {
	Value LengthTier `json:"value"`
	Label string     `json:"label"`
}

// FormOptions are the choices offered by the card form.
type FormOptions struct {
	CardTypes       []string       `json:"cardTypes"`
	Relationships   []string       `json:"relationships"`
	Characteristics []string       `json:"characteristics"`
	Lengths         []LengthOption `json:"lengths"`
}

// Options returns a fresh copy of the form choices.
func Options() FormOptions {
	return FormOptions{
		CardTypes: []string{
			"Thank You",
			"Gratitude",
			"Love",
			"Valentine's",
			"Birthday",
			"Anniversary",
		},
		// Suggestions only; any relationship text is accepted.
		Relationships: []string{
			"Partner",
			"Friend",
			"Family member",
			"Colleague",
			"Parent",
			"Sibling",
			"Child",
			"Mentor",
		},
		Characteristics: []string{
			"Kind",
			"Funny",
			"Adventurous",
			"Thoughtful",
			"Creative",
			"Caring",
			"Inspiring",
			"Supportive",
			"Intelligent",
			"Passionate",
		},
		Lengths: []LengthOption{
			{Value: LengthShort, Label: "Short and Sweet"},
			{Value: LengthMedium, Label: "Medium"},
			{Value: LengthLong, Label: "Long"},
		},
	}
}
