package prompts

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
)

// CardInstructionVersion tags the system instruction sent with every card
// request. Bump it whenever the record below changes.
const CardInstructionVersion = "card-instruction/v1"

// CardInstruction is the static system instruction for card messages.
// It is passed to the model verbatim; nothing here is enforced locally.
type CardInstruction struct {
	Parameters   CardParameters `json:"parameters"`
	Instructions string         `json:"instructions"`
}

type CardParameters struct {
	WritingStyle             string         `json:"writing_style"`
	CardType                 string         `json:"card_type"`
	MessageLength            MessageLength  `json:"message_length"`
	RecipientName            string         `json:"recipient_name"`
	RecentMemory             string         `json:"recent_memory"`
	RecipientCharacteristics string         `json:"recipient_characteristics"`
	SpecialQualities         string         `json:"special_qualities"`
	IncludePoem              string         `json:"include_poem"`
	PoemRules                PoemRules      `json:"poem_rules"`
	OutputRules              OutputRules    `json:"output_rules"`
	ExampleOutputs           ExampleOutputs `json:"example_outputs"`
}

type MessageLength struct {
	Type  string      `json:"type"`
	Rules LengthRules `json:"rules"`
}

type LengthRules struct {
	ShortSweet ShortSweetRule `json:"short_sweet"`
	Medium     MediumRule     `json:"medium"`
	Long       LongRule       `json:"long"`
}

type ShortSweetRule struct {
	MaxSentences      int    `json:"max_sentences"`
	MaxWords          int    `json:"max_words"`
	NoParagraphBreaks bool   `json:"no_paragraph_breaks"`
	SkipIntros        bool   `json:"skip_intros"`
	AllowFragments    bool   `json:"allow_fragments"`
	NoEmojis          bool   `json:"no_emojis"`
	StartWith         string `json:"start_with"`
}

type MediumRule struct {
	Lines              int  `json:"lines"`
	MaxParagraphBreaks int  `json:"max_paragraph_breaks"`
	AllowBriefIntros   bool `json:"allow_brief_intros"`
}

type LongRule struct {
	MinLines        int  `json:"min_lines"`
	AllowAnecdotes  bool `json:"allow_anecdotes"`
	AllowParagraphs bool `json:"allow_paragraphs"`
}

type PoemRules struct {
	Enabled          string   `json:"enabled"`
	RhymeSchemes     []string `json:"rhyme_schemes"`
	LineLimit        [2]int   `json:"line_limit"`
	SyllablesPerLine [2]int   `json:"syllables_per_line"`
	FocusElement     string   `json:"focus_element"`
	ExampleStructure []string `json:"example_structure"`
}

type OutputRules struct {
	RequiredGreeting   string   `json:"required_greeting"`
	Phrasing           Phrasing `json:"phrasing"`
	SignatureFormat    string   `json:"signature_format"`
	LanguageComplexity string   `json:"language_complexity"`
}

type Phrasing struct {
	Concise           bool              `json:"concise"`
	AvoidWordyPhrases []string          `json:"avoid_wordy_phrases"`
	PreferredPhrasing PreferredPhrasing `json:"preferred_phrasing"`
}

type PreferredPhrasing struct {
	Verbose string `json:"verbose"`
	Concise string `json:"concise"`
}

type ExampleOutputs struct {
	ShortSweet ExampleOutput `json:"short_sweet"`
	WithPoem   ExampleOutput `json:"with_poem"`
}

type ExampleOutput struct {
	Message     string `json:"message"`
	WordCount   int    `json:"word_count,omitempty"`
	RhymeScheme string `json:"rhyme_scheme,omitempty"`
}

// DefaultCardInstruction returns the instruction record of the current version.
func DefaultCardInstruction() CardInstruction {
	return CardInstruction{
		Parameters: CardParameters{
			WritingStyle: "Match user's provided style or default to natural and authentic",
			CardType:     "Adapt tone to specified card type (birthday, sympathy, etc.)",
			MessageLength: MessageLength{
				Type: "Determined by user selection",
				Rules: LengthRules{
					ShortSweet: ShortSweetRule{
						MaxSentences:      2,
						MaxWords:          40,
						NoParagraphBreaks: true,
						SkipIntros:        true,
						AllowFragments:    true,
						NoEmojis:          true,
						StartWith:         "Dear [Name],",
					},
					Medium: MediumRule{
						Lines:              4,
						MaxParagraphBreaks: 1,
						AllowBriefIntros:   true,
					},
					Long: LongRule{
						MinLines:        5,
						AllowAnecdotes:  true,
						AllowParagraphs: true,
					},
				},
			},
			RecipientName:            "Use provided relationship type",
			RecentMemory:             "Include naturally, without elaborate setup",
			RecipientCharacteristics: "Highlight key traits concisely",
			SpecialQualities:         "Reference specific memories/traits directly",
			IncludePoem:              "Only if explicitly requested AND not short_sweet",
			PoemRules: PoemRules{
				Enabled:          "{{Include a poem}} && message_length != 'short_sweet'",
				RhymeSchemes:     []string{"AABB", "ABAB"},
				LineLimit:        [2]int{4, 6},
				SyllablesPerLine: [2]int{6, 8},
				FocusElement:     "key_trait_or_memory",
				ExampleStructure: []string{
					"Your spirit bright and true, (A)",
					"In everything you do, (A)",
					"Brings laughter to each day, (B)",
					"In your own special way (B)",
				},
			},
			OutputRules: OutputRules{
				RequiredGreeting: "Dear [Name],",
				Phrasing: Phrasing{
					Concise: true,
					AvoidWordyPhrases: []string{
						"I've been reminiscing",
						"I couldn't help but smile",
						"Your unwavering support",
						"It means the world to me",
						"I just wanted to say",
					},
					PreferredPhrasing: PreferredPhrasing{
						Verbose: "Your unwavering support and unconditional love have played an immeasurable role",
						Concise: "Thank you for always supporting me",
					},
				},
				SignatureFormat:    "—[Your Name]",
				LanguageComplexity: "simple_everyday",
			},
			ExampleOutputs: ExampleOutputs{
				ShortSweet: ExampleOutput{
					Message:   "Dear Friend,\nYour laughter at our cookout still brightens my day. Thank you for filling life with joy.\n—[Your Name]",
					WordCount: 17,
				},
				WithPoem: ExampleOutput{
					Message:     "Dear Friend,\nYour wit on the court brings joy,\nMaking every game a treat to deploy.\nSkills sharp as can be,\nYou inspire us to see,\nThe fun in each moment we share,\nWith your spirit so bright and rare.\n—[Your Name]",
					RhymeScheme: "AABBCC",
				},
			},
		},
		Instructions: "Generate only the card message itself using provided parameters. Strictly enforce length rules and poem constraints. Ensure poems always rhyme when requested. Focus on emotional impact and personal connection while maintaining specified brevity.",
	}
}

var (
	renderOnce     sync.Once
	renderedPrompt string
)

// GetCardSystemPrompt returns the default instruction rendered as indented
// JSON. The rendering happens once per process.
func GetCardSystemPrompt() string {
	renderOnce.Do(func() {
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false) // keep "&&" readable for the model
		enc.SetIndent("", "  ")
		if err := enc.Encode(DefaultCardInstruction()); err != nil {
			// Plain structs of strings, ints and bools always marshal.
			panic("prompts: render card instruction: " + err.Error())
		}
		renderedPrompt = strings.TrimSuffix(buf.String(), "\n")
	})
	return renderedPrompt
}
