package card

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLengthTierGuideline(t *testing.T) {
	cases := map[LengthTier]string{
		LengthShort:  "50-100 words",
		LengthMedium: "100-200 words",
		LengthLong:   "200-400 words",
		"":           "100-200 words",
		"epic":       "100-200 words",
	}
	for tier, want := range cases {
		assert.Equal(t, want, tier.Guideline(), "tier %q", tier)
	}
}

func TestBuildPromptContainsRequiredFields(t *testing.T) {
	for _, tier := range []LengthTier{LengthShort, LengthMedium, LengthLong, ""} {
		req := GenerationRequest{
			CardType:              "Birthday",
			RecipientRelationship: "Sibling",
			LengthTier:            tier,
		}
		prompt := BuildPrompt(req)

		assert.Contains(t, prompt, "Birthday")
		assert.Contains(t, prompt, "Sibling")
		assert.Contains(t, prompt, tier.Guideline())
	}
}

func TestBuildPromptLayout(t *testing.T) {
	req := GenerationRequest{
		WritingStyle:          "dry and witty",
		CardType:              "Thank You",
		LengthTier:            LengthShort,
		RecipientRelationship: "Mentor",
		RecentMemory:          "the code review marathon",
		Characteristics:       []string{"Kind", "Funny", "Supportive"},
		SpecialQualities:      "always answers at 2am",
	}

	want := strings.Join([]string{
		"Write a Thank You card message for my Mentor.",
		"Writing style: dry and witty",
		"Length: 50-100 words",
		"Recent highlight/memory: the code review marathon",
		"Their characteristics: Kind, Funny, Supportive",
		"What makes them special: always answers at 2am",
		"Make it personal, heartfelt, and specific to the details provided.",
	}, "\n")

	assert.Equal(t, want, BuildPrompt(req))
}

func TestBuildPromptDefaultsWritingStyle(t *testing.T) {
	prompt := BuildPrompt(GenerationRequest{CardType: "Love", RecipientRelationship: "Partner"})
	assert.Contains(t, prompt, "Writing style: natural and authentic\n")
}

func TestBuildPromptPoemClause(t *testing.T) {
	req := GenerationRequest{CardType: "Anniversary", RecipientRelationship: "Partner"}

	assert.NotContains(t, BuildPrompt(req), poemClause)

	req.IncludePoem = true
	assert.Contains(t, BuildPrompt(req), poemClause)
}

func TestBuildPromptDoesNotMutateRequest(t *testing.T) {
	req := GenerationRequest{
		CardType:        "Gratitude",
		Characteristics: []string{"Caring", "Kind"},
	}
	before := append([]string(nil), req.Characteristics...)

	BuildPrompt(req)

	assert.Equal(t, before, req.Characteristics)
	assert.Empty(t, req.WritingStyle)
}

func TestOptionsReturnsCopies(t *testing.T) {
	a := Options()
	a.CardTypes[0] = "changed"

	assert.Equal(t, "Thank You", Options().CardTypes[0])
	assert.Len(t, Options().Lengths, 3)
	assert.True(t, GenerationRequest{Characteristics: []string{"Kind"}}.HasCharacteristic("Kind"))
}
