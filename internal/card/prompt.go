package card

import (
	"fmt"
	"strings"
)

const (
	defaultWritingStyle = "natural and authentic"
	poemClause          = "Please include a short poem that captures these sentiments."
	closingClause       = "Make it personal, heartfelt, and specific to the details provided."
)

// BuildPrompt composes the user prompt for one card request.
func BuildPrompt(req GenerationRequest) string {
	style := req.WritingStyle
	if style == "" {
		style = defaultWritingStyle
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Write a %s card message for my %s.\n", req.CardType, req.RecipientRelationship))
	sb.WriteString(fmt.Sprintf("Writing style: %s\n", style))
	sb.WriteString(fmt.Sprintf("Length: %s\n", req.LengthTier.Guideline()))
	sb.WriteString(fmt.Sprintf("Recent highlight/memory: %s\n", req.RecentMemory))
	sb.WriteString(fmt.Sprintf("Their characteristics: %s\n", strings.Join(req.Characteristics, ", ")))
	sb.WriteString(fmt.Sprintf("What makes them special: %s\n", req.SpecialQualities))
	if req.IncludePoem {
		sb.WriteString(poemClause)
		sb.WriteString("\n")
	}
	sb.WriteString(closingClause)

	return sb.String()
}
