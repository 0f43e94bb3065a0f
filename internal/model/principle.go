package model

import (
	"fmt"
	"strconv"
	"strings"
)

// PrincipleID identifies one tracked writing-craft metric. The set is
// closed except for fiction-element entries, which are generated
// dynamically from analyzer output (see FictionElementID).
type PrincipleID string

const (
	PrinciplePacing                   PrincipleID = "pacing"
	PrincipleDualCoding               PrincipleID = "dualCoding"
	PrincipleCharacterDevelopment     PrincipleID = "characterDevelopment"
	PrincipleThemeDepth               PrincipleID = "themeDepth"
	PrincipleGenreConventions         PrincipleID = "genreConventions"
	PrincipleWordChoiceVariety        PrincipleID = "wordChoiceVariety"
	PrincipleDialogueTagQuality       PrincipleID = "dialogueTagQuality"
	PrincipleActiveVoice              PrincipleID = "activeVoice"
	PrincipleAdverbEconomy            PrincipleID = "adverbEconomy"
	PrincipleSentenceVariety          PrincipleID = "sentenceVariety"
	PrincipleReadability              PrincipleID = "readability"
	PrincipleEmotionalPacing          PrincipleID = "emotionalPacing"
	PrinciplePOVConsistency           PrincipleID = "povConsistency"
	PrincipleClicheAvoidance          PrincipleID = "clicheAvoidance"
	PrincipleDirectProse              PrincipleID = "directProse"
	PrincipleBackstoryBalance         PrincipleID = "backstoryBalance"
	PrincipleDialogueNarrativeBalance PrincipleID = "dialogueNarrativeBalance"
	PrincipleSceneSequelStructure     PrincipleID = "sceneSequelStructure"
	PrincipleConflictPresence         PrincipleID = "conflictPresence"
	PrincipleSensoryBalance           PrincipleID = "sensoryBalance"
	PrincipleFictionBalance           PrincipleID = "fictionBalance"
)

const fictionElementPrefix = "fictionElement"

// FictionElementID builds the ID for the nth detected fiction element.
func FictionElementID(index int) PrincipleID {
	return PrincipleID(fmt.Sprintf("%s%d", fictionElementPrefix, index))
}

// IsFictionElement reports whether the ID is a dynamic fiction-element entry.
func (id PrincipleID) IsFictionElement() bool {
	rest, ok := strings.CutPrefix(string(id), fictionElementPrefix)
	if !ok || rest == "" {
		return false
	}
	_, err := strconv.Atoi(rest)
	return err == nil
}

// Priority ranks a suggestion by urgency.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Suggestion is a concrete, actionable recommendation derived from one
// principle's flagged issues. Suggestions never exist independent of a
// PrincipleScore.
type Suggestion struct {
	ID              string      `json:"id"`
	PrincipleID     PrincipleID `json:"principle_id"`
	Priority        Priority    `json:"priority"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	Implementation  string      `json:"implementation,omitempty"`
	ExpectedImpact  string      `json:"expected_impact,omitempty"`
	RelatedConcepts []string    `json:"related_concepts"`
}

// PrincipleScore is the engine's uniform reporting unit: one scored
// writing-craft dimension with its weight, findings, and suggestions.
// Constructed once per analysis pass, never mutated afterwards.
type PrincipleScore struct {
	ID          PrincipleID  `json:"id"`
	DisplayName string       `json:"display_name"`
	Score       float64      `json:"score"`  // 0-100
	Weight      float64      `json:"weight"` // 0.5-1.0, fixed per metric
	Details     []string     `json:"details"`
	Suggestions []Suggestion `json:"suggestions"`
}
