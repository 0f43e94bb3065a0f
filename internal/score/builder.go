package score

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/okrenz/manuscan/internal/model"
)

// principleWeights is the fixed relative-importance table. Structural
// metrics carry 1.0; prose-craft metrics carry 0.5-0.9. These values are
// load-bearing: changing any of them changes every overall score.
var principleWeights = map[model.PrincipleID]float64{
	model.PrinciplePacing:                   1.0,
	model.PrincipleDualCoding:               1.0,
	model.PrincipleCharacterDevelopment:     1.0,
	model.PrincipleThemeDepth:               1.0,
	model.PrincipleGenreConventions:         1.0,
	model.PrincipleConflictPresence:         1.0,
	model.PrincipleFictionBalance:           1.0,
	model.PrincipleEmotionalPacing:          0.9,
	model.PrinciplePOVConsistency:           0.9,
	model.PrincipleActiveVoice:              0.8,
	model.PrincipleDialogueNarrativeBalance: 0.8,
	model.PrincipleSceneSequelStructure:     0.8,
	model.PrincipleWordChoiceVariety:        0.7,
	model.PrincipleSentenceVariety:          0.7,
	model.PrincipleReadability:              0.7,
	model.PrincipleDirectProse:              0.7,
	model.PrincipleSensoryBalance:           0.7,
	model.PrincipleDialogueTagQuality:       0.6,
	model.PrincipleAdverbEconomy:            0.6,
	model.PrincipleClicheAvoidance:          0.6,
	model.PrincipleBackstoryBalance:         0.6,
}

// fictionElementWeight is the weight of each dynamic element entry.
const fictionElementWeight = 0.5

// Weight returns the fixed weight for a principle ID.
func Weight(id model.PrincipleID) float64 {
	if id.IsFictionElement() {
		return fictionElementWeight
	}
	return principleWeights[id]
}

// Builder turns raw analyzer results into the full principle-score list.
type Builder struct{}

// NewBuilder creates a principle-score builder.
func NewBuilder() *Builder { return &Builder{} }

// Build constructs every principle score from the raw results. The order
// of the returned slice is fixed, with the dynamic fiction-element block
// sorted descending by score.
func (b *Builder) Build(raw model.RawResults) []model.PrincipleScore {
	scores := []model.PrincipleScore{
		b.pacing(raw.Pacing),
		b.dualCoding(raw.DualCoding),
		b.characterDevelopment(raw.Characters),
		b.themeDepth(raw.Themes),
		b.genreConventions(raw.Tropes),
		b.wordChoiceVariety(raw.Prose),
		b.dialogueTagQuality(raw.Prose),
		b.activeVoice(raw.Prose),
		b.adverbEconomy(raw.Prose),
		b.sentenceVariety(raw.Prose),
		b.readability(raw.Prose),
		b.emotionalPacing(raw.Advanced),
		b.povConsistency(raw.Advanced),
		b.clicheAvoidance(raw.Advanced),
		b.directProse(raw.Advanced),
		b.backstoryBalance(raw.Advanced),
		b.dialogueNarrativeBalance(raw.Advanced),
		b.sceneSequelStructure(raw.Advanced),
		b.conflictPresence(raw.Advanced),
		b.sensoryBalance(raw.Advanced),
	}
	scores = append(scores, b.fictionElements(raw.Elements)...)
	scores = append(scores, b.fictionBalance(raw.Elements))
	return scores
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

func newScore(id model.PrincipleID, displayName string, value float64, details []string, suggestions []model.Suggestion) model.PrincipleScore {
	if suggestions == nil {
		suggestions = []model.Suggestion{}
	}
	if details == nil {
		details = []string{}
	}
	return model.PrincipleScore{
		ID:          id,
		DisplayName: displayName,
		Score:       value,
		Weight:      Weight(id),
		Details:     details,
		Suggestions: suggestions,
	}
}

func newSuggestion(id model.PrincipleID, n int, priority model.Priority, title, description, implementation, impact string, concepts ...string) model.Suggestion {
	if concepts == nil {
		concepts = []string{}
	}
	return model.Suggestion{
		ID:              fmt.Sprintf("%s-%d", id, n),
		PrincipleID:     id,
		Priority:        priority,
		Title:           title,
		Description:     description,
		Implementation:  implementation,
		ExpectedImpact:  impact,
		RelatedConcepts: concepts,
	}
}

func (b *Builder) pacing(r model.PacingResult) model.PrincipleScore {
	value := float64(PacingScore(r.Compact, r.Balanced, r.Extended))

	details := []string{
		fmt.Sprintf("Paragraph distribution: %d compact, %d balanced, %d extended", r.Compact, r.Balanced, r.Extended),
	}

	var suggestions []model.Suggestion
	for i, p := range r.Problems {
		suggestions = append(suggestions, newSuggestion(
			model.PrinciplePacing, i, model.PriorityMedium,
			"Break up a monotonous stretch",
			p.Description,
			"Vary paragraph length across the flagged stretch: intercut short action beats with longer scene-setting",
			"Stronger rhythm and reader momentum",
			"pacing", "paragraph length",
		))
	}

	return newScore(model.PrinciplePacing, "Pacing", value, details, suggestions)
}

func (b *Builder) dualCoding(r model.DualCodingResult) model.PrincipleScore {
	value := float64(DualCodingScore(r.SuggestionCount(), r.TotalParagraphs))

	details := []string{
		fmt.Sprintf("%d of %d paragraphs flagged as telling rather than showing", r.SuggestionCount(), r.TotalParagraphs),
	}

	var suggestions []model.Suggestion
	if r.SuggestionCount() > 0 {
		priority := model.PriorityLow
		switch {
		case value < 60:
			priority = model.PriorityHigh
		case value < 85:
			priority = model.PriorityMedium
		}
		suggestions = append(suggestions, newSuggestion(
			model.PrincipleDualCoding, 0, priority,
			"Convert abstract narration into sensory scenes",
			fmt.Sprintf("%d paragraphs carry no sensory detail at all", r.SuggestionCount()),
			"For each flagged paragraph, replace one summary statement with something a character can see, hear, or touch",
			"Readers experience scenes instead of being told about them",
			"show vs tell", "dual coding",
		))
	}

	return newScore(model.PrincipleDualCoding, "Show vs Tell", value, details, suggestions)
}

func (b *Builder) characterDevelopment(r model.CharacterResult) model.PrincipleScore {
	value := clamp(r.AverageDevelopment)

	details := make([]string, 0, len(r.Characters)+1)
	details = append(details, fmt.Sprintf("%d recurring characters detected", len(r.Characters)))
	for _, c := range r.Characters {
		details = append(details, fmt.Sprintf("%s (%s): %d mentions, %s arc, development %.0f",
			c.Name, c.Role, c.Mentions, c.Arc, c.DevelopmentScore))
	}

	var suggestions []model.Suggestion
	if value < 60 {
		priority := model.PriorityMedium
		if value < 40 {
			priority = model.PriorityHigh
		}
		suggestions = append(suggestions, newSuggestion(
			model.PrincipleCharacterDevelopment, 0, priority,
			"Deepen character arcs",
			fmt.Sprintf("Average character development is %.0f/100", value),
			"Give each major character a want, an obstacle, and a visible change between their first and last scene",
			"Characters readers remember after the last page",
			"character arc",
		))
	}

	return newScore(model.PrincipleCharacterDevelopment, "Character Development", value, details, suggestions)
}

func (b *Builder) themeDepth(r model.ThemeResult) model.PrincipleScore {
	value := clamp(r.DepthScore)

	details := make([]string, 0, len(r.Themes)+1)
	details = append(details, fmt.Sprintf("%d thematic threads detected", len(r.Themes)))
	for _, th := range r.Themes {
		details = append(details, fmt.Sprintf("theme %q: %d mentions, strength %.0f", th.Name, th.Mentions, th.Strength))
	}

	var suggestions []model.Suggestion
	for i, rec := range r.Recommendations {
		suggestions = append(suggestions, newSuggestion(
			model.PrincipleThemeDepth, i, model.PriorityMedium,
			"Strengthen thematic focus",
			rec,
			"Pick the theme the climax already pays off and echo it in two earlier scenes",
			"A manuscript that feels about something",
			"theme",
		))
	}

	return newScore(model.PrincipleThemeDepth, "Theme Depth", value, details, suggestions)
}

func (b *Builder) genreConventions(r model.TropeResult) model.PrincipleScore {
	value := clamp(r.ConventionScore)

	details := make([]string, 0, len(r.Tropes)+1)
	details = append(details, fmt.Sprintf("Genre %q: convention %.0f, overuse %.0f", r.Genre, r.ConventionScore, r.OveruseScore))
	for _, tr := range r.Tropes {
		details = append(details, fmt.Sprintf("trope %q appears %d times", tr.Name, tr.Count))
	}

	var suggestions []model.Suggestion
	for i, rec := range r.Recommendations {
		// Overuse past 60 is the one case that escalates to high.
		priority := model.PriorityMedium
		if r.OveruseScore > 60 {
			priority = model.PriorityHigh
		}
		suggestions = append(suggestions, newSuggestion(
			model.PrincipleGenreConventions, i, priority,
			"Rebalance genre tropes",
			rec,
			"Keep the tropes the genre promises, subvert the ones the reader will see coming",
			"Satisfies genre readers without feeling formulaic",
			"genre", "tropes",
		))
	}

	return newScore(model.PrincipleGenreConventions, "Genre Conventions", value, details, suggestions)
}

func (b *Builder) wordChoiceVariety(r model.ProseQualityResult) model.PrincipleScore {
	value := clamp(r.VocabularyVariety)
	details := []string{fmt.Sprintf("Vocabulary variety %.0f/100", value)}

	var suggestions []model.Suggestion
	if value < 60 {
		suggestions = append(suggestions, newSuggestion(
			model.PrincipleWordChoiceVariety, 0, model.PriorityMedium,
			"Widen the working vocabulary",
			"Distinct-word ratio is low for long-form prose",
			"Hunt repeated workhorse verbs and nouns; replace the second and later occurrences in each scene",
			"Fresher prose line by line",
			"word choice",
		))
	}

	return newScore(model.PrincipleWordChoiceVariety, "Word Choice Variety", value, details, suggestions)
}

func (b *Builder) dialogueTagQuality(r model.ProseQualityResult) model.PrincipleScore {
	value := clamp(r.DialogueTagQuality)
	details := []string{fmt.Sprintf("Dialogue tag quality %.0f/100", value)}

	var suggestions []model.Suggestion
	if value < 70 {
		suggestions = append(suggestions, newSuggestion(
			model.PrincipleDialogueTagQuality, 0, model.PriorityMedium,
			"Prefer invisible dialogue tags",
			"Ornate attribution verbs outnumber plain ones",
			"Replace ornate tags with \"said\"/\"asked\" or an action beat",
			"Dialogue reads faster and cleaner",
			"dialogue tags",
		))
	}

	return newScore(model.PrincipleDialogueTagQuality, "Dialogue Tag Quality", value, details, suggestions)
}

func (b *Builder) activeVoice(r model.ProseQualityResult) model.PrincipleScore {
	value := clamp(100 - r.PassiveVoicePct*2)
	details := []string{fmt.Sprintf("Passive voice in %.1f%% of sentences", r.PassiveVoicePct)}

	var suggestions []model.Suggestion
	if r.PassiveVoicePct > 15 {
		priority := model.PriorityMedium
		if value < 40 {
			priority = model.PriorityHigh
		}
		suggestions = append(suggestions, newSuggestion(
			model.PrincipleActiveVoice, 0, priority,
			"Convert passive constructions",
			fmt.Sprintf("%.1f%% of sentences use passive voice", r.PassiveVoicePct),
			"Recast \"was done by X\" as \"X did\"; keep passive only where the actor is genuinely unknown",
			"More direct, energetic prose",
			"active voice",
		))
	}

	return newScore(model.PrincipleActiveVoice, "Active Voice", value, details, suggestions)
}

func (b *Builder) adverbEconomy(r model.ProseQualityResult) model.PrincipleScore {
	value := clamp(100 - math.Min(100, r.AdverbDensity*2))
	details := []string{fmt.Sprintf("Adverb density %.1f per 1000 words", r.AdverbDensity)}

	var suggestions []model.Suggestion
	if r.AdverbDensity > 20 {
		suggestions = append(suggestions, newSuggestion(
			model.PrincipleAdverbEconomy, 0, model.PriorityMedium,
			"Cut -ly adverbs",
			fmt.Sprintf("Adverb density of %.1f per 1000 words is high", r.AdverbDensity),
			"Where an adverb props up a weak verb, swap both for one strong verb",
			"Tighter sentences",
			"adverbs",
		))
	}

	return newScore(model.PrincipleAdverbEconomy, "Adverb Economy", value, details, suggestions)
}

func (b *Builder) sentenceVariety(r model.ProseQualityResult) model.PrincipleScore {
	value := clamp(r.SentenceVariety)
	details := []string{fmt.Sprintf("Sentence buckets: %d short, %d medium, %d long",
		r.Sentences.Short, r.Sentences.Medium, r.Sentences.Long)}

	var suggestions []model.Suggestion
	if value < 70 {
		suggestions = append(suggestions, newSuggestion(
			model.PrincipleSentenceVariety, 0, model.PriorityMedium,
			"Vary sentence length",
			"Sentence lengths cluster in one band",
			"Read a page aloud; where the rhythm flattens, split one long sentence or fuse two short ones",
			"Prose with audible rhythm",
			"sentence variety",
		))
	}

	return newScore(model.PrincipleSentenceVariety, "Sentence Variety", value, details, suggestions)
}

func (b *Builder) readability(r model.ProseQualityResult) model.PrincipleScore {
	value := clamp(100 - math.Abs(r.FleschKincaidGrade-8)*5)
	details := []string{fmt.Sprintf("Flesch-Kincaid grade %.1f", r.FleschKincaidGrade)}

	var suggestions []model.Suggestion
	if value < 70 {
		description := "Reading grade is well above the fiction sweet spot"
		implementation := "Shorten sentences and prefer concrete words over abstractions"
		if r.FleschKincaidGrade < 8 {
			description = "Reading grade is well below the fiction sweet spot"
			implementation = "Fuse choppy sentences and allow more subordinate clauses where the scene is calm"
		}
		suggestions = append(suggestions, newSuggestion(
			model.PrincipleReadability, 0, model.PriorityMedium,
			"Tune reading difficulty",
			description,
			implementation,
			"Prose pitched at the broad fiction audience",
			"readability",
		))
	}

	return newScore(model.PrincipleReadability, "Readability", value, details, suggestions)
}

func (b *Builder) emotionalPacing(r model.AdvancedMetricsResult) model.PrincipleScore {
	value := clamp(r.EmotionalPacing.Score)
	details := []string{fmt.Sprintf("Emotional beats in %.1f%% of paragraphs", r.EmotionalPacing.Percentage)}

	var suggestions []model.Suggestion
	if value < 70 {
		suggestions = append(suggestions, newSuggestion(
			model.PrincipleEmotionalPacing, 0, model.PriorityMedium,
			"Spread emotional beats",
			"Emotional content is sparse or bunched into one stretch of the manuscript",
			"Give each act at least one scene that lands an emotional change on the viewpoint character",
			"A manuscript that breathes instead of flatlining",
			"emotional pacing",
		))
	}

	return newScore(model.PrincipleEmotionalPacing, "Emotional Pacing", value, details, suggestions)
}

func (b *Builder) povConsistency(r model.AdvancedMetricsResult) model.PrincipleScore {
	value := clamp(r.POV.Score)
	details := []string{fmt.Sprintf("Dominant POV: %s person, %d violations", r.POV.Dominant, r.POV.Violations)}

	var suggestions []model.Suggestion
	if r.POV.Violations > 0 {
		priority := model.PriorityMedium
		if value < 70 {
			priority = model.PriorityHigh
		}
		suggestions = append(suggestions, newSuggestion(
			model.PrinciplePOVConsistency, 0, priority,
			"Repair POV slips",
			fmt.Sprintf("%d pronoun uses fall outside the dominant %s-person narration", r.POV.Violations, r.POV.Dominant),
			"Search the manuscript for the off-POV pronouns and recast those sentences from the established viewpoint",
			"A stable narrative camera",
			"point of view",
		))
	}

	return newScore(model.PrinciplePOVConsistency, "POV Consistency", value, details, suggestions)
}

func (b *Builder) clicheAvoidance(r model.AdvancedMetricsResult) model.PrincipleScore {
	value := clamp(100 - float64(r.Cliches.Count)*4)
	details := []string{fmt.Sprintf("%d stock phrases found", r.Cliches.Count)}
	for _, c := range r.Cliches.Found {
		details = append(details, fmt.Sprintf("cliché: %q", c))
	}

	// Threshold preserved verbatim: only counts above 5 draw a suggestion.
	var suggestions []model.Suggestion
	if r.Cliches.Count > 5 {
		suggestions = append(suggestions, newSuggestion(
			model.PrincipleClicheAvoidance, 0, model.PriorityMedium,
			"Replace stock phrases",
			fmt.Sprintf("%d clichés detected", r.Cliches.Count),
			"Rewrite each flagged phrase with an image specific to this story's world",
			"Prose that sounds like this book and no other",
			"clichés",
		))
	}

	return newScore(model.PrincipleClicheAvoidance, "Cliché Avoidance", value, details, suggestions)
}

func (b *Builder) directProse(r model.AdvancedMetricsResult) model.PrincipleScore {
	value := clamp(r.Filtering.Score)
	details := []string{fmt.Sprintf("%d filtering words (%.1f per 1000 words)", r.Filtering.Count, r.Filtering.Density)}

	var suggestions []model.Suggestion
	if r.Filtering.Density > 8 {
		suggestions = append(suggestions, newSuggestion(
			model.PrincipleDirectProse, 0, model.PriorityMedium,
			"Remove perception filters",
			"Filtering verbs (saw, felt, noticed) keep the reader outside the viewpoint character",
			"Cut the filter and present the perception directly: \"she saw the door open\" becomes \"the door opened\"",
			"Deeper immersion in the viewpoint",
			"filtering words", "deep POV",
		))
	}

	return newScore(model.PrincipleDirectProse, "Direct Prose", value, details, suggestions)
}

func (b *Builder) backstoryBalance(r model.AdvancedMetricsResult) model.PrincipleScore {
	value := clamp(r.Backstory.Score)
	details := []string{fmt.Sprintf("%.1f%% of paragraphs dominated by backstory", r.Backstory.Percentage)}

	var suggestions []model.Suggestion
	if r.Backstory.Percentage > 30 {
		suggestions = append(suggestions, newSuggestion(
			model.PrincipleBackstoryBalance, 0, model.PriorityMedium,
			"Trim front-loaded backstory",
			fmt.Sprintf("%.1f%% of paragraphs are retrospective", r.Backstory.Percentage),
			"Move backstory to the moment a present-scene decision needs it; cut the rest",
			"Forward momentum from the first page",
			"backstory",
		))
	}

	return newScore(model.PrincipleBackstoryBalance, "Backstory Balance", value, details, suggestions)
}

func (b *Builder) dialogueNarrativeBalance(r model.AdvancedMetricsResult) model.PrincipleScore {
	value := clamp(r.DialogueRatio.Score)
	details := []string{fmt.Sprintf("Dialogue makes up %.1f%% of the text", r.DialogueRatio.Percentage)}

	var suggestions []model.Suggestion
	if value < 85 {
		title := "Add dialogue"
		description := "The manuscript leans heavily on narration"
		if r.DialogueRatio.Percentage > 60 {
			title = "Add narrative connective tissue"
			description = "The manuscript is nearly all dialogue"
		}
		suggestions = append(suggestions, newSuggestion(
			model.PrincipleDialogueNarrativeBalance, 0, model.PriorityMedium,
			title,
			description,
			"Aim for the 30-60% dialogue band scene by scene, not globally",
			"Scenes that alternate voice and motion",
			"dialogue balance",
		))
	}

	return newScore(model.PrincipleDialogueNarrativeBalance, "Dialogue/Narrative Balance", value, details, suggestions)
}

func (b *Builder) sceneSequelStructure(r model.AdvancedMetricsResult) model.PrincipleScore {
	value := clamp(r.SceneSequel.Score)
	details := []string{fmt.Sprintf("%d action scenes, %d reflective sequels", r.SceneSequel.Scenes, r.SceneSequel.Sequels)}

	var suggestions []model.Suggestion
	if value < 80 {
		suggestions = append(suggestions, newSuggestion(
			model.PrincipleSceneSequelStructure, 0, model.PriorityMedium,
			"Alternate scene and sequel",
			"Action scenes and reflective sequels are out of balance",
			"After each high-conflict scene, give the viewpoint character a beat to react, dilemma, and decide",
			"Tension that accumulates instead of numbing",
			"scene and sequel",
		))
	}

	return newScore(model.PrincipleSceneSequelStructure, "Scene/Sequel Structure", value, details, suggestions)
}

func (b *Builder) conflictPresence(r model.AdvancedMetricsResult) model.PrincipleScore {
	value := clamp(r.Conflict.DensityPer1000 * 50)
	details := []string{fmt.Sprintf("%d conflict markers (%.2f per 1000 words)", r.Conflict.Markers, r.Conflict.DensityPer1000)}

	var suggestions []model.Suggestion
	if r.Conflict.DensityPer1000 < 2 {
		// Below one marker per 1000 words is the verbatim high-priority line.
		priority := model.PriorityMedium
		if r.Conflict.DensityPer1000 < 1 {
			priority = model.PriorityHigh
		}
		suggestions = append(suggestions, newSuggestion(
			model.PrincipleConflictPresence, 0, priority,
			"Raise conflict density",
			fmt.Sprintf("Only %.2f conflict markers per 1000 words", r.Conflict.DensityPer1000),
			"Give every scene someone who wants something and someone or something in the way",
			"Scenes with a reason to exist",
			"conflict",
		))
	}

	return newScore(model.PrincipleConflictPresence, "Conflict Presence", value, details, suggestions)
}

func (b *Builder) sensoryBalance(r model.AdvancedMetricsResult) model.PrincipleScore {
	value := clamp(r.Sensory.Balance)
	details := []string{fmt.Sprintf("Sense usage: sight %d, sound %d, smell %d, taste %d, touch %d",
		r.Sensory.Sight, r.Sensory.Sound, r.Sensory.Smell, r.Sensory.Taste, r.Sensory.Touch)}

	var suggestions []model.Suggestion
	if value < 80 {
		priority := model.PriorityMedium
		if value < 60 {
			priority = model.PriorityHigh
		}
		var missing []string
		for _, s := range []struct {
			name  string
			count int
		}{
			{"sight", r.Sensory.Sight}, {"sound", r.Sensory.Sound},
			{"smell", r.Sensory.Smell}, {"taste", r.Sensory.Taste},
			{"touch", r.Sensory.Touch},
		} {
			if s.count == 0 {
				missing = append(missing, s.name)
			}
		}
		suggestions = append(suggestions, newSuggestion(
			model.PrincipleSensoryBalance, 0, priority,
			"Engage the neglected senses",
			fmt.Sprintf("Unused senses: %v", missing),
			"Pick three key scenes and add one detail for each missing sense",
			"A world readers can stand inside",
			"sensory detail",
		))
	}

	return newScore(model.PrincipleSensoryBalance, "Sensory Balance", value, details, suggestions)
}

// fictionElements produces one principle score per detected element,
// sorted descending by score before IDs are assigned. Ordering is part of
// the contract: downstream display and tests depend on it.
func (b *Builder) fictionElements(r model.FictionElementsResult) []model.PrincipleScore {
	elements := make([]model.FictionElement, len(r.Elements))
	copy(elements, r.Elements)
	sort.SliceStable(elements, func(i, j int) bool {
		if elements[i].Score != elements[j].Score {
			return elements[i].Score > elements[j].Score
		}
		return elements[i].Name < elements[j].Name
	})

	scores := make([]model.PrincipleScore, 0, len(elements))
	for i, el := range elements {
		id := model.FictionElementID(i)

		details := []string{fmt.Sprintf("Element %q scored %.0f/100", el.Name, el.Score)}

		var suggestions []model.Suggestion
		priority := model.PriorityLow
		switch {
		case el.Score < 30:
			priority = model.PriorityHigh
		case el.Score < 60:
			priority = model.PriorityMedium
		}
		// Up to 3 suggestions drawn from the element's insights.
		for n, insight := range el.Insights {
			if n >= 3 {
				break
			}
			suggestions = append(suggestions, newSuggestion(
				id, n, priority,
				fmt.Sprintf("Develop %s", el.Name),
				insight,
				"",
				"",
				"fiction elements", el.Name,
			))
		}

		scores = append(scores, newScore(id, elementDisplayName(el.Name), clamp(el.Score), details, suggestions))
	}
	return scores
}

func (b *Builder) fictionBalance(r model.FictionElementsResult) model.PrincipleScore {
	value := clamp(r.BalanceScore)
	details := []string{fmt.Sprintf("%d fiction elements scored, balance %.0f/100", len(r.Elements), value)}

	var suggestions []model.Suggestion
	if value < 70 {
		suggestions = append(suggestions, newSuggestion(
			model.PrincipleFictionBalance, 0, model.PriorityMedium,
			"Even out craft elements",
			"Some narrative elements are far more developed than others",
			"Bring the weakest two elements up rather than polishing the strongest further",
			"A manuscript strong across the board",
			"fiction elements", "balance",
		))
	}

	return newScore(model.PrincipleFictionBalance, "Fiction Element Balance", value, details, suggestions)
}

func elementDisplayName(name string) string {
	if name == "" {
		return name
	}
	r := []rune(name)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
