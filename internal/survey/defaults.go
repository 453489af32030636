package survey

import (
	"strconv"

	"github.com/advisehq/advisor/internal/profile"
)

// DefaultInterestQuestions returns the built-in RIASEC interest block:
// 24 Likert statements, four per dimension, in enumeration order.
func DefaultInterestQuestions() []Question {
	statements := []struct {
		dimension profile.Dimension
		category  string
		prompts   [4]string
	}{
		{profile.Realistic, "Hands-On Work", [4]string{
			"I enjoy building or repairing things with my hands",
			"I like working with tools, machines, or equipment",
			"I would enjoy assembling a working prototype from parts",
			"Practical, physical tasks appeal to me more than desk work",
		}},
		{profile.Investigative, "Research & Analysis", [4]string{
			"I enjoy figuring out why something works the way it does",
			"I like solving abstract problems or puzzles",
			"I would enjoy designing and running an experiment",
			"I read about scientific or technical topics for fun",
		}},
		{profile.Artistic, "Creative Expression", [4]string{
			"I enjoy creating things that are visually or aesthetically pleasing",
			"I like expressing ideas through writing, design, or performance",
			"I would enjoy a project with no fixed rules or structure",
			"Coming up with original ideas energises me",
		}},
		{profile.Social, "Helping People", [4]string{
			"I enjoy teaching or explaining things to others",
			"I like working in teams more than working alone",
			"I would enjoy volunteering to support people in need",
			"Friends often come to me for advice or support",
		}},
		{profile.Enterprising, "Leading & Persuading", [4]string{
			"I enjoy persuading others to see things my way",
			"I like taking charge of group projects",
			"I would enjoy pitching an idea to an audience",
			"Setting ambitious goals and chasing them motivates me",
		}},
		{profile.Conventional, "Organising & Data", [4]string{
			"I enjoy organising information into clear systems",
			"I like following well-defined procedures",
			"I would enjoy keeping precise records or accounts",
			"I prefer structured tasks with a clear right answer",
		}},
	}

	questions := make([]Question, 0, 24)
	id := 0
	for _, group := range statements {
		for _, prompt := range group.prompts {
			id++
			questions = append(questions, Question{
				ID:        questionID(id),
				Category:  group.category,
				Prompt:    prompt,
				Kind:      KindLikert,
				Dimension: group.dimension,
				Required:  true,
			})
		}
	}
	return questions
}

// DefaultScenarioQuestions returns the built-in work-mode scenario
// block: six multi-choice questions with weighted options and a skip
// option each.
func DefaultScenarioQuestions() []Question {
	w := func(primary, secondary profile.Dimension) map[profile.Dimension]float64 {
		return map[profile.Dimension]float64{primary: 2, secondary: 1}
	}

	return []Question{
		{
			ID:       "q1",
			Category: "Build-a-thon",
			Prompt:   "Your team signs up for a weekend build-a-thon. Which roles do you actually want to take on?",
			Kind:     KindMulti,
			Required: true,
			Options: []Option{
				{Label: "Prototype hardware", Weights: w(profile.Builder, profile.Systems)},
				{Label: "Design screens/UX", Weights: w(profile.Creative, profile.People)},
				{Label: "Interview potential users", Weights: w(profile.People, profile.Analyst)},
				{Label: "Build the data pipeline", Weights: w(profile.Analyst, profile.Systems)},
				{Label: "Coordinate tasks & timeline", Weights: w(profile.Operator, profile.People)},
				{Label: SkipOption},
			},
		},
		{
			ID:       "q2",
			Category: "Club website",
			Prompt:   "Club website scenario: hands on deck - what would you pick up first?",
			Kind:     KindMulti,
			Required: true,
			Options: []Option{
				{Label: "Code backend", Weights: w(profile.Analyst, profile.Systems)},
				{Label: "Run user tests", Weights: w(profile.People, profile.Analyst)},
				{Label: "Project manage", Weights: w(profile.Operator, profile.People)},
				{Label: "Design UI", Weights: w(profile.Creative, profile.People)},
				{Label: "Analyze traffic", Weights: w(profile.Analyst, profile.Systems)},
				{Label: SkipOption},
			},
		},
		{
			ID:       "q3",
			Category: "Capstone",
			Prompt:   "For your capstone, which project style sounds most you?",
			Kind:     KindMulti,
			Required: true,
			Options: []Option{
				{Label: "Lab experiments with equipment", Weights: w(profile.Builder, profile.Researcher)},
				{Label: "Fieldwork with stakeholders", Weights: w(profile.People, profile.Operator)},
				{Label: "Theoretical modelling & proofs", Weights: w(profile.Researcher, profile.Analyst)},
				{Label: "Business case with ops plan", Weights: w(profile.Operator, profile.Analyst)},
				{Label: "System integration across tools", Weights: w(profile.Systems, profile.Builder)},
				{Label: SkipOption},
			},
		},
		{
			ID:       "q4",
			Category: "Organising work",
			Prompt:   "When you organise work, which approach feels natural?",
			Kind:     KindMulti,
			Required: true,
			Options: []Option{
				{Label: "Checklists & SOPs", Weights: w(profile.Operator, profile.Systems)},
				{Label: "Explore ideas then refine", Weights: w(profile.Creative, profile.Researcher)},
				{Label: "Analyse datasets for insight", Weights: w(profile.Analyst, profile.Systems)},
				{Label: "Design the overall architecture", Weights: w(profile.Systems, profile.Analyst)},
				{Label: SkipOption},
			},
		},
		{
			ID:       "q5",
			Category: "Energisers",
			Prompt:   "In a long project, what consistently energises you?",
			Kind:     KindMulti,
			Required: true,
			Options: []Option{
				{Label: "Hands-on building and testing", Weights: w(profile.Builder, profile.Systems)},
				{Label: "Making things clearer for people", Weights: w(profile.People, profile.Operator)},
				{Label: "Finding patterns in messy data", Weights: w(profile.Analyst, profile.Researcher)},
				{Label: "Crafting visuals & interactions", Weights: w(profile.Creative, profile.People)},
				{Label: SkipOption},
			},
		},
		{
			ID:       "q6",
			Category: "Troubleshooting",
			Prompt:   "When something breaks, which troubleshooting path do you instinctively start with?",
			Kind:     KindMulti,
			Required: true,
			Options: []Option{
				{Label: "Debug circuitry/mechanics", Weights: w(profile.Builder, profile.Systems)},
				{Label: "Trace code/data flows", Weights: w(profile.Analyst, profile.Systems)},
				{Label: "Talk to users to understand context", Weights: w(profile.People, profile.Analyst)},
				{Label: "Re-organise process/workflow", Weights: w(profile.Operator, profile.Systems)},
				{Label: SkipOption},
			},
		},
	}
}

// DefaultOpenQuestion returns the optional free-text question appended
// to the work-mode questionnaire.
func DefaultOpenQuestion() Question {
	return Question{
		ID:       "about",
		Category: "About you",
		Prompt:   "Optional: tell us about yourself (projects/modules you liked, CCAs, goals)",
		Kind:     KindText,
		Required: false,
	}
}

func questionID(n int) string {
	// Q1..Q24 keeps parity with the reference questionnaire IDs.
	return "Q" + strconv.Itoa(n)
}
