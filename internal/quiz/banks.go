package quiz

var seedBanks = []staticBank{
	{
		name:    "Object-Oriented Programming",
		aliases: []string{"OOP", "object oriented programming", "OOP concepts"},
		questions: []Question{
			{
				ID:   "oop-1",
				Text: "Which OOP principle hides an object's internal state behind methods?",
				Options: []string{
					"Inheritance",
					"Encapsulation",
					"Polymorphism",
					"Abstraction by interface only",
				},
				CorrectIndex: 1,
			},
			{
				ID:   "oop-2",
				Text: "A subclass providing its own implementation of a parent method is called:",
				Options: []string{
					"Overloading",
					"Overriding",
					"Shadowing a field",
					"Composition",
				},
				CorrectIndex: 1,
			},
			{
				ID:   "oop-3",
				Text: "Which relationship best describes \"a Car has an Engine\"?",
				Options: []string{
					"Composition",
					"Inheritance",
					"Polymorphism",
					"Generalization",
				},
				CorrectIndex: 0,
			},
		},
	},
	{
		name:    "Internet Programming",
		aliases: []string{"IP", "web programming", "web development"},
		questions: []Question{
			{
				ID:   "ip-1",
				Text: "Which HTTP method is idempotent and used to fully replace a resource?",
				Options: []string{
					"POST",
					"PATCH",
					"PUT",
					"CONNECT",
				},
				CorrectIndex: 2,
			},
			{
				ID:   "ip-2",
				Text: "Which HTML element links an external stylesheet?",
				Options: []string{
					"<style>",
					"<link>",
					"<script>",
					"<meta>",
				},
				CorrectIndex: 1,
			},
			{
				ID:   "ip-3",
				Text: "What status code means the requested resource was not found?",
				Options: []string{
					"200",
					"301",
					"404",
					"500",
				},
				CorrectIndex: 2,
			},
		},
	},
	{
		name:    "Software Engineering",
		aliases: []string{"SE", "software eng"},
		questions: []Question{
			{
				ID:   "se-1",
				Text: "Which process model delivers working software in short iterations?",
				Options: []string{
					"Waterfall",
					"Agile",
					"V-Model",
					"Big bang",
				},
				CorrectIndex: 1,
			},
			{
				ID:   "se-2",
				Text: "Testing individual functions in isolation is called:",
				Options: []string{
					"Unit testing",
					"System testing",
					"Acceptance testing",
					"Load testing",
				},
				CorrectIndex: 0,
			},
			{
				ID:   "se-3",
				Text: "A requirement describing how fast the system must respond is:",
				Options: []string{
					"A functional requirement",
					"A user story",
					"A non-functional requirement",
					"A use case",
				},
				CorrectIndex: 2,
			},
		},
	},
}

// genericBank is the fallback for subjects without a named bank.
var genericBank = staticBank{
	name: "General Study Skills",
	questions: []Question{
		{
			ID:   "gen-1",
			Text: "What is the most effective first step when a topic feels hard?",
			Options: []string{
				"Skip it until the exam",
				"Break it into smaller sub-topics",
				"Re-read the whole textbook",
				"Memorize past answers",
			},
			CorrectIndex: 1,
		},
		{
			ID:   "gen-2",
			Text: "Which technique best strengthens long-term recall?",
			Options: []string{
				"Cramming the night before",
				"Highlighting every line",
				"Spaced practice with self-testing",
				"Listening to lectures at 2x speed",
			},
			CorrectIndex: 2,
		},
	},
}
