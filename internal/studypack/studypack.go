// Package studypack builds the study package shown before a quiz: a static
// overview per subject plus optional AI-generated notes.
package studypack

import (
	"strings"

	"github.com/abhisek/weakspot/internal/quiz"
)

// Package is the static study material for one subject.
type Package struct {
	Subject   string
	Overview  string
	Topics    []string
	Resources []string
	// Generic is true when the subject has no dedicated package.
	Generic bool
}

type seedPackage struct {
	overview  string
	topics    []string
	resources []string
}

// packs is keyed by the quiz bank's canonical subject name so both
// registries resolve aliases the same way.
var packs = map[string]seedPackage{
	"Object-Oriented Programming": {
		overview: "Model programs as objects that bundle state with behaviour. Focus on how classes relate and how behaviour is shared.",
		topics: []string{
			"Classes, objects and constructors",
			"Encapsulation and access modifiers",
			"Inheritance and method overriding",
			"Polymorphism and interfaces",
			"Composition over inheritance",
		},
		resources: []string{
			"Lecture notes: OOP fundamentals, weeks 1-4",
			"Past paper questions on class diagrams",
			"Lab exercise: refactor a procedural program into classes",
		},
	},
	"Internet Programming": {
		overview: "Build pages and services for the web. Focus on the request/response cycle and how the browser renders what the server sends.",
		topics: []string{
			"HTTP methods, status codes and headers",
			"HTML structure and semantic markup",
			"CSS selectors and layout",
			"Client-side scripting and the DOM",
			"Server-side forms and sessions",
		},
		resources: []string{
			"Lecture notes: HTTP and the web stack",
			"Lab exercise: build and validate a form end to end",
			"Browser developer tools walkthrough",
		},
	},
	"Software Engineering": {
		overview: "Plan, build and maintain software as a team. Focus on process models, requirements and quality assurance.",
		topics: []string{
			"Software process models (waterfall, iterative, agile)",
			"Requirements elicitation and specification",
			"UML use case and sequence diagrams",
			"Testing levels and test design",
			"Version control and change management",
		},
		resources: []string{
			"Lecture notes: process models and requirements",
			"Case study: a failed project post-mortem",
			"Group exercise: write user stories with acceptance criteria",
		},
	},
}

var genericPack = seedPackage{
	overview: "No dedicated package exists for this subject yet. Use these general study techniques while you build your own notes.",
	topics: []string{
		"List the subject's core topics from the course outline",
		"Summarise each topic in your own words",
		"Work through past paper questions under time pressure",
		"Review mistakes and note the concept behind each one",
	},
	resources: []string{
		"Course outline and lecture slides",
		"Past exam papers",
		"Study group or tutor office hours",
	},
}

// Build returns the study package for subjectName. Unknown subjects get
// the generic package; the result is never empty.
func Build(subjectName string) Package {
	name := strings.TrimSpace(subjectName)
	provider, named := quiz.Lookup(name)
	seed, ok := packs[provider.Name()]
	if !named || !ok {
		seed = genericPack
		ok = false
	} else {
		name = provider.Name()
	}
	if name == "" {
		name = "this subject"
	}
	return Package{
		Subject:   name,
		Overview:  seed.overview,
		Topics:    append([]string(nil), seed.topics...),
		Resources: append([]string(nil), seed.resources...),
		Generic:   !ok,
	}
}
