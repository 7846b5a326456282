package quiz

import (
	"strings"
	"unicode"
)

// BankProvider supplies the ordered questions for one subject.
type BankProvider interface {
	// Name is the canonical subject name.
	Name() string
	Questions() []Question
}

type staticBank struct {
	name      string
	aliases   []string
	questions []Question
}

func (b *staticBank) Name() string { return b.name }

// Questions returns a copy so callers cannot mutate the seed.
func (b *staticBank) Questions() []Question {
	out := make([]Question, len(b.questions))
	for i, q := range b.questions {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}

// registry maps normalized subject keys (names and aliases) to providers.
var registry map[string]BankProvider

// defaultProvider serves any subject the registry does not know.
var defaultProvider BankProvider

func init() {
	registry = make(map[string]BankProvider)
	for i := range seedBanks {
		b := &seedBanks[i]
		registry[NormalizeSubject(b.name)] = b
		for _, a := range b.aliases {
			registry[NormalizeSubject(a)] = b
		}
	}
	defaultProvider = &genericBank
}

// NormalizeSubject lower-cases name, drops punctuation and collapses
// whitespace so "Object-Oriented  Programming" and "object oriented
// programming" share a key.
func NormalizeSubject(name string) string {
	var b strings.Builder
	space := false
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
		default:
			space = true
		}
	}
	return b.String()
}

// SubjectKey returns a stable identifier for a subject name. Case is
// folded and runs of spaces, hyphens, underscores and slashes become a
// single hyphen, so "Object-Oriented Programming" and "object oriented
// programming" share "object-oriented-programming". Every other rune is
// kept: "C", "C++" and "C#" stay distinct. A blank name yields "".
func SubjectKey(name string) string {
	fields := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return unicode.IsSpace(r) || r == '-' || r == '_' || r == '/'
	})
	return strings.Join(fields, "-")
}

// Lookup returns the provider registered for subjectName and whether it was
// a named match. Unknown subjects get the generic provider.
func Lookup(subjectName string) (BankProvider, bool) {
	if p, ok := registry[NormalizeSubject(subjectName)]; ok {
		return p, true
	}
	return defaultProvider, false
}

// SelectQuestionBank returns the ordered questions for subjectName. The
// result is never empty.
func SelectQuestionBank(subjectName string) []Question {
	p, _ := Lookup(subjectName)
	return p.Questions()
}

// NamedSubjects returns the canonical names of all registered banks in
// seed order.
func NamedSubjects() []string {
	names := make([]string, 0, len(seedBanks))
	for i := range seedBanks {
		names = append(names, seedBanks[i].name)
	}
	return names
}

// Aliases returns the aliases registered for a canonical subject name.
func Aliases(name string) []string {
	for i := range seedBanks {
		if seedBanks[i].name == name {
			return append([]string(nil), seedBanks[i].aliases...)
		}
	}
	return nil
}
