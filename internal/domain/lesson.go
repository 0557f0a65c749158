package domain

// Lesson is one teaching unit, split into sections that the lesson view
// pages through. Section bodies are markdown.
type Lesson struct {
	ID          string
	Title       string
	Description string
	Sections    []LessonSection
}

type LessonSection struct {
	Title string
	Body  string
}

// LessonMeta is the catalog entry for a lesson.
type LessonMeta struct {
	ID          string
	Title       string
	Description string
	Sections    int
}

// GlossaryTerm is one entry of the methodology glossary.
type GlossaryTerm struct {
	ID         string
	Term       string
	Definition string
	Related    []string
}
