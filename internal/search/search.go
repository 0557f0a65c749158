// Package search provides full-text lookup across lessons and glossary
// terms for the in-app search view.
package search

import (
	"sort"
	"strings"

	"github.com/alexanderramin/dojo/internal/domain"
)

// ResultKind distinguishes what a search hit points at.
type ResultKind string

const (
	KindLesson   ResultKind = "lesson"
	KindSection  ResultKind = "section"
	KindGlossary ResultKind = "glossary"
)

// Result is one search hit. For sections, LessonID and Section locate the
// hit inside its lesson.
type Result struct {
	Kind     ResultKind
	ID       string
	LessonID string
	Section  int
	Title    string
	Preview  string
	Score    int
}

type entry struct {
	result       Result
	titleLower   string
	previewLower string
}

// Index is a prebuilt search index over the content bank. Scoring is
// simple substring matching: a title hit scores 10, a preview hit 5.
type Index struct {
	entries []entry
}

const previewLen = 160

// NewIndex builds the index from lessons and glossary terms, in content
// order.
func NewIndex(lessons []domain.Lesson, terms []domain.GlossaryTerm) *Index {
	idx := &Index{}
	for _, l := range lessons {
		idx.add(Result{
			Kind:     KindLesson,
			ID:       l.ID,
			LessonID: l.ID,
			Title:    l.Title,
			Preview:  preview(l.Description),
		})
		for i, sec := range l.Sections {
			idx.add(Result{
				Kind:     KindSection,
				ID:       l.ID,
				LessonID: l.ID,
				Section:  i,
				Title:    l.Title + " / " + sec.Title,
				Preview:  preview(sec.Body),
			})
		}
	}
	for _, t := range terms {
		idx.add(Result{
			Kind:    KindGlossary,
			ID:      t.ID,
			Title:   t.Term,
			Preview: preview(t.Definition),
		})
	}
	return idx
}

func (idx *Index) add(r Result) {
	idx.entries = append(idx.entries, entry{
		result:       r,
		titleLower:   strings.ToLower(r.Title),
		previewLower: strings.ToLower(r.Preview),
	})
}

// Search returns scored matches in descending score order. The sort is
// stable, so ties keep content order. An empty or whitespace query returns
// everything unscored, in content order.
func (idx *Index) Search(query string) []Result {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		results := make([]Result, len(idx.entries))
		for i, e := range idx.entries {
			results[i] = e.result
		}
		return results
	}

	var results []Result
	for _, e := range idx.entries {
		score := 0
		if strings.Contains(e.titleLower, q) {
			score += 10
		}
		if strings.Contains(e.previewLower, q) {
			score += 5
		}
		if score == 0 {
			continue
		}
		r := e.result
		r.Score = score
		results = append(results, r)
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

func preview(body string) string {
	flat := strings.Join(strings.Fields(body), " ")
	if len(flat) <= previewLen {
		return flat
	}
	cut := strings.LastIndex(flat[:previewLen], " ")
	if cut <= 0 {
		cut = previewLen
	}
	return flat[:cut] + "…"
}
