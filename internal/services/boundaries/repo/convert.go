package repo

import (
	"adloom/internal/core/match"
	"adloom/internal/core/taxonomy"
)

func toneFromDB(s string) match.Tone { return match.Tone(s) }

func categoriesFromDB(xs []string) []taxonomy.Category {
	if len(xs) == 0 {
		return nil
	}
	out := make([]taxonomy.Category, 0, len(xs))
	for _, x := range xs {
		out = append(out, taxonomy.Category(x))
	}
	return out
}

func categoriesToDB(xs []taxonomy.Category) []string {
	out := make([]string, 0, len(xs))
	for _, x := range xs {
		out = append(out, string(x))
	}
	return out
}
