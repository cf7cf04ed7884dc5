// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package fuzzy ranks short names against a typed query using fzf's
// matching algorithm. The hipchat command uses it to resolve room names
// given on the command line.
package fuzzy

import (
	"sort"
	"strings"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// Result is the outcome of matching one text against a pattern. A zero
// Score means no match.
type Result struct {
	Score int
	// Positions are the rune offsets in the text that matched, ascending.
	Positions []int
}

// Match scores text against pattern, ignoring case. slab may be nil; pass
// a shared slab (util.MakeSlab) when matching many texts in a loop.
func Match(text string, pattern []rune, slab *util.Slab) Result {
	if len(pattern) == 0 {
		return Result{}
	}

	lowered := []rune(strings.ToLower(string(pattern)))
	chars := util.ToChars([]byte(strings.ToLower(text)))
	result, positions := algo.FuzzyMatchV2(false, true, true, &chars, lowered, true, slab)
	if result.Score <= 0 || result.Start < 0 {
		return Result{}
	}

	matched := Result{Score: result.Score}
	if positions != nil {
		matched.Positions = append([]int(nil), (*positions)...)
		sort.Ints(matched.Positions)
	}
	return matched
}

// Ranked is one candidate that matched a query.
type Ranked struct {
	// Index is the candidate's position in the input slice.
	Index  int
	Text   string
	Result Result
}

// Rank matches every candidate against query and returns the matches,
// best first. Ties go to the shorter candidate, then to the earlier one.
func Rank(candidates []string, query string) []Ranked {
	pattern := []rune(strings.TrimSpace(query))
	if len(pattern) == 0 {
		return nil
	}

	slab := util.MakeSlab(100*1024, 2048)
	var ranked []Ranked
	for index, candidate := range candidates {
		result := Match(candidate, pattern, slab)
		if result.Score == 0 {
			continue
		}
		ranked = append(ranked, Ranked{Index: index, Text: candidate, Result: result})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Result.Score != ranked[j].Result.Score {
			return ranked[i].Result.Score > ranked[j].Result.Score
		}
		return len(ranked[i].Text) < len(ranked[j].Text)
	})
	return ranked
}

// Best returns the index of the candidate that best matches query. A
// case-insensitive exact match always wins. ok is false when nothing
// matches.
func Best(candidates []string, query string) (index int, ok bool) {
	trimmed := strings.TrimSpace(query)
	for candidateIndex, candidate := range candidates {
		if strings.EqualFold(candidate, trimmed) {
			return candidateIndex, true
		}
	}

	ranked := Rank(candidates, trimmed)
	if len(ranked) == 0 {
		return -1, false
	}
	return ranked[0].Index, true
}
