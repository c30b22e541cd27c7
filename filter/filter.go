// Package filter evaluates expr-lang expressions against TMDB movies.
//
// Expressions see the movie fields Title, OriginalTitle, Overview, Year,
// ReleaseDate, VoteAverage, VoteCount, Popularity, Runtime, Adult, Language,
// GenreIDs and Genres, the full record as Movie, and helper functions such as
// hasGenre, releasedAfter, releasedBefore and yearsAgo:
//
//	hasGenre("Horror") and VoteAverage >= 7 and releasedAfter("2015-01-01")
//
// containsText, hasPrefix and hasSuffix match text case-insensitively; the
// built-in contains, startsWith and endsWith operators are case-sensitive:
//
//	containsText(Overview, "heist") or Title startsWith "The"
package filter

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/s0up4200/tmdbkit/tmdb"
)

var defaultCompiler = NewCompiler(WithCache(100))

// CompileFilter compiles an expression with the shared caching compiler
func CompileFilter(expression string) (CompiledFilter, error) {
	return defaultCompiler.Compile(expression)
}

// Apply returns the movies matching expression. An empty expression matches
// everything.
func Apply(ctx context.Context, expression string, movies []tmdb.Movie) ([]tmdb.Movie, error) {
	if strings.TrimSpace(expression) == "" {
		return movies, nil
	}

	f, err := CompileFilter(expression)
	if err != nil {
		return nil, err
	}
	return NewConcurrentEvaluator().Evaluate(ctx, f, movies)
}

// EvaluateFilters compiles and evaluates several named expressions
func EvaluateFilters(ctx context.Context, filters map[string]string, movies []tmdb.Movie) (map[string][]tmdb.Movie, error) {
	compiled := make(map[string]CompiledFilter, len(filters))
	for _, name := range slices.Sorted(maps.Keys(filters)) {
		f, err := CompileFilter(filters[name])
		if err != nil {
			return nil, fmt.Errorf("failed to compile filter '%s': %w", name, err)
		}
		compiled[name] = f
	}
	return NewConcurrentEvaluator().EvaluateBatch(ctx, compiled, movies)
}
