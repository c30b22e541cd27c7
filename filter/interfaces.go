package filter

import (
	"context"

	"github.com/s0up4200/tmdbkit/tmdb"
)

// Filter defines the basic interface for movie filters
type Filter interface {
	// Evaluate reports whether a movie matches. Evaluation errors count as no match.
	Evaluate(movie tmdb.Movie) bool
}

// CompiledFilter represents a pre-compiled filter ready for evaluation
type CompiledFilter interface {
	Filter

	// Run evaluates the filter and reports runtime failures as *EvaluationError
	Run(movie tmdb.Movie) (bool, error)

	// Expression returns the source expression
	Expression() string
}

// Compiler compiles filter expressions into executable filters
type Compiler interface {
	Compile(expression string) (CompiledFilter, error)
}

// Evaluator evaluates filters against movies
type Evaluator interface {
	// Evaluate returns the matching movies in input order
	Evaluate(ctx context.Context, filter CompiledFilter, movies []tmdb.Movie) ([]tmdb.Movie, error)
}

// BatchEvaluator evaluates multiple filters concurrently
type BatchEvaluator interface {
	EvaluateBatch(ctx context.Context, filters map[string]CompiledFilter, movies []tmdb.Movie) (map[string][]tmdb.Movie, error)
}

// CachingCompiler provides caching for compiled filters
type CachingCompiler interface {
	Compiler

	// Clear removes all cached filters
	Clear()

	// Size returns the number of cached filters
	Size() int
}
