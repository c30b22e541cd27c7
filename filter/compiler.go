package filter

import (
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/s0up4200/tmdbkit/tmdb"
)

// dateLayout is the TMDB release date format
const dateLayout = "2006-01-02"

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	custom     map[string]any
}

// CompilerOption configures an expr compiler
type CompilerOption func(*ExprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) CompilerOption {
	return func(c *ExprCompiler) {
		if size <= 0 {
			return
		}
		if cache, err := lru.New[string, CompiledFilter](size); err == nil {
			c.cache = cache
		}
	}
}

// WithCustomFunctions adds helper functions on top of the built-in ones
func WithCustomFunctions(funcs map[string]any) CompilerOption {
	return func(c *ExprCompiler) {
		maps.Copy(c.custom, funcs)
	}
}

// NewCompiler creates an expr-based filter compiler
func NewCompiler(opts ...CompilerOption) *ExprCompiler {
	c := &ExprCompiler{custom: make(map[string]any)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ExprCompiler implements CachingCompiler for expr-based filters
type ExprCompiler struct {
	custom map[string]any
	cache  *lru.Cache[string, CompiledFilter]
}

// Compile compiles an expression into an executable filter. The expression is
// type checked against the movie environment and must produce a boolean.
func (c *ExprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(newEnvironment(tmdb.Movie{}, c.custom)),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	filter := &exprFilter{
		expression: expression,
		program:    program,
		custom:     c.custom,
	}

	if c.cache != nil {
		c.cache.Add(expression, filter)
	}

	return filter, nil
}

// Clear removes all cached filters
func (c *ExprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Purge()
	}
}

// Size returns the number of cached filters
func (c *ExprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Len()
	}
	return 0
}

// Run evaluates the filter against a movie
func (f *exprFilter) Run(movie tmdb.Movie) (bool, error) {
	result, err := expr.Run(f.program, newEnvironment(movie, f.custom))
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			MovieID:    movie.ID,
			MovieTitle: movie.Title,
			Err:        err,
		}
	}

	// AsBool guarantees the type
	return result.(bool), nil
}

// Evaluate evaluates the filter against a movie
func (f *exprFilter) Evaluate(movie tmdb.Movie) bool {
	ok, err := f.Run(movie)
	return err == nil && ok
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// addHelperFunctions adds the movie independent helpers to env
func addHelperFunctions(env map[string]any) {
	// Date helpers
	env["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["monthsAgo"] = func(months int) time.Time {
		return time.Now().AddDate(0, -months, 0)
	}
	env["yearsAgo"] = func(years int) time.Time {
		return time.Now().AddDate(-years, 0, 0)
	}
	env["parseDate"] = func(s string) (time.Time, error) {
		return time.Parse(dateLayout, s)
	}
	// String helpers; contains, startsWith and endsWith are expr operators
	env["containsText"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["hasPrefix"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["hasSuffix"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	env["now"] = time.Now
}

// newEnvironment builds the evaluation environment for one movie
func newEnvironment(movie tmdb.Movie, custom map[string]any) map[string]any {
	env := make(map[string]any, 40)

	addHelperFunctions(env)
	maps.Copy(env, custom)

	released := parseReleaseDate(movie.ReleaseDate)
	genres := genreNames(movie.Genres)
	ids := genreIDs(movie)

	env["Movie"] = movie
	env["ID"] = movie.ID
	env["Title"] = movie.Title
	env["OriginalTitle"] = movie.OriginalTitle
	env["Overview"] = movie.Overview
	env["Year"] = movie.ReleaseYear()
	env["ReleaseDate"] = released
	env["VoteAverage"] = movie.VoteAverage
	env["VoteCount"] = movie.VoteCount
	env["Popularity"] = movie.Popularity
	env["Runtime"] = movie.Runtime
	env["Adult"] = movie.Adult
	env["Language"] = movie.OriginalLanguage
	env["GenreIDs"] = ids
	env["Genres"] = genres

	env["hasGenre"] = createHasGenreFunc(ids, genres)
	env["releasedAfter"] = createReleasedFunc(released, time.Time.After)
	env["releasedBefore"] = createReleasedFunc(released, time.Time.Before)

	return env
}

func parseReleaseDate(s string) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func genreNames(genres []tmdb.Genre) []string {
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.Name)
	}
	return names
}

// genreIDs merges list results (genre_ids) and details (genres)
func genreIDs(movie tmdb.Movie) []int {
	ids := slices.Clone(movie.GenreIDs)
	for _, g := range movie.Genres {
		if !slices.Contains(ids, g.ID) {
			ids = append(ids, g.ID)
		}
	}
	if ids == nil {
		ids = []int{}
	}
	return ids
}

// createHasGenreFunc matches a genre by TMDB id or case-insensitive name
func createHasGenreFunc(ids []int, names []string) func(any) bool {
	return func(genre any) bool {
		switch v := genre.(type) {
		case int:
			return slices.Contains(ids, v)
		case float64:
			return slices.Contains(ids, int(v))
		case string:
			return slices.ContainsFunc(names, func(n string) bool {
				return strings.EqualFold(n, v)
			})
		}
		return false
	}
}

// createReleasedFunc compares the release date with a YYYY-MM-DD date. Movies
// without a release date never match.
func createReleasedFunc(released time.Time, cmp func(time.Time, time.Time) bool) func(string) (bool, error) {
	return func(date string) (bool, error) {
		t, err := time.Parse(dateLayout, date)
		if err != nil {
			return false, err
		}
		if released.IsZero() {
			return false, nil
		}
		return cmp(released, t), nil
	}
}
