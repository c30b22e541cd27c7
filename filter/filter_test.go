package filter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/s0up4200/tmdbkit/tmdb"
)

func testMovie() tmdb.Movie {
	return tmdb.Movie{
		ID:               550,
		Title:            "Fight Club",
		OriginalTitle:    "Fight Club",
		OriginalLanguage: "en",
		ReleaseDate:      "1999-10-15",
		Runtime:          139,
		VoteAverage:      8.4,
		VoteCount:        26280,
		Popularity:       61.4,
		Genres:           []tmdb.Genre{{ID: 18, Name: "Drama"}, {ID: 53, Name: "Thriller"}},
	}
}

// generateTestMovies creates list-style results (genre ids only)
func generateTestMovies(count int) []tmdb.Movie {
	movies := make([]tmdb.Movie, count)

	for i := range count {
		movies[i] = tmdb.Movie{
			ID:          i,
			Title:       fmt.Sprintf("Movie %d", i),
			ReleaseDate: fmt.Sprintf("%d-06-01", 2020+(i%5)),
			VoteAverage: 5.0 + float64(i%5),
			VoteCount:   i * 10,
			GenreIDs:    []int{28, 18, 878}[:(i%3)+1],
		}
	}

	return movies
}

func TestCompileFilter(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{
			name:       "valid expression",
			expression: `hasGenre("Drama")`,
		},
		{
			name:        "empty expression",
			expression:  "   ",
			wantErr:     true,
			errContains: "empty expression",
		},
		{
			name:       "invalid syntax",
			expression: `hasGenre("unclosed`,
			wantErr:    true,
		},
		{
			name:       "non boolean result",
			expression: `Title`,
			wantErr:    true,
		},
		{
			name:       "unknown field",
			expression: `Watched == true`,
			wantErr:    true,
		},
		{
			name:       "complex expression",
			expression: `hasGenre(18) and Year > 1990 and VoteAverage >= 7.5 and Language == "en"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := CompileFilter(tt.expression)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error but got none")
				}
				var compErr *CompilationError
				if !errors.As(err, &compErr) {
					t.Errorf("expected *CompilationError, got %T", err)
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if filter == nil {
				t.Fatal("expected filter but got nil")
			}
			if filter.Expression() != tt.expression {
				t.Errorf("expected expression %q, got %q", tt.expression, filter.Expression())
			}
		})
	}
}

func TestFilterEvaluation(t *testing.T) {
	movie := testMovie()
	undated := tmdb.Movie{ID: 1, Title: "Untitled Project", GenreIDs: []int{99}}

	tests := []struct {
		name       string
		expression string
		movie      tmdb.Movie
		expected   bool
	}{
		{"genre by name", `hasGenre("drama")`, movie, true},
		{"genre by id", `hasGenre(53)`, movie, true},
		{"missing genre", `hasGenre("Horror")`, movie, false},
		{"genre ids from list results", `hasGenre(99) and 99 in GenreIDs`, undated, true},
		{"genre names", `"Thriller" in Genres`, movie, true},
		{"year comparison", `Year == 1999`, movie, true},
		{"released after", `releasedAfter("1999-01-01")`, movie, true},
		{"released before", `releasedBefore("1999-01-01")`, movie, false},
		{"undated never released after", `releasedAfter("1900-01-01")`, undated, false},
		{"undated never released before", `releasedBefore("2999-01-01")`, undated, false},
		{"release date is a time", `ReleaseDate < yearsAgo(10)`, movie, true},
		{"votes", `VoteAverage > 8 and VoteCount >= 1000`, movie, true},
		{"runtime", `Runtime > 150`, movie, false},
		{"language", `Language == "en" and not Adult`, movie, true},
		{"containsText is case insensitive", `containsText(Title, "fight")`, movie, true},
		{"hasPrefix is case insensitive", `hasPrefix(OriginalTitle, "FIGHT")`, movie, true},
		{"hasSuffix is case insensitive", `hasSuffix(Title, "CLUB")`, movie, true},
		{"hasSuffix no match", `hasSuffix(Title, "fight")`, movie, false},
		{"contains operator is case sensitive", `Title contains "Fight"`, movie, true},
		{"contains operator lowercase", `Title contains "fight"`, movie, false},
		{"lower", `lower(Title) == "fight club"`, movie, true},
		{"upper", `upper(Title) == "FIGHT CLUB"`, movie, true},
		{"full record", `Movie.Popularity > 50`, movie, true},
		{"zero year", `Year == 0`, undated, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := CompileFilter(tt.expression)
			if err != nil {
				t.Fatalf("failed to compile filter: %v", err)
			}

			result := filter.Evaluate(tt.movie)
			if result != tt.expected {
				t.Errorf("expected %v but got %v for expression %q", tt.expected, result, tt.expression)
			}
		})
	}
}

func TestFilterRuntimeError(t *testing.T) {
	filter, err := CompileFilter(`releasedAfter("last tuesday")`)
	if err != nil {
		t.Fatalf("failed to compile filter: %v", err)
	}

	movie := testMovie()
	if filter.Evaluate(movie) {
		t.Error("expected a failing evaluation not to match")
	}

	_, err = filter.Run(movie)
	var evalErr *EvaluationError
	if !errors.As(err, &evalErr) {
		t.Fatalf("expected *EvaluationError, got %v", err)
	}
	if evalErr.MovieID != 550 {
		t.Errorf("expected movie id 550, got %d", evalErr.MovieID)
	}
}

func TestCustomFunctions(t *testing.T) {
	compiler := NewCompiler(WithCustomFunctions(map[string]any{
		"isClassic": func(year int) bool { return year > 0 && year < 2000 },
	}))

	filter, err := compiler.Compile(`isClassic(Year)`)
	if err != nil {
		t.Fatalf("failed to compile filter: %v", err)
	}
	if !filter.Evaluate(testMovie()) {
		t.Error("expected custom function to match")
	}
}

func TestConcurrentEvaluation(t *testing.T) {
	movies := generateTestMovies(1000)

	filter, err := CompileFilter(`hasGenre(18) and Year > 2021`)
	if err != nil {
		t.Fatalf("failed to compile filter: %v", err)
	}

	evaluator := NewConcurrentEvaluator(WithWorkers(4), WithBatchSize(50))
	matches, err := evaluator.Evaluate(context.Background(), filter, movies)
	if err != nil {
		t.Fatalf("evaluation failed: %v", err)
	}

	var expected []tmdb.Movie
	for _, movie := range movies {
		if filter.Evaluate(movie) {
			expected = append(expected, movie)
		}
	}

	if len(matches) != len(expected) {
		t.Fatalf("expected %d matches but got %d", len(expected), len(matches))
	}
	for i := range matches {
		if matches[i].ID != expected[i].ID {
			t.Fatalf("match %d: expected movie %d, got %d", i, expected[i].ID, matches[i].ID)
		}
	}
}

func TestConcurrentEvaluationCancelled(t *testing.T) {
	filter, err := CompileFilter(`VoteCount > 0`)
	if err != nil {
		t.Fatalf("failed to compile filter: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	evaluator := NewConcurrentEvaluator(WithWorkers(2), WithBatchSize(10))
	if _, err := evaluator.Evaluate(ctx, filter, generateTestMovies(100)); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestApply(t *testing.T) {
	movies := generateTestMovies(10)

	all, err := Apply(context.Background(), "", movies)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != len(movies) {
		t.Errorf("expected empty expression to match all %d movies, got %d", len(movies), len(all))
	}

	top, err := Apply(context.Background(), `VoteAverage >= 9`, movies)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(top) != 2 {
		t.Errorf("expected 2 matches, got %d", len(top))
	}
}

func TestBatchEvaluation(t *testing.T) {
	movies := generateTestMovies(500)

	filters := map[string]string{
		"action":    `hasGenre(28)`,
		"recent":    `Year >= 2023`,
		"highRated": `VoteAverage > 7.0`,
	}

	results, err := EvaluateFilters(context.Background(), filters, movies)
	if err != nil {
		t.Fatalf("batch evaluation failed: %v", err)
	}

	if len(results) != len(filters) {
		t.Errorf("expected %d filter results but got %d", len(filters), len(results))
	}
	if got := len(results["action"]); got != 500 {
		t.Errorf("expected every movie to be action, got %d", got)
	}
	if got := len(results["recent"]); got != 200 {
		t.Errorf("expected 200 recent movies, got %d", got)
	}
}

func TestPresetManager(t *testing.T) {
	manager := NewManager()
	ctx := context.Background()

	err := manager.RegisterAll(
		Preset{Name: "Drama", Expression: `hasGenre(18)`, Description: "Dramas"},
		Preset{Name: "recent", Expression: `Year > 2022`},
		Preset{Name: "rated", Expression: `VoteAverage >= 8`, Description: "Well rated"},
	)
	if err != nil {
		t.Fatalf("failed to register presets: %v", err)
	}

	names := manager.Names()
	want := []string{"drama", "rated", "recent"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("expected presets %v, got %v", want, names)
	}

	p, ok := manager.Preset("DRAMA")
	if !ok {
		t.Fatal("expected preset lookup to ignore case")
	}
	if p.Name != "drama" || p.Description != "Dramas" {
		t.Errorf("unexpected preset %+v", p)
	}

	movies := generateTestMovies(100)
	matches, err := manager.Apply(ctx, "drama", movies)
	if err != nil {
		t.Fatalf("failed to apply preset: %v", err)
	}
	if len(matches) == 0 {
		t.Error("expected some matches")
	}

	selected, err := manager.ApplySelected(ctx, []string{"rated", "Drama", "drama"}, movies)
	if err != nil {
		t.Fatalf("failed to apply selected presets: %v", err)
	}
	if len(selected) != 2 {
		t.Fatalf("expected two results, got %d", len(selected))
	}
	if selected[0].Name != "rated" || selected[0].Description != "Well rated" {
		t.Errorf("expected rated first with its description, got %+v", selected[0].Preset)
	}
	if selected[1].Name != "drama" || len(selected[1].Matches) != len(matches) {
		t.Errorf("expected drama second with %d matches, got %s with %d", len(matches), selected[1].Name, len(selected[1].Matches))
	}

	all, err := manager.ApplyAll(ctx, movies)
	if err != nil {
		t.Fatalf("failed to apply all presets: %v", err)
	}
	if len(all) != 3 || all[0].Name != "drama" || all[2].Name != "recent" {
		t.Errorf("expected results sorted by name, got %d results", len(all))
	}

	if _, err := manager.ApplySelected(ctx, []string{"missing"}, movies); err == nil {
		t.Error("expected error for unknown preset")
	}

	manager.Remove("Drama")
	if _, ok := manager.Preset("drama"); ok {
		t.Error("expected preset 'drama' to be removed")
	}
	if _, err := manager.Apply(ctx, "drama", movies); err == nil {
		t.Error("expected error for removed preset")
	}
}

func TestPresetManagerMatch(t *testing.T) {
	manager := NewManager()
	err := manager.RegisterAll(
		Preset{Name: "classics", Expression: `Year < 2000 and VoteAverage >= 8`},
		Preset{Name: "drama", Expression: `hasGenre("Drama")`},
		Preset{Name: "recent", Expression: `releasedAfter("2020-01-01")`},
	)
	if err != nil {
		t.Fatalf("failed to register presets: %v", err)
	}

	got := manager.Match(testMovie())
	if strings.Join(got, ",") != "classics,drama" {
		t.Errorf("expected [classics drama], got %v", got)
	}

	if got := manager.Match(tmdb.Movie{}); len(got) != 0 {
		t.Errorf("expected no matches for an empty movie, got %v", got)
	}
}

func TestRegisterAllIsAtomic(t *testing.T) {
	tests := []struct {
		name    string
		presets []Preset
	}{
		{"compile error", []Preset{{Name: "good", Expression: `Year > 2000`}, {Name: "bad", Expression: `Year >`}}},
		{"duplicate name", []Preset{{Name: "good", Expression: `Year > 2000`}, {Name: "GOOD", Expression: `Year < 2000`}}},
		{"empty name", []Preset{{Name: "good", Expression: `Year > 2000`}, {Name: " ", Expression: `Year < 2000`}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager := NewManager()
			if err := manager.RegisterAll(tt.presets...); err == nil {
				t.Fatal("expected error")
			}
			if len(manager.Names()) != 0 {
				t.Errorf("expected no presets registered, got %v", manager.Names())
			}
		})
	}
}

func TestCacheEffectiveness(t *testing.T) {
	compiler := NewCompiler(WithCache(10))
	expression := `hasGenre("Drama") and Year > 2020`

	first, err := compiler.Compile(expression)
	if err != nil {
		t.Fatalf("first compilation failed: %v", err)
	}

	second, err := compiler.Compile(expression)
	if err != nil {
		t.Fatalf("second compilation failed: %v", err)
	}
	if first != second {
		t.Error("expected cached filter on second compilation")
	}

	var cc CachingCompiler = compiler
	if cc.Size() != 1 {
		t.Errorf("expected cache size 1 but got %d", cc.Size())
	}

	cc.Clear()
	if cc.Size() != 0 {
		t.Errorf("expected cache size 0 after clear but got %d", cc.Size())
	}
}

func BenchmarkEvaluate(b *testing.B) {
	movies := generateTestMovies(5000)
	filter, err := CompileFilter(`hasGenre(18) and VoteAverage > 6 and Year > 2021`)
	if err != nil {
		b.Fatal(err)
	}

	evaluator := NewConcurrentEvaluator()
	ctx := context.Background()

	b.ResetTimer()
	for range b.N {
		if _, err := evaluator.Evaluate(ctx, filter, movies); err != nil {
			b.Fatal(err)
		}
	}
}
