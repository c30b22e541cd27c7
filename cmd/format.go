package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/s0up4200/tmdbkit/tmdb"
)

// printJSON writes v as indented JSON
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer, headers ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	return tw
}

func yearOrDash(year int) string {
	if year == 0 {
		return "-"
	}
	return fmt.Sprint(year)
}

func printMovies(w io.Writer, movies []tmdb.Movie) error {
	if jsonOutput {
		return printJSON(w, movies)
	}
	if len(movies) == 0 {
		fmt.Fprintln(w, "No movies found.")
		return nil
	}

	tw := newTable(w, "ID", "TITLE", "YEAR", "RATING", "VOTES")
	for _, m := range movies {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.1f\t%d\n", m.ID, m.Title, yearOrDash(m.ReleaseYear()), m.VoteAverage, m.VoteCount)
	}
	return tw.Flush()
}

func printTVShows(w io.Writer, shows []tmdb.TVShow) error {
	if jsonOutput {
		return printJSON(w, shows)
	}
	if len(shows) == 0 {
		fmt.Fprintln(w, "No TV shows found.")
		return nil
	}

	tw := newTable(w, "ID", "NAME", "FIRST AIRED", "RATING", "VOTES")
	for _, s := range shows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.1f\t%d\n", s.ID, s.Name, yearOrDash(s.FirstAirYear()), s.VoteAverage, s.VoteCount)
	}
	return tw.Flush()
}

func printPeople(w io.Writer, people []tmdb.Person) error {
	if jsonOutput {
		return printJSON(w, people)
	}
	if len(people) == 0 {
		fmt.Fprintln(w, "No people found.")
		return nil
	}

	tw := newTable(w, "ID", "NAME", "KNOWN FOR", "POPULARITY")
	for _, p := range people {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.1f\n", p.ID, p.Name, p.KnownForDepartment, p.Popularity)
	}
	return tw.Flush()
}

// printMedia prints mixed search and trending results
func printMedia(w io.Writer, items []tmdb.MediaItem) error {
	if jsonOutput {
		return printJSON(w, items)
	}
	if len(items) == 0 {
		fmt.Fprintln(w, "No results found.")
		return nil
	}

	tw := newTable(w, "TYPE", "ID", "NAME", "YEAR")
	for _, item := range items {
		if item.Media == nil {
			continue
		}
		year := 0
		if m, ok := item.Movie(); ok {
			year = m.ReleaseYear()
		} else if s, ok := item.TVShow(); ok {
			year = s.FirstAirYear()
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", item.MediaType(), item.MediaID(), item.DisplayName(), yearOrDash(year))
	}
	return tw.Flush()
}

func printPageFooter[T any](w io.Writer, page *tmdb.ResultPage[T]) {
	if jsonOutput || page == nil {
		return
	}
	fmt.Fprintf(w, "\nPage %d of %d (%d results)\n", page.Page, page.TotalPages, page.TotalResults)
}

func printMovie(w io.Writer, m *tmdb.Movie) error {
	if jsonOutput {
		return printJSON(w, m)
	}

	fmt.Fprintf(w, "%s (%s)\n", m.Title, yearOrDash(m.ReleaseYear()))
	if m.Tagline != "" {
		fmt.Fprintf(w, "  %s\n", m.Tagline)
	}
	fmt.Fprintln(w, strings.Repeat("-", 80))
	fmt.Fprintf(w, "ID:        %d\n", m.ID)
	if m.IMDbID != "" {
		fmt.Fprintf(w, "IMDb:      %s\n", m.IMDbID)
	}
	fmt.Fprintf(w, "Released:  %s\n", m.ReleaseDate)
	if m.Runtime > 0 {
		fmt.Fprintf(w, "Runtime:   %d min\n", m.Runtime)
	}
	fmt.Fprintf(w, "Rating:    %.1f (%d votes)\n", m.VoteAverage, m.VoteCount)
	if len(m.Genres) > 0 {
		names := make([]string, 0, len(m.Genres))
		for _, g := range m.Genres {
			names = append(names, g.Name)
		}
		fmt.Fprintf(w, "Genres:    %s\n", strings.Join(names, ", "))
	}
	if m.Overview != "" {
		fmt.Fprintf(w, "\n%s\n", m.Overview)
	}

	printCredits(w, m.Credits)

	if m.Translations != nil && len(m.Translations.Translations) > 0 {
		fmt.Fprintf(w, "\nTranslations:\n")
		for _, t := range m.Translations.Translations {
			title := t.Data.Title
			if title == "" {
				title = "-"
			}
			fmt.Fprintf(w, "  • %s %s: %s\n", t.Locale(), t.EnglishName, title)
		}
	}

	if m.Videos != nil && len(m.Videos.Results) > 0 {
		fmt.Fprintf(w, "\nVideos:\n")
		for _, v := range m.Videos.Results {
			fmt.Fprintf(w, "  • [%s] %s (%s %s)\n", v.Type, v.Name, v.Site, v.Key)
		}
	}

	return nil
}

func printCredits(w io.Writer, c *tmdb.Credits) {
	if c == nil {
		return
	}
	if directors := c.Directors(); len(directors) > 0 {
		names := make([]string, 0, len(directors))
		for _, d := range directors {
			names = append(names, d.Name)
		}
		fmt.Fprintf(w, "\nDirected by %s\n", strings.Join(names, ", "))
	}
	if len(c.Cast) > 0 {
		fmt.Fprintf(w, "\nCast:\n")
		for i, member := range c.Cast {
			if i == 10 {
				fmt.Fprintf(w, "  ... and %d more\n", len(c.Cast)-10)
				break
			}
			fmt.Fprintf(w, "  • %s as %s\n", member.Name, member.Character)
		}
	}
}

func printTVShow(w io.Writer, s *tmdb.TVShow) error {
	if jsonOutput {
		return printJSON(w, s)
	}

	fmt.Fprintf(w, "%s (%s)\n", s.Name, yearOrDash(s.FirstAirYear()))
	fmt.Fprintln(w, strings.Repeat("-", 80))
	fmt.Fprintf(w, "ID:        %d\n", s.ID)
	fmt.Fprintf(w, "First air: %s\n", s.FirstAirDate)
	if s.NumberOfSeasons > 0 {
		fmt.Fprintf(w, "Seasons:   %d\n", s.NumberOfSeasons)
	}
	fmt.Fprintf(w, "Rating:    %.1f (%d votes)\n", s.VoteAverage, s.VoteCount)
	if s.Overview != "" {
		fmt.Fprintf(w, "\n%s\n", s.Overview)
	}

	printCredits(w, s.Credits)
	return nil
}

func printPerson(w io.Writer, p *tmdb.Person) error {
	if jsonOutput {
		return printJSON(w, p)
	}

	fmt.Fprintln(w, p.Name)
	fmt.Fprintln(w, strings.Repeat("-", 80))
	fmt.Fprintf(w, "ID:        %d\n", p.ID)
	if p.KnownForDepartment != "" {
		fmt.Fprintf(w, "Known for: %s\n", p.KnownForDepartment)
	}
	if p.Birthday != "" {
		fmt.Fprintf(w, "Born:      %s\n", p.Birthday)
	}
	if p.Biography != "" {
		fmt.Fprintf(w, "\n%s\n", p.Biography)
	}

	if p.MovieCredits != nil && len(p.MovieCredits.Cast) > 0 {
		fmt.Fprintf(w, "\nMovies:\n")
		for _, c := range p.MovieCredits.Cast {
			fmt.Fprintf(w, "  • %s (%s) as %s\n", c.Title, yearOrDash(c.ReleaseYear()), c.Character)
		}
	}
	if p.TVCredits != nil && len(p.TVCredits.Cast) > 0 {
		fmt.Fprintf(w, "\nTV:\n")
		for _, c := range p.TVCredits.Cast {
			fmt.Fprintf(w, "  • %s as %s\n", c.Name, c.Character)
		}
	}
	return nil
}
