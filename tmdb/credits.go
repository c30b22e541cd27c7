package tmdb

// Cast is a cast member of a movie, show, season or episode
type Cast struct {
	Adult              bool    `json:"adult"`
	Gender             int     `json:"gender"`
	ID                 int     `json:"id"`
	KnownForDepartment string  `json:"known_for_department"`
	Name               string  `json:"name"`
	OriginalName       string  `json:"original_name"`
	Popularity         float64 `json:"popularity"`
	ProfilePath        string  `json:"profile_path"`
	CastID             int     `json:"cast_id,omitempty"`
	Character          string  `json:"character"`
	CreditID           string  `json:"credit_id"`
	Order              int     `json:"order"`
}

// Crew is a crew member of a movie, show, season or episode
type Crew struct {
	Adult              bool    `json:"adult"`
	Gender             int     `json:"gender"`
	ID                 int     `json:"id"`
	KnownForDepartment string  `json:"known_for_department"`
	Name               string  `json:"name"`
	OriginalName       string  `json:"original_name"`
	Popularity         float64 `json:"popularity"`
	ProfilePath        string  `json:"profile_path"`
	CreditID           string  `json:"credit_id"`
	Department         string  `json:"department"`
	Job                string  `json:"job"`
}

// Credits lists the cast and crew of a movie, show or season
type Credits struct {
	ID   int    `json:"id,omitempty"`
	Cast []Cast `json:"cast"`
	Crew []Crew `json:"crew"`
}

// Directors returns the crew members credited with the Director job
func (c *Credits) Directors() []Crew {
	var out []Crew
	for _, m := range c.Crew {
		if m.Job == "Director" {
			out = append(out, m)
		}
	}
	return out
}

// EpisodeCredits adds the guest stars of an episode
type EpisodeCredits struct {
	Credits
	GuestStars []Cast `json:"guest_stars"`
}

// PersonMovieCast is a movie a person acted in
type PersonMovieCast struct {
	Movie
	Character string `json:"character"`
	CreditID  string `json:"credit_id"`
	Order     int    `json:"order"`
}

// PersonMovieCrew is a movie a person worked on
type PersonMovieCrew struct {
	Movie
	CreditID   string `json:"credit_id"`
	Department string `json:"department"`
	Job        string `json:"job"`
}

// PersonMovieCredits lists a person's movie credits
type PersonMovieCredits struct {
	ID   int               `json:"id"`
	Cast []PersonMovieCast `json:"cast"`
	Crew []PersonMovieCrew `json:"crew"`
}

// PersonTVCast is a TV show a person appeared in
type PersonTVCast struct {
	TVShow
	Character    string `json:"character"`
	CreditID     string `json:"credit_id"`
	EpisodeCount int    `json:"episode_count"`
}

// PersonTVCrew is a TV show a person worked on
type PersonTVCrew struct {
	TVShow
	CreditID     string `json:"credit_id"`
	Department   string `json:"department"`
	Job          string `json:"job"`
	EpisodeCount int    `json:"episode_count"`
}

// PersonTVCredits lists a person's TV credits
type PersonTVCredits struct {
	ID   int            `json:"id"`
	Cast []PersonTVCast `json:"cast"`
	Crew []PersonTVCrew `json:"crew"`
}
