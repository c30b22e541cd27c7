// Package tmdb provides a typed client for The Movie Database (TMDB) API.
//
// Every endpoint is a method on a service group hanging off the Client
// (Movies, Search, Discover, Account, ...). Methods take a context, the path
// arguments and an optional options struct whose fields are encoded as query
// parameters. Results decode into the models of this package.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := tmdb.NewClient(
//		"your-api-key",
//		logger,
//		tmdb.WithLanguage("en-US"),
//		tmdb.WithTimeout(10*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	movie, err := client.Movies.Details(ctx, 550, &tmdb.DetailsOptions{
//		AppendToResponse: []string{"credits"},
//	})
//
// # Authentication
//
// The v3 API key is always sent as the api_key query parameter. Sessions
// created through client.Auth are attached as session_id or guest_session_id
// and v4 access tokens set through WithAccessToken or client.AuthV4 are sent
// as a bearer Authorization header. The AuthTransport holding this state can
// be reached with Client.Transport.
//
// # Mixed media
//
// Multi search, trending, v4 lists and Person.KnownFor mix movies, TV shows and
// people. They are returned as MediaItem values which decode on the media_type
// field:
//
//	for _, item := range page.Results {
//		switch m := item.Media.(type) {
//		case *tmdb.Movie:
//		case *tmdb.TVShow:
//		case *tmdb.Person:
//		}
//	}
//
// # Error Handling
//
//   - ErrInvalidConfig: missing API key or invalid base URL
//   - ErrInvalidAccessToken: a v4 token that is not a three segment JWT
//   - ErrUnknownMediaType: a mixed listing item with an unknown media_type
//   - APIError: a non 2xx response with TMDB's status code and message
//
//	var apiErr *tmdb.APIError
//	if errors.As(err, &apiErr) && apiErr.IsNotFound() {
//		// handle missing resource
//	}
package tmdb
