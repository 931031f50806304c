package catalog

// MovieID uniquely identifies a movie in the catalog.
type MovieID uint32

// UserID uniquely identifies a user in the catalog.
type UserID uint32

// Genre is a movie genre as it appears in the dataset (e.g. "Action", "Sci-Fi").
type Genre string

type Movie struct {
	ID     MovieID
	Title  string
	Year   int // 0 when the release year is unknown
	Genres []Genre
}

type User struct {
	ID         UserID
	Gender     string
	Age        int
	Occupation int
	Zipcode    string
}

type Rating struct {
	UserID    UserID
	MovieID   MovieID
	Rating    float64
	Timestamp int64
}

// RatingStats holds precomputed aggregates for a movie.
type RatingStats struct {
	AvgRating       float64
	RatingCount     uint32
	PopularityScore float64
	// PopularityPercentile is the movie's rank by rating count over all rated
	// movies, normalized to [0, 1]. Precomputed at index build time.
	PopularityPercentile float64
}
