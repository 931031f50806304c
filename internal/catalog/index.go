package catalog

import (
	"fmt"
	"math"
	"sort"
)

// Index is the in-memory catalog: movie metadata, users, ratings and the
// aggregates derived from them. It is mutable while being populated and must
// be finalized with Finalize before use; after that it is read-only and safe
// to share across concurrent requests without locking.
type Index struct {
	movies map[MovieID]Movie
	users  map[UserID]User

	userRatings  map[UserID][]Rating
	movieRatings map[MovieID][]Rating

	genreIndex map[Genre][]MovieID
	yearIndex  map[int][]MovieID

	stats map[MovieID]RatingStats
}

func NewIndex() *Index {
	return &Index{
		movies:       make(map[MovieID]Movie),
		users:        make(map[UserID]User),
		userRatings:  make(map[UserID][]Rating),
		movieRatings: make(map[MovieID][]Rating),
		genreIndex:   make(map[Genre][]MovieID),
		yearIndex:    make(map[int][]MovieID),
		stats:        make(map[MovieID]RatingStats),
	}
}

func (idx *Index) AddMovie(m Movie) {
	idx.movies[m.ID] = m
}

func (idx *Index) AddUser(u User) {
	idx.users[u.ID] = u
}

func (idx *Index) AddRating(r Rating) {
	idx.userRatings[r.UserID] = append(idx.userRatings[r.UserID], r)
	idx.movieRatings[r.MovieID] = append(idx.movieRatings[r.MovieID], r)
}

// Finalize builds the secondary indices, computes per-movie aggregates and
// validates referential integrity. It must be called exactly once, after all
// movies, users and ratings have been added.
func (idx *Index) Finalize() error {
	for id, movie := range idx.movies {
		for _, g := range movie.Genres {
			idx.genreIndex[g] = append(idx.genreIndex[g], id)
		}
		if movie.Year != 0 {
			idx.yearIndex[movie.Year] = append(idx.yearIndex[movie.Year], id)
		}
	}

	idx.computeStats()

	return idx.validate()
}

func (idx *Index) computeStats() {
	for movieID, ratings := range idx.movieRatings {
		var total float64
		for _, r := range ratings {
			total += r.Rating
		}
		count := uint32(len(ratings))
		avg := 0.0
		if count > 0 {
			avg = total / float64(count)
		}
		idx.stats[movieID] = RatingStats{
			AvgRating:       avg,
			RatingCount:     count,
			PopularityScore: avg * math.Log(float64(count)+1),
		}
	}

	// Percentiles need a global ranking by rating count. Ties are broken by
	// movie ID so identical catalogs always produce identical percentiles.
	ranked := make([]MovieID, 0, len(idx.stats))
	for movieID := range idx.stats {
		ranked = append(ranked, movieID)
	}
	sort.Slice(ranked, func(i, j int) bool {
		si, sj := idx.stats[ranked[i]], idx.stats[ranked[j]]
		if si.RatingCount != sj.RatingCount {
			return si.RatingCount < sj.RatingCount
		}
		return ranked[i] < ranked[j]
	})
	n := len(ranked)
	for rank, movieID := range ranked {
		s := idx.stats[movieID]
		if n <= 1 {
			s.PopularityPercentile = 1.0
		} else {
			s.PopularityPercentile = float64(rank) / float64(n-1)
		}
		idx.stats[movieID] = s
	}
}

func (idx *Index) validate() error {
	for _, ratings := range idx.userRatings {
		for _, r := range ratings {
			if _, ok := idx.users[r.UserID]; !ok {
				return fmt.Errorf("rating references unknown user %d", r.UserID)
			}
			if _, ok := idx.movies[r.MovieID]; !ok {
				return fmt.Errorf("rating references unknown movie %d", r.MovieID)
			}
			if r.Rating < 1.0 || r.Rating > 5.0 {
				return fmt.Errorf("rating %.1f for movie %d out of range [1,5]", r.Rating, r.MovieID)
			}
		}
	}
	return nil
}

func (idx *Index) GetMovie(id MovieID) (Movie, bool) {
	m, ok := idx.movies[id]
	return m, ok
}

func (idx *Index) GetMovieStats(id MovieID) (RatingStats, bool) {
	s, ok := idx.stats[id]
	return s, ok
}

func (idx *Index) GetUser(id UserID) (User, bool) {
	u, ok := idx.users[id]
	return u, ok
}

// UserRatings returns all ratings a user has given. The returned slice is
// owned by the index and must not be modified.
func (idx *Index) UserRatings(id UserID) []Rating {
	return idx.userRatings[id]
}

// MovieRatings returns all ratings a movie has received. The returned slice
// is owned by the index and must not be modified.
func (idx *Index) MovieRatings(id MovieID) []Rating {
	return idx.movieRatings[id]
}

func (idx *Index) MoviesByGenre(g Genre) []MovieID {
	return idx.genreIndex[g]
}

func (idx *Index) MoviesInYearRange(from, to int) []MovieID {
	var ids []MovieID
	for year := from; year <= to; year++ {
		ids = append(ids, idx.yearIndex[year]...)
	}
	return ids
}

// AllUserIDs returns every user ID in ascending order.
func (idx *Index) AllUserIDs() []UserID {
	ids := make([]UserID, 0, len(idx.users))
	for id := range idx.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (idx *Index) AllMovieIDs() []MovieID {
	ids := make([]MovieID, 0, len(idx.movies))
	for id := range idx.movies {
		ids = append(ids, id)
	}
	return ids
}

// Counts returns the number of users, movies and ratings in the index.
func (idx *Index) Counts() (users, movies, ratings int) {
	for _, rs := range idx.userRatings {
		ratings += len(rs)
	}
	return len(idx.users), len(idx.movies), ratings
}
