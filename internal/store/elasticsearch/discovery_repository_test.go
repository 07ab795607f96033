package elasticsearch_test

import (
	"context"
	"testing"
	"time"

	"github.com/goto/coursefinder/core/course"
	store "github.com/goto/coursefinder/internal/store/elasticsearch"
	"github.com/goto/salt/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionAt(day int) time.Time {
	return time.Date(2025, 9, day, 10, 0, 0, 0, time.UTC)
}

func sampleCourses() []course.Course {
	courses := []course.Course{
		{ID: "c1", Title: "Robotics Club", Description: "Build and program robots", Category: "Science", Type: course.TypeClub, MinAge: 10, MaxAge: 14, Price: 120, NextSessionDate: sessionAt(10)},
		{ID: "c2", Title: "Art Camp", Description: "Painting and drawing outdoors", Category: "Art", Type: course.TypeOneTime, MinAge: 6, MaxAge: 9, Price: 45, NextSessionDate: sessionAt(3)},
		{ID: "c3", Title: "Art History", Description: "Stories behind famous paintings", Category: "Art", Type: course.TypeCourse, MinAge: 12, MaxAge: 16, Price: 80, NextSessionDate: sessionAt(20)},
		{ID: "c4", Title: "Junior Chess", Description: "Openings and tactics", Category: "Games", Type: course.TypeClub, MinAge: 7, MaxAge: 11, Price: 30, NextSessionDate: sessionAt(5)},
		{ID: "c5", Title: "Toddler Music", Description: "Rhythm and songs", Category: "Music", Type: course.TypeCourse, MinAge: 3, MaxAge: 5, Price: 60, NextSessionDate: sessionAt(1)},
	}
	for i := range courses {
		courses[i] = courses[i].WithSuggestions()
	}
	return courses
}

func newSeededRepository(t *testing.T) *store.DiscoveryRepository {
	t.Helper()
	ctx := context.Background()

	esClient, _ := newTestClient(t)
	require.NoError(t, esClient.Migrate(ctx))
	repo := store.NewDiscoveryRepository(esClient, log.NewNoop())
	require.NoError(t, repo.BulkUpsert(ctx, sampleCourses()))

	return repo
}

func courseIDs(courses []course.Course) []string {
	ids := make([]string, 0, len(courses))
	for _, c := range courses {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestDiscoveryRepositoryWrites(t *testing.T) {
	ctx := context.Background()

	t.Run("should return error if id empty", func(t *testing.T) {
		esClient, _ := newTestClient(t)
		repo := store.NewDiscoveryRepository(esClient, log.NewNoop())

		err := repo.Upsert(ctx, course.Course{Title: "No ID"})
		assert.ErrorIs(t, err, course.ErrEmptyID)

		err = repo.BulkUpsert(ctx, []course.Course{{Title: "No ID"}})
		assert.ErrorIs(t, err, course.ErrEmptyID)
	})

	t.Run("should accept an empty bulk", func(t *testing.T) {
		esClient, _ := newTestClient(t)
		repo := store.NewDiscoveryRepository(esClient, log.NewNoop())

		assert.NoError(t, repo.BulkUpsert(ctx, nil))
	})

	t.Run("should count a missing index as empty", func(t *testing.T) {
		esClient, _ := newTestClient(t)
		repo := store.NewDiscoveryRepository(esClient, log.NewNoop())

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 0, count)
	})

	t.Run("should bulk index, upsert and delete all", func(t *testing.T) {
		repo := newSeededRepository(t)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 5, count)

		updated := course.Course{ID: "c1", Title: "Advanced Robotics", Type: course.TypeClub, NextSessionDate: sessionAt(10)}.WithSuggestions()
		require.NoError(t, repo.Upsert(ctx, updated))
		count, err = repo.Count(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 5, count)

		require.NoError(t, repo.DeleteAll(ctx))
		count, err = repo.Count(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 0, count)
	})

	t.Run("should fail the bulk when a document is rejected", func(t *testing.T) {
		repo := newSeededRepository(t)
		bad := course.Course{ID: "bad", Title: "Bad Course", Category: "Art"}
		// empty completion inputs are rejected by the mapping
		bad.Suggest = &course.Completion{Input: []string{""}}

		err := repo.BulkUpsert(ctx, []course.Course{bad})

		var de course.DiscoveryError
		assert.ErrorAs(t, err, &de)
	})
}

func TestDiscoveryRepositorySearch(t *testing.T) {
	ctx := context.Background()
	repo := newSeededRepository(t)

	search := func(t *testing.T, raw course.RawCriteria) course.SearchHits {
		t.Helper()
		hits, err := repo.Search(ctx, raw.Normalize(nil))
		require.NoError(t, err)
		return hits
	}

	t.Run("should return every course ordered by next session by default", func(t *testing.T) {
		hits := search(t, course.RawCriteria{})

		assert.EqualValues(t, 5, hits.Total)
		assert.Equal(t, []string{"c5", "c2", "c4", "c1", "c3"}, courseIDs(hits.Courses))
	})

	t.Run("should treat an unknown sort like upcoming", func(t *testing.T) {
		assert.Equal(t, courseIDs(search(t, course.RawCriteria{}).Courses), courseIDs(search(t, course.RawCriteria{Sort: "xyz"}).Courses))
	})

	t.Run("should sort by price", func(t *testing.T) {
		asc := search(t, course.RawCriteria{Sort: "priceAsc"})
		desc := search(t, course.RawCriteria{Sort: "priceDesc"})

		assert.Equal(t, []string{"c4", "c2", "c5", "c3", "c1"}, courseIDs(asc.Courses))
		assert.Equal(t, []string{"c1", "c3", "c5", "c2", "c4"}, courseIDs(desc.Courses))
	})

	t.Run("should match text fuzzily", func(t *testing.T) {
		hits := search(t, course.RawCriteria{Text: "robotcs"})

		require.NotEmpty(t, hits.Courses)
		assert.Equal(t, "c1", hits.Courses[0].ID)
	})

	t.Run("should include courses whose age range overlaps", func(t *testing.T) {
		hits := search(t, course.RawCriteria{MinAge: intPtr(8), MaxAge: intPtr(10), Sort: "priceAsc"})

		// c2 6-9, c4 7-11 and c1 10-14 overlap 8-10, c3 12-16 and c5 3-5 do not
		assert.ElementsMatch(t, []string{"c1", "c2", "c4"}, courseIDs(hits.Courses))
	})

	t.Run("should filter by price inclusively", func(t *testing.T) {
		hits := search(t, course.RawCriteria{MinPrice: floatPtr(45), MaxPrice: floatPtr(80), Sort: "priceAsc"})

		assert.Equal(t, []string{"c2", "c5", "c3"}, courseIDs(hits.Courses))
	})

	t.Run("should filter by category, type and start date", func(t *testing.T) {
		start := sessionAt(4)

		assert.Equal(t, []string{"c2", "c3"}, courseIDs(search(t, course.RawCriteria{Category: "Art"}).Courses))
		assert.Equal(t, []string{"c5", "c3"}, courseIDs(search(t, course.RawCriteria{Type: "course"}).Courses))
		assert.Equal(t, []string{"c4", "c1", "c3"}, courseIDs(search(t, course.RawCriteria{StartDate: &start}).Courses))
	})

	t.Run("should ignore an unknown type", func(t *testing.T) {
		hits := search(t, course.RawCriteria{Type: "bogus"})

		assert.EqualValues(t, 5, hits.Total)
	})

	t.Run("should page results and report the full total", func(t *testing.T) {
		hits := search(t, course.RawCriteria{Page: intPtr(1), PageSize: intPtr(2)})

		assert.EqualValues(t, 5, hits.Total)
		assert.Equal(t, []string{"c4", "c1"}, courseIDs(hits.Courses))
	})

	t.Run("should return an empty page without error", func(t *testing.T) {
		hits := search(t, course.RawCriteria{Category: "Cooking"})

		assert.EqualValues(t, 0, hits.Total)
		assert.Empty(t, hits.Courses)
	})
}

func TestDiscoveryRepositorySuggest(t *testing.T) {
	ctx := context.Background()
	repo := newSeededRepository(t)

	t.Run("should complete titles by word prefix", func(t *testing.T) {
		titles, err := repo.Suggest(ctx, "art")
		require.NoError(t, err)

		// both titles share the input "art" which the engine skips as a duplicate
		require.NotEmpty(t, titles)
		assert.Subset(t, []string{"Art Camp", "Art History"}, titles)
	})

	t.Run("should complete a later word of the title", func(t *testing.T) {
		titles, err := repo.Suggest(ctx, "hist")
		require.NoError(t, err)

		assert.Equal(t, []string{"Art History"}, titles)
	})

	t.Run("should complete on any word of the title", func(t *testing.T) {
		titles, err := repo.Suggest(ctx, "che")
		require.NoError(t, err)

		assert.Equal(t, []string{"Junior Chess"}, titles)
	})

	t.Run("should return nothing for an unknown prefix", func(t *testing.T) {
		titles, err := repo.Suggest(ctx, "zz")
		require.NoError(t, err)

		assert.Empty(t, titles)
	})
}

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }
