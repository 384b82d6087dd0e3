package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geogram/map-backend-go/internal/models"
)

func TestViewportBufferKeepsNearbyPosts(t *testing.T) {
	e := testEngine()
	vp := viewport(40.0, 29.0, 1.0, 14) // lat 39.5..40.5, buffered to 39.0..41.0

	posts := []models.Post{
		post("inside", 40.2, 29.0, 1),
		post("buffered", 40.8, 29.0, 1),
		post("outside", 41.2, 29.0, 1),
	}
	got := e.filterPosts(posts, vp, testNow)

	ids := make([]string, len(got))
	for i, p := range got {
		ids[i] = p.ID
	}
	assert.Equal(t, []string{"inside", "buffered"}, ids)
}

func TestWorldScaleSkipsViewportFilter(t *testing.T) {
	e := testEngine()
	vp := viewport(40.0, 29.0, 1.0, 5)

	got := e.filterPosts([]models.Post{post("antipode", -40.0, -150.0, 10)}, vp, testNow)
	assert.Len(t, got, 1)
}

func TestPopularityGateByZoom(t *testing.T) {
	e := testEngine() // MinLikesForZoom = 5

	cases := []struct {
		name  string
		zoom  float64
		likes int
		want  bool
	}{
		{"high zoom shows everything", 14, 0, true},
		{"medium zoom needs any like", 12.5, 1, true},
		{"medium zoom hides zero likes", 12.5, 0, false},
		{"low zoom needs popularity", 10, 6, true},
		{"low zoom hides unpopular", 10, 5, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := post("p", 40.0, 29.0, tc.likes)
			assert.Equal(t, tc.want, e.popularEnough(p, tc.zoom))
		})
	}
}

func TestPopularityGateDisabled(t *testing.T) {
	e := New(Config{ExpirationHours: 24, ClusterRadius: 0.009, MinLikesForZoom: 0})
	assert.True(t, e.popularEnough(post("p", 40.0, 29.0, 0), 3))
}

func TestScoreComposition(t *testing.T) {
	nowMillis := testNow.UnixMilli()

	fresh := post("fresh", 40.0, 29.0, 10) // 10 minutes old
	assert.Equal(t, 15, score(fresh, nowMillis))

	stale := fresh
	stale.Timestamp = nowMillis - 2*60*60*1000 // 2h old
	assert.Equal(t, 10, score(stale, nowMillis))

	friends := stale
	friends.Visibility = models.VisibilityFriends
	assert.Equal(t, 60, score(friends, nowMillis))
}

func TestSortByScoreTieBreaks(t *testing.T) {
	nowMillis := testNow.UnixMilli()

	a := post("a", 40.0, 29.0, 5)
	b := post("b", 40.0, 29.0, 5)
	b.Timestamp = a.Timestamp + 1000 // newer wins

	c := post("c", 40.0, 29.0, 5)
	c.Timestamp = b.Timestamp // same score, same time: larger id wins

	posts := []models.Post{a, b, c}
	sortByScore(posts, nowMillis)

	assert.Equal(t, "c", posts[0].ID)
	assert.Equal(t, "b", posts[1].ID)
	assert.Equal(t, "a", posts[2].ID)
}
