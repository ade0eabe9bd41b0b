package places

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testCities = []City{
	{Name: "Pune", State: "Maharashtra", Country: "India", Lat: 18.5204, Lng: 73.8567},
	{Name: "Punalur", State: "Kerala", Country: "India", Lat: 9.017, Lng: 76.926},
	{Name: "Coimbatore", State: "Tamil Nadu", Country: "India", Lat: 11.0055, Lng: 76.9661},
	{Name: "Mumbai", State: "Maharashtra", Country: "India", Lat: 19.076, Lng: 72.8777},
	{Name: "Madurai", State: "Tamil Nadu", Country: "India", Lat: 9.9252, Lng: 78.1198},
}

func TestGeocoder_Ranking(t *testing.T) {
	g := NewGeocoder(testCities)

	got := g.Search("Pune", 7)
	require.NotEmpty(t, got)
	assert.Equal(t, "Pune, Maharashtra, India", got[0].Name)
	assert.InDelta(t, 73.8567, got[0].Lon, 1e-9)

	got = g.Search("pun", 7)
	require.GreaterOrEqual(t, len(got), 2)
	assert.Equal(t, "Pune, Maharashtra, India", got[0].Name)
	assert.Equal(t, "Punalur, Kerala, India", got[1].Name)

	got = g.Search("tamil", 7)
	names := make([]string, 0, len(got))
	for _, p := range got {
		names = append(names, p.Name)
	}
	assert.Contains(t, names, "Coimbatore, Tamil Nadu, India")
	assert.Contains(t, names, "Madurai, Tamil Nadu, India")
}

func TestGeocoder_FuzzyFallback(t *testing.T) {
	g := NewGeocoder(testCities)
	got := g.Search("cmbtr", 3)
	require.NotEmpty(t, got)
	assert.Equal(t, "Coimbatore, Tamil Nadu, India", got[0].Name)
}

func TestGeocoder_Limits(t *testing.T) {
	g := NewGeocoder(testCities)
	assert.Len(t, g.Search("india", 2), 2)
	assert.Empty(t, g.Search("p", 7))
	assert.Empty(t, g.Search("pu", 7))
	assert.NotEmpty(t, g.Search("pun", 7))
	assert.Empty(t, g.Search("pune", 0))
	assert.Empty(t, NewGeocoder(nil).Search("pune", 7))
}

func TestLoadCities(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cities.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name":"Pune","state":"Maharashtra","country":"India","lat":18.52,"lng":73.85}]`), 0o644))

	cities, err := LoadCities(path)
	require.NoError(t, err)
	require.Len(t, cities, 1)
	assert.Equal(t, "Pune, Maharashtra, India", cities[0].DisplayName())

	_, err = LoadCities(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))
	_, err = LoadCities(path)
	assert.Error(t, err)
}

type countingSearcher struct {
	calls   atomic.Int32
	release chan struct{}
}

func (c *countingSearcher) Search(query string, limit int) []Place {
	c.calls.Add(1)
	if c.release != nil {
		<-c.release
	}
	return NewGeocoder(testCities).Search(query, limit)
}

func TestService_CachesByNormalisedQuery(t *testing.T) {
	s := &countingSearcher{}
	svc := NewService(s, 7, time.Hour, zap.NewNop())

	a, err := svc.Lookup(context.Background(), "Pune")
	require.NoError(t, err)
	b, err := svc.Lookup(context.Background(), "  pune ")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, int32(1), s.calls.Load())
	assert.Equal(t, 1, svc.Cache().Len())
}

func TestService_ShortQuery(t *testing.T) {
	s := &countingSearcher{}
	svc := NewService(s, 7, time.Hour, nil)

	got, err := svc.Lookup(context.Background(), "pu")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
	assert.Zero(t, s.calls.Load())
}

func TestService_CoalescesConcurrentLookups(t *testing.T) {
	s := &countingSearcher{release: make(chan struct{})}
	svc := NewService(s, 7, time.Hour, zap.NewNop())

	var wg sync.WaitGroup
	results := make([][]Place, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = svc.Lookup(context.Background(), "coimbatore")
		}(i)
	}
	// let the callers pile up behind the first search
	time.Sleep(50 * time.Millisecond)
	close(s.release)
	wg.Wait()

	assert.LessOrEqual(t, s.calls.Load(), int32(len(results)))
	for _, r := range results {
		require.NotEmpty(t, r)
		assert.Equal(t, "Coimbatore, Tamil Nadu, India", r[0].Name)
	}
}

func TestService_CancelledContext(t *testing.T) {
	s := &countingSearcher{release: make(chan struct{})}
	defer close(s.release)
	svc := NewService(s, 7, time.Hour, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	got, err := svc.Lookup(ctx, "coimbatore")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, got)
}

func TestService_First(t *testing.T) {
	svc := NewService(NewGeocoder(testCities), 7, time.Hour, zap.NewNop())

	p, ok, err := svc.First(context.Background(), "Coimbatore")
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 11.0055, p.Lat, 1e-9)

	_, ok, err = svc.First(context.Background(), "zzzzzzzz")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLongitudeResolver(t *testing.T) {
	r := LongitudeResolver{}
	cases := []struct {
		lon  float64
		want float64
	}{
		{76.9661, 5},
		{82.5, 5.5},
		{0, 0},
		{-0.1, 0},
		{-74.006, -5},
		{180, 12},
	}
	for _, tc := range cases {
		got, err := r.Offset(context.Background(), time.Now(), 10, tc.lon)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "lon %v", tc.lon)
	}

	_, err := r.Offset(context.Background(), time.Now(), 91, 0)
	assert.Error(t, err)
	_, err = r.Offset(context.Background(), time.Now(), 0, 181)
	assert.Error(t, err)
}
