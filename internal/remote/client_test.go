package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/deck"
	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/navigation"
	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/server"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	require.NoError(t, err)
	assert.Equal(t, "http", u.Scheme)
	assert.Equal(t, defaultAPIBind, u.Host)

	u, err = parseBaseURL("http://example.com:1234/path?x=1#frag")
	require.NoError(t, err)
	assert.Equal(t, "http://example.com:1234", u.String())
}

func newRemote(t *testing.T) (*Client, *navigation.Machine) {
	t.Helper()
	m := navigation.New(deck.Default())
	srv := server.New(m, server.Options{})
	ts := httptest.NewServer(srv)
	t.Cleanup(func() {
		ts.Close()
		srv.Close()
	})

	c, err := NewClient(ts.URL)
	require.NoError(t, err)
	return c, m
}

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestClient_DrivesMachine(t *testing.T) {
	c, m := newRemote(t)
	ctx := testContext(t)

	view, err := c.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, "intro-1", view.SlideID)

	resp, err := c.Next(ctx)
	require.NoError(t, err)
	assert.True(t, resp.Changed)
	assert.Equal(t, "intro-2", resp.State.SlideID)
	assert.Equal(t, "intro-2", m.State().SlideID)

	resp, err = c.GoToSection(ctx, deck.SectionFuture)
	require.NoError(t, err)
	assert.Equal(t, "future-1", resp.State.SlideID)

	resp, err = c.GoToSlide(ctx, "cell-1-video")
	require.NoError(t, err)
	assert.Equal(t, deck.SectionCellularBiology, resp.State.SectionID)

	resp, err = c.Prev(ctx)
	require.NoError(t, err)
	assert.Equal(t, "cell-1", resp.State.SlideID)

	resp, err = c.TogglePause(ctx)
	require.NoError(t, err)
	assert.True(t, resp.State.Paused)

	resp, err = c.TogglePresentationMode(ctx)
	require.NoError(t, err)
	assert.True(t, resp.State.PresentationMode)
	assert.True(t, m.State().PresentationMode)
}

func TestClient_UnknownTargetsAreNoOps(t *testing.T) {
	c, _ := newRemote(t)
	ctx := testContext(t)

	resp, err := c.GoToSlide(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, resp.Changed)
	assert.Equal(t, "intro-1", resp.State.SlideID)

	_, err = c.GoToSlide(ctx, "  ")
	assert.Error(t, err)
	_, err = c.GoToSection(ctx, "")
	assert.Error(t, err)
}

func TestClient_Gesture(t *testing.T) {
	c, _ := newRemote(t)
	ctx := testContext(t)

	resp, err := c.Gesture(ctx, "swipe-left", "ltr")
	require.NoError(t, err)
	assert.Equal(t, "next", resp.Operation)
	assert.Equal(t, "intro-2", resp.State.SlideID)

	resp, err = c.Gesture(ctx, "swipe-left", "rtl")
	require.NoError(t, err)
	assert.Equal(t, "prev", resp.Operation)
	assert.Equal(t, "intro-1", resp.State.SlideID)

	_, err = c.Gesture(ctx, "wave", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown gesture")
}

func TestClient_Listings(t *testing.T) {
	c, _ := newRemote(t)
	ctx := testContext(t)

	slides, err := c.Slides(ctx)
	require.NoError(t, err)
	assert.Len(t, slides, 22)

	sections, err := c.Sections(ctx)
	require.NoError(t, err)
	require.Len(t, sections, 7)
	assert.Equal(t, []string{"stats-1", "stats-3"}, sections[5].Slides)
}

func TestClient_ErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(ts.Close)

	c, err := NewClient(ts.URL)
	require.NoError(t, err)

	_, err = c.State(testContext(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestClient_NilReceiver(t *testing.T) {
	var c *Client
	_, err := c.State(context.Background())
	assert.Error(t, err)
}
