package site

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasib2k/portfolio/test/testutil"
)

func TestProjectsListing(t *testing.T) {
	ts := testutil.NewTestServer(t)
	defer ts.Cleanup()

	page := ts.Get(t, "/projects")
	require.Equal(t, http.StatusOK, page.Status)

	cards := page.ByRole("project")
	require.Len(t, cards, 1)
	href := testutil.Attr(cards[0], "href")
	assert.Equal(t, "/projects/cross-platform-testing", href)

	// The listing links back to a page that renders
	detail := ts.Get(t, href)
	assert.Equal(t, http.StatusOK, detail.Status)
}

func TestRootRedirectsToListing(t *testing.T) {
	ts := testutil.NewTestServer(t)
	defer ts.Cleanup()

	page := ts.Get(t, "/")
	assert.Equal(t, http.StatusFound, page.Status)
	assert.Equal(t, "/projects", page.Header.Get("Location"))
}

func TestUnknownProject(t *testing.T) {
	ts := testutil.NewTestServer(t)
	defer ts.Cleanup()

	page := ts.Get(t, "/projects/no-such-project")
	assert.Equal(t, http.StatusNotFound, page.Status)
	assert.Contains(t, page.Body, "Back to Projects")
}

func TestMethodNotAllowed(t *testing.T) {
	ts := testutil.NewTestServer(t)
	defer ts.Cleanup()

	req, err := http.NewRequest(http.MethodDelete, ts.Endpoint+"/projects", nil)
	require.NoError(t, err)
	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
