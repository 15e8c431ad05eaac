package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"securitydashboard/breach"
	"securitydashboard/server/middleware"
	"securitydashboard/websearch"
)

func parseHTML(t *testing.T, body string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	require.NoError(t, err)
	return doc
}

func TestSearchNameRendersResults(t *testing.T) {
	search := &stubSearch{items: []websearch.SearchItem{
		map[string]any{"title": "Jane Doe - LinkedIn", "link": "https://example.com/jane", "snippet": "Profile", "displayLink": "example.com"},
	}}
	router := setupLookupRouter(t, search, &stubBreach{})

	w := postForm(router, "/search_name", url.Values{"name": {"Jane Doe"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	doc := parseHTML(t, w.Body.String())
	items := doc.Find("li.result-item")
	require.Equal(t, 1, items.Length())
	assert.Equal(t, "Jane Doe - LinkedIn", items.Find("a.result-title").Text())
	href, _ := items.Find("a.result-title").Attr("href")
	assert.Equal(t, "https://example.com/jane", href)
	assert.Equal(t, "Profile", items.Find("p.result-snippet").Text())
	assert.Contains(t, doc.Find("h1").Text(), "Jane Doe")

	assert.Equal(t, []string{"Jane Doe"}, search.Calls())
}

func TestSearchNameEmptyResults(t *testing.T) {
	router := setupLookupRouter(t, &stubSearch{items: []websearch.SearchItem{}}, &stubBreach{})

	w := postForm(router, "/search_name", url.Values{"name": {"Nobody"}})
	require.Equal(t, http.StatusOK, w.Code)

	doc := parseHTML(t, w.Body.String())
	assert.Equal(t, 0, doc.Find("li.result-item").Length())
	assert.Equal(t, 1, doc.Find("p.empty").Length())
}

func TestSearchNameItemWithoutConventionalKeys(t *testing.T) {
	search := &stubSearch{items: []websearch.SearchItem{map[string]any{"kind": "customsearch#result"}}}
	router := setupLookupRouter(t, search, &stubBreach{})

	w := postForm(router, "/search_name", url.Values{"name": {"x"}})
	require.Equal(t, http.StatusOK, w.Code)

	doc := parseHTML(t, w.Body.String())
	assert.Equal(t, 1, doc.Find("li.result-item").Length())
	assert.NotContains(t, w.Body.String(), "<no value>")
}

func TestSearchNameEmptyFieldIsAllowed(t *testing.T) {
	search := &stubSearch{}
	router := setupLookupRouter(t, search, &stubBreach{})

	w := postForm(router, "/search_name", url.Values{"name": {""}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{""}, search.Calls())
}

func TestLookupMissingField(t *testing.T) {
	tests := []struct {
		path string
		form url.Values
	}{
		{path: "/search_name", form: url.Values{"email": {"a@b.c"}}},
		{path: "/check_breach", form: url.Values{"name": {"Jane"}}},
		{path: "/search_name", form: url.Values{}},
		{path: "/check_breach", form: url.Values{}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			search := &stubSearch{}
			breaches := &stubBreach{}
			router := setupLookupRouter(t, search, breaches)

			w := postForm(router, tt.path, tt.form)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, search.Calls(), "no outbound call on missing field")
			assert.Empty(t, breaches.Calls(), "no outbound call on missing field")
		})
	}
}

func TestLookupUpstreamFailure(t *testing.T) {
	search := &stubSearch{err: errors.New("dial tcp: connection refused")}
	breaches := &stubBreach{err: errors.New("invalid character '<'")}
	router := setupLookupRouter(t, search, breaches)

	w := postForm(router, "/search_name", url.Values{"name": {"Jane"}})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")

	w = postForm(router, "/check_breach", url.Values{"email": {"a@b.c"}})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.NotContains(t, w.Body.String(), "invalid character")
}

func TestCheckBreachRendersRecords(t *testing.T) {
	breaches := &stubBreach{records: []breach.Record{
		map[string]any{"Name": "Adobe", "Title": "Adobe", "Domain": "adobe.com", "BreachDate": "2013-10-04", "DataClasses": []any{"Email addresses", "Passwords"}},
		map[string]any{"Name": "LinkedIn"},
	}}
	router := setupLookupRouter(t, &stubSearch{}, breaches)

	w := postForm(router, "/check_breach", url.Values{"email": {"someone@example.com"}})
	require.Equal(t, http.StatusOK, w.Code)

	doc := parseHTML(t, w.Body.String())
	names := doc.Find("h2.breach-name").Map(func(_ int, s *goquery.Selection) string { return s.Text() })
	assert.Equal(t, []string{"Adobe", "LinkedIn"}, names)
	assert.Contains(t, doc.Find(".breach-data").Text(), "Email addresses, Passwords")
	assert.Equal(t, []string{"someone@example.com"}, breaches.Calls())
}

func TestCheckBreachNoRecords(t *testing.T) {
	router := setupLookupRouter(t, &stubSearch{}, &stubBreach{records: []breach.Record{}})

	w := postForm(router, "/check_breach", url.Values{"email": {"clean@example.com"}})
	require.Equal(t, http.StatusOK, w.Code)

	doc := parseHTML(t, w.Body.String())
	assert.Equal(t, 0, doc.Find("li.breach-item").Length())
	assert.Equal(t, 1, doc.Find("p.empty").Length())
}

func TestCheckBreachEmailPassedVerbatim(t *testing.T) {
	for i := 0; i < 20; i++ {
		email := " " + strings.ToUpper(gofakeit.Email()) + " "
		breaches := &stubBreach{}
		router := setupLookupRouter(t, &stubSearch{}, breaches)

		w := postForm(router, "/check_breach", url.Values{"email": {email}})
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, []string{email}, breaches.Calls())
	}
}

func TestSearchNameEscapesProviderContent(t *testing.T) {
	search := &stubSearch{items: []websearch.SearchItem{map[string]any{"title": "<script>alert(1)</script>"}}}
	router := setupLookupRouter(t, search, &stubBreach{})

	w := postForm(router, "/search_name", url.Values{"name": {"<b>x</b>"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "<script>alert(1)</script>")
	assert.NotContains(t, w.Body.String(), "<b>x</b>")
}

func TestAPISearchName(t *testing.T) {
	search := &stubSearch{items: []websearch.SearchItem{map[string]any{"title": "Jane Doe - LinkedIn"}}}
	router := setupLookupRouter(t, search, &stubBreach{})

	w := postForm(router, "/api/search_name", url.Values{"name": {"Jane Doe"}})
	require.Equal(t, http.StatusOK, w.Code)

	var resp SearchNameResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Jane Doe", resp.Query)
	require.Len(t, resp.Results, 1)
	item, ok := resp.Results[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Jane Doe - LinkedIn", item["title"])
}

func TestAPICheckBreachEmptyIsArray(t *testing.T) {
	router := setupLookupRouter(t, &stubSearch{}, &stubBreach{records: []breach.Record{}})

	w := postForm(router, "/api/check_breach", url.Values{"email": {"clean@example.com"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"email":"clean@example.com","breaches":[]}`, w.Body.String())
}

func TestAPIErrorsAreJSON(t *testing.T) {
	router := setupLookupRouter(t, &stubSearch{err: errors.New("boom")}, &stubBreach{})

	w := postForm(router, "/api/search_name", url.Values{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusText(http.StatusBadRequest), resp.Error)

	w = postForm(router, "/api/search_name", url.Values{"name": {"Jane"}})
	require.Equal(t, http.StatusBadGateway, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotContains(t, resp.Error, "boom")
}

func TestLookupRendersNonObjectElements(t *testing.T) {
	search := &stubSearch{items: []websearch.SearchItem{"plain text result", map[string]any{"title": "Jane Doe"}}}
	breaches := &stubBreach{records: []breach.Record{"Adobe", map[string]any{"Name": "LinkedIn"}}}
	router := setupLookupRouter(t, search, breaches)

	w := postForm(router, "/search_name", url.Values{"name": {"Jane Doe"}})
	require.Equal(t, http.StatusOK, w.Code)
	doc := parseHTML(t, w.Body.String())
	assert.Equal(t, 2, doc.Find("li.result-item").Length())
	assert.Equal(t, "plain text result", doc.Find("p.result-raw").Text())
	assert.Equal(t, "Jane Doe", doc.Find("a.result-title").Text())

	w = postForm(router, "/check_breach", url.Values{"email": {"someone@example.com"}})
	require.Equal(t, http.StatusOK, w.Code)
	doc = parseHTML(t, w.Body.String())
	names := doc.Find("h2.breach-name").Map(func(_ int, s *goquery.Selection) string { return s.Text() })
	assert.Equal(t, []string{"Adobe", "LinkedIn"}, names)

	w = postForm(router, "/api/check_breach", url.Values{"email": {"someone@example.com"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"email":"someone@example.com","breaches":["Adobe",{"Name":"LinkedIn"}]}`, w.Body.String())
}
