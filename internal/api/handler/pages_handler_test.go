package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestPagesHandler_Get(t *testing.T) {
	h := NewPagesHandler()

	for _, slug := range []string{"faq", "support", "privacy"} {
		c, rec := newTestContext(http.MethodGet, "/v1/pages/"+slug, "")
		c.SetParamNames("slug")
		c.SetParamValues(slug)

		if err := h.Get(c); err != nil {
			t.Fatalf("Get(%s) returned error: %v", slug, err)
		}

		var resp pageResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decoding %s: %v", slug, err)
		}
		if resp.Slug != slug || resp.Title == "" || resp.Body == "" {
			t.Fatalf("incomplete page %s: %+v", slug, resp)
		}
	}
}

func TestPagesHandler_Get_UnknownSlug(t *testing.T) {
	h := NewPagesHandler()

	c, _ := newTestContext(http.MethodGet, "/v1/pages/careers", "")
	c.SetParamNames("slug")
	c.SetParamValues("careers")

	err := h.Get(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown page, got %v", err)
	}
}
