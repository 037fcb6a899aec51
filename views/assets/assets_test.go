package assets

import (
	"io/fs"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"topiray/views/theme"
)

func TestHandlerServesStylesheet(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/"+StylesheetName, nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/css") {
		t.Fatalf("expected css content type, got %q", ct)
	}
	if !strings.Contains(rr.Body.String(), ".topiray-button") {
		t.Fatal("expected component rules in style sheet")
	}
}

func TestStylesheetOnlyReferencesPublishedProperties(t *testing.T) {
	t.Parallel()

	data, err := fs.ReadFile(FS(), StylesheetName)
	if err != nil {
		t.Fatalf("read style sheet: %v", err)
	}
	published := make(map[string]bool)
	for _, key := range theme.Keys() {
		published[key] = true
	}
	for _, match := range regexp.MustCompile(`var\((--[a-z0-9-]+)\)`).FindAllStringSubmatch(string(data), -1) {
		if !published[match[1]] {
			t.Fatalf("style sheet references unpublished property %s", match[1])
		}
	}
}
