package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveID(t *testing.T) {
	assert.Equal(t, "hero", DeriveID("hero.md"))
	assert.Equal(t, "hero", DeriveID("sections/hero.md"))
	assert.Equal(t, "contact-info", DeriveID("personal/contact-info.json"))
	assert.Equal(t, "plain", DeriveID("plain"))
}

func TestLoadContent_ParsesFrontmatter(t *testing.T) {
	dir := t.TempDir()
	raw := "---\ntitle: Hero\norder: 1\n---\nWelcome.\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hero.md"), []byte(raw), 0644))

	loader := NewLoader(&DirFetcher{Root: dir})
	record, err := loader.LoadContent(context.Background(), "hero.md")

	require.NoError(t, err)
	assert.Equal(t, "hero", record.ID)
	assert.Equal(t, "Welcome.", record.Body)
	assert.Equal(t, "Hero", record.Metadata["title"])
	assert.Equal(t, 1, record.Metadata["order"])
	assert.Equal(t, raw, record.RawSource)
}

func TestLoadContent_MissingFile(t *testing.T) {
	loader := NewLoader(&DirFetcher{Root: t.TempDir()})

	_, err := loader.LoadContent(context.Background(), "absent.md")

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "absent.md", fetchErr.Path)
}

func TestHTTPFetcher_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer server.Close()

	loader := NewLoader(NewFetcher(server.URL))
	_, err := loader.LoadContent(context.Background(), "hero.md")

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "hero.md", fetchErr.Path)
	assert.Equal(t, http.StatusInternalServerError, fetchErr.Status)
}

func TestLoadConfig_OverHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/config/site.json", r.URL.Path)
		w.Write([]byte(`{"version": "1.0"}`))
	}))
	defer server.Close()

	loader := NewLoader(NewFetcher(server.URL))

	var out struct {
		Version string `json:"version"`
	}
	require.NoError(t, loader.LoadConfig(context.Background(), "config/site.json", &out))
	assert.Equal(t, "1.0", out.Version)
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "site.json"), []byte("{nope"), 0644))

	loader := NewLoader(&DirFetcher{Root: dir})

	var out map[string]any
	err := loader.LoadConfig(context.Background(), "site.json", &out)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
}

func TestLoadMany_PreservesInputOrder(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".md"), []byte("body "+name), 0644))
	}

	loader := NewLoader(&DirFetcher{Root: dir})
	records, err := loader.LoadMany(context.Background(), []string{"c.md", "a.md", "b.md"})

	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "c", records[0].ID)
	assert.Equal(t, "a", records[1].ID)
	assert.Equal(t, "b", records[2].ID)
}

func TestLoadMany_FailsAsAWhole(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("ok"), 0644))

	loader := NewLoader(&DirFetcher{Root: dir})
	records, err := loader.LoadMany(context.Background(), []string{"a.md", "missing.md"})

	require.Error(t, err)
	assert.Nil(t, records)
}
