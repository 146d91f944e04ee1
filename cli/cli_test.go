package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/goto/gossip/core/actor"
	"github.com/goto/gossip/core/feed"
	"github.com/goto/gossip/core/note"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	registry, err := newRegistry()
	require.NoError(t, err)
	assert.Equal(t, []string{"subscription", "hashtag", "language"}, registry.Names())
}

func TestFiltersHelp(t *testing.T) {
	long := filtersHelp["long"]
	assert.Contains(t, long, "tag:go tag:sql finds notes\ntagged with both")
	assert.Contains(t, long, "filters given without a value\nsuch as note-types: or actor-types:")
}

func TestRootCommand(t *testing.T) {
	cmd := New(&Config{})

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"server", "config", "search", "version"} {
		assert.Contains(t, names, want)
	}

	server, _, err := cmd.Find([]string{"server", "migrate"})
	require.NoError(t, err)
	assert.NotNil(t, server.Flags().Lookup("down"))

	search, _, err := cmd.Find([]string{"search"})
	require.NoError(t, err)
	for _, flag := range []string{"page", "lang", "actor", "out"} {
		assert.NotNil(t, search.Flags().Lookup(flag), flag)
	}
}

func TestSearchRequiresQuery(t *testing.T) {
	cmd := New(&Config{})
	cmd.SetArgs([]string{"search"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	assert.EqualError(t, err, "accepts 1 arg(s), received 0")
}

func TestSearchRejectsUnknownOutput(t *testing.T) {
	cmd := New(&Config{})
	cmd.SetArgs([]string{"search", "hello", "-o", "csv"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	assert.EqualError(t, err, `error value "csv" not recognized, only support "table json"`)
}

func TestConfigList(t *testing.T) {
	cfg := &Config{LogLevel: "debug"}
	cfg.DB.Name = "gossip_test"
	cfg.Service.Port = 9090

	var out bytes.Buffer
	cmd := New(cfg)
	cmd.SetArgs([]string{"config", "list"})
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "log_level: debug")
	assert.Contains(t, out.String(), "name: gossip_test")
	assert.Contains(t, out.String(), "port: 9090")
}

func TestLoadConfigFromFlag(t *testing.T) {
	t.Run("should load values from the given file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "gossip.yaml")
		content := "log_level: warn\nservice:\n  port: 7070\n  search:\n    page_size: 5\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		var cfg Config
		require.NoError(t, LoadConfigFromFlag(path, &cfg))
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, 7070, cfg.Service.Port)
		assert.Equal(t, 5, cfg.Service.Search.PageSize)
	})

	t.Run("should fail when the file does not exist", func(t *testing.T) {
		var cfg Config
		err := LoadConfigFromFlag(filepath.Join(t.TempDir(), "missing.yaml"), &cfg)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestPrintSearchResult(t *testing.T) {
	content := "hello   world"
	res := feed.SearchResult{
		Notes: feed.ResultPage[note.Note]{Domain: feed.DomainNote, Records: []note.Note{
			{ID: 11, ActorID: 2, Content: &content, IsLocal: true},
			{ID: 10, ActorID: 2},
		}},
		Actors: feed.ResultPage[actor.Actor]{Domain: feed.DomainActor, Records: []actor.Actor{
			{ID: 2, Nickname: "alice", Kind: actor.KindPerson, FullName: "Alice"},
		}},
	}

	var out bytes.Buffer
	printSearchResult(&out, res)
	assert.Contains(t, out.String(), "Notes (2)")
	assert.Contains(t, out.String(), "hello world")
	assert.Contains(t, out.String(), "Actors (1)")
	assert.Contains(t, out.String(), "alice")
}

func TestEllipsis(t *testing.T) {
	assert.Equal(t, "short", ellipsis("short", 10))
	assert.Equal(t, "a b", ellipsis("a\n  b", 10))
	assert.Equal(t, "abcd…", ellipsis("abcdefgh", 5))
}
