package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"config.md":            {Data: []byte("# Config\n\nApps are tables.")},
		"option-check-only.md": {Data: []byte("Check only mode")},
		"paths.txt":            {Data: []byte("Path tokens")},
		"notes.json":           {Data: []byte("{}")},
		"nested/extra.md":      {Data: []byte("Nested topic")},
	}
}

func TestTopicManager_ScanTopics(t *testing.T) {
	tm := New(testFS())
	require.NoError(t, tm.scanTopics())

	tests := []struct {
		name     string
		expected bool
		content  string
	}{
		{"config", true, "# Config\n\nApps are tables."},
		{"paths", true, "Path tokens"},
		{"extra", true, "Nested topic"},
		{"notes", false, ""},
		{"check-only", true, "Check only mode"},
		{"--check-only", true, "Check only mode"},
		{"missing", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topic, exists := tm.GetTopic(tt.name)
			assert.Equal(t, tt.expected, exists)
			if exists {
				assert.Equal(t, tt.content, topic.Content)
			}
		})
	}

	assert.Equal(t, []string{"config", "extra", "option-check-only", "paths"}, tm.ListTopics())
}

func TestTopicManager_CustomExtensions(t *testing.T) {
	tm := NewWithOptions(testFS(), Options{Extensions: []string{".json"}})
	require.NoError(t, tm.scanTopics())

	assert.Equal(t, []string{"notes"}, tm.ListTopics())
}

func TestWriteTopicList(t *testing.T) {
	tm := New(testFS())
	require.NoError(t, tm.scanTopics())

	var buf bytes.Buffer
	tm.WriteTopicList(&buf, "dotty")

	got := buf.String()
	assert.Contains(t, got, "General topics:\n  config\n  extra\n  paths\n")
	assert.Contains(t, got, "Option topics:\n  --check-only\n")
	assert.Contains(t, got, "Use 'dotty help <topic>'")

	empty := New(fstest.MapFS{})
	require.NoError(t, empty.scanTopics())
	buf.Reset()
	empty.WriteTopicList(&buf, "dotty")
	assert.Equal(t, "No help topics available.\n", buf.String())
}

func TestInitialize(t *testing.T) {
	newRoot := func() (*cobra.Command, *bytes.Buffer) {
		root := &cobra.Command{Use: "dotty", Run: func(*cobra.Command, []string) {}}
		root.AddCommand(&cobra.Command{Use: "list", Short: "List apps", Run: func(*cobra.Command, []string) {}})
		buf := &bytes.Buffer{}
		root.SetOut(buf)
		root.SetErr(buf)
		return root, buf
	}

	t.Run("topic", func(t *testing.T) {
		root, buf := newRoot()
		_, err := Initialize(root, testFS())
		require.NoError(t, err)

		root.SetArgs([]string{"help", "paths"})
		require.NoError(t, root.Execute())
		assert.Equal(t, "Path tokens", buf.String())
	})

	t.Run("topic list", func(t *testing.T) {
		root, buf := newRoot()
		_, err := Initialize(root, testFS())
		require.NoError(t, err)

		root.SetArgs([]string{"help", "topics"})
		require.NoError(t, root.Execute())
		assert.Contains(t, buf.String(), "Available help topics:")
	})

	t.Run("command help", func(t *testing.T) {
		root, buf := newRoot()
		_, err := Initialize(root, testFS())
		require.NoError(t, err)

		root.SetArgs([]string{"help", "list"})
		require.NoError(t, root.Execute())
		assert.Contains(t, buf.String(), "List apps")
	})
}

func TestPlainRenderer(t *testing.T) {
	r := &PlainRenderer{}
	assert.Equal(t, "# x", r.Render("# x", ".md"))
}

func TestGlamourRenderer_NonMarkdownUnchanged(t *testing.T) {
	r := NewGlamourRenderer()
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))
	assert.NotEmpty(t, r.Render("# Title", ".md"))
}

func TestGlamourRenderer_Styles(t *testing.T) {
	tests := []struct {
		name  string
		style string
	}{
		{"auto", "auto"},
		{"empty", ""},
		{"standard", "notty"},
		{"missing style file falls back to raw", "/nonexistent/style.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &GlamourRenderer{Style: tt.style, Width: 40}
			out := r.Render("# Paths\n\nComponents are resolved one at a time.", ".md")
			assert.Contains(t, out, "Paths")
		})
	}
}
