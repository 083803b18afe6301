package templates_test

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lizardui/pkg/templates"
)

func TestDefaultTemplatesParse(t *testing.T) {
	t.Parallel()

	e, err := templates.New()
	require.NoError(t, err)

	for _, name := range []string{
		"lizard_ui/lizardbase.html",
		"lizard_ui/login.html",
		"lizard_ui/breadcrumbs.html",
		"lizard_ui/testview.html",
		"lizard_ui/testbox.html",
		"lizard_ui/testcontainer.html",
	} {
		_, err := e.Lookup(name)
		assert.NoError(t, err, name)
	}
}

func TestRenderLogin(t *testing.T) {
	t.Parallel()

	e, err := templates.New()
	require.NoError(t, err)

	out, err := e.Render("lizard_ui/login.html", map[string]any{"next": "/home"})
	require.NoError(t, err)
	assert.Contains(t, out, `name="next" value="/home"`)
	assert.Contains(t, out, `<title>Log in - Lizard</title>`)
}

func TestOverrideSourceWins(t *testing.T) {
	t.Parallel()

	override := fstest.MapFS{
		"lizard_ui/testbox.html": {Data: []byte("custom {{ name }}")},
		"app/page.html":          {Data: []byte(`{% extends "lizard_ui/lizardbase.html" %}{% block content %}page{% endblock %}`)},
	}
	e, err := templates.New(templates.WithFS(override))
	require.NoError(t, err)

	out, err := e.Render("lizard_ui/testbox.html", map[string]any{"name": "box"})
	require.NoError(t, err)
	assert.Equal(t, "custom box", out)

	out, err = e.Render("app/page.html", nil)
	require.NoError(t, err)
	assert.Contains(t, out, "page")
	assert.Contains(t, out, "<html")
}

func TestMissingTemplate(t *testing.T) {
	t.Parallel()

	e, err := templates.New()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = e.RenderTemplate(context.Background(), &buf, "nope.html", nil)
	assert.ErrorIs(t, err, templates.ErrTemplateNotFound)
	assert.Zero(t, buf.Len())
}

func TestRenderErrorWritesNothing(t *testing.T) {
	t.Parallel()

	broken := fstest.MapFS{"broken.html": {Data: []byte("before {{ value|nosuchfilter }}")}}
	e, err := templates.New(templates.WithFS(broken))
	require.NoError(t, err)

	var buf bytes.Buffer
	err = e.RenderTemplate(context.Background(), &buf, "broken.html", nil)
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestCanceledContext(t *testing.T) {
	t.Parallel()

	e, err := templates.New()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = e.RenderTemplate(ctx, &bytes.Buffer{}, "lizard_ui/login.html", nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFilters(t *testing.T) {
	t.Parallel()

	src := fstest.MapFS{
		"md.html":   {Data: []byte("{{ body|markdown }}")},
		"safe.html": {Data: []byte("{{ body|sanitize }}")},
	}
	e, err := templates.New(templates.WithFS(src))
	require.NoError(t, err)

	out, err := e.Render("md.html", map[string]any{"body": "**bold** <script>alert(1)</script>"})
	require.NoError(t, err)
	assert.Contains(t, out, "<strong>bold</strong>")
	assert.NotContains(t, out, "<script>")

	out, err = e.Render("safe.html", map[string]any{"body": `<a href="/x" onclick="evil()">x</a>`})
	require.NoError(t, err)
	assert.Contains(t, out, `href="/x"`)
	assert.NotContains(t, out, "onclick")
}

func TestGlobals(t *testing.T) {
	t.Parallel()

	src := fstest.MapFS{"g.html": {Data: []byte("{{ site }}")}}
	e, err := templates.New(templates.WithFS(src), templates.WithGlobals(map[string]any{"site": "Lizard"}))
	require.NoError(t, err)

	out, err := e.Render("g.html", nil)
	require.NoError(t, err)
	assert.Equal(t, "Lizard", out)
}

func TestConcurrentLookupSharesTemplate(t *testing.T) {
	t.Parallel()

	e, err := templates.New()
	require.NoError(t, err)

	const n = 16
	var wg sync.WaitGroup
	results := make([]any, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tpl, err := e.Lookup("lizard_ui/breadcrumbs.html")
			assert.NoError(t, err)
			results[i] = tpl
		}()
	}
	wg.Wait()

	for _, r := range results[1:] {
		assert.Same(t, results[0], r)
	}
}

func TestExtendsResolvesFromRoot(t *testing.T) {
	t.Parallel()

	override := fstest.MapFS{
		"app/deep/nested/page.html": {Data: []byte(`{% extends "lizard_ui/lizardbase.html" %}{% block content %}{% include "app/part.html" %}{% endblock %}`)},
		"app/part.html":             {Data: []byte("part")},
	}
	e, err := templates.New(templates.WithFS(override))
	require.NoError(t, err)

	for _, name := range []string{"lizard_ui/breadcrumbs.html", "lizard_ui/testview.html", "lizard_ui/testcontainer.html"} {
		out, err := e.Render(name, nil)
		require.NoError(t, err, name)
		assert.Contains(t, out, "<html", name)
	}

	out, err := e.Render("app/deep/nested/page.html", nil)
	require.NoError(t, err)
	assert.Contains(t, out, `<div id="content">`)
	assert.Contains(t, out, "part")
}
