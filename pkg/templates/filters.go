package templates

import (
	"bytes"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	filtersOnce sync.Once
	filtersErr  error
	ugcPolicy   *bluemonday.Policy
	markdown    goldmark.Markdown
)

// registerFilters adds the package filters to pongo2's global filter table.
func registerFilters() error {
	filtersOnce.Do(func() {
		ugcPolicy = bluemonday.UGCPolicy()
		ugcPolicy.RequireNoFollowOnLinks(true)
		markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

		for name, fn := range map[string]pongo2.FilterFunction{
			"sanitize": filterSanitize,
			"markdown": filterMarkdown,
		} {
			if pongo2.FilterExists(name) {
				continue
			}
			if err := pongo2.RegisterFilter(name, fn); err != nil {
				filtersErr = err
				return
			}
		}
	})
	return filtersErr
}

func filterSanitize(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsSafeValue(ugcPolicy.Sanitize(in.String())), nil
}

func filterMarkdown(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(in.String()), &buf); err != nil {
		return nil, &pongo2.Error{Sender: "filter:markdown", OrigError: err}
	}
	return pongo2.AsSafeValue(ugcPolicy.SanitizeReader(&buf).String()), nil
}
