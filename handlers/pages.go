package handlers

import (
	"github.com/dmitrymomot/lizardui"
	"github.com/dmitrymomot/lizardui/pkg/view"
)

// Pages serves the example and demo pages.
type Pages struct{}

// NewPages creates the page handlers.
func NewPages() *Pages {
	return &Pages{}
}

// Routes registers the pages and names the reversible ones.
func (p *Pages) Routes(r lizardui.Router) {
	r.GET("/breadcrumbs/", view.Handler(func() view.View { return &breadcrumbs{} }))
	r.Name("lizard_ui.breadcrumbs", "/breadcrumbs/")

	screen := view.Handler(func() view.View { return &applicationScreen{} })
	r.GET("/screen/", screen)
	r.GET("/screen/{slug}/", screen)
	r.Name("lizard_ui.screen", "/screen/{slug}/")

	r.GET("/testview/", view.Handler(func() view.View { return &TestView{} }))
	r.GET("/testbox/{name}/", view.Handler(func() view.View { return &TestBox{} }))
	r.Name("lizard_ui.testbox", "/testbox/{name}/")
	r.GET("/testcontainer/", view.Handler(func() view.View { return &TestContainer{} }))
}

// Crumb is one breadcrumb entry.
type Crumb struct {
	Name string
	URL  string
}

type breadcrumbs struct{}

func (*breadcrumbs) TemplateName() string { return "lizard_ui/breadcrumbs.html" }

func (*breadcrumbs) Run(inv *view.Invocation) error {
	return inv.Data.Set("crumbs", []map[string]string{
		{"name": "name", "url": "url"},
		{"name": "name2", "url": "url2"},
	})
}

type applicationScreen struct{}

func (*applicationScreen) TemplateName() string { return "lizard_ui/lizardbase.html" }

func (*applicationScreen) Run(inv *view.Invocation) error {
	var slug any
	if s := inv.Kwarg("slug"); s != "" {
		slug = s
	}
	return inv.Data.Set("application_screen_slug", slug)
}
