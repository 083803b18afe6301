package handlers

import (
	"github.com/dmitrymomot/lizardui/pkg/view"
)

// TestView renders a fixed name and a method that counts its calls.
type TestView struct {
	Name  string
	calls int
}

// TemplateName names the testview template.
func (*TestView) TemplateName() string { return "lizard_ui/testview.html" }

// Run sets the fixed name.
func (v *TestView) Run(*view.Invocation) error {
	v.Name = "reinout"
	return nil
}

// Method returns how often it has been called on this instance.
func (v *TestView) Method() int {
	v.calls++
	return v.calls
}

// TestBox shows the name taken from the URL.
type TestBox struct {
	Name string
}

// TemplateName names the testbox template.
func (*TestBox) TemplateName() string { return "lizard_ui/testbox.html" }

// Run takes Name from the name route parameter.
func (v *TestBox) Run(inv *view.Invocation) error {
	v.Name = inv.Kwarg("name")
	return nil
}

// Column is a layout column holding box URLs.
type Column struct {
	ID      string
	Class   string
	BoxURLs []string
}

// TestContainer lays out test boxes in two columns.
type TestContainer struct {
	boxURLs []string
	columns []Column
}

// TemplateName names the testcontainer template.
func (*TestContainer) TemplateName() string { return "lizard_ui/testcontainer.html" }

// Run reverses the testbox URLs for the listing and both columns.
func (v *TestContainer) Run(inv *view.Invocation) error {
	box := func(names ...string) ([]string, error) {
		urls := make([]string, 0, len(names))
		for _, name := range names {
			u, err := inv.Reverse("lizard_ui.testbox", map[string]string{"name": name})
			if err != nil {
				return nil, err
			}
			urls = append(urls, u)
		}
		return urls, nil
	}

	var err error
	if v.boxURLs, err = box("Reinout", "Jack", "Alexandr", "Coen"); err != nil {
		return err
	}
	first, err := box("reinout")
	if err != nil {
		return err
	}
	second, err := box("Jack", "Alexandr", "Coen")
	if err != nil {
		return err
	}
	v.columns = []Column{
		{ID: "column_1", Class: "one-third", BoxURLs: first},
		{ID: "column_2", Class: "two-thirds", BoxURLs: second},
	}
	return nil
}

// BoxURLs returns the URL of every test box.
func (v *TestContainer) BoxURLs() []string { return v.boxURLs }

// ContainerColumns returns the column layout.
func (v *TestContainer) ContainerColumns() []Column { return v.columns }
