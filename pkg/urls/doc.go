// Package urls maps symbolic route names to concrete request paths.
//
// Routes are registered with the chi pattern they were mounted under:
//
//	r := urls.New()
//	r.Register("lizard_ui.testbox", "/ui/testbox/{name}/")
//
//	path, err := r.Reverse("lizard_ui.testbox", map[string]string{"name": "Jack"})
//	// path == "/ui/testbox/Jack/"
//
// Paths are built by gorilla/mux from the same pattern syntax chi routes
// with. Both plain placeholders ({name}) and regexp placeholders ({id:[0-9]+}) are
// supported. A value that does not satisfy the placeholder's regexp, a
// missing value, or an unknown name yields [ErrNoReverseMatch].
package urls
