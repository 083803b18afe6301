package internal

import "fmt"

// ExtractorSource reads one request value. It reports false when the value
// is absent.
type ExtractorSource = func(Context) (string, bool)

// Extractor tries sources in order and returns the first non-empty value.
//
// Example:
//
//	next := lizardui.NewExtractor(lizardui.FromPostForm("next"), lizardui.FromQuery("next"))
//	if v, ok := next.Extract(c); ok { ... }
type Extractor struct {
	sources []ExtractorSource
}

// NewExtractor creates an Extractor over sources.
func NewExtractor(sources ...ExtractorSource) Extractor {
	return Extractor{sources: sources}
}

// Extract returns the first non-empty value, or ("", false).
func (e Extractor) Extract(c Context) (string, bool) {
	for _, src := range e.sources {
		if v, ok := src(c); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

func nonEmpty(v string) (string, bool) {
	return v, v != ""
}

// FromHeader reads a request header.
func FromHeader(name string) ExtractorSource {
	return func(c Context) (string, bool) { return nonEmpty(c.Header(name)) }
}

// FromQuery reads a query string parameter.
func FromQuery(name string) ExtractorSource {
	return func(c Context) (string, bool) { return nonEmpty(c.Query(name)) }
}

// FromParam reads a route parameter.
func FromParam(name string) ExtractorSource {
	return func(c Context) (string, bool) { return nonEmpty(c.Param(name)) }
}

// FromForm reads a form value from the body or the query string.
func FromForm(name string) ExtractorSource {
	return func(c Context) (string, bool) { return nonEmpty(c.Form(name)) }
}

// FromPostForm reads a form value from the request body only.
func FromPostForm(name string) ExtractorSource {
	return func(c Context) (string, bool) {
		v, _ := c.PostForm(name)
		return nonEmpty(v)
	}
}

// FromSession reads a session value. Non-string values are formatted with fmt.Sprint.
func FromSession(key string) ExtractorSource {
	return func(c Context) (string, bool) {
		sess, err := c.Session()
		if err != nil || sess == nil {
			return "", false
		}
		val, ok := sess.GetValue(key)
		if !ok || val == nil {
			return "", false
		}
		if s, ok := val.(string); ok {
			return nonEmpty(s)
		}
		return nonEmpty(fmt.Sprint(val))
	}
}
