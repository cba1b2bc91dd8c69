package dialogue

// Fallback pairs a corpus source with a matcher so callers only hand over
// the raw user text.
type Fallback struct {
	source  *Source
	matcher *Matcher
}

func NewFallback(source *Source, matcher *Matcher) *Fallback {
	return &Fallback{source: source, matcher: matcher}
}

func (f *Fallback) Match(raw string) (string, bool) {
	return f.matcher.Match(raw, f.source.Entries())
}
