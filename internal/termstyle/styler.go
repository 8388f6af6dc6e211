package termstyle

// Styler hands out style tokens. Tokens are plain strings meant to be
// concatenated with text; Reset closes everything opened before it.
type Styler interface {
	Bold() string
	Color(p Palette) string
	Reset() string
}

type resolvedStyler struct {
	bold   string
	reset  string
	colors map[Palette]string
	r      Resolver
}

// New returns a Styler backed by r. Resolved tokens are cached, so the
// resolver is queried at most once per capability and color.
func New(r Resolver) Styler {
	if r == nil {
		r = NoneResolver{}
	}
	s := &resolvedStyler{
		bold:   r.Resolve(CapBold),
		reset:  r.Resolve(CapReset),
		colors: make(map[Palette]string, 5),
		r:      r,
	}
	for _, p := range []Palette{Red, Green, Orange, Blue, Purple} {
		s.colors[p] = r.Resolve(CapForeground, int(p))
	}
	return s
}

// Plain returns a Styler whose tokens are all empty.
func Plain() Styler {
	return New(NoneResolver{})
}

func (s *resolvedStyler) Bold() string  { return s.bold }
func (s *resolvedStyler) Reset() string { return s.reset }

func (s *resolvedStyler) Color(p Palette) string {
	if tok, ok := s.colors[p]; ok {
		return tok
	}
	tok := s.r.Resolve(CapForeground, int(p))
	s.colors[p] = tok
	return tok
}
