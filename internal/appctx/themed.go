package appctx

import "github.com/gdamore/tcell/v2"

// ThemedState is the themed-state struct a widget embeds to gain theme
// accessors by composition. It remembers its registration handle so
// teardown is a single Release call.
type ThemedState struct {
	ctx    *Context
	handle Handle
	bound  bool
}

// Attach registers owner with the context and returns its themed state.
func Attach(ctx *Context, owner Themeable) *ThemedState {
	return &ThemedState{ctx: ctx, handle: ctx.Register(owner), bound: true}
}

// Release unregisters the owner. Safe to call more than once.
func (s *ThemedState) Release() {
	if !s.bound {
		return
	}
	s.ctx.Unregister(s.handle)
	s.bound = false
}

// Color resolves a token, degrading to the catalog's generic fallback if
// resolution hits structural corruption; widgets should render something
// rather than crash.
func (s *ThemedState) Color(token string) string {
	v, err := s.ctx.Color(token)
	if err != nil {
		return s.ctx.Theme().ColorOr("colors.background", "#1e1e1e")
	}
	return v
}

// TcellColor resolves a token as a tcell.Color for direct use in styles.
func (s *ThemedState) TcellColor(token string) tcell.Color {
	c, err := s.ctx.TcellColor(token)
	if err != nil {
		return tcell.ColorDefault
	}
	return c
}

// Context exposes the underlying theme context.
func (s *ThemedState) Context() *Context { return s.ctx }
