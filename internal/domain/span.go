package domain

import (
	"context"
	"sync"
	"time"
)

// Span times one named phase of an operation.
type Span struct {
	Name    string `json:"name"`
	startTs time.Time
	Elapsed *int64 `json:"elapsedMs"`
}

func (s *Span) End() {
	if s != nil && s.Elapsed == nil {
		t := time.Since(s.startTs).Milliseconds()
		s.Elapsed = &t
	}
}

type contextKey string

const ContextProfileKey contextKey = "performanceProfile"

// Profile is the ordered list of spans recorded while serving one request
// or job. A nil *Profile is valid and records nothing, so services can
// profile unconditionally.
type Profile struct {
	mu      sync.Mutex
	spans   []*Span
	startTs time.Time
	TotalMs *int64
}

func NewProfile() (newProfile *Profile, endNewProfile func()) {
	newProfile = &Profile{
		spans:   []*Span{},
		startTs: time.Now(),
	}
	return newProfile, newProfile.End
}

func WithProfile(ctx context.Context, p *Profile) context.Context {
	return context.WithValue(ctx, ContextProfileKey, p)
}

// ProfileFromContext returns the profile attached to ctx, or nil.
func ProfileFromContext(ctx context.Context) *Profile {
	if ctx == nil {
		return nil
	}
	p, _ := ctx.Value(ContextProfileKey).(*Profile)
	return p
}

func (p *Profile) End() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.spans) > 0 {
		p.spans[len(p.spans)-1].End()
	}
	if p.TotalMs == nil {
		t := time.Since(p.startTs).Milliseconds()
		p.TotalMs = &t
	}
}

// StartNewSpan ends the previous span and begins a new one.
func (p *Profile) StartNewSpan(name string) (newSpan *Span, endSpan func()) {
	newSpan = &Span{
		Name:    name,
		startTs: time.Now(),
	}
	if p == nil {
		return newSpan, newSpan.End
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.spans) > 0 {
		p.spans[len(p.spans)-1].End()
	}
	p.spans = append(p.spans, newSpan)
	return newSpan, newSpan.End
}

// Spans returns a copy of the recorded spans.
func (p *Profile) Spans() []Span {
	if p == nil {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Span, 0, len(p.spans))
	for _, s := range p.spans {
		out = append(out, *s)
	}
	return out
}

// LogFields flattens the profile into key/value pairs for a sugared logger,
// one "<span>Ms" key per span.
func (p *Profile) LogFields() []any {
	if p == nil {
		return nil
	}
	fields := []any{}
	for _, s := range p.Spans() {
		if s.Elapsed != nil {
			fields = append(fields, s.Name+"Ms", *s.Elapsed)
		}
	}
	return fields
}
