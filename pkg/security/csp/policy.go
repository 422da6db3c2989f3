// Package csp provides a builder for Content-Security-Policy headers.
//
// CSP helps prevent cross-site scripting (XSS), clickjacking, and other code
// injection attacks by declaring which sources are trusted for loading
// content. The portfolio frontend injects its own stylesheet and loads badge
// images from shields.io, so the default policy must allow both.
package csp

import (
	"fmt"
	"strings"
)

// CSPBuilder provides a fluent interface for constructing
// Content-Security-Policy header values.
//
// Example:
//
//	policy := NewCSPBuilder().
//	    DefaultSrc("'self'").
//	    StyleSrc("'self'", "'unsafe-inline'").
//	    Build()
//
// CSPBuilder is not thread-safe. Create separate instances for concurrent use.
type CSPBuilder struct {
	directives map[string][]string
	reportOnly bool
}

// NewCSPBuilder creates a new CSPBuilder with no directives set.
func NewCSPBuilder() *CSPBuilder {
	return &CSPBuilder{
		directives: make(map[string][]string),
	}
}

// DefaultSrc sets the default-src directive, the fallback for fetch
// directives that are not explicitly set.
func (b *CSPBuilder) DefaultSrc(sources ...string) *CSPBuilder {
	b.directives["default-src"] = sources
	return b
}

// ScriptSrc sets the script-src directive, controlling which sources may
// execute JavaScript.
func (b *CSPBuilder) ScriptSrc(sources ...string) *CSPBuilder {
	b.directives["script-src"] = sources
	return b
}

// StyleSrc sets the style-src directive, controlling stylesheet sources.
func (b *CSPBuilder) StyleSrc(sources ...string) *CSPBuilder {
	b.directives["style-src"] = sources
	return b
}

// ImgSrc sets the img-src directive, controlling image sources.
func (b *CSPBuilder) ImgSrc(sources ...string) *CSPBuilder {
	b.directives["img-src"] = sources
	return b
}

// FontSrc sets the font-src directive.
func (b *CSPBuilder) FontSrc(sources ...string) *CSPBuilder {
	b.directives["font-src"] = sources
	return b
}

// ConnectSrc sets the connect-src directive, controlling which URLs can be
// reached from script interfaces (fetch, XMLHttpRequest, WebSocket).
func (b *CSPBuilder) ConnectSrc(sources ...string) *CSPBuilder {
	b.directives["connect-src"] = sources
	return b
}

// FrameAncestors sets the frame-ancestors directive. "'none'" prevents all
// framing and is the recommended clickjacking defense.
func (b *CSPBuilder) FrameAncestors(sources ...string) *CSPBuilder {
	b.directives["frame-ancestors"] = sources
	return b
}

// FormAction sets the form-action directive, controlling which URLs can be
// used as form submission targets.
func (b *CSPBuilder) FormAction(sources ...string) *CSPBuilder {
	b.directives["form-action"] = sources
	return b
}

// BaseUri sets the base-uri directive, preventing attackers from changing
// the base URL of relative URLs via an injected <base> element.
func (b *CSPBuilder) BaseUri(sources ...string) *CSPBuilder {
	b.directives["base-uri"] = sources
	return b
}

// ObjectSrc sets the object-src directive. "'none'" is recommended.
func (b *CSPBuilder) ObjectSrc(sources ...string) *CSPBuilder {
	b.directives["object-src"] = sources
	return b
}

// ReportOnly toggles report-only mode. In report-only mode violations are
// reported but not enforced, which is useful when trying out a new policy.
func (b *CSPBuilder) ReportOnly(enabled bool) *CSPBuilder {
	b.reportOnly = enabled
	return b
}

// Build generates the CSP header value. Directives are emitted in a fixed
// order for stable output; sources within a directive are space-separated.
func (b *CSPBuilder) Build() string {
	if len(b.directives) == 0 {
		return ""
	}

	directiveOrder := []string{
		"default-src",
		"script-src",
		"style-src",
		"img-src",
		"font-src",
		"connect-src",
		"frame-ancestors",
		"form-action",
		"base-uri",
		"object-src",
	}

	var parts []string
	for _, directive := range directiveOrder {
		if sources, exists := b.directives[directive]; exists && len(sources) > 0 {
			parts = append(parts, fmt.Sprintf("%s %s", directive, strings.Join(sources, " ")))
		}
	}

	return strings.Join(parts, "; ")
}

// HeaderName returns the header name matching the report-only setting.
func (b *CSPBuilder) HeaderName() string {
	if b.reportOnly {
		return "Content-Security-Policy-Report-Only"
	}
	return "Content-Security-Policy"
}

// PortfolioPolicy returns the policy served alongside the portfolio frontend.
//
// The frontend injects an inline stylesheet and renders tech-stack badges from
// img.shields.io, so style-src allows 'unsafe-inline' and img-src allows the
// badge host. Everything else stays same-origin.
func PortfolioPolicy() *CSPBuilder {
	return NewCSPBuilder().
		DefaultSrc("'self'").
		ScriptSrc("'self'").
		StyleSrc("'self'", "'unsafe-inline'").
		ImgSrc("'self'", "data:", "https://img.shields.io").
		FontSrc("'self'", "data:").
		ConnectSrc("'self'").
		FrameAncestors("'none'").
		BaseUri("'self'").
		FormAction("'self'").
		ObjectSrc("'none'")
}

// StrictPolicy returns a restrictive policy for JSON-only API endpoints that
// never serve HTML.
func StrictPolicy() *CSPBuilder {
	return NewCSPBuilder().
		DefaultSrc("'none'").
		ConnectSrc("'self'").
		FrameAncestors("'none'").
		BaseUri("'self'").
		FormAction("'none'").
		ObjectSrc("'none'")
}
