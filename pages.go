package main

import "strings"

// Page is one of the fixed views selected from the sidebar.
type Page string

const (
	PageProfile    Page = "profile"
	PageProjects   Page = "projects"
	PageExperience Page = "experience"
	PageSkills     Page = "skills"
	PageContact    Page = "contact"
)

type pageMeta struct {
	page     Page
	title    string
	icon     string
	subtitle string
}

// Sidebar order.
var pageIndex = []pageMeta{
	{PageProfile, "Profile", "👤", ""},
	{PageProjects, "Projects", "📋", "A showcase of my AI and business transformation projects"},
	{PageExperience, "Experience", "💼", "Where I have applied AI to real business problems"},
	{PageSkills, "Skills", "🏆", "Technical and business capabilities"},
	{PageContact, "Contact", "✉️", "Let's talk about how AI can help your business"},
}

// Pages lists every page in sidebar order.
func Pages() []Page {
	out := make([]Page, len(pageIndex))
	for i, m := range pageIndex {
		out[i] = m.page
	}
	return out
}

// ParsePage maps a sidebar label or slug to a page. An empty label selects
// the profile.
func ParsePage(label string) (Page, bool) {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		return PageProfile, true
	}
	for _, m := range pageIndex {
		if string(m.page) == label {
			return m.page, true
		}
	}
	return "", false
}

func (p Page) meta() pageMeta {
	for _, m := range pageIndex {
		if m.page == p {
			return m
		}
	}
	return pageMeta{page: p, title: string(p)}
}

func (p Page) Title() string    { return p.meta().title }
func (p Page) Icon() string     { return p.meta().icon }
func (p Page) Subtitle() string { return p.meta().subtitle }

// Path is the URL of the full page.
func (p Page) Path() string {
	if p == PageProfile {
		return "/"
	}
	return "/" + string(p)
}

// File is where the page lands in a static export.
func (p Page) File() string {
	if p == PageProfile {
		return "index.html"
	}
	return string(p) + "/index.html"
}
