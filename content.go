package main

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

//go:embed content/portfolio.yaml
var defaultContent []byte

// Portfolio is everything the site shows. It is loaded once at startup and
// never mutated afterwards.
type Portfolio struct {
	Owner      Owner        `yaml:"owner" json:"owner"`
	About      []string     `yaml:"about" json:"about"`
	Metrics    []Metric     `yaml:"metrics" json:"metrics"`
	Education  []Education  `yaml:"education" json:"education"`
	Languages  []Language   `yaml:"languages" json:"languages"`
	Projects   []Project    `yaml:"projects" json:"projects"`
	Experience []Experience `yaml:"experience" json:"experience"`
	Skills     []SkillGroup `yaml:"skills" json:"skills"`
	Contact    Contact      `yaml:"contact" json:"contact"`
}

type Owner struct {
	Name      string `yaml:"name" json:"name"`
	Initials  string `yaml:"initials" json:"initials,omitempty"`
	Headline  string `yaml:"headline" json:"headline"`
	SiteTitle string `yaml:"site_title" json:"site_title"`
	Photo     string `yaml:"photo" json:"photo,omitempty"`
	Footer    string `yaml:"footer" json:"footer,omitempty"`
	Copyright string `yaml:"copyright" json:"copyright,omitempty"`
}

// Monogram returns the glyph shown in place of a missing profile photo.
func (o Owner) Monogram() string {
	if o.Initials != "" {
		return o.Initials
	}
	var initials []rune
	for _, word := range strings.Fields(o.Name) {
		r, _ := utf8.DecodeRuneInString(word)
		if unicode.IsLetter(r) {
			initials = append(initials, unicode.ToUpper(r))
		}
		if len(initials) == 2 {
			break
		}
	}
	if len(initials) == 0 {
		return "👤"
	}
	return string(initials)
}

type Metric struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

type Education struct {
	Institution string `yaml:"institution" json:"institution"`
	Degree      string `yaml:"degree" json:"degree"`
	Period      string `yaml:"period" json:"period"`
}

type Language struct {
	Language   string `yaml:"language" json:"language"`
	Level      string `yaml:"level" json:"level"`
	Percentage int    `yaml:"percentage" json:"percentage"`
}

// Width is the filled share of the progress bar.
func (l Language) Width() int { return clampPercent(l.Percentage) }

// Project is one past initiative shown as a card on the projects page.
type Project struct {
	ID          string         `yaml:"id" json:"id"`
	Title       string         `yaml:"title" json:"title"`
	Subtitle    string         `yaml:"subtitle" json:"subtitle"`
	Color       string         `yaml:"color" json:"color"`
	Icon        string         `yaml:"icon" json:"icon,omitempty"`
	Description string         `yaml:"description" json:"description"`
	Tags        []string       `yaml:"tags" json:"tags"`
	Features    []string       `yaml:"features" json:"features"`
	Impact      string         `yaml:"impact" json:"impact"`
	Images      []ProjectImage `yaml:"images" json:"images,omitempty"`
	Charts      []Chart        `yaml:"charts" json:"charts,omitempty"`
}

// Glyph is the project icon, or a generic folder when none is set.
func (p Project) Glyph() string {
	if p.Icon == "" {
		return "📁"
	}
	return p.Icon
}

type ProjectImage struct {
	Src     string `yaml:"src" json:"src"`
	Caption string `yaml:"caption" json:"caption"`
}

type Experience struct {
	Role       string   `yaml:"role" json:"role"`
	Company    string   `yaml:"company" json:"company"`
	Period     string   `yaml:"period" json:"period"`
	Location   string   `yaml:"location" json:"location,omitempty"`
	Highlights []string `yaml:"highlights" json:"highlights"`
}

type SkillGroup struct {
	Name   string  `yaml:"name" json:"name"`
	Skills []Skill `yaml:"skills" json:"skills"`
}

type Skill struct {
	Name       string `yaml:"name" json:"name"`
	Percentage int    `yaml:"percentage" json:"percentage"`
}

// Width is the filled share of the progress bar.
func (s Skill) Width() int { return clampPercent(s.Percentage) }

type Contact struct {
	Email     string `yaml:"email" json:"email"`
	Phone     string `yaml:"phone" json:"phone,omitempty"`
	PhoneLink string `yaml:"phone_link" json:"-"`
	LinkedIn  string `yaml:"linkedin" json:"linkedin,omitempty"`
	Location  string `yaml:"location" json:"location,omitempty"`
}

// Tel is the dialable form of the phone number.
func (c Contact) Tel() string {
	if c.PhoneLink != "" {
		return c.PhoneLink
	}
	return strings.Map(func(r rune) rune {
		if r == '+' || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, c.Phone)
}

// LoadPortfolio reads the portfolio content from path, or from the content
// compiled into the binary when path is empty.
func LoadPortfolio(path string) (*Portfolio, error) {
	data := defaultContent
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading content %s: %w", path, err)
		}
		data = b
	}

	var p Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing content: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content: %w", err)
	}
	return &p, nil
}

// Validate checks the few things the templates rely on.
func (p *Portfolio) Validate() error {
	if strings.TrimSpace(p.Owner.Name) == "" {
		return fmt.Errorf("owner.name is required")
	}

	seen := make(map[string]bool, len(p.Projects))
	for i, project := range p.Projects {
		if project.ID == "" {
			return fmt.Errorf("projects[%d]: id is required", i)
		}
		if seen[project.ID] {
			return fmt.Errorf("projects[%d]: duplicate id %q", i, project.ID)
		}
		seen[project.ID] = true

		for j, chart := range project.Charts {
			if !validChartKinds[chart.Kind] {
				return fmt.Errorf("projects[%d].charts[%d]: unknown kind %q", i, j, chart.Kind)
			}
		}
	}
	return nil
}

// Project returns the project with the given ID.
func (p *Portfolio) Project(id string) (*Project, error) {
	for i := range p.Projects {
		if p.Projects[i].ID == id {
			return &p.Projects[i], nil
		}
	}
	return nil, fmt.Errorf("project not found: %s", id)
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
