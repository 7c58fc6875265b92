// Package render projects a content document into site markup. It is the
// read-only consumer of the document: it works on a deep copy and applies
// the same display conventions the public site uses.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"nexus/admin/internal/content"
)

// FeaturedService picks the service shown large: the first one flagged
// featured, falling back to the first service. Multiple featured flags are
// tolerated; the first wins.
func FeaturedService(services []content.Service) (content.Service, bool) {
	if len(services) == 0 {
		return content.Service{}, false
	}
	for _, s := range services {
		if s.Featured {
			return s, true
		}
	}
	return services[0], true
}

// FeaturedPost applies the same convention to blog posts.
func FeaturedPost(posts []content.Post) (content.Post, bool) {
	if len(posts) == 0 {
		return content.Post{}, false
	}
	for _, p := range posts {
		if p.Featured {
			return p, true
		}
	}
	return posts[0], true
}

// VisibleProjects filters out items the admin has hidden.
func VisibleProjects(items []content.Project) []content.Project {
	visible := []content.Project{}
	for _, p := range items {
		if p.Visible {
			visible = append(visible, p)
		}
	}
	return visible
}

// CountdownTarget resolves the launch countdown's target date.
func CountdownTarget(c *content.Countdown, now time.Time) time.Time {
	return now.AddDate(0, 0, c.DaysFromNow)
}

type pageData struct {
	Doc             *content.Document
	FeaturedService *content.Service
	SideServices    []content.Service
	FeaturedPost    *content.Post
	SmallPosts      []content.Post
	Projects        []content.Project
	CountdownDate   string
}

// Page renders the whole document as a single HTML page.
func Page(doc *content.Document) ([]byte, error) {
	doc = content.Normalize(doc.Clone())

	data := pageData{
		Doc:           doc,
		Projects:      VisibleProjects(doc.Projects.Items),
		CountdownDate: CountdownTarget(doc.Countdown, time.Now()).Format("January 2, 2006"),
	}
	if featured, ok := FeaturedService(doc.Services); ok {
		data.FeaturedService = &featured
		for _, s := range doc.Services {
			if !s.Featured {
				data.SideServices = append(data.SideServices, s)
			}
		}
	}
	if featured, ok := FeaturedPost(doc.Blog); ok {
		data.FeaturedPost = &featured
		for _, p := range doc.Blog {
			if !p.Featured {
				data.SmallPosts = append(data.SmallPosts, p)
			}
		}
	}

	var buf bytes.Buffer
	if err := page.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return buf.Bytes(), nil
}

var page = template.Must(template.New("page").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Doc.Settings.CompanyName}} | {{.Doc.Settings.Tagline}}</title>
<style>
body { font-family: system-ui, sans-serif; margin: 0; color: #141824; }
section { padding: 48px 10vw; }
.accent { color: {{.Doc.Settings.AccentColor}}; }
.muted { color: #6a718a; }
.grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(240px, 1fr)); gap: 24px; }
.card { border: 1px solid #e3e6ef; border-radius: 10px; padding: 20px; }
.badge { display: inline-block; font-size: 0.75rem; letter-spacing: 0.1em; color: {{.Doc.Settings.AccentColor}}; }
img { max-width: 100%; border-radius: 8px; }
</style>
</head>
<body>
<header style="padding:16px 10vw;display:flex;justify-content:space-between">
  <div><strong>{{.Doc.Settings.LogoMark}}</strong> {{.Doc.Settings.CompanyName}}</div>
  <div class="muted">{{.Doc.Settings.Tagline}}</div>
</header>

<section id="hero">
  <span class="badge">{{.Doc.Hero.Badge}}</span>
  <h1>{{.Doc.Hero.Line1}}<br>{{.Doc.Hero.Line2}}<br><span class="accent">{{.Doc.Hero.Line3}}</span></h1>
  <p class="muted">{{.Doc.Hero.Subtitle}}</p>
  <p><a href="#services">{{.Doc.Hero.CTA1}}</a> &middot; <a href="#projects">{{.Doc.Hero.CTA2}}</a></p>
  <div style="display:flex;gap:48px">
    {{range .Doc.Hero.Stats}}<div><strong>{{.Value}}{{.Suffix}}</strong><div class="muted">{{.Label}}</div></div>{{end}}
  </div>
</section>

{{if .Doc.Countdown.Title}}
<section id="countdown">
  <span class="badge">{{.Doc.Countdown.SectionTag}}</span>
  <h2>{{.Doc.Countdown.Title}}</h2>
  <p class="muted">{{.Doc.Countdown.Subtitle}} &mdash; launching {{.CountdownDate}}</p>
</section>
{{end}}

<section id="services">
  {{with .FeaturedService}}
  <div class="card">
    {{if .Badge}}<span class="badge">{{.Badge}}</span>{{end}}
    <p class="muted">{{.Genre}}</p>
    <h2>{{.Title}}</h2>
    <p>{{.Desc}}</p>
    <p class="muted">{{.Tech}}</p>
  </div>
  {{end}}
  <div class="grid">
    {{range .SideServices}}
    <div class="card"><p class="muted">{{.Genre}}</p><h3>{{.Title}}</h3><p>{{.Desc}}</p></div>
    {{end}}
  </div>
</section>

<section id="about">
  <h2>{{.Doc.About.Title}} <span class="accent">{{.Doc.About.Highlight}}</span></h2>
  <p>{{.Doc.About.P1}}</p>
  <p>{{.Doc.About.P2}}</p>
  <div class="grid">
    {{range .Doc.About.Features}}
    <div class="card">{{.Icon}} <strong>{{.Title}}</strong> <span class="muted">{{.Sub}}</span></div>
    {{end}}
  </div>
</section>

<section id="team">
  <div class="grid">
    {{range .Doc.Team}}
    <div class="card">{{if .Photo}}<img src="{{.Photo}}" alt="{{.Name}}">{{end}}<h3>{{.Name}}</h3><p class="muted">{{.Role}}</p></div>
    {{end}}
  </div>
</section>

<section id="blog">
  {{with .FeaturedPost}}
  <div class="card"><span class="badge">{{.Cat}}</span><h2>{{.Title}}</h2>{{if .Excerpt}}<p>{{.Excerpt}}</p>{{end}}<p class="muted">{{.Day}} {{.Month}}</p></div>
  {{end}}
  <div class="grid">
    {{range .SmallPosts}}
    <div class="card"><span class="badge">{{.Cat}}</span><h3>{{.Title}}</h3><p class="muted">{{.Day}} {{.Month}}</p></div>
    {{end}}
  </div>
</section>

<section id="projects">
  <span class="badge">{{.Doc.Projects.SectionTag}}</span>
  <h2>{{.Doc.Projects.Title}} <span class="accent">{{.Doc.Projects.Highlight}}</span></h2>
  <p class="muted">{{.Doc.Projects.Desc}}</p>
  <div class="grid">
    {{range .Projects}}
    <div class="card">
      <h3>{{.Name}}</h3>
      <p>{{.Description}}</p>
      <p class="muted">{{.Language}}{{if .Stars}} &middot; &#9733; {{.Stars}}{{end}}{{if .Forks}} &middot; &#8930; {{.Forks}}{{end}}</p>
      {{if .GitHubURL}}<a href="{{.GitHubURL}}">Source</a>{{end}}
      {{if .LiveURL}} <a href="{{.LiveURL}}">Live</a>{{end}}
    </div>
    {{end}}
  </div>
</section>

<section id="contact">
  <h2>{{.Doc.Contact.Title}} <span class="accent">{{.Doc.Contact.Highlight}}</span></h2>
  <p class="muted">{{.Doc.Contact.Desc}}</p>
  <div class="grid">
    {{range .Doc.Contact.Channels}}
    <div class="card">{{.Icon}} <a href="{{.Link}}">{{.Title}}</a> <span class="muted">{{.Sub}}</span></div>
    {{end}}
  </div>
</section>

<footer style="padding:24px 10vw" class="muted">{{.Doc.Settings.FooterText}}</footer>
</body>
</html>
`))
