package forms

import "nexus/admin/internal/content"

// Scalar section binders. Field ids match the admin UI's input ids. Numeric
// document values populate as their decimal string form; missing values
// populate as empty.

func populateSettings(s *content.Settings, f Fields) {
	f.Set("s-companyName", s.CompanyName)
	f.Set("s-tagline", s.Tagline)
	f.Set("s-logoMark", s.LogoMark)
	f.Set("s-accentColor", s.AccentColor)
	f.Set("s-footerText", s.FooterText)
}

// collectSettings leaves LogoImage alone: the logo is set through the asset
// upload path, not a text field.
func collectSettings(f Fields, s *content.Settings) {
	s.CompanyName = f.Get("s-companyName")
	s.Tagline = f.Get("s-tagline")
	s.LogoMark = f.Get("s-logoMark")
	s.AccentColor = f.Get("s-accentColor")
	s.FooterText = f.Get("s-footerText")
}

func populateHero(h *content.Hero, f Fields) {
	f.Set("h-badge", h.Badge)
	f.Set("h-line1", h.Line1)
	f.Set("h-line2", h.Line2)
	f.Set("h-line3", h.Line3)
	f.Set("h-subtitle", h.Subtitle)
	f.Set("h-cta1", h.CTA1)
	f.Set("h-cta2", h.CTA2)
	f.SetInt("h-s1v", h.Stat1Val)
	f.Set("h-s1suf", h.Stat1Suf)
	f.Set("h-s1l", h.Stat1Label)
	f.SetInt("h-s2v", h.Stat2Val)
	f.Set("h-s2suf", h.Stat2Suf)
	f.Set("h-s2l", h.Stat2Label)
	f.SetInt("h-s3v", h.Stat3Val)
	f.Set("h-s3suf", h.Stat3Suf)
	f.Set("h-s3l", h.Stat3Label)
}

func collectHero(f Fields, h *content.Hero) {
	h.Badge = f.Get("h-badge")
	h.Line1 = f.Get("h-line1")
	h.Line2 = f.Get("h-line2")
	h.Line3 = f.Get("h-line3")
	h.Subtitle = f.Get("h-subtitle")
	h.CTA1 = f.Get("h-cta1")
	h.CTA2 = f.Get("h-cta2")
	h.Stat1Val = f.GetInt("h-s1v")
	h.Stat1Suf = f.Get("h-s1suf")
	h.Stat1Label = f.Get("h-s1l")
	h.Stat2Val = f.GetInt("h-s2v")
	h.Stat2Suf = f.Get("h-s2suf")
	h.Stat2Label = f.Get("h-s2l")
	h.Stat3Val = f.GetInt("h-s3v")
	h.Stat3Suf = f.Get("h-s3suf")
	h.Stat3Label = f.Get("h-s3l")
}

func populateCountdown(c *content.Countdown, f Fields) {
	f.Set("cd-tag", c.SectionTag)
	f.Set("cd-title", c.Title)
	f.Set("cd-subtitle", c.Subtitle)
	f.SetInt("cd-days", c.DaysFromNow)
}

func collectCountdown(f Fields, c *content.Countdown) {
	c.SectionTag = f.Get("cd-tag")
	c.Title = f.Get("cd-title")
	c.Subtitle = f.Get("cd-subtitle")
	c.DaysFromNow = f.GetInt("cd-days")
}

func populateAbout(a *content.About, f Fields) {
	f.Set("a-title", a.Title)
	f.Set("a-highlight", a.Highlight)
	f.Set("a-p1", a.P1)
	f.Set("a-p2", a.P2)
	f.Set("a-image", a.Image)
	f.Set("a-badgeIcon", a.BadgeIcon)
	f.Set("a-badgeTitle", a.BadgeTitle)
	f.Set("a-badgeSub", a.BadgeSub)
}

func collectAbout(f Fields, a *content.About) {
	a.Title = f.Get("a-title")
	a.Highlight = f.Get("a-highlight")
	a.P1 = f.Get("a-p1")
	a.P2 = f.Get("a-p2")
	a.Image = f.Get("a-image")
	a.BadgeIcon = f.Get("a-badgeIcon")
	a.BadgeTitle = f.Get("a-badgeTitle")
	a.BadgeSub = f.Get("a-badgeSub")
}

func populateProjectsMeta(p *content.Projects, f Fields) {
	f.Set("proj-tag", p.SectionTag)
	f.Set("proj-title", p.Title)
	f.Set("proj-hl", p.Highlight)
	f.Set("proj-desc", p.Desc)
	f.Set("proj-githubUser", p.GitHubUsername)
}

func collectProjectsMeta(f Fields, p *content.Projects) {
	p.SectionTag = f.Get("proj-tag")
	p.Title = f.Get("proj-title")
	p.Highlight = f.Get("proj-hl")
	p.Desc = f.Get("proj-desc")
	p.GitHubUsername = f.Get("proj-githubUser")
}

func populateContact(c *content.Contact, f Fields) {
	f.Set("c-title", c.Title)
	f.Set("c-highlight", c.Highlight)
	f.Set("c-desc", c.Desc)
}

func collectContact(f Fields, c *content.Contact) {
	c.Title = f.Get("c-title")
	c.Highlight = f.Get("c-highlight")
	c.Desc = f.Get("c-desc")
}
