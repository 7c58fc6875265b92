// Package content defines the canonical site content document: the single
// JSON tree the admin edits and the site renders.
package content

import "strings"

const (
	ProjectTypeGitHub = "github"
	ProjectTypeCustom = "custom"
)

type Settings struct {
	CompanyName string `json:"companyName"`
	Tagline     string `json:"tagline"`
	LogoMark    string `json:"logoMark"`
	LogoImage   string `json:"logoImage,omitempty"`
	AccentColor string `json:"accentColor"`
	FooterText  string `json:"footerText"`
}

type Hero struct {
	Badge      string `json:"badge"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	Line3      string `json:"line3"`
	Subtitle   string `json:"subtitle"`
	CTA1       string `json:"cta1"`
	CTA2       string `json:"cta2"`
	Stat1Val   int    `json:"stat1Val"`
	Stat1Suf   string `json:"stat1Suf"`
	Stat1Label string `json:"stat1Label"`
	Stat2Val   int    `json:"stat2Val"`
	Stat2Suf   string `json:"stat2Suf"`
	Stat2Label string `json:"stat2Label"`
	Stat3Val   int    `json:"stat3Val"`
	Stat3Suf   string `json:"stat3Suf"`
	Stat3Label string `json:"stat3Label"`
}

// Stat is one (value, suffix, label) hero counter.
type Stat struct {
	Value  int
	Suffix string
	Label  string
}

func (h Hero) Stats() [3]Stat {
	return [3]Stat{
		{h.Stat1Val, h.Stat1Suf, h.Stat1Label},
		{h.Stat2Val, h.Stat2Suf, h.Stat2Label},
		{h.Stat3Val, h.Stat3Suf, h.Stat3Label},
	}
}

type Countdown struct {
	SectionTag  string `json:"sectionTag"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	DaysFromNow int    `json:"daysFromNow"`
}

type Feature struct {
	Icon  string `json:"icon"`
	Title string `json:"title"`
	Sub   string `json:"sub"`
}

type About struct {
	Title      string    `json:"title"`
	Highlight  string    `json:"highlight"`
	P1         string    `json:"p1"`
	P2         string    `json:"p2"`
	Image      string    `json:"image"`
	BadgeIcon  string    `json:"badgeIcon"`
	BadgeTitle string    `json:"badgeTitle"`
	BadgeSub   string    `json:"badgeSub"`
	Features   []Feature `json:"features"`
}

type Service struct {
	Title    string `json:"title"`
	Genre    string `json:"genre"`
	Desc     string `json:"desc"`
	Tech     string `json:"tech"`
	Badge    string `json:"badge"`
	Image    string `json:"image"`
	Featured bool   `json:"featured"`
}

type Member struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Photo string `json:"photo"`
}

type Post struct {
	Cat      string `json:"cat"`
	Day      string `json:"day"`
	Month    string `json:"month"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Image    string `json:"image"`
	Featured bool   `json:"featured"`
}

type Project struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Name        string   `json:"name"`
	RepoName    string   `json:"repoName,omitempty"`
	Description string   `json:"description"`
	GitHubURL   string   `json:"githubUrl"`
	LiveURL     string   `json:"liveUrl"`
	Language    string   `json:"language"`
	Stars       int      `json:"stars"`
	Forks       int      `json:"forks"`
	Topics      []string `json:"topics"`
	Image       string   `json:"image"`
	Visible     bool     `json:"visible"`
}

type Projects struct {
	SectionTag     string    `json:"sectionTag"`
	Title          string    `json:"title"`
	Highlight      string    `json:"highlight"`
	Desc           string    `json:"desc"`
	GitHubUsername string    `json:"githubUsername"`
	Items          []Project `json:"items"`
}

type Channel struct {
	Icon  string `json:"icon"`
	Title string `json:"title"`
	Sub   string `json:"sub"`
	Link  string `json:"link"`
}

type Contact struct {
	Title     string    `json:"title"`
	Highlight string    `json:"highlight"`
	Desc      string    `json:"desc"`
	Channels  []Channel `json:"channels"`
}

// Document is the root aggregate. Every section is optional on the wire;
// Normalize fills absent sections so consumers never hit a nil pointer.
type Document struct {
	Settings  *Settings  `json:"settings,omitempty"`
	Hero      *Hero      `json:"hero,omitempty"`
	Countdown *Countdown `json:"countdown,omitempty"`
	Services  []Service  `json:"services,omitempty"`
	About     *About     `json:"about,omitempty"`
	Team      []Member   `json:"team,omitempty"`
	Blog      []Post     `json:"blog,omitempty"`
	Projects  *Projects  `json:"projects,omitempty"`
	Contact   *Contact   `json:"contact,omitempty"`
}

// GitHubProjectID derives the stable item id for a repository. Two merges of
// the same repo name always resolve to the same item.
func GitHubProjectID(repoName string) string {
	return "gh-" + repoName
}

// DisplayName turns a repository name into a readable project name.
func DisplayName(repoName string) string {
	return strings.NewReplacer("-", " ", "_", " ").Replace(repoName)
}
