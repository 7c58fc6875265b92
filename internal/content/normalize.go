package content

// Normalize fills in any absent section or slice with a safe zero value.
// Parsed snapshots are never trusted to carry the full tree; a missing field
// must not crash rendering or editing.
func Normalize(d *Document) *Document {
	if d == nil {
		d = &Document{}
	}
	if d.Settings == nil {
		d.Settings = &Settings{}
	}
	if d.Hero == nil {
		d.Hero = &Hero{}
	}
	if d.Countdown == nil {
		d.Countdown = &Countdown{}
	}
	if d.Services == nil {
		d.Services = []Service{}
	}
	if d.About == nil {
		d.About = &About{}
	}
	if d.About.Features == nil {
		d.About.Features = []Feature{}
	}
	if d.Team == nil {
		d.Team = []Member{}
	}
	if d.Blog == nil {
		d.Blog = []Post{}
	}
	if d.Projects == nil {
		d.Projects = &Projects{}
	}
	if d.Projects.Items == nil {
		d.Projects.Items = []Project{}
	}
	for i := range d.Projects.Items {
		if d.Projects.Items[i].Topics == nil {
			d.Projects.Items[i].Topics = []string{}
		}
	}
	if d.Contact == nil {
		d.Contact = &Contact{}
	}
	if d.Contact.Channels == nil {
		d.Contact.Channels = []Channel{}
	}
	return d
}

// Clone deep-copies the document so read-only consumers can never mutate the
// admin session's copy.
func (d *Document) Clone() *Document {
	if d == nil {
		return Normalize(nil)
	}
	out := *d
	if d.Settings != nil {
		s := *d.Settings
		out.Settings = &s
	}
	if d.Hero != nil {
		h := *d.Hero
		out.Hero = &h
	}
	if d.Countdown != nil {
		c := *d.Countdown
		out.Countdown = &c
	}
	if d.Services != nil {
		out.Services = append([]Service(nil), d.Services...)
	}
	if d.About != nil {
		a := *d.About
		if a.Features != nil {
			a.Features = append([]Feature(nil), a.Features...)
		}
		out.About = &a
	}
	if d.Team != nil {
		out.Team = append([]Member(nil), d.Team...)
	}
	if d.Blog != nil {
		out.Blog = append([]Post(nil), d.Blog...)
	}
	if d.Projects != nil {
		p := *d.Projects
		if p.Items != nil {
			p.Items = append([]Project(nil), p.Items...)
			for i := range p.Items {
				if p.Items[i].Topics != nil {
					p.Items[i].Topics = append([]string(nil), p.Items[i].Topics...)
				}
			}
		}
		out.Projects = &p
	}
	if d.Contact != nil {
		c := *d.Contact
		if c.Channels != nil {
			c.Channels = append([]Channel(nil), c.Channels...)
		}
		out.Contact = &c
	}
	return &out
}
