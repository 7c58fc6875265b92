package content

// Default returns the baseline document used when no snapshot and no static
// file is available. Matches the seed content shipped with the site.
func Default() *Document {
	return &Document{
		Settings: &Settings{
			CompanyName: "NEXUS",
			Tagline:     "SOFTWARE SOLUTIONS",
			LogoMark:    "N",
			AccentColor: "#4f8ef7",
			FooterText:  "Engineering brilliant software — since 2018.",
		},
		Hero: &Hero{
			Badge:    "TRUSTED BY 200+ COMPANIES",
			Line1:    "ENGINEERING",
			Line2:    "BRILLIANT",
			Line3:    "SOFTWARE",
			Subtitle: "We build high-performance digital products.",
			CTA1:     "Our Services",
			CTA2:     "View Our Work",
			Stat1Val: 200, Stat1Suf: "+", Stat1Label: "Projects",
			Stat2Val: 98, Stat2Suf: "%", Stat2Label: "Satisfaction",
			Stat3Val: 8, Stat3Suf: "+", Stat3Label: "Years",
		},
		Countdown: &Countdown{
			SectionTag:  "UPCOMING LAUNCH",
			Title:       "NEXUS PLATFORM 3.0",
			Subtitle:    "The most powerful platform yet",
			DaysFromNow: 42,
		},
		Services: []Service{
			{Title: "WEB DEVELOPMENT", Genre: "FULL-STACK / ENTERPRISE", Desc: "Scalable web apps.", Tech: "React, Node.js, AWS", Image: "https://images.unsplash.com/photo-1461749280684-dccba630e2f6?w=800&q=80", Badge: "FLAGSHIP", Featured: true},
			{Title: "MOBILE APPS", Genre: "iOS / ANDROID", Desc: "Cross-platform apps.", Tech: "Flutter, React Native", Image: "https://images.unsplash.com/photo-1512941937669-90a1b58e7e9c?w=800&q=80"},
			{Title: "CLOUD & AI", Genre: "CLOUD / AI / DEVOPS", Desc: "AI-powered cloud solutions.", Tech: "AWS, GCP, OpenAI", Image: "https://images.unsplash.com/photo-1558494949-ef010cbdcc31?w=800&q=80"},
		},
		About: &About{
			Title:      "We Build Software",
			Highlight:  "That Matters.",
			P1:         "A team of engineers passionate about software.",
			P2:         "From MVP to enterprise-scale platforms.",
			Image:      "https://images.unsplash.com/photo-1522071820081-009f0129c71c?w=900&q=80",
			BadgeIcon:  "💻",
			BadgeTitle: "Since 2018",
			BadgeSub:   "Delivering Excellence",
			Features: []Feature{
				{Icon: "⚡", Title: "Agile", Sub: "Fast sprints"},
				{Icon: "🔒", Title: "Secure", Sub: "Security first"},
				{Icon: "🏆", Title: "Award", Sub: "Best Tech Agency 2025"},
			},
		},
		Team: []Member{
			{Name: "Alex Chen", Role: "CEO & Founder", Photo: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=500&q=80"},
			{Name: "Jordan Lee", Role: "CTO", Photo: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=500&q=80"},
			{Name: "Sam Rivera", Role: "Head of Design", Photo: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=500&q=80"},
			{Name: "Maya Patel", Role: "Cloud Architect", Photo: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=500&q=80"},
		},
		Blog: []Post{
			{Cat: "ENGINEERING", Day: "20", Month: "FEB", Title: "Scaling Our API to 10M Requests/Day", Excerpt: "A deep dive...", Image: "https://images.unsplash.com/photo-1555066931-4365d14bab8c?w=900&q=80", Featured: true},
			{Cat: "AI", Day: "15", Month: "FEB", Title: "LLMs in Production", Image: "https://images.unsplash.com/photo-1677442135703-1787eea5ce01?w=600&q=80"},
			{Cat: "COMPANY", Day: "08", Month: "FEB", Title: "We Raised $4M", Image: "https://images.unsplash.com/photo-1618401479427-c8ef9465fbe1?w=600&q=80"},
			{Cat: "DEVOPS", Day: "01", Month: "FEB", Title: "Zero-Downtime Deployments", Image: "https://images.unsplash.com/photo-1504868584819-f8e8b4b6d7e3?w=600&q=80"},
		},
		Projects: &Projects{
			SectionTag: "OPEN SOURCE",
			Title:      "Our",
			Highlight:  "Projects",
			Desc:       "Selected work from our GitHub.",
			Items:      []Project{},
		},
		Contact: &Contact{
			Title:     "Let's Build",
			Highlight: "Something Great",
			Desc:      "Have a project? Reach out.",
			Channels: []Channel{
				{Icon: "💼", Title: "LinkedIn", Sub: "Follow us", Link: "#"},
				{Icon: "🐙", Title: "GitHub", Sub: "Open source", Link: "#"},
				{Icon: "🎬", Title: "YouTube", Sub: "Tutorials", Link: "#"},
				{Icon: "𝕏", Title: "Twitter", Sub: "Updates", Link: "#"},
			},
		},
	}
}
