package forms

import (
	"strings"

	"nexus/admin/internal/content"
	"nexus/admin/internal/util"
)

// Collection binders. Each element becomes one row; row keys stay stable
// across re-populates of the same positions so the UI can address rows
// without relying on index.

func rowAt(existing RowList, i int) Row {
	if i < len(existing) {
		return Row{Key: existing[i].Key, Fields: Fields{}}
	}
	return newRow()
}

func populateServices(items []content.Service, existing RowList) RowList {
	rows := make(RowList, 0, len(items))
	for i, s := range items {
		row := rowAt(existing, i)
		row.Fields.Set("title", s.Title)
		row.Fields.Set("genre", s.Genre)
		row.Fields.Set("desc", s.Desc)
		row.Fields.Set("tech", s.Tech)
		row.Fields.Set("badge", s.Badge)
		row.Fields.Set("image", s.Image)
		row.Fields.SetBool("featured", s.Featured)
		rows = append(rows, row)
	}
	return rows
}

func collectServices(rows RowList) []content.Service {
	items := make([]content.Service, 0, len(rows))
	for _, row := range rows {
		items = append(items, content.Service{
			Title:    row.Fields.Get("title"),
			Genre:    row.Fields.Get("genre"),
			Desc:     row.Fields.Get("desc"),
			Tech:     row.Fields.Get("tech"),
			Badge:    row.Fields.Get("badge"),
			Image:    row.Fields.Get("image"),
			Featured: row.Fields.GetBool("featured"),
		})
	}
	return items
}

func populateFeatures(items []content.Feature, existing RowList) RowList {
	rows := make(RowList, 0, len(items))
	for i, feat := range items {
		row := rowAt(existing, i)
		row.Fields.Set("icon", feat.Icon)
		row.Fields.Set("title", feat.Title)
		row.Fields.Set("sub", feat.Sub)
		rows = append(rows, row)
	}
	return rows
}

func collectFeatures(rows RowList) []content.Feature {
	items := make([]content.Feature, 0, len(rows))
	for _, row := range rows {
		items = append(items, content.Feature{
			Icon:  row.Fields.Get("icon"),
			Title: row.Fields.Get("title"),
			Sub:   row.Fields.Get("sub"),
		})
	}
	return items
}

func populateTeam(items []content.Member, existing RowList) RowList {
	rows := make(RowList, 0, len(items))
	for i, m := range items {
		row := rowAt(existing, i)
		row.Fields.Set("name", m.Name)
		row.Fields.Set("role", m.Role)
		row.Fields.Set("photo", m.Photo)
		rows = append(rows, row)
	}
	return rows
}

func collectTeam(rows RowList) []content.Member {
	items := make([]content.Member, 0, len(rows))
	for _, row := range rows {
		items = append(items, content.Member{
			Name:  row.Fields.Get("name"),
			Role:  row.Fields.Get("role"),
			Photo: row.Fields.Get("photo"),
		})
	}
	return items
}

func populateBlog(items []content.Post, existing RowList) RowList {
	rows := make(RowList, 0, len(items))
	for i, p := range items {
		row := rowAt(existing, i)
		row.Fields.Set("cat", p.Cat)
		row.Fields.Set("day", p.Day)
		row.Fields.Set("month", p.Month)
		row.Fields.Set("title", p.Title)
		row.Fields.Set("excerpt", p.Excerpt)
		row.Fields.Set("image", p.Image)
		row.Fields.SetBool("featured", p.Featured)
		rows = append(rows, row)
	}
	return rows
}

func collectBlog(rows RowList) []content.Post {
	items := make([]content.Post, 0, len(rows))
	for _, row := range rows {
		items = append(items, content.Post{
			Cat:      row.Fields.Get("cat"),
			Day:      row.Fields.Get("day"),
			Month:    row.Fields.Get("month"),
			Title:    row.Fields.Get("title"),
			Excerpt:  row.Fields.Get("excerpt"),
			Image:    row.Fields.Get("image"),
			Featured: row.Fields.GetBool("featured"),
		})
	}
	return items
}

func populateChannels(items []content.Channel, existing RowList) RowList {
	rows := make(RowList, 0, len(items))
	for i, ch := range items {
		row := rowAt(existing, i)
		row.Fields.Set("icon", ch.Icon)
		row.Fields.Set("title", ch.Title)
		row.Fields.Set("sub", ch.Sub)
		row.Fields.Set("link", ch.Link)
		rows = append(rows, row)
	}
	return rows
}

func collectChannels(rows RowList) []content.Channel {
	items := make([]content.Channel, 0, len(rows))
	for _, row := range rows {
		items = append(items, content.Channel{
			Icon:  row.Fields.Get("icon"),
			Title: row.Fields.Get("title"),
			Sub:   row.Fields.Get("sub"),
			Link:  row.Fields.Get("link"),
		})
	}
	return items
}

func populateProjects(items []content.Project, existing RowList) RowList {
	rows := make(RowList, 0, len(items))
	for i, p := range items {
		row := rowAt(existing, i)
		row.Fields.Set("id", p.ID)
		row.Fields.Set("type", p.Type)
		row.Fields.Set("repoName", p.RepoName)
		row.Fields.Set("name", p.Name)
		row.Fields.Set("description", p.Description)
		row.Fields.Set("language", p.Language)
		row.Fields.Set("githubUrl", p.GitHubURL)
		row.Fields.Set("liveUrl", p.LiveURL)
		row.Fields.Set("topics", strings.Join(p.Topics, ", "))
		row.Fields.Set("image", p.Image)
		row.Fields.SetBool("visible", p.Visible)
		row.Fields.SetInt("stars", p.Stars)
		row.Fields.SetInt("forks", p.Forks)
		rows = append(rows, row)
	}
	return rows
}

// collectProjects rebuilds the project list from the rows. A cleared display
// name falls back to the previous name for the same item id rather than
// persisting empty.
func collectProjects(rows RowList, existing []content.Project) []content.Project {
	previous := make(map[string]content.Project, len(existing))
	for _, p := range existing {
		previous[p.ID] = p
	}

	items := make([]content.Project, 0, len(rows))
	for _, row := range rows {
		id := row.Fields.Get("id")
		name := row.Fields.Get("name")
		if name == "" {
			if prev, ok := previous[id]; ok {
				name = prev.Name
			}
		}
		items = append(items, content.Project{
			ID:          id,
			Type:        row.Fields.Get("type"),
			RepoName:    row.Fields.Get("repoName"),
			Name:        name,
			Description: row.Fields.Get("description"),
			Language:    row.Fields.Get("language"),
			GitHubURL:   row.Fields.Get("githubUrl"),
			LiveURL:     row.Fields.Get("liveUrl"),
			Topics:      splitTopics(row.Fields.Get("topics")),
			Image:       row.Fields.Get("image"),
			Visible:     row.Fields.Get("visible") != "false",
			Stars:       row.Fields.GetInt("stars"),
			Forks:       row.Fields.GetInt("forks"),
		})
	}
	return items
}

func splitTopics(raw string) []string {
	topics := []string{}
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			topics = append(topics, t)
		}
	}
	return topics
}

func defaultService() content.Service {
	return content.Service{Title: "NEW SERVICE", Genre: "TYPE"}
}

func defaultFeature() content.Feature {
	return content.Feature{Icon: "✨", Title: "Feature"}
}

func defaultMember() content.Member {
	return content.Member{Name: "New Member", Role: "Role"}
}

func defaultPost() content.Post {
	return content.Post{Cat: "CATEGORY", Day: "01", Month: "JAN", Title: "New Article"}
}

func defaultChannel() content.Channel {
	return content.Channel{Icon: "🔗", Title: "Channel", Link: "#"}
}

func defaultProject() content.Project {
	return content.Project{
		ID:      "custom-" + util.NewToken(),
		Type:    content.ProjectTypeCustom,
		Name:    "New Project",
		Topics:  []string{},
		Visible: true,
	}
}
