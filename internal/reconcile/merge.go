// Package reconcile merges freshly fetched repository lists into the
// document's project collection without discarding local edits.
package reconcile

import (
	"nexus/admin/internal/content"
	"nexus/admin/internal/github"
)

// Result carries the merged list plus the counts the admin reports. The
// caller replaces projects.items with Items wholesale.
type Result struct {
	Items   []content.Project
	Added   int
	Updated int
}

// MergeGitHubRepos reconciles fetched repositories against the existing
// items by stable id ("gh-" + repo name).
//
// Known ids get only their externally authoritative fields refreshed: star
// and fork counts unconditionally, liveUrl only while the existing value is
// empty (a non-empty liveUrl is a manual override and is never clobbered).
// Unknown ids become new github-typed items. Existing items absent from the
// fetched set are retained untouched, so custom projects survive every
// re-fetch. Pure: the inputs are not mutated.
func MergeGitHubRepos(existing []content.Project, fetched []github.Repo) Result {
	items := append([]content.Project(nil), existing...)
	index := make(map[string]int, len(items))
	for i, p := range items {
		index[p.ID] = i
	}

	var added, updated int
	for _, repo := range fetched {
		id := content.GitHubProjectID(repo.Name)
		if i, ok := index[id]; ok {
			items[i].Stars = repo.Stars
			items[i].Forks = repo.Forks
			if items[i].LiveURL == "" && repo.Homepage != "" {
				items[i].LiveURL = repo.Homepage
			}
			updated++
			continue
		}

		topics := repo.Topics
		if topics == nil {
			topics = []string{}
		}
		items = append(items, content.Project{
			ID:          id,
			Type:        content.ProjectTypeGitHub,
			Name:        content.DisplayName(repo.Name),
			RepoName:    repo.Name,
			Description: repo.Description,
			GitHubURL:   repo.HTMLURL,
			LiveURL:     repo.Homepage,
			Language:    repo.Language,
			Stars:       repo.Stars,
			Forks:       repo.Forks,
			Topics:      topics,
			Visible:     true,
		})
		index[id] = len(items) - 1
		added++
	}

	return Result{Items: items, Added: added, Updated: updated}
}
