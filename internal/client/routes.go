package client

import "net/url"

// Маршруты Pollination API. Все переменные сегменты экранируются:
// имена проектов и output'ов приходят от пользователя.

func userPath() string {
	return "/user"
}

func accountPath(name string) string {
	return "/accounts/" + url.PathEscape(name)
}

func projectsPath(owner string) string {
	return "/projects/" + url.PathEscape(owner)
}

func projectPath(owner, name string) string {
	return projectsPath(owner) + "/" + url.PathEscape(name)
}

func projectRecipeFiltersPath(owner, name string) string {
	return projectPath(owner, name) + "/recipes/filters"
}

func projectArtifactsPath(owner, name string) string {
	return projectPath(owner, name) + "/artifacts"
}

func projectJobsPath(owner, name string) string {
	return projectPath(owner, name) + "/jobs"
}

func projectJobPath(owner, name, jobID string) string {
	return projectJobsPath(owner, name) + "/" + url.PathEscape(jobID)
}

func projectJobArtifactsPath(owner, name, jobID string) string {
	return projectJobPath(owner, name, jobID) + "/artifacts"
}

func projectJobArtifactsDownloadPath(owner, name, jobID string) string {
	return projectJobArtifactsPath(owner, name, jobID) + "/downloads"
}

func projectRunsPath(owner, name string) string {
	return projectPath(owner, name) + "/runs"
}

func projectRunOutputPath(owner, name, runID, outputName string) string {
	return projectRunsPath(owner, name) + "/" + url.PathEscape(runID) +
		"/outputs/" + url.PathEscape(outputName)
}

// RecipeSourceURL строит URL recipe в registry. Job ссылается на recipe
// именно этим URL в поле source.
func (c *Client) RecipeSourceURL(owner, name, tag string) string {
	return c.baseURL + "/registries/" + url.PathEscape(owner) +
		"/recipe/" + url.PathEscape(name) + "/" + url.PathEscape(tag)
}
