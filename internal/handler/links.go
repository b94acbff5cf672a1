package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"taskdeck/internal/model"
	"taskdeck/internal/pagination"
)

// Link is a hypermedia navigation entry embedded in task responses.
type Link struct {
	Rel    string   `json:"rel"`
	Href   string   `json:"href"`
	Action string   `json:"action,omitempty"`
	Types  []string `json:"types,omitempty"`
}

// taskResource is a task annotated with its action links.
type taskResource struct {
	model.Task
	Links []Link `json:"links"`
}

func baseURL(c echo.Context) string {
	return fmt.Sprintf("%s://%s/api/v1/tasks", c.Scheme(), c.Request().Host)
}

func newTaskResource(c echo.Context, task model.Task) taskResource {
	href := fmt.Sprintf("%s/%d", baseURL(c), task.ID)
	return taskResource{
		Task: task,
		Links: []Link{
			{Rel: "self", Href: href},
			{
				Rel:    "update",
				Href:   href,
				Action: "PATCH",
				Types:  []string{"application/json", "application/merge-patch+json"},
			},
			{Rel: "delete", Href: href, Action: "DELETE"},
		},
	}
}

// pageLinks computes collection navigation from the page summary. prev and
// next are present only when such a page exists.
func pageLinks(c echo.Context, s pagination.Summary) []Link {
	href := func(page int) string {
		return fmt.Sprintf("%s?page=%d&limit=%d", baseURL(c), page, s.Limit)
	}

	links := []Link{
		{Rel: "self", Href: href(s.CurrentPage)},
		{Rel: "first", Href: href(pagination.MinPage)},
	}
	if s.CurrentPage > pagination.MinPage {
		links = append(links, Link{Rel: "prev", Href: href(s.CurrentPage - 1)})
	}
	if s.CurrentPage < s.TotalPages {
		links = append(links, Link{Rel: "next", Href: href(s.CurrentPage + 1)})
	}
	last := s.LastPage
	if last < pagination.MinPage {
		last = pagination.MinPage
	}
	links = append(links, Link{Rel: "last", Href: href(last)})
	return links
}
