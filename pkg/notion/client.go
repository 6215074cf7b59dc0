// Package notion fetches the task backlog from a Notion database and maps
// it onto the planner's task records.
//
// Expected database properties:
//
//	title property (any name)  task name
//	Project  (select)          project label
//	Status   (select)          "actionable" | "pending" | "done"
//	Priority (select)          "high" | "medium" | "low"
//	Effort   (select)          "high" | "medium" | "low" (cognitive difficulty)
//	Quick    (checkbox)        checked means ~15 min regardless of effort
package notion

import (
	"context"
	"fmt"
	"strings"

	"github.com/jomei/notionapi"

	"github.com/harrisonrobin/dayplan/pkg/model"
	"github.com/harrisonrobin/dayplan/pkg/schedule"
)

// Client queries one Notion database for tasks.
type Client struct {
	api        *notionapi.Client
	databaseID notionapi.DatabaseID
}

func NewClient(token, databaseID string) *Client {
	return &Client{
		api:        notionapi.NewClient(notionapi.Token(token)),
		databaseID: notionapi.DatabaseID(databaseID),
	}
}

// FetchTasks returns every non-done task in the database, split into
// actionable and pending. Actionable tasks come back ranked by (priority,
// effort); the deadline annotator re-ranks them later once deadlines are
// known. Pages without a title are skipped.
func (c *Client) FetchTasks(ctx context.Context) (model.TaskList, error) {
	var list model.TaskList
	var cursor notionapi.Cursor

	for {
		req := &notionapi.DatabaseQueryRequest{
			Filter: notionapi.PropertyFilter{
				Property: "Status",
				Select:   &notionapi.SelectFilterCondition{DoesNotEqual: "done"},
			},
			StartCursor: cursor,
		}

		resp, err := c.api.Database.Query(ctx, c.databaseID, req)
		if err != nil {
			return model.TaskList{}, fmt.Errorf("notion query failed: %w", err)
		}

		for i := range resp.Results {
			task, ok := taskFromPage(&resp.Results[i])
			if !ok {
				continue
			}
			if task.Status == model.StatusPending {
				list.Pending = append(list.Pending, task)
			} else {
				list.Actionable = append(list.Actionable, task)
			}
		}

		if !resp.HasMore {
			break
		}
		cursor = resp.NextCursor
	}

	list.Actionable = schedule.Rank(list.Actionable)
	return list, nil
}

// taskFromPage maps one database page to a task. The second return is
// false for pages with an empty title, which carry nothing to schedule.
func taskFromPage(page *notionapi.Page) (model.Task, bool) {
	text := titleOf(page.Properties)
	if text == "" {
		return model.Task{}, false
	}
	return model.Task{
		Text:     text,
		Project:  selectValue(page.Properties, "Project"),
		Status:   model.ParseStatus(selectValue(page.Properties, "Status")),
		Priority: model.ParseLevel(selectValue(page.Properties, "Priority")),
		Effort:   model.ParseLevel(selectValue(page.Properties, "Effort")),
		Quick:    checkboxValue(page.Properties, "Quick"),
	}, true
}

// titleOf finds the title property regardless of what it is named.
func titleOf(props notionapi.Properties) string {
	for _, prop := range props {
		if title, ok := prop.(*notionapi.TitleProperty); ok {
			return strings.TrimSpace(plainText(title.Title))
		}
	}
	return ""
}

func plainText(chunks []notionapi.RichText) string {
	var b strings.Builder
	for _, chunk := range chunks {
		b.WriteString(chunk.PlainText)
	}
	return b.String()
}

// selectValue reads a select or multi-select property, joining multi-select
// values with ", " (tasks usually carry a single project). Missing or
// differently-typed properties read as empty.
func selectValue(props notionapi.Properties, name string) string {
	switch prop := props[name].(type) {
	case *notionapi.SelectProperty:
		return prop.Select.Name
	case *notionapi.MultiSelectProperty:
		names := make([]string, 0, len(prop.MultiSelect))
		for _, opt := range prop.MultiSelect {
			names = append(names, opt.Name)
		}
		return strings.Join(names, ", ")
	}
	return ""
}

func checkboxValue(props notionapi.Properties, name string) bool {
	if cb, ok := props[name].(*notionapi.CheckboxProperty); ok {
		return cb.Checkbox
	}
	return false
}
