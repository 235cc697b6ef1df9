// Package taskcategory serves the fixed task-category summary. The
// category list and its per-category totals are a compatibility contract
// with the dashboard frontend and must be reproduced verbatim.
package taskcategory

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// TaskCategory is one category's completion summary.
type TaskCategory struct {
	Category  string `json:"category"`
	Completed int    `json:"completed"`
	Pending   int    `json:"pending"`
	Total     int    `json:"total"`
}

var categories = []TaskCategory{
	{Category: "Event Planning", Completed: 25, Pending: 8, Total: 33},
	{Category: "Marketing", Completed: 18, Pending: 5, Total: 23},
	{Category: "Outreach", Completed: 22, Pending: 4, Total: 26},
	{Category: "Administration", Completed: 15, Pending: 7, Total: 22},
}

type TaskCategoryHandler struct{}

func NewTaskCategoryHandler() *TaskCategoryHandler {
	return &TaskCategoryHandler{}
}

func (h *TaskCategoryHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, categories)
}
