package member

import (
	"github.com/festivio/committee-dashboard/go-api-server/internal/model"
)

// PerformanceEntryInput is one month/score pair in a request body.
type PerformanceEntryInput struct {
	Month string `json:"month" binding:"required,monthlabel"`
	Score int    `json:"score" binding:"gte=0,lte=100"`
}

type CreateMemberRequest struct {
	Name                 string                  `json:"name" binding:"required,max=100"`
	Role                 string                  `json:"role" binding:"required,max=50"`
	Contact              string                  `json:"contact" binding:"required,email"`
	Phone                string                  `json:"phone"`
	TasksCompleted       int                     `json:"tasksCompleted" binding:"gte=0"`
	TasksPending         int                     `json:"tasksPending" binding:"gte=0"`
	Efficiency           int                     `json:"efficiency" binding:"gte=0,lte=100"`
	RegistrationsBrought int                     `json:"registrationsBrought" binding:"gte=0"`
	PerformanceHistory   []PerformanceEntryInput `json:"performanceHistory" binding:"omitempty,dive"`
}

// UpdateMemberRequest carries a partial update. Only non-nil fields are
// validated and applied; the rest of the record is left untouched.
type UpdateMemberRequest struct {
	Name                 *string                  `json:"name" binding:"omitempty,min=1,max=100"`
	Role                 *string                  `json:"role" binding:"omitempty,min=1,max=50"`
	Contact              *string                  `json:"contact" binding:"omitempty,email"`
	Phone                *string                  `json:"phone"`
	TasksCompleted       *int                     `json:"tasksCompleted" binding:"omitempty,gte=0"`
	TasksPending         *int                     `json:"tasksPending" binding:"omitempty,gte=0"`
	Efficiency           *int                     `json:"efficiency" binding:"omitempty,gte=0,lte=100"`
	RegistrationsBrought *int                     `json:"registrationsBrought" binding:"omitempty,gte=0"`
	PerformanceHistory   *[]PerformanceEntryInput `json:"performanceHistory" binding:"omitempty,dive"`
}

func toPerformanceHistory(entries []PerformanceEntryInput) model.PerformanceHistory {
	history := make(model.PerformanceHistory, 0, len(entries))
	for _, entry := range entries {
		history = append(history, model.PerformanceEntry{
			Month: entry.Month,
			Score: entry.Score,
		})
	}
	return history
}
