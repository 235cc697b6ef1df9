package model

import (
	"github.com/google/uuid"
)

// CommitteeMember represents one committee participant's tracked performance.
// The ID is an opaque UUID string assigned at creation and never changed.
type CommitteeMember struct {
	ID string `gorm:"column:id;type:VARCHAR2(36);primaryKey" json:"id"`

	// Core fields
	Name    string `gorm:"column:name;type:VARCHAR2(100);not null" json:"name"`
	Role    string `gorm:"column:role;type:VARCHAR2(50);not null" json:"role"`
	Contact string `gorm:"column:contact;type:VARCHAR2(255);not null" json:"contact"` // email address
	Phone   string `gorm:"column:phone;type:VARCHAR2(100)" json:"phone,omitempty"`    // free text, optional

	// Task tracking. TotalTasks is derived from the other two and is
	// recomputed on every write that touches either input; readers call
	// ComputeTotalTasks instead of trusting the stored value.
	TasksCompleted int `gorm:"column:tasks_completed;not null" json:"tasksCompleted"`
	TasksPending   int `gorm:"column:tasks_pending;not null" json:"tasksPending"`
	TotalTasks     int `gorm:"column:total_tasks;not null" json:"totalTasks"`

	Efficiency           int `gorm:"column:efficiency;not null" json:"efficiency"` // 0..100
	RegistrationsBrought int `gorm:"column:registrations_brought;not null" json:"registrationsBrought"`

	PerformanceHistory PerformanceHistory `gorm:"column:performance_history;type:CLOB" json:"performanceHistory"`

	BaseEntity
}

// TableName specifies the table name for CommitteeMember
func (*CommitteeMember) TableName() string {
	return "committee_member"
}

// NewCommitteeMember creates a member with a fresh UUID and the derived
// total already computed. Timestamps are filled by GORM on insert.
func NewCommitteeMember(name, role, contact, phone string, tasksCompleted, tasksPending, efficiency, registrationsBrought int, history PerformanceHistory) *CommitteeMember {
	if history == nil {
		history = PerformanceHistory{}
	}
	m := &CommitteeMember{
		ID:                   uuid.NewString(),
		Name:                 name,
		Role:                 role,
		Contact:              contact,
		Phone:                phone,
		TasksCompleted:       tasksCompleted,
		TasksPending:         tasksPending,
		Efficiency:           efficiency,
		RegistrationsBrought: registrationsBrought,
		PerformanceHistory:   history,
	}
	m.ComputeTotalTasks()
	return m
}

// ComputeTotalTasks refreshes the derived total and returns it.
func (m *CommitteeMember) ComputeTotalTasks() int {
	m.TotalTasks = m.TasksCompleted + m.TasksPending
	return m.TotalTasks
}
