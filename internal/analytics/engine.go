// Package analytics derives dashboard metrics from committee member
// records. The engine is a pure reduction over an in-memory snapshot: no
// I/O, no shared state, safe to call concurrently.
package analytics

import (
	"math"
	"sort"

	"github.com/festivio/committee-dashboard/go-api-server/internal/model"
)

// Tier classifies a member by registrations brought. Tiers are matched
// most-restrictive-first, inclusive at MinRegistrations; the display color
// is opaque to the engine and passed through to the frontend.
type Tier struct {
	Name             string
	Color            string
	MinRegistrations int
}

// DefaultTierScheme matches the color tags the dashboard frontend renders.
var DefaultTierScheme = []Tier{
	{Name: "Platinum", Color: "bg-purple-100 text-purple-800", MinRegistrations: 15},
	{Name: "Gold", Color: "bg-yellow-100 text-yellow-800", MinRegistrations: 12},
	{Name: "Silver", Color: "bg-gray-100 text-gray-800", MinRegistrations: 8},
	{Name: "Bronze", Color: "bg-orange-100 text-orange-800", MinRegistrations: 0},
}

// Placeholder monthly totals until a real per-month aggregation keyed by
// record timestamps exists. Only "Mar" reflects live data.
const (
	januaryPlaceholder  = 35
	februaryPlaceholder = 42
)

// Engine computes aggregate reports over member snapshots.
type Engine struct {
	tiers []Tier
}

// NewEngine creates an engine with the given tier scheme, falling back to
// DefaultTierScheme when none is supplied.
func NewEngine(tiers []Tier) *Engine {
	if len(tiers) == 0 {
		tiers = DefaultTierScheme
	}
	return &Engine{tiers: tiers}
}

// OverviewMetrics is the dashboard headline report.
type OverviewMetrics struct {
	TotalMembers        int                    `json:"totalMembers"`
	TotalTasksCompleted int                    `json:"totalTasksCompleted"`
	TotalTasksPending   int                    `json:"totalTasksPending"`
	TotalRegistrations  int                    `json:"totalRegistrations"`
	AvgEfficiency       int                    `json:"avgEfficiency"`
	TopPerformer        *model.CommitteeMember `json:"topPerformer"`
}

// RankedMember is one row of the efficiency ranking; a total view, every
// member appears exactly once.
type RankedMember struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Role                 string `json:"role"`
	Efficiency           int    `json:"efficiency"`
	TasksCompleted       int    `json:"tasksCompleted"`
	TotalTasks           int    `json:"totalTasks"`
	RegistrationsBrought int    `json:"registrationsBrought"`
	Rank                 int    `json:"rank"`
}

// TaskAnalytics is the task completion report.
type TaskAnalytics struct {
	TotalTasks     int            `json:"totalTasks"`
	CompletedTasks int            `json:"completedTasks"`
	PendingTasks   int            `json:"pendingTasks"`
	CompletionRate int            `json:"completionRate"`
	AvgEfficiency  int            `json:"avgEfficiency"`
	RankedMembers  []RankedMember `json:"rankedMembers"`
}

// TierEntry is one member's row in the registration tier breakdown.
type TierEntry struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	Role                 string  `json:"role"`
	RegistrationsBrought int     `json:"registrationsBrought"`
	Tier                 string  `json:"tier"`
	TierColor            string  `json:"tierColor"`
	Percentage           float64 `json:"percentage"`
}

// RegistrationTopPerformer identifies the member who brought the most
// registrations.
type RegistrationTopPerformer struct {
	Name                 string `json:"name"`
	RegistrationsBrought int    `json:"registrationsBrought"`
}

// MonthlyRegistrations is one point of the monthly registration series.
type MonthlyRegistrations struct {
	Month         string `json:"month"`
	Registrations int    `json:"registrations"`
}

// RegistrationAnalytics is the registration performance report.
type RegistrationAnalytics struct {
	TotalRegistrations        int                       `json:"totalRegistrations"`
	AvgRegistrationsPerMember int                       `json:"avgRegistrationsPerMember"`
	TopPerformer              *RegistrationTopPerformer `json:"topPerformer"`
	RegistrationTiers         []TierEntry               `json:"registrationTiers"`
	MonthlyData               []MonthlyRegistrations    `json:"monthlyData"`
}

// Overview reduces the member snapshot to headline totals. An empty
// snapshot yields all zeros and no top performer. The top performer is the
// member with the strictly greatest efficiency; on a tie the first in input
// order wins, deterministically.
func (e *Engine) Overview(members []model.CommitteeMember) OverviewMetrics {
	if len(members) == 0 {
		return OverviewMetrics{}
	}

	metrics := OverviewMetrics{TotalMembers: len(members)}
	sumEfficiency := 0
	top := 0
	for i, m := range members {
		metrics.TotalTasksCompleted += m.TasksCompleted
		metrics.TotalTasksPending += m.TasksPending
		metrics.TotalRegistrations += m.RegistrationsBrought
		sumEfficiency += m.Efficiency
		if m.Efficiency > members[top].Efficiency {
			top = i
		}
	}

	metrics.AvgEfficiency = roundRatio(sumEfficiency, len(members))
	performer := members[top]
	performer.ComputeTotalTasks()
	metrics.TopPerformer = &performer
	return metrics
}

// Tasks reduces the member snapshot to the task completion report. Totals
// are recomputed from the task counters, never trusted from storage, and
// the ranking is a stable sort so tied efficiencies keep input order.
func (e *Engine) Tasks(members []model.CommitteeMember) TaskAnalytics {
	analytics := TaskAnalytics{
		RankedMembers: make([]RankedMember, 0, len(members)),
	}

	sumEfficiency := 0
	for _, m := range members {
		analytics.CompletedTasks += m.TasksCompleted
		analytics.PendingTasks += m.TasksPending
		analytics.TotalTasks += m.TasksCompleted + m.TasksPending
		sumEfficiency += m.Efficiency
	}

	if analytics.TotalTasks > 0 {
		analytics.CompletionRate = roundRatio(analytics.CompletedTasks*100, analytics.TotalTasks)
	}
	if len(members) > 0 {
		analytics.AvgEfficiency = roundRatio(sumEfficiency, len(members))
	}

	order := make([]int, len(members))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return members[order[a]].Efficiency > members[order[b]].Efficiency
	})

	for rank, idx := range order {
		m := members[idx]
		analytics.RankedMembers = append(analytics.RankedMembers, RankedMember{
			ID:                   m.ID,
			Name:                 m.Name,
			Role:                 m.Role,
			Efficiency:           m.Efficiency,
			TasksCompleted:       m.TasksCompleted,
			TotalTasks:           m.TasksCompleted + m.TasksPending,
			RegistrationsBrought: m.RegistrationsBrought,
			Rank:                 rank + 1,
		})
	}

	return analytics
}

// Registrations reduces the member snapshot to the registration report:
// totals, the top recruiter (first in input order on a tie), a tiered
// breakdown of every member sorted by registrations descending, and the
// monthly series with its two placeholder points.
func (e *Engine) Registrations(members []model.CommitteeMember) RegistrationAnalytics {
	if len(members) == 0 {
		return RegistrationAnalytics{
			RegistrationTiers: []TierEntry{},
			MonthlyData: []MonthlyRegistrations{
				{Month: "Jan"},
				{Month: "Feb"},
				{Month: "Mar"},
			},
		}
	}

	analytics := RegistrationAnalytics{
		RegistrationTiers: make([]TierEntry, 0, len(members)),
	}

	top := 0
	for i, m := range members {
		analytics.TotalRegistrations += m.RegistrationsBrought
		if m.RegistrationsBrought > members[top].RegistrationsBrought {
			top = i
		}
	}

	analytics.AvgRegistrationsPerMember = roundRatio(analytics.TotalRegistrations, len(members))
	analytics.TopPerformer = &RegistrationTopPerformer{
		Name:                 members[top].Name,
		RegistrationsBrought: members[top].RegistrationsBrought,
	}

	order := make([]int, len(members))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return members[order[a]].RegistrationsBrought > members[order[b]].RegistrationsBrought
	})

	for _, idx := range order {
		m := members[idx]
		tier := e.tierFor(m.RegistrationsBrought)

		percentage := 0.0
		if analytics.TotalRegistrations > 0 {
			share := float64(m.RegistrationsBrought) / float64(analytics.TotalRegistrations) * 100
			percentage = math.Round(share*10) / 10
		}

		analytics.RegistrationTiers = append(analytics.RegistrationTiers, TierEntry{
			ID:                   m.ID,
			Name:                 m.Name,
			Role:                 m.Role,
			RegistrationsBrought: m.RegistrationsBrought,
			Tier:                 tier.Name,
			TierColor:            tier.Color,
			Percentage:           percentage,
		})
	}

	analytics.MonthlyData = []MonthlyRegistrations{
		{Month: "Jan", Registrations: januaryPlaceholder},
		{Month: "Feb", Registrations: februaryPlaceholder},
		{Month: "Mar", Registrations: analytics.TotalRegistrations},
	}

	return analytics
}

// tierFor returns the first tier whose threshold the count meets. The
// scheme is ordered most-restrictive-first and ends with a zero-threshold
// catch-all.
func (e *Engine) tierFor(registrations int) Tier {
	for _, tier := range e.tiers {
		if registrations >= tier.MinRegistrations {
			return tier
		}
	}
	return e.tiers[len(e.tiers)-1]
}

// roundRatio divides and rounds to the nearest integer, halves away from
// zero, matching the frontend's expectations for averages and rates.
func roundRatio(numerator, denominator int) int {
	return int(math.Round(float64(numerator) / float64(denominator)))
}
