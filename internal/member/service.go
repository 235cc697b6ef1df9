package member

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/festivio/committee-dashboard/go-api-server/internal/model"
	"github.com/festivio/committee-dashboard/go-api-server/internal/shared/database"
	"github.com/festivio/committee-dashboard/go-api-server/internal/shared/logger"
	"gorm.io/gorm"
)

type MemberService struct {
	db               *gorm.DB
	memberRepository Repository
}

func NewMemberService(db *gorm.DB, memberRepository Repository) *MemberService {
	return &MemberService{
		db:               db,
		memberRepository: memberRepository,
	}
}

// Create validates are handled at binding time; here the member gets its
// UUID and derived total, then is inserted.
func (s *MemberService) Create(ctx context.Context, request *CreateMemberRequest) (*model.CommitteeMember, error) {
	log := logger.FromContext(ctx)

	member := model.NewCommitteeMember(
		request.Name,
		request.Role,
		request.Contact,
		request.Phone,
		request.TasksCompleted,
		request.TasksPending,
		request.Efficiency,
		request.RegistrationsBrought,
		toPerformanceHistory(request.PerformanceHistory),
	)

	if err := s.memberRepository.Insert(ctx, s.db, member); err != nil {
		log.Error("Failed to create member", "error", err)
		return nil, fmt.Errorf("create member: %w", err)
	}

	log.Info("Member created", "member_id", member.ID, "contact", logger.MaskEmail(member.Contact))
	return member, nil
}

// List returns up to the fetch cap of members with the derived total
// recomputed, never trusted from storage.
func (s *MemberService) List(ctx context.Context) ([]model.CommitteeMember, error) {
	members, err := s.memberRepository.FindAll(ctx, s.db)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to list members", "error", err)
		return nil, fmt.Errorf("list members: %w", err)
	}

	for i := range members {
		members[i].ComputeTotalTasks()
	}
	return members, nil
}

func (s *MemberService) Get(ctx context.Context, id string) (*model.CommitteeMember, error) {
	member, err := s.memberRepository.FindByID(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("member %s not found %w", id, ErrMemberNotFound)
		}
		logger.FromContext(ctx).Error("Failed to fetch member", "member_id", id, "error", err)
		return nil, fmt.Errorf("fetch member: %w", err)
	}

	member.ComputeTotalTasks()
	return member, nil
}

// Update applies a partial update. Existence is checked before any write,
// and total_tasks is recomputed whenever either task counter is supplied,
// using the new value where supplied and the stored value otherwise.
func (s *MemberService) Update(ctx context.Context, id string, request *UpdateMemberRequest) (*model.CommitteeMember, error) {
	log := logger.FromContext(ctx)
	var updated *model.CommitteeMember

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		existing, err := s.memberRepository.FindByID(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("member %s not found %w", id, ErrMemberNotFound)
			}
			return fmt.Errorf("fetch member for update: %w", err)
		}

		fields := buildUpdateFields(existing, request)

		if _, err := s.memberRepository.UpdateFields(ctx, tx, id, fields); err != nil {
			log.Error("Failed to update member", "member_id", id, "error", err)
			return fmt.Errorf("update member: %w", err)
		}

		updated, err = s.memberRepository.FindByID(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("fetch updated member: %w", err)
		}
		updated.ComputeTotalTasks()
		return nil
	})

	if err != nil {
		return nil, err
	}

	log.Info("Member updated", "member_id", id)
	return updated, nil
}

func (s *MemberService) Delete(ctx context.Context, id string) error {
	deleted, err := s.memberRepository.DeleteByID(ctx, s.db, id)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to delete member", "member_id", id, "error", err)
		return fmt.Errorf("delete member: %w", err)
	}
	if deleted == 0 {
		return fmt.Errorf("member %s not found %w", id, ErrMemberNotFound)
	}

	logger.FromContext(ctx).Info("Member deleted", "member_id", id)
	return nil
}

// buildUpdateFields translates the supplied DTO fields into column updates.
// updated_at is always refreshed; total_tasks only when a task counter is
// part of the update.
func buildUpdateFields(existing *model.CommitteeMember, request *UpdateMemberRequest) map[string]interface{} {
	fields := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}

	if request.Name != nil {
		fields["name"] = *request.Name
	}
	if request.Role != nil {
		fields["role"] = *request.Role
	}
	if request.Contact != nil {
		fields["contact"] = *request.Contact
	}
	if request.Phone != nil {
		fields["phone"] = *request.Phone
	}
	if request.Efficiency != nil {
		fields["efficiency"] = *request.Efficiency
	}
	if request.RegistrationsBrought != nil {
		fields["registrations_brought"] = *request.RegistrationsBrought
	}
	if request.PerformanceHistory != nil {
		fields["performance_history"] = toPerformanceHistory(*request.PerformanceHistory)
	}

	if request.TasksCompleted != nil || request.TasksPending != nil {
		completed := existing.TasksCompleted
		pending := existing.TasksPending
		if request.TasksCompleted != nil {
			completed = *request.TasksCompleted
			fields["tasks_completed"] = completed
		}
		if request.TasksPending != nil {
			pending = *request.TasksPending
			fields["tasks_pending"] = pending
		}
		fields["total_tasks"] = completed + pending
	}

	return fields
}
