package services

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/niel2512/hackathon-SmartFlow/internal/apperr"
	"github.com/niel2512/hackathon-SmartFlow/internal/domain"
	"github.com/niel2512/hackathon-SmartFlow/internal/repos"
)

// WorkflowService stores declarative trigger/action rules and handles webhook
// firing. Firing is a logged no-op: the action label selects a notification
// message only, no stock or staff side effect is performed.
type WorkflowService struct {
	Rules  *repos.WorkflowRepo
	Notes  *repos.NotificationRepo
	AppURL string
}

func NewWorkflowService(rules *repos.WorkflowRepo, notes *repos.NotificationRepo, appURL string) *WorkflowService {
	return &WorkflowService{Rules: rules, Notes: notes, AppURL: appURL}
}

func (s *WorkflowService) List() ([]domain.WorkflowRule, error) { return s.Rules.List() }

func (s *WorkflowService) Create(in domain.CreateRuleInput) (domain.WorkflowRule, error) {
	w := domain.WorkflowRule{
		ID:        uuid.NewString(),
		Trigger:   in.Trigger,
		Action:    in.Action,
		CreatedAt: repos.Now(),
	}
	if err := s.Rules.Create(w); err != nil {
		return domain.WorkflowRule{}, err
	}
	return w, nil
}

func (s *WorkflowService) Delete(id string) error {
	return s.Rules.Delete(id)
}

// WebhookURL is the endpoint an external automation (a Zapier Zap) posts to in
// order to fire the rule.
func (s *WorkflowService) WebhookURL(ruleID string) string {
	return s.AppURL + "/api/webhooks/zapier/" + ruleID
}

// Fire looks up the rule and appends exactly one Automation notification
// naming the trigger and the action phrase.
func (s *WorkflowService) Fire(id string) (domain.WorkflowRule, error) {
	w, err := s.Rules.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.WorkflowRule{}, apperr.NotFound("Rule not found")
	}
	if err != nil {
		return domain.WorkflowRule{}, err
	}

	phrase := "Sending notification"
	switch w.Action {
	case domain.ActionReduceStock:
		phrase = "Reducing stock"
	case domain.ActionAssignStaff:
		phrase = "Assigning staff"
	}
	msg := fmt.Sprintf("Zapier automation triggered: %s → %s", w.Trigger, phrase)
	if _, err := s.Notes.Append(msg, domain.NotifyAutomation); err != nil {
		return domain.WorkflowRule{}, err
	}
	return w, nil
}
