// Package scoring computes point deltas for user actions. All functions are
// pure: they take the observable state and return the award breakdown without
// touching storage, so the rules stay unit-testable without any I/O.
package scoring

import "talenttrack/internal/domain/entity"

// Point rules for talent submissions.
const (
	TalentBasePoints        = 10
	FirstTalentBonus        = 20
	TalentMilestoneBonus    = 50
	TalentMilestoneInterval = 5
)

// Award is the breakdown of a single point delta.
type Award struct {
	Base  int
	Bonus int
}

// Total returns the full delta to apply to the user's running total.
func (a Award) Total() int {
	return a.Base + a.Bonus
}

// TalentAward computes the delta for a talent submission given the user's
// post-submission talent count. The first-ever talent earns a one-time bonus,
// and every exact multiple of the milestone interval earns a milestone bonus.
// Count 1 is never a multiple of 5, so the two bonuses cannot overlap today;
// that is a property of the milestone set, not a rule.
func TalentAward(postSubmissionCount int) Award {
	award := Award{Base: TalentBasePoints}

	if postSubmissionCount == 1 {
		award.Bonus += FirstTalentBonus
	}
	if postSubmissionCount > 0 && postSubmissionCount%TalentMilestoneInterval == 0 {
		award.Bonus += TalentMilestoneBonus
	}

	return award
}

// TaskAward computes the delta for completing a daily task: the task's fixed
// point value, no bonus logic. Idempotence is enforced by the caller, which
// must not apply the award to an already-completed task.
func TaskAward(task *entity.DailyTask) Award {
	return Award{Base: task.Points}
}
