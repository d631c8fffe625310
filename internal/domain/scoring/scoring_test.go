package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"talenttrack/internal/domain/entity"
)

func TestTalentAward(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		postCount int
		wantBase  int
		wantBonus int
	}{
		{name: "first talent earns welcome bonus", postCount: 1, wantBase: 10, wantBonus: 20},
		{name: "second talent is base only", postCount: 2, wantBase: 10, wantBonus: 0},
		{name: "fourth talent is base only", postCount: 4, wantBase: 10, wantBonus: 0},
		{name: "fifth talent hits milestone", postCount: 5, wantBase: 10, wantBonus: 50},
		{name: "sixth talent is base only", postCount: 6, wantBase: 10, wantBonus: 0},
		{name: "tenth talent hits milestone", postCount: 10, wantBase: 10, wantBonus: 50},
		{name: "twenty fifth talent hits milestone", postCount: 25, wantBase: 10, wantBonus: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			award := TalentAward(tt.postCount)
			assert.Equal(t, tt.wantBase, award.Base)
			assert.Equal(t, tt.wantBonus, award.Bonus)
			assert.Equal(t, tt.wantBase+tt.wantBonus, award.Total())
		})
	}
}

func TestTaskAward(t *testing.T) {
	t.Parallel()

	task := &entity.DailyTask{Points: 20}
	assert.Equal(t, 20, TaskAward(task).Total())

	zero := &entity.DailyTask{}
	assert.Equal(t, 0, TaskAward(zero).Total())
}
