package impl

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"talenttrack/config"
	"talenttrack/internal/domain/entity"
	"talenttrack/internal/domain/repository"
	"talenttrack/internal/domain/service"
	"talenttrack/internal/infra/metrics"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(leaderboardLimit int) *config.Config {
	cfg := &config.Config{
		Leaderboard: &config.LeaderboardConfig{Limit: leaderboardLimit},
	}

	return cfg
}

// fakeStore is a single in-memory backing store shared by all fake
// repositories, standing in for one database.
type fakeStore struct {
	users   map[uuid.UUID]*entity.User
	talents []*entity.Talent
	tasks   map[uuid.UUID]*entity.DailyTask
	catalog []*entity.Achievement
	unlocks []*entity.UserAchievement
	links   []*entity.CoachAthlete
	records []*entity.PerformanceRecord
	alerts  map[uuid.UUID]*entity.InjuryAlert
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:  make(map[uuid.UUID]*entity.User),
		tasks:  make(map[uuid.UUID]*entity.DailyTask),
		alerts: make(map[uuid.UUID]*entity.InjuryAlert),
	}
}

func (s *fakeStore) addUser(user *entity.User) *entity.User {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	s.users[user.ID] = user

	return user
}

func (s *fakeStore) addTask(task *entity.DailyTask) *entity.DailyTask {
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	s.tasks[task.ID] = task

	return task
}

func (s *fakeStore) factory() repository.RepositoryFactory {
	return &fakeFactory{store: s}
}

// fakeTxManager runs the transactional function directly against the store.
type fakeTxManager struct {
	store *fakeStore
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.store.factory())
}

// rowLockTxManager mimics row locking on the user table: FindByIDForUpdate
// blocks until the transaction holding the row returns, so interleaving
// tests see the same serialization the database provides.
type rowLockTxManager struct {
	store  *fakeStore
	userMu sync.Mutex
}

func (m *rowLockTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	f := &rowLockFactory{fakeFactory: fakeFactory{store: m.store}, userMu: &m.userMu}
	defer func() {
		if f.locked {
			m.userMu.Unlock()
		}
	}()

	return fn(f)
}

type rowLockFactory struct {
	fakeFactory

	userMu *sync.Mutex
	locked bool
}

func (f *rowLockFactory) NewUserRepository() repository.UserRepository {
	return &rowLockUserRepo{fakeUserRepo: fakeUserRepo{store: f.store}, factory: f}
}

type rowLockUserRepo struct {
	fakeUserRepo

	factory *rowLockFactory
}

func (r *rowLockUserRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if !r.factory.locked {
		r.factory.userMu.Lock()
		r.factory.locked = true
	}

	return r.fakeUserRepo.FindByID(ctx, id)
}

type fakeFactory struct {
	store *fakeStore
}

func (f *fakeFactory) NewUserRepository() repository.UserRepository {
	return &fakeUserRepo{store: f.store}
}

func (f *fakeFactory) NewTalentRepository() repository.TalentRepository {
	return &fakeTalentRepo{store: f.store}
}

func (f *fakeFactory) NewTaskRepository() repository.TaskRepository {
	return &fakeTaskRepo{store: f.store}
}

func (f *fakeFactory) NewAchievementRepository() repository.AchievementRepository {
	return &fakeAchievementRepo{store: f.store}
}

func (f *fakeFactory) NewCoachRepository() repository.CoachRepository {
	return &fakeCoachRepo{store: f.store}
}

func (f *fakeFactory) NewPerformanceRepository() repository.PerformanceRepository {
	return &fakePerformanceRepo{store: f.store}
}

func (f *fakeFactory) NewInjuryRepository() repository.InjuryRepository {
	return &fakeInjuryRepo{store: f.store}
}

type fakeUserRepo struct {
	store *fakeStore
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.store.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return user, nil
}

func (r *fakeUserRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeUserRepo) FindByExternalID(_ context.Context, externalID string) (*entity.User, error) {
	for _, user := range r.store.users {
		if user.ExternalID == externalID {
			return user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) ListAthletes(_ context.Context, sport string, limit int) ([]*entity.User, error) {
	var athletes []*entity.User
	for _, user := range r.store.users {
		if user.Role != entity.RoleAthlete {
			continue
		}
		if sport != "" && strings.ToLower(user.Sport) != sport {
			continue
		}
		athletes = append(athletes, user)
	}

	sort.Slice(athletes, func(i, j int) bool {
		if athletes[i].Points != athletes[j].Points {
			return athletes[i].Points > athletes[j].Points
		}

		return athletes[i].CreatedAt.Before(athletes[j].CreatedAt)
	})

	if limit > 0 && len(athletes) > limit {
		athletes = athletes[:limit]
	}

	return athletes, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.store.users[user.ID] = user

	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	if _, ok := r.store.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	r.store.users[user.ID] = user

	return nil
}

type fakeTalentRepo struct {
	store *fakeStore
}

func (r *fakeTalentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Talent, error) {
	for _, talent := range r.store.talents {
		if talent.ID == id {
			return talent, nil
		}
	}

	return nil, repository.ErrTalentNotFound
}

func (r *fakeTalentRepo) FindAll(_ context.Context) ([]*entity.Talent, error) {
	talents := make([]*entity.Talent, len(r.store.talents))
	copy(talents, r.store.talents)
	sort.Slice(talents, func(i, j int) bool {
		return talents[i].CreatedAt.After(talents[j].CreatedAt)
	})

	return talents, nil
}

func (r *fakeTalentRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Talent, error) {
	var talents []*entity.Talent
	for _, talent := range r.store.talents {
		if talent.UserID == userID {
			talents = append(talents, talent)
		}
	}
	sort.Slice(talents, func(i, j int) bool {
		return talents[i].CreatedAt.After(talents[j].CreatedAt)
	})

	return talents, nil
}

func (r *fakeTalentRepo) CountByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	for _, talent := range r.store.talents {
		if talent.UserID == userID {
			count++
		}
	}

	return count, nil
}

func (r *fakeTalentRepo) Create(_ context.Context, talent *entity.Talent) error {
	r.store.talents = append(r.store.talents, talent)

	return nil
}

func (r *fakeTalentRepo) Update(_ context.Context, talent *entity.Talent) error {
	for i, existing := range r.store.talents {
		if existing.ID == talent.ID {
			r.store.talents[i] = talent

			return nil
		}
	}

	return repository.ErrTalentNotFound
}

type fakeTaskRepo struct {
	store *fakeStore
}

func (r *fakeTaskRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.DailyTask, error) {
	task, ok := r.store.tasks[id]
	if !ok {
		return nil, repository.ErrTaskNotFound
	}

	return task, nil
}

func (r *fakeTaskRepo) FindCurrentByUser(_ context.Context, userID uuid.UUID, day time.Time) ([]*entity.DailyTask, error) {
	var tasks []*entity.DailyTask
	for _, task := range r.store.tasks {
		if task.UserID == nil || *task.UserID != userID {
			continue
		}
		if task.DueDate.Before(day) {
			continue
		}
		tasks = append(tasks, task)
	}
	sort.Slice(tasks, func(i, j int) bool {
		if !tasks[i].DueDate.Equal(tasks[j].DueDate) {
			return tasks[i].DueDate.Before(tasks[j].DueDate)
		}

		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})

	return tasks, nil
}

func (r *fakeTaskRepo) Create(_ context.Context, task *entity.DailyTask) error {
	r.store.tasks[task.ID] = task

	return nil
}

func (r *fakeTaskRepo) CreateBatch(ctx context.Context, tasks []*entity.DailyTask) error {
	for _, task := range tasks {
		if err := r.Create(ctx, task); err != nil {
			return err
		}
	}

	return nil
}

func (r *fakeTaskRepo) Update(_ context.Context, task *entity.DailyTask) error {
	if _, ok := r.store.tasks[task.ID]; !ok {
		return repository.ErrTaskNotFound
	}
	r.store.tasks[task.ID] = task

	return nil
}

type fakeAchievementRepo struct {
	store *fakeStore
}

func (r *fakeAchievementRepo) FindAll(_ context.Context) ([]*entity.Achievement, error) {
	catalog := make([]*entity.Achievement, len(r.store.catalog))
	copy(catalog, r.store.catalog)
	sort.Slice(catalog, func(i, j int) bool {
		return catalog[i].PointsRequired < catalog[j].PointsRequired
	})

	return catalog, nil
}

func (r *fakeAchievementRepo) FindUnlockedByUser(_ context.Context, userID uuid.UUID) ([]*entity.UserAchievement, error) {
	var unlocked []*entity.UserAchievement
	for _, ua := range r.store.unlocks {
		if ua.UserID == userID {
			unlocked = append(unlocked, ua)
		}
	}
	sort.Slice(unlocked, func(i, j int) bool {
		return unlocked[i].UnlockedAt.After(unlocked[j].UnlockedAt)
	})

	return unlocked, nil
}

func (r *fakeAchievementRepo) CreateUserAchievement(_ context.Context, ua *entity.UserAchievement) error {
	r.store.unlocks = append(r.store.unlocks, ua)

	return nil
}

func (r *fakeAchievementRepo) SeedCatalog(_ context.Context, achievements []*entity.Achievement) error {
	for _, achievement := range achievements {
		exists := false
		for _, existing := range r.store.catalog {
			if existing.Name == achievement.Name {
				exists = true

				break
			}
		}
		if !exists {
			r.store.catalog = append(r.store.catalog, achievement)
		}
	}

	return nil
}

type fakeCoachRepo struct {
	store *fakeStore
}

func (r *fakeCoachRepo) FindLink(_ context.Context, coachID, athleteID uuid.UUID) (*entity.CoachAthlete, error) {
	for _, link := range r.store.links {
		if link.CoachID == coachID && link.AthleteID == athleteID {
			return link, nil
		}
	}

	return nil, repository.ErrCoachLinkNotFound
}

func (r *fakeCoachRepo) FindAthletesByCoach(_ context.Context, coachID uuid.UUID) ([]*entity.CoachAthlete, error) {
	var links []*entity.CoachAthlete
	for _, link := range r.store.links {
		if link.CoachID == coachID {
			links = append(links, link)
		}
	}
	sort.Slice(links, func(i, j int) bool {
		return links[i].CreatedAt.Before(links[j].CreatedAt)
	})

	return links, nil
}

func (r *fakeCoachRepo) CreateLink(_ context.Context, link *entity.CoachAthlete) error {
	r.store.links = append(r.store.links, link)

	return nil
}

type fakePerformanceRepo struct {
	store *fakeStore
}

func (r *fakePerformanceRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.PerformanceRecord, error) {
	var records []*entity.PerformanceRecord
	for _, record := range r.store.records {
		if record.UserID == userID {
			records = append(records, record)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].RecordedAt.Before(records[j].RecordedAt)
	})

	return records, nil
}

func (r *fakePerformanceRepo) CountByUsersSince(_ context.Context, userIDs []uuid.UUID, since time.Time) (int64, error) {
	members := make(map[uuid.UUID]struct{}, len(userIDs))
	for _, id := range userIDs {
		members[id] = struct{}{}
	}

	var count int64
	for _, record := range r.store.records {
		if _, ok := members[record.UserID]; !ok {
			continue
		}
		if record.RecordedAt.Before(since) {
			continue
		}
		count++
	}

	return count, nil
}

func (r *fakePerformanceRepo) Create(_ context.Context, record *entity.PerformanceRecord) error {
	r.store.records = append(r.store.records, record)

	return nil
}

type fakeInjuryRepo struct {
	store *fakeStore
}

func (r *fakeInjuryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.InjuryAlert, error) {
	alert, ok := r.store.alerts[id]
	if !ok {
		return nil, repository.ErrAlertNotFound
	}

	return alert, nil
}

func (r *fakeInjuryRepo) FindByCoach(_ context.Context, coachID uuid.UUID) ([]*entity.InjuryAlert, error) {
	var alerts []*entity.InjuryAlert
	for _, alert := range r.store.alerts {
		if alert.CoachID != nil && *alert.CoachID == coachID {
			alerts = append(alerts, alert)
		}
	}
	sort.Slice(alerts, func(i, j int) bool {
		return alerts[i].CreatedAt.After(alerts[j].CreatedAt)
	})

	return alerts, nil
}

func (r *fakeInjuryRepo) CountUnresolvedByCoach(_ context.Context, coachID uuid.UUID) (int64, error) {
	var count int64
	for _, alert := range r.store.alerts {
		if alert.CoachID != nil && *alert.CoachID == coachID && !alert.Resolved {
			count++
		}
	}

	return count, nil
}

func (r *fakeInjuryRepo) Create(_ context.Context, alert *entity.InjuryAlert) error {
	r.store.alerts[alert.ID] = alert

	return nil
}

func (r *fakeInjuryRepo) Update(_ context.Context, alert *entity.InjuryAlert) error {
	if _, ok := r.store.alerts[alert.ID]; !ok {
		return repository.ErrAlertNotFound
	}
	r.store.alerts[alert.ID] = alert

	return nil
}

// fakeRecommender lets each test script the AI collaborator's behavior.
type fakeRecommender struct {
	tasks    func(ctx context.Context, profile *service.AthleteProfile) ([]*service.TaskRecommendation, error)
	analysis func(ctx context.Context, profile *service.AthleteProfile, history []*entity.PerformanceRecord) (*service.InjuryAnalysis, error)
}

func (r *fakeRecommender) GenerateTaskRecommendations(ctx context.Context, profile *service.AthleteProfile) ([]*service.TaskRecommendation, error) {
	if r.tasks == nil {
		return nil, service.ErrRecommenderDisabled
	}

	return r.tasks(ctx, profile)
}

func (r *fakeRecommender) AnalyzeInjuryRisk(ctx context.Context, profile *service.AthleteProfile, history []*entity.PerformanceRecord) (*service.InjuryAnalysis, error) {
	if r.analysis == nil {
		return nil, service.ErrRecommenderDisabled
	}

	return r.analysis(ctx, profile, history)
}

func newTestMetrics() *metrics.Metrics {
	return metrics.New()
}

func seedTestCatalog(store *fakeStore) {
	_ = (&fakeAchievementRepo{store: store}).SeedCatalog(context.Background(), defaultCatalog())
}
