package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"learnify_backend/internal/config"
	"learnify_backend/internal/exam"
	"learnify_backend/internal/model"
	"learnify_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeExamStore struct {
	exam      *model.Exam
	questions []model.ExamQuestion
}

func (f *fakeExamStore) FindByID(id uint) (*model.Exam, error) {
	if f.exam == nil || f.exam.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *f.exam
	return &cp, nil
}

func (f *fakeExamStore) ListPublished() ([]model.Exam, error) {
	if f.exam == nil {
		return nil, nil
	}
	return []model.Exam{*f.exam}, nil
}

func (f *fakeExamStore) ListQuestions(examID uint) ([]model.ExamQuestion, error) {
	return f.questions, nil
}

type fakeAttemptStore struct {
	mu            sync.Mutex
	nextID        int
	byID          map[string]model.ExamAttempt
	inProgressErr error
	saved         *model.ExamAttempt
	savedAnswers  []model.ExamAttemptAnswer
}

func (f *fakeAttemptStore) put(a model.ExamAttempt) {
	if f.byID == nil {
		f.byID = make(map[string]model.ExamAttempt)
	}
	f.byID[a.ID] = a
}

func (f *fakeAttemptStore) Create(a *model.ExamAttempt) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	if a.ID == "" {
		a.ID = fmt.Sprintf("attempt-%d", f.nextID)
	}
	f.put(*a)
	return nil
}

func (f *fakeAttemptStore) FindByID(id string) (*model.ExamAttempt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &a, nil
}

func (f *fakeAttemptStore) FindInProgress(userID, examID uint) (*model.ExamAttempt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.inProgressErr != nil {
		return nil, f.inProgressErr
	}
	for _, a := range f.byID {
		if a.UserID == userID && a.ExamID == examID && a.Status == model.AttemptInProgress {
			cp := a
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAttemptStore) Update(a *model.ExamAttempt) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.put(*a)
	return nil
}

func (f *fakeAttemptStore) SaveResult(a *model.ExamAttempt, answers []model.ExamAttemptAnswer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *a
	f.saved = &cp
	f.savedAnswers = append([]model.ExamAttemptAnswer(nil), answers...)
	f.put(cp)
	return nil
}

func (f *fakeAttemptStore) ListAnswers(attemptID string) ([]model.ExamAttemptAnswer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.ExamAttemptAnswer
	for _, a := range f.savedAnswers {
		if a.AttemptID == attemptID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAttemptStore) ListCompletedByUser(userID uint) ([]model.ExamAttempt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.ExamAttempt
	for _, a := range f.byID {
		if a.UserID == userID && a.Status == model.AttemptCompleted {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeActivityStore struct {
	mu   sync.Mutex
	logs []model.LearningLog
}

func (f *fakeActivityStore) Create(log *model.LearningLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logs = append(f.logs, *log)
	return nil
}

func testCfg() *config.Config {
	return &config.Config{
		Exam: config.ExamConfig{
			DefaultDurationSeconds: 600,
			PassThreshold:          50,
			BankCacheMinutes:       10,
		},
	}
}

func publishedExam(id uint) *model.Exam {
	ex := &model.Exam{Title: "Aptitude Test", IsPublished: true, DurationSeconds: 600}
	ex.ID = id
	return ex
}

func TestStartCreatesLiveSession(t *testing.T) {
	attempts := &fakeAttemptStore{}
	svc := NewExamService(
		&fakeExamStore{exam: publishedExam(1), questions: newTestRows(t, 2)},
		attempts, &fakeActivityStore{}, nil, testCfg())

	view, err := svc.Start(context.Background(), 7, 1)
	require.NoError(t, err)
	t.Cleanup(func() { svc.Abandon(7, view.AttemptID) })

	assert.Equal(t, model.AttemptInProgress, view.Status)
	assert.Equal(t, 0, view.CurrentIndex)
	assert.Len(t, view.Questions, 2)

	svc.mu.Lock()
	_, alive := svc.live[view.AttemptID]
	svc.mu.Unlock()
	assert.True(t, alive)
}

func TestStartAbortsOnAttemptLookupError(t *testing.T) {
	attempts := &fakeAttemptStore{inProgressErr: errors.New("dial tcp: connection refused")}
	svc := NewExamService(
		&fakeExamStore{exam: publishedExam(1), questions: newTestRows(t, 2)},
		attempts, &fakeActivityStore{}, nil, testCfg())

	_, err := svc.Start(context.Background(), 7, 1)
	require.Error(t, err)
	assert.ErrorContains(t, err, "connection refused")

	// 查询失败时绝不能再开一卷
	attempts.mu.Lock()
	defer attempts.mu.Unlock()
	assert.Empty(t, attempts.byID)
}

func TestSubmitAfterCompletion(t *testing.T) {
	attempts := &fakeAttemptStore{}
	done := &model.ExamAttempt{ExamID: 1, UserID: 7, Status: model.AttemptCompleted}
	done.ID = "done-1"
	require.NoError(t, attempts.Create(done))

	svc := NewExamService(
		&fakeExamStore{exam: publishedExam(1)},
		attempts, &fakeActivityStore{}, nil, testCfg())

	_, err := svc.Submit(7, "done-1")
	assert.ErrorIs(t, err, util.ErrAttemptFinished)

	_, err = svc.Submit(8, "done-1")
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	_, err = svc.Submit(7, "missing")
	assert.ErrorIs(t, err, util.ErrAttemptNotFound)
}

func TestSubmitPersistsFinalState(t *testing.T) {
	attempts := &fakeAttemptStore{}
	logs := &fakeActivityStore{}
	svc := NewExamService(
		&fakeExamStore{exam: publishedExam(1), questions: newTestRows(t, 2)},
		attempts, logs, nil, testCfg())

	view, err := svc.Start(context.Background(), 7, 1)
	require.NoError(t, err)

	svc.mu.Lock()
	la := svc.live[view.AttemptID]
	svc.mu.Unlock()

	la.session.SelectOption("2")
	r, first := la.session.Submit()
	require.True(t, first)

	// 会话已摘除，成绩与逐题终态已写入
	svc.mu.Lock()
	_, alive := svc.live[view.AttemptID]
	svc.mu.Unlock()
	assert.False(t, alive)

	require.NotNil(t, attempts.saved)
	assert.Equal(t, model.AttemptCompleted, attempts.saved.Status)
	assert.Equal(t, r.Accuracy, attempts.saved.Accuracy)
	assert.Equal(t, 1, attempts.saved.CorrectCount)
	assert.True(t, attempts.saved.Pass)
	require.Len(t, attempts.savedAnswers, 2)
	assert.True(t, attempts.savedAnswers[0].Correct)
	assert.Equal(t, "2", attempts.savedAnswers[0].SelectedOption)
	assert.False(t, attempts.savedAnswers[1].Correct)
	assert.Empty(t, attempts.savedAnswers[1].SelectedOption)

	require.Len(t, logs.logs, 1)
	assert.Equal(t, "exam_completed", logs.logs[0].Activity)
	assert.Equal(t, r.Accuracy, logs.logs[0].Score)
}

// 视图构建与交卷终态写入必须在同一把服务锁后串行化，
// go test -race 下并发执行二者不允许出现数据竞争。
func TestViewDuringFinalizeIsSynchronized(t *testing.T) {
	la := newTestLiveAttempt(t, 3, 600)
	la.attempt.ID = "att-race"
	svc := &ExamService{live: map[string]*liveAttempt{"att-race": la}}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 300; i++ {
			_ = svc.buildLiveView(la)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 300; i++ {
			svc.finalizeAttempt(la, exam.Result{Correct: 1, Total: 3, Accuracy: 33, TimeTaken: "00m 05s"}, time.Now())
		}
	}()
	wg.Wait()

	snap := svc.finalizeAttempt(la, exam.Result{Correct: 2, Total: 3, Accuracy: 67, TimeTaken: "00m 09s", Pass: true}, time.Now())
	assert.Equal(t, model.AttemptCompleted, snap.Status)
	assert.Equal(t, 67, snap.Accuracy)
}
