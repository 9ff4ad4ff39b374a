package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"learnify_backend/internal/config"
	"learnify_backend/internal/exam"
	"learnify_backend/internal/model"
	"learnify_backend/internal/util"
	"learnify_backend/pkg/logger"
	"learnify_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ExamStore 测验与题目的读取接口，由 repository.ExamRepository 实现。
type ExamStore interface {
	FindByID(id uint) (*model.Exam, error)
	ListPublished() ([]model.Exam, error)
	ListQuestions(examID uint) ([]model.ExamQuestion, error)
}

// AttemptStore 答题尝试的存取接口，由 repository.AttemptRepository 实现。
type AttemptStore interface {
	Create(attempt *model.ExamAttempt) error
	FindByID(id string) (*model.ExamAttempt, error)
	FindInProgress(userID, examID uint) (*model.ExamAttempt, error)
	Update(attempt *model.ExamAttempt) error
	SaveResult(attempt *model.ExamAttempt, answers []model.ExamAttemptAnswer) error
	ListAnswers(attemptID string) ([]model.ExamAttemptAnswer, error)
	ListCompletedByUser(userID uint) ([]model.ExamAttempt, error)
}

// ActivityStore 学习日志写入接口，由 repository.LearningLogRepository 实现。
type ActivityStore interface {
	Create(log *model.LearningLog) error
}

// liveAttempt 内存中的活动会话。questions 与引擎题号按位置对齐：
// 引擎的第 i+1 题对应 questions[i]。
//
// attempt 指向的字段会在交卷/放弃时被改写，读写都必须在服务锁内进行；
// exam 和 questions 建会话后只读。
type liveAttempt struct {
	attempt   *model.ExamAttempt
	exam      *model.Exam
	session   *exam.Session
	questions []model.ExamQuestion
}

// ExamService 测验发卷与会话管理。活动会话常驻内存，只有提交或放弃
// 时才落库；进程重启后未完成的会话按 abandoned 处理。
type ExamService struct {
	ExamRepo    ExamStore
	AttemptRepo AttemptStore
	LogRepo     ActivityStore
	Redis       *redis.Client
	Cfg         *config.Config

	mu   sync.Mutex
	live map[string]*liveAttempt
}

func NewExamService(
	examRepo ExamStore,
	attemptRepo AttemptStore,
	logRepo ActivityStore,
	rdb *redis.Client,
	cfg *config.Config,
) *ExamService {
	return &ExamService{
		ExamRepo:    examRepo,
		AttemptRepo: attemptRepo,
		LogRepo:     logRepo,
		Redis:       rdb,
		Cfg:         cfg,
		live:        make(map[string]*liveAttempt),
	}
}

func (s *ExamService) ListExams() ([]model.Exam, error) {
	return s.ExamRepo.ListPublished()
}

// Start 开卷。同一用户同一试卷已有活动会话时直接返回该会话的视图，
// 避免重复开卷产生并行计时器。
func (s *ExamService) Start(ctx context.Context, userID, examID uint) (*AttemptView, error) {
	ex, err := s.ExamRepo.FindByID(examID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrExamNotFound
	}
	if err != nil {
		return nil, err
	}
	if !ex.IsPublished {
		return nil, util.ErrExamNotPublished
	}

	prev, err := s.AttemptRepo.FindInProgress(userID, examID)
	switch {
	case err == nil:
		s.mu.Lock()
		_, alive := s.live[prev.ID]
		s.mu.Unlock()
		if alive {
			return s.View(ctx, userID, prev.ID)
		}
		// 库里挂着 in_progress 但内存里没有会话，说明进程重启过
		prev.Status = model.AttemptAbandoned
		if err := s.AttemptRepo.Update(prev); err != nil {
			return nil, err
		}
	case !errors.Is(err, gorm.ErrRecordNotFound):
		// 查询失败时不能当作"没有旧会话"继续，否则会留下悬挂的 in_progress
		return nil, err
	}

	rows, err := s.loadQuestions(ctx, examID)
	if err != nil {
		return nil, err
	}
	bank, err := buildBank(rows)
	if err != nil {
		return nil, err
	}

	duration := ex.DurationSeconds
	if duration <= 0 {
		duration = s.Cfg.Exam.DefaultDurationSeconds
	}
	threshold := ex.PassThreshold
	if threshold <= 0 {
		threshold = s.Cfg.Exam.PassThreshold
	}

	attempt := &model.ExamAttempt{
		ExamID:    examID,
		UserID:    userID,
		Status:    model.AttemptInProgress,
		StartedAt: time.Now(),
	}
	if err := s.AttemptRepo.Create(attempt); err != nil {
		return nil, err
	}

	session := exam.NewSession(bank, exam.Config{
		TotalSeconds:  duration,
		PassThreshold: threshold,
		OnFinish: func(r exam.Result) {
			s.persistResult(attempt.ID, r)
		},
	})

	la := &liveAttempt{attempt: attempt, exam: ex, session: session, questions: rows}
	s.mu.Lock()
	s.live[attempt.ID] = la
	s.mu.Unlock()
	monitoring.ActiveExamSessions.Inc()

	session.Start()
	return s.buildLiveView(la), nil
}

// SelectOption 更新当前题的选中项，点已选中的选项即取消选中。
func (s *ExamService) SelectOption(userID uint, attemptID, optionID string) error {
	la, err := s.getLive(userID, attemptID)
	if err != nil {
		return err
	}
	la.session.SelectOption(optionID)
	return nil
}

// Navigate 跳转到指定题号（0 起始下标），离开当前题时提交其暂存答案。
func (s *ExamService) Navigate(userID uint, attemptID string, index int) error {
	la, err := s.getLive(userID, attemptID)
	if err != nil {
		return err
	}
	return la.session.NavigateTo(index)
}

func (s *ExamService) ToggleReview(userID uint, attemptID string) error {
	la, err := s.getLive(userID, attemptID)
	if err != nil {
		return err
	}
	la.session.ToggleMarkForReview()
	return nil
}

// Submit 交卷。重复提交已落库的尝试返回 ErrAttemptFinished，
// 活动会话内的重复提交由引擎幂等处理，返回既有成绩。
func (s *ExamService) Submit(userID uint, attemptID string) (exam.Result, error) {
	la, err := s.getLive(userID, attemptID)
	if err == nil {
		r, _ := la.session.Submit()
		return r, nil
	}
	if !errors.Is(err, util.ErrAttemptNotLive) {
		return exam.Result{}, err
	}

	// 内存里没有会话：区分"已交卷"和"不存在"
	attempt, dbErr := s.AttemptRepo.FindByID(attemptID)
	if errors.Is(dbErr, gorm.ErrRecordNotFound) {
		return exam.Result{}, util.ErrAttemptNotFound
	}
	if dbErr != nil {
		return exam.Result{}, dbErr
	}
	if attempt.UserID != userID {
		return exam.Result{}, util.ErrPermissionDenied
	}
	if attempt.Status == model.AttemptCompleted {
		return exam.Result{}, util.ErrAttemptFinished
	}
	return exam.Result{}, util.ErrAttemptNotLive
}

// Abandon 放弃会话：停掉倒计时并把尝试标记为 abandoned，不计成绩。
func (s *ExamService) Abandon(userID uint, attemptID string) error {
	s.mu.Lock()
	la, ok := s.live[attemptID]
	if !ok {
		s.mu.Unlock()
		return util.ErrAttemptNotLive
	}
	if la.attempt.UserID != userID {
		s.mu.Unlock()
		return util.ErrPermissionDenied
	}
	delete(s.live, attemptID)
	la.attempt.Status = model.AttemptAbandoned
	attempt := *la.attempt
	s.mu.Unlock()

	la.session.Close()
	monitoring.ActiveExamSessions.Dec()

	return s.AttemptRepo.Update(&attempt)
}

// View 会话视图。活动会话读内存；已结束的尝试从库里还原批改页。
func (s *ExamService) View(ctx context.Context, userID uint, attemptID string) (*AttemptView, error) {
	s.mu.Lock()
	la, alive := s.live[attemptID]
	if alive && la.attempt.UserID != userID {
		s.mu.Unlock()
		return nil, util.ErrPermissionDenied
	}
	s.mu.Unlock()

	if alive {
		return s.buildLiveView(la), nil
	}

	attempt, err := s.AttemptRepo.FindByID(attemptID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAttemptNotFound
	}
	if err != nil {
		return nil, err
	}
	if attempt.UserID != userID {
		return nil, util.ErrPermissionDenied
	}
	if attempt.Status != model.AttemptCompleted {
		return nil, util.ErrAttemptNotLive
	}
	return s.buildReviewView(ctx, attempt)
}

// ListResults 用户已完成的全部测验成绩。
func (s *ExamService) ListResults(userID uint) ([]model.ExamAttempt, error) {
	return s.AttemptRepo.ListCompletedByUser(userID)
}

// getLive 取出活动会话并校验归属。
func (s *ExamService) getLive(userID uint, attemptID string) (*liveAttempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	la, ok := s.live[attemptID]
	if !ok {
		return nil, util.ErrAttemptNotLive
	}
	if la.attempt.UserID != userID {
		return nil, util.ErrPermissionDenied
	}
	return la, nil
}

// finalizeAttempt 在服务锁内写入尝试的终态字段并返回副本。
// 并发的视图构建同样在锁内读取这些字段，二者由此串行化。
func (s *ExamService) finalizeAttempt(la *liveAttempt, r exam.Result, now time.Time) model.ExamAttempt {
	s.mu.Lock()
	defer s.mu.Unlock()
	la.attempt.Status = model.AttemptCompleted
	la.attempt.CompletedAt = &now
	la.attempt.CorrectCount = r.Correct
	la.attempt.Accuracy = r.Accuracy
	la.attempt.TimeTaken = r.TimeTaken
	la.attempt.Pass = r.Pass
	la.attempt.IsTimeout = r.Timeout
	return *la.attempt
}

// persistResult 提交回调：摘除活动会话并把逐题终态与成绩落库。
// 手动交卷和倒计时自动交卷都汇聚到这里，且只会执行一次。
func (s *ExamService) persistResult(attemptID string, r exam.Result) {
	s.mu.Lock()
	la, ok := s.live[attemptID]
	delete(s.live, attemptID)
	s.mu.Unlock()
	if !ok {
		return
	}

	monitoring.ActiveExamSessions.Dec()
	trigger := "manual"
	if r.Timeout {
		trigger = "timeout"
	}
	outcome := "fail"
	if r.Pass {
		outcome = "pass"
	}
	monitoring.ExamSubmissions.WithLabelValues(trigger, outcome).Inc()

	answers := make([]model.ExamAttemptAnswer, 0, len(la.questions))
	for i, row := range la.questions {
		st := la.session.State(i + 1)
		answers = append(answers, model.ExamAttemptAnswer{
			AttemptID:       attemptID,
			QuestionID:      row.ID,
			SelectedOption:  st.SelectedOptionID,
			Correct:         st.Answered && st.SelectedOptionID == row.CorrectAnswer,
			Skipped:         st.Skipped,
			MarkedForReview: st.MarkedForReview,
		})
	}

	attempt := s.finalizeAttempt(la, r, time.Now())

	if err := s.AttemptRepo.SaveResult(&attempt, answers); err != nil {
		logger.Log.Error("保存测验结果失败",
			zap.String("attemptId", attemptID),
			zap.Error(err))
		return
	}

	if s.LogRepo != nil {
		log := &model.LearningLog{
			UserID:   attempt.UserID,
			Activity: "exam_completed",
			Content:  la.exam.Title,
			Duration: int(attempt.CompletedAt.Sub(attempt.StartedAt).Seconds()),
			Score:    r.Accuracy,
		}
		if err := s.LogRepo.Create(log); err != nil {
			logger.Log.Warn("写入学习日志失败", zap.Error(err))
		}
	}
}

// loadQuestions 题目列表走 Redis 缓存，按配置的分钟数过期。
func (s *ExamService) loadQuestions(ctx context.Context, examID uint) ([]model.ExamQuestion, error) {
	key := fmt.Sprintf("exam_bank:%d", examID)
	if s.Redis != nil {
		cached, err := s.Redis.Get(ctx, key).Result()
		if err == nil {
			var rows []model.ExamQuestion
			if json.Unmarshal([]byte(cached), &rows) == nil && len(rows) > 0 {
				return rows, nil
			}
		}
	}

	rows, err := s.ExamRepo.ListQuestions(examID)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil && len(rows) > 0 {
		if data, err := json.Marshal(rows); err == nil {
			ttl := time.Duration(s.Cfg.Exam.BankCacheMinutes) * time.Minute
			s.Redis.Set(ctx, key, data, ttl)
		}
	}
	return rows, nil
}

// buildBank 把库里的题目行装配成引擎题库。引擎题号是会话内的
// 位置编号（1..N），与数据库主键无关。
func buildBank(rows []model.ExamQuestion) (*exam.Bank, error) {
	questions := make([]exam.Question, 0, len(rows))
	for i, row := range rows {
		opts, err := parseOptions(row)
		if err != nil {
			return nil, err
		}
		options := make([]exam.Option, 0, len(opts))
		for _, o := range opts {
			options = append(options, exam.Option{ID: o.Number, Text: o.Text})
		}
		questions = append(questions, exam.Question{
			ID:              i + 1,
			Prompt:          row.Prompt,
			Options:         options,
			CorrectOptionID: row.CorrectAnswer,
			Explanation:     row.Explanation,
		})
	}
	return exam.NewBank(questions)
}

func parseOptions(row model.ExamQuestion) ([]model.ExamOption, error) {
	var opts []model.ExamOption
	if err := json.Unmarshal(row.Options, &opts); err != nil {
		return nil, fmt.Errorf("question %d: bad options payload: %w", row.ID, err)
	}
	return opts, nil
}
