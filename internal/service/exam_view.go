package service

import (
	"context"

	"learnify_backend/internal/exam"
	"learnify_backend/internal/model"
)

// QuestionView 渲染层需要的单题视图。Number 是会话内题号（1..N）。
// 正确答案与解析只在会话结束后下发。
type QuestionView struct {
	Number          int                `json:"number"`
	Text            string             `json:"text"`
	Options         []model.ExamOption `json:"options"`
	Tag             string             `json:"tag"`
	SelectedOption  string             `json:"selectedOption"`
	MarkedForReview bool               `json:"markedForReview"`
	Visited         bool               `json:"visited"`
	CorrectAnswer   string             `json:"correctAnswer,omitempty"`
	Explanation     string             `json:"explanation,omitempty"`
}

// AttemptView 一次会话的完整视图，活动会话与已完成尝试共用。
type AttemptView struct {
	AttemptID        string         `json:"attemptId"`
	ExamID           uint           `json:"examId"`
	Title            string         `json:"title"`
	Status           string         `json:"status"`
	Finished         bool           `json:"finished"`
	CurrentIndex     int            `json:"currentIndex"`
	RemainingSeconds int            `json:"remainingSeconds"`
	RemainingClock   string         `json:"remainingClock"` // "HH:MM:SS"
	PercentRemaining float64        `json:"percentRemaining"`
	Questions        []QuestionView `json:"questions"`
	Result           *exam.Result   `json:"result,omitempty"`
}

func (s *ExamService) buildLiveView(la *liveAttempt) *AttemptView {
	// 交卷/放弃会改写 attempt 字段，读取必须与之在同一把锁后串行化
	s.mu.Lock()
	attempt := *la.attempt
	s.mu.Unlock()

	finished := la.session.Finished()
	remaining := la.session.Remaining()

	questions := make([]QuestionView, 0, len(la.questions))
	for i, row := range la.questions {
		qid := i + 1
		st := la.session.State(qid)
		opts, _ := parseOptions(row)

		qv := QuestionView{
			Number:          qid,
			Text:            row.Prompt,
			Options:         opts,
			Tag:             la.session.Tag(qid).String(),
			SelectedOption:  st.SelectedOptionID,
			MarkedForReview: st.MarkedForReview,
			Visited:         st.Visited,
		}
		if finished {
			qv.CorrectAnswer = row.CorrectAnswer
			qv.Explanation = row.Explanation
		}
		questions = append(questions, qv)
	}

	view := &AttemptView{
		AttemptID:        attempt.ID,
		ExamID:           la.exam.ID,
		Title:            la.exam.Title,
		Status:           attempt.Status,
		Finished:         finished,
		CurrentIndex:     la.session.CurrentIndex(),
		RemainingSeconds: remaining,
		RemainingClock:   exam.FormatClock(remaining),
		PercentRemaining: la.session.PercentRemaining(),
		Questions:        questions,
	}
	if r, ok := la.session.Outcome(); ok {
		view.Status = model.AttemptCompleted
		view.Result = &r
	}
	return view
}

// buildReviewView 从落库的逐题终态还原批改页。标记已在提交时清除，
// 这里只区分 correct / incorrect / unanswered。
func (s *ExamService) buildReviewView(ctx context.Context, attempt *model.ExamAttempt) (*AttemptView, error) {
	ex, err := s.ExamRepo.FindByID(attempt.ExamID)
	if err != nil {
		return nil, err
	}
	rows, err := s.loadQuestions(ctx, attempt.ExamID)
	if err != nil {
		return nil, err
	}
	answers, err := s.AttemptRepo.ListAnswers(attempt.ID)
	if err != nil {
		return nil, err
	}

	byQuestion := make(map[uint]model.ExamAttemptAnswer, len(answers))
	for _, a := range answers {
		byQuestion[a.QuestionID] = a
	}

	questions := make([]QuestionView, 0, len(rows))
	for i, row := range rows {
		opts, _ := parseOptions(row)
		qv := QuestionView{
			Number:        i + 1,
			Text:          row.Prompt,
			Options:       opts,
			Tag:           exam.TagUnanswered.String(),
			Visited:       true,
			CorrectAnswer: row.CorrectAnswer,
			Explanation:   row.Explanation,
		}
		if a, ok := byQuestion[row.ID]; ok {
			qv.SelectedOption = a.SelectedOption
			qv.MarkedForReview = a.MarkedForReview
			switch {
			case a.Correct:
				qv.Tag = exam.TagCorrect.String()
			case a.SelectedOption != "":
				qv.Tag = exam.TagIncorrect.String()
			}
		}
		questions = append(questions, qv)
	}

	result := &exam.Result{
		Correct:   attempt.CorrectCount,
		Total:     len(rows),
		Accuracy:  attempt.Accuracy,
		TimeTaken: attempt.TimeTaken,
		Pass:      attempt.Pass,
		Timeout:   attempt.IsTimeout,
	}
	return &AttemptView{
		AttemptID:      attempt.ID,
		ExamID:         ex.ID,
		Title:          ex.Title,
		Status:         attempt.Status,
		Finished:       true,
		RemainingClock: exam.FormatClock(0),
		Questions:      questions,
		Result:         result,
	}, nil
}
