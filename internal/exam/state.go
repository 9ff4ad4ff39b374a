package exam

import "fmt"

// QuestionState 单题的可变作答状态。
// Answered 与 Skipped 只在 Commit 时写入，二者互斥。
type QuestionState struct {
	Visited          bool
	Answered         bool
	SelectedOptionID string // 空串表示未选择
	MarkedForReview  bool
	Skipped          bool
}

// Store 全部题目的状态表，以 questionID-1 为下标的定长数组。
type Store struct {
	states []QuestionState
}

// NewStore 为 n 道题建立初始状态；第 1 题开卷即为已访问。
func NewStore(n int) *Store {
	s := &Store{states: make([]QuestionState, n)}
	s.states[0].Visited = true
	return s
}

func (s *Store) at(questionID int) *QuestionState {
	if questionID < 1 || questionID > len(s.states) {
		panic(fmt.Sprintf("exam: unknown question id %d", questionID))
	}
	return &s.states[questionID-1]
}

// Get 返回状态快照。
func (s *Store) Get(questionID int) QuestionState {
	return *s.at(questionID)
}

// Commit 在离开题目时写入最终作答。这是 Answered/Skipped 唯一的写入点：
// 浏览过程中选中选项不会使题目进入已作答状态。
func (s *Store) Commit(questionID int, selectedOptionID string) {
	st := s.at(questionID)
	st.Visited = true
	st.SelectedOptionID = selectedOptionID
	st.Answered = selectedOptionID != ""
	st.Skipped = selectedOptionID == ""
}

// SetSelected 仅同步展示用的选中项，不触碰 Answered/Skipped。
func (s *Store) SetSelected(questionID int, optionID string) {
	s.at(questionID).SelectedOptionID = optionID
}

func (s *Store) ToggleReview(questionID int) {
	st := s.at(questionID)
	st.MarkedForReview = !st.MarkedForReview
}

// MarkVisited 标记已访问，不改动作答字段。
func (s *Store) MarkVisited(questionID int) {
	s.at(questionID).Visited = true
}
