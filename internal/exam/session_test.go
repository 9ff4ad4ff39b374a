package exam

import "testing"

func newTestSession(t *testing.T, n, totalSeconds int, onFinish func(Result)) *Session {
	t.Helper()
	return NewSession(newTestBank(t, n), Config{
		TotalSeconds:  totalSeconds,
		PassThreshold: 50,
		OnFinish:      onFinish,
	})
}

func TestSubmitIsIdempotent(t *testing.T) {
	finished := 0
	s := newTestSession(t, 4, 60, func(Result) { finished++ })

	first, ok := s.Submit()
	if !ok {
		t.Fatal("first submit should report the finishing transition")
	}
	second, ok := s.Submit()
	if ok {
		t.Error("second submit must be a no-op")
	}
	if first != second {
		t.Errorf("second submit returned a different result: %+v vs %+v", first, second)
	}
	if finished != 1 {
		t.Errorf("onFinish fired %d times, want exactly 1", finished)
	}
}

func TestManualSubmitThenTimerExpiry(t *testing.T) {
	finished := 0
	s := newTestSession(t, 4, 2, func(Result) { finished++ })

	s.Submit()
	// 手动交卷后倒计时归零不得产生第二份成绩
	s.timer.Tick()
	s.timer.Tick()
	s.timer.Tick()

	if finished != 1 {
		t.Errorf("onFinish fired %d times, want exactly 1", finished)
	}
	if r, ok := s.Outcome(); !ok || r.Timeout {
		t.Errorf("result should come from the manual submit, got %+v (ok=%v)", r, ok)
	}
}

func TestCommitOnLeaveNotOnSelect(t *testing.T) {
	s := newTestSession(t, 4, 60, nil)

	s.SelectOption("2")
	st := s.State(1)
	if st.Answered {
		t.Error("selecting an option must not mark the question answered before a commit")
	}
	if st.SelectedOptionID != "2" {
		t.Errorf("selection should mirror into the store for display, got %q", st.SelectedOptionID)
	}

	if err := s.NavigateTo(1); err != nil {
		t.Fatalf("NavigateTo: %v", err)
	}
	st = s.State(1)
	if !st.Answered || st.Skipped || st.SelectedOptionID != "2" {
		t.Errorf("navigating away should commit the answer, got %+v", st)
	}
}

func TestSelectThenImmediateSubmitCommits(t *testing.T) {
	s := newTestSession(t, 4, 60, nil)

	s.SelectOption("2")
	r, _ := s.Submit()

	if st := s.State(1); !st.Answered {
		t.Errorf("submit must commit the active question, got %+v", st)
	}
	if r.Correct != 1 {
		t.Errorf("correct count = %d, want 1", r.Correct)
	}
}

func TestToggleDeselect(t *testing.T) {
	s := newTestSession(t, 4, 60, nil)

	s.SelectOption("1")
	s.SelectOption("1") // 再点同一选项即取消选中
	if err := s.NavigateTo(1); err != nil {
		t.Fatalf("NavigateTo: %v", err)
	}

	st := s.State(1)
	if st.Answered || !st.Skipped || st.SelectedOptionID != "" {
		t.Errorf("toggle-deselect then leave should commit skipped, got %+v", st)
	}
}

func TestSelectReplacesPreviousChoice(t *testing.T) {
	s := newTestSession(t, 4, 60, nil)

	s.SelectOption("1")
	s.SelectOption("3")
	s.NavigateTo(1)

	if st := s.State(1); st.SelectedOptionID != "3" {
		t.Errorf("selected option = %q, want %q", st.SelectedOptionID, "3")
	}
}

func TestNavigateLoadsCommittedAnswerBack(t *testing.T) {
	s := newTestSession(t, 4, 60, nil)

	s.SelectOption("4")
	s.NavigateTo(1)
	s.NavigateTo(0)
	// 暂存槽应当装回第 1 题已提交的 "4"；再点一次 "4" 即取消
	s.SelectOption("4")
	s.NavigateTo(1)

	if st := s.State(1); !st.Skipped || st.SelectedOptionID != "" {
		t.Errorf("re-click of restored answer should deselect, got %+v", st)
	}
}

func TestCurrentTagAlwaysSelectedWhileRunning(t *testing.T) {
	s := newTestSession(t, 4, 60, nil)

	s.SelectOption("2")
	s.ToggleMarkForReview()
	s.NavigateTo(1)
	s.NavigateTo(0)

	if got := s.Tag(1); got != TagSelected {
		t.Errorf("tag of current question = %v, want %v", got, TagSelected)
	}
	if got := s.Tag(2); got != TagUnanswered {
		t.Errorf("tag of visited question 2 = %v, want %v", got, TagUnanswered)
	}
}

func TestPostFinishCorrectnessView(t *testing.T) {
	s := newTestSession(t, 8, 600, nil)

	// 8 题混合：答对 1、3，答错 2，标记复习后跳过 4，其余未触碰
	s.SelectOption("2") // 第 1 题，正确
	s.NavigateTo(1)
	s.SelectOption("4") // 第 2 题，错误
	s.NavigateTo(2)
	s.SelectOption("2") // 第 3 题，正确
	s.NavigateTo(3)
	s.ToggleMarkForReview() // 第 4 题跳过且带复习标记
	s.NavigateTo(4)
	s.Submit()

	want := map[int]TagState{
		1: TagCorrect,
		2: TagIncorrect,
		3: TagCorrect,
		4: TagUnanswered, // 复习标记在交卷后不再展示
		5: TagUnanswered, // 交卷时为当前题，未选择即视为未作答
		6: TagUnanswered,
		7: TagUnanswered,
		8: TagUnanswered,
	}
	for qid, tag := range want {
		if got := s.Tag(qid); got != tag {
			t.Errorf("question %d: tag = %v, want %v", qid, got, tag)
		}
	}

	for qid := 1; qid <= 8; qid++ {
		st := s.State(qid)
		if st.Answered && st.Skipped {
			t.Errorf("question %d: answered and skipped are both true", qid)
		}
	}
}

func TestTimerDrivenAutoSubmit(t *testing.T) {
	var results []Result
	s := newTestSession(t, 4, 2, func(r Result) { results = append(results, r) })

	s.timer.Tick()
	s.timer.Tick()
	s.timer.Tick()

	if !s.Finished() {
		t.Fatal("session should be finished after the countdown reaches zero")
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want exactly 1", len(results))
	}
	r := results[0]
	if r.Accuracy != 0 || r.Pass {
		t.Errorf("untouched session should score accuracy=0 pass=false, got %+v", r)
	}
	if !r.Timeout {
		t.Error("auto-submitted result should carry the timeout flag")
	}
}

func TestScoreComputation(t *testing.T) {
	s := newTestSession(t, 8, 600, nil)

	// 前 5 题答对，后 3 题不作答
	for i := 0; i < 5; i++ {
		s.SelectOption("2")
		s.NavigateTo(i + 1)
	}
	r, _ := s.Submit()

	if r.Correct != 5 || r.Total != 8 {
		t.Errorf("correct/total = %d/%d, want 5/8", r.Correct, r.Total)
	}
	if r.Accuracy != 63 { // round(5/8*100)
		t.Errorf("accuracy = %d, want 63", r.Accuracy)
	}
	if !r.Pass {
		t.Error("63 >= 50 should pass")
	}
}

func TestBoundaryNavigationRejected(t *testing.T) {
	s := newTestSession(t, 4, 60, nil)
	s.SelectOption("2")

	if err := s.NavigateTo(-1); err != ErrIndexOutOfRange {
		t.Errorf("NavigateTo(-1) = %v, want ErrIndexOutOfRange", err)
	}
	if err := s.NavigateTo(4); err != ErrIndexOutOfRange {
		t.Errorf("NavigateTo(4) = %v, want ErrIndexOutOfRange", err)
	}

	// 被拒绝的导航不得产生任何状态变化
	if got := s.CurrentIndex(); got != 0 {
		t.Errorf("current index = %d, want 0", got)
	}
	if st := s.State(1); st.Answered {
		t.Errorf("rejected navigation must not commit, got %+v", st)
	}
}

func TestOperationsAfterFinishAreNoOps(t *testing.T) {
	s := newTestSession(t, 4, 60, nil)
	s.SelectOption("2")
	s.Submit()

	s.SelectOption("3")
	s.ToggleMarkForReview()

	st := s.State(1)
	if st.SelectedOptionID != "2" || st.MarkedForReview {
		t.Errorf("post-finish mutations must be no-ops, got %+v", st)
	}

	// 交卷后允许移动指针回顾答案，但不得改写状态
	if err := s.NavigateTo(2); err != nil {
		t.Fatalf("NavigateTo after finish: %v", err)
	}
	if st := s.State(3); st.Answered || st.Skipped {
		t.Errorf("post-finish navigation must not commit, got %+v", st)
	}
}

func TestNewBankValidation(t *testing.T) {
	valid := []Question{
		{ID: 1, Prompt: "q", Options: []Option{{ID: "1"}, {ID: "2"}}, CorrectOptionID: "2"},
	}

	if _, err := NewBank(nil); err == nil {
		t.Error("empty bank should be rejected")
	}
	if _, err := NewBank(valid); err != nil {
		t.Errorf("valid bank rejected: %v", err)
	}

	badID := []Question{
		{ID: 2, Prompt: "q", Options: []Option{{ID: "1"}, {ID: "2"}}, CorrectOptionID: "2"},
	}
	if _, err := NewBank(badID); err == nil {
		t.Error("non-contiguous ids should be rejected")
	}

	oneOption := []Question{
		{ID: 1, Prompt: "q", Options: []Option{{ID: "1"}}, CorrectOptionID: "1"},
	}
	if _, err := NewBank(oneOption); err == nil {
		t.Error("a question with fewer than 2 options should be rejected")
	}

	badCorrect := []Question{
		{ID: 1, Prompt: "q", Options: []Option{{ID: "1"}, {ID: "2"}}, CorrectOptionID: "9"},
	}
	if _, err := NewBank(badCorrect); err == nil {
		t.Error("correct option outside the option set should be rejected")
	}
}
