package exam

import (
	"errors"
	"math"
	"sync"
	"time"
)

// ErrIndexOutOfRange 越界导航请求。调用方应当通过禁用边界按钮避免，
// 但引擎自身绝不把越界值截断成一个不一致的下标。
var ErrIndexOutOfRange = errors.New("exam: question index out of range")

// Result 提交后的最终成绩，整场会话只产生一次。
type Result struct {
	Correct   int    `json:"correct"`
	Total     int    `json:"total"`
	Accuracy  int    `json:"accuracy"`  // 四舍五入的百分比
	TimeTaken string `json:"timeTaken"` // "MMm SSs"
	Pass      bool   `json:"pass"`
	Timeout   bool   `json:"timeout"` // 由倒计时归零触发的自动提交
}

// Config 会话参数。
type Config struct {
	TotalSeconds  int
	PassThreshold int // 百分比，缺省 50
	// OnFinish 结果下游（落库、通知）。提交时在会话锁外同步调用一次。
	OnFinish func(Result)
}

const defaultPassThreshold = 50

// Session 一次答题会话的状态机：InProgress → Finished（终态）。
//
// 关键契约是"离开即提交"：当前题的选中项先放在暂存槽里，只有在导航
// 离开或交卷时才 Commit 进状态表。因此同一选项点两次（取消选中）再
// 离开，落库的是 skipped 而不是带空选项的 answered。
//
// 所有修改都在同一把互斥锁后串行化，用户事件与计时器走表不会交错。
type Session struct {
	mu    sync.Mutex
	bank  *Bank
	store *Store
	timer *Countdown

	current   int
	transient string // 当前题的暂存答案槽，空串表示未选
	finished  bool
	startedAt time.Time
	result    *Result

	passThreshold int
	onFinish      func(Result)
}

// NewSession 建立会话并装配倒计时。倒计时不会自动走表，
// 调用 Start 后才开始。
func NewSession(bank *Bank, cfg Config) *Session {
	threshold := cfg.PassThreshold
	if threshold <= 0 {
		threshold = defaultPassThreshold
	}
	s := &Session{
		bank:          bank,
		store:         NewStore(bank.Count()),
		startedAt:     time.Now(),
		passThreshold: threshold,
		onFinish:      cfg.OnFinish,
	}
	s.timer = NewCountdown(cfg.TotalSeconds, s.expire)
	return s
}

// Start 启动倒计时走表。
func (s *Session) Start() {
	s.timer.Start()
}

// Close 销毁会话：取消倒计时，保证之后不会再有自动交卷。
// 任何退出路径（提交、放弃、页面卸载）都必须走到这里。
func (s *Session) Close() {
	s.timer.Stop()
}

// SelectOption 更新当前题的暂存答案。点击已选中的选项则取消选中；
// 点击其他选项则替换，单选题同一时刻至多一个选中项。
// 只同步展示用的选中项，不写 Answered/Skipped。会话结束后为空操作。
func (s *Session) SelectOption(optionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finished {
		return
	}
	if s.transient == optionID {
		s.transient = ""
	} else {
		s.transient = optionID
	}
	s.store.SetSelected(s.bank.At(s.current).ID, s.transient)
}

// NavigateTo 跳转到目标题：先把当前题的暂存答案 Commit 进状态表，
// 再标记目标题已访问，最后把目标题此前提交过的选项装回暂存槽。
// 会话结束后仅移动指针供回顾答案，不再触发提交。
func (s *Session) NavigateTo(target int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if target < 0 || target >= s.bank.Count() {
		return ErrIndexOutOfRange
	}
	if s.finished {
		s.current = target
		return nil
	}

	s.store.Commit(s.bank.At(s.current).ID, s.transient)
	targetID := s.bank.At(target).ID
	s.store.MarkVisited(targetID)
	s.current = target
	s.transient = s.store.Get(targetID).SelectedOptionID
	return nil
}

// ToggleMarkForReview 翻转当前题的复习标记，不影响提交状态。
func (s *Session) ToggleMarkForReview() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finished {
		return
	}
	s.store.ToggleReview(s.bank.At(s.current).ID)
}

// Submit 交卷。幂等：已结束的会话返回既有成绩和 false。
// 首次提交会先 Commit 当前题，再统计得分并停掉倒计时；
// 倒计时归零的自动提交走的也是这一条路径。
func (s *Session) Submit() (Result, bool) {
	return s.submit(false)
}

func (s *Session) submit(timeout bool) (Result, bool) {
	s.mu.Lock()
	if s.finished {
		r := *s.result
		s.mu.Unlock()
		return r, false
	}

	s.store.Commit(s.bank.At(s.current).ID, s.transient)
	s.finished = true

	correct := 0
	total := s.bank.Count()
	for i := 0; i < total; i++ {
		q := s.bank.At(i)
		st := s.store.Get(q.ID)
		if st.Answered && st.SelectedOptionID == q.CorrectOptionID {
			correct++
		}
	}
	accuracy := int(math.Round(float64(correct) / float64(total) * 100))

	r := Result{
		Correct:   correct,
		Total:     total,
		Accuracy:  accuracy,
		TimeTaken: FormatElapsed(time.Since(s.startedAt)),
		Pass:      accuracy >= s.passThreshold,
		Timeout:   timeout,
	}
	s.result = &r
	s.mu.Unlock()

	s.timer.Stop()
	if s.onFinish != nil {
		s.onFinish(r)
	}
	return r, true
}

// expire 倒计时归零的回调，复用同一条幂等提交路径。
func (s *Session) expire() {
	s.submit(true)
}

// Tag 当前会话视角下某题的展示状态。
func (s *Session) Tag(questionID int) TagState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return DeriveTag(questionID, s.bank, s.store, s.current, s.finished)
}

// State 某题的状态快照，供渲染层读取。
func (s *Session) State(questionID int) QuestionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Get(questionID)
}

func (s *Session) Bank() *Bank {
	return s.bank
}

func (s *Session) CurrentIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Session) Finished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finished
}

// Outcome 返回最终成绩；会话未结束时第二个返回值为 false。
func (s *Session) Outcome() (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return Result{}, false
	}
	return *s.result, true
}

func (s *Session) Remaining() int {
	return s.timer.Remaining()
}

func (s *Session) PercentRemaining() float64 {
	return s.timer.PercentRemaining()
}
