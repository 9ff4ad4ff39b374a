package exam

// TagState 题目在导航面板上的展示分类，由底层状态推导，从不直接存储。
type TagState int

const (
	TagUnanswered TagState = iota
	TagSelected
	TagAnswered
	TagReviewUnanswered
	TagReviewAnswered
	TagCorrect
	TagIncorrect
)

func (t TagState) String() string {
	switch t {
	case TagUnanswered:
		return "unanswered"
	case TagSelected:
		return "selected"
	case TagAnswered:
		return "answered"
	case TagReviewUnanswered:
		return "review_unanswered"
	case TagReviewAnswered:
		return "review_answered"
	case TagCorrect:
		return "correct"
	case TagIncorrect:
		return "incorrect"
	}
	return "unknown"
}

// DeriveTag 推导题目的展示状态。优先级自上而下，首个命中即返回：
// 交卷后只看对错（跳过的题显示为未作答，复习标记不再展示）；
// 交卷前当前题永远显示为 selected，无论其作答与复习标记如何。
func DeriveTag(questionID int, bank *Bank, store *Store, currentIndex int, finished bool) TagState {
	state := store.Get(questionID)

	if finished {
		if !state.Answered {
			return TagUnanswered
		}
		if state.SelectedOptionID == bank.FindByID(questionID).CorrectOptionID {
			return TagCorrect
		}
		return TagIncorrect
	}

	if questionID == bank.At(currentIndex).ID {
		return TagSelected
	}
	if state.Answered {
		if state.MarkedForReview {
			return TagReviewAnswered
		}
		return TagAnswered
	}
	if state.Visited {
		if state.MarkedForReview {
			return TagReviewUnanswered
		}
		return TagUnanswered
	}
	return TagUnanswered
}
