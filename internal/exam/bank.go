package exam

import "fmt"

// Option 单选题的一个选项。ID 是稳定标识（如 "1".."4"）。
type Option struct {
	ID   string
	Text string
}

// Question 题库中的一道题。ID 从 1 开始连续编号，决定题目顺序。
type Question struct {
	ID              int
	Prompt          string
	Options         []Option
	CorrectOptionID string
	Explanation     string
}

// Bank 整场测验的只读题库。
type Bank struct {
	questions []Question
}

// NewBank 校验并构建题库：ID 必须是 1..N 连续编号，每题至少两个选项，
// 正确答案必须是选项之一。
func NewBank(questions []Question) (*Bank, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("exam: question bank is empty")
	}
	for i, q := range questions {
		if q.ID != i+1 {
			return nil, fmt.Errorf("exam: question at position %d has id %d, want %d", i, q.ID, i+1)
		}
		if len(q.Options) < 2 {
			return nil, fmt.Errorf("exam: question %d has %d options, need at least 2", q.ID, len(q.Options))
		}
		found := false
		for _, o := range q.Options {
			if o.ID == q.CorrectOptionID {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("exam: question %d correct option %q is not among its options", q.ID, q.CorrectOptionID)
		}
	}
	return &Bank{questions: questions}, nil
}

func (b *Bank) Count() int {
	return len(b.questions)
}

// At 按 0 基下标取题。越界属于调用方契约错误，直接 panic。
func (b *Bank) At(index int) Question {
	return b.questions[index]
}

// FindByID 按题目 ID 取题。未知 ID 属于调用方契约错误，直接 panic。
func (b *Bank) FindByID(id int) Question {
	if id < 1 || id > len(b.questions) {
		panic(fmt.Sprintf("exam: unknown question id %d", id))
	}
	return b.questions[id-1]
}
