package exam

import "testing"

func TestNewStoreInitialState(t *testing.T) {
	s := NewStore(5)

	for id := 1; id <= 5; id++ {
		st := s.Get(id)
		wantVisited := id == 1
		if st.Visited != wantVisited {
			t.Errorf("question %d: visited = %v, want %v", id, st.Visited, wantVisited)
		}
		if st.Answered || st.Skipped || st.MarkedForReview {
			t.Errorf("question %d: expected zero answered/skipped/review flags, got %+v", id, st)
		}
		if st.SelectedOptionID != "" {
			t.Errorf("question %d: selected option = %q, want empty", id, st.SelectedOptionID)
		}
	}
}

func TestCommit(t *testing.T) {
	tests := []struct {
		name         string
		selected     string
		wantAnswered bool
		wantSkipped  bool
	}{
		{"with option commits answered", "3", true, false},
		{"without option commits skipped", "", false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewStore(3)
			s.Commit(2, tc.selected)

			st := s.Get(2)
			if !st.Visited {
				t.Error("commit should mark the question visited")
			}
			if st.Answered != tc.wantAnswered {
				t.Errorf("answered = %v, want %v", st.Answered, tc.wantAnswered)
			}
			if st.Skipped != tc.wantSkipped {
				t.Errorf("skipped = %v, want %v", st.Skipped, tc.wantSkipped)
			}
			if st.SelectedOptionID != tc.selected {
				t.Errorf("selected option = %q, want %q", st.SelectedOptionID, tc.selected)
			}
			if st.Answered && st.Skipped {
				t.Error("answered and skipped must never both be true")
			}
		})
	}
}

func TestCommitOverwritesEarlierCommit(t *testing.T) {
	s := NewStore(2)
	s.Commit(1, "4")
	s.Commit(1, "")

	st := s.Get(1)
	if st.Answered || !st.Skipped || st.SelectedOptionID != "" {
		t.Errorf("re-commit with no selection should yield skipped, got %+v", st)
	}
}

func TestSetSelectedDoesNotCommit(t *testing.T) {
	s := NewStore(2)
	s.SetSelected(1, "2")

	st := s.Get(1)
	if st.Answered || st.Skipped {
		t.Errorf("SetSelected must not touch answered/skipped, got %+v", st)
	}
	if st.SelectedOptionID != "2" {
		t.Errorf("selected option = %q, want %q", st.SelectedOptionID, "2")
	}
}

func TestToggleReview(t *testing.T) {
	s := NewStore(2)
	s.ToggleReview(2)
	if !s.Get(2).MarkedForReview {
		t.Error("first toggle should set the review flag")
	}
	s.ToggleReview(2)
	if s.Get(2).MarkedForReview {
		t.Error("second toggle should clear the review flag")
	}
}

func TestMarkVisitedKeepsAnswerFields(t *testing.T) {
	s := NewStore(3)
	s.Commit(2, "1")
	s.MarkVisited(2)

	st := s.Get(2)
	if !st.Answered || st.SelectedOptionID != "1" {
		t.Errorf("MarkVisited must not alter answer fields, got %+v", st)
	}
}

func TestUnknownQuestionIDPanics(t *testing.T) {
	s := NewStore(3)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown question id")
		}
	}()
	s.Get(4)
}
