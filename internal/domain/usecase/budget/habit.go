package budget

import (
	"context"
	"fmt"

	"golang.org/x/exp/maps"

	"github.com/yozi-budget/yozi-backend/internal/domain/entity"
	"github.com/yozi-budget/yozi-backend/internal/domain/port/usecase"
)

const (
	placeholderScore         = 88
	placeholderPreviousScore = 83
	placeholderRecordedDays  = 22
	placeholderFoodShareLine = "식비가 전체 소비의 52%를 차지했어요"
)

// PlaceholderHabitScorer returns a fixed score until a real rating model exists
type PlaceholderHabitScorer struct {
	score    int
	previous int
}

// NewPlaceholderHabitScorer creates the scorer used by default
func NewPlaceholderHabitScorer() *PlaceholderHabitScorer {
	return &PlaceholderHabitScorer{
		score:    placeholderScore,
		previous: placeholderPreviousScore,
	}
}

// Score ignores the history and returns the fixed score with its feedback
func (s *PlaceholderHabitScorer) Score(_ context.Context, _ []*entity.Transaction) (entity.HabitScore, error) {
	return entity.HabitScore{
		Score:    s.score,
		Previous: s.previous,
		Feedback: HabitFeedback(s.score, s.previous, placeholderRecordedDays),
	}, nil
}

// RecordedDaysScorer wraps another scorer and reports the real number of distinct
// transaction dates instead of the scorer's recorded-days line
type RecordedDaysScorer struct {
	next usecase.HabitScorer
}

// NewRecordedDaysScorer creates a RecordedDaysScorer around next
func NewRecordedDaysScorer(next usecase.HabitScorer) *RecordedDaysScorer {
	return &RecordedDaysScorer{next: next}
}

// Score delegates to the wrapped scorer and rebuilds the feedback
func (s *RecordedDaysScorer) Score(ctx context.Context, history []*entity.Transaction) (entity.HabitScore, error) {
	score, err := s.next.Score(ctx, history)
	if err != nil {
		return entity.HabitScore{}, err
	}

	days := make(map[string]struct{}, len(history))
	for _, t := range history {
		days[t.TransactionDate.Format(entity.DateLayout)] = struct{}{}
	}

	score.Feedback = HabitFeedback(score.Score, score.Previous, len(maps.Keys(days)))
	return score, nil
}

// HabitFeedback maps a score, its previous value and the recorded day count to feedback lines
func HabitFeedback(score, previous, recordedDays int) []string {
	lines := []string{changeLine(score - previous)}

	switch {
	case score >= 90:
		lines = append(lines, "예산 내 소비를 아주 잘 지켰어요!", "모든 항목에서 균형 있게 소비했어요!")
	case score >= 75:
		lines = append(lines, "예산 내 소비를 잘 지켰어요!", "소비가 안정적인 편이에요.")
	case score >= 50:
		lines = append(lines, "조금 더 소비를 조절해봐요.")
	default:
		lines = append(lines, "소비 습관을 개선할 필요가 있어요.")
	}

	return append(lines,
		fmt.Sprintf("%d일 동안 소비를 기록했어요.", recordedDays),
		placeholderFoodShareLine,
	)
}

func changeLine(change int) string {
	switch {
	case change > 0:
		return fmt.Sprintf("지난달보다 %d점 상승했어요!", change)
	case change < 0:
		return fmt.Sprintf("지난달보다 %d점 하락했어요.", -change)
	default:
		return "지난달과 점수가 같아요."
	}
}
