package budget

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yozi-budget/yozi-backend/internal/domain/entity"
	usecasemocks "github.com/yozi-budget/yozi-backend/mocks/port/usecase"
)

func TestHabitFeedback(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		previous int
		expected []string
	}{
		{
			name:     "Excellent",
			score:    95,
			previous: 90,
			expected: []string{
				"지난달보다 5점 상승했어요!",
				"예산 내 소비를 아주 잘 지켰어요!",
				"모든 항목에서 균형 있게 소비했어요!",
				"22일 동안 소비를 기록했어요.",
				"식비가 전체 소비의 52%를 차지했어요",
			},
		},
		{
			name:     "Good",
			score:    80,
			previous: 80,
			expected: []string{
				"지난달과 점수가 같아요.",
				"예산 내 소비를 잘 지켰어요!",
				"소비가 안정적인 편이에요.",
				"22일 동안 소비를 기록했어요.",
				"식비가 전체 소비의 52%를 차지했어요",
			},
		},
		{
			name:     "Fair",
			score:    60,
			previous: 72,
			expected: []string{
				"지난달보다 12점 하락했어요.",
				"조금 더 소비를 조절해봐요.",
				"22일 동안 소비를 기록했어요.",
				"식비가 전체 소비의 52%를 차지했어요",
			},
		},
		{
			name:     "Poor",
			score:    10,
			previous: 50,
			expected: []string{
				"지난달보다 40점 하락했어요.",
				"소비 습관을 개선할 필요가 있어요.",
				"22일 동안 소비를 기록했어요.",
				"식비가 전체 소비의 52%를 차지했어요",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HabitFeedback(tt.score, tt.previous, 22))
		})
	}
}

func TestPlaceholderHabitScorer(t *testing.T) {
	score, err := NewPlaceholderHabitScorer().Score(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, 88, score.Score)
	assert.Equal(t, 83, score.Previous)
	assert.Equal(t, 5, score.Change())
	assert.Len(t, score.Feedback, 5)
	assert.Contains(t, score.Feedback, "22일 동안 소비를 기록했어요.")
}

func TestRecordedDaysScorer(t *testing.T) {
	ctx := context.Background()
	history := []*entity.Transaction{
		{ID: 1, TransactionDate: day(2025, 3, 1)},
		{ID: 2, TransactionDate: day(2025, 3, 1)},
		{ID: 3, TransactionDate: day(2025, 3, 4)},
	}

	t.Run("should count distinct transaction dates", func(t *testing.T) {
		// Arrange
		scorer := NewRecordedDaysScorer(NewPlaceholderHabitScorer())

		// Act
		score, err := scorer.Score(ctx, history)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 88, score.Score)
		assert.Contains(t, score.Feedback, "2일 동안 소비를 기록했어요.")
		assert.NotContains(t, score.Feedback, "22일 동안 소비를 기록했어요.")
	})

	t.Run("should keep the wrapped scorer's numbers", func(t *testing.T) {
		// Arrange
		inner := usecasemocks.NewMockHabitScorer(t)
		inner.EXPECT().Score(mock.Anything, history).Return(entity.HabitScore{Score: 40, Previous: 45}, nil).Once()
		scorer := NewRecordedDaysScorer(inner)

		// Act
		score, err := scorer.Score(ctx, history)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, []string{
			"지난달보다 5점 하락했어요.",
			"소비 습관을 개선할 필요가 있어요.",
			"2일 동안 소비를 기록했어요.",
			"식비가 전체 소비의 52%를 차지했어요",
		}, score.Feedback)
	})
}
