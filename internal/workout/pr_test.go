package workout

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/gym/internal/model"
)

var t0 = time.Date(2026, 10, 1, 18, 0, 0, 0, time.UTC)

func TestNextPRFirstValue(t *testing.T) {
	pr := NextPR(nil, 80, t0)
	assert.Equal(t, model.PRValue(80), pr.Value)
	assert.Equal(t, t0, pr.Date)
	assert.Equal(t, []model.PREntry{}, pr.History)
}

func TestNextPRLowerValueKeepsBest(t *testing.T) {
	t1 := t0.Add(24 * time.Hour)
	first := NextPR(nil, 80, t0)
	second := NextPR(&first, 75, t1)

	assert.Equal(t, model.PRValue(80), second.Value)
	assert.Equal(t, t0, second.Date)
	assert.Equal(t, []model.PREntry{{Value: 80, Date: t0}}, second.History)
}

func TestNextPRHigherValueReplaces(t *testing.T) {
	t1 := t0.Add(24 * time.Hour)
	first := NextPR(nil, 80, t0)
	second := NextPR(&first, 85, t1)

	assert.Equal(t, model.PRValue(85), second.Value)
	assert.Equal(t, t1, second.Date)
	assert.Equal(t, []model.PREntry{{Value: 80, Date: t0}}, second.History)
}

func TestNextPRTieKeepsEarliest(t *testing.T) {
	t1 := t0.Add(24 * time.Hour)
	first := NextPR(nil, 80, t0)
	second := NextPR(&first, 80, t1)

	assert.Equal(t, model.PRValue(80), second.Value)
	assert.Equal(t, t0, second.Date, "equal value must not move the date")
}

func TestNextPRComparesNumerically(t *testing.T) {
	first := NextPR(nil, 9, t0)
	second := NextPR(&first, 10, t0.Add(time.Hour))
	assert.Equal(t, model.PRValue(10), second.Value)
}

func TestNextPRDoesNotMutateInput(t *testing.T) {
	current := &model.PRState{
		Value:   100,
		Date:    t0,
		History: make([]model.PREntry, 0, 10),
	}
	current.History = append(current.History, model.PREntry{Value: 90, Date: t0})
	_ = NextPR(current, 110, t0.Add(time.Hour))
	assert.Len(t, current.History, 1)
	assert.Equal(t, model.PRValue(100), current.Value)
}

func TestNextPRHistoryBound(t *testing.T) {
	var pr *model.PRState
	for i := 1; i <= 6; i++ {
		next := NextPR(pr, model.PRValue(50+i), t0.Add(time.Duration(i)*time.Hour))
		pr = &next
	}
	require.Len(t, pr.History, 5)
	assert.Equal(t, model.PRValue(56), pr.Value)
	assert.Equal(t, model.PRValue(51), pr.History[0].Value)

	next := NextPR(pr, 57, t0.Add(7*time.Hour))
	require.Len(t, next.History, 5)
	assert.Equal(t, model.PRValue(52), next.History[0].Value, "oldest entry dropped first")
	assert.Equal(t, model.PRValue(56), next.History[4].Value)
}

func TestNextPRMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for run := 0; run < 50; run++ {
		var pr *model.PRState
		var best model.PRValue
		n := 1 + rng.Intn(20)
		for i := 0; i < n; i++ {
			v := model.PRValue(rng.Intn(200)) / 2
			if i == 0 || v > best {
				best = v
			}
			next := NextPR(pr, v, t0.Add(time.Duration(i)*time.Minute))
			pr = &next

			require.Equal(t, best, pr.Value)
			require.LessOrEqual(t, len(pr.History), model.MaxPRHistory)
			for _, h := range pr.History {
				require.LessOrEqual(t, float64(h.Value), float64(pr.Value))
			}
		}
	}
}
