package quiz

import (
	"math/rand"

	"github.com/triviahub/trivia-api/internal/question"
)

// Pick selects one entry of pool whose id is not in asked, uniformly at
// random over the unseen positions. ok is false once every position has
// been asked (exhaustion), which includes an empty pool. Sampling is by
// position, so a question appearing twice in the pool keeps double weight.
func Pick(pool []question.Question, asked []int) (question.Question, bool) {
	seen := make(map[int]struct{}, len(asked))
	for _, id := range asked {
		seen[id] = struct{}{}
	}

	unseen := make([]int, 0, len(pool))
	for i, q := range pool {
		if _, ok := seen[q.ID]; !ok {
			unseen = append(unseen, i)
		}
	}
	if len(unseen) == 0 {
		return question.Question{}, false
	}

	return pool[unseen[rand.Intn(len(unseen))]], true
}
