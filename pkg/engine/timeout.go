package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/chazu/mobius/pkg/scene"
)

// EvalTimeout is the hard limit for a single evaluation. Fine grids are
// O(n²) to build, so a runaway resolution surfaces here.
const EvalTimeout = 5 * time.Second

// evalResult passes an evaluation's outcome back to Evaluate.
type evalResult struct {
	scene  *scene.Scene
	errors []EvalError
	err    error
}

// waitWithTimeout waits for a result from ch, returning a timeout error if
// the evaluation exceeds EvalTimeout. Results whose generation is no longer
// current are discarded.
//
// On timeout the goroutine may still be running; the generation check
// discards its result when it eventually completes.
func waitWithTimeout(
	ch <-chan evalResult,
	gen uint64,
	mu *sync.Mutex,
	currentGen *uint64,
) (*scene.Scene, []EvalError, error) {
	timer := time.NewTimer(EvalTimeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		mu.Lock()
		current := *currentGen
		mu.Unlock()

		if gen != current {
			return nil, nil, fmt.Errorf("evaluation superseded by newer request")
		}
		return res.scene, res.errors, res.err

	case <-timer.C:
		return nil, nil, fmt.Errorf("evaluation timed out after %s", EvalTimeout)
	}
}
