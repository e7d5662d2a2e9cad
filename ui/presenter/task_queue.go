package presenter

import "sync"

// TaskQueue collects UI work posted from background goroutines so it can run
// on the toolkit thread. It implements TaskDrainer.
type TaskQueue struct {
	mu    sync.Mutex
	tasks []func()
}

// Post appends fn to the queue. Nil functions are ignored.
func (q *TaskQueue) Post(fn func()) {
	if q == nil || fn == nil {
		return
	}
	q.mu.Lock()
	q.tasks = append(q.tasks, fn)
	q.mu.Unlock()
}

// Drain runs all queued functions in posting order and returns how many ran.
// Work posted while draining runs on the next call.
func (q *TaskQueue) Drain() int {
	if q == nil {
		return 0
	}
	q.mu.Lock()
	tasks := q.tasks
	q.tasks = nil
	q.mu.Unlock()
	for _, fn := range tasks {
		fn()
	}
	return len(tasks)
}
