// Package scheduler executes materialized task plans.
package scheduler

import (
	"context"
	"errors"
	"sync"

	"go.trai.ch/swan/internal/core/domain"
	"go.trai.ch/swan/internal/core/ports"
	"go.trai.ch/swan/internal/engine/gate"
	"go.trai.ch/swan/internal/engine/planner"
	"go.trai.ch/zerr"
	"golang.org/x/sync/semaphore"
)

// TaskStatus represents the status of a task.
type TaskStatus string

const (
	// StatusPending indicates the task is waiting to be executed.
	StatusPending TaskStatus = "Pending"
	// StatusRunning indicates the task is currently executing.
	StatusRunning TaskStatus = "Running"
	// StatusCompleted indicates the task has finished successfully.
	StatusCompleted TaskStatus = "Completed"
	// StatusFailed indicates the task execution failed.
	StatusFailed TaskStatus = "Failed"
	// StatusCached indicates the task was skipped by the incremental gate.
	StatusCached TaskStatus = "Cached"
)

// Scheduler runs the nodes of a plan in dependency order. Independent
// nodes run in parallel up to the requested limit; nodes marked as
// writing the shared source tree additionally serialize against each
// other. A failed node fails the run and keeps its transitive dependents
// from starting, while unrelated subgraphs run to completion.
type Scheduler struct {
	logger ports.Logger
	tracer ports.Tracer

	mu         sync.RWMutex
	taskStatus map[domain.InternedString]TaskStatus
}

// NewScheduler creates a new Scheduler.
func NewScheduler(logger ports.Logger, tracer ports.Tracer) *Scheduler {
	return &Scheduler{
		logger:     logger,
		tracer:     tracer,
		taskStatus: make(map[domain.InternedString]TaskStatus),
	}
}

func (s *Scheduler) updateStatus(name domain.InternedString, status TaskStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.taskStatus[name] = status
}

func (s *Scheduler) getStatus(name domain.InternedString) TaskStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.taskStatus[name]
}

// Run executes the transitive closure of the given target nodes with the
// specified parallelism. The gate is consulted for gated nodes; a nil
// gate disables skipping.
func (s *Scheduler) Run(
	ctx context.Context,
	plan *planner.Plan,
	g *gate.Gate,
	targets []domain.InternedString,
	parallelism int,
) error {
	if parallelism < 1 {
		parallelism = 1
	}

	state, err := s.newRunState(ctx, plan, g, targets, parallelism)
	if err != nil {
		return err
	}

	for !state.isDone() {
		state.schedule()

		if state.isDone() {
			break
		}

		if state.ctx.Err() != nil && state.active == 0 {
			return errors.Join(state.errs, state.ctx.Err())
		}

		select {
		case res := <-state.resultsCh:
			state.handleResult(res)
		case <-state.ctx.Done():
		}
	}

	if state.ctx.Err() != nil {
		state.errs = errors.Join(state.errs, state.ctx.Err())
	}

	return state.errs
}

type result struct {
	task domain.InternedString
	err  error
}

type schedulerRunState struct {
	plan        *planner.Plan
	gate        *gate.Gate
	needed      map[domain.InternedString]domain.TaskNode
	inDegree    map[domain.InternedString]int
	ready       []domain.InternedString
	active      int
	resultsCh   chan result
	errs        error
	ctx         context.Context
	parallelism int
	treeSem     *semaphore.Weighted
	s           *Scheduler
}

// newRunState seeds the run with the transitive dependency closure of
// the targets. Nodes outside the closure are never touched.
func (s *Scheduler) newRunState(
	ctx context.Context,
	plan *planner.Plan,
	g *gate.Gate,
	targets []domain.InternedString,
	parallelism int,
) (*schedulerRunState, error) {
	needed := make(map[domain.InternedString]domain.TaskNode)

	queue := make([]domain.InternedString, 0, len(targets))
	queue = append(queue, targets...)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if _, seen := needed[id]; seen {
			continue
		}
		node, ok := plan.Graph.Node(id)
		if !ok {
			return nil, zerr.With(domain.ErrTaskNotFound, "task", id.String())
		}
		needed[id] = node
		queue = append(queue, node.DependsOn...)
	}

	inDegree := make(map[domain.InternedString]int, len(needed))
	var ready []domain.InternedString
	for id, node := range needed {
		inDegree[id] = len(node.DependsOn)
		if len(node.DependsOn) == 0 {
			ready = append(ready, id)
		}
		s.updateStatus(id, StatusPending)
	}

	return &schedulerRunState{
		plan:        plan,
		gate:        g,
		needed:      needed,
		inDegree:    inDegree,
		ready:       ready,
		resultsCh:   make(chan result, parallelism),
		ctx:         ctx,
		parallelism: parallelism,
		treeSem:     semaphore.NewWeighted(1),
		s:           s,
	}, nil
}

func (state *schedulerRunState) isDone() bool {
	return state.active == 0 && len(state.ready) == 0
}

func (state *schedulerRunState) schedule() {
	for len(state.ready) > 0 && state.active < state.parallelism && state.ctx.Err() == nil {
		taskID := state.ready[0]
		state.ready = state.ready[1:]

		state.active++
		state.s.updateStatus(taskID, StatusRunning)

		go func(node domain.TaskNode) {
			state.resultsCh <- result{task: node.ID, err: state.executeNode(state.ctx, node)}
		}(state.needed[taskID])
	}
}

func (state *schedulerRunState) executeNode(ctx context.Context, node domain.TaskNode) (err error) {
	ctx, vertex := state.s.tracer.Record(ctx, node.ID.String())
	defer func() { vertex.Complete(err) }()

	// The skip decision reads the shared source tree, so tree writers
	// take the writer slot before consulting the gate.
	if node.WritesSourceTree {
		if err = state.treeSem.Acquire(ctx, 1); err != nil {
			return err
		}
		defer state.treeSem.Release(1)
	}

	if node.Gated && state.gate != nil {
		var run bool
		run, err = state.gate.ShouldRun(&node)
		if err != nil {
			return err
		}
		if !run {
			state.s.updateStatus(node.ID, StatusCached)
			vertex.Cached()
			state.s.logger.Info("skipping " + node.ID.String() + ": outputs are up to date")
			return nil
		}
	}

	action := state.plan.Actions[node.ID]
	if action == nil {
		err = zerr.With(domain.ErrTaskNotFound, "task", node.ID.String())
		return err
	}

	err = action(ctx)
	if err == nil && node.Gated && state.gate != nil {
		err = state.gate.Commit(&node)
	}
	return err
}

func (state *schedulerRunState) handleResult(res result) {
	state.active--
	if res.err != nil {
		wrappedErr := zerr.With(zerr.Wrap(res.err, "task execution failed"), "task", res.task.String())
		state.errs = errors.Join(state.errs, wrappedErr)
		state.s.updateStatus(res.task, StatusFailed)
		state.s.logger.Error(wrappedErr)
		return
	}

	if state.s.getStatus(res.task) != StatusCached {
		state.s.updateStatus(res.task, StatusCompleted)
	}
	for _, dep := range state.plan.Graph.Dependents(res.task) {
		if _, ok := state.needed[dep]; !ok {
			continue
		}
		state.inDegree[dep]--
		if state.inDegree[dep] == 0 {
			state.ready = append(state.ready, dep)
		}
	}
}
