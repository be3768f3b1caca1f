package tracker

import (
	"context"
	"fmt"

	"github.com/theirongolddev/goaltrack/internal/goalsapi"
	"github.com/theirongolddev/goaltrack/internal/model"

	"go.uber.org/zap"
)

// GoalService is the remote store of goals.
type GoalService interface {
	ListGoals(ctx context.Context, userID int) ([]model.Goal, error)
	AddGoal(ctx context.Context, draft model.Goal, userID int) (model.Goal, error)
	EditGoal(ctx context.Context, g model.Goal) (model.Goal, error)
	DeleteGoal(ctx context.Context, id int) error
}

// OpKind names a goal operation.
type OpKind int

const (
	OpLoad OpKind = iota
	OpAdd
	OpEdit
	OpDelete
)

func (k OpKind) String() string {
	switch k {
	case OpLoad:
		return "load goals"
	case OpAdd:
		return "add goal"
	case OpEdit:
		return "edit goal"
	case OpDelete:
		return "delete goal"
	}
	return fmt.Sprintf("OpKind(%d)", int(k))
}

// Op is a request against the Goal Service.
type Op struct {
	Kind OpKind
	Goal model.Goal // draft for OpAdd, full record for OpEdit
	ID   int        // OpDelete
}

// Result is the outcome of running an Op. Exactly one of Err or the
// payload fields is meaningful.
type Result struct {
	Op    Op
	Goals []model.Goal // OpLoad
	Goal  model.Goal   // OpAdd, OpEdit
	Err   error
}

// Controller runs goal operations against a GoalService and applies the
// successful results to its Page. A failed operation leaves the page as it
// was.
//
// Run only performs I/O and may be called from any goroutine; Apply mutates
// the page and must stay on the goroutine that owns it.
type Controller struct {
	svc  GoalService
	page *Page
	log  *zap.Logger
}

// NewController binds svc to page. A nil logger discards output.
func NewController(svc GoalService, page *Page, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{svc: svc, page: page, log: log}
}

// Page returns the controlled page.
func (c *Controller) Page() *Page {
	return c.page
}

// Run sends op to the service without touching the page.
func (c *Controller) Run(ctx context.Context, op Op) Result {
	r := Result{Op: op}
	switch op.Kind {
	case OpLoad:
		r.Goals, r.Err = c.svc.ListGoals(ctx, c.page.UserID)
	case OpAdd:
		r.Goal, r.Err = c.svc.AddGoal(ctx, op.Goal, c.page.UserID)
	case OpEdit:
		r.Goal, r.Err = c.svc.EditGoal(ctx, op.Goal)
		if r.Err == nil && r.Goal.ID == 0 {
			r.Goal = op.Goal
		}
	case OpDelete:
		r.Err = c.svc.DeleteGoal(ctx, op.ID)
	default:
		r.Err = fmt.Errorf("unknown operation %v", op.Kind)
	}
	return r
}

// Apply folds a successful result into the page. A failed result is logged
// with its kind and returned wrapped; the page is left untouched.
func (c *Controller) Apply(r Result) error {
	if r.Err != nil {
		return c.fail(r.Op, r.Err)
	}

	switch r.Op.Kind {
	case OpLoad:
		c.page.Replace(r.Goals)
		c.log.Debug("goals loaded", zap.Int("user_id", c.page.UserID), zap.Int("count", len(r.Goals)))
	case OpAdd:
		c.page.Append(r.Goal)
		c.log.Info("goal added", zap.Int("goal_id", r.Goal.ID))
	case OpEdit:
		if !c.page.ReplaceByID(r.Goal) {
			c.log.Warn("edited goal not on page", zap.Int("goal_id", r.Goal.ID))
		}
		c.log.Info("goal edited", zap.Int("goal_id", r.Goal.ID))
	case OpDelete:
		c.page.RemoveByID(r.Op.ID)
		c.log.Info("goal deleted", zap.Int("goal_id", r.Op.ID))
	}
	return nil
}

// Load fetches every goal of the page's user.
func (c *Controller) Load(ctx context.Context) error {
	return c.Apply(c.Run(ctx, Op{Kind: OpLoad}))
}

// Add creates draft on the service and appends the persisted record.
func (c *Controller) Add(ctx context.Context, draft model.Goal) (model.Goal, error) {
	r := c.Run(ctx, Op{Kind: OpAdd, Goal: draft})
	if err := c.Apply(r); err != nil {
		return model.Goal{}, err
	}
	return r.Goal, nil
}

// Edit sends the full record and replaces the local copy with the echo.
// When the echo carries no id the sent record is kept.
func (c *Controller) Edit(ctx context.Context, g model.Goal) (model.Goal, error) {
	r := c.Run(ctx, Op{Kind: OpEdit, Goal: g})
	if err := c.Apply(r); err != nil {
		return model.Goal{}, err
	}
	return r.Goal, nil
}

// Delete removes the goal with id on the service, then locally.
func (c *Controller) Delete(ctx context.Context, id int) error {
	return c.Apply(c.Run(ctx, Op{Kind: OpDelete, ID: id}))
}

func (c *Controller) fail(op Op, err error) error {
	fields := []zap.Field{
		zap.String("op", op.Kind.String()),
		zap.String("kind", goalsapi.Kind(err)),
		zap.Error(err),
	}
	switch op.Kind {
	case OpEdit:
		fields = append(fields, zap.Int("goal_id", op.Goal.ID))
	case OpDelete:
		fields = append(fields, zap.Int("goal_id", op.ID))
	}
	c.log.Error("goal operation failed", fields...)
	return fmt.Errorf("%s: %w", op.Kind, err)
}
