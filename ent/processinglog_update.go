// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/newsflow/hotaggr/ent/predicate"
	"github.com/newsflow/hotaggr/ent/processinglog"
)

// ProcessingLogUpdate is the builder for updating ProcessingLog entities.
type ProcessingLogUpdate struct {
	config
	hooks    []Hook
	mutation *ProcessingLogMutation
}

// Where appends a list predicates to the ProcessingLogUpdate builder.
func (_u *ProcessingLogUpdate) Where(ps ...predicate.ProcessingLog) *ProcessingLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskType sets the "task_type" field.
func (_u *ProcessingLogUpdate) SetTaskType(v string) *ProcessingLogUpdate {
	_u.mutation.SetTaskType(v)
	return _u
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_u *ProcessingLogUpdate) SetNillableTaskType(v *string) *ProcessingLogUpdate {
	if v != nil {
		_u.SetTaskType(*v)
	}
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *ProcessingLogUpdate) SetTaskID(v string) *ProcessingLogUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *ProcessingLogUpdate) SetNillableTaskID(v *string) *ProcessingLogUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *ProcessingLogUpdate) SetStartTime(v time.Time) *ProcessingLogUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *ProcessingLogUpdate) SetNillableStartTime(v *time.Time) *ProcessingLogUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *ProcessingLogUpdate) SetEndTime(v time.Time) *ProcessingLogUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *ProcessingLogUpdate) SetNillableEndTime(v *time.Time) *ProcessingLogUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *ProcessingLogUpdate) ClearEndTime() *ProcessingLogUpdate {
	_u.mutation.ClearEndTime()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProcessingLogUpdate) SetStatus(v string) *ProcessingLogUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProcessingLogUpdate) SetNillableStatus(v *string) *ProcessingLogUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotal sets the "total" field.
func (_u *ProcessingLogUpdate) SetTotal(v int) *ProcessingLogUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *ProcessingLogUpdate) SetNillableTotal(v *int) *ProcessingLogUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *ProcessingLogUpdate) AddTotal(v int) *ProcessingLogUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *ProcessingLogUpdate) SetSuccess(v int) *ProcessingLogUpdate {
	_u.mutation.ResetSuccess()
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *ProcessingLogUpdate) SetNillableSuccess(v *int) *ProcessingLogUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// AddSuccess adds value to the "success" field.
func (_u *ProcessingLogUpdate) AddSuccess(v int) *ProcessingLogUpdate {
	_u.mutation.AddSuccess(v)
	return _u
}

// SetFailed sets the "failed" field.
func (_u *ProcessingLogUpdate) SetFailed(v int) *ProcessingLogUpdate {
	_u.mutation.ResetFailed()
	_u.mutation.SetFailed(v)
	return _u
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_u *ProcessingLogUpdate) SetNillableFailed(v *int) *ProcessingLogUpdate {
	if v != nil {
		_u.SetFailed(*v)
	}
	return _u
}

// AddFailed adds value to the "failed" field.
func (_u *ProcessingLogUpdate) AddFailed(v int) *ProcessingLogUpdate {
	_u.mutation.AddFailed(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ProcessingLogUpdate) SetErrorMessage(v string) *ProcessingLogUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ProcessingLogUpdate) SetNillableErrorMessage(v *string) *ProcessingLogUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ProcessingLogUpdate) ClearErrorMessage() *ProcessingLogUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetConfigSnapshot sets the "config_snapshot" field.
func (_u *ProcessingLogUpdate) SetConfigSnapshot(v map[string]interface{}) *ProcessingLogUpdate {
	_u.mutation.SetConfigSnapshot(v)
	return _u
}

// ClearConfigSnapshot clears the value of the "config_snapshot" field.
func (_u *ProcessingLogUpdate) ClearConfigSnapshot() *ProcessingLogUpdate {
	_u.mutation.ClearConfigSnapshot()
	return _u
}

// Mutation returns the ProcessingLogMutation object of the builder.
func (_u *ProcessingLogUpdate) Mutation() *ProcessingLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProcessingLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProcessingLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProcessingLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(processinglog.Table, processinglog.Columns, sqlgraph.NewFieldSpec(processinglog.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskType(); ok {
		_spec.SetField(processinglog.FieldTaskType, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(processinglog.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(processinglog.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(processinglog.FieldEndTime, field.TypeTime, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(processinglog.FieldEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(processinglog.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(processinglog.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(processinglog.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(processinglog.FieldSuccess, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccess(); ok {
		_spec.AddField(processinglog.FieldSuccess, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Failed(); ok {
		_spec.SetField(processinglog.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailed(); ok {
		_spec.AddField(processinglog.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(processinglog.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(processinglog.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ConfigSnapshot(); ok {
		_spec.SetField(processinglog.FieldConfigSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.ConfigSnapshotCleared() {
		_spec.ClearField(processinglog.FieldConfigSnapshot, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processinglog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProcessingLogUpdateOne is the builder for updating a single ProcessingLog entity.
type ProcessingLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProcessingLogMutation
}

// SetTaskType sets the "task_type" field.
func (_u *ProcessingLogUpdateOne) SetTaskType(v string) *ProcessingLogUpdateOne {
	_u.mutation.SetTaskType(v)
	return _u
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_u *ProcessingLogUpdateOne) SetNillableTaskType(v *string) *ProcessingLogUpdateOne {
	if v != nil {
		_u.SetTaskType(*v)
	}
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *ProcessingLogUpdateOne) SetTaskID(v string) *ProcessingLogUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *ProcessingLogUpdateOne) SetNillableTaskID(v *string) *ProcessingLogUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *ProcessingLogUpdateOne) SetStartTime(v time.Time) *ProcessingLogUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *ProcessingLogUpdateOne) SetNillableStartTime(v *time.Time) *ProcessingLogUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *ProcessingLogUpdateOne) SetEndTime(v time.Time) *ProcessingLogUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *ProcessingLogUpdateOne) SetNillableEndTime(v *time.Time) *ProcessingLogUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *ProcessingLogUpdateOne) ClearEndTime() *ProcessingLogUpdateOne {
	_u.mutation.ClearEndTime()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProcessingLogUpdateOne) SetStatus(v string) *ProcessingLogUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProcessingLogUpdateOne) SetNillableStatus(v *string) *ProcessingLogUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotal sets the "total" field.
func (_u *ProcessingLogUpdateOne) SetTotal(v int) *ProcessingLogUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *ProcessingLogUpdateOne) SetNillableTotal(v *int) *ProcessingLogUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *ProcessingLogUpdateOne) AddTotal(v int) *ProcessingLogUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *ProcessingLogUpdateOne) SetSuccess(v int) *ProcessingLogUpdateOne {
	_u.mutation.ResetSuccess()
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *ProcessingLogUpdateOne) SetNillableSuccess(v *int) *ProcessingLogUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// AddSuccess adds value to the "success" field.
func (_u *ProcessingLogUpdateOne) AddSuccess(v int) *ProcessingLogUpdateOne {
	_u.mutation.AddSuccess(v)
	return _u
}

// SetFailed sets the "failed" field.
func (_u *ProcessingLogUpdateOne) SetFailed(v int) *ProcessingLogUpdateOne {
	_u.mutation.ResetFailed()
	_u.mutation.SetFailed(v)
	return _u
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_u *ProcessingLogUpdateOne) SetNillableFailed(v *int) *ProcessingLogUpdateOne {
	if v != nil {
		_u.SetFailed(*v)
	}
	return _u
}

// AddFailed adds value to the "failed" field.
func (_u *ProcessingLogUpdateOne) AddFailed(v int) *ProcessingLogUpdateOne {
	_u.mutation.AddFailed(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ProcessingLogUpdateOne) SetErrorMessage(v string) *ProcessingLogUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ProcessingLogUpdateOne) SetNillableErrorMessage(v *string) *ProcessingLogUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ProcessingLogUpdateOne) ClearErrorMessage() *ProcessingLogUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetConfigSnapshot sets the "config_snapshot" field.
func (_u *ProcessingLogUpdateOne) SetConfigSnapshot(v map[string]interface{}) *ProcessingLogUpdateOne {
	_u.mutation.SetConfigSnapshot(v)
	return _u
}

// ClearConfigSnapshot clears the value of the "config_snapshot" field.
func (_u *ProcessingLogUpdateOne) ClearConfigSnapshot() *ProcessingLogUpdateOne {
	_u.mutation.ClearConfigSnapshot()
	return _u
}

// Mutation returns the ProcessingLogMutation object of the builder.
func (_u *ProcessingLogUpdateOne) Mutation() *ProcessingLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProcessingLogUpdate builder.
func (_u *ProcessingLogUpdateOne) Where(ps ...predicate.ProcessingLog) *ProcessingLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProcessingLogUpdateOne) Select(field string, fields ...string) *ProcessingLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProcessingLog entity.
func (_u *ProcessingLogUpdateOne) Save(ctx context.Context) (*ProcessingLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingLogUpdateOne) SaveX(ctx context.Context) *ProcessingLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProcessingLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProcessingLogUpdateOne) sqlSave(ctx context.Context) (_node *ProcessingLog, err error) {
	_spec := sqlgraph.NewUpdateSpec(processinglog.Table, processinglog.Columns, sqlgraph.NewFieldSpec(processinglog.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProcessingLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, processinglog.FieldID)
		for _, f := range fields {
			if !processinglog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != processinglog.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskType(); ok {
		_spec.SetField(processinglog.FieldTaskType, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(processinglog.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(processinglog.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(processinglog.FieldEndTime, field.TypeTime, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(processinglog.FieldEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(processinglog.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(processinglog.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(processinglog.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(processinglog.FieldSuccess, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccess(); ok {
		_spec.AddField(processinglog.FieldSuccess, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Failed(); ok {
		_spec.SetField(processinglog.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailed(); ok {
		_spec.AddField(processinglog.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(processinglog.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(processinglog.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ConfigSnapshot(); ok {
		_spec.SetField(processinglog.FieldConfigSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.ConfigSnapshotCleared() {
		_spec.ClearField(processinglog.FieldConfigSnapshot, field.TypeJSON)
	}
	_node = &ProcessingLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processinglog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
