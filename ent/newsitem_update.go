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
	"github.com/newsflow/hotaggr/ent/newsitem"
	"github.com/newsflow/hotaggr/ent/predicate"
)

// NewsItemUpdate is the builder for updating NewsItem entities.
type NewsItemUpdate struct {
	config
	hooks    []Hook
	mutation *NewsItemMutation
}

// Where appends a list predicates to the NewsItemUpdate builder.
func (_u *NewsItemUpdate) Where(ps ...predicate.NewsItem) *NewsItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *NewsItemUpdate) SetSourceType(v string) *NewsItemUpdate {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *NewsItemUpdate) SetNillableSourceType(v *string) *NewsItemUpdate {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *NewsItemUpdate) SetTitle(v string) *NewsItemUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *NewsItemUpdate) SetNillableTitle(v *string) *NewsItemUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *NewsItemUpdate) SetBody(v string) *NewsItemUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *NewsItemUpdate) SetNillableBody(v *string) *NewsItemUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetCityName sets the "city_name" field.
func (_u *NewsItemUpdate) SetCityName(v string) *NewsItemUpdate {
	_u.mutation.SetCityName(v)
	return _u
}

// SetNillableCityName sets the "city_name" field if the given value is not nil.
func (_u *NewsItemUpdate) SetNillableCityName(v *string) *NewsItemUpdate {
	if v != nil {
		_u.SetCityName(*v)
	}
	return _u
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (_u *NewsItemUpdate) SetFirstSeenAt(v time.Time) *NewsItemUpdate {
	_u.mutation.SetFirstSeenAt(v)
	return _u
}

// SetNillableFirstSeenAt sets the "first_seen_at" field if the given value is not nil.
func (_u *NewsItemUpdate) SetNillableFirstSeenAt(v *time.Time) *NewsItemUpdate {
	if v != nil {
		_u.SetFirstSeenAt(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *NewsItemUpdate) SetURL(v string) *NewsItemUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *NewsItemUpdate) SetNillableURL(v *string) *NewsItemUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// Mutation returns the NewsItemMutation object of the builder.
func (_u *NewsItemUpdate) Mutation() *NewsItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NewsItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NewsItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NewsItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NewsItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *NewsItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(newsitem.Table, newsitem.Columns, sqlgraph.NewFieldSpec(newsitem.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(newsitem.FieldSourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(newsitem.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(newsitem.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.CityName(); ok {
		_spec.SetField(newsitem.FieldCityName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstSeenAt(); ok {
		_spec.SetField(newsitem.FieldFirstSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(newsitem.FieldURL, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{newsitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NewsItemUpdateOne is the builder for updating a single NewsItem entity.
type NewsItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NewsItemMutation
}

// SetSourceType sets the "source_type" field.
func (_u *NewsItemUpdateOne) SetSourceType(v string) *NewsItemUpdateOne {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *NewsItemUpdateOne) SetNillableSourceType(v *string) *NewsItemUpdateOne {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *NewsItemUpdateOne) SetTitle(v string) *NewsItemUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *NewsItemUpdateOne) SetNillableTitle(v *string) *NewsItemUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *NewsItemUpdateOne) SetBody(v string) *NewsItemUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *NewsItemUpdateOne) SetNillableBody(v *string) *NewsItemUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetCityName sets the "city_name" field.
func (_u *NewsItemUpdateOne) SetCityName(v string) *NewsItemUpdateOne {
	_u.mutation.SetCityName(v)
	return _u
}

// SetNillableCityName sets the "city_name" field if the given value is not nil.
func (_u *NewsItemUpdateOne) SetNillableCityName(v *string) *NewsItemUpdateOne {
	if v != nil {
		_u.SetCityName(*v)
	}
	return _u
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (_u *NewsItemUpdateOne) SetFirstSeenAt(v time.Time) *NewsItemUpdateOne {
	_u.mutation.SetFirstSeenAt(v)
	return _u
}

// SetNillableFirstSeenAt sets the "first_seen_at" field if the given value is not nil.
func (_u *NewsItemUpdateOne) SetNillableFirstSeenAt(v *time.Time) *NewsItemUpdateOne {
	if v != nil {
		_u.SetFirstSeenAt(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *NewsItemUpdateOne) SetURL(v string) *NewsItemUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *NewsItemUpdateOne) SetNillableURL(v *string) *NewsItemUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// Mutation returns the NewsItemMutation object of the builder.
func (_u *NewsItemUpdateOne) Mutation() *NewsItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the NewsItemUpdate builder.
func (_u *NewsItemUpdateOne) Where(ps ...predicate.NewsItem) *NewsItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NewsItemUpdateOne) Select(field string, fields ...string) *NewsItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated NewsItem entity.
func (_u *NewsItemUpdateOne) Save(ctx context.Context) (*NewsItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NewsItemUpdateOne) SaveX(ctx context.Context) *NewsItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NewsItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NewsItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *NewsItemUpdateOne) sqlSave(ctx context.Context) (_node *NewsItem, err error) {
	_spec := sqlgraph.NewUpdateSpec(newsitem.Table, newsitem.Columns, sqlgraph.NewFieldSpec(newsitem.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "NewsItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, newsitem.FieldID)
		for _, f := range fields {
			if !newsitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != newsitem.FieldID {
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
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(newsitem.FieldSourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(newsitem.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(newsitem.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.CityName(); ok {
		_spec.SetField(newsitem.FieldCityName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstSeenAt(); ok {
		_spec.SetField(newsitem.FieldFirstSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(newsitem.FieldURL, field.TypeString, value)
	}
	_node = &NewsItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{newsitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
