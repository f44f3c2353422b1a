package store

import (
	"context"
	"errors"
	"log/slog"

	"dotdb/internal/docpath"
	"dotdb/internal/value"
)

// Store exposes the dot-path operation set over a Backend. It holds no
// document state of its own: every operation loads the addressed record
// fresh, mutates it in memory, and writes it back.
type Store struct {
	backend Backend
	log     *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the structured logger used for failure reporting.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.log = logger
	}
}

// New creates a Store over the given backend.
func New(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close releases the underlying backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// Get returns the value at the dotted key. A missing record, a missing
// intermediate container, or an absent target all yield a NOT_FOUND error,
// never a panic or a partial result.
func (s *Store) Get(ctx context.Context, key string) (value.Value, error) {
	p, err := s.parse("get", key)
	if err != nil {
		return nil, err
	}

	root, found, err := s.backend.LoadRecord(ctx, p.Record())
	if err != nil {
		return nil, s.medium("get", key, err)
	}
	if !found {
		return nil, s.notFound("get", key)
	}

	v, ok := docpath.Resolve(root, p.Rest())
	if !ok {
		return nil, s.notFound("get", key)
	}
	return v, nil
}

// Has reports whether the dotted key holds any value. Stored false and 0
// count as present; there is no distinction between "absent" and "present
// but falsy".
func (s *Store) Has(ctx context.Context, key string) (bool, error) {
	_, err := s.Get(ctx, key)
	if IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Set stores v at the dotted key, overwriting whatever was there. Missing
// intermediate containers are created; existing non-object intermediates
// are replaced with fresh objects. An absent (nil) v is rejected.
func (s *Store) Set(ctx context.Context, key string, v value.Value) error {
	p, err := s.parse("set", key)
	if err != nil {
		return err
	}
	if v == nil {
		return s.invalidValue("set", key)
	}

	root, _, err := s.backend.LoadRecord(ctx, p.Record())
	if err != nil {
		return s.medium("set", key, err)
	}

	root = docpath.Write(root, p.Rest(), v)
	if err := s.backend.SaveRecord(ctx, p.Record(), root); err != nil {
		return s.medium("set", key, err)
	}
	return nil
}

// Delete removes the value at the dotted key. A single-segment key removes
// the whole top-level record; a multi-segment key removes one field from
// its parent object. Deleting something that does not exist is a NOT_FOUND
// error and leaves the document unchanged.
func (s *Store) Delete(ctx context.Context, key string) error {
	p, err := s.parse("delete", key)
	if err != nil {
		return err
	}

	if len(p) == 1 {
		removed, err := s.backend.DeleteRecord(ctx, p.Record())
		if err != nil {
			return s.medium("delete", key, err)
		}
		if !removed {
			return s.notFound("delete", key)
		}
		return nil
	}

	root, found, err := s.backend.LoadRecord(ctx, p.Record())
	if err != nil {
		return s.medium("delete", key, err)
	}
	if !found {
		return s.notFound("delete", key)
	}

	root, removed := docpath.Remove(root, p.Rest())
	if !removed {
		return s.notFound("delete", key)
	}
	if err := s.backend.SaveRecord(ctx, p.Record(), root); err != nil {
		return s.medium("delete", key, err)
	}
	return nil
}

// Add increments the number at the dotted key by n and returns the stored
// result. An absent key is treated as 0, so add on a fresh key equals set.
// A present non-numeric value is a TYPE_MISMATCH failure and nothing
// changes; values are never coerced.
func (s *Store) Add(ctx context.Context, key string, n float64) (value.Number, error) {
	return s.accumulate(ctx, "add", key, n)
}

// Subtract decrements the number at the dotted key by n. Same policies as
// Add.
func (s *Store) Subtract(ctx context.Context, key string, n float64) (value.Number, error) {
	return s.accumulate(ctx, "subtract", key, -n)
}

func (s *Store) accumulate(ctx context.Context, op, key string, delta float64) (value.Number, error) {
	p, err := s.parse(op, key)
	if err != nil {
		return 0, err
	}

	root, _, err := s.backend.LoadRecord(ctx, p.Record())
	if err != nil {
		return 0, s.medium(op, key, err)
	}

	prior := value.Number(0)
	if cur, ok := docpath.Resolve(root, p.Rest()); ok {
		num, isNum := cur.(value.Number)
		if !isNum {
			s.log.Warn("stored value is not a number, leaving unchanged", "op", op, "key", key)
			return 0, &OpError{Code: CodeTypeMismatch, Op: op, Key: key, Message: "stored value is not a number"}
		}
		prior = num
	}

	next := prior + value.Number(delta)
	root = docpath.Write(root, p.Rest(), next)
	if err := s.backend.SaveRecord(ctx, p.Record(), root); err != nil {
		return 0, s.medium(op, key, err)
	}
	return next, nil
}

// Push appends v to the array at the dotted key and returns the array. If
// the current value is missing or not an array it is replaced with a new
// one-element array.
func (s *Store) Push(ctx context.Context, key string, v value.Value) (value.Array, error) {
	p, err := s.parse("push", key)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, s.invalidValue("push", key)
	}

	root, _, err := s.backend.LoadRecord(ctx, p.Record())
	if err != nil {
		return nil, s.medium("push", key, err)
	}

	var arr value.Array
	if cur, ok := docpath.Resolve(root, p.Rest()); ok {
		if existing, isArr := cur.(value.Array); isArr {
			arr = append(existing, v)
		}
	}
	if arr == nil {
		arr = value.Array{v}
	}

	root = docpath.Write(root, p.Rest(), arr)
	if err := s.backend.SaveRecord(ctx, p.Record(), root); err != nil {
		return nil, s.medium("push", key, err)
	}
	return arr, nil
}

// Pull removes every element of the array at the dotted key that matches v
// and returns the remaining array plus the removed count.
//
// An object v matches by deep equality or by partial match (v's fields are
// a subset of the element's); anything else matches by equality alone. The
// scan runs from the highest index downward so splicing does not perturb
// not-yet-visited indices. An absent key is NOT_FOUND, a non-array value
// is TYPE_MISMATCH, and zero matches is NOT_FOUND; in all three cases
// nothing is persisted.
func (s *Store) Pull(ctx context.Context, key string, v value.Value) (value.Array, int, error) {
	p, err := s.parse("pull", key)
	if err != nil {
		return nil, 0, err
	}
	if v == nil {
		return nil, 0, s.invalidValue("pull", key)
	}

	root, found, err := s.backend.LoadRecord(ctx, p.Record())
	if err != nil {
		return nil, 0, s.medium("pull", key, err)
	}
	if !found {
		return nil, 0, s.notFound("pull", key)
	}

	cur, ok := docpath.Resolve(root, p.Rest())
	if !ok {
		return nil, 0, s.notFound("pull", key)
	}
	arr, isArr := cur.(value.Array)
	if !isArr {
		s.log.Warn("stored value is not an array, leaving unchanged", "op", "pull", "key", key)
		return nil, 0, &OpError{Code: CodeTypeMismatch, Op: "pull", Key: key, Message: "stored value is not an array"}
	}

	removed := 0
	for i := len(arr) - 1; i >= 0; i-- {
		if value.DeepEqual(arr[i], v) || value.PartialMatch(arr[i], v) {
			arr = append(arr[:i], arr[i+1:]...)
			removed++
		}
	}
	if removed == 0 {
		return nil, 0, s.notFound("pull", key)
	}

	root = docpath.Write(root, p.Rest(), arr)
	if err := s.backend.SaveRecord(ctx, p.Record(), root); err != nil {
		return nil, 0, s.medium("pull", key, err)
	}
	return arr, removed, nil
}

// GetAll returns the entire document as one top-level object snapshot.
func (s *Store) GetAll(ctx context.Context) (value.Object, error) {
	doc, err := s.backend.LoadAll(ctx)
	if err != nil {
		return nil, s.medium("getAll", "", err)
	}
	return doc, nil
}

// DeleteAll erases every top-level record. The confirmation string must be
// exactly one of the two accepted acknowledgement sentences (see
// ConfirmationTR and ConfirmationEN); anything else is rejected and the
// document is left untouched.
func (s *Store) DeleteAll(ctx context.Context, confirmation string) error {
	if !validConfirmation(confirmation) {
		s.log.Warn("deleteAll rejected: confirmation sentence not accepted")
		return &OpError{Code: CodeBadConfirmation, Op: "deleteAll", Message: "confirmation sentence not accepted"}
	}

	if err := s.backend.Clear(ctx); err != nil {
		return s.medium("deleteAll", "", err)
	}
	s.log.Info("all records deleted")
	return nil
}

func (s *Store) parse(op, key string) (docpath.Path, error) {
	p, err := docpath.Parse(key)
	if err != nil {
		s.log.Warn("invalid key", "op", op, "key", key, "error", err)
		return nil, &OpError{Code: CodeInvalidKey, Op: op, Key: key, Message: "invalid key", Err: err}
	}
	return p, nil
}

func (s *Store) invalidValue(op, key string) error {
	s.log.Warn("absent value rejected", "op", op, "key", key)
	return &OpError{Code: CodeInvalidValue, Op: op, Key: key, Message: "value must be present"}
}

func (s *Store) notFound(op, key string) error {
	s.log.Debug("nothing at key", "op", op, "key", key)
	return &OpError{Code: CodeNotFound, Op: op, Key: key, Message: "does not exist"}
}

func (s *Store) medium(op, key string, err error) error {
	if errors.Is(err, ErrNotConnected) {
		s.log.Error("backend not connected", "op", op, "key", key)
		return &OpError{Code: CodeNotConnected, Op: op, Key: key, Message: "backend not connected", Err: err}
	}
	s.log.Error("storage medium failure", "op", op, "key", key, "error", err)
	return &OpError{Code: CodeMediumFailure, Op: op, Key: key, Message: "storage medium failure", Err: err}
}
