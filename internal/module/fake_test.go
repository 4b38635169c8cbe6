package module

import (
	"context"
	"errors"

	"nuros-switch/internal/descriptor"
)

// fakeEvaluator answers the descriptor protocol from memory and counts calls.
type fakeEvaluator struct {
	fields   map[descriptor.Field]string
	fieldErr map[descriptor.Field]error
	output   string
	enumErr  error

	fieldCalls map[descriptor.Field]int
	enumCalls  int
}

func newFakeEvaluator() *fakeEvaluator {
	return &fakeEvaluator{
		fields:     make(map[descriptor.Field]string),
		fieldErr:   make(map[descriptor.Field]error),
		fieldCalls: make(map[descriptor.Field]int),
	}
}

func (f *fakeEvaluator) ReadField(_ context.Context, _ string, field descriptor.Field) (string, error) {
	f.fieldCalls[field]++
	if err := f.fieldErr[field]; err != nil {
		return "", err
	}
	return f.fields[field], nil
}

func (f *fakeEvaluator) EnumerateAlternatives(context.Context, string) ([]byte, error) {
	f.enumCalls++
	return []byte(f.output), f.enumErr
}

var errSpawn = errors.New("fork/exec /bin/bash: resource temporarily unavailable")
