package workload

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScript(t *testing.T) {
	s, err := ParseScript([]byte(`
container: map
ops:
  - {op: set, keys: [4], value: four}
  - {op: at, keys: [4, 9]}
`))
	require.NoError(t, err)
	require.Equal(t, KindMap, s.Container)
	require.Len(t, s.Ops, 2)
	assert.Equal(t, Op{Op: OpSet, Keys: []int{4}, Value: "four"}, s.Ops[0])
	assert.Equal(t, []int{4, 9}, s.Ops[1].Keys)
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"container", "container: heap\n", ErrUnknownContainer},
		{"missing container", "ops: [{op: len}]\n", ErrUnknownContainer},
		{"op", "container: set\nops: [{op: push, keys: [1]}]\n", ErrUnknownOp},
		{"map op on set", "container: set\nops: [{op: at, keys: [1]}]\n", ErrUnknownOp},
		{"multiset op on map", "container: map\nops: [{op: equal_range, keys: [1]}]\n", ErrUnknownOp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript([]byte(tt.src))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := ParseScript([]byte("container: [map\n"))
	assert.ErrorContains(t, err, "failed to unmarshal script")
}

func TestRunMultiSet(t *testing.T) {
	s, err := LoadScript("testdata/multiset.yaml")
	require.NoError(t, err)

	res, err := NewRunner(zerolog.Nop(), true).Run(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"count 13: 2",
		"count 7: 0",
		"lower_bound 13: 13",
		"upper_bound 13: 24",
		"upper_bound 30: end",
		"equal_range 13: [13 13]",
		"list: [10 13 24 25]",
		"len: 4",
	}, res.Lines)
	assert.Equal(t, 4, res.Len)
	assert.Equal(t, 2, res.Height)
}

func TestRunMap(t *testing.T) {
	s := &Script{Container: KindMap, Ops: []Op{
		{Op: OpInsert, Keys: []int{5, 3}, Value: "x"},
		{Op: OpInsert, Keys: []int{5}, Value: "y"},
		{Op: OpSet, Keys: []int{3}, Value: "three"},
		{Op: OpFind, Keys: []int{5, 6}},
		{Op: OpAt, Keys: []int{3, 9}},
		{Op: OpCount, Keys: []int{5, 6}},
		{Op: OpList},
		{Op: OpClear},
		{Op: OpLen},
	}}
	res, err := NewRunner(zerolog.Nop(), true).Run(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"find 5: 5:x",
		"find 6: not found",
		"at 3: three",
		"at 9: error: ordered: key not found: 9",
		"count 5: 1",
		"count 6: 0",
		"list: [3:three 5:x]",
		"len: 0",
	}, res.Lines)
	assert.Equal(t, "nil", res.Dump)
	assert.Equal(t, -1, res.Height)
}

func TestRunSet(t *testing.T) {
	s := &Script{Container: KindSet, Ops: []Op{
		{Op: OpInsert, Keys: []int{2, 1, 3, 3}},
		{Op: OpErase, Keys: []int{4}},
		{Op: OpFind, Keys: []int{3}},
		{Op: OpList},
	}}
	res, err := NewRunner(zerolog.Nop(), false).Run(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, []string{"find 3: 3", "list: [1 2 3]"}, res.Lines)
	assert.Equal(t, "(2 (1 nil nil) (3 nil nil))", res.Dump)
}

func TestRunLogs(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	s := &Script{Container: KindSet, Ops: []Op{{Op: OpInsert, Keys: []int{1, 1}}}}
	_, err := NewRunner(log, false).Run(context.Background(), s)
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, `"added":true`)
	assert.Contains(t, out, `"added":false`)
	assert.Contains(t, out, `"message":"script done"`)
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := &Script{Container: KindSet, Ops: []Op{{Op: OpLen}}}
	_, err := NewRunner(zerolog.Nop(), false).Run(ctx, s)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBench(t *testing.T) {
	for _, kind := range []string{KindMap, KindSet, KindMultiSet} {
		t.Run(kind, func(t *testing.T) {
			cfg := BenchConfig{Container: kind, Size: 2000, Erase: 500, Seed: 42}
			res, err := Bench(context.Background(), zerolog.Nop(), cfg)
			require.NoError(t, err)
			assert.Equal(t, res.Inserted-res.Erased, res.Len)
			assert.LessOrEqual(t, res.Erased, 500)
			assert.LessOrEqual(t, res.Height, 16)
			if kind == KindMultiSet {
				assert.Equal(t, 2000, res.Inserted)
			} else {
				assert.Less(t, res.Inserted, 2000)
			}

			again, err := Bench(context.Background(), zerolog.Nop(), cfg)
			require.NoError(t, err)
			assert.Equal(t, res.Len, again.Len)
			assert.Equal(t, res.Height, again.Height)
		})
	}
}

func TestBenchErrors(t *testing.T) {
	_, err := Bench(context.Background(), zerolog.Nop(), BenchConfig{Container: "heap", Size: 1})
	assert.ErrorIs(t, err, ErrUnknownContainer)
	_, err = Bench(context.Background(), zerolog.Nop(), BenchConfig{Container: KindSet, Size: -1})
	assert.Error(t, err)
}
