package demo_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/denismitr/stldemo/demo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const gridHeader = "The 2D vector is:\n"

func TestRunOrderedMap(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, demo.RunOrderedMap(context.Background(), &out, demo.WithLogger(zaptest.NewLogger(t))))

	assert.Equal(t, "1 3 4 5 ", out.String())
}

func TestRunGrid(t *testing.T) {
	t.Run("two rows of unequal length", func(t *testing.T) {
		var out bytes.Buffer
		err := demo.RunGrid(context.Background(), strings.NewReader("2\n2\n7 8\n1\n9\n"), &out)
		require.NoError(t, err)

		want := "Enter number of rows: " +
			"Enter number of columns for row 1: Enter elements for row 1: " +
			"Enter number of columns for row 2: Enter elements for row 2: " +
			gridHeader +
			"7 8 \n" +
			"9 \n"
		assert.Equal(t, want, out.String())
	})

	t.Run("zero rows", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, demo.RunGrid(context.Background(), strings.NewReader("0"), &out))

		assert.Equal(t, "Enter number of rows: "+gridHeader, out.String())
	})

	t.Run("negative row count behaves like zero", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, demo.RunGrid(context.Background(), strings.NewReader("-3"), &out))

		assert.Equal(t, "Enter number of rows: "+gridHeader, out.String())
	})

	t.Run("empty row is a blank line", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, demo.RunGrid(context.Background(), strings.NewReader("2 0 1 5"), &out))

		assert.True(t, strings.HasSuffix(out.String(), gridHeader+"\n5 \n"), out.String())
	})

	t.Run("malformed input yields zeros from then on", func(t *testing.T) {
		var out bytes.Buffer
		err := demo.RunGrid(
			context.Background(),
			strings.NewReader("2 3 1 oops"),
			&out,
			demo.WithLogger(zaptest.NewLogger(t)),
		)
		require.NoError(t, err)

		assert.True(t, strings.HasSuffix(out.String(), gridHeader+"1 0 0 \n\n"), out.String())
	})

	t.Run("many rows keep their order", func(t *testing.T) {
		var in strings.Builder
		var want strings.Builder
		in.WriteString("100\n")
		for i := 0; i < 100; i++ {
			in.WriteString("1 ")
			in.WriteString(strings.Repeat("1", i%5+1))
			in.WriteString("\n")
			want.WriteString(strings.Repeat("1", i%5+1) + " \n")
		}

		var out bytes.Buffer
		require.NoError(t, demo.RunGrid(context.Background(), strings.NewReader(in.String()), &out, demo.WithConcurrency(8)))

		_, data, found := strings.Cut(out.String(), gridHeader)
		require.True(t, found)
		assert.Equal(t, want.String(), data)
	})
}

func TestRunPairs(t *testing.T) {
	t.Run("three pairs", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, demo.RunPairs(strings.NewReader("3\n1 2\n3 4\n5 6\n"), &out))

		want := "Enter n: " +
			"Enter x for pair 1: Enter y for pair 1: " +
			"Enter x for pair 2: Enter y for pair 2: " +
			"Enter x for pair 3: Enter y for pair 3: " +
			"The pairs are: (1, 2) (3, 4) (5, 6) \n"
		assert.Equal(t, want, out.String())
	})

	t.Run("zero pairs", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, demo.RunPairs(strings.NewReader("0\n"), &out))

		assert.Equal(t, "Enter n: The pairs are: \n", out.String())
	})

	t.Run("duplicates are kept in arrival order", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, demo.RunPairs(strings.NewReader("3 5 6 1 2 5 6"), &out))

		assert.True(t, strings.HasSuffix(out.String(), "The pairs are: (5, 6) (1, 2) (5, 6) \n"), out.String())
	})

	t.Run("truncated input", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, demo.RunPairs(strings.NewReader("2 -1"), &out, demo.WithLogger(zaptest.NewLogger(t))))

		assert.True(t, strings.HasSuffix(out.String(), "The pairs are: (-1, 0) (0, 0) \n"), out.String())
	})
}

func TestIdempotence(t *testing.T) {
	run := func() string {
		var out bytes.Buffer
		require.NoError(t, demo.RunOrderedMap(context.Background(), &out))
		require.NoError(t, demo.RunGrid(context.Background(), strings.NewReader("3 2 7 8 1 9 0"), &out))
		require.NoError(t, demo.RunPairs(strings.NewReader("2 1 2 3 4"), &out))
		return out.String()
	}

	first := run()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, run())
	}
}
