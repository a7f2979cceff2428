package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorBuilder_Basic(t *testing.T) {
	t.Parallel()

	base := NewStd("file vanished")
	err := New(base).
		Component("combiner").
		Category(CategoryFileIO).
		Context("dataset", "cctv_day1").
		Build()

	require.NotNil(t, err)
	assert.Equal(t, "file vanished", err.Error())
	assert.Equal(t, "combiner", err.Component)
	assert.Equal(t, string(CategoryFileIO), err.GetCategory())

	v, ok := err.GetContext("dataset")
	require.True(t, ok)
	assert.Equal(t, "cctv_day1", v)
}

func TestErrorBuilder_Unwrap(t *testing.T) {
	t.Parallel()

	base := NewStd("missing data.yaml")
	err := New(base).Category(CategoryNotFound).Build()

	assert.True(t, Is(err, base))
	assert.Equal(t, base, Unwrap(err))

	var ee *EnhancedError
	require.True(t, As(err, &ee))
	assert.Equal(t, CategoryNotFound, ee.Category)
}

func TestErrorBuilder_Defaults(t *testing.T) {
	t.Parallel()

	err := Newf("bad class index %d", 42).Build()
	assert.Equal(t, "bad class index 42", err.Error())
	assert.Equal(t, CategoryGeneric, err.Category)
	// Component is detected from the caller, never left empty.
	assert.NotEmpty(t, err.Component)
}

func TestErrorBuilder_CategoryMatching(t *testing.T) {
	t.Parallel()

	a := New(NewStd("a")).Category(CategoryValidation).Build()
	b := New(NewStd("b")).Category(CategoryValidation).Build()
	c := New(NewStd("c")).Category(CategoryFileIO).Build()

	assert.True(t, Is(a, b), "errors with the same category should match")
	assert.False(t, Is(a, c), "errors with different categories should not match")
}

func TestErrorBuilder_FileContext(t *testing.T) {
	t.Parallel()

	err := New(NewStd("read failed")).
		Category(CategoryFileIO).
		FileContext("/data/sources/cctv_day1/data.yaml").
		Build()

	v, ok := err.GetContext("file_path")
	require.True(t, ok)
	assert.Equal(t, "/data/sources/cctv_day1/data.yaml", v)
}
