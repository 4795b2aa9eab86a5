package httpio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type nested struct {
	Note string
}

type samplePayload struct {
	Name     string
	Tags     []string
	Child    nested
	ChildPtr *nested
	Extra    map[string]string
	Count    int
}

func TestSanitize_StripsControlCharacters(t *testing.T) {
	t.Parallel()

	p := samplePayload{
		Name: "Jane\x00 Doe\x01",
		Tags: []string{"a\x02b", "clean"},
		Child: nested{
			Note: "line1\nline2\ttabbed\r\n\x1b",
		},
		ChildPtr: &nested{Note: "ptr\x7fvalue"},
		Extra:    map[string]string{"k": "v\x00"},
		Count:    3,
	}

	Sanitize(&p)

	assert.Equal(t, "Jane Doe", p.Name)
	assert.Equal(t, []string{"ab", "clean"}, p.Tags)
	assert.Equal(t, "line1\nline2\ttabbed\r\n", p.Child.Note)
	assert.Equal(t, "ptrvalue", p.ChildPtr.Note)
	assert.Equal(t, "v", p.Extra["k"])
	assert.Equal(t, 3, p.Count)
}

func TestSanitize_Idempotent(t *testing.T) {
	t.Parallel()

	p := samplePayload{
		Name:  "Jane\x00Doe",
		Tags:  []string{"x\x1fy"},
		Child: nested{Note: "keep\ttabs\n"},
	}

	Sanitize(&p)
	first := p

	Sanitize(&p)
	assert.Equal(t, first, p)
}

func TestCleanParam(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "summer-open-house", CleanParam("summer-open-house\x00\x1b"))
	assert.Equal(t, "Engineering", CleanParam("Engi\x7fneering"))
	assert.Equal(t, "", CleanParam(""))
}

func TestSanitize_IgnoresNonPointers(t *testing.T) {
	t.Parallel()

	// Must not panic on values it cannot mutate.
	Sanitize(nil)
	Sanitize("plain string")
	Sanitize(samplePayload{Name: "x"})
}
