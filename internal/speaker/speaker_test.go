package speaker

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Dog(t *testing.T) {
	s, err := New(KindDog, "Buddy")
	require.NoError(t, err)

	assert.Equal(t, "Buddy says: Woof!", s.Line())
	assert.Equal(t, KindDog, s.Kind())
	assert.IsType(t, Dog{}, s)
}

func TestNew_Cat(t *testing.T) {
	s, err := New(KindCat, "Whiskers")
	require.NoError(t, err)

	assert.Equal(t, "Whiskers says: Meow!", s.Line())
	assert.Equal(t, KindCat, s.Kind())
	assert.IsType(t, Cat{}, s)
}

func TestSpeak_WritesLine(t *testing.T) {
	var buf bytes.Buffer
	s, err := New(KindDog, "Buddy")
	require.NoError(t, err)

	require.NoError(t, s.Speak(&buf))
	assert.Equal(t, "Buddy says: Woof!\n", buf.String())
}

func TestSpeak_UsesOwnName(t *testing.T) {
	a, err := New(KindDog, "Rex")
	require.NoError(t, err)
	b, err := New(KindDog, "Fido")
	require.NoError(t, err)

	assert.Equal(t, "Rex says: Woof!", a.Line())
	assert.Equal(t, "Fido says: Woof!", b.Line())
}

func TestNew_EmptyName(t *testing.T) {
	s, err := New(KindCat, "")
	require.NoError(t, err)
	assert.Equal(t, " says: Meow!", s.Line())
}

func TestNew_NormalizesName(t *testing.T) {
	// "e" + combining acute accent composes to "é".
	s, err := New(KindCat, "Rene\u0301")
	require.NoError(t, err)
	assert.Equal(t, "Ren\u00e9", s.Name())
}

func TestNew_UnknownKind(t *testing.T) {
	_, err := New(Kind(42), "Nemo")
	var kindErr *UnknownKindError
	require.ErrorAs(t, err, &kindErr)
	assert.Equal(t, "kind(42)", kindErr.Value)
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"dog", KindDog},
		{"DOG", KindDog},
		{" Cat ", KindCat},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseKind("fish")
	var kindErr *UnknownKindError
	assert.ErrorAs(t, err, &kindErr)
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRegistry_SpeakAllInOrder(t *testing.T) {
	var r Registry
	_, err := r.Create(KindDog, "Buddy")
	require.NoError(t, err)
	_, err = r.Create(KindCat, "Whiskers")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.SpeakAll(&buf))
	assert.Equal(t, "Buddy says: Woof!\nWhiskers says: Meow!\n", buf.String())
	assert.Equal(t, 2, r.Len())
}

func TestRegistry_SpeakAllStopsOnError(t *testing.T) {
	var r Registry
	_, err := r.Create(KindDog, "Buddy")
	require.NoError(t, err)

	err = r.SpeakAll(failWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "closed")
}

func TestRegistry_AllIsCopy(t *testing.T) {
	var r Registry
	_, err := r.Create(KindDog, "Buddy")
	require.NoError(t, err)

	all := r.All()
	all[0] = nil
	assert.NotNil(t, r.All()[0])
}
