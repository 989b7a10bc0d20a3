package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func base() Pos {
	return Pos{Filename: "x.go", Line: 3, Col: 10}
}

func TestTokenize_ArgumentList(t *testing.T) {
	t.Parallel()

	toks, err := Tokenize([]byte(`(kind, name = foo)`), base())
	require.NoError(t, err)

	var types []Type
	var texts []string
	for i := range toks {
		types = append(types, toks[i].Type)
		texts = append(texts, toks[i].Text())
	}

	assert.Equal(t, []Type{LParen, Ident, Comma, Ident, Assign, Ident, RParen}, types)
	assert.Equal(t, []string{"(", "kind", ",", "name", "=", "foo", ")"}, texts)
}

func TestTokenize_Positions(t *testing.T) {
	t.Parallel()

	toks, err := Tokenize([]byte(`(a = 1)`), base())
	require.NoError(t, err)
	require.Len(t, toks, 5)

	assert.Equal(t, 10, toks[0].Pos.Col) // (
	assert.Equal(t, 11, toks[1].Pos.Col) // a
	assert.Equal(t, 13, toks[2].Pos.Col) // =
	assert.Equal(t, 15, toks[3].Pos.Col) // 1
	assert.Equal(t, 3, toks[3].Pos.Line)
	assert.Equal(t, "x.go", toks[3].Pos.Filename)
}

func TestTokenize_StringsAndNumbers(t *testing.T) {
	t.Parallel()

	toks, err := Tokenize([]byte(`(s = "a \" b", n = 0x1f, f = 1.5)`), base())
	require.NoError(t, err)

	var byType = map[Type][]string{}
	for i := range toks {
		byType[toks[i].Type] = append(byType[toks[i].Type], toks[i].Text())
	}

	assert.Equal(t, []string{`"a \" b"`}, byType[String])
	assert.Equal(t, []string{"0x1f", "1.5"}, byType[Number])
}

func TestTokenize_UnterminatedString(t *testing.T) {
	t.Parallel()

	_, err := Tokenize([]byte(`(s = "oops)`), base())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnterminated)

	var se *ScanError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 15, se.Pos.Col)
}

func TestTokenize_Punct(t *testing.T) {
	t.Parallel()

	toks, err := Tokenize([]byte(`(e = a + b)`), base())
	require.NoError(t, err)
	require.Len(t, toks, 7)
	assert.Equal(t, Punct, toks[4].Type)
	assert.Equal(t, "+", toks[4].Text())
}

func TestTree_SingleToken(t *testing.T) {
	t.Parallel()

	toks, err := Tokenize([]byte(`foo, bar`), base())
	require.NoError(t, err)

	end, err := Tree(toks, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, end)
}

func TestTree_BracketGroup(t *testing.T) {
	t.Parallel()

	toks, err := Tokenize([]byte(`[a, (b + c)], x`), base())
	require.NoError(t, err)

	end, err := Tree(toks, 0)
	require.NoError(t, err)
	assert.Equal(t, Comma, toks[end].Type)
}

func TestTree_Unbalanced(t *testing.T) {
	t.Parallel()

	toks, err := Tokenize([]byte(`(a, [b)`), base())
	require.NoError(t, err)

	_, err = Tree(toks, 0)
	assert.ErrorIs(t, err, ErrUnbalanced)
}
