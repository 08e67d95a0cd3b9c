package arena

// FieldToken is the metadata describing one field's position within a
// RowBuffer's arena (spec §3): start/length offsets plus whether the
// field was quoted in the source text. Invariant: Start+Length <= the
// arena's length at the moment the token was appended.
type FieldToken struct {
	Start     int
	Length    int
	WasQuoted bool
}

// TokenList is an append-only list of FieldToken, recycled the same way
// as Arena: Clear is constant time and keeps the backing array.
type TokenList struct {
	tokens []FieldToken
}

// NewTokenList returns a TokenList with capacity for ~32 fields, the hint
// given in spec §4.2.
func NewTokenList() *TokenList {
	return &TokenList{tokens: make([]FieldToken, 0, 32)}
}

// Append adds a token to the end of the list.
func (t *TokenList) Append(tok FieldToken) {
	t.tokens = append(t.tokens, tok)
}

// Len returns the number of tokens currently held.
func (t *TokenList) Len() int { return len(t.tokens) }

// At returns the token at index i.
func (t *TokenList) At(i int) FieldToken { return t.tokens[i] }

// Clear resets the list to empty, retaining its backing array.
func (t *TokenList) Clear() {
	t.tokens = t.tokens[:0]
}
