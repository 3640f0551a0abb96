// Package vocab provides controlled-vocabulary tables for regulatory API
// fields: a canonical member set per field plus an alias table mapping known
// non-canonical spellings to canonical tokens. Lookup keys are produced by
// Fold, so alias tables only need to carry inputs that survive the fold
// transform non-canonically.
package vocab

import "fmt"

// Vocabulary is the closed controlled vocabulary for one field.
// Canonical tokens are lowercase and underscore-delimited.
type Vocabulary struct {
	name    string
	tokens  []string          // canonical tokens in declaration order
	members map[string]string // folded spelling -> canonical token
	aliases map[string]string // folded alias -> canonical token
}

// New builds a vocabulary from its canonical tokens and known aliases.
// Alias keys are folded before storage; an alias may not shadow a member,
// name an unknown member, or conflict with another alias for the same
// folded input.
func New(name string, tokens []string, aliases map[string]string) (*Vocabulary, error) {
	v := &Vocabulary{
		name:    name,
		tokens:  tokens,
		members: make(map[string]string, len(tokens)),
		aliases: make(map[string]string, len(aliases)),
	}
	for _, tok := range tokens {
		key := Fold(tok)
		if prev, ok := v.members[key]; ok && prev != tok {
			return nil, fmt.Errorf("vocabulary %s: tokens %q and %q fold to the same key %q", name, prev, tok, key)
		}
		v.members[key] = tok
	}
	for raw, tok := range aliases {
		if err := v.addAlias(raw, tok); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// MustNew is New for package-level vocabulary tables; it panics on error.
func MustNew(name string, tokens []string, aliases map[string]string) *Vocabulary {
	v, err := New(name, tokens, aliases)
	if err != nil {
		panic(err)
	}
	return v
}

// Name returns the vocabulary's field name (e.g. "route").
func (v *Vocabulary) Name() string { return v.name }

// Members returns the canonical tokens in declaration order.
func (v *Vocabulary) Members() []string {
	out := make([]string, len(v.tokens))
	copy(out, v.tokens)
	return out
}

// Len returns the number of canonical members.
func (v *Vocabulary) Len() int { return len(v.tokens) }

// AliasCount returns the number of registered aliases.
func (v *Vocabulary) AliasCount() int { return len(v.aliases) }

// Lookup folds raw and resolves it to a canonical token, consulting members
// first and the alias table second.
func (v *Vocabulary) Lookup(raw string) (string, bool) {
	key := Fold(raw)
	if tok, ok := v.members[key]; ok {
		return tok, true
	}
	if tok, ok := v.aliases[key]; ok {
		return tok, true
	}
	return "", false
}

// Contains reports whether tok is a canonical member, without folding.
func (v *Vocabulary) Contains(tok string) bool {
	got, ok := v.members[Fold(tok)]
	return ok && got == tok
}

// AddAlias registers an extra alias at runtime, e.g. from an overlay file.
func (v *Vocabulary) AddAlias(raw, token string) error {
	return v.addAlias(raw, token)
}

func (v *Vocabulary) addAlias(raw, token string) error {
	if _, ok := v.members[Fold(token)]; !ok {
		return fmt.Errorf("vocabulary %s: alias %q targets unknown member %q", v.name, raw, token)
	}
	key := Fold(raw)
	if _, ok := v.members[key]; ok {
		return fmt.Errorf("vocabulary %s: alias %q shadows canonical member", v.name, raw)
	}
	if prev, ok := v.aliases[key]; ok && prev != token {
		return fmt.Errorf("vocabulary %s: alias %q already maps to %q", v.name, raw, prev)
	}
	v.aliases[key] = token
	return nil
}
