package token

import "fmt"

// PrintTokens dumps toks to stdout, one per line, for debugging.
func PrintTokens(toks []Token, msg string) {
	fmt.Printf("%s tokens:\n", msg)
	for i := range toks {
		t := &toks[i]
		fmt.Printf("\t%s `%s` %s\n", t.Type, t.Bytes, t.Pos)
	}
}
