package gen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DebugEnv, when set to a non-empty value, dumps each generated file to
// stderr before formatting, for debugging the templates themselves.
const DebugEnv = "ATTRGEN_DEBUG"

func debugDump(filename string, content []byte) {
	if os.Getenv(DebugEnv) == "" {
		return
	}
	fmt.Fprintf(os.Stderr, "// %s\n%s\n", filename, content)
}

// writeDebugUnformatted writes unformatted code to a sidecar file next
// to the intended output. This is best-effort and should never make
// generation fail harder.
func writeDebugUnformatted(dir, filename string, content []byte) error {
	if dir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return err
	}
	// Keep it a .go file so editors can syntax highlight, but avoid
	// colliding with real output.
	debugName := strings.TrimSuffix(filename, ".go") + ".unformatted.go"
	p := filepath.Join(dir, debugName)

	return os.WriteFile(p, content, filePerm)
}
