package aadchook

import (
	"strconv"
	"strings"
)

// quotedArgs renders args space-separated, quoting with strconv.Quote any
// argument that contains a space. Used to splice file patterns into the
// generated pre-commit hook's shell command line.
func quotedArgs(args []string) string {
	var b strings.Builder
	for i, arg := range args {
		if i > 0 {
			b.WriteByte(' ')
		}
		if strings.ContainsRune(arg, ' ') {
			b.WriteString(strconv.Quote(arg))
		} else {
			b.WriteString(arg)
		}
	}
	return b.String()
}
