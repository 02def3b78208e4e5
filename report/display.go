package report

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

// The pterm styles used to label the different message kinds.
var (
	errorStyle = pterm.NewStyle(pterm.FgRed)
	warnStyle  = pterm.NewStyle(pterm.FgYellow)
	infoStyle  = pterm.NewStyle(pterm.FgLightGreen)
)

// displayICE displays an internal compiler error message.
func displayICE(message string) {
	errorStyle.Printf("internal compiler error: %s\n", message)
	fmt.Print("This error was not supposed to happen: please open an issue on GitHub\n\n")
}

// displayFatal displays a fatal error message.
func displayFatal(message string) {
	errorStyle.Print("fatal error: ")
	fmt.Printf("%s\n\n", message)
}

// displayCompileMessage displays a compilation error or warning.  The label is
// the string to prefix the message with: eg. if we want to display an error,
// the label is "error".
func displayCompileMessage(label, absPath, reprPath string, span *TextSpan, message string) {
	style := errorStyle
	if label == "warning" {
		style = warnStyle
	}

	if span == nil {
		fmt.Printf("%s: ", reprPath)
		style.Print(label)
		fmt.Printf(": %s\n\n", message)
	} else {
		fmt.Printf("%s:%d:%d: ", reprPath, span.StartLine+1, span.StartCol+1)
		style.Print(label)
		fmt.Printf(": %s\n\n", message)
		displaySourceText(absPath, span)
	}
}

// displayStdError displays a standard Go error.
func displayStdError(reprPath string, err error) {
	fmt.Printf("%s: ", reprPath)
	errorStyle.Print("error")
	fmt.Printf(": %s\n\n", err)
}

// displayVerbose displays an informational compilation progress message.
func displayVerbose(message string) {
	infoStyle.Print("info")
	fmt.Printf(": %s\n", message)
}

// -----------------------------------------------------------------------------

// displaySourceText displays a segment of source text defined by a text span.
// If the source file cannot be read, no excerpt is printed: diagnostics must
// still display for designs built in memory.
func displaySourceText(absPath string, span *TextSpan) {
	file, err := os.Open(absPath)
	if err != nil {
		return
	}
	defer file.Close()

	// Collect all the source lines containing the given source text.
	var lines []string
	sc := bufio.NewScanner(file)
	for ln := 0; sc.Scan(); ln++ {
		if span.StartLine <= ln && ln <= span.EndLine {
			lines = append(lines, strings.ReplaceAll(sc.Text(), "\t", "    "))
		}
	}

	if sc.Err() != nil || len(lines) == 0 {
		return
	}

	// Calculate the minimum line indentation so it can be trimmed off.
	minIndent := math.MaxInt32
	for _, line := range lines {
		lineIndent := len(line) - len(strings.TrimLeft(line, " "))
		if lineIndent < minIndent {
			minIndent = lineIndent
		}
	}

	maxLineNumLen := len(strconv.Itoa(span.EndLine + 1))
	lineNumFmtStr := "%-" + strconv.Itoa(maxLineNumLen) + "v | "

	for i, line := range lines {
		fmt.Printf(lineNumFmtStr, i+span.StartLine+1)
		fmt.Println(line[minIndent:])

		fmt.Print(strings.Repeat(" ", maxLineNumLen), " | ")

		// Underlining starts at the start column on the first line and at the
		// left margin on every continuation line; it runs to the end column on
		// the last line and to the end of the line on every other line.
		carretStart := 0
		if i == 0 {
			carretStart = span.StartCol - minIndent
		}

		carretEnd := len(line) - minIndent
		if i == len(lines)-1 {
			carretEnd = span.EndCol - minIndent
		}

		fmt.Print(strings.Repeat(" ", carretStart))
		fmt.Println(strings.Repeat("^", carretEnd-carretStart))
	}

	fmt.Println()
}
