package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// SampleChoice is the answer to the record/reuse question asked when a
// previous room sample already exists.
type SampleChoice int

const (
	RecordNew SampleChoice = iota
	UseOld
)

// PromptSampleChoice asks whether to record a fresh room sample or reuse the
// existing one, re-asking until it gets a recognisable answer. It reads
// single-line answers from r and writes the prompt to w.
func PromptSampleChoice(r io.Reader, w io.Writer) (SampleChoice, error) {
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, PromptStyle.Render("Record new sample, or use old one? [r/o]: "))
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return RecordNew, err
			}
			return RecordNew, io.EOF
		}

		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "r", "record":
			fmt.Fprintln(w)
			return RecordNew, nil
		case "o", "old", "use":
			fmt.Fprintln(w)
			return UseOld, nil
		}
		fmt.Fprintln(w, "Please answer 'r' to record or 'o' to use the old sample.")
	}
}
