package cli

import (
	"io"
	"strings"
	"testing"
)

func TestPromptSampleChoice(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    SampleChoice
		wantErr bool
	}{
		{"record shorthand", "r\n", RecordNew, false},
		{"record word", "record\n", RecordNew, false},
		{"old shorthand", "o\n", UseOld, false},
		{"old word", "old\n", UseOld, false},
		{"uppercase", "R\n", RecordNew, false},
		{"padded", "  o  \n", UseOld, false},
		{"reprompts on garbage", "x\nmaybe\nr\n", RecordNew, false},
		{"eof without answer", "", RecordNew, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			got, err := PromptSampleChoice(strings.NewReader(tt.input), &out)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("PromptSampleChoice failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("choice = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPromptSampleChoiceEOFIsIOEOF(t *testing.T) {
	_, err := PromptSampleChoice(strings.NewReader("nonsense\n"), io.Discard)
	if err != io.EOF {
		t.Errorf("err = %v, want io.EOF", err)
	}
}
