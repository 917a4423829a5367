package llm

import (
	"strings"
	"testing"
)

func TestSanitizeReplyPayload(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{
			name: "bare object",
			in:   `{"data":{}}`,
			want: `{"data":{}}`,
		},
		{
			name: "fenced json",
			in:   "```json\n{\"data\":{\"page_1\":{}}}\n```",
			want: `{"data":{"page_1":{}}}`,
		},
		{
			name: "fenced without language tag",
			in:   "```\n{\"a\":1}\n```",
			want: `{"a":1}`,
		},
		{
			name: "prose around object",
			in:   "Here is the extraction:\n{\"data\":{}}\nHope that helps.",
			want: `{"data":{}}`,
		},
		{
			name:    "no object at all",
			in:      "sorry, I could not read the document",
			wantErr: true,
		},
		{
			name:    "empty reply",
			in:      "",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeReplyPayload([]byte(tt.in))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				if !strings.Contains(err.Error(), "no JSON object") {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("SanitizeReplyPayload: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
