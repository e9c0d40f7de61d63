package sorter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocate(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		name      string
		lines     []string
		wantBegin int
		wantEnd   int
	}{
		{
			name:      "simple block",
			lines:     []string{"package main", "", "import (", `	"fmt"`, ")"},
			wantBegin: 3,
			wantEnd:   4,
		},
		{
			name:      "block with trailing comment on delimiter",
			lines:     []string{"import ( // imports", `	"os"`, ")"},
			wantBegin: 1,
			wantEnd:   2,
		},
		{
			name:      "spaced out delimiter",
			lines:     []string{" import  ( ", `	"os"`, " ) "},
			wantBegin: 1,
			wantEnd:   2,
		},
		{
			name:      "no import block",
			lines:     []string{"package main", `import "fmt"`, "func main() {}"},
			wantBegin: 3,
			wantEnd:   3,
		},
		{
			name:      "empty block",
			lines:     []string{"import (", ")"},
			wantBegin: 1,
			wantEnd:   1,
		},
		{
			name:      "unterminated block",
			lines:     []string{"import (", `	"fmt"`},
			wantBegin: 1,
			wantEnd:   2,
		},
		{
			name:      "first block wins",
			lines:     []string{"import (", `	"fmt"`, ")", "import (", `	"os"`, ")"},
			wantBegin: 1,
			wantEnd:   2,
		},
		{
			name:      "no lines",
			lines:     nil,
			wantBegin: 0,
			wantEnd:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			begin, end := Locate(NewLines(tt.lines))
			req.Equal(tt.wantBegin, begin, "begin")
			req.Equal(tt.wantEnd, end, "end")
			req.LessOrEqual(begin, end, "begin must not exceed end")
		})
	}
}
