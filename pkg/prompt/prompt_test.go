//go:build unit

package prompt

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func confirmWith(t *testing.T, input string, defaultYes bool) (bool, error) {
	t.Helper()
	p := &realPrompt{reader: bufio.NewReader(strings.NewReader(input))}
	return p.Confirm("Proceed?", defaultYes)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
		wantErr    error
	}{
		{name: "yes", input: "y\n", want: true},
		{name: "yes word", input: "yes\n", want: true},
		{name: "no", input: "n\n", defaultYes: true, want: false},
		{name: "empty uses default yes", input: "\n", defaultYes: true, want: true},
		{name: "empty uses default no", input: "\n", want: false},
		{name: "garbage", input: "maybe\n", wantErr: ErrInvalidConfirmationInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := confirmWith(t, tt.input, tt.defaultYes)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelect_EmptyOptions(t *testing.T) {
	p := NewPrompt()

	_, err := p.Select("Choose:", nil)
	assert.ErrorIs(t, err, ErrNoSelection)
}

func TestSelectModel_Filter(t *testing.T) {
	m := initialSelectModel("Choose:", []string{"feature-login", "feature-pay", "main"})

	m.filter = "feat"
	m.applyFilter()
	assert.Len(t, m.filtered, 2)

	m.filter = "main"
	m.applyFilter()
	assert.Equal(t, []string{"main"}, m.filtered)
	assert.Equal(t, 0, m.cursor)

	m.filter = ""
	m.applyFilter()
	assert.Len(t, m.filtered, 3)
}
