package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTags(t *testing.T) {
	tests := []struct {
		name string
		tags string
		want []string
	}{
		{name: "empty", tags: "", want: nil},
		{name: "single", tags: "sweet", want: []string{"sweet"}},
		{name: "trims whitespace", tags: " sweet , quick ,baked", want: []string{"sweet", "quick", "baked"}},
		{name: "drops empties", tags: "sweet,, ,quick", want: []string{"sweet", "quick"}},
		{name: "keeps duplicates and order", tags: "b,a,b", want: []string{"b", "a", "b"}},
		{name: "only separators", tags: ", ,", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Recipe{Tags: tt.tags}
			assert.Equal(t, tt.want, r.SplitTags())
		})
	}
}

func TestTotalTime(t *testing.T) {
	assert.Equal(t, 0, Recipe{}.TotalTime())
	assert.Equal(t, 15, Recipe{PrepTimeMinutes: 15}.TotalTime())
	assert.Equal(t, 45, Recipe{PrepTimeMinutes: 15, CookTimeMinutes: 30}.TotalTime())
}

func TestLoadErrorMessage(t *testing.T) {
	assert.Equal(t, MessageNoBackupFolder, LoadErrorMessage(ErrBackupFolderNotFound))
	assert.Equal(t, MessageNoBackupFile, LoadErrorMessage(ErrBackupFileNotFound))
	assert.Equal(t, MessageLoadFailed, LoadErrorMessage(errors.New("connection reset")))
	assert.Equal(t, MessageLoadFailed, LoadErrorMessage(fmt.Errorf("%w: bad json", ErrMalformedBackup)))

	// wrapped sentinels still map to their message
	assert.Equal(t, MessageNoBackupFile, LoadErrorMessage(fmt.Errorf("load: %w", ErrBackupFileNotFound)))
}
